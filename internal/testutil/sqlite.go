// Package testutil provides shared fixtures for tests that need a real store.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"gamereviews/internal/auth"
	"gamereviews/internal/database"
	"gamereviews/internal/seed"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenSQLite opens a private in-memory sqlite database that lives until the test ends.
func OpenSQLite(t testing.TB) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := database.Open(sqlite.Open(dsn), true)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// FastHasher hashes with the minimum bcrypt cost.
func FastHasher() *auth.PasswordHasher {
	return auth.NewPasswordHasher(bcrypt.MinCost, 4)
}

// SeededDB returns an in-memory store loaded with seed.TestData.
func SeededDB(t testing.TB) *gorm.DB {
	t.Helper()
	db := OpenSQLite(t)
	require.NoError(t, seed.Seed(context.Background(), db, seed.TestData(), FastHasher()))
	return db
}
