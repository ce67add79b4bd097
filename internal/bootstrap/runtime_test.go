package bootstrap

import (
	"context"
	"path/filepath"
	"testing"

	"gamereviews/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitRuntime_SQLite(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := &config.Config{
		DBDriver: "sqlite",
		DBDSN:    filepath.Join(t.TempDir(), "reviews.db"),
		RedisURL: mr.Addr(),
	}

	db, rdb, err := InitRuntime(context.Background(), cfg, Options{ApplySchema: true})
	require.NoError(t, err)
	t.Cleanup(func() { Close(db, rdb) })

	require.NotNil(t, rdb)
	var tables int
	require.NoError(t, db.Raw("SELECT CAST(COUNT(*) AS INTEGER) FROM sqlite_master WHERE type = 'table' AND name IN ('categories', 'users', 'reviews', 'comments')").Scan(&tables).Error)
	assert.Equal(t, 4, tables)
}

func TestInitRuntime_WithoutRedis(t *testing.T) {
	cfg := &config.Config{DBDriver: "sqlite", DBDSN: filepath.Join(t.TempDir(), "reviews.db")}
	db, rdb, err := InitRuntime(context.Background(), cfg, Options{})
	require.NoError(t, err)
	t.Cleanup(func() { Close(db, rdb) })
	assert.Nil(t, rdb)
}

func TestInitRuntime_BadDriver(t *testing.T) {
	_, _, err := InitRuntime(context.Background(), &config.Config{DBDriver: "oracle"}, Options{})
	assert.Error(t, err)
}
