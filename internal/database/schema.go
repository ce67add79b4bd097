package database

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"strings"

	"gamereviews/internal/middleware"

	"gorm.io/gorm"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// SchemaScript returns the DDL for the dialect ("postgres" or "sqlite") or the shared drop script ("drop").
func SchemaScript(name string) (string, error) {
	b, err := schemaFS.ReadFile("schema/" + name + ".sql")
	if err != nil {
		return "", fmt.Errorf("schema script %q: %w", name, err)
	}
	return string(b), nil
}

// splitStatements breaks a script into individual statements. Scripts never
// contain semicolons inside literals.
func splitStatements(script string) []string {
	var out []string
	for _, stmt := range strings.Split(script, ";") {
		if s := strings.TrimSpace(stmt); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func runScript(ctx context.Context, db *gorm.DB, name string) error {
	script, err := SchemaScript(name)
	if err != nil {
		return err
	}
	for _, stmt := range splitStatements(script) {
		if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return fmt.Errorf("run %s schema: %w", name, err)
		}
	}
	return nil
}

// ApplySchema creates any missing tables for the connected dialect.
func ApplySchema(ctx context.Context, db *gorm.DB) error {
	dialect := db.Dialector.Name()
	if dialect != DriverPostgres && dialect != DriverSQLite {
		return fmt.Errorf("no schema for dialect %q", dialect)
	}
	if err := runScript(ctx, db, dialect); err != nil {
		return err
	}
	middleware.Logger.Info("Database schema applied", slog.String("dialect", dialect))
	return nil
}

// Reset drops every table and recreates the schema empty.
func Reset(ctx context.Context, db *gorm.DB) error {
	if err := runScript(ctx, db, "drop"); err != nil {
		return err
	}
	return ApplySchema(ctx, db)
}
