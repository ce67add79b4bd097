// Package repository implements the data access layer: fixed and formatted parameterized statements over gorm.
package repository

import (
	"context"
	"time"

	"gamereviews/internal/database"
	"gamereviews/internal/observability"
	"gamereviews/internal/query"

	"gorm.io/gorm"
)

// base carries the connection and per-table instrumentation shared by every repository.
type base struct {
	db      *gorm.DB
	table   string
	metrics *observability.DatabaseMetrics
}

func newBase(db *gorm.DB, table string) base {
	return base{db: db, table: table, metrics: observability.NewDatabaseMetrics(table)}
}

// observe starts a span and a latency timer for one repository call. The
// returned func must be called with the call's final error.
func (b base) observe(ctx context.Context, method string) (context.Context, func(error)) {
	start := time.Now()
	ctx, span := observability.StartStoreSpan(ctx, b.db.Dialector.Name(), b.table, method)
	return ctx, func(err error) {
		b.metrics.ObserveQuery(method, start)
		if database.IsClientError(err) {
			err = nil
		}
		observability.EndSpan(span, err)
	}
}

// scan runs a row-returning statement into dest and reports how many rows it produced.
func (b base) scan(ctx context.Context, stmt query.Statement, dest any) (int64, error) {
	res := b.db.WithContext(ctx).Raw(stmt.SQL, stmt.Args...).Scan(dest)
	if res.Error != nil {
		return 0, database.TranslateError(res.Error)
	}
	return res.RowsAffected, nil
}

// exec runs a statement that returns no rows and reports how many rows it touched.
func (b base) exec(ctx context.Context, stmt query.Statement) (int64, error) {
	res := b.db.WithContext(ctx).Exec(stmt.SQL, stmt.Args...)
	if res.Error != nil {
		return 0, database.TranslateError(res.Error)
	}
	return res.RowsAffected, nil
}

func fixed(sql string, args ...any) query.Statement {
	return query.Statement{SQL: sql, Args: args}
}
