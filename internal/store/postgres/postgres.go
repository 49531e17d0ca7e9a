// Package postgres implements the store contracts on PostgreSQL. Each
// entity kind maps to one table holding a BIGINT id and a JSONB record; the
// allocator counter lives in a single-row table. The exact record encoding
// stays inside this package.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"courseledger/internal/dbx"
	"courseledger/internal/server/models"
	"courseledger/internal/store"
	"courseledger/internal/store/postgres/migrations"
)

// Open connects to PostgreSQL through the pgx stdlib driver.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return db, nil
}

// RunMigrations brings the schema up to date using the embedded goose
// migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

// NewStore returns a Store with all four tables and the allocator backed by
// the given database handle.
func NewStore(db dbx.DBTX) *store.Store {
	return &store.Store{
		Courses:      NewTable[models.Course](db, "courses"),
		Lessons:      NewTable[models.Lesson](db, "lessons"),
		Certificates: NewTable[models.Certificate](db, "certificates"),
		Users:        NewTable[models.User](db, "users"),
		IDs:          store.NewAllocator(NewCell(db)),
	}
}
