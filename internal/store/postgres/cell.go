package postgres

import (
	"context"
	"fmt"

	"courseledger/internal/dbx"
)

// Cell persists the allocator counter in the single-row id_counter table.
// The row is seeded by the initial migration, so Get never sees no rows.
type Cell struct {
	db dbx.DBTX
}

func NewCell(db dbx.DBTX) *Cell {
	return &Cell{db: db}
}

func (c *Cell) Get(ctx context.Context) (uint64, error) {
	var v int64
	err := c.db.QueryRowContext(ctx, `SELECT next_id FROM id_counter WHERE id = 1`).Scan(&v)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return uint64(v), nil
}

func (c *Cell) Set(ctx context.Context, v uint64) error {
	if _, err := c.db.ExecContext(ctx, `UPDATE id_counter SET next_id = $1 WHERE id = 1`, int64(v)); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
