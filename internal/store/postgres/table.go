package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"courseledger/internal/dbx"
)

// Table implements store.Table on one PostgreSQL table. The table name is an
// internal constant picked by NewStore, never caller input.
type Table[V any] struct {
	db   dbx.DBTX
	name string
}

func NewTable[V any](db dbx.DBTX, name string) *Table[V] {
	return &Table[V]{db: db, name: name}
}

// ids round-trip through int64 because the column is BIGINT.

func (t *Table[V]) Get(ctx context.Context, id uint64) (V, bool, error) {
	var zero V

	query := fmt.Sprintf(`SELECT data FROM %s WHERE id = $1`, t.name)

	var raw []byte
	err := t.db.QueryRowContext(ctx, query, int64(id)).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, false, nil
		}
		return zero, false, fmt.Errorf("db error: %w", err)
	}

	var v V
	if err := json.Unmarshal(raw, &v); err != nil {
		return zero, false, fmt.Errorf("decoding %s record: %w", t.name, err)
	}
	return v, true, nil
}

func (t *Table[V]) Put(ctx context.Context, id uint64, v V) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s record: %w", t.name, err)
	}

	query := fmt.Sprintf(
		`INSERT INTO %s (id, data) VALUES ($1, $2)
		 ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data`, t.name)

	if _, err := t.db.ExecContext(ctx, query, int64(id), raw); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (t *Table[V]) Delete(ctx context.Context, id uint64) (V, bool, error) {
	var zero V

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1 RETURNING data`, t.name)

	var raw []byte
	err := t.db.QueryRowContext(ctx, query, int64(id)).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, false, nil
		}
		return zero, false, fmt.Errorf("db error: %w", err)
	}

	var v V
	if err := json.Unmarshal(raw, &v); err != nil {
		return zero, false, fmt.Errorf("decoding %s record: %w", t.name, err)
	}
	return v, true, nil
}

func (t *Table[V]) Iterate(ctx context.Context, fn func(id uint64, v V) bool) error {
	query := fmt.Sprintf(`SELECT id, data FROM %s ORDER BY id`, t.name)

	rows, err := t.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id  int64
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		var v V
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("decoding %s record: %w", t.name, err)
		}
		if !fn(uint64(id), v) {
			return nil
		}
	}
	return rows.Err()
}
