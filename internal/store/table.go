// Package store holds the persistence contracts of the record store: a
// generic ordered table keyed by uint64, a scalar counter cell, the id
// allocator built on the cell, and the Store aggregate owning one table per
// entity kind. The in-memory implementation lives here; the PostgreSQL one
// in the postgres subpackage.
package store

import "context"

// Table is an ordered id→record mapping for one entity kind. Records are
// passed by value; mutating a returned record has no effect until Put.
type Table[V any] interface {
	// Get returns the record stored under id, if any.
	Get(ctx context.Context, id uint64) (V, bool, error)

	// Put inserts or replaces the record under id.
	Put(ctx context.Context, id uint64, v V) error

	// Delete removes the record under id if present and returns it.
	Delete(ctx context.Context, id uint64) (V, bool, error)

	// Iterate calls fn for each record in ascending id order until fn
	// returns false. No current operation scans, but the contract keeps
	// bulk reads possible without touching the implementations.
	Iterate(ctx context.Context, fn func(id uint64, v V) bool) error
}

// Cell is a single durable uint64, used to persist the allocator counter in
// the same medium as entity data.
type Cell interface {
	Get(ctx context.Context) (uint64, error)
	Set(ctx context.Context, v uint64) error
}
