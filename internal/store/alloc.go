package store

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// ErrExhausted means the 64-bit id space ran out. Mutating operations must
// fail with it before writing any entity record.
var ErrExhausted = errors.New("id allocator exhausted")

// Allocator issues process-wide unique, strictly increasing ids shared by
// all entity kinds. The cell holds the next id to issue, starting at 0, so
// the sequence survives restarts together with the entity data.
type Allocator struct {
	cell Cell
}

func NewAllocator(cell Cell) *Allocator {
	return &Allocator{cell: cell}
}

// NextID returns the next id and advances the counter. Every returned id is
// strictly greater than every id returned before it.
func (a *Allocator) NextID(ctx context.Context) (uint64, error) {
	cur, err := a.cell.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("reading id counter: %w", err)
	}
	if cur == math.MaxUint64 {
		return 0, ErrExhausted
	}
	if err := a.cell.Set(ctx, cur+1); err != nil {
		return 0, fmt.Errorf("advancing id counter: %w", err)
	}
	return cur, nil
}
