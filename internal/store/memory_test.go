package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTable_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	tbl := NewMemoryTable[string]()

	_, ok, err := tbl.Get(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, tbl.Put(ctx, 1, "one"))
	v, ok, err := tbl.Get(ctx, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "one", v)

	// Put is insert-or-replace.
	require.NoError(t, tbl.Put(ctx, 1, "uno"))
	v, _, _ = tbl.Get(ctx, 1)
	assert.Equal(t, "uno", v)

	removed, ok, err := tbl.Delete(ctx, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "uno", removed)

	_, ok, _ = tbl.Get(ctx, 1)
	assert.False(t, ok)

	// Deleting an absent record is a no-op.
	_, ok, err = tbl.Delete(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryTable_IterateAscending(t *testing.T) {
	ctx := context.Background()
	tbl := NewMemoryTable[string]()

	for _, id := range []uint64{5, 1, 9, 3, 7} {
		require.NoError(t, tbl.Put(ctx, id, "v"))
	}
	_, _, err := tbl.Delete(ctx, 3)
	require.NoError(t, err)

	var got []uint64
	err = tbl.Iterate(ctx, func(id uint64, v string) bool {
		got = append(got, id)
		return true
	})
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 5, 7, 9}, got)
}

func TestMemoryTable_IterateStopsEarly(t *testing.T) {
	ctx := context.Background()
	tbl := NewMemoryTable[int]()
	for id := uint64(0); id < 10; id++ {
		require.NoError(t, tbl.Put(ctx, id, int(id)))
	}

	var count int
	err := tbl.Iterate(ctx, func(id uint64, v int) bool {
		count++
		return count < 3
	})
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestMemoryCell_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCell()

	v, err := c.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), v)

	require.NoError(t, c.Set(ctx, 42))
	v, err = c.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), v)
}
