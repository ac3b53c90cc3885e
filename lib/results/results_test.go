package results

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpsPerSecDerivation(t *testing.T) {
	store := NewStore()
	store.Put("x", 1000.0, 2000.0)

	result, ok := store.Get("x")
	require.True(t, ok)

	assert.Equal(t, uint64(1_000_000), result.SerializeOpsPerSec)
	assert.Equal(t, uint64(500_000), result.DeserializeOpsPerSec)
	assert.Equal(t, 1000.0, result.SerializeTimeNs)
	assert.Equal(t, 2000.0, result.DeserializeTimeNs)
}

func TestDegenerateDurationGuard(t *testing.T) {
	store := NewStore()
	store.Put("x", 0.0, 100.0)

	result, ok := store.Get("x")
	require.True(t, ok)

	assert.Equal(t, OpsPerSecUndefined, result.SerializeOpsPerSec,
		"zero duration must yield the sentinel, not a division by zero")
	assert.Equal(t, uint64(10_000_000), result.DeserializeOpsPerSec)

	store.Put("y", -5.0, -5.0)
	result, ok = store.Get("y")
	require.True(t, ok)
	assert.Equal(t, OpsPerSecUndefined, result.SerializeOpsPerSec)
	assert.Equal(t, OpsPerSecUndefined, result.DeserializeOpsPerSec)
}

func TestLastWriteWins(t *testing.T) {
	store := NewStore()
	store.Put("x", 1000.0, 1000.0)
	store.Put("x", 500.0, 500.0)

	result, ok := store.Get("x")
	require.True(t, ok)
	assert.Equal(t, 500.0, result.SerializeTimeNs)
	assert.Equal(t, 1, store.Len())
}

func TestRenderTableSortDeterminism(t *testing.T) {
	store := NewStore()
	store.Put("borsh", 100.0, 200.0)
	store.Put("bincode", 300.0, 400.0)
	store.Put("bcs", 500.0, 600.0)

	assert.Equal(t, []string{"bcs", "bincode", "borsh"}, store.Formats())

	table := store.RenderTable()
	bcsIdx := strings.Index(table, "bcs")
	bincodeIdx := strings.Index(table, "bincode")
	borshIdx := strings.Index(table, "borsh")

	require.NotEqual(t, -1, bcsIdx)
	assert.Less(t, bcsIdx, bincodeIdx, "bcs row must precede bincode")
	assert.Less(t, bincodeIdx, borshIdx, "bincode row must precede borsh")
}

func TestRenderTableSentinel(t *testing.T) {
	store := NewStore()
	store.Put("x", 0.0, 100.0)

	table := store.RenderTable()
	assert.Contains(t, table, "n/a")
}

func TestConcurrentPut(t *testing.T) {
	store := NewStore()

	formats := []string{"json", "gob", "msgpack", "cbor", "binary"}

	var wg sync.WaitGroup
	for _, format := range formats {
		for i := 0; i < 100; i++ {
			wg.Add(1)
			go func(name string) {
				defer wg.Done()
				store.Put(name, 100.0, 200.0)
			}(format)
		}
	}
	wg.Wait()

	assert.Equal(t, len(formats), store.Len())
	for _, format := range formats {
		result, ok := store.Get(format)
		require.True(t, ok)
		assert.Equal(t, uint64(10_000_000), result.SerializeOpsPerSec)
		assert.Equal(t, uint64(5_000_000), result.DeserializeOpsPerSec)
	}
}
