package store

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetSet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, err := m.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.Set(ctx, "k", []byte("v")))
	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	require.NoError(t, m.Delete(ctx, "k"))
	_, err = m.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryTTL(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.SetTTL(ctx, "k", []byte("v"), 10*time.Millisecond))

	_, err := m.Get(ctx, "k")
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	_, err = m.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryUpdateSeesMissingKeyAsNil(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	err := m.Update(ctx, "k", func(old []byte) ([]byte, error) {
		assert.Nil(t, old)
		return []byte("first"), nil
	})
	require.NoError(t, err)

	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), got)
}

func TestMemoryUpdateNoChange(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.Set(ctx, "k", []byte("v")))

	err := m.Update(ctx, "k", func(old []byte) ([]byte, error) {
		return nil, ErrNoChange
	})
	require.NoError(t, err)

	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
}

func TestMemoryUpdateConcurrentCounters(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	const writers = 50

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := m.Update(ctx, "counter", func(old []byte) ([]byte, error) {
				n := 0
				if old != nil {
					if err := json.Unmarshal(old, &n); err != nil {
						return nil, err
					}
				}
				return json.Marshal(n + 1)
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	b, err := m.Get(ctx, "counter")
	require.NoError(t, err)

	n := 0
	require.NoError(t, json.Unmarshal(b, &n))
	assert.Equal(t, writers, n, "no update may be lost")
}
