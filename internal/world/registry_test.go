package world

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var backends = []Backend{BackendHash, BackendOrdered}

func newTestRegistry(t *testing.T, backend Backend) Registry {
	t.Helper()
	registry, err := NewRegistry(backend, 0)
	require.NoError(t, err)
	return registry
}

func TestRegistry_InternDeduplicates(t *testing.T) {
	for _, backend := range backends {
		t.Run(string(backend), func(t *testing.T) {
			registry := newTestRegistry(t, backend)

			a := NewChunk()
			first, reused := registry.Intern(&a)
			assert.False(t, reused)
			assert.Equal(t, 1, registry.Len())

			b := NewChunk()
			second, reused := registry.Intern(&b)
			assert.True(t, reused, "одинаковое содержимое должно переиспользоваться")
			assert.Same(t, first, second)
			assert.Equal(t, 1, registry.Len())

			b.Set(1, 2, Black)
			third, reused := registry.Intern(&b)
			assert.False(t, reused)
			assert.NotSame(t, first, third)
			assert.Equal(t, 2, registry.Len())
		})
	}
}

func TestRegistry_InternCopiesContent(t *testing.T) {
	for _, backend := range backends {
		t.Run(string(backend), func(t *testing.T) {
			registry := newTestRegistry(t, backend)

			live := NewChunk()
			live.Set(0, 0, Black)
			canonical, _ := registry.Intern(&live)
			assert.NotSame(t, &live, canonical)

			// Изменение исходного чанка не затрагивает канонический экземпляр
			live.Set(0, 0, White)
			assert.Equal(t, Black, canonical.Get(0, 0))

			found, ok := registry.Lookup(canonical)
			require.True(t, ok)
			assert.Same(t, canonical, found)
		})
	}
}

func TestRegistry_Lookup(t *testing.T) {
	for _, backend := range backends {
		t.Run(string(backend), func(t *testing.T) {
			registry := newTestRegistry(t, backend)

			chunk := NewChunk()
			_, ok := registry.Lookup(&chunk)
			assert.False(t, ok)
			assert.Equal(t, 0, registry.Len(), "Lookup не должен регистрировать содержимое")
		})
	}
}

func TestRegistry_ManyContents(t *testing.T) {
	for _, backend := range backends {
		t.Run(string(backend), func(t *testing.T) {
			registry := newTestRegistry(t, backend)

			// Каждая одиночная чёрная клетка — отдельное содержимое
			for y := 0; y < ChunkSize; y++ {
				for x := 0; x < ChunkSize; x++ {
					chunk := NewChunk()
					chunk.Set(y, x, Black)
					registry.Intern(&chunk)
					registry.Intern(&chunk)
				}
			}
			assert.Equal(t, ChunkSize*ChunkSize, registry.Len())
		})
	}
}

func TestNewRegistry_UnknownBackend(t *testing.T) {
	_, err := NewRegistry("skiplist", 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownBackend))
	assert.Contains(t, err.Error(), "skiplist")
}

func TestNewRegistry_DefaultBackend(t *testing.T) {
	registry, err := NewRegistry("", 16)
	require.NoError(t, err)
	assert.IsType(t, &hashRegistry{}, registry)
}
