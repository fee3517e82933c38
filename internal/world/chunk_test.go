package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunkCreateAndGet(t *testing.T) {
	chunk := NewChunk()

	h, w := chunk.Size()
	assert.Equal(t, 32, h)
	assert.Equal(t, 32, w)

	// Все клетки нового чанка белые
	for color := range chunk.Cells() {
		assert.Equal(t, White, color)
	}
	assert.Equal(t, 0, chunk.CountMarked())

	chunk.Set(3, 4, Black)
	assert.Equal(t, Black, chunk.Get(3, 4))
	assert.Equal(t, White, chunk.Get(4, 3), "строки и столбцы не должны путаться")
	assert.Equal(t, 1, chunk.CountMarked())
}

func TestChunkOutOfRangePanics(t *testing.T) {
	chunk := NewChunk()

	assert.Panics(t, func() { chunk.Get(-1, 0) })
	assert.Panics(t, func() { chunk.Get(0, ChunkSize) })
	assert.Panics(t, func() { chunk.Set(ChunkSize, 0, Black) })
}

func TestChunkCellsRowMajor(t *testing.T) {
	chunk := NewChunk()
	chunk.Set(0, 1, Black)
	chunk.Set(1, 0, Black)

	var positions []int
	i := 0
	for color := range chunk.Cells() {
		if color == Black {
			positions = append(positions, i)
		}
		i++
	}
	assert.Equal(t, []int{1, ChunkSize}, positions)
	assert.Equal(t, ChunkSize*ChunkSize, i)

	// Последовательность можно обойти повторно
	assert.Equal(t, 2, chunk.CountMarked())
	assert.Equal(t, 2, chunk.CountMarked())

	// Досрочный выход из обхода
	seen := 0
	for range chunk.Cells() {
		seen++
		if seen == 10 {
			break
		}
	}
	assert.Equal(t, 10, seen)
}

func TestChunkValueSemantics(t *testing.T) {
	original := NewChunk()
	copied := original
	copied.Set(5, 5, Black)

	assert.Equal(t, White, original.Get(5, 5), "копия не должна разделять клетки с оригиналом")
	assert.False(t, original.Equal(&copied))
}

func TestChunkEqualityAndOrder(t *testing.T) {
	a := NewChunk()
	b := NewChunk()
	assert.True(t, a.Equal(&b))
	assert.Equal(t, 0, a.Compare(&b))
	assert.Equal(t, a.Digest(), b.Digest())

	b.Set(LastIndex, LastIndex, Black)
	assert.False(t, a.Equal(&b))
	assert.Equal(t, -1, a.Compare(&b))
	assert.Equal(t, 1, b.Compare(&a))
	assert.NotEqual(t, a.Digest(), b.Digest())

	// Порядок лексикографический: первая отличающаяся клетка решает
	c := NewChunk()
	c.Set(0, 0, Black)
	assert.Equal(t, 1, c.Compare(&b))
}

func TestColorFlip(t *testing.T) {
	assert.Equal(t, Black, White.Flip())
	assert.Equal(t, White, Black.Flip())
	assert.Equal(t, "white", White.String())
	assert.Equal(t, "black", Black.String())
}
