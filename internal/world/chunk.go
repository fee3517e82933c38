package world

import (
	"iter"
	"slices"

	"github.com/annel0/antgrid/internal/vec"
	"github.com/cespare/xxhash/v2"
)

const (
	// ChunkSize — сторона квадратного чанка в клетках
	ChunkSize = 1 << vec.ChunkShift
	// LastIndex — индекс последней строки/столбца чанка
	LastIndex = ChunkSize - 1

	chunkCells = ChunkSize * ChunkSize
)

// Chunk представляет участок мира размером ChunkSize x ChunkSize клеток.
// Клетки хранятся построчно в массиве фиксированной длины, поэтому присваивание
// чанка копирует его содержимое целиком.
type Chunk struct {
	cells [chunkCells]Color
}

// NewChunk создаёт чанк, все клетки которого White
func NewChunk() Chunk {
	return Chunk{}
}

// Size возвращает высоту и ширину чанка
func (c *Chunk) Size() (h, w int) {
	return ChunkSize, ChunkSize
}

// Get возвращает цвет клетки (y, x). Выход за границы приводит к панике.
func (c *Chunk) Get(y, x int) Color {
	return c.cells[index(y, x)]
}

// Set устанавливает цвет клетки (y, x)
func (c *Chunk) Set(y, x int, color Color) {
	c.cells[index(y, x)] = color
}

func index(y, x int) int {
	if uint(y) >= ChunkSize || uint(x) >= ChunkSize {
		panic("world: chunk index out of range")
	}
	return y*ChunkSize + x
}

// Cells возвращает клетки чанка построчно. Последовательность можно обходить повторно.
func (c *Chunk) Cells() iter.Seq[Color] {
	return func(yield func(Color) bool) {
		for _, color := range c.cells {
			if !yield(color) {
				return
			}
		}
	}
}

// CountMarked возвращает количество Black клеток
func (c *Chunk) CountMarked() int {
	n := 0
	for color := range c.Cells() {
		if color == Black {
			n++
		}
	}
	return n
}

// Equal сравнивает содержимое чанков
func (c *Chunk) Equal(other *Chunk) bool {
	return c.cells == other.cells
}

// Compare задаёт лексикографический порядок по последовательности клеток
func (c *Chunk) Compare(other *Chunk) int {
	return slices.Compare(c.cells[:], other.cells[:])
}

// Digest возвращает xxhash содержимого чанка
func (c *Chunk) Digest() uint64 {
	var buf [chunkCells]byte
	for i, color := range c.cells {
		buf[i] = byte(color)
	}
	return xxhash.Sum64(buf[:])
}
