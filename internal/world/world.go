package world

import (
	"iter"

	"github.com/annel0/antgrid/internal/vec"
)

// DefaultMapCapacity — начальная ёмкость карты мира
const DefaultMapCapacity = 200_000

// ChunkMap — разреженная карта мира: координаты чанка → канонический экземпляр.
// Записи только добавляются или перезаписываются, но никогда не удаляются.
type ChunkMap struct {
	chunks map[vec.Vec2]*Chunk
}

// NewChunkMap создаёт пустую карту мира
func NewChunkMap(capacity int) *ChunkMap {
	if capacity <= 0 {
		capacity = DefaultMapCapacity
	}
	return &ChunkMap{chunks: make(map[vec.Vec2]*Chunk, capacity)}
}

// Put записывает канонический экземпляр по координатам чанка
func (m *ChunkMap) Put(coords vec.Vec2, chunk *Chunk) {
	m.chunks[coords] = chunk
}

// Get возвращает канонический экземпляр по координатам чанка
func (m *ChunkMap) Get(coords vec.Vec2) (*Chunk, bool) {
	chunk, ok := m.chunks[coords]
	return chunk, ok
}

// Len возвращает количество посещённых координат
func (m *ChunkMap) Len() int {
	return len(m.chunks)
}

// All обходит все записи карты в произвольном порядке
func (m *ChunkMap) All() iter.Seq2[vec.Vec2, *Chunk] {
	return func(yield func(vec.Vec2, *Chunk) bool) {
		for coords, chunk := range m.chunks {
			if !yield(coords, chunk) {
				return
			}
		}
	}
}
