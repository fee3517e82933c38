package world

import (
	"iter"

	"github.com/annel0/antgrid/internal/vec"
)

// Store объединяет реестр канонических чанков и карту мира.
// Чанки, попавшие в Store, никогда не изменяются на месте: изменения
// выполняются над копией, полученной через Load, и возвращаются через Commit.
type Store struct {
	registry Registry
	chunks   *ChunkMap
}

// NewStore создаёт хранилище поверх указанного реестра
func NewStore(registry Registry, mapCapacity int) *Store {
	return &Store{
		registry: registry,
		chunks:   NewChunkMap(mapCapacity),
	}
}

// Commit канонизирует содержимое live и записывает его в карту по координатам coords,
// перезаписывая прежнюю запись. reused == true, если содержимое уже было в реестре.
func (s *Store) Commit(coords vec.Vec2, live *Chunk) (canonical *Chunk, reused bool) {
	canonical, reused = s.registry.Intern(live)
	s.chunks.Put(coords, canonical)
	return canonical, reused
}

// Load возвращает независимую копию чанка по координатам coords.
// Для непосещённых координат возвращается новый белый чанк и visited == false.
func (s *Store) Load(coords vec.Vec2) (chunk Chunk, visited bool) {
	canonical, ok := s.chunks.Get(coords)
	if !ok {
		return NewChunk(), false
	}
	return *canonical, true
}

// Lookup возвращает канонический экземпляр по координатам без копирования.
// Результат нельзя изменять.
func (s *Store) Lookup(coords vec.Vec2) (*Chunk, bool) {
	return s.chunks.Get(coords)
}

// RegistryLen возвращает количество различных канонических содержимых
func (s *Store) RegistryLen() int {
	return s.registry.Len()
}

// MapLen возвращает количество посещённых координат
func (s *Store) MapLen() int {
	return s.chunks.Len()
}

// Chunks обходит все посещённые координаты
func (s *Store) Chunks() iter.Seq2[vec.Vec2, *Chunk] {
	return s.chunks.All()
}

// CountMarked суммирует Black клетки по всем координатам карты.
// Общий канонический экземпляр учитывается столько раз, сколько координат на него ссылается.
func (s *Store) CountMarked() int {
	n := 0
	for _, chunk := range s.Chunks() {
		n += chunk.CountMarked()
	}
	return n
}
