package ant

import "github.com/annel0/antgrid/internal/vec"

// Observer получает события перехода между чанками
type Observer interface {
	// ChunkCommitted вызывается после сохранения живого чанка в Store
	ChunkCommitted(coords vec.Vec2, reused bool)
	// ChunkLoaded вызывается после загрузки соседнего чанка
	ChunkLoaded(coords vec.Vec2, visited bool)
}

type noopObserver struct{}

func (noopObserver) ChunkCommitted(vec.Vec2, bool) {}
func (noopObserver) ChunkLoaded(vec.Vec2, bool)    {}
