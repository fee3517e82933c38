package vec

import (
	"fmt"
	"math"
)

const (
	// ChunkShift — log2 стороны чанка (32 клетки)
	ChunkShift = 5
	// ChunkMask выделяет локальную координату внутри чанка
	ChunkMask = 1<<ChunkShift - 1
)

// Vec2 представляет 2D координаты
type Vec2 struct {
	X, Y int
}

// Add возвращает покомпонентную сумму
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// ToChunkCoords преобразует глобальные координаты в координаты чанка
func (v Vec2) ToChunkCoords() Vec2 {
	return Vec2{X: v.X >> ChunkShift, Y: v.Y >> ChunkShift} // Деление на 32 с округлением вниз
}

// LocalInChunk возвращает локальные координаты внутри чанка
func (v Vec2) LocalInChunk() Vec2 {
	return Vec2{X: v.X & ChunkMask, Y: v.Y & ChunkMask} // Неотрицательный остаток по модулю 32
}

// FromChunk собирает глобальные координаты клетки из координат чанка и локальной позиции
func FromChunk(chunk, local Vec2) Vec2 {
	return Vec2{X: chunk.X<<ChunkShift + local.X, Y: chunk.Y<<ChunkShift + local.Y}
}

// DistanceTo вычисляет расстояние до другой точки
func (v Vec2) DistanceTo(other Vec2) float64 {
	dx := float64(v.X - other.X)
	dy := float64(v.Y - other.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}
