package ant

import "github.com/annel0/antgrid/internal/world"

// Rule — локальное правило автомата: по цвету текущей клетки возвращает
// новый цвет клетки и поворот в четвертях оборота.
type Rule func(current world.Color) (next world.Color, turn int)

// Langton: белая клетка становится чёрной с поворотом направо,
// чёрная становится белой с поворотом налево.
func Langton(current world.Color) (world.Color, int) {
	if current == world.White {
		return world.Black, 1
	}
	return world.White, -1
}
