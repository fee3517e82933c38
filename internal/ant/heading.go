package ant

import "github.com/annel0/antgrid/internal/vec"

// Heading — направление движения муравья. Значения перечислены по часовой стрелке.
type Heading uint8

const (
	Up Heading = iota
	Right
	Down
	Left
)

const headingCount = 4

// Rotate поворачивает направление на delta четвертей оборота (положительные — по часовой)
func (h Heading) Rotate(delta int) Heading {
	return Heading(((int(h)+delta)%headingCount + headingCount) % headingCount)
}

// Clockwise поворачивает на 90° по часовой стрелке
func (h Heading) Clockwise() Heading { return h.Rotate(1) }

// CounterClockwise поворачивает на 90° против часовой стрелки
func (h Heading) CounterClockwise() Heading { return h.Rotate(-1) }

// Delta возвращает смещение на одну клетку. Ось Y направлена вниз.
func (h Heading) Delta() vec.Vec2 {
	switch h {
	case Up:
		return vec.Vec2{X: 0, Y: -1}
	case Right:
		return vec.Vec2{X: 1, Y: 0}
	case Down:
		return vec.Vec2{X: 0, Y: 1}
	default:
		return vec.Vec2{X: -1, Y: 0}
	}
}

func (h Heading) String() string {
	switch h {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}
