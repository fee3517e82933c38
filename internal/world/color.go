package world

// Color — цвет клетки. Нулевое значение White является цветом по умолчанию.
type Color uint8

const (
	White Color = iota // цвет непосещённой клетки
	Black
)

// Flip возвращает противоположный цвет
func (c Color) Flip() Color {
	if c == White {
		return Black
	}
	return White
}

// String возвращает строковое представление цвета
func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "unknown"
	}
}
