package ant

import (
	"github.com/annel0/antgrid/internal/vec"
	"github.com/annel0/antgrid/internal/world"
)

// Ant управляет автоматом на бесконечной сетке, разбитой на чанки.
// Текущий («живой») чанк принадлежит только Ant и изменяется на месте;
// при выходе за его границы он канонизируется в Store, а соседний чанк
// загружается копией.
type Ant struct {
	store    *world.Store
	rule     Rule
	observer Observer

	coords  vec.Vec2 // координаты живого чанка
	local   vec.Vec2 // позиция внутри живого чанка, X — столбец, Y — строка
	heading Heading
	live    world.Chunk
	steps   uint64
}

// Option настраивает Ant
type Option func(*Ant)

// WithRule заменяет правило Langton
func WithRule(rule Rule) Option {
	return func(a *Ant) { a.rule = rule }
}

// WithObserver подключает наблюдателя переходов между чанками
func WithObserver(observer Observer) Option {
	return func(a *Ant) { a.observer = observer }
}

// New создаёт муравья в центре чанка (0,0), смотрящего вверх.
// Пустой стартовый чанк сразу регистрируется в store.
func New(store *world.Store, opts ...Option) *Ant {
	a := &Ant{
		store:    store,
		rule:     Langton,
		observer: noopObserver{},
		local:    vec.Vec2{X: world.ChunkSize / 2, Y: world.ChunkSize / 2},
		heading:  Up,
		live:     world.NewChunk(),
	}
	for _, opt := range opts {
		opt(a)
	}

	a.store.Commit(a.coords, &a.live)
	return a
}

// Step выполняет один шаг: перекрашивает текущую клетку, поворачивает и
// сдвигается на одну клетку, при необходимости переходя в соседний чанк.
func (a *Ant) Step() {
	next, turn := a.rule(a.live.Get(a.local.Y, a.local.X))
	a.live.Set(a.local.Y, a.local.X, next)
	a.heading = a.heading.Rotate(turn)

	target := a.local.Add(a.heading.Delta())
	if shift := target.ToChunkCoords(); shift != (vec.Vec2{}) {
		a.enter(a.coords.Add(shift))
	}
	a.local = target.LocalInChunk()
	a.steps++
}

// Run выполняет n шагов подряд
func (a *Ant) Run(n uint64) {
	for range n {
		a.Step()
	}
}

// enter сохраняет живой чанк и загружает чанк по координатам target
func (a *Ant) enter(target vec.Vec2) {
	_, reused := a.store.Commit(a.coords, &a.live)
	a.observer.ChunkCommitted(a.coords, reused)

	live, visited := a.store.Load(target)
	a.observer.ChunkLoaded(target, visited)

	a.live = live
	a.coords = target
}

// CountMarked сохраняет текущее состояние живого чанка и возвращает
// количество Black клеток по всем посещённым координатам.
func (a *Ant) CountMarked() int {
	_, reused := a.store.Commit(a.coords, &a.live)
	a.observer.ChunkCommitted(a.coords, reused)
	return a.store.CountMarked()
}

// ColorAt возвращает цвет клетки по глобальным координатам
func (a *Ant) ColorAt(pos vec.Vec2) world.Color {
	coords, local := pos.ToChunkCoords(), pos.LocalInChunk()
	if coords == a.coords {
		return a.live.Get(local.Y, local.X)
	}
	if chunk, ok := a.store.Lookup(coords); ok {
		return chunk.Get(local.Y, local.X)
	}
	return world.White
}

// Coords возвращает координаты живого чанка
func (a *Ant) Coords() vec.Vec2 { return a.coords }

// Local возвращает позицию внутри живого чанка
func (a *Ant) Local() vec.Vec2 { return a.local }

// Position возвращает глобальные координаты муравья
func (a *Ant) Position() vec.Vec2 { return vec.FromChunk(a.coords, a.local) }

func (a *Ant) Heading() Heading { return a.heading }

func (a *Ant) Steps() uint64 { return a.steps }

// Live возвращает копию живого чанка
func (a *Ant) Live() world.Chunk { return a.live }

// RegistryLen возвращает количество канонических содержимых в реестре
func (a *Ant) RegistryLen() int { return a.store.RegistryLen() }

// MapLen возвращает количество посещённых координат чанков
func (a *Ant) MapLen() int { return a.store.MapLen() }
