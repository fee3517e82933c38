package world

import (
	"github.com/cockroachdb/errors"
	"github.com/emirpasic/gods/maps/treemap"
)

// Backend выбирает структуру данных реестра канонических чанков
type Backend string

const (
	BackendHash    Backend = "hash"
	BackendOrdered Backend = "ordered"
)

// DefaultRegistryCapacity — начальная ёмкость hash-реестра
const DefaultRegistryCapacity = 512

// ErrUnknownBackend возвращается NewRegistry для неизвестного backend
var ErrUnknownBackend = errors.New("unknown registry backend")

// Registry сопоставляет содержимому чанка единственный канонический экземпляр.
// Канонические экземпляры не изменяются и не удаляются до конца работы.
type Registry interface {
	// Intern возвращает канонический экземпляр для содержимого c. Если такое
	// содержимое ещё не встречалось, сохраняется его копия и reused == false.
	Intern(c *Chunk) (canonical *Chunk, reused bool)
	// Lookup ищет канонический экземпляр без регистрации
	Lookup(c *Chunk) (*Chunk, bool)
	// Len возвращает количество различных зарегистрированных содержимых
	Len() int
}

// NewRegistry создаёт реестр с указанным backend
func NewRegistry(backend Backend, capacity int) (Registry, error) {
	switch backend {
	case BackendHash, "":
		return newHashRegistry(capacity), nil
	case BackendOrdered:
		return newOrderedRegistry(), nil
	default:
		return nil, errors.WithHint(
			errors.Wrapf(ErrUnknownBackend, "%q", string(backend)),
			"supported backends: hash, ordered",
		)
	}
}

// hashRegistry группирует канонические чанки по xxhash содержимого.
// Коллизии дайджеста разрешаются полным сравнением.
type hashRegistry struct {
	buckets map[uint64][]*Chunk
	size    int
}

func newHashRegistry(capacity int) *hashRegistry {
	if capacity <= 0 {
		capacity = DefaultRegistryCapacity
	}
	return &hashRegistry{buckets: make(map[uint64][]*Chunk, capacity)}
}

func (r *hashRegistry) Intern(c *Chunk) (*Chunk, bool) {
	digest := c.Digest()
	for _, candidate := range r.buckets[digest] {
		if candidate.Equal(c) {
			return candidate, true
		}
	}

	canonical := new(Chunk)
	*canonical = *c
	r.buckets[digest] = append(r.buckets[digest], canonical)
	r.size++
	return canonical, false
}

func (r *hashRegistry) Lookup(c *Chunk) (*Chunk, bool) {
	for _, candidate := range r.buckets[c.Digest()] {
		if candidate.Equal(c) {
			return candidate, true
		}
	}
	return nil, false
}

func (r *hashRegistry) Len() int {
	return r.size
}

// orderedRegistry хранит канонические чанки в красно-чёрном дереве,
// упорядоченном по Chunk.Compare.
type orderedRegistry struct {
	tree *treemap.Map
}

func newOrderedRegistry() *orderedRegistry {
	return &orderedRegistry{
		tree: treemap.NewWith(func(a, b interface{}) int {
			return a.(*Chunk).Compare(b.(*Chunk))
		}),
	}
}

func (r *orderedRegistry) Intern(c *Chunk) (*Chunk, bool) {
	if canonical, ok := r.Lookup(c); ok {
		return canonical, true
	}

	canonical := new(Chunk)
	*canonical = *c
	r.tree.Put(canonical, canonical)
	return canonical, false
}

func (r *orderedRegistry) Lookup(c *Chunk) (*Chunk, bool) {
	value, found := r.tree.Get(c)
	if !found {
		return nil, false
	}
	return value.(*Chunk), true
}

func (r *orderedRegistry) Len() int {
	return r.tree.Size()
}
