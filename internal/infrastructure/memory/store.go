// Package memory implementa los puertos de repositorio sobre mapas en memoria.
//
// Cada tipo de entidad vive en su propia tabla protegida por un sync.RWMutex; los
// ids se asignan de forma monótona por tabla empezando en 1 y nunca se reutilizan.
// Todo valor que entra o sale del store es una copia: el store es dueño exclusivo
// de sus registros. El estado se pierde al reiniciar el proceso.
package memory

import (
	"cmp"
	"slices"
	"sync"
	"time"

	"github.com/jhoicas/tiyende-api/internal/domain/entity"
)

// Store agrupa las tablas en memoria y el registro de actividad compartido.
// Se construye una vez al arrancar y se inyecta a los repositorios.
type Store struct {
	now func() time.Time

	users    *table[entity.User]
	vendors  *table[entity.Vendor]
	routes   *table[entity.Route]
	tickets  *table[entity.Ticket]
	settings *table[entity.Setting]

	// índices de unicidad, protegidos por el mutex de su tabla
	usernames  map[string]int64
	references map[string]int64
	settingIDs map[string]int64

	activities *ActivityLog
}

// Option configura el Store.
type Option func(*Store)

// WithClock reemplaza time.Now (útil en tests).
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore crea un store vacío.
func NewStore(opts ...Option) *Store {
	s := &Store{
		now:        time.Now,
		users:      newTable[entity.User](),
		vendors:    newTable[entity.Vendor](),
		routes:     newTable[entity.Route](),
		tickets:    newTable[entity.Ticket](),
		settings:   newTable[entity.Setting](),
		usernames:  make(map[string]int64),
		references: make(map[string]int64),
		settingIDs: make(map[string]int64),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.activities = newActivityLog(func() time.Time { return s.now() })
	return s
}

// Activities devuelve el registro de actividad del store.
func (s *Store) Activities() *ActivityLog {
	return s.activities
}

// table contenedor genérico con id monótono.
type table[T any] struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]*T
}

func newTable[T any]() *table[T] {
	return &table[T]{nextID: 1, rows: make(map[int64]*T)}
}

// allocID devuelve el siguiente id. Requiere mu tomado en escritura.
func (t *table[T]) allocID() int64 {
	id := t.nextID
	t.nextID++
	return id
}

// snapshot copia las filas que cumplen keep, ordenadas por id ascendente.
func (t *table[T]) snapshot(keep func(*T) bool, clone func(*T) *T, id func(*T) int64) []*T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]*T, 0, len(t.rows))
	for _, row := range t.rows {
		if keep == nil || keep(row) {
			out = append(out, clone(row))
		}
	}
	slices.SortFunc(out, func(a, b *T) int { return cmp.Compare(id(a), id(b)) })
	return out
}
