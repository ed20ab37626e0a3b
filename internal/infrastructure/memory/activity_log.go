package memory

import (
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/jhoicas/tiyende-api/internal/domain/entity"
	"github.com/jhoicas/tiyende-api/internal/domain/repository"
)

var _ repository.ActivityRepository = (*ActivityLog)(nil)

// ActivityLog registro de auditoría de solo-anexar. El orden de inserción es el
// orden cronológico; las entradas nunca se modifican ni se eliminan.
type ActivityLog struct {
	mu      sync.RWMutex
	now     func() time.Time
	nextID  int64
	entries []*entity.Activity
}

func newActivityLog(now func() time.Time) *ActivityLog {
	return &ActivityLog{now: now, nextID: 1}
}

// NewActivityRepository devuelve el registro de actividad del store.
func NewActivityRepository(s *Store) *ActivityLog {
	return s.activities
}

// Record anexa una entrada con id siguiente y la hora actual. Nunca falla.
func (l *ActivityLog) Record(userID *int64, action string, details map[string]any) *entity.Activity {
	a := &entity.Activity{
		Action:  action,
		Details: maps.Clone(details),
	}
	if a.Details == nil {
		a.Details = map[string]any{}
	}
	if userID != nil {
		id := *userID
		a.UserID = &id
	}

	l.mu.Lock()
	a.ID = l.nextID
	l.nextID++
	a.Timestamp = l.now()
	l.entries = append(l.entries, a)
	l.mu.Unlock()

	return a.Clone()
}

// Recent devuelve hasta limit entradas ordenadas por Timestamp descendente; a
// igual Timestamp gana la insertada más tarde. limit <= 0 usa DefaultActivityLimit.
func (l *ActivityLog) Recent(limit int) []*entity.Activity {
	if limit <= 0 {
		limit = repository.DefaultActivityLimit
	}

	l.mu.RLock()
	out := make([]*entity.Activity, 0, len(l.entries))
	for i := len(l.entries) - 1; i >= 0; i-- {
		out = append(out, l.entries[i].Clone())
	}
	l.mu.RUnlock()

	slices.SortStableFunc(out, func(a, b *entity.Activity) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Len número total de entradas registradas.
func (l *ActivityLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
