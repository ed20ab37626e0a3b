package memory

import (
	"strings"

	"github.com/jhoicas/tiyende-api/internal/domain/entity"
	"github.com/jhoicas/tiyende-api/internal/domain/repository"
)

var _ repository.SettingRepository = (*SettingRepo)(nil)

// SettingRepo implementación en memoria de SettingRepository, indexada por nombre.
type SettingRepo struct {
	s *Store
}

// NewSettingRepository construye el adaptador de settings sobre el store.
func NewSettingRepository(s *Store) *SettingRepo {
	return &SettingRepo{s: s}
}

// GetByName obtiene un setting por nombre.
func (r *SettingRepo) GetByName(name string) (*entity.Setting, bool) {
	t := r.s.settings
	t.mu.RLock()
	defer t.mu.RUnlock()
	id, ok := r.s.settingIDs[name]
	if !ok {
		return nil, false
	}
	c := *t.rows[id]
	return &c, true
}

// Upsert crea el setting o actualiza su valor; siempre registra "Setting updated".
// name y value se copian: pueden apuntar a buffers del request que Fiber reutiliza.
func (r *SettingRepo) Upsert(name, value string) *entity.Setting {
	name, value = strings.Clone(name), strings.Clone(value)
	t := r.s.settings
	t.mu.Lock()
	now := r.s.now()
	st, ok := t.rows[r.s.settingIDs[name]]
	if ok {
		st.Value = value
		st.UpdatedAt = now
	} else {
		st = &entity.Setting{ID: t.allocID(), Name: name, Value: value, UpdatedAt: now}
		t.rows[st.ID] = st
		r.s.settingIDs[name] = st.ID
	}
	out := *st
	t.mu.Unlock()

	r.s.activities.Record(nil, "Setting updated", map[string]any{"setting": name})
	return &out
}

// List devuelve todos los settings.
func (r *SettingRepo) List() []*entity.Setting {
	return r.s.settings.snapshot(nil, cloneSetting, func(st *entity.Setting) int64 { return st.ID })
}

func cloneSetting(st *entity.Setting) *entity.Setting {
	c := *st
	return &c
}
