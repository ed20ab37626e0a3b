package memory

import (
	"github.com/jhoicas/tiyende-api/internal/domain/entity"
	"github.com/jhoicas/tiyende-api/internal/domain/repository"
)

var _ repository.VendorRepository = (*VendorRepo)(nil)

// VendorRepo implementación en memoria de VendorRepository.
type VendorRepo struct {
	s *Store
}

// NewVendorRepository construye el adaptador de vendors sobre el store.
func NewVendorRepository(s *Store) *VendorRepo {
	return &VendorRepo{s: s}
}

// Create persiste un vendor (Status vacío = active) y registra "Vendor created".
func (r *VendorRepo) Create(in entity.InsertVendor) *entity.Vendor {
	status := in.Status
	if status == "" {
		status = entity.VendorActive
	}
	v := &entity.Vendor{
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       cloneString(in.Address),
		Status:        status,
		Logo:          cloneString(in.Logo),
		CreatedAt:     r.s.now(),
	}

	t := r.s.vendors
	t.mu.Lock()
	v.ID = t.allocID()
	t.rows[v.ID] = v
	out := v.Clone()
	t.mu.Unlock()

	r.s.activities.Record(nil, "Vendor created", map[string]any{"vendorName": out.Name})
	return out
}

// GetByID obtiene un vendor por id.
func (r *VendorRepo) GetByID(id int64) (*entity.Vendor, bool) {
	t := r.s.vendors
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.rows[id]
	if !ok {
		return nil, false
	}
	return v.Clone(), true
}

// Update fusiona el patch y registra "Vendor updated" con el nombre previo.
func (r *VendorRepo) Update(id int64, patch entity.VendorPatch) (*entity.Vendor, bool) {
	t := r.s.vendors
	t.mu.Lock()
	v, ok := t.rows[id]
	if !ok {
		t.mu.Unlock()
		return nil, false
	}
	prevName := v.Name
	patch.Apply(v)
	out := v.Clone()
	t.mu.Unlock()

	r.s.activities.Record(nil, "Vendor updated", map[string]any{"vendorName": prevName})
	return out, true
}

// List devuelve todos los vendors.
func (r *VendorRepo) List() []*entity.Vendor {
	return r.s.vendors.snapshot(nil, (*entity.Vendor).Clone, vendorID)
}

// Delete elimina el vendor; registra "Vendor deleted" solo si existía.
func (r *VendorRepo) Delete(id int64) bool {
	t := r.s.vendors
	t.mu.Lock()
	v, ok := t.rows[id]
	if ok {
		delete(t.rows, id)
	}
	t.mu.Unlock()
	if !ok {
		return false
	}
	r.s.activities.Record(nil, "Vendor deleted", map[string]any{"vendorName": v.Name})
	return true
}

func vendorID(v *entity.Vendor) int64 { return v.ID }

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
