package entity

import "time"

// Estados válidos de Vendor.
const (
	VendorActive   = "active"
	VendorInactive = "inactive"
	VendorPending  = "pending"
)

// Vendor representa una empresa de buses que opera rutas.
type Vendor struct {
	ID            int64
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Address       *string
	Status        string // active, inactive, pending
	Logo          *string
	CreatedAt     time.Time
}

// InsertVendor forma de entrada para crear un vendor. Status vacío = active.
type InsertVendor struct {
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Address       *string
	Status        string
	Logo          *string
}

// VendorPatch actualización parcial de Vendor.
type VendorPatch struct {
	Name          *string
	ContactPerson *string
	Email         *string
	Phone         *string
	Address       *string
	Status        *string
	Logo          *string
}

// Apply fusiona el patch sobre v.
func (p VendorPatch) Apply(v *Vendor) {
	if p.Name != nil {
		v.Name = *p.Name
	}
	if p.ContactPerson != nil {
		v.ContactPerson = *p.ContactPerson
	}
	if p.Email != nil {
		v.Email = *p.Email
	}
	if p.Phone != nil {
		v.Phone = *p.Phone
	}
	if p.Address != nil {
		a := *p.Address
		v.Address = &a
	}
	if p.Status != nil {
		v.Status = *p.Status
	}
	if p.Logo != nil {
		l := *p.Logo
		v.Logo = &l
	}
}

// Clone devuelve una copia profunda.
func (v *Vendor) Clone() *Vendor {
	c := *v
	c.Address = cloneString(v.Address)
	c.Logo = cloneString(v.Logo)
	return &c
}

// IsValidVendorStatus indica si s es un estado de vendor conocido.
func IsValidVendorStatus(s string) bool {
	return s == VendorActive || s == VendorInactive || s == VendorPending
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
