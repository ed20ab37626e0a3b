package repository

import "github.com/jhoicas/tiyende-api/internal/domain/entity"

// VendorRepository define el puerto de persistencia para Vendor.
type VendorRepository interface {
	Create(in entity.InsertVendor) *entity.Vendor
	GetByID(id int64) (*entity.Vendor, bool)
	Update(id int64, patch entity.VendorPatch) (*entity.Vendor, bool)
	List() []*entity.Vendor
	Delete(id int64) bool
}
