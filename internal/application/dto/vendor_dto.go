package dto

import "time"

// CreateVendorRequest entrada para crear un vendor.
type CreateVendorRequest struct {
	Name          string  `json:"name" validate:"required"`
	ContactPerson string  `json:"contactPerson" validate:"required"`
	Email         string  `json:"email" validate:"required,email"`
	Phone         string  `json:"phone" validate:"required"`
	Address       *string `json:"address"`
	Status        string  `json:"status" validate:"omitempty,oneof=active inactive pending"`
	Logo          *string `json:"logo"`
}

// UpdateVendorRequest actualización parcial de un vendor.
type UpdateVendorRequest struct {
	Name          *string `json:"name"`
	ContactPerson *string `json:"contactPerson"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	Status        *string `json:"status"`
	Logo          *string `json:"logo"`
}

// VendorResponse salida de un vendor.
type VendorResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contactPerson"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       *string   `json:"address"`
	Status        string    `json:"status"`
	Logo          *string   `json:"logo"`
	CreatedAt     time.Time `json:"createdAt"`
}
