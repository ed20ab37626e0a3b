package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateRouteRequest entrada para crear una ruta.
type CreateRouteRequest struct {
	VendorID         int64           `json:"vendorId" validate:"required"`
	Departure        string          `json:"departure" validate:"required"`
	Destination      string          `json:"destination" validate:"required"`
	DepartureTime    string          `json:"departureTime" validate:"required"`    // HH:MM
	EstimatedArrival string          `json:"estimatedArrival" validate:"required"` // HH:MM
	Fare             decimal.Decimal `json:"fare"`
	Capacity         int             `json:"capacity" validate:"required,min=1"`
	Status           string          `json:"status" validate:"omitempty,oneof=active inactive suspended"`
	DaysOfWeek       []string        `json:"daysOfWeek"`
}

// UpdateRouteRequest actualización parcial de una ruta.
type UpdateRouteRequest struct {
	VendorID         *int64           `json:"vendorId"`
	Departure        *string          `json:"departure"`
	Destination      *string          `json:"destination"`
	DepartureTime    *string          `json:"departureTime"`
	EstimatedArrival *string          `json:"estimatedArrival"`
	Fare             *decimal.Decimal `json:"fare"`
	Capacity         *int             `json:"capacity"`
	Status           *string          `json:"status"`
	DaysOfWeek       []string         `json:"daysOfWeek"`
}

// RouteResponse salida de una ruta.
type RouteResponse struct {
	ID               int64           `json:"id"`
	VendorID         int64           `json:"vendorId"`
	Departure        string          `json:"departure"`
	Destination      string          `json:"destination"`
	DepartureTime    string          `json:"departureTime"`
	EstimatedArrival string          `json:"estimatedArrival"`
	Fare             decimal.Decimal `json:"fare"`
	Capacity         int             `json:"capacity"`
	Status           string          `json:"status"`
	DaysOfWeek       []string        `json:"daysOfWeek"`
	CreatedAt        time.Time       `json:"createdAt"`
}
