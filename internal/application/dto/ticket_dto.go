package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTicketRequest entrada para crear un ticket.
// BookingReference vacío = se genera; TravelDate acepta YYYY-MM-DD o RFC3339.
type CreateTicketRequest struct {
	BookingReference string          `json:"bookingReference"`
	RouteID          int64           `json:"routeId" validate:"required"`
	VendorID         int64           `json:"vendorId" validate:"required"`
	CustomerName     string          `json:"customerName" validate:"required"`
	CustomerPhone    string          `json:"customerPhone" validate:"required"`
	CustomerEmail    *string         `json:"customerEmail"`
	SeatNumber       int             `json:"seatNumber" validate:"required,min=1"`
	Status           string          `json:"status" validate:"omitempty,oneof=paid pending refunded cancelled"`
	Amount           decimal.Decimal `json:"amount"`
	PaymentMethod    *string         `json:"paymentMethod"`
	PaymentReference *string         `json:"paymentReference"`
	TravelDate       string          `json:"travelDate" validate:"required"`
}

// UpdateTicketRequest actualización parcial de un ticket.
type UpdateTicketRequest struct {
	BookingReference *string          `json:"bookingReference"`
	RouteID          *int64           `json:"routeId"`
	VendorID         *int64           `json:"vendorId"`
	CustomerName     *string          `json:"customerName"`
	CustomerPhone    *string          `json:"customerPhone"`
	CustomerEmail    *string          `json:"customerEmail"`
	SeatNumber       *int             `json:"seatNumber"`
	Status           *string          `json:"status"`
	Amount           *decimal.Decimal `json:"amount"`
	PaymentMethod    *string          `json:"paymentMethod"`
	PaymentReference *string          `json:"paymentReference"`
	TravelDate       *string          `json:"travelDate"`
}

// TicketFilter filtros de listado (query string).
type TicketFilter struct {
	RouteID  int64 `query:"routeId"`
	VendorID int64 `query:"vendorId"`
}

// TicketResponse salida de un ticket.
type TicketResponse struct {
	ID               int64           `json:"id"`
	BookingReference string          `json:"bookingReference"`
	RouteID          int64           `json:"routeId"`
	VendorID         int64           `json:"vendorId"`
	CustomerName     string          `json:"customerName"`
	CustomerPhone    string          `json:"customerPhone"`
	CustomerEmail    *string         `json:"customerEmail"`
	SeatNumber       int             `json:"seatNumber"`
	Status           string          `json:"status"`
	Amount           decimal.Decimal `json:"amount"`
	PaymentMethod    *string         `json:"paymentMethod"`
	PaymentReference *string         `json:"paymentReference"`
	TravelDate       time.Time       `json:"travelDate"`
	BookingDate      time.Time       `json:"bookingDate"`
}
