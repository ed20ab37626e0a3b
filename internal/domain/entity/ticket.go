package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de Ticket.
const (
	TicketPaid      = "paid"
	TicketPending   = "pending"
	TicketRefunded  = "refunded"
	TicketCancelled = "cancelled"
)

// Ticket representa una reserva de asiento en una ruta para una fecha de viaje.
type Ticket struct {
	ID               int64
	BookingReference string // único, ej. TIY-8294
	RouteID          int64
	VendorID         int64
	CustomerName     string
	CustomerPhone    string
	CustomerEmail    *string
	SeatNumber       int
	Status           string
	Amount           decimal.Decimal
	PaymentMethod    *string
	PaymentReference *string
	TravelDate       time.Time
	BookingDate      time.Time
}

// HoldsSeat indica si el ticket ocupa su asiento (no cancelado ni reembolsado).
func (t *Ticket) HoldsSeat() bool {
	return t.Status == TicketPaid || t.Status == TicketPending
}

// InsertTicket forma de entrada para crear un ticket. Status vacío = pending.
type InsertTicket struct {
	BookingReference string
	RouteID          int64
	VendorID         int64
	CustomerName     string
	CustomerPhone    string
	CustomerEmail    *string
	SeatNumber       int
	Status           string
	Amount           decimal.Decimal
	PaymentMethod    *string
	PaymentReference *string
	TravelDate       time.Time
}

// TicketPatch actualización parcial de Ticket.
type TicketPatch struct {
	BookingReference *string
	RouteID          *int64
	VendorID         *int64
	CustomerName     *string
	CustomerPhone    *string
	CustomerEmail    *string
	SeatNumber       *int
	Status           *string
	Amount           *decimal.Decimal
	PaymentMethod    *string
	PaymentReference *string
	TravelDate       *time.Time
}

// Apply fusiona el patch sobre t.
func (p TicketPatch) Apply(t *Ticket) {
	if p.BookingReference != nil {
		t.BookingReference = *p.BookingReference
	}
	if p.RouteID != nil {
		t.RouteID = *p.RouteID
	}
	if p.VendorID != nil {
		t.VendorID = *p.VendorID
	}
	if p.CustomerName != nil {
		t.CustomerName = *p.CustomerName
	}
	if p.CustomerPhone != nil {
		t.CustomerPhone = *p.CustomerPhone
	}
	if p.CustomerEmail != nil {
		t.CustomerEmail = cloneString(p.CustomerEmail)
	}
	if p.SeatNumber != nil {
		t.SeatNumber = *p.SeatNumber
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.PaymentMethod != nil {
		t.PaymentMethod = cloneString(p.PaymentMethod)
	}
	if p.PaymentReference != nil {
		t.PaymentReference = cloneString(p.PaymentReference)
	}
	if p.TravelDate != nil {
		t.TravelDate = *p.TravelDate
	}
}

// Clone devuelve una copia profunda.
func (t *Ticket) Clone() *Ticket {
	c := *t
	c.CustomerEmail = cloneString(t.CustomerEmail)
	c.PaymentMethod = cloneString(t.PaymentMethod)
	c.PaymentReference = cloneString(t.PaymentReference)
	return &c
}

// IsValidTicketStatus indica si s es un estado de ticket conocido.
func IsValidTicketStatus(s string) bool {
	switch s {
	case TicketPaid, TicketPending, TicketRefunded, TicketCancelled:
		return true
	}
	return false
}
