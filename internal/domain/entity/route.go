package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de Route.
const (
	RouteActive    = "active"
	RouteInactive  = "inactive"
	RouteSuspended = "suspended"
)

// Route representa un trayecto regular de un vendor (ej. Lusaka → Livingstone).
type Route struct {
	ID               int64
	VendorID         int64
	Departure        string
	Destination      string
	DepartureTime    string // HH:MM
	EstimatedArrival string // HH:MM
	Fare             decimal.Decimal
	Capacity         int
	Status           string
	DaysOfWeek       []string // "Monday", "Tuesday", ...
	CreatedAt        time.Time
}

// Label devuelve "origen → destino".
func (r *Route) Label() string {
	return r.Departure + " → " + r.Destination
}

// InsertRoute forma de entrada para crear una ruta. Status vacío = active.
type InsertRoute struct {
	VendorID         int64
	Departure        string
	Destination      string
	DepartureTime    string
	EstimatedArrival string
	Fare             decimal.Decimal
	Capacity         int
	Status           string
	DaysOfWeek       []string
}

// RoutePatch actualización parcial de Route.
type RoutePatch struct {
	VendorID         *int64
	Departure        *string
	Destination      *string
	DepartureTime    *string
	EstimatedArrival *string
	Fare             *decimal.Decimal
	Capacity         *int
	Status           *string
	DaysOfWeek       []string // nil = sin cambio
}

// Apply fusiona el patch sobre r.
func (p RoutePatch) Apply(r *Route) {
	if p.VendorID != nil {
		r.VendorID = *p.VendorID
	}
	if p.Departure != nil {
		r.Departure = *p.Departure
	}
	if p.Destination != nil {
		r.Destination = *p.Destination
	}
	if p.DepartureTime != nil {
		r.DepartureTime = *p.DepartureTime
	}
	if p.EstimatedArrival != nil {
		r.EstimatedArrival = *p.EstimatedArrival
	}
	if p.Fare != nil {
		r.Fare = *p.Fare
	}
	if p.Capacity != nil {
		r.Capacity = *p.Capacity
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.DaysOfWeek != nil {
		r.DaysOfWeek = append([]string(nil), p.DaysOfWeek...)
	}
}

// Clone devuelve una copia profunda.
func (r *Route) Clone() *Route {
	c := *r
	c.DaysOfWeek = append([]string(nil), r.DaysOfWeek...)
	return &c
}

// IsValidRouteStatus indica si s es un estado de ruta conocido.
func IsValidRouteStatus(s string) bool {
	return s == RouteActive || s == RouteInactive || s == RouteSuspended
}
