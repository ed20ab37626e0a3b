package entity

import (
	"maps"
	"time"
)

// Activity entrada inmutable del registro de auditoría.
type Activity struct {
	ID        int64
	UserID    *int64
	Action    string         // texto legible, ej. "Vendor created"
	Details   map[string]any // payload libre
	Timestamp time.Time
}

// Clone devuelve una copia; Details se copia a un nivel.
func (a *Activity) Clone() *Activity {
	c := *a
	if a.UserID != nil {
		id := *a.UserID
		c.UserID = &id
	}
	c.Details = maps.Clone(a.Details)
	return &c
}
