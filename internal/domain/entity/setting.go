package entity

import "time"

// Setting par clave-valor de configuración del negocio (ej. system_name).
type Setting struct {
	ID          int64
	Name        string
	Value       string
	Description string
	UpdatedAt   time.Time
}
