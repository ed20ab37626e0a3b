package dto

import "time"

// CreateActivityRequest entrada para registrar una actividad manual.
// UserID nil = usuario del token.
type CreateActivityRequest struct {
	UserID  *int64         `json:"userId"`
	Action  string         `json:"action" validate:"required"`
	Details map[string]any `json:"details"`
}

// ActivityResponse salida de una entrada del registro.
type ActivityResponse struct {
	ID        int64          `json:"id"`
	UserID    *int64         `json:"userId"`
	Action    string         `json:"action"`
	Details   map[string]any `json:"details"`
	Timestamp time.Time      `json:"timestamp"`
}
