package dto

import "time"

// UpsertSettingRequest cuerpo de POST /api/settings/:name.
type UpsertSettingRequest struct {
	Value string `json:"value" validate:"required"`
}

// SettingResponse salida de un setting.
type SettingResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Value       string    `json:"value"`
	Description string    `json:"description"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
