package repository

import "github.com/jhoicas/tiyende-api/internal/domain/entity"

// DefaultActivityLimit límite de Recent cuando limit <= 0.
const DefaultActivityLimit = 20

// ActivityRepository registro de auditoría de solo-anexar.
type ActivityRepository interface {
	Record(userID *int64, action string, details map[string]any) *entity.Activity
	// Recent devuelve hasta limit entradas, la más reciente primero.
	Recent(limit int) []*entity.Activity
}
