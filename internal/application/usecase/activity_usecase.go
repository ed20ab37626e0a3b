package usecase

import (
	"github.com/jhoicas/tiyende-api/internal/application/dto"
	"github.com/jhoicas/tiyende-api/internal/domain/repository"
)

const maxActivityLimit = 500

// ActivityUseCase consulta y registro manual del log de actividad.
type ActivityUseCase struct {
	repo repository.ActivityRepository
}

// NewActivityUseCase construye el caso de uso.
func NewActivityUseCase(repo repository.ActivityRepository) *ActivityUseCase {
	return &ActivityUseCase{repo: repo}
}

// Recent devuelve las últimas limit actividades (default 20, máx. 500).
func (uc *ActivityUseCase) Recent(limit int) []dto.ActivityResponse {
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}
	return ToActivityList(uc.repo.Recent(limit))
}

// Record registra una actividad manual. UserID nil toma actorID.
func (uc *ActivityUseCase) Record(actorID int64, in dto.CreateActivityRequest) (*dto.ActivityResponse, error) {
	if in.Action == "" {
		return nil, invalidf("action es requerido")
	}
	userID := in.UserID
	if userID == nil && actorID > 0 {
		userID = &actorID
	}
	return ToActivityResponse(uc.repo.Record(userID, in.Action, in.Details)), nil
}
