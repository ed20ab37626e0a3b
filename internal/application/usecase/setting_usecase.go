package usecase

import (
	"github.com/jhoicas/tiyende-api/internal/application/dto"
	"github.com/jhoicas/tiyende-api/internal/domain/repository"
)

// SettingUseCase lectura y escritura de la configuración clave-valor.
type SettingUseCase struct {
	repo repository.SettingRepository
}

// NewSettingUseCase construye el caso de uso.
func NewSettingUseCase(repo repository.SettingRepository) *SettingUseCase {
	return &SettingUseCase{repo: repo}
}

// Get obtiene un setting por nombre; (nil, nil) si no existe.
func (uc *SettingUseCase) Get(name string) (*dto.SettingResponse, error) {
	s, ok := uc.repo.GetByName(name)
	if !ok {
		return nil, nil
	}
	return ToSettingResponse(s), nil
}

// Upsert crea o actualiza un setting.
func (uc *SettingUseCase) Upsert(name string, in dto.UpsertSettingRequest) (*dto.SettingResponse, error) {
	if name == "" {
		return nil, invalidf("name es requerido")
	}
	if in.Value == "" {
		return nil, invalidf("value es requerido")
	}
	return ToSettingResponse(uc.repo.Upsert(name, in.Value)), nil
}

// List lista todos los settings.
func (uc *SettingUseCase) List() []dto.SettingResponse {
	list := uc.repo.List()
	out := make([]dto.SettingResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *ToSettingResponse(s))
	}
	return out
}
