package repository

import "github.com/jhoicas/tiyende-api/internal/domain/entity"

// SettingRepository define el puerto para la configuración clave-valor.
type SettingRepository interface {
	GetByName(name string) (*entity.Setting, bool)
	// Upsert crea el setting si no existe o actualiza Value y UpdatedAt.
	Upsert(name, value string) *entity.Setting
	List() []*entity.Setting
}
