package repository

import "github.com/jhoicas/tiyende-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// "No encontrado" se expresa con (nil, false) o false, nunca con error.
type UserRepository interface {
	// Create devuelve domain.ErrDuplicate si el username ya existe.
	Create(in entity.InsertUser) (*entity.User, error)
	GetByID(id int64) (*entity.User, bool)
	GetByUsername(username string) (*entity.User, bool)
	// Update devuelve domain.ErrDuplicate si el patch cambia el username a uno ocupado.
	Update(id int64, patch entity.UserPatch) (*entity.User, bool, error)
	List() []*entity.User
	Delete(id int64) bool
	// SetToken guarda (o limpia con nil) el token y marca LastLogin con la hora actual.
	SetToken(id int64, token *string) bool
}
