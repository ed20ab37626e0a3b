package usecase

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tiyende-api/internal/application/dto"
	"github.com/jhoicas/tiyende-api/internal/domain"
	"github.com/jhoicas/tiyende-api/internal/domain/entity"
	"github.com/jhoicas/tiyende-api/internal/domain/repository"
)

const minPasswordLen = 6

// UserUseCase administración de usuarios (solo admin). Las contraseñas se guardan con bcrypt.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create crea un usuario. Devuelve ErrDuplicate si el username ya existe.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Email == "" || in.FullName == "" {
		return nil, invalidf("username, email y fullName son requeridos")
	}
	if len(in.Password) < minPasswordLen {
		return nil, invalidf("password debe tener al menos %d caracteres", minPasswordLen)
	}
	if in.Role != "" && !isValidRole(in.Role) {
		return nil, invalidf("role debe ser admin o staff")
	}
	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u, err := uc.repo.Create(entity.InsertUser{
		Username:     in.Username,
		PasswordHash: hash,
		Email:        in.Email,
		FullName:     in.FullName,
		Role:         in.Role,
		Active:       in.Active,
	})
	if err != nil {
		return nil, err
	}
	return ToUserResponse(u), nil
}

// GetByID obtiene un usuario; (nil, nil) si no existe.
func (uc *UserUseCase) GetByID(id int64) (*dto.UserResponse, error) {
	u, ok := uc.repo.GetByID(id)
	if !ok {
		return nil, nil
	}
	return ToUserResponse(u), nil
}

// Update aplica una actualización parcial; (nil, nil) si no existe.
func (uc *UserUseCase) Update(id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	patch := entity.UserPatch{
		Username: in.Username,
		Email:    in.Email,
		FullName: in.FullName,
		Role:     in.Role,
		Active:   in.Active,
	}
	if in.Username != nil && *in.Username == "" {
		return nil, invalidf("username no puede ser vacío")
	}
	if in.Role != nil && !isValidRole(*in.Role) {
		return nil, invalidf("role debe ser admin o staff")
	}
	if in.Password != nil {
		if len(*in.Password) < minPasswordLen {
			return nil, invalidf("password debe tener al menos %d caracteres", minPasswordLen)
		}
		hash, err := HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = &hash
	}
	u, ok, err := uc.repo.Update(id, patch)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return ToUserResponse(u), nil
}

// List lista todos los usuarios.
func (uc *UserUseCase) List() []dto.UserResponse {
	list := uc.repo.List()
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *ToUserResponse(u))
	}
	return out
}

// Delete elimina un usuario. Devuelve domain.ErrNotFound si no existía.
func (uc *UserUseCase) Delete(id int64) error {
	if !uc.repo.Delete(id) {
		return domain.ErrNotFound
	}
	return nil
}

// HashPassword genera el hash bcrypt de una contraseña.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func isValidRole(r string) bool {
	return r == entity.RoleAdmin || r == entity.RoleStaff
}
