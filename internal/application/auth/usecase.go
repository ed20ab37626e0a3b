package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tiyende-api/internal/application/dto"
	"github.com/jhoicas/tiyende-api/internal/application/usecase"
	"github.com/jhoicas/tiyende-api/internal/domain"
	"github.com/jhoicas/tiyende-api/internal/domain/repository"
	"github.com/jhoicas/tiyende-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login y logout.
type AuthUseCase struct {
	userRepo   repository.UserRepository
	activities repository.ActivityRepository
	jwtCfg     JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, activities repository.ActivityRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, activities: activities, jwtCfg: jwtCfg}
}

// Login verifica username/password, genera JWT, lo guarda en el usuario (marca
// lastLogin) y registra "User logged in".
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, ok := uc.userRepo.GetByUsername(in.Username)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Active {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.userRepo.SetToken(user.ID, &token)
	uc.activities.Record(&user.ID, "User logged in", map[string]any{"username": user.Username})

	return &dto.LoginResponse{
		User: dto.LoginUser{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			FullName: user.FullName,
			Role:     user.Role,
		},
		Token: token,
	}, nil
}

// Logout limpia el token guardado y registra "User logged out".
// Un usuario borrado después de emitir el token no es error.
func (uc *AuthUseCase) Logout(userID int64) {
	uc.userRepo.SetToken(userID, nil)
	uc.activities.Record(&userID, "User logged out", map[string]any{})
}

// Me devuelve el usuario autenticado; ErrUserNotFound si ya no existe.
func (uc *AuthUseCase) Me(userID int64) (*dto.UserResponse, error) {
	u, ok := uc.userRepo.GetByID(userID)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return usecase.ToUserResponse(u), nil
}

// ValidateSession verifica que el token siga siendo el vigente del usuario y
// devuelve el role guardado, que prevalece sobre el del token.
// ErrUnauthorized si el usuario ya no existe o cerró sesión; ErrForbidden si está inactivo.
func (uc *AuthUseCase) ValidateSession(userID int64, token string) (string, error) {
	u, ok := uc.userRepo.GetByID(userID)
	if !ok || u.Token == nil || *u.Token != token {
		return "", domain.ErrUnauthorized
	}
	if !u.Active {
		return "", domain.ErrForbidden
	}
	return u.Role, nil
}
