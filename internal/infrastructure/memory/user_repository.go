package memory

import (
	"github.com/jhoicas/tiyende-api/internal/domain"
	"github.com/jhoicas/tiyende-api/internal/domain/entity"
	"github.com/jhoicas/tiyende-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación en memoria de UserRepository. Las altas de usuario no
// generan actividad; login y logout sí (desde el caso de uso de auth).
type UserRepo struct {
	s *Store
}

// NewUserRepository construye el adaptador de usuarios sobre el store.
func NewUserRepository(s *Store) *UserRepo {
	return &UserRepo{s: s}
}

// Create persiste un usuario (Role vacío = staff, Active nil = true).
func (r *UserRepo) Create(in entity.InsertUser) (*entity.User, error) {
	role := in.Role
	if role == "" {
		role = entity.RoleStaff
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	u := &entity.User{
		Username:     in.Username,
		PasswordHash: in.PasswordHash,
		Email:        in.Email,
		FullName:     in.FullName,
		Role:         role,
		Active:       active,
	}

	t := r.s.users
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, taken := r.s.usernames[u.Username]; taken {
		return nil, domain.ErrDuplicate
	}
	u.ID = t.allocID()
	t.rows[u.ID] = u
	r.s.usernames[u.Username] = u.ID
	return u.Clone(), nil
}

// GetByID obtiene un usuario por id.
func (r *UserRepo) GetByID(id int64) (*entity.User, bool) {
	t := r.s.users
	t.mu.RLock()
	defer t.mu.RUnlock()
	u, ok := t.rows[id]
	if !ok {
		return nil, false
	}
	return u.Clone(), true
}

// GetByUsername obtiene un usuario por username (coincidencia exacta).
func (r *UserRepo) GetByUsername(username string) (*entity.User, bool) {
	t := r.s.users
	t.mu.RLock()
	defer t.mu.RUnlock()
	id, ok := r.s.usernames[username]
	if !ok {
		return nil, false
	}
	return t.rows[id].Clone(), true
}

// Update fusiona el patch. Devuelve ErrDuplicate si el nuevo username está ocupado.
func (r *UserRepo) Update(id int64, patch entity.UserPatch) (*entity.User, bool, error) {
	t := r.s.users
	t.mu.Lock()
	defer t.mu.Unlock()
	u, ok := t.rows[id]
	if !ok {
		return nil, false, nil
	}
	if patch.Username != nil && *patch.Username != u.Username {
		if _, taken := r.s.usernames[*patch.Username]; taken {
			return nil, true, domain.ErrDuplicate
		}
		delete(r.s.usernames, u.Username)
		r.s.usernames[*patch.Username] = u.ID
	}
	patch.Apply(u)
	return u.Clone(), true, nil
}

// List devuelve todos los usuarios.
func (r *UserRepo) List() []*entity.User {
	return r.s.users.snapshot(nil, (*entity.User).Clone, userID)
}

// Delete elimina el usuario y libera su username.
func (r *UserRepo) Delete(id int64) bool {
	t := r.s.users
	t.mu.Lock()
	defer t.mu.Unlock()
	u, ok := t.rows[id]
	if !ok {
		return false
	}
	delete(t.rows, id)
	delete(r.s.usernames, u.Username)
	return true
}

// SetToken guarda el token (nil lo limpia) y marca LastLogin con la hora actual.
func (r *UserRepo) SetToken(id int64, token *string) bool {
	t := r.s.users
	t.mu.Lock()
	defer t.mu.Unlock()
	u, ok := t.rows[id]
	if !ok {
		return false
	}
	u.Token = cloneString(token)
	now := r.s.now()
	u.LastLogin = &now
	return true
}

func userID(u *entity.User) int64 { return u.ID }
