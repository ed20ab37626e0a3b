package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User representa un operador del back-office.
type User struct {
	ID           int64
	Username     string // único entre usuarios vivos
	PasswordHash string // bcrypt hash, nunca plano después de persistir
	Email        string
	FullName     string
	Role         string // admin, staff
	Active       bool
	LastLogin    *time.Time // se marca en login/logout
	Token        *string    // token vigente; nil tras logout
}

// InsertUser forma de entrada para crear un usuario. Role vacío = staff; Active nil = true.
type InsertUser struct {
	Username     string
	PasswordHash string
	Email        string
	FullName     string
	Role         string
	Active       *bool
}

// UserPatch actualización parcial: solo se aplican los campos no nil.
type UserPatch struct {
	Username     *string
	PasswordHash *string
	Email        *string
	FullName     *string
	Role         *string
	Active       *bool
}

// Apply fusiona el patch sobre u.
func (p UserPatch) Apply(u *User) {
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.PasswordHash != nil {
		u.PasswordHash = *p.PasswordHash
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.FullName != nil {
		u.FullName = *p.FullName
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Active != nil {
		u.Active = *p.Active
	}
}

// Clone devuelve una copia profunda (punteros incluidos).
func (u *User) Clone() *User {
	c := *u
	if u.LastLogin != nil {
		t := *u.LastLogin
		c.LastLogin = &t
	}
	if u.Token != nil {
		tok := *u.Token
		c.Token = &tok
	}
	return &c
}
