package entity

import "time"

// Roles de usuario.
const (
	RolAdmin    = "admin"
	RolEmpleado = "empleado"
)

// Usuario representa un usuario del sistema de bodega.
type Usuario struct {
	ID           int64
	Nombre       string
	Email        string
	PasswordHash string
	Rol          string // "admin" | "empleado"
	CreatedAt    time.Time
}

// EsAdmin indica si el usuario puede ejecutar operaciones de catálogo y alertas.
func (u *Usuario) EsAdmin() bool {
	return u.Rol == RolAdmin
}
