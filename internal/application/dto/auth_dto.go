package dto

import "time"

// RegisterRequest body para POST /api/auth/register.
type RegisterRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Rol      string `json:"rol,omitempty"` // "admin" | "empleado"; por defecto empleado
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UsuarioResponse representación pública de un usuario.
type UsuarioResponse struct {
	ID        int64     `json:"id"`
	Nombre    string    `json:"nombre"`
	Email     string    `json:"email"`
	Rol       string    `json:"rol"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse token de acceso más el usuario autenticado.
type LoginResponse struct {
	Token   string          `json:"access_token"`
	Type    string          `json:"token_type"`
	Usuario UsuarioResponse `json:"usuario"`
}
