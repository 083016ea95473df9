package entity

import "time"

// Auditoria es un registro append-only de acciones de usuario.
type Auditoria struct {
	ID        string // UUID
	UsuarioID int64
	Accion    string
	Detalle   string
	Fecha     time.Time
	IPAddress string
}
