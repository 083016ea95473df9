package entity

import "time"

// Especialidad agrupa insumos por departamento para los reportes de consumo.
type Especialidad struct {
	ID        int64
	Nombre    string
	CreatedAt time.Time
}
