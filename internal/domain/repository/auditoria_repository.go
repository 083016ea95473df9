package repository

import "github.com/his-bodega/bodega-api/internal/domain/entity"

// AuditoriaRepository puerto append-only para el registro de auditoría.
type AuditoriaRepository interface {
	Create(a *entity.Auditoria) error
}
