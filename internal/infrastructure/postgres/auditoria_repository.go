package postgres

import (
	"context"
	"fmt"

	"github.com/his-bodega/bodega-api/internal/domain/entity"
	"github.com/his-bodega/bodega-api/internal/domain/repository"
)

var _ repository.AuditoriaRepository = (*AuditoriaRepo)(nil)

// AuditoriaRepo implementación append-only de AuditoriaRepository sobre PostgreSQL.
type AuditoriaRepo struct {
	q Querier
}

// NewAuditoriaRepository construye el adaptador de auditoría.
func NewAuditoriaRepository(q Querier) *AuditoriaRepo {
	return &AuditoriaRepo{q: q}
}

// Create anexa una entrada al registro de auditoría.
func (r *AuditoriaRepo) Create(a *entity.Auditoria) error {
	query := `
		INSERT INTO auditoria (id, usuario_id, accion, detalle, fecha, ip_address)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.UsuarioID, a.Accion, a.Detalle, a.Fecha, a.IPAddress,
	)
	if err != nil {
		return fmt.Errorf("insert auditoria: %w", err)
	}
	return nil
}
