package postgres

import (
	"context"
	"fmt"

	"github.com/his-bodega/bodega-api/internal/domain/entity"
	"github.com/his-bodega/bodega-api/internal/domain/repository"
)

var _ repository.AlertaRepository = (*AlertaRepo)(nil)

// AlertaRepo implementación de AlertaRepository sobre PostgreSQL.
type AlertaRepo struct {
	q Querier
}

// NewAlertaRepository construye el adaptador de alertas.
func NewAlertaRepository(q Querier) *AlertaRepo {
	return &AlertaRepo{q: q}
}

// Create persiste una alerta y deja el ID generado en a.
func (r *AlertaRepo) Create(a *entity.Alerta) error {
	query := `
		INSERT INTO alertas (insumo_id, mensaje, fecha, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		a.InsumoID, a.Mensaje, a.Fecha, a.CreatedAt,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("insert alerta: %w", err)
	}
	return nil
}

// List lista alertas con paginación, de la más reciente a la más antigua.
func (r *AlertaRepo) List(limit, offset int) ([]*entity.Alerta, error) {
	query := `
		SELECT id, insumo_id, mensaje, fecha, created_at
		FROM alertas ORDER BY fecha DESC, id DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// ListByInsumoIDs lista las alertas de un conjunto de insumos en una sola consulta.
func (r *AlertaRepo) ListByInsumoIDs(ids []int64) ([]*entity.Alerta, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `
		SELECT id, insumo_id, mensaje, fecha, created_at
		FROM alertas WHERE insumo_id = ANY($1) ORDER BY fecha DESC, id DESC`
	return r.list(query, ids)
}

// ExisteConMensaje reporta si ya existe una alerta con ese mensaje exacto para el insumo.
func (r *AlertaRepo) ExisteConMensaje(insumoID int64, mensaje string) (bool, error) {
	var existe bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM alertas WHERE insumo_id = $1 AND mensaje = $2)`,
		insumoID, mensaje,
	).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("existe alerta: %w", err)
	}
	return existe, nil
}

func (r *AlertaRepo) list(query string, args ...any) ([]*entity.Alerta, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list alertas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Alerta
	for rows.Next() {
		var a entity.Alerta
		if err := rows.Scan(&a.ID, &a.InsumoID, &a.Mensaje, &a.Fecha, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan alerta: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
