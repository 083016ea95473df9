package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/his-bodega/bodega-api/internal/domain"
	"github.com/his-bodega/bodega-api/internal/domain/entity"
	"github.com/his-bodega/bodega-api/internal/domain/repository"
)

var _ repository.EspecialidadRepository = (*EspecialidadRepo)(nil)

// EspecialidadRepo implementación de EspecialidadRepository sobre PostgreSQL.
type EspecialidadRepo struct {
	q Querier
}

// NewEspecialidadRepository construye el adaptador de especialidades.
func NewEspecialidadRepository(q Querier) *EspecialidadRepo {
	return &EspecialidadRepo{q: q}
}

// Create persiste una especialidad nueva y deja el ID generado en e.
func (r *EspecialidadRepo) Create(e *entity.Especialidad) error {
	query := `
		INSERT INTO especialidades (nombre, created_at)
		VALUES ($1, $2)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query, e.Nombre, e.CreatedAt).Scan(&e.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert especialidad: %w", err)
	}
	return nil
}

// GetByID obtiene una especialidad por ID. Devuelve nil si no existe.
func (r *EspecialidadRepo) GetByID(id int64) (*entity.Especialidad, error) {
	query := `SELECT id, nombre, created_at FROM especialidades WHERE id = $1`
	var e entity.Especialidad
	err := r.q.QueryRow(context.Background(), query, id).Scan(&e.ID, &e.Nombre, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get especialidad: %w", err)
	}
	return &e, nil
}

// GetByIDs obtiene varias especialidades en una sola consulta, indexadas por
// ID. Los IDs inexistentes simplemente no aparecen en el mapa.
func (r *EspecialidadRepo) GetByIDs(ids []int64) (map[int64]*entity.Especialidad, error) {
	out := make(map[int64]*entity.Especialidad, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	query := `SELECT id, nombre, created_at FROM especialidades WHERE id = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("get especialidades by ids: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var e entity.Especialidad
		if err := rows.Scan(&e.ID, &e.Nombre, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan especialidad: %w", err)
		}
		out[e.ID] = &e
	}
	return out, rows.Err()
}

// List lista especialidades con paginación, ordenadas por nombre.
func (r *EspecialidadRepo) List(limit, offset int) ([]*entity.Especialidad, error) {
	query := `
		SELECT id, nombre, created_at FROM especialidades
		ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list especialidades: %w", err)
	}
	defer rows.Close()
	var list []*entity.Especialidad
	for rows.Next() {
		var e entity.Especialidad
		if err := rows.Scan(&e.ID, &e.Nombre, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan especialidad: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
