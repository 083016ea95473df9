package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/his-bodega/bodega-api/internal/domain/entity"
	"github.com/his-bodega/bodega-api/internal/domain/repository"
)

var _ repository.SalidaRepository = (*SalidaRepo)(nil)

const salidaColumns = `id, insumo_id, cantidad, precio_unitario, fecha, usuario_id,
	numero_referencia, remitente_destinatario, created_at`

// SalidaRepo implementación de SalidaRepository sobre PostgreSQL (usable con pool o tx).
type SalidaRepo struct {
	q Querier
}

// NewSalidaRepository construye el adaptador de salidas. Pasar pool o tx (Querier).
func NewSalidaRepository(q Querier) *SalidaRepo {
	return &SalidaRepo{q: q}
}

// Create persiste una salida y deja el ID generado en s.
func (r *SalidaRepo) Create(s *entity.Salida) error {
	query := `
		INSERT INTO salidas (insumo_id, cantidad, precio_unitario, fecha, usuario_id,
			numero_referencia, remitente_destinatario, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		s.InsumoID, s.Cantidad, s.PrecioUnitario, s.Fecha, s.UsuarioID,
		s.NumeroReferencia, s.RemitenteDestinatario, s.CreatedAt,
	).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("insert salida: %w", err)
	}
	return nil
}

// List lista salidas con paginación, de la más reciente a la más antigua.
func (r *SalidaRepo) List(limit, offset int) ([]*entity.Salida, error) {
	query := `SELECT ` + salidaColumns + ` FROM salidas ORDER BY fecha DESC, id DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// ListByInsumo lista todas las salidas de un insumo en orden cronológico.
func (r *SalidaRepo) ListByInsumo(insumoID int64) ([]*entity.Salida, error) {
	query := `SELECT ` + salidaColumns + ` FROM salidas WHERE insumo_id = $1 ORDER BY fecha, id`
	return r.list(query, insumoID)
}

// ConsumoPorEspecialidad agrega cantidad y costo de salidas por especialidad e
// insumo dentro del período. Los insumos sin especialidad se agrupan bajo
// 'Sin especialidad'.
func (r *SalidaRepo) ConsumoPorEspecialidad(ctx context.Context, desde, hasta time.Time) ([]repository.ConsumoEspecialidadResult, error) {
	query := `
		SELECT COALESCE(e.nombre, 'Sin especialidad') AS especialidad,
		       i.nombre AS insumo,
		       SUM(s.cantidad) AS cantidad_total,
		       SUM(s.cantidad * s.precio_unitario) AS costo_total
		FROM salidas s
		JOIN insumos i ON i.id = s.insumo_id
		LEFT JOIN especialidades e ON e.id = i.especialidad_id
		WHERE s.fecha BETWEEN $1 AND $2
		GROUP BY COALESCE(e.nombre, 'Sin especialidad'), i.nombre
		ORDER BY especialidad, insumo`
	rows, err := r.q.Query(ctx, query, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("consumo por especialidad: %w", err)
	}
	defer rows.Close()
	var out []repository.ConsumoEspecialidadResult
	for rows.Next() {
		var f repository.ConsumoEspecialidadResult
		if err := rows.Scan(&f.Especialidad, &f.Insumo, &f.CantidadTotal, &f.CostoTotal); err != nil {
			return nil, fmt.Errorf("scan consumo: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *SalidaRepo) list(query string, args ...any) ([]*entity.Salida, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list salidas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Salida
	for rows.Next() {
		s, err := scanSalida(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func scanSalida(rows pgx.Rows) (*entity.Salida, error) {
	var s entity.Salida
	if err := rows.Scan(&s.ID, &s.InsumoID, &s.Cantidad, &s.PrecioUnitario, &s.Fecha, &s.UsuarioID,
		&s.NumeroReferencia, &s.RemitenteDestinatario, &s.CreatedAt); err != nil {
		return nil, fmt.Errorf("scan salida: %w", err)
	}
	return &s, nil
}
