package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/his-bodega/bodega-api/internal/domain/entity"
	"github.com/his-bodega/bodega-api/internal/domain/repository"
)

var _ repository.EntradaRepository = (*EntradaRepo)(nil)

const entradaColumns = `id, insumo_id, cantidad, precio_unitario, fecha, usuario_id,
	numero_referencia, remitente_destinatario, numero_lote, fecha_vencimiento, created_at`

// EntradaRepo implementación de EntradaRepository sobre PostgreSQL (usable con pool o tx).
type EntradaRepo struct {
	q Querier
}

// NewEntradaRepository construye el adaptador de entradas. Pasar pool o tx (Querier).
func NewEntradaRepository(q Querier) *EntradaRepo {
	return &EntradaRepo{q: q}
}

// Create persiste una entrada y deja el ID generado en e.
func (r *EntradaRepo) Create(e *entity.Entrada) error {
	query := `
		INSERT INTO entradas (insumo_id, cantidad, precio_unitario, fecha, usuario_id,
			numero_referencia, remitente_destinatario, numero_lote, fecha_vencimiento, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		e.InsumoID, e.Cantidad, e.PrecioUnitario, e.Fecha, e.UsuarioID,
		e.NumeroReferencia, e.RemitenteDestinatario, e.NumeroLote, e.FechaVencimiento, e.CreatedAt,
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("insert entrada: %w", err)
	}
	return nil
}

// List lista entradas con paginación, de la más reciente a la más antigua.
func (r *EntradaRepo) List(limit, offset int) ([]*entity.Entrada, error) {
	query := `SELECT ` + entradaColumns + ` FROM entradas ORDER BY fecha DESC, id DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// ListByInsumo lista todas las entradas de un insumo en orden cronológico.
func (r *EntradaRepo) ListByInsumo(insumoID int64) ([]*entity.Entrada, error) {
	query := `SELECT ` + entradaColumns + ` FROM entradas WHERE insumo_id = $1 ORDER BY fecha, id`
	return r.list(query, insumoID)
}

// ListPorVencer lista las entradas con fecha de vencimiento dentro de [desde, hasta].
func (r *EntradaRepo) ListPorVencer(desde, hasta time.Time) ([]*entity.Entrada, error) {
	query := `
		SELECT ` + entradaColumns + ` FROM entradas
		WHERE fecha_vencimiento IS NOT NULL AND fecha_vencimiento BETWEEN $1 AND $2
		ORDER BY fecha_vencimiento, id`
	return r.list(query, desde, hasta)
}

func (r *EntradaRepo) list(query string, args ...any) ([]*entity.Entrada, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list entradas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Entrada
	for rows.Next() {
		e, err := scanEntrada(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func scanEntrada(rows pgx.Rows) (*entity.Entrada, error) {
	var e entity.Entrada
	if err := rows.Scan(&e.ID, &e.InsumoID, &e.Cantidad, &e.PrecioUnitario, &e.Fecha, &e.UsuarioID,
		&e.NumeroReferencia, &e.RemitenteDestinatario, &e.NumeroLote, &e.FechaVencimiento, &e.CreatedAt); err != nil {
		return nil, fmt.Errorf("scan entrada: %w", err)
	}
	return &e, nil
}
