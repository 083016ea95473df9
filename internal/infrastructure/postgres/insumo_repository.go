package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/his-bodega/bodega-api/internal/domain"
	"github.com/his-bodega/bodega-api/internal/domain/entity"
	"github.com/his-bodega/bodega-api/internal/domain/repository"
)

var _ repository.InsumoRepository = (*InsumoRepo)(nil)

const insumoColumns = `id, nombre, descripcion, unidad_medida, stock_actual, stock_minimo, especialidad_id, created_at`

// InsumoRepo implementación de InsumoRepository sobre PostgreSQL (usable con pool o tx).
type InsumoRepo struct {
	q Querier
}

// NewInsumoRepository construye el adaptador de insumos. Pasar pool o tx (Querier).
func NewInsumoRepository(q Querier) *InsumoRepo {
	return &InsumoRepo{q: q}
}

// Create persiste un insumo nuevo con stock cero y deja el ID generado en i.
func (r *InsumoRepo) Create(i *entity.Insumo) error {
	query := `
		INSERT INTO insumos (nombre, descripcion, unidad_medida, stock_actual, stock_minimo, especialidad_id, created_at)
		VALUES ($1, $2, $3, 0, $4, $5, $6)
		RETURNING id, stock_actual`
	err := r.q.QueryRow(context.Background(), query,
		i.Nombre, i.Descripcion, i.UnidadMedida, i.StockMinimo, i.EspecialidadID, i.CreatedAt,
	).Scan(&i.ID, &i.StockActual)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert insumo: %w", err)
	}
	return nil
}

// GetByID obtiene un insumo por ID. Devuelve nil si no existe.
func (r *InsumoRepo) GetByID(id int64) (*entity.Insumo, error) {
	query := `SELECT ` + insumoColumns + ` FROM insumos WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByIDs obtiene varios insumos en una sola consulta, indexados por ID.
// Los IDs inexistentes simplemente no aparecen en el mapa.
func (r *InsumoRepo) GetByIDs(ids []int64) (map[int64]*entity.Insumo, error) {
	out := make(map[int64]*entity.Insumo, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	query := `SELECT ` + insumoColumns + ` FROM insumos WHERE id = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("get insumos by ids: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		i, err := scanInsumo(rows)
		if err != nil {
			return nil, err
		}
		out[i.ID] = i
	}
	return out, rows.Err()
}

// Update actualiza los datos de catálogo. El stock actual no se toca por aquí.
func (r *InsumoRepo) Update(i *entity.Insumo) error {
	query := `
		UPDATE insumos
		SET nombre = $2, descripcion = $3, unidad_medida = $4, stock_minimo = $5, especialidad_id = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		i.ID, i.Nombre, i.Descripcion, i.UnidadMedida, i.StockMinimo, i.EspecialidadID,
	)
	if err != nil {
		return fmt.Errorf("update insumo: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un insumo por ID.
func (r *InsumoRepo) Delete(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM insumos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete insumo: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista insumos con paginación, ordenados por nombre.
func (r *InsumoRepo) List(limit, offset int) ([]*entity.Insumo, error) {
	query := `SELECT ` + insumoColumns + ` FROM insumos ORDER BY nombre LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// ListAll lista todos los insumos ordenados por nombre (para reportes).
func (r *InsumoRepo) ListAll() ([]*entity.Insumo, error) {
	query := `SELECT ` + insumoColumns + ` FROM insumos ORDER BY nombre`
	return r.list(query)
}

// ListStockBajo lista los insumos con stock bajo su mínimo (mínimo > 0).
func (r *InsumoRepo) ListStockBajo() ([]*entity.Insumo, error) {
	query := `
		SELECT ` + insumoColumns + ` FROM insumos
		WHERE stock_minimo > 0 AND stock_actual < stock_minimo
		ORDER BY nombre`
	return r.list(query)
}

// GetForUpdate obtiene un insumo bloqueando su fila (SELECT FOR UPDATE).
// Solo tiene efecto dentro de una transacción.
func (r *InsumoRepo) GetForUpdate(id int64) (*entity.Insumo, error) {
	query := `SELECT ` + insumoColumns + ` FROM insumos WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// ActualizarStock fija el stock actual del insumo.
func (r *InsumoRepo) ActualizarStock(id int64, stock decimal.Decimal) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE insumos SET stock_actual = $2 WHERE id = $1`, id, stock)
	if err != nil {
		return fmt.Errorf("actualizar stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *InsumoRepo) list(query string, args ...any) ([]*entity.Insumo, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list insumos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Insumo
	for rows.Next() {
		i, err := scanInsumo(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, i)
	}
	return list, rows.Err()
}

func (r *InsumoRepo) scanOne(row pgx.Row) (*entity.Insumo, error) {
	var i entity.Insumo
	err := row.Scan(&i.ID, &i.Nombre, &i.Descripcion, &i.UnidadMedida,
		&i.StockActual, &i.StockMinimo, &i.EspecialidadID, &i.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get insumo: %w", err)
	}
	return &i, nil
}

func scanInsumo(rows pgx.Rows) (*entity.Insumo, error) {
	var i entity.Insumo
	if err := rows.Scan(&i.ID, &i.Nombre, &i.Descripcion, &i.UnidadMedida,
		&i.StockActual, &i.StockMinimo, &i.EspecialidadID, &i.CreatedAt); err != nil {
		return nil, fmt.Errorf("scan insumo: %w", err)
	}
	return &i, nil
}
