package repository

import (
	"github.com/shopspring/decimal"

	"github.com/his-bodega/bodega-api/internal/domain/entity"
)

// InsumoRepository puerto de persistencia para insumos.
// GetForUpdate y ActualizarStock solo tienen sentido dentro de una transacción
// (ver inventario.TxRunner): bloquean la fila del insumo para serializar el
// chequeo de stock frente a salidas concurrentes.
type InsumoRepository interface {
	Create(i *entity.Insumo) error
	GetByID(id int64) (*entity.Insumo, error)
	GetByIDs(ids []int64) (map[int64]*entity.Insumo, error)
	Update(i *entity.Insumo) error
	Delete(id int64) error
	List(limit, offset int) ([]*entity.Insumo, error)
	ListAll() ([]*entity.Insumo, error)
	ListStockBajo() ([]*entity.Insumo, error)
	GetForUpdate(id int64) (*entity.Insumo, error)
	ActualizarStock(id int64, stock decimal.Decimal) error
}
