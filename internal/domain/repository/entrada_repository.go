package repository

import (
	"time"

	"github.com/his-bodega/bodega-api/internal/domain/entity"
)

// EntradaRepository puerto de persistencia para entradas de stock.
type EntradaRepository interface {
	Create(e *entity.Entrada) error
	List(limit, offset int) ([]*entity.Entrada, error)
	ListByInsumo(insumoID int64) ([]*entity.Entrada, error)
	// ListPorVencer devuelve las entradas con fecha de vencimiento dentro de
	// [desde, hasta], ambos inclusive.
	ListPorVencer(desde, hasta time.Time) ([]*entity.Entrada, error)
}
