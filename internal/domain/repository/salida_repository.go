package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/his-bodega/bodega-api/internal/domain/entity"
)

// ConsumoEspecialidadResult fila agregada del consumo por especialidad:
// total de cantidad y costo de las salidas de un insumo en el período.
type ConsumoEspecialidadResult struct {
	Especialidad  string
	Insumo        string
	CantidadTotal decimal.Decimal
	CostoTotal    decimal.Decimal
}

// SalidaRepository puerto de persistencia para salidas de stock.
type SalidaRepository interface {
	Create(s *entity.Salida) error
	List(limit, offset int) ([]*entity.Salida, error)
	ListByInsumo(insumoID int64) ([]*entity.Salida, error)
	// ConsumoPorEspecialidad agrega cantidad y costo de salidas por
	// especialidad e insumo dentro del rango de fechas (inclusive).
	ConsumoPorEspecialidad(ctx context.Context, desde, hasta time.Time) ([]ConsumoEspecialidadResult, error)
}
