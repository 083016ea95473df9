package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Insumo representa un artículo rastreado en bodega.
// StockActual es un contador desnormalizado: la suma firmada de entradas menos
// salidas. Se mantiene bajo transacción con bloqueo de fila al registrar movimientos.
type Insumo struct {
	ID             int64
	Nombre         string
	Descripcion    string
	UnidadMedida   string
	StockActual    decimal.Decimal
	StockMinimo    decimal.Decimal
	EspecialidadID *int64
	CreatedAt      time.Time
}

// BajoStockMinimo indica si el insumo está por debajo de su umbral de reposición.
// Un StockMinimo en cero desactiva la alerta.
func (i *Insumo) BajoStockMinimo() bool {
	return i.StockActual.LessThan(i.StockMinimo) && i.StockMinimo.GreaterThan(decimal.Zero)
}
