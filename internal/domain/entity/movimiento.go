package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento en el kardex.
const (
	MovimientoEntrada = "ENTRADA"
	MovimientoSalida  = "SALIDA"
)

// Entrada representa un ingreso de stock a bodega. Los movimientos son
// inmutables una vez registrados.
type Entrada struct {
	ID                    int64
	InsumoID              int64
	Cantidad              decimal.Decimal
	PrecioUnitario        decimal.Decimal
	Fecha                 time.Time
	UsuarioID             int64
	NumeroReferencia      string
	RemitenteDestinatario string
	NumeroLote            *string
	FechaVencimiento      *time.Time
	CreatedAt             time.Time
}

// Salida representa un egreso de stock. No registra el lote del que se
// consumió: el asignador FEFO reconstruye los lotes disponibles de forma
// agregada a partir de las entradas (ver kardex.AsignarLotesFEFO).
type Salida struct {
	ID                    int64
	InsumoID              int64
	Cantidad              decimal.Decimal
	PrecioUnitario        decimal.Decimal
	Fecha                 time.Time
	UsuarioID             int64
	NumeroReferencia      string
	RemitenteDestinatario string
	CreatedAt             time.Time
}
