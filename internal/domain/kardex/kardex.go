// Package kardex implementa los servicios de dominio del libro de movimientos:
// la agregación cronológica con saldo y valorización (kardex) y la asignación
// de lotes disponibles por vencimiento (FEFO).
package kardex

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/his-bodega/bodega-api/internal/domain/entity"
)

// Movimiento es una fila del kardex: una entrada o salida ya normalizada.
type Movimiento struct {
	Tipo                  string // ENTRADA | SALIDA
	Fecha                 time.Time
	Cantidad              decimal.Decimal
	PrecioUnitario        decimal.Decimal
	PrecioTotal           decimal.Decimal
	NumeroReferencia      string
	RemitenteDestinatario string
	NumeroLote            *string
	FechaVencimiento      *time.Time
	UsuarioID             int64
}

// Resumen es el resultado de Calcular: movimientos ordenados, saldo y valorización.
type Resumen struct {
	Movimientos          []Movimiento
	StockActual          decimal.Decimal
	UltimoPrecioUnitario decimal.Decimal
	ValorStockTotal      decimal.Decimal
}

// Calcular arma el kardex de un insumo a partir de todas sus entradas y salidas.
//
// Orden: ascendente por fecha con sort estable. Los empates de fecha conservan
// el orden de llegada, con las entradas antes que las salidas del mismo día
// (las entradas se anexan primero a la lista de trabajo). Esa regla de
// desempate es una decisión propia: es determinista y se documenta aquí porque
// el contrato no define orden secundario.
//
// El último precio unitario es el primer precio > 0 recorriendo los
// movimientos ordenados de atrás hacia adelante; un precio ausente cuenta como
// cero, nunca como desconocido. ValorStockTotal = StockActual × ese precio.
func Calcular(entradas []entity.Entrada, salidas []entity.Salida) Resumen {
	movs := make([]Movimiento, 0, len(entradas)+len(salidas))
	for _, e := range entradas {
		movs = append(movs, Movimiento{
			Tipo:                  entity.MovimientoEntrada,
			Fecha:                 e.Fecha,
			Cantidad:              e.Cantidad,
			PrecioUnitario:        e.PrecioUnitario,
			PrecioTotal:           e.Cantidad.Mul(e.PrecioUnitario),
			NumeroReferencia:      e.NumeroReferencia,
			RemitenteDestinatario: e.RemitenteDestinatario,
			NumeroLote:            e.NumeroLote,
			FechaVencimiento:      e.FechaVencimiento,
			UsuarioID:             e.UsuarioID,
		})
	}
	for _, s := range salidas {
		movs = append(movs, Movimiento{
			Tipo:                  entity.MovimientoSalida,
			Fecha:                 s.Fecha,
			Cantidad:              s.Cantidad,
			PrecioUnitario:        s.PrecioUnitario,
			PrecioTotal:           s.Cantidad.Mul(s.PrecioUnitario),
			NumeroReferencia:      s.NumeroReferencia,
			RemitenteDestinatario: s.RemitenteDestinatario,
			UsuarioID:             s.UsuarioID,
		})
	}

	sort.SliceStable(movs, func(i, j int) bool {
		return movs[i].Fecha.Before(movs[j].Fecha)
	})

	stock := decimal.Zero
	for _, m := range movs {
		if m.Tipo == entity.MovimientoEntrada {
			stock = stock.Add(m.Cantidad)
		} else {
			stock = stock.Sub(m.Cantidad)
		}
	}

	ultimoPrecio := decimal.Zero
	for i := len(movs) - 1; i >= 0; i-- {
		if movs[i].PrecioUnitario.GreaterThan(decimal.Zero) {
			ultimoPrecio = movs[i].PrecioUnitario
			break
		}
	}

	return Resumen{
		Movimientos:          movs,
		StockActual:          stock,
		UltimoPrecioUnitario: ultimoPrecio,
		ValorStockTotal:      stock.Mul(ultimoPrecio),
	}
}
