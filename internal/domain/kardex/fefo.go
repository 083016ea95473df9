package kardex

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/his-bodega/bodega-api/internal/domain/entity"
)

// LoteDisponible es una porción del stock actual atribuida a una entrada/lote.
type LoteDisponible struct {
	NumeroLote       *string
	FechaVencimiento *time.Time
	StockDisponible  decimal.Decimal
	PrecioUnitario   decimal.Decimal
}

// AsignarLotesFEFO reparte el stock actual de un insumo entre sus entradas en
// orden de vencimiento ascendente (First-Expire-First-Out). Las entradas sin
// fecha de vencimiento ordenan al final, como si nunca vencieran.
//
// La asignación es una reconstrucción aproximada: las salidas no registran de
// qué lote consumieron, así que solo se garantiza que la suma asignada iguala
// al stock actual (o menos, si las entradas no alcanzan — esa inconsistencia
// de datos se absorbe sin error). No "corregir" esto sin extender el modelo de
// salidas con referencia a lote.
func AsignarLotesFEFO(entradas []entity.Entrada, stockActual decimal.Decimal) []LoteDisponible {
	if stockActual.LessThanOrEqual(decimal.Zero) {
		return []LoteDisponible{}
	}

	ordenadas := make([]entity.Entrada, len(entradas))
	copy(ordenadas, entradas)
	sort.SliceStable(ordenadas, func(i, j int) bool {
		vi, vj := ordenadas[i].FechaVencimiento, ordenadas[j].FechaVencimiento
		switch {
		case vi == nil && vj == nil:
			return false
		case vi == nil:
			return false // sin vencimiento ordena al final
		case vj == nil:
			return true
		default:
			return vi.Before(*vj)
		}
	})

	lotes := make([]LoteDisponible, 0, len(ordenadas))
	restante := stockActual
	for _, e := range ordenadas {
		if restante.LessThanOrEqual(decimal.Zero) {
			break
		}
		if e.Cantidad.LessThanOrEqual(decimal.Zero) {
			continue
		}
		stockLote := decimal.Min(e.Cantidad, restante)
		lotes = append(lotes, LoteDisponible{
			NumeroLote:       e.NumeroLote,
			FechaVencimiento: e.FechaVencimiento,
			StockDisponible:  stockLote,
			PrecioUnitario:   e.PrecioUnitario,
		})
		restante = restante.Sub(stockLote)
	}
	return lotes
}
