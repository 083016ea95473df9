package inventario

import (
	"github.com/shopspring/decimal"

	"github.com/his-bodega/bodega-api/internal/domain/entity"
)

func derefEntradas(in []*entity.Entrada) []entity.Entrada {
	out := make([]entity.Entrada, 0, len(in))
	for _, e := range in {
		out = append(out, *e)
	}
	return out
}

func derefSalidas(in []*entity.Salida) []entity.Salida {
	out := make([]entity.Salida, 0, len(in))
	for _, s := range in {
		out = append(out, *s)
	}
	return out
}

func sumaCantidades(entradas []entity.Entrada) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entradas {
		total = total.Add(e.Cantidad)
	}
	return total
}
