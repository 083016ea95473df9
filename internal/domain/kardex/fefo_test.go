package kardex_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/his-bodega/bodega-api/internal/domain/entity"
	"github.com/his-bodega/bodega-api/internal/domain/kardex"
)

func ptrStr(s string) *string      { return &s }
func ptrFecha(s string) *time.Time { f := fecha(s); return &f }

// Escenario FEFO del contrato: lote A (10 uds, vence 2025-01-01, 2.00) y
// lote B (10 uds, vence 2025-06-01, 3.00) con stock actual 15 →
// [{A,10,2.00}, {B,5,3.00}].
func TestAsignarLotesFEFO_DosLotes(t *testing.T) {
	entradas := []entity.Entrada{
		{Cantidad: dec("10"), PrecioUnitario: dec("3.00"), NumeroLote: ptrStr("B"), FechaVencimiento: ptrFecha("2025-06-01")},
		{Cantidad: dec("10"), PrecioUnitario: dec("2.00"), NumeroLote: ptrStr("A"), FechaVencimiento: ptrFecha("2025-01-01")},
	}

	lotes := kardex.AsignarLotesFEFO(entradas, dec("15"))

	require.Len(t, lotes, 2)
	assert.Equal(t, "A", *lotes[0].NumeroLote, "el lote que vence primero se asigna primero")
	assert.True(t, lotes[0].StockDisponible.Equal(dec("10")))
	assert.True(t, lotes[0].PrecioUnitario.Equal(dec("2.00")))
	assert.Equal(t, "B", *lotes[1].NumeroLote)
	assert.True(t, lotes[1].StockDisponible.Equal(dec("5")))
	assert.True(t, lotes[1].PrecioUnitario.Equal(dec("3.00")))
}

// Propiedad: la suma asignada nunca supera el stock actual y lo iguala cuando
// las entradas alcanzan.
func TestAsignarLotesFEFO_SumaIgualAlStock(t *testing.T) {
	entradas := []entity.Entrada{
		{Cantidad: dec("7"), FechaVencimiento: ptrFecha("2025-02-01")},
		{Cantidad: dec("3"), FechaVencimiento: ptrFecha("2025-03-01")},
		{Cantidad: dec("5")}, // sin vencimiento, ordena al final
	}

	lotes := kardex.AsignarLotesFEFO(entradas, dec("12"))

	total := decimal.Zero
	for _, l := range lotes {
		total = total.Add(l.StockDisponible)
	}
	assert.True(t, total.Equal(dec("12")))
}

// Un lote sin vencimiento nunca se elige antes que uno con vencimiento concreto.
func TestAsignarLotesFEFO_SinVencimientoOrdenaAlFinal(t *testing.T) {
	entradas := []entity.Entrada{
		{Cantidad: dec("10"), NumeroLote: ptrStr("SINFECHA")},
		{Cantidad: dec("4"), NumeroLote: ptrStr("CONFECHA"), FechaVencimiento: ptrFecha("2030-12-31")},
	}

	lotes := kardex.AsignarLotesFEFO(entradas, dec("6"))

	require.Len(t, lotes, 2)
	assert.Equal(t, "CONFECHA", *lotes[0].NumeroLote)
	assert.True(t, lotes[0].StockDisponible.Equal(dec("4")))
	assert.Equal(t, "SINFECHA", *lotes[1].NumeroLote)
	assert.True(t, lotes[1].StockDisponible.Equal(dec("2")))
}

// Stock cero o negativo → lista vacía sin error.
func TestAsignarLotesFEFO_StockNoPositivo(t *testing.T) {
	entradas := []entity.Entrada{{Cantidad: dec("10")}}

	assert.Empty(t, kardex.AsignarLotesFEFO(entradas, decimal.Zero))
	assert.Empty(t, kardex.AsignarLotesFEFO(entradas, dec("-3")))
}

// Entradas con cantidad <= 0 se saltan.
func TestAsignarLotesFEFO_IgnoraCantidadesNoPositivas(t *testing.T) {
	entradas := []entity.Entrada{
		{Cantidad: decimal.Zero, FechaVencimiento: ptrFecha("2025-01-01")},
		{Cantidad: dec("-2"), FechaVencimiento: ptrFecha("2025-01-02")},
		{Cantidad: dec("8"), FechaVencimiento: ptrFecha("2025-05-01")},
	}

	lotes := kardex.AsignarLotesFEFO(entradas, dec("5"))

	require.Len(t, lotes, 1)
	assert.True(t, lotes[0].StockDisponible.Equal(dec("5")))
}

// Inconsistencia de datos: las entradas no cubren el stock actual. El
// asignador agota lo que hay y absorbe el faltante sin fallar.
func TestAsignarLotesFEFO_FaltanteSilencioso(t *testing.T) {
	entradas := []entity.Entrada{
		{Cantidad: dec("4"), FechaVencimiento: ptrFecha("2025-01-01")},
	}

	lotes := kardex.AsignarLotesFEFO(entradas, dec("10"))

	require.Len(t, lotes, 1)
	assert.True(t, lotes[0].StockDisponible.Equal(dec("4")),
		"se asigna lo que las entradas permiten; el faltante no es error")
}
