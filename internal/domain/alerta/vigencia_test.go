package alerta_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/his-bodega/bodega-api/internal/domain/alerta"
	"github.com/his-bodega/bodega-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func dia(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestMensajeStockBajo(t *testing.T) {
	msg := alerta.MensajeStockBajo(dec("5"), dec("10"))
	assert.Equal(t, "Stock bajo: 5 < 10", msg)
}

func TestMensajeVencimiento(t *testing.T) {
	lote := "A1"
	msg := alerta.MensajeVencimiento(&lote, dia("2025-03-15"))
	assert.Equal(t, "Insumo vence pronto: Lote A1 - 2025-03-15", msg)

	msg = alerta.MensajeVencimiento(nil, dia("2025-03-15"))
	assert.Equal(t, "Insumo vence pronto: Lote SIN_LOTE - 2025-03-15", msg)
}

// Alerta de stock bajo deja de ser vigente cuando el stock se recupera.
func TestEsVigente_StockBajoRecuperado(t *testing.T) {
	insumo := entity.Insumo{StockActual: dec("12"), StockMinimo: dec("10")}
	assert.False(t, alerta.EsVigente("Stock bajo: 5 < 10", insumo, dia("2024-06-01")),
		"stock 12 >= mínimo 10: la alerta decae")
}

func TestEsVigente_StockBajoSigueActivo(t *testing.T) {
	insumo := entity.Insumo{StockActual: dec("3"), StockMinimo: dec("10")}
	assert.True(t, alerta.EsVigente("Stock bajo: 3 < 10", insumo, dia("2024-06-01")))
}

// StockMinimo en cero desactiva las alertas de stock bajo.
func TestEsVigente_StockMinimoCero(t *testing.T) {
	insumo := entity.Insumo{StockActual: dec("-1"), StockMinimo: decimal.Zero}
	assert.False(t, alerta.EsVigente("Stock bajo: -1 < 0", insumo, dia("2024-06-01")))
}

// Alerta de vencimiento vigente hasta el día del vencimiento inclusive.
func TestEsVigente_Vencimiento(t *testing.T) {
	insumo := entity.Insumo{}
	msg := "Insumo vence pronto: Lote A1 - 2020-01-01"

	assert.True(t, alerta.EsVigente(msg, insumo, dia("2019-12-31")))
	assert.True(t, alerta.EsVigente(msg, insumo, dia("2020-01-01")), "el día exacto sigue vigente")
	assert.False(t, alerta.EsVigente(msg, insumo, dia("2020-01-02")), "ya venció: se excluye siempre")
}

// Mensaje de vencimiento sin fecha extraíble se descarta.
func TestEsVigente_VencimientoSinFecha(t *testing.T) {
	insumo := entity.Insumo{}
	assert.False(t, alerta.EsVigente("Insumo vence pronto: Lote X - pronto", insumo, dia("2024-06-01")))
}

// Cualquier otro mensaje se descarta (comportamiento heredado del modelo de
// mensajes sin tipar).
func TestEsVigente_MensajeDesconocido(t *testing.T) {
	insumo := entity.Insumo{StockActual: dec("0"), StockMinimo: dec("10")}
	assert.False(t, alerta.EsVigente("Revisión programada", insumo, dia("2024-06-01")))
}
