// Package alerta implementa la gramática de mensajes de alerta y el filtro de
// vigencia. El tipo de alerta viaja codificado en el prefijo del texto del
// mensaje; cualquier mensaje que no calce con un prefijo conocido se descarta.
package alerta

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/his-bodega/bodega-api/internal/domain/entity"
)

// Prefijos que identifican el tipo de alerta dentro del mensaje.
const (
	PrefijoStockBajo   = "Stock bajo"
	PrefijoVencimiento = "Insumo vence pronto"
)

// SinLote es el marcador usado cuando la entrada no trae número de lote.
const SinLote = "SIN_LOTE"

var fechaISORe = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// MensajeStockBajo construye el mensaje canónico de alerta de stock bajo.
// La deduplicación de alertas compara este texto exacto, así que cualquier
// cambio de formato invalida las alertas ya almacenadas.
func MensajeStockBajo(stockActual, stockMinimo decimal.Decimal) string {
	return fmt.Sprintf("%s: %s < %s", PrefijoStockBajo, stockActual.String(), stockMinimo.String())
}

// MensajeVencimiento construye el mensaje canónico de alerta de vencimiento.
func MensajeVencimiento(numeroLote *string, fechaVencimiento time.Time) string {
	lote := SinLote
	if numeroLote != nil && *numeroLote != "" {
		lote = *numeroLote
	}
	return fmt.Sprintf("%s: Lote %s - %s", PrefijoVencimiento, lote, fechaVencimiento.Format("2006-01-02"))
}

// EsVigente decide si una alerta almacenada sigue siendo accionable:
//
//   - "Stock bajo…"          → vigente si el insumo sigue bajo su mínimo (> 0).
//   - "Insumo vence pronto…" → vigente si la fecha ISO embebida en el mensaje es
//     hoy o posterior; sin fecha extraíble la alerta se descarta.
//   - Cualquier otro mensaje → descartada.
func EsVigente(mensaje string, insumo entity.Insumo, hoy time.Time) bool {
	switch {
	case strings.HasPrefix(mensaje, PrefijoStockBajo):
		return insumo.BajoStockMinimo()
	case strings.HasPrefix(mensaje, PrefijoVencimiento):
		raw := fechaISORe.FindString(mensaje)
		if raw == "" {
			return false
		}
		vencimiento, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return false
		}
		return !soloFecha(hoy).After(vencimiento)
	default:
		return false
	}
}

// soloFecha descarta la hora para comparar fechas de calendario.
func soloFecha(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
