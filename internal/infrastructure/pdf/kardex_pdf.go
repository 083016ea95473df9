// Package pdf implementa la generación del kardex de un insumo como documento
// imprimible.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Kardex de <insumo>  │  Fecha de emisión            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Tipo | Cant | P.Unit | P.Total | Ref | Lote  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Stock actual / Último precio / Valor del stock     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/his-bodega/bodega-api/internal/application/dto"
	"github.com/his-bodega/bodega-api/internal/application/inventario"
	"github.com/his-bodega/bodega-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 160, Green: 30, Blue: 30}
)

var _ inventario.KardexPDFGenerator = (*KardexPDFGenerator)(nil)

// KardexPDFGenerator implementa inventario.KardexPDFGenerator usando Maroto v2.
type KardexPDFGenerator struct{}

// NewKardexPDFGenerator construye el generador.
func NewKardexPDFGenerator() *KardexPDFGenerator { return &KardexPDFGenerator{} }

// Generate genera el PDF del kardex y devuelve sus bytes.
func (g *KardexPDFGenerator) Generate(insumoNombre string, kardex dto.KardexResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Kardex "+insumoNombre, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(insumoNombre))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(kardex.Movimientos) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(resumenRow(kardex))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar kardex: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título con el nombre del insumo y la fecha de emisión.
func headerRow(insumoNombre string) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("KARDEX DE INSUMO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(insumoNombre, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 6,
			}),
		),
		col.New(4).Add(
			text.New("Emitido: "+time.Now().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de movimientos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Tipo", 1, align.Center),
		h("Cant.", 1, align.Right),
		h("P. Unit.", 2, align.Right),
		h("P. Total", 2, align.Right),
		h("Referencia", 2, align.Left),
		h("Lote", 2, align.Left),
	)
}

// tableRows: una fila por movimiento; las salidas van en rojo.
func tableRows(movs []dto.KardexMovimientoDTO) []core.Row {
	result := make([]core.Row, 0, len(movs))
	for _, m := range movs {
		color := colorPrimary
		if m.Tipo == entity.MovimientoSalida {
			color = colorRed
		}
		lote := "—"
		if m.NumeroLote != nil && *m.NumeroLote != "" {
			lote = *m.NumeroLote
		}
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(m.Fecha, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(m.Tipo, props.Text{
				Size: 7, Align: align.Center, Top: 1, Color: color, Style: fontstyle.Bold,
			})),
			col.New(1).Add(text.New(m.Cantidad.String(), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(m.PrecioUnitario.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(m.PrecioTotal.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(nonEmpty(m.NumeroReferencia, "—"), props.Text{Size: 7, Top: 1, Left: 1, Color: colorGray})),
			col.New(2).Add(text.New(lote, props.Text{Size: 7, Top: 1, Left: 1, Color: colorGray})),
		))
	}
	return result
}

// resumenRow: bloque de totales alineado a la derecha.
func resumenRow(kardex dto.KardexResponse) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(4),
		col.New(4).Add(
			label("Stock actual:"),
			label("Último precio unitario:"),
			grandLabel("VALOR DEL STOCK:"),
		),
		col.New(4).Add(
			value(kardex.StockActual.String()),
			value(kardex.UltimoPrecioUnitario.StringFixed(2)),
			grandValue(kardex.ValorStockTotal.StringFixed(2)),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
