package dto

import "github.com/shopspring/decimal"

// KardexMovimientoDTO una fila del kardex.
type KardexMovimientoDTO struct {
	Tipo                  string          `json:"tipo"` // ENTRADA | SALIDA
	Fecha                 string          `json:"fecha"`
	Cantidad              decimal.Decimal `json:"cantidad"`
	PrecioUnitario        decimal.Decimal `json:"precio_unitario"`
	PrecioTotal           decimal.Decimal `json:"precio_total"`
	NumeroReferencia      string          `json:"numero_referencia,omitempty"`
	RemitenteDestinatario string          `json:"remitente_destinatario,omitempty"`
	NumeroLote            *string         `json:"numero_lote,omitempty"`
	FechaVencimiento      *string         `json:"fecha_vencimiento,omitempty"`
	UsuarioID             int64           `json:"usuario_id"`
}

// KardexResponse respuesta de GET /api/kardex/{insumo_id}.
type KardexResponse struct {
	Movimientos          []KardexMovimientoDTO `json:"movimientos"`
	StockActual          decimal.Decimal       `json:"stock_actual"`
	ValorStockTotal      decimal.Decimal       `json:"valor_stock_total"`
	UltimoPrecioUnitario decimal.Decimal       `json:"ultimo_precio_unitario"`
}

// LoteDisponibleDTO un lote con stock asignado por FEFO.
type LoteDisponibleDTO struct {
	NumeroLote       *string         `json:"numero_lote"`
	FechaVencimiento *string         `json:"fecha_vencimiento"`
	StockDisponible  decimal.Decimal `json:"stock_disponible"`
	PrecioUnitario   decimal.Decimal `json:"precio_unitario"`
}
