package dto

import "github.com/shopspring/decimal"

// CreateEntradaRequest body para POST /api/entradas.
// Fecha y FechaVencimiento en formato YYYY-MM-DD.
type CreateEntradaRequest struct {
	InsumoID              int64            `json:"insumo_id"`
	Cantidad              decimal.Decimal  `json:"cantidad"`
	PrecioUnitario        *decimal.Decimal `json:"precio_unitario,omitempty"`
	Fecha                 string           `json:"fecha"`
	NumeroReferencia      string           `json:"numero_referencia,omitempty"`
	RemitenteDestinatario string           `json:"remitente_destinatario,omitempty"`
	NumeroLote            *string          `json:"numero_lote,omitempty"`
	FechaVencimiento      *string          `json:"fecha_vencimiento,omitempty"`
}

// CreateSalidaRequest body para POST /api/salidas. Sin referencia de lote:
// el modelo de salidas no registra de qué lote se consume.
type CreateSalidaRequest struct {
	InsumoID              int64            `json:"insumo_id"`
	Cantidad              decimal.Decimal  `json:"cantidad"`
	PrecioUnitario        *decimal.Decimal `json:"precio_unitario,omitempty"`
	Fecha                 string           `json:"fecha"`
	NumeroReferencia      string           `json:"numero_referencia,omitempty"`
	RemitenteDestinatario string           `json:"remitente_destinatario,omitempty"`
}

// EntradaResponse entrada registrada; InsumoNombre se completa en listados.
type EntradaResponse struct {
	ID                    int64           `json:"id"`
	InsumoID              int64           `json:"insumo_id"`
	InsumoNombre          string          `json:"insumo_nombre,omitempty"`
	Cantidad              decimal.Decimal `json:"cantidad"`
	PrecioUnitario        decimal.Decimal `json:"precio_unitario"`
	Fecha                 string          `json:"fecha"`
	UsuarioID             int64           `json:"usuario_id"`
	NumeroReferencia      string          `json:"numero_referencia,omitempty"`
	RemitenteDestinatario string          `json:"remitente_destinatario,omitempty"`
	NumeroLote            *string         `json:"numero_lote,omitempty"`
	FechaVencimiento      *string         `json:"fecha_vencimiento,omitempty"`
}

// SalidaResponse salida registrada.
type SalidaResponse struct {
	ID                    int64           `json:"id"`
	InsumoID              int64           `json:"insumo_id"`
	Cantidad              decimal.Decimal `json:"cantidad"`
	PrecioUnitario        decimal.Decimal `json:"precio_unitario"`
	Fecha                 string          `json:"fecha"`
	UsuarioID             int64           `json:"usuario_id"`
	NumeroReferencia      string          `json:"numero_referencia,omitempty"`
	RemitenteDestinatario string          `json:"remitente_destinatario,omitempty"`
}
