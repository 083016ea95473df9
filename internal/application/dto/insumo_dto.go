package dto

import "github.com/shopspring/decimal"

// CreateInsumoRequest body para crear o actualizar un insumo (solo admin).
type CreateInsumoRequest struct {
	Nombre         string          `json:"nombre"`
	Descripcion    string          `json:"descripcion,omitempty"`
	UnidadMedida   string          `json:"unidad_medida,omitempty"`
	StockMinimo    decimal.Decimal `json:"stock_minimo"`
	EspecialidadID *int64          `json:"especialidad_id,omitempty"`
}

// EspecialidadResponse representación de una especialidad.
type EspecialidadResponse struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

// CreateEspecialidadRequest body para crear una especialidad.
type CreateEspecialidadRequest struct {
	Nombre string `json:"nombre"`
}

// InsumoResponse representación de un insumo, con su especialidad anidada si la tiene.
type InsumoResponse struct {
	ID           int64                 `json:"id"`
	Nombre       string                `json:"nombre"`
	Descripcion  string                `json:"descripcion,omitempty"`
	UnidadMedida string                `json:"unidad_medida,omitempty"`
	StockActual  decimal.Decimal       `json:"stock_actual"`
	StockMinimo  decimal.Decimal       `json:"stock_minimo"`
	Especialidad *EspecialidadResponse `json:"especialidad,omitempty"`
}
