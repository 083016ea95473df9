package dto

import "github.com/shopspring/decimal"

// ReporteStockItemDTO fila de GET /api/reporte-stock.
type ReporteStockItemDTO struct {
	InsumoID     int64           `json:"insumo_id"`
	Nombre       string          `json:"nombre"`
	Descripcion  string          `json:"descripcion,omitempty"`
	UnidadMedida string          `json:"unidad_medida,omitempty"`
	StockActual  decimal.Decimal `json:"stock_actual"`
	StockMinimo  decimal.Decimal `json:"stock_minimo"`
	Alertas      []string        `json:"alertas"`
}

// PeriodoDTO rango de fechas del reporte.
type PeriodoDTO struct {
	FechaInicio string `json:"fecha_inicio"`
	FechaFin    string `json:"fecha_fin"`
}

// ConsumoInsumoDTO consumo de un insumo dentro de una especialidad.
type ConsumoInsumoDTO struct {
	Insumo   string          `json:"insumo"`
	Cantidad decimal.Decimal `json:"cantidad"`
	Costo    decimal.Decimal `json:"costo"`
}

// ConsumoEspecialidadDTO consumo agregado de una especialidad.
type ConsumoEspecialidadDTO struct {
	TotalCantidad decimal.Decimal    `json:"total_cantidad"`
	TotalCosto    decimal.Decimal    `json:"total_costo"`
	Insumos       []ConsumoInsumoDTO `json:"insumos"`
}

// ConsumoReporteDTO respuesta de GET /api/reportes/consumo-por-especialidad.
type ConsumoReporteDTO struct {
	Periodo        PeriodoDTO                        `json:"periodo"`
	Especialidades map[string]ConsumoEspecialidadDTO `json:"especialidades"`
}
