package dto

// CreateAlertaRequest body para crear una alerta manual (solo admin).
type CreateAlertaRequest struct {
	InsumoID int64  `json:"insumo_id"`
	Mensaje  string `json:"mensaje"`
	Fecha    string `json:"fecha"`
}

// AlertaResponse alerta vigente anotada con su insumo.
type AlertaResponse struct {
	ID       int64           `json:"id"`
	InsumoID int64           `json:"insumo_id"`
	Mensaje  string          `json:"mensaje"`
	Fecha    string          `json:"fecha"`
	Insumo   *InsumoResponse `json:"insumo,omitempty"`
}
