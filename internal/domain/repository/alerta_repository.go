package repository

import "github.com/his-bodega/bodega-api/internal/domain/entity"

// AlertaRepository puerto de persistencia para alertas.
type AlertaRepository interface {
	Create(a *entity.Alerta) error
	List(limit, offset int) ([]*entity.Alerta, error)
	ListByInsumoIDs(ids []int64) ([]*entity.Alerta, error)
	// ExisteConMensaje reporta si ya hay una alerta con ese mensaje exacto
	// para el insumo (deduplicación por texto).
	ExisteConMensaje(insumoID int64, mensaje string) (bool, error)
}
