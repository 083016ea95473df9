// Package auditoria registra el rastro de acciones de usuario. El registro es
// best-effort: un fallo al persistir la auditoría se loguea pero no aborta la
// operación que la originó.
package auditoria

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/his-bodega/bodega-api/internal/domain/entity"
	"github.com/his-bodega/bodega-api/internal/domain/repository"
)

// Actor identifica quién ejecuta una operación y desde dónde.
type Actor struct {
	UsuarioID int64
	IP        string
}

// Recorder anexa entradas al registro de auditoría.
type Recorder struct {
	repo repository.AuditoriaRepository
}

// NewRecorder construye el recorder.
func NewRecorder(repo repository.AuditoriaRepository) *Recorder {
	return &Recorder{repo: repo}
}

// Registrar anexa una entrada de auditoría.
func (r *Recorder) Registrar(actor Actor, accion, detalle string) {
	entrada := &entity.Auditoria{
		ID:        uuid.New().String(),
		UsuarioID: actor.UsuarioID,
		Accion:    accion,
		Detalle:   detalle,
		Fecha:     time.Now(),
		IPAddress: actor.IP,
	}
	if err := r.repo.Create(entrada); err != nil {
		log.Warn().Err(err).Str("accion", accion).Msg("no se pudo registrar auditoría")
	}
}
