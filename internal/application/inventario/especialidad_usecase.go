package inventario

import (
	"fmt"
	"time"

	"github.com/his-bodega/bodega-api/internal/application/auditoria"
	"github.com/his-bodega/bodega-api/internal/application/dto"
	"github.com/his-bodega/bodega-api/internal/domain"
	"github.com/his-bodega/bodega-api/internal/domain/entity"
	"github.com/his-bodega/bodega-api/internal/domain/repository"
)

// EspecialidadUseCase administración del catálogo de especialidades.
type EspecialidadUseCase struct {
	repo  repository.EspecialidadRepository
	audit *auditoria.Recorder
}

// NewEspecialidadUseCase construye el caso de uso de especialidades.
func NewEspecialidadUseCase(repo repository.EspecialidadRepository, audit *auditoria.Recorder) *EspecialidadUseCase {
	return &EspecialidadUseCase{repo: repo, audit: audit}
}

// Crear da de alta una especialidad.
func (uc *EspecialidadUseCase) Crear(actor auditoria.Actor, in dto.CreateEspecialidadRequest) (*dto.EspecialidadResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	esp := &entity.Especialidad{Nombre: in.Nombre, CreatedAt: time.Now()}
	if err := uc.repo.Create(esp); err != nil {
		return nil, err
	}
	uc.audit.Registrar(actor, "CREAR ESPECIALIDAD", fmt.Sprintf("Especialidad %d (%s)", esp.ID, esp.Nombre))
	return &dto.EspecialidadResponse{ID: esp.ID, Nombre: esp.Nombre}, nil
}

// Listar devuelve una página de especialidades.
func (uc *EspecialidadUseCase) Listar(page dto.PageRequest) ([]dto.EspecialidadResponse, error) {
	page.DefaultPage()
	esps, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EspecialidadResponse, 0, len(esps))
	for _, e := range esps {
		out = append(out, dto.EspecialidadResponse{ID: e.ID, Nombre: e.Nombre})
	}
	return out, nil
}
