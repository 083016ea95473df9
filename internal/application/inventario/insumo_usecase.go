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

// InsumoUseCase CRUD de insumos del catálogo.
type InsumoUseCase struct {
	insumoRepo       repository.InsumoRepository
	especialidadRepo repository.EspecialidadRepository
	audit            *auditoria.Recorder
}

// NewInsumoUseCase construye el caso de uso de insumos.
func NewInsumoUseCase(insumoRepo repository.InsumoRepository, especialidadRepo repository.EspecialidadRepository, audit *auditoria.Recorder) *InsumoUseCase {
	return &InsumoUseCase{insumoRepo: insumoRepo, especialidadRepo: especialidadRepo, audit: audit}
}

// Crear da de alta un insumo con stock inicial cero.
func (uc *InsumoUseCase) Crear(actor auditoria.Actor, in dto.CreateInsumoRequest) (*dto.InsumoResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.StockMinimo.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.EspecialidadID != nil {
		esp, err := uc.especialidadRepo.GetByID(*in.EspecialidadID)
		if err != nil {
			return nil, err
		}
		if esp == nil {
			return nil, domain.ErrNotFound
		}
	}
	insumo := &entity.Insumo{
		Nombre:         in.Nombre,
		Descripcion:    in.Descripcion,
		UnidadMedida:   in.UnidadMedida,
		StockMinimo:    in.StockMinimo,
		EspecialidadID: in.EspecialidadID,
		CreatedAt:      time.Now(),
	}
	if err := uc.insumoRepo.Create(insumo); err != nil {
		return nil, err
	}
	uc.audit.Registrar(actor, "CREAR INSUMO", fmt.Sprintf("Insumo %d (%s)", insumo.ID, insumo.Nombre))
	return uc.toResponse(insumo)
}

// Obtener devuelve un insumo por su ID.
func (uc *InsumoUseCase) Obtener(id int64) (*dto.InsumoResponse, error) {
	insumo, err := uc.insumoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if insumo == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(insumo)
}

// Listar devuelve una página de insumos. Las especialidades referenciadas se
// resuelven en un solo lote.
func (uc *InsumoUseCase) Listar(page dto.PageRequest) ([]dto.InsumoResponse, error) {
	page.DefaultPage()
	insumos, err := uc.insumoRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(insumos))
	vistos := make(map[int64]bool, len(insumos))
	for _, i := range insumos {
		if i.EspecialidadID != nil && !vistos[*i.EspecialidadID] {
			vistos[*i.EspecialidadID] = true
			ids = append(ids, *i.EspecialidadID)
		}
	}
	especialidades := make(map[int64]*entity.Especialidad)
	if len(ids) > 0 {
		especialidades, err = uc.especialidadRepo.GetByIDs(ids)
		if err != nil {
			return nil, err
		}
	}

	out := make([]dto.InsumoResponse, 0, len(insumos))
	for _, i := range insumos {
		var esp *entity.Especialidad
		if i.EspecialidadID != nil {
			esp = especialidades[*i.EspecialidadID]
		}
		out = append(out, *insumoResponse(i, esp))
	}
	return out, nil
}

// Actualizar modifica los datos de catálogo de un insumo. El stock actual no
// se toca por esta vía: solo cambia con entradas y salidas.
func (uc *InsumoUseCase) Actualizar(actor auditoria.Actor, id int64, in dto.CreateInsumoRequest) (*dto.InsumoResponse, error) {
	if in.Nombre == "" || in.StockMinimo.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	insumo, err := uc.insumoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if insumo == nil {
		return nil, domain.ErrNotFound
	}
	if in.EspecialidadID != nil {
		esp, err := uc.especialidadRepo.GetByID(*in.EspecialidadID)
		if err != nil {
			return nil, err
		}
		if esp == nil {
			return nil, domain.ErrNotFound
		}
	}
	insumo.Nombre = in.Nombre
	insumo.Descripcion = in.Descripcion
	insumo.UnidadMedida = in.UnidadMedida
	insumo.StockMinimo = in.StockMinimo
	insumo.EspecialidadID = in.EspecialidadID
	if err := uc.insumoRepo.Update(insumo); err != nil {
		return nil, err
	}
	uc.audit.Registrar(actor, "ACTUALIZAR INSUMO", fmt.Sprintf("Insumo %d (%s)", insumo.ID, insumo.Nombre))
	return uc.toResponse(insumo)
}

// Eliminar borra un insumo del catálogo.
func (uc *InsumoUseCase) Eliminar(actor auditoria.Actor, id int64) error {
	insumo, err := uc.insumoRepo.GetByID(id)
	if err != nil {
		return err
	}
	if insumo == nil {
		return domain.ErrNotFound
	}
	if err := uc.insumoRepo.Delete(id); err != nil {
		return err
	}
	uc.audit.Registrar(actor, "ELIMINAR INSUMO", fmt.Sprintf("Insumo %d (%s)", insumo.ID, insumo.Nombre))
	return nil
}

func (uc *InsumoUseCase) toResponse(i *entity.Insumo) (*dto.InsumoResponse, error) {
	var esp *entity.Especialidad
	if i.EspecialidadID != nil {
		var err error
		esp, err = uc.especialidadRepo.GetByID(*i.EspecialidadID)
		if err != nil {
			return nil, err
		}
	}
	return insumoResponse(i, esp), nil
}

func insumoResponse(i *entity.Insumo, esp *entity.Especialidad) *dto.InsumoResponse {
	resp := &dto.InsumoResponse{
		ID:           i.ID,
		Nombre:       i.Nombre,
		Descripcion:  i.Descripcion,
		UnidadMedida: i.UnidadMedida,
		StockActual:  i.StockActual,
		StockMinimo:  i.StockMinimo,
	}
	if esp != nil {
		resp.Especialidad = &dto.EspecialidadResponse{ID: esp.ID, Nombre: esp.Nombre}
	}
	return resp
}
