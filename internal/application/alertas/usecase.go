// Package alertas gestiona las alertas de stock bajo y vencimiento próximo.
// Las alertas son registros históricos inmutables; la vigencia se evalúa al
// listarlas contra el estado actual del insumo.
package alertas

import (
	"fmt"
	"time"

	"github.com/his-bodega/bodega-api/internal/application/auditoria"
	"github.com/his-bodega/bodega-api/internal/application/dto"
	"github.com/his-bodega/bodega-api/internal/domain"
	"github.com/his-bodega/bodega-api/internal/domain/alerta"
	"github.com/his-bodega/bodega-api/internal/domain/entity"
	"github.com/his-bodega/bodega-api/internal/domain/repository"
)

const formatoFecha = "2006-01-02"

// DiasVencimientoDefault ventana por defecto para alertas de vencimiento.
const DiasVencimientoDefault = 30

// UseCase casos de uso de alertas.
type UseCase struct {
	alertaRepo  repository.AlertaRepository
	insumoRepo  repository.InsumoRepository
	entradaRepo repository.EntradaRepository
	audit       *auditoria.Recorder
}

// NewUseCase construye el caso de uso de alertas.
func NewUseCase(
	alertaRepo repository.AlertaRepository,
	insumoRepo repository.InsumoRepository,
	entradaRepo repository.EntradaRepository,
	audit *auditoria.Recorder,
) *UseCase {
	return &UseCase{
		alertaRepo:  alertaRepo,
		insumoRepo:  insumoRepo,
		entradaRepo: entradaRepo,
		audit:       audit,
	}
}

// ListarActivas devuelve solo las alertas vigentes: las de stock bajo cuyo
// insumo sigue bajo mínimo y las de vencimiento cuya fecha no pasó. Los
// insumos se resuelven en un solo lote.
func (uc *UseCase) ListarActivas(page dto.PageRequest) ([]dto.AlertaResponse, error) {
	page.DefaultPage()
	alertasList, err := uc.alertaRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(alertasList))
	visto := make(map[int64]bool, len(alertasList))
	for _, a := range alertasList {
		if !visto[a.InsumoID] {
			visto[a.InsumoID] = true
			ids = append(ids, a.InsumoID)
		}
	}
	insumos, err := uc.insumoRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}

	hoy := time.Now()
	out := make([]dto.AlertaResponse, 0, len(alertasList))
	for _, a := range alertasList {
		insumo, ok := insumos[a.InsumoID]
		if !ok {
			continue // insumo eliminado, la alerta dejó de tener sentido
		}
		if !alerta.EsVigente(a.Mensaje, *insumo, hoy) {
			continue
		}
		resp := toResponse(a)
		resp.Insumo = &dto.InsumoResponse{
			ID:           insumo.ID,
			Nombre:       insumo.Nombre,
			Descripcion:  insumo.Descripcion,
			UnidadMedida: insumo.UnidadMedida,
			StockActual:  insumo.StockActual,
			StockMinimo:  insumo.StockMinimo,
		}
		out = append(out, *resp)
	}
	return out, nil
}

// Crear registra una alerta manual.
func (uc *UseCase) Crear(actor auditoria.Actor, in dto.CreateAlertaRequest) (*dto.AlertaResponse, error) {
	if in.Mensaje == "" {
		return nil, domain.ErrInvalidInput
	}
	insumo, err := uc.insumoRepo.GetByID(in.InsumoID)
	if err != nil {
		return nil, err
	}
	if insumo == nil {
		return nil, domain.ErrNotFound
	}
	fecha := time.Now()
	if in.Fecha != "" {
		f, err := time.Parse(formatoFecha, in.Fecha)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		fecha = f
	}
	a := &entity.Alerta{
		InsumoID:  in.InsumoID,
		Mensaje:   in.Mensaje,
		Fecha:     fecha,
		CreatedAt: time.Now(),
	}
	if err := uc.alertaRepo.Create(a); err != nil {
		return nil, err
	}
	uc.audit.Registrar(actor, "CREAR ALERTA", fmt.Sprintf("Alerta %d: insumo %d", a.ID, a.InsumoID))
	return toResponse(a), nil
}

// GenerarStockBajo crea una alerta por cada insumo bajo su stock mínimo. La
// deduplicación es por mensaje exacto: si el stock cambia, el mensaje cambia y
// se genera una alerta nueva.
func (uc *UseCase) GenerarStockBajo(actor auditoria.Actor) ([]dto.AlertaResponse, error) {
	insumos, err := uc.insumoRepo.ListStockBajo()
	if err != nil {
		return nil, err
	}
	creadas := make([]dto.AlertaResponse, 0)
	for _, i := range insumos {
		mensaje := alerta.MensajeStockBajo(i.StockActual, i.StockMinimo)
		existe, err := uc.alertaRepo.ExisteConMensaje(i.ID, mensaje)
		if err != nil {
			return nil, err
		}
		if existe {
			continue
		}
		a := &entity.Alerta{
			InsumoID:  i.ID,
			Mensaje:   mensaje,
			Fecha:     time.Now(),
			CreatedAt: time.Now(),
		}
		if err := uc.alertaRepo.Create(a); err != nil {
			return nil, err
		}
		creadas = append(creadas, *toResponse(a))
	}
	if len(creadas) > 0 {
		uc.audit.Registrar(actor, "GENERAR ALERTAS STOCK BAJO", fmt.Sprintf("%d alertas generadas", len(creadas)))
	}
	return creadas, nil
}

// GenerarVencimiento crea una alerta por cada entrada cuyo lote vence dentro
// de los próximos dias días (30 si dias <= 0). Deduplicación por mensaje
// exacto, igual que en stock bajo.
func (uc *UseCase) GenerarVencimiento(actor auditoria.Actor, dias int) ([]dto.AlertaResponse, error) {
	if dias <= 0 {
		dias = DiasVencimientoDefault
	}
	hoy := time.Now()
	entradas, err := uc.entradaRepo.ListPorVencer(hoy, hoy.AddDate(0, 0, dias))
	if err != nil {
		return nil, err
	}
	creadas := make([]dto.AlertaResponse, 0)
	for _, e := range entradas {
		if e.FechaVencimiento == nil {
			continue
		}
		mensaje := alerta.MensajeVencimiento(e.NumeroLote, *e.FechaVencimiento)
		existe, err := uc.alertaRepo.ExisteConMensaje(e.InsumoID, mensaje)
		if err != nil {
			return nil, err
		}
		if existe {
			continue
		}
		a := &entity.Alerta{
			InsumoID:  e.InsumoID,
			Mensaje:   mensaje,
			Fecha:     time.Now(),
			CreatedAt: time.Now(),
		}
		if err := uc.alertaRepo.Create(a); err != nil {
			return nil, err
		}
		creadas = append(creadas, *toResponse(a))
	}
	if len(creadas) > 0 {
		uc.audit.Registrar(actor, "GENERAR ALERTAS VENCIMIENTO", fmt.Sprintf("%d alertas generadas", len(creadas)))
	}
	return creadas, nil
}

func toResponse(a *entity.Alerta) *dto.AlertaResponse {
	return &dto.AlertaResponse{
		ID:       a.ID,
		InsumoID: a.InsumoID,
		Mensaje:  a.Mensaje,
		Fecha:    a.Fecha.Format(formatoFecha),
	}
}
