// Package reportes arma los reportes de inventario: estado de stock con sus
// alertas vigentes y consumo por especialidad en un período.
package reportes

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/his-bodega/bodega-api/internal/application/dto"
	"github.com/his-bodega/bodega-api/internal/domain"
	"github.com/his-bodega/bodega-api/internal/domain/alerta"
	"github.com/his-bodega/bodega-api/internal/domain/repository"
)

const formatoFecha = "2006-01-02"

// DiasPeriodoDefault días hacia atrás cuando el reporte no recibe rango.
const DiasPeriodoDefault = 30

// UseCase casos de uso de reportes.
type UseCase struct {
	insumoRepo repository.InsumoRepository
	alertaRepo repository.AlertaRepository
	salidaRepo repository.SalidaRepository
}

// NewUseCase construye el caso de uso de reportes.
func NewUseCase(
	insumoRepo repository.InsumoRepository,
	alertaRepo repository.AlertaRepository,
	salidaRepo repository.SalidaRepository,
) *UseCase {
	return &UseCase{insumoRepo: insumoRepo, alertaRepo: alertaRepo, salidaRepo: salidaRepo}
}

// ReporteStock devuelve todos los insumos con sus alertas vigentes. Las
// alertas se cargan en un solo lote y se agrupan por insumo en memoria.
func (uc *UseCase) ReporteStock() ([]dto.ReporteStockItemDTO, error) {
	insumos, err := uc.insumoRepo.ListAll()
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(insumos))
	for _, i := range insumos {
		ids = append(ids, i.ID)
	}
	alertasList, err := uc.alertaRepo.ListByInsumoIDs(ids)
	if err != nil {
		return nil, err
	}
	porInsumo := make(map[int64][]string, len(insumos))
	hoy := time.Now()
	for _, a := range alertasList {
		porInsumo[a.InsumoID] = append(porInsumo[a.InsumoID], a.Mensaje)
	}

	out := make([]dto.ReporteStockItemDTO, 0, len(insumos))
	for _, i := range insumos {
		vigentes := make([]string, 0)
		for _, mensaje := range porInsumo[i.ID] {
			if alerta.EsVigente(mensaje, *i, hoy) {
				vigentes = append(vigentes, mensaje)
			}
		}
		out = append(out, dto.ReporteStockItemDTO{
			InsumoID:     i.ID,
			Nombre:       i.Nombre,
			Descripcion:  i.Descripcion,
			UnidadMedida: i.UnidadMedida,
			StockActual:  i.StockActual,
			StockMinimo:  i.StockMinimo,
			Alertas:      vigentes,
		})
	}
	return out, nil
}

// ConsumoPorEspecialidad agrega las salidas del período por especialidad e
// insumo. Fechas en formato YYYY-MM-DD; sin rango, los últimos 30 días.
func (uc *UseCase) ConsumoPorEspecialidad(ctx context.Context, fechaInicio, fechaFin string) (*dto.ConsumoReporteDTO, error) {
	hoy := time.Now()
	desde := hoy.AddDate(0, 0, -DiasPeriodoDefault)
	hasta := hoy
	var err error
	if fechaInicio != "" {
		desde, err = time.Parse(formatoFecha, fechaInicio)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	if fechaFin != "" {
		hasta, err = time.Parse(formatoFecha, fechaFin)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	if hasta.Before(desde) {
		return nil, domain.ErrInvalidInput
	}

	filas, err := uc.salidaRepo.ConsumoPorEspecialidad(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}

	especialidades := make(map[string]dto.ConsumoEspecialidadDTO)
	for _, f := range filas {
		esp, ok := especialidades[f.Especialidad]
		if !ok {
			esp = dto.ConsumoEspecialidadDTO{
				TotalCantidad: decimal.Zero,
				TotalCosto:    decimal.Zero,
				Insumos:       make([]dto.ConsumoInsumoDTO, 0),
			}
		}
		esp.TotalCantidad = esp.TotalCantidad.Add(f.CantidadTotal)
		esp.TotalCosto = esp.TotalCosto.Add(f.CostoTotal)
		esp.Insumos = append(esp.Insumos, dto.ConsumoInsumoDTO{
			Insumo:   f.Insumo,
			Cantidad: f.CantidadTotal,
			Costo:    f.CostoTotal,
		})
		especialidades[f.Especialidad] = esp
	}

	return &dto.ConsumoReporteDTO{
		Periodo: dto.PeriodoDTO{
			FechaInicio: desde.Format(formatoFecha),
			FechaFin:    hasta.Format(formatoFecha),
		},
		Especialidades: especialidades,
	}, nil
}
