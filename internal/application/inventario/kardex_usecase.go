package inventario

import (
	"github.com/rs/zerolog/log"

	"github.com/his-bodega/bodega-api/internal/application/dto"
	"github.com/his-bodega/bodega-api/internal/domain"
	"github.com/his-bodega/bodega-api/internal/domain/kardex"
	"github.com/his-bodega/bodega-api/internal/domain/repository"
)

// KardexUseCase reconstruye el historial de movimientos de un insumo y deriva
// de él la asignación de lotes FEFO.
type KardexUseCase struct {
	insumoRepo  repository.InsumoRepository
	entradaRepo repository.EntradaRepository
	salidaRepo  repository.SalidaRepository
	pdf         KardexPDFGenerator
}

// NewKardexUseCase construye el caso de uso de kardex.
func NewKardexUseCase(
	insumoRepo repository.InsumoRepository,
	entradaRepo repository.EntradaRepository,
	salidaRepo repository.SalidaRepository,
	pdf KardexPDFGenerator,
) *KardexUseCase {
	return &KardexUseCase{
		insumoRepo:  insumoRepo,
		entradaRepo: entradaRepo,
		salidaRepo:  salidaRepo,
		pdf:         pdf,
	}
}

// GetKardex devuelve los movimientos cronológicos del insumo con stock,
// último precio y valor total derivados del historial.
func (uc *KardexUseCase) GetKardex(insumoID int64) (*dto.KardexResponse, error) {
	resumen, err := uc.resumen(insumoID)
	if err != nil {
		return nil, err
	}
	return resumenToResponse(resumen), nil
}

// LotesDisponibles asigna el stock actual a los lotes de entrada en orden
// FEFO: vence primero, sale primero.
func (uc *KardexUseCase) LotesDisponibles(insumoID int64) ([]dto.LoteDisponibleDTO, error) {
	insumo, err := uc.insumoRepo.GetByID(insumoID)
	if err != nil {
		return nil, err
	}
	if insumo == nil {
		return nil, domain.ErrNotFound
	}
	entradas, err := uc.entradaRepo.ListByInsumo(insumoID)
	if err != nil {
		return nil, err
	}

	entradasValue := derefEntradas(entradas)
	totalEntradas := sumaCantidades(entradasValue)
	if totalEntradas.LessThan(insumo.StockActual) {
		log.Warn().
			Int64("insumo_id", insumoID).
			Str("stock_actual", insumo.StockActual.String()).
			Str("total_entradas", totalEntradas.String()).
			Msg("stock actual mayor que el total de entradas, asignación FEFO incompleta")
	}

	lotes := kardex.AsignarLotesFEFO(entradasValue, insumo.StockActual)
	out := make([]dto.LoteDisponibleDTO, 0, len(lotes))
	for _, l := range lotes {
		item := dto.LoteDisponibleDTO{
			NumeroLote:      l.NumeroLote,
			StockDisponible: l.StockDisponible,
			PrecioUnitario:  l.PrecioUnitario,
		}
		if l.FechaVencimiento != nil {
			v := l.FechaVencimiento.Format(formatoFecha)
			item.FechaVencimiento = &v
		}
		out = append(out, item)
	}
	return out, nil
}

// KardexPDF genera el kardex del insumo como documento PDF.
func (uc *KardexUseCase) KardexPDF(insumoID int64) ([]byte, string, error) {
	insumo, err := uc.insumoRepo.GetByID(insumoID)
	if err != nil {
		return nil, "", err
	}
	if insumo == nil {
		return nil, "", domain.ErrNotFound
	}
	resumen, err := uc.resumen(insumoID)
	if err != nil {
		return nil, "", err
	}
	doc, err := uc.pdf.Generate(insumo.Nombre, *resumenToResponse(resumen))
	if err != nil {
		return nil, "", err
	}
	return doc, insumo.Nombre, nil
}

func (uc *KardexUseCase) resumen(insumoID int64) (*kardex.Resumen, error) {
	insumo, err := uc.insumoRepo.GetByID(insumoID)
	if err != nil {
		return nil, err
	}
	if insumo == nil {
		return nil, domain.ErrNotFound
	}
	entradas, err := uc.entradaRepo.ListByInsumo(insumoID)
	if err != nil {
		return nil, err
	}
	salidas, err := uc.salidaRepo.ListByInsumo(insumoID)
	if err != nil {
		return nil, err
	}
	resumen := kardex.Calcular(derefEntradas(entradas), derefSalidas(salidas))
	return &resumen, nil
}

func resumenToResponse(r *kardex.Resumen) *dto.KardexResponse {
	movs := make([]dto.KardexMovimientoDTO, 0, len(r.Movimientos))
	for _, m := range r.Movimientos {
		item := dto.KardexMovimientoDTO{
			Tipo:                  m.Tipo,
			Fecha:                 m.Fecha.Format(formatoFecha),
			Cantidad:              m.Cantidad,
			PrecioUnitario:        m.PrecioUnitario,
			PrecioTotal:           m.PrecioTotal,
			NumeroReferencia:      m.NumeroReferencia,
			RemitenteDestinatario: m.RemitenteDestinatario,
			NumeroLote:            m.NumeroLote,
			UsuarioID:             m.UsuarioID,
		}
		if m.FechaVencimiento != nil {
			v := m.FechaVencimiento.Format(formatoFecha)
			item.FechaVencimiento = &v
		}
		movs = append(movs, item)
	}
	return &dto.KardexResponse{
		Movimientos:          movs,
		StockActual:          r.StockActual,
		ValorStockTotal:      r.ValorStockTotal,
		UltimoPrecioUnitario: r.UltimoPrecioUnitario,
	}
}
