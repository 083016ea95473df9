package inventario

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/his-bodega/bodega-api/internal/application/auditoria"
	"github.com/his-bodega/bodega-api/internal/application/dto"
	"github.com/his-bodega/bodega-api/internal/domain"
	"github.com/his-bodega/bodega-api/internal/domain/entity"
	"github.com/his-bodega/bodega-api/internal/domain/repository"
)

const formatoFecha = "2006-01-02"

// MovimientoUseCase registra entradas y salidas de stock. Ambas operaciones
// corren dentro de una transacción que bloquea la fila del insumo, de modo que
// dos salidas concurrentes no puedan dejar el stock en negativo.
type MovimientoUseCase struct {
	tx          TxRunner
	entradaRepo repository.EntradaRepository
	salidaRepo  repository.SalidaRepository
	insumoRepo  repository.InsumoRepository
	audit       *auditoria.Recorder
}

// NewMovimientoUseCase construye el caso de uso de movimientos.
func NewMovimientoUseCase(
	tx TxRunner,
	entradaRepo repository.EntradaRepository,
	salidaRepo repository.SalidaRepository,
	insumoRepo repository.InsumoRepository,
	audit *auditoria.Recorder,
) *MovimientoUseCase {
	return &MovimientoUseCase{
		tx:          tx,
		entradaRepo: entradaRepo,
		salidaRepo:  salidaRepo,
		insumoRepo:  insumoRepo,
		audit:       audit,
	}
}

// RegistrarEntrada persiste una entrada e incrementa el stock del insumo.
func (uc *MovimientoUseCase) RegistrarEntrada(ctx context.Context, actor auditoria.Actor, in dto.CreateEntradaRequest) (*dto.EntradaResponse, error) {
	if !in.Cantidad.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	precio, err := precioODefault(in.PrecioUnitario)
	if err != nil {
		return nil, err
	}
	fecha, err := parseFecha(in.Fecha)
	if err != nil {
		return nil, err
	}
	var vencimiento *time.Time
	if in.FechaVencimiento != nil && *in.FechaVencimiento != "" {
		v, err := parseFecha(*in.FechaVencimiento)
		if err != nil {
			return nil, err
		}
		vencimiento = &v
	}

	entrada := &entity.Entrada{
		InsumoID:              in.InsumoID,
		Cantidad:              in.Cantidad,
		PrecioUnitario:        precio,
		Fecha:                 fecha,
		UsuarioID:             actor.UsuarioID,
		NumeroReferencia:      in.NumeroReferencia,
		RemitenteDestinatario: in.RemitenteDestinatario,
		NumeroLote:            in.NumeroLote,
		FechaVencimiento:      vencimiento,
		CreatedAt:             time.Now(),
	}

	err = uc.tx.Run(ctx, func(entradaRepo repository.EntradaRepository, _ repository.SalidaRepository, insumoRepo repository.InsumoRepository) error {
		insumo, err := insumoRepo.GetForUpdate(in.InsumoID)
		if err != nil {
			return err
		}
		if insumo == nil {
			return domain.ErrNotFound
		}
		if err := entradaRepo.Create(entrada); err != nil {
			return err
		}
		return insumoRepo.ActualizarStock(insumo.ID, insumo.StockActual.Add(in.Cantidad))
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Registrar(actor, "REGISTRAR ENTRADA",
		fmt.Sprintf("Entrada %d: insumo %d, cantidad %s", entrada.ID, entrada.InsumoID, entrada.Cantidad))
	return entradaToResponse(entrada), nil
}

// RegistrarSalida persiste una salida y descuenta el stock del insumo. Si el
// stock disponible no alcanza, falla con StockInsuficienteError sin persistir
// nada.
func (uc *MovimientoUseCase) RegistrarSalida(ctx context.Context, actor auditoria.Actor, in dto.CreateSalidaRequest) (*dto.SalidaResponse, error) {
	if !in.Cantidad.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	precio, err := precioODefault(in.PrecioUnitario)
	if err != nil {
		return nil, err
	}
	fecha, err := parseFecha(in.Fecha)
	if err != nil {
		return nil, err
	}

	salida := &entity.Salida{
		InsumoID:              in.InsumoID,
		Cantidad:              in.Cantidad,
		PrecioUnitario:        precio,
		Fecha:                 fecha,
		UsuarioID:             actor.UsuarioID,
		NumeroReferencia:      in.NumeroReferencia,
		RemitenteDestinatario: in.RemitenteDestinatario,
		CreatedAt:             time.Now(),
	}

	err = uc.tx.Run(ctx, func(_ repository.EntradaRepository, salidaRepo repository.SalidaRepository, insumoRepo repository.InsumoRepository) error {
		insumo, err := insumoRepo.GetForUpdate(in.InsumoID)
		if err != nil {
			return err
		}
		if insumo == nil {
			return domain.ErrNotFound
		}
		if insumo.StockActual.LessThan(in.Cantidad) {
			return &domain.StockInsuficienteError{
				Disponible: insumo.StockActual,
				Solicitado: in.Cantidad,
			}
		}
		if err := salidaRepo.Create(salida); err != nil {
			return err
		}
		return insumoRepo.ActualizarStock(insumo.ID, insumo.StockActual.Sub(in.Cantidad))
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Registrar(actor, "REGISTRAR SALIDA",
		fmt.Sprintf("Salida %d: insumo %d, cantidad %s", salida.ID, salida.InsumoID, salida.Cantidad))
	return salidaToResponse(salida), nil
}

// ListarEntradas devuelve una página de entradas con el nombre del insumo
// resuelto en un solo lote.
func (uc *MovimientoUseCase) ListarEntradas(page dto.PageRequest) ([]dto.EntradaResponse, error) {
	page.DefaultPage()
	entradas, err := uc.entradaRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(entradas))
	visto := make(map[int64]bool, len(entradas))
	for _, e := range entradas {
		if !visto[e.InsumoID] {
			visto[e.InsumoID] = true
			ids = append(ids, e.InsumoID)
		}
	}
	insumos, err := uc.insumoRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EntradaResponse, 0, len(entradas))
	for _, e := range entradas {
		resp := entradaToResponse(e)
		if insumo, ok := insumos[e.InsumoID]; ok {
			resp.InsumoNombre = insumo.Nombre
		}
		out = append(out, *resp)
	}
	return out, nil
}

// ListarSalidas devuelve una página de salidas.
func (uc *MovimientoUseCase) ListarSalidas(page dto.PageRequest) ([]dto.SalidaResponse, error) {
	page.DefaultPage()
	salidas, err := uc.salidaRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SalidaResponse, 0, len(salidas))
	for _, s := range salidas {
		out = append(out, *salidaToResponse(s))
	}
	return out, nil
}

func precioODefault(p *decimal.Decimal) (decimal.Decimal, error) {
	if p == nil {
		return decimal.Zero, nil
	}
	if p.IsNegative() {
		return decimal.Zero, domain.ErrInvalidInput
	}
	return *p, nil
}

func parseFecha(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, domain.ErrInvalidInput
	}
	t, err := time.Parse(formatoFecha, s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return t, nil
}

func entradaToResponse(e *entity.Entrada) *dto.EntradaResponse {
	resp := &dto.EntradaResponse{
		ID:                    e.ID,
		InsumoID:              e.InsumoID,
		Cantidad:              e.Cantidad,
		PrecioUnitario:        e.PrecioUnitario,
		Fecha:                 e.Fecha.Format(formatoFecha),
		UsuarioID:             e.UsuarioID,
		NumeroReferencia:      e.NumeroReferencia,
		RemitenteDestinatario: e.RemitenteDestinatario,
		NumeroLote:            e.NumeroLote,
	}
	if e.FechaVencimiento != nil {
		v := e.FechaVencimiento.Format(formatoFecha)
		resp.FechaVencimiento = &v
	}
	return resp
}

func salidaToResponse(s *entity.Salida) *dto.SalidaResponse {
	return &dto.SalidaResponse{
		ID:                    s.ID,
		InsumoID:              s.InsumoID,
		Cantidad:              s.Cantidad,
		PrecioUnitario:        s.PrecioUnitario,
		Fecha:                 s.Fecha.Format(formatoFecha),
		UsuarioID:             s.UsuarioID,
		NumeroReferencia:      s.NumeroReferencia,
		RemitenteDestinatario: s.RemitenteDestinatario,
	}
}
