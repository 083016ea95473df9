package reportes_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/his-bodega/bodega-api/internal/application/reportes"
	"github.com/his-bodega/bodega-api/internal/domain"
	"github.com/his-bodega/bodega-api/internal/domain/entity"
	"github.com/his-bodega/bodega-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeInsumoRepo struct {
	insumos []*entity.Insumo
}

func (f *fakeInsumoRepo) Create(i *entity.Insumo) error { return nil }

func (f *fakeInsumoRepo) GetByID(id int64) (*entity.Insumo, error) {
	for _, i := range f.insumos {
		if i.ID == id {
			return i, nil
		}
	}
	return nil, nil
}

func (f *fakeInsumoRepo) GetByIDs(ids []int64) (map[int64]*entity.Insumo, error) {
	out := make(map[int64]*entity.Insumo)
	for _, i := range f.insumos {
		out[i.ID] = i
	}
	return out, nil
}

func (f *fakeInsumoRepo) Update(i *entity.Insumo) error { return nil }
func (f *fakeInsumoRepo) Delete(id int64) error         { return nil }

func (f *fakeInsumoRepo) List(limit, offset int) ([]*entity.Insumo, error) { return f.insumos, nil }
func (f *fakeInsumoRepo) ListAll() ([]*entity.Insumo, error)               { return f.insumos, nil }

func (f *fakeInsumoRepo) ListStockBajo() ([]*entity.Insumo, error) { return nil, nil }

func (f *fakeInsumoRepo) GetForUpdate(id int64) (*entity.Insumo, error) { return f.GetByID(id) }

func (f *fakeInsumoRepo) ActualizarStock(id int64, stock decimal.Decimal) error { return nil }

type fakeAlertaRepo struct {
	alertas []*entity.Alerta
}

func (f *fakeAlertaRepo) Create(a *entity.Alerta) error { return nil }

func (f *fakeAlertaRepo) List(limit, offset int) ([]*entity.Alerta, error) { return f.alertas, nil }

func (f *fakeAlertaRepo) ListByInsumoIDs(ids []int64) ([]*entity.Alerta, error) {
	return f.alertas, nil
}

func (f *fakeAlertaRepo) ExisteConMensaje(insumoID int64, mensaje string) (bool, error) {
	return false, nil
}

type fakeSalidaRepo struct {
	filas    []repository.ConsumoEspecialidadResult
	gotDesde time.Time
	gotHasta time.Time
	llamadas int
}

func (f *fakeSalidaRepo) Create(s *entity.Salida) error { return nil }

func (f *fakeSalidaRepo) List(limit, offset int) ([]*entity.Salida, error) { return nil, nil }
func (f *fakeSalidaRepo) ListByInsumo(insumoID int64) ([]*entity.Salida, error) {
	return nil, nil
}

func (f *fakeSalidaRepo) ConsumoPorEspecialidad(ctx context.Context, desde, hasta time.Time) ([]repository.ConsumoEspecialidadResult, error) {
	f.llamadas++
	f.gotDesde = desde
	f.gotHasta = hasta
	return f.filas, nil
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ReporteStock
// ──────────────────────────────────────────────────────────────────────────────

func TestReporteStock_AnotaSoloAlertasVigentes(t *testing.T) {
	insumos := []*entity.Insumo{
		{ID: 1, Nombre: "Gasas", StockActual: dec(t, "3"), StockMinimo: dec(t, "10")},
		{ID: 2, Nombre: "Jeringas", StockActual: dec(t, "80"), StockMinimo: dec(t, "10")},
	}
	alertaRepo := &fakeAlertaRepo{alertas: []*entity.Alerta{
		{ID: 1, InsumoID: 1, Mensaje: "Stock bajo: 3 < 10"},
		{ID: 2, InsumoID: 2, Mensaje: "Stock bajo: 5 < 10"}, // recuperado, no vigente
		{ID: 3, InsumoID: 1, Mensaje: "Insumo vence pronto: Lote L-1 - 2020-01-01"}, // vencido
	}}
	uc := reportes.NewUseCase(&fakeInsumoRepo{insumos: insumos}, alertaRepo, &fakeSalidaRepo{})

	items, err := uc.ReporteStock()
	require.NoError(t, err)
	require.Len(t, items, 2, "el reporte cubre todos los insumos")

	assert.Equal(t, []string{"Stock bajo: 3 < 10"}, items[0].Alertas)
	assert.Empty(t, items[1].Alertas, "insumo sin alertas vigentes lleva lista vacía")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ConsumoPorEspecialidad
// ──────────────────────────────────────────────────────────────────────────────

func TestConsumoPorEspecialidad_AgrupaYTotaliza(t *testing.T) {
	salidaRepo := &fakeSalidaRepo{filas: []repository.ConsumoEspecialidadResult{
		{Especialidad: "Odontología", Insumo: "Gasas", CantidadTotal: dec(t, "10"), CostoTotal: dec(t, "15.00")},
		{Especialidad: "Odontología", Insumo: "Guantes", CantidadTotal: dec(t, "4"), CostoTotal: dec(t, "8.00")},
		{Especialidad: "Pediatría", Insumo: "Gasas", CantidadTotal: dec(t, "2"), CostoTotal: dec(t, "3.00")},
	}}
	uc := reportes.NewUseCase(&fakeInsumoRepo{}, &fakeAlertaRepo{}, salidaRepo)

	reporte, err := uc.ConsumoPorEspecialidad(context.Background(), "2026-08-01", "2026-08-31")
	require.NoError(t, err)

	assert.Equal(t, "2026-08-01", reporte.Periodo.FechaInicio)
	assert.Equal(t, "2026-08-31", reporte.Periodo.FechaFin)
	require.Len(t, reporte.Especialidades, 2)

	odo := reporte.Especialidades["Odontología"]
	assert.True(t, odo.TotalCantidad.Equal(dec(t, "14")))
	assert.True(t, odo.TotalCosto.Equal(dec(t, "23.00")))
	require.Len(t, odo.Insumos, 2)

	ped := reporte.Especialidades["Pediatría"]
	assert.True(t, ped.TotalCantidad.Equal(dec(t, "2")))
}

func TestConsumoPorEspecialidad_SinRangoUsaUltimos30Dias(t *testing.T) {
	salidaRepo := &fakeSalidaRepo{}
	uc := reportes.NewUseCase(&fakeInsumoRepo{}, &fakeAlertaRepo{}, salidaRepo)

	reporte, err := uc.ConsumoPorEspecialidad(context.Background(), "", "")
	require.NoError(t, err)
	require.Equal(t, 1, salidaRepo.llamadas)

	dias := salidaRepo.gotHasta.Sub(salidaRepo.gotDesde).Hours() / 24
	assert.InDelta(t, 30, dias, 0.01, "sin rango el período es de 30 días hacia atrás")
	assert.Empty(t, reporte.Especialidades)
}

func TestConsumoPorEspecialidad_RangoInvertido(t *testing.T) {
	uc := reportes.NewUseCase(&fakeInsumoRepo{}, &fakeAlertaRepo{}, &fakeSalidaRepo{})

	_, err := uc.ConsumoPorEspecialidad(context.Background(), "2026-08-31", "2026-08-01")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestConsumoPorEspecialidad_FechaMalFormada(t *testing.T) {
	uc := reportes.NewUseCase(&fakeInsumoRepo{}, &fakeAlertaRepo{}, &fakeSalidaRepo{})

	_, err := uc.ConsumoPorEspecialidad(context.Background(), "31-08-2026", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
