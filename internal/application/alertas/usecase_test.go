package alertas_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/his-bodega/bodega-api/internal/application/alertas"
	"github.com/his-bodega/bodega-api/internal/application/auditoria"
	"github.com/his-bodega/bodega-api/internal/application/dto"
	"github.com/his-bodega/bodega-api/internal/domain/entity"
	"github.com/his-bodega/bodega-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeAlertaRepo struct {
	alertas []*entity.Alerta
	nextID  int64
}

func newFakeAlertaRepo() *fakeAlertaRepo { return &fakeAlertaRepo{nextID: 1} }

func (f *fakeAlertaRepo) Create(a *entity.Alerta) error {
	a.ID = f.nextID
	f.nextID++
	copia := *a
	f.alertas = append(f.alertas, &copia)
	return nil
}

func (f *fakeAlertaRepo) List(limit, offset int) ([]*entity.Alerta, error) {
	return f.alertas, nil
}

func (f *fakeAlertaRepo) ListByInsumoIDs(ids []int64) ([]*entity.Alerta, error) {
	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	out := make([]*entity.Alerta, 0)
	for _, a := range f.alertas {
		if set[a.InsumoID] {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAlertaRepo) ExisteConMensaje(insumoID int64, mensaje string) (bool, error) {
	for _, a := range f.alertas {
		if a.InsumoID == insumoID && a.Mensaje == mensaje {
			return true, nil
		}
	}
	return false, nil
}

type fakeInsumoRepo struct {
	insumos map[int64]*entity.Insumo
}

func (f *fakeInsumoRepo) Create(i *entity.Insumo) error { return nil }

func (f *fakeInsumoRepo) GetByID(id int64) (*entity.Insumo, error) {
	i, ok := f.insumos[id]
	if !ok {
		return nil, nil
	}
	return i, nil
}

func (f *fakeInsumoRepo) GetByIDs(ids []int64) (map[int64]*entity.Insumo, error) {
	out := make(map[int64]*entity.Insumo, len(ids))
	for _, id := range ids {
		if i, ok := f.insumos[id]; ok {
			out[id] = i
		}
	}
	return out, nil
}

func (f *fakeInsumoRepo) Update(i *entity.Insumo) error { return nil }
func (f *fakeInsumoRepo) Delete(id int64) error         { return nil }

func (f *fakeInsumoRepo) List(limit, offset int) ([]*entity.Insumo, error) { return f.ListAll() }

func (f *fakeInsumoRepo) ListAll() ([]*entity.Insumo, error) {
	out := make([]*entity.Insumo, 0, len(f.insumos))
	for id := int64(1); id <= int64(len(f.insumos))+10; id++ {
		if i, ok := f.insumos[id]; ok {
			out = append(out, i)
		}
	}
	return out, nil
}

func (f *fakeInsumoRepo) ListStockBajo() ([]*entity.Insumo, error) {
	todos, _ := f.ListAll()
	out := make([]*entity.Insumo, 0)
	for _, i := range todos {
		if i.BajoStockMinimo() {
			out = append(out, i)
		}
	}
	return out, nil
}

func (f *fakeInsumoRepo) GetForUpdate(id int64) (*entity.Insumo, error) { return f.GetByID(id) }

func (f *fakeInsumoRepo) ActualizarStock(id int64, stock decimal.Decimal) error { return nil }

type fakeEntradaRepo struct {
	entradas []*entity.Entrada
}

func (f *fakeEntradaRepo) Create(e *entity.Entrada) error { return nil }

func (f *fakeEntradaRepo) List(limit, offset int) ([]*entity.Entrada, error) { return f.entradas, nil }
func (f *fakeEntradaRepo) ListByInsumo(insumoID int64) ([]*entity.Entrada, error) {
	return f.entradas, nil
}

func (f *fakeEntradaRepo) ListPorVencer(desde, hasta time.Time) ([]*entity.Entrada, error) {
	out := make([]*entity.Entrada, 0)
	for _, e := range f.entradas {
		if e.FechaVencimiento == nil {
			continue
		}
		if !e.FechaVencimiento.Before(desde) && !e.FechaVencimiento.After(hasta) {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeAuditoriaRepo struct {
	registros []*entity.Auditoria
}

func (f *fakeAuditoriaRepo) Create(a *entity.Auditoria) error {
	f.registros = append(f.registros, a)
	return nil
}

var _ repository.AlertaRepository = (*fakeAlertaRepo)(nil)
var _ repository.InsumoRepository = (*fakeInsumoRepo)(nil)
var _ repository.EntradaRepository = (*fakeEntradaRepo)(nil)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func ptrStr(s string) *string { return &s }

func fecha(t *testing.T, s string) time.Time {
	t.Helper()
	f, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return f
}

var actorTest = auditoria.Actor{UsuarioID: 3, IP: "10.0.0.9"}

func newUseCase(insumos map[int64]*entity.Insumo, entradas []*entity.Entrada) (*alertas.UseCase, *fakeAlertaRepo) {
	alertaRepo := newFakeAlertaRepo()
	uc := alertas.NewUseCase(
		alertaRepo,
		&fakeInsumoRepo{insumos: insumos},
		&fakeEntradaRepo{entradas: entradas},
		auditoria.NewRecorder(&fakeAuditoriaRepo{}),
	)
	return uc, alertaRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GenerarStockBajo
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerarStockBajo_CreaAlertaPorInsumoBajoMinimo(t *testing.T) {
	insumos := map[int64]*entity.Insumo{
		1: {ID: 1, Nombre: "Gasas", StockActual: dec(t, "3"), StockMinimo: dec(t, "10")},
		2: {ID: 2, Nombre: "Jeringas", StockActual: dec(t, "50"), StockMinimo: dec(t, "10")},
	}
	uc, alertaRepo := newUseCase(insumos, nil)

	creadas, err := uc.GenerarStockBajo(actorTest)
	require.NoError(t, err)
	require.Len(t, creadas, 1, "solo el insumo bajo mínimo genera alerta")
	assert.Equal(t, int64(1), creadas[0].InsumoID)
	assert.Equal(t, "Stock bajo: 3 < 10", creadas[0].Mensaje)
	assert.Len(t, alertaRepo.alertas, 1)
}

func TestGenerarStockBajo_NoDuplicaMensajeExacto(t *testing.T) {
	insumos := map[int64]*entity.Insumo{
		1: {ID: 1, Nombre: "Gasas", StockActual: dec(t, "3"), StockMinimo: dec(t, "10")},
	}
	uc, alertaRepo := newUseCase(insumos, nil)

	primera, err := uc.GenerarStockBajo(actorTest)
	require.NoError(t, err)
	require.Len(t, primera, 1)

	segunda, err := uc.GenerarStockBajo(actorTest)
	require.NoError(t, err)
	assert.Empty(t, segunda, "el mismo mensaje exacto no debe repetirse")
	assert.Len(t, alertaRepo.alertas, 1)
}

func TestGenerarStockBajo_StockCambiadoGeneraNuevaAlerta(t *testing.T) {
	insumo := &entity.Insumo{ID: 1, Nombre: "Gasas", StockActual: dec(t, "3"), StockMinimo: dec(t, "10")}
	uc, alertaRepo := newUseCase(map[int64]*entity.Insumo{1: insumo}, nil)

	_, err := uc.GenerarStockBajo(actorTest)
	require.NoError(t, err)

	// El stock baja aún más: el mensaje cambia y la deduplicación no aplica.
	insumo.StockActual = dec(t, "1")
	creadas, err := uc.GenerarStockBajo(actorTest)
	require.NoError(t, err)
	require.Len(t, creadas, 1)
	assert.Equal(t, "Stock bajo: 1 < 10", creadas[0].Mensaje)
	assert.Len(t, alertaRepo.alertas, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GenerarVencimiento
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerarVencimiento_CreaAlertaConLote(t *testing.T) {
	venc := time.Now().AddDate(0, 0, 10)
	entradas := []*entity.Entrada{
		{ID: 1, InsumoID: 1, Cantidad: dec(t, "5"), NumeroLote: ptrStr("L-42"), FechaVencimiento: &venc},
	}
	insumos := map[int64]*entity.Insumo{1: {ID: 1, Nombre: "Suero"}}
	uc, _ := newUseCase(insumos, entradas)

	creadas, err := uc.GenerarVencimiento(actorTest, 0)
	require.NoError(t, err)
	require.Len(t, creadas, 1)
	esperado := fmt.Sprintf("Insumo vence pronto: Lote L-42 - %s", venc.Format("2006-01-02"))
	assert.Equal(t, esperado, creadas[0].Mensaje)
}

func TestGenerarVencimiento_SinLoteUsaMarcador(t *testing.T) {
	venc := time.Now().AddDate(0, 0, 5)
	entradas := []*entity.Entrada{
		{ID: 1, InsumoID: 1, Cantidad: dec(t, "5"), FechaVencimiento: &venc},
	}
	uc, _ := newUseCase(map[int64]*entity.Insumo{1: {ID: 1}}, entradas)

	creadas, err := uc.GenerarVencimiento(actorTest, 30)
	require.NoError(t, err)
	require.Len(t, creadas, 1)
	assert.Contains(t, creadas[0].Mensaje, "Lote SIN_LOTE")
}

func TestGenerarVencimiento_FueraDeVentanaNoGenera(t *testing.T) {
	venc := time.Now().AddDate(0, 0, 90)
	entradas := []*entity.Entrada{
		{ID: 1, InsumoID: 1, Cantidad: dec(t, "5"), NumeroLote: ptrStr("L-1"), FechaVencimiento: &venc},
	}
	uc, _ := newUseCase(map[int64]*entity.Insumo{1: {ID: 1}}, entradas)

	creadas, err := uc.GenerarVencimiento(actorTest, 30)
	require.NoError(t, err)
	assert.Empty(t, creadas, "un lote que vence en 90 días queda fuera de la ventana de 30")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ListarActivas
// ──────────────────────────────────────────────────────────────────────────────

func TestListarActivas_FiltraStockRecuperado(t *testing.T) {
	insumos := map[int64]*entity.Insumo{
		1: {ID: 1, Nombre: "Gasas", StockActual: dec(t, "3"), StockMinimo: dec(t, "10")},
		2: {ID: 2, Nombre: "Jeringas", StockActual: dec(t, "80"), StockMinimo: dec(t, "10")},
	}
	uc, alertaRepo := newUseCase(insumos, nil)
	require.NoError(t, alertaRepo.Create(&entity.Alerta{InsumoID: 1, Mensaje: "Stock bajo: 3 < 10", Fecha: fecha(t, "2026-08-01")}))
	require.NoError(t, alertaRepo.Create(&entity.Alerta{InsumoID: 2, Mensaje: "Stock bajo: 5 < 10", Fecha: fecha(t, "2026-08-01")}))

	activas, err := uc.ListarActivas(dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, activas, 1, "la alerta del insumo recuperado no es vigente")
	assert.Equal(t, int64(1), activas[0].InsumoID)
	require.NotNil(t, activas[0].Insumo, "la alerta vigente viene anotada con su insumo")
	assert.Equal(t, "Gasas", activas[0].Insumo.Nombre)
}

func TestListarActivas_DescartaVencimientoPasado(t *testing.T) {
	insumos := map[int64]*entity.Insumo{
		1: {ID: 1, Nombre: "Suero", StockActual: dec(t, "50"), StockMinimo: dec(t, "1")},
	}
	uc, alertaRepo := newUseCase(insumos, nil)
	require.NoError(t, alertaRepo.Create(&entity.Alerta{
		InsumoID: 1,
		Mensaje:  "Insumo vence pronto: Lote L-9 - 2020-01-01",
		Fecha:    fecha(t, "2019-12-15"),
	}))
	futuro := time.Now().AddDate(0, 0, 15).Format("2006-01-02")
	require.NoError(t, alertaRepo.Create(&entity.Alerta{
		InsumoID: 1,
		Mensaje:  "Insumo vence pronto: Lote L-10 - " + futuro,
		Fecha:    fecha(t, "2026-08-01"),
	}))

	activas, err := uc.ListarActivas(dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, activas, 1)
	assert.Contains(t, activas[0].Mensaje, "L-10")
}

func TestListarActivas_InsumoEliminadoSeOmite(t *testing.T) {
	uc, alertaRepo := newUseCase(map[int64]*entity.Insumo{}, nil)
	require.NoError(t, alertaRepo.Create(&entity.Alerta{InsumoID: 99, Mensaje: "Stock bajo: 1 < 5", Fecha: fecha(t, "2026-08-01")}))

	activas, err := uc.ListarActivas(dto.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, activas)
}
