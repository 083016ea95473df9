package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/his-bodega/bodega-api/internal/application/alertas"
	"github.com/his-bodega/bodega-api/internal/application/auditoria"
	"github.com/his-bodega/bodega-api/internal/application/auth"
	"github.com/his-bodega/bodega-api/internal/application/dto"
	"github.com/his-bodega/bodega-api/internal/application/inventario"
	"github.com/his-bodega/bodega-api/internal/application/reportes"
	"github.com/his-bodega/bodega-api/internal/domain/entity"
	"github.com/his-bodega/bodega-api/internal/domain/repository"
	apphttp "github.com/his-bodega/bodega-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos para montar el router completo
// ──────────────────────────────────────────────────────────────────────────────

type fakeUsuarioRepo struct{}

func (f *fakeUsuarioRepo) Create(u *entity.Usuario) error { return nil }

func (f *fakeUsuarioRepo) GetByID(id int64) (*entity.Usuario, error) { return nil, nil }

func (f *fakeUsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) { return nil, nil }

type fakeEspecialidadRepo struct{}

func (f *fakeEspecialidadRepo) Create(e *entity.Especialidad) error { return nil }
func (f *fakeEspecialidadRepo) GetByID(id int64) (*entity.Especialidad, error) {
	return nil, nil
}
func (f *fakeEspecialidadRepo) GetByIDs(ids []int64) (map[int64]*entity.Especialidad, error) {
	return map[int64]*entity.Especialidad{}, nil
}
func (f *fakeEspecialidadRepo) List(limit, offset int) ([]*entity.Especialidad, error) {
	return nil, nil
}

type fakeInsumoRepo struct{}

func (f *fakeInsumoRepo) Create(i *entity.Insumo) error            { return nil }
func (f *fakeInsumoRepo) GetByID(id int64) (*entity.Insumo, error) { return nil, nil }

func (f *fakeInsumoRepo) GetByIDs(ids []int64) (map[int64]*entity.Insumo, error) {
	return map[int64]*entity.Insumo{}, nil
}

func (f *fakeInsumoRepo) Update(i *entity.Insumo) error { return nil }
func (f *fakeInsumoRepo) Delete(id int64) error         { return nil }

func (f *fakeInsumoRepo) List(limit, offset int) ([]*entity.Insumo, error) { return nil, nil }
func (f *fakeInsumoRepo) ListAll() ([]*entity.Insumo, error)               { return nil, nil }
func (f *fakeInsumoRepo) ListStockBajo() ([]*entity.Insumo, error)         { return nil, nil }
func (f *fakeInsumoRepo) GetForUpdate(id int64) (*entity.Insumo, error)    { return nil, nil }

func (f *fakeInsumoRepo) ActualizarStock(id int64, s decimal.Decimal) error { return nil }

type fakeEntradaRepo struct{}

func (f *fakeEntradaRepo) Create(e *entity.Entrada) error { return nil }

func (f *fakeEntradaRepo) List(limit, offset int) ([]*entity.Entrada, error) { return nil, nil }
func (f *fakeEntradaRepo) ListByInsumo(insumoID int64) ([]*entity.Entrada, error) {
	return nil, nil
}
func (f *fakeEntradaRepo) ListPorVencer(desde, hasta time.Time) ([]*entity.Entrada, error) {
	return nil, nil
}

type fakeSalidaRepo struct{}

func (f *fakeSalidaRepo) Create(s *entity.Salida) error { return nil }

func (f *fakeSalidaRepo) List(limit, offset int) ([]*entity.Salida, error) { return nil, nil }
func (f *fakeSalidaRepo) ListByInsumo(insumoID int64) ([]*entity.Salida, error) {
	return nil, nil
}
func (f *fakeSalidaRepo) ConsumoPorEspecialidad(ctx context.Context, desde, hasta time.Time) ([]repository.ConsumoEspecialidadResult, error) {
	return nil, nil
}

type fakeAlertaRepo struct{}

func (f *fakeAlertaRepo) Create(a *entity.Alerta) error { return nil }

func (f *fakeAlertaRepo) List(limit, offset int) ([]*entity.Alerta, error) { return nil, nil }
func (f *fakeAlertaRepo) ListByInsumoIDs(ids []int64) ([]*entity.Alerta, error) {
	return nil, nil
}
func (f *fakeAlertaRepo) ExisteConMensaje(insumoID int64, mensaje string) (bool, error) {
	return false, nil
}

type fakeAuditoriaRepo struct{}

func (f *fakeAuditoriaRepo) Create(a *entity.Auditoria) error { return nil }

type fakeTxRunner struct{}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	entradaRepo repository.EntradaRepository,
	salidaRepo repository.SalidaRepository,
	insumoRepo repository.InsumoRepository,
) error) error {
	return fn(&fakeEntradaRepo{}, &fakeSalidaRepo{}, &fakeInsumoRepo{})
}

type fakePDFGenerator struct{}

func (f *fakePDFGenerator) Generate(insumoNombre string, kardex dto.KardexResponse) ([]byte, error) {
	return []byte("%PDF-1.4"), nil
}

// buildRouterApp monta la aplicación completa con el router real sobre fakes,
// para probar la autorización tal como queda cableada en producción.
func buildRouterApp() *fiber.App {
	app := fiber.New()
	audit := auditoria.NewRecorder(&fakeAuditoriaRepo{})
	insumoRepo := &fakeInsumoRepo{}
	entradaRepo := &fakeEntradaRepo{}
	salidaRepo := &fakeSalidaRepo{}
	alertaRepo := &fakeAlertaRepo{}
	espRepo := &fakeEspecialidadRepo{}

	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(&fakeUsuarioRepo{}, auth.JWTConfig{
			Secret:     testJWTSecret,
			ExpMinutes: testExpMin,
			Issuer:     testIssuer,
		}),
		EspecialidadUC:  inventario.NewEspecialidadUseCase(espRepo, audit),
		InsumoUC:        inventario.NewInsumoUseCase(insumoRepo, espRepo, audit),
		MovimientoUC:    inventario.NewMovimientoUseCase(&fakeTxRunner{}, entradaRepo, salidaRepo, insumoRepo, audit),
		KardexUC:        inventario.NewKardexUseCase(insumoRepo, entradaRepo, salidaRepo, &fakePDFGenerator{}),
		AlertasUC:       alertas.NewUseCase(alertaRepo, insumoRepo, entradaRepo, audit),
		ReportesUC:      reportes.NewUseCase(insumoRepo, alertaRepo, salidaRepo),
		JWTSecret:       testJWTSecret,
		DiasVencimiento: 30,
	})
	return app
}

func doRouterRequest(t *testing.T, app *fiber.App, method, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de autorización del router
// ──────────────────────────────────────────────────────────────────────────────

// La generación de alertas es una operación admin, igual que la creación
// manual: un empleado autenticado no debe poder dispararla.
func TestRouter_GenerarAlertas_EmpleadoRecibe403(t *testing.T) {
	app := buildRouterApp()
	rutas := []string{
		"/api/alertas/generar-stock-bajo",
		"/api/alertas/generar-vencimiento",
	}
	for _, ruta := range rutas {
		resp := doRouterRequest(t, app, http.MethodPost, ruta, tokenForRol(t, "empleado"))
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		assert.Equal(t, http.StatusForbidden, resp.StatusCode,
			"empleado no debe poder generar alertas en %s", ruta)
		assert.Contains(t, string(body), "FORBIDDEN", ruta)
	}
}

func TestRouter_GenerarAlertas_AdminPermitido(t *testing.T) {
	app := buildRouterApp()
	rutas := []string{
		"/api/alertas/generar-stock-bajo",
		"/api/alertas/generar-vencimiento",
	}
	for _, ruta := range rutas {
		resp := doRouterRequest(t, app, http.MethodPost, ruta, tokenForRol(t, "admin"))
		resp.Body.Close()

		assert.Equal(t, http.StatusCreated, resp.StatusCode,
			"admin debe poder generar alertas en %s", ruta)
	}
}

// La lectura de alertas sigue abierta a cualquier usuario autenticado.
func TestRouter_ListarAlertas_EmpleadoPermitido(t *testing.T) {
	app := buildRouterApp()

	resp := doRouterRequest(t, app, http.MethodGet, "/api/alertas/", tokenForRol(t, "empleado"))
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_GenerarAlertas_SinTokenRecibe401(t *testing.T) {
	app := buildRouterApp()

	resp := doRouterRequest(t, app, http.MethodPost, "/api/alertas/generar-stock-bajo", "")
	resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
