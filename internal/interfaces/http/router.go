package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/his-bodega/bodega-api/internal/application/alertas"
	"github.com/his-bodega/bodega-api/internal/application/auth"
	"github.com/his-bodega/bodega-api/internal/application/inventario"
	"github.com/his-bodega/bodega-api/internal/application/reportes"
	"github.com/his-bodega/bodega-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	EspecialidadUC *inventario.EspecialidadUseCase
	InsumoUC       *inventario.InsumoUseCase
	MovimientoUC   *inventario.MovimientoUseCase
	KardexUC       *inventario.KardexUseCase
	AlertasUC      *alertas.UseCase
	ReportesUC     *reportes.UseCase
	JWTSecret      string

	// DiasVencimiento ventana por defecto para alertas de vencimiento.
	DiasVencimiento int
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (register/login público; me protegido)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	soloAdmin := RequireRole(entity.RolAdmin)

	// Especialidades
	especialidades := protected.Group("/especialidades")
	especialidadHandler := NewEspecialidadHandler(deps.EspecialidadUC)
	especialidades.Get("/", especialidadHandler.List)
	especialidades.Post("/", soloAdmin, especialidadHandler.Create)

	// Insumos (escritura solo admin)
	insumos := protected.Group("/insumos")
	insumoHandler := NewInsumoHandler(deps.InsumoUC)
	insumos.Get("/", insumoHandler.List)
	insumos.Get("/:id", insumoHandler.GetByID)
	insumos.Post("/", soloAdmin, insumoHandler.Create)
	insumos.Put("/:id", soloAdmin, insumoHandler.Update)
	insumos.Delete("/:id", soloAdmin, insumoHandler.Delete)

	// Movimientos
	movimientoHandler := NewMovimientoHandler(deps.MovimientoUC)
	entradas := protected.Group("/entradas")
	entradas.Post("/", movimientoHandler.CreateEntrada)
	entradas.Get("/", movimientoHandler.ListEntradas)
	salidas := protected.Group("/salidas")
	salidas.Post("/", movimientoHandler.CreateSalida)
	salidas.Get("/", movimientoHandler.ListSalidas)

	// Kardex
	kardex := protected.Group("/kardex")
	kardexHandler := NewKardexHandler(deps.KardexUC)
	kardex.Get("/:insumo_id", kardexHandler.GetKardex)
	kardex.Get("/:insumo_id/lotes", kardexHandler.LotesDisponibles)
	kardex.Get("/:insumo_id/pdf", kardexHandler.GetKardexPDF)

	// Alertas (creación manual y generación solo admin)
	alertasGroup := protected.Group("/alertas")
	alertaHandler := NewAlertaHandler(deps.AlertasUC, deps.DiasVencimiento)
	alertasGroup.Get("/", alertaHandler.List)
	alertasGroup.Post("/", soloAdmin, alertaHandler.Create)
	alertasGroup.Post("/generar-stock-bajo", soloAdmin, alertaHandler.GenerarStockBajo)
	alertasGroup.Post("/generar-vencimiento", soloAdmin, alertaHandler.GenerarVencimiento)

	// Reportes
	reporteHandler := NewReporteHandler(deps.ReportesUC)
	protected.Get("/reporte-stock", reporteHandler.ReporteStock)
	protected.Get("/reportes/consumo-por-especialidad", reporteHandler.ConsumoPorEspecialidad)
}
