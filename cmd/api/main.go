package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/his-bodega/bodega-api/internal/application/alertas"
	"github.com/his-bodega/bodega-api/internal/application/auditoria"
	"github.com/his-bodega/bodega-api/internal/application/auth"
	"github.com/his-bodega/bodega-api/internal/application/inventario"
	"github.com/his-bodega/bodega-api/internal/application/reportes"
	infrapdf "github.com/his-bodega/bodega-api/internal/infrastructure/pdf"
	"github.com/his-bodega/bodega-api/internal/infrastructure/postgres"
	httpRouter "github.com/his-bodega/bodega-api/internal/interfaces/http"
	"github.com/his-bodega/bodega-api/pkg/config"
	"github.com/his-bodega/bodega-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	especialidadRepo := postgres.NewEspecialidadRepository(pool)
	insumoRepo := postgres.NewInsumoRepository(pool)
	entradaRepo := postgres.NewEntradaRepository(pool)
	salidaRepo := postgres.NewSalidaRepository(pool)
	alertaRepo := postgres.NewAlertaRepository(pool)
	auditoriaRepo := postgres.NewAuditoriaRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	audit := auditoria.NewRecorder(auditoriaRepo)

	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	especialidadUC := inventario.NewEspecialidadUseCase(especialidadRepo, audit)
	insumoUC := inventario.NewInsumoUseCase(insumoRepo, especialidadRepo, audit)
	movimientoUC := inventario.NewMovimientoUseCase(txRunner, entradaRepo, salidaRepo, insumoRepo, audit)
	kardexUC := inventario.NewKardexUseCase(insumoRepo, entradaRepo, salidaRepo, infrapdf.NewKardexPDFGenerator())
	alertasUC := alertas.NewUseCase(alertaRepo, insumoRepo, entradaRepo, audit)
	reportesUC := reportes.NewUseCase(insumoRepo, alertaRepo, salidaRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Bodega API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		EspecialidadUC:  especialidadUC,
		InsumoUC:        insumoUC,
		MovimientoUC:    movimientoUC,
		KardexUC:        kardexUC,
		AlertasUC:       alertasUC,
		ReportesUC:      reportesUC,
		JWTSecret:       cfg.JWT.Secret,
		DiasVencimiento: cfg.Alertas.DiasVencimiento,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
