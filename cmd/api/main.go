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

	appterceros "github.com/acamilodelgado0305/tercerosms/internal/application/terceros"
	"github.com/acamilodelgado0305/tercerosms/internal/infrastructure/finanzas"
	"github.com/acamilodelgado0305/tercerosms/internal/infrastructure/postgres"
	httpRouter "github.com/acamilodelgado0305/tercerosms/internal/interfaces/http"
	"github.com/acamilodelgado0305/tercerosms/pkg/config"
	"github.com/acamilodelgado0305/tercerosms/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
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

	// Repos atados al pool para lecturas; las escrituras pasan por TxRunner.
	repos := appterceros.Repos{
		Terceros:    postgres.NewTerceroRepository(pool),
		Cajeros:     postgres.NewCajeroRepository(pool),
		Proveedores: postgres.NewProveedorRepository(pool),
		RRHH:        postgres.NewRRHHRepository(pool),
		Cuentas:     postgres.NewCuentaRepository(pool),
		Adjuntos:    postgres.NewAdjuntoRepository(pool),
		Importes:    postgres.NewImporteRepository(pool),
	}
	txRunner := postgres.NewTxRunner(pool)

	finanzasClient := finanzas.NewClient(
		cfg.Finanzas.BaseURL,
		time.Duration(cfg.Finanzas.TimeoutSeconds)*time.Second,
	)

	terceroUC := appterceros.NewUseCase(txRunner, repos, finanzasClient, log)

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
		Title:    "Terceros API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		TerceroUC:      terceroUC,
		JWTSecret:      cfg.JWT.Secret,
		InternalAPIKey: cfg.Internal.APIKey,
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
