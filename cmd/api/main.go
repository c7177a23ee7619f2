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

	_ "github.com/rickyyue315/reallocation-api/docs"
	"github.com/rickyyue315/reallocation-api/internal/application/auth"
	apptransfer "github.com/rickyyue315/reallocation-api/internal/application/transfer"
	infraexcel "github.com/rickyyue315/reallocation-api/internal/infrastructure/excel"
	infrapdf "github.com/rickyyue315/reallocation-api/internal/infrastructure/pdf"
	"github.com/rickyyue315/reallocation-api/internal/infrastructure/postgres"
	httpRouter "github.com/rickyyue315/reallocation-api/internal/interfaces/http"
	"github.com/rickyyue315/reallocation-api/pkg/config"
	"github.com/rickyyue315/reallocation-api/pkg/logger"
)

// @title                      Reallocation API
// @version                    1.0
// @description                API de reasignación de inventario entre tiendas
// @BasePath                   /
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
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

	userRepo := postgres.NewUserRepository(pool)
	runRepo := postgres.NewRunRepository(pool)

	snapshotReader := infraexcel.NewSnapshotReader()
	resultExporter := infraexcel.NewResultExporter()
	reportGenerator := infrapdf.NewMarotoReportGenerator()

	analyzeUC := apptransfer.NewAnalyzeUseCase(snapshotReader, runRepo)
	estimateUC := apptransfer.NewEstimateUseCase(snapshotReader)
	runsUC := apptransfer.NewRunQueryUseCase(runRepo, resultExporter, reportGenerator)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    cfg.HTTP.BodyLimitMB * 1024 * 1024,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Reallocation API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AnalyzeUC:  analyzeUC,
		EstimateUC: estimateUC,
		RunsUC:     runsUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
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
