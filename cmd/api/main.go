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

	appanalytics "github.com/manishholla/logitrack-api/internal/application/analytics"
	"github.com/manishholla/logitrack-api/internal/application/auth"
	appconsignment "github.com/manishholla/logitrack-api/internal/application/consignment"
	"github.com/manishholla/logitrack-api/internal/application/usecase"
	"github.com/manishholla/logitrack-api/internal/domain/tracking"
	"github.com/manishholla/logitrack-api/internal/infrastructure/postgres"
	httpRouter "github.com/manishholla/logitrack-api/internal/interfaces/http"
	"github.com/manishholla/logitrack-api/pkg/config"
	"github.com/manishholla/logitrack-api/pkg/logger"
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

	ctx, stopJobs := context.WithCancel(context.Background())
	defer stopJobs()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	consignmentRepo := postgres.NewConsignmentRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	consignmentUC := appconsignment.NewUseCase(consignmentRepo, tracking.NewGenerator(), txRunner)
	dashboardUC := appanalytics.NewDashboardUseCase(dashboardRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Barrido de archivado de envíos terminales viejos.
	if cfg.Archive.Enabled {
		archiver := postgres.NewArchiver(pool, log, cfg.Archive.RetentionDays, cfg.Archive.IntervalHours)
		go archiver.Start(ctx)
	}

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
		Title:    "LogiTrack API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.SetupRoutes(app, httpRouter.RouterConfig{
		JWTSecret:      cfg.JWT.Secret,
		CommandTimeout: time.Duration(cfg.DB.CommandTimeout) * time.Second,
		Auth:           httpRouter.NewAuthHandler(authUC),
		Consignment:    httpRouter.NewConsignmentHandler(consignmentUC),
		Dashboard:      httpRouter.NewDashboardHandler(dashboardUC),
		User:           httpRouter.NewUserHandler(userUC),
		Warehouse:      httpRouter.NewWarehouseHandler(warehouseUC),
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

	// Detiene el barrido de archivado antes de cerrar el pool.
	stopJobs()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
