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

	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/application/auth"
	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/application/transfer"
	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/application/usecase"
	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/domain/schedule"
	infraexport "github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/infrastructure/export"
	infrapdf "github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/infrastructure/pdf"
	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/infrastructure/postgres"
	httpRouter "github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/interfaces/http"
	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/pkg/config"
	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	customerRepo := postgres.NewCustomerRepository(pool)
	serviceRepo := postgres.NewServiceRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	// One session per backing store; all mutating usecases invalidate it.
	session := usecase.NewSession(cfg.DB.DBName)

	priorities := schedule.StandardPriorities()
	if cfg.Schedule.PriorityProfile == "critical" {
		priorities = schedule.CriticalPriorities()
	}

	customerUC := usecase.NewCustomerUseCase(customerRepo, serviceRepo, session, priorities, log)
	scheduleUC := usecase.NewScheduleUseCase(serviceRepo, session)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	xmlBuilder := infraexport.NewEtreeXMLBuilder()
	exportUC := transfer.NewExportUseCase(customerRepo, serviceRepo, priorities, pdfGenerator, xmlBuilder)
	importUC := transfer.NewImportUseCase(customerRepo, serviceRepo, session, log)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Reminder Apps API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC: customerUC,
		ScheduleUC: scheduleUC,
		ExportUC:   exportUC,
		ImportUC:   importUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
