package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/RRHH-api/internal/application/auth"
	"github.com/jhoicas/RRHH-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/RRHH-api/internal/infrastructure/pdf"
	"github.com/jhoicas/RRHH-api/internal/infrastructure/postgres"
	"github.com/jhoicas/RRHH-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/RRHH-api/internal/interfaces/http"
	"github.com/jhoicas/RRHH-api/pkg/config"
	"github.com/jhoicas/RRHH-api/pkg/logger"
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

	store, err := storage.NewLocalStore(cfg.Uploads.Dir, cfg.Uploads.MaxSizeByte)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento de uploads")
	}

	userRepo := postgres.NewUserRepository(pool)
	candidateRepo := postgres.NewCandidateRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	attendanceRepo := postgres.NewAttendanceRepository(pool)
	leaveRepo := postgres.NewLeaveRepository(pool)

	reportGen := infrapdf.NewLeaveReportGenerator()

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	candidateUC := usecase.NewCandidateUseCase(candidateRepo, employeeRepo, store, cfg.Hiring.RemoveCandidate)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, store)
	attendanceUC := usecase.NewAttendanceUseCase(attendanceRepo, employeeRepo)
	leaveUC := usecase.NewLeaveUseCase(leaveRepo, employeeRepo, attendanceRepo, store, reportGen)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    int(cfg.Uploads.MaxSizeByte) + 1024*1024,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	// Archivos subidos (currículums y documentos de permisos)
	app.Static("/uploads", store.Root())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		CandidateUC:  candidateUC,
		EmployeeUC:   employeeUC,
		AttendanceUC: attendanceUC,
		LeaveUC:      leaveUC,
		JWTSecret:    cfg.JWT.Secret,
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
