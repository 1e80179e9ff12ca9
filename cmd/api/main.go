package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appattendance "github.com/jhoicas/empleados-api/internal/application/attendance"
	"github.com/jhoicas/empleados-api/internal/application/auth"
	"github.com/jhoicas/empleados-api/internal/application/report"
	"github.com/jhoicas/empleados-api/internal/application/usecase"
	"github.com/jhoicas/empleados-api/internal/domain/geo"
	infrapdf "github.com/jhoicas/empleados-api/internal/infrastructure/pdf"
	"github.com/jhoicas/empleados-api/internal/infrastructure/postgres"
	"github.com/jhoicas/empleados-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/empleados-api/internal/interfaces/http"
	"github.com/jhoicas/empleados-api/pkg/config"
	"github.com/jhoicas/empleados-api/pkg/logger"
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

	if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones de esquema")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	store, err := storage.NewLocalStore(cfg.Storage.Root)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento local")
	}

	userRepo := postgres.NewUserRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	tokenRepo := postgres.NewTokenRepository(pool)
	documentRepo := postgres.NewDocumentRepository(pool)
	workUpdateRepo := postgres.NewWorkUpdateRepository(pool)
	attendanceRepo := postgres.NewAttendanceRepository(pool)
	ticketRepo := postgres.NewTicketRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(userRepo, profileRepo, tokenRepo)
	employeeUC := usecase.NewEmployeeUseCase(txRunner, userRepo, profileRepo)
	documentUC := usecase.NewDocumentUseCase(documentRepo, store, log)
	workUpdateUC := usecase.NewWorkUpdateUseCase(workUpdateRepo)
	attendanceUC := appattendance.NewUseCase(userRepo, attendanceRepo, appattendance.Config{
		Office:       geo.Point{Lat: cfg.Office.Latitude, Lng: cfg.Office.Longitude},
		RadiusMeters: cfg.Office.RadiusMeters,
	})
	ticketUC := usecase.NewTicketUseCase(ticketRepo, store)

	// PDF: reporte mensual de asistencia descargable desde la vista Reports
	pdfGenerator := infrapdf.NewMarotoAttendanceGenerator()
	reportUC := report.NewUseCase(userRepo, profileRepo, attendanceRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(fiberlogger.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		EmployeeUC:   employeeUC,
		DocumentUC:   documentUC,
		WorkUpdateUC: workUpdateUC,
		AttendanceUC: attendanceUC,
		TicketUC:     ticketUC,
		ReportUC:     reportUC,
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
