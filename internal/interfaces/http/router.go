package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/empleados-api/internal/application/attendance"
	"github.com/jhoicas/empleados-api/internal/application/auth"
	"github.com/jhoicas/empleados-api/internal/application/report"
	"github.com/jhoicas/empleados-api/internal/application/usecase"
	"github.com/jhoicas/empleados-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	EmployeeUC   *usecase.EmployeeUseCase
	DocumentUC   *usecase.DocumentUseCase
	WorkUpdateUC *usecase.WorkUpdateUseCase
	AttendanceUC *attendance.UseCase
	TicketUC     *usecase.TicketUseCase
	ReportUC     *report.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.AuthUC))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Employees (protegido; listas, alta y baja solo admin)
	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Get("/", adminOnly, employeeHandler.List)
	employees.Post("/", adminOnly, employeeHandler.Create)
	employees.Patch("/update_profile", employeeHandler.UpdateProfile)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Delete("/:id", adminOnly, employeeHandler.Delete)

	// Documents (protegido)
	documents := protected.Group("/documents")
	documentHandler := NewDocumentHandler(deps.DocumentUC)
	documents.Post("/", documentHandler.Upload)
	documents.Get("/", documentHandler.List)
	documents.Delete("/:id", documentHandler.Delete)

	// Work updates (protegido)
	workUpdates := protected.Group("/work-updates")
	workUpdateHandler := NewWorkUpdateHandler(deps.WorkUpdateUC)
	workUpdates.Post("/", workUpdateHandler.Create)
	workUpdates.Get("/", workUpdateHandler.List)
	workUpdates.Patch("/:id", workUpdateHandler.Patch)
	workUpdates.Delete("/:id", workUpdateHandler.Delete)

	// Attendance (protegido)
	attendanceGroup := protected.Group("/attendance")
	attendanceHandler := NewAttendanceHandler(deps.AttendanceUC)
	attendanceGroup.Post("/mark", attendanceHandler.Mark)
	attendanceGroup.Get("/mark", attendanceHandler.History)

	// Tickets y su hilo de comentarios (protegido)
	ticketHandler := NewTicketHandler(deps.TicketUC)
	tickets := protected.Group("/tickets")
	tickets.Post("/", ticketHandler.Create)
	tickets.Get("/", ticketHandler.List)
	tickets.Patch("/:id", ticketHandler.Patch)
	tickets.Delete("/:id", ticketHandler.Delete)
	protected.Get("/my-tickets", ticketHandler.ListMine)
	updates := protected.Group("/updates")
	updates.Post("/", ticketHandler.AddUpdate)
	updates.Get("/", ticketHandler.ListUpdates)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/attendance", reportHandler.Attendance)
}
