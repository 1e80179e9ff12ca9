package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/empleados-api/internal/application/dto"
	"github.com/jhoicas/empleados-api/internal/application/report"
	"github.com/jhoicas/empleados-api/internal/domain"
)

// ReportHandler sirve el reporte mensual de asistencia en PDF.
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Attendance godoc
// @Summary      Descargar reporte mensual de asistencia (PDF)
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        user_id  query  string  true  "ID del usuario"
// @Param        month    query  int     true  "Mes (1-12)"
// @Param        year     query  int     true  "Año"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/attendance [get]
func (h *ReportHandler) Attendance(c *fiber.Ctx) error {
	userID := c.Query("user_id")
	month := c.QueryInt("month")
	year := c.QueryInt("year")
	if userID == "" || month == 0 || year == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "user_id, month y year son requeridos"})
	}
	// Un empleado solo descarga su propio reporte; el admin el de cualquiera.
	caller := GetUser(c)
	if caller != nil && !caller.IsAdmin() && caller.ID != userID {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo puedes descargar tu propio reporte"})
	}

	pdf, filename, err := h.uc.MonthlyAttendancePDF(c.Context(), userID, year, month)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "mes o año fuera de rango"})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdf)
}
