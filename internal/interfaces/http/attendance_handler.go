package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/empleados-api/internal/application/attendance"
	"github.com/jhoicas/empleados-api/internal/application/dto"
	"github.com/jhoicas/empleados-api/internal/domain"
)

// AttendanceHandler maneja las marcaciones y el historial de asistencia.
type AttendanceHandler struct {
	uc *attendance.UseCase
}

// NewAttendanceHandler construye el handler.
func NewAttendanceHandler(uc *attendance.UseCase) *AttendanceHandler {
	return &AttendanceHandler{uc: uc}
}

// Mark godoc
// @Summary      Marcar asistencia (check-in / check-out)
// @Tags         attendance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MarkAttendanceRequest  true  "user_id y coordenadas"
// @Success      200   {object}  dto.MarkAttendanceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.GeofenceErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/attendance/mark [post]
func (h *AttendanceHandler) Mark(c *fiber.Ctx) error {
	var in dto.MarkAttendanceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Mark(c.Context(), in)
	if err != nil {
		var geofence *domain.GeofenceViolationError
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "user_id, latitude y longitude son requeridos"})
		case errors.As(err, &geofence):
			return c.Status(fiber.StatusForbidden).JSON(dto.GeofenceErrorResponse{
				Code:     "GEOFENCE",
				Message:  geofence.Error(),
				Distance: geofence.DistanceMeters,
			})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// History godoc
// @Summary      Historial de asistencia de un usuario (fecha descendente)
// @Tags         attendance
// @Security     Bearer
// @Produce      json
// @Param        user_id  query  string  true  "ID del usuario"
// @Success      200  {array}   dto.AttendanceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/attendance/mark [get]
func (h *AttendanceHandler) History(c *fiber.Ctx) error {
	userID := c.Query("user_id")
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "user_id es requerido"})
	}
	out, err := h.uc.History(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
