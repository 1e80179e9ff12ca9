package http

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/empleados-api/internal/application/dto"
	"github.com/jhoicas/empleados-api/internal/application/usecase"
	"github.com/jhoicas/empleados-api/internal/domain"
)

// TicketHandler maneja el tablero de tickets y su hilo de comentarios.
type TicketHandler struct {
	uc *usecase.TicketUseCase
}

// NewTicketHandler construye el handler.
func NewTicketHandler(uc *usecase.TicketUseCase) *TicketHandler {
	return &TicketHandler{uc: uc}
}

// Create godoc
// @Summary      Abrir ticket
// @Tags         tickets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTicketRequest  true  "Datos del ticket"
// @Success      201   {object}  dto.TicketResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tickets [post]
func (h *TicketHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTicketRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title es requerido; status debe ser válido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar todos los tickets (más recientes primero)
// @Tags         tickets
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TicketResponse
// @Router       /api/tickets [get]
func (h *TicketHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListMine godoc
// @Summary      Listar tickets asignados al solicitante
// @Tags         tickets
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TicketResponse
// @Router       /api/my-tickets [get]
func (h *TicketHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.uc.ListMine(c.Context(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Patch godoc
// @Summary      Editar ticket (estado, asignado, campos)
// @Tags         tickets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del ticket"
// @Param        body  body  dto.PatchTicketRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.TicketResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tickets/{id} [patch]
func (h *TicketHandler) Patch(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.PatchTicketRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Patch(c.Context(), id, in)
	if err != nil {
		return ticketError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar ticket
// @Tags         tickets
// @Security     Bearer
// @Param        id   path  string  true  "ID del ticket"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tickets/{id} [delete]
func (h *TicketHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return ticketError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddUpdate godoc
// @Summary      Comentar un ticket (multipart, captura opcional)
// @Tags         tickets
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        ticket_id    formData  string  true   "ID del ticket"
// @Param        update_text  formData  string  true   "Texto del comentario"
// @Param        screenshot   formData  file    false  "Captura de pantalla"
// @Success      201  {object}  dto.TicketUpdateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/updates [post]
func (h *TicketHandler) AddUpdate(c *fiber.Ctx) error {
	ticketID := c.FormValue("ticket_id")
	text := c.FormValue("update_text")
	if ticketID == "" || text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ticket_id y update_text son requeridos"})
	}

	var (
		screenshot     io.Reader
		screenshotName string
	)
	if fileHeader, err := c.FormFile("screenshot"); err == nil {
		src, err := fileHeader.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "no se pudo leer la captura"})
		}
		defer src.Close()
		screenshot = src
		screenshotName = fileHeader.Filename
	}

	out, err := h.uc.AddUpdate(c.Context(), GetUserID(c), ticketID, text, screenshotName, screenshot)
	if err != nil {
		return ticketError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListUpdates godoc
// @Summary      Hilo de comentarios de un ticket (más antiguos primero)
// @Tags         tickets
// @Security     Bearer
// @Produce      json
// @Param        ticket_id  query  string  true  "ID del ticket"
// @Success      200  {array}   dto.TicketUpdateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/updates [get]
func (h *TicketHandler) ListUpdates(c *fiber.Ctx) error {
	ticketID := c.Query("ticket_id")
	if ticketID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ticket_id es requerido"})
	}
	out, err := h.uc.ListUpdates(c.Context(), ticketID)
	if err != nil {
		return ticketError(c, err)
	}
	return c.JSON(out)
}

func ticketError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos del ticket inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ticket no encontrado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
