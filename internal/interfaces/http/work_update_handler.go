package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/empleados-api/internal/application/dto"
	"github.com/jhoicas/empleados-api/internal/application/usecase"
	"github.com/jhoicas/empleados-api/internal/domain"
)

// WorkUpdateHandler maneja la bitácora diaria de trabajo (protegido).
type WorkUpdateHandler struct {
	uc *usecase.WorkUpdateUseCase
}

// NewWorkUpdateHandler construye el handler.
func NewWorkUpdateHandler(uc *usecase.WorkUpdateUseCase) *WorkUpdateHandler {
	return &WorkUpdateHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar entrada de bitácora
// @Tags         work-updates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWorkUpdateRequest  true  "Entrada"
// @Success      201   {object}  dto.WorkUpdateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/work-updates [post]
func (h *WorkUpdateHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWorkUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "project_name y description son requeridos; status debe ser válido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar bitácoras según el rol del solicitante
// @Tags         work-updates
// @Security     Bearer
// @Produce      json
// @Param        user_id  query  string  false  "Filtro por dueño (solo admin)"
// @Success      200  {array}  dto.WorkUpdateResponse
// @Router       /api/work-updates [get]
func (h *WorkUpdateHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetUser(c), c.Query("user_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Patch godoc
// @Summary      Editar entrada de bitácora (dueño o admin)
// @Tags         work-updates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la entrada"
// @Param        body  body  dto.PatchWorkUpdateRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.WorkUpdateResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/work-updates/{id} [patch]
func (h *WorkUpdateHandler) Patch(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.PatchWorkUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Patch(c.Context(), GetUser(c), id, in)
	if err != nil {
		return workUpdateError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar entrada de bitácora (dueño o admin)
// @Tags         work-updates
// @Security     Bearer
// @Param        id   path  string  true  "ID de la entrada"
// @Success      204  "Sin contenido"
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/work-updates/{id} [delete]
func (h *WorkUpdateHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(c.Context(), GetUser(c), id); err != nil {
		return workUpdateError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func workUpdateError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de la bitácora inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "entrada no encontrada"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo el dueño o un admin puede modificarla"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
