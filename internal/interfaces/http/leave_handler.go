package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/leave-api/internal/application/dto"
	"github.com/jhoicas/leave-api/internal/application/leave"
	"github.com/jhoicas/leave-api/internal/domain"
)

// LeaveHandler maneja las peticiones HTTP para solicitudes de licencia (protegido).
type LeaveHandler struct {
	uc *leave.LeaveUseCase
}

// NewLeaveHandler construye el handler.
func NewLeaveHandler(uc *leave.LeaveUseCase) *LeaveHandler {
	return &LeaveHandler{uc: uc}
}

// Create godoc
// @Summary      Crear solicitud de licencia
// @Tags         leaves
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLeaveRequest  true  "start_date, end_date, reason"
// @Success      201   {object}  dto.LeaveResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /leaves [post]
func (h *LeaveHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id no encontrado en el token"})
	}
	var in dto.CreateLeaveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(userID, in)
	if err != nil {
		return leaveError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar solicitudes (todas si admin, propias si employee)
// @Tags         leaves
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.LeaveListResponse
// @Router       /leaves [get]
func (h *LeaveHandler) List(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id no encontrado en el token"})
	}
	out, err := h.uc.List(userID, GetRole(c))
	if err != nil {
		return leaveError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de una solicitud (solo admin)
// @Tags         leaves
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID de la solicitud"
// @Param        body  body  dto.UpdateStatusRequest  true  "status: pending | approved | rejected"
// @Success      200   {object}  dto.LeaveResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /leaves/{id}/status [patch]
func (h *LeaveHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status es requerido"})
	}
	out, err := h.uc.UpdateStatus(c.Context(), GetRole(c), id, in.Status)
	if err != nil {
		return leaveError(c, err)
	}
	return c.JSON(out)
}

// leaveError traduce errores de dominio a respuestas HTTP.
func leaveError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrMissingFields):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date, end_date y reason son requeridos"})
	case errors.Is(err, domain.ErrEmptyReason):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el motivo no puede estar vacío"})
	case errors.Is(err, domain.ErrInvalidDateFormat):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "formato de fecha inválido, use YYYY-MM-DD"})
	case errors.Is(err, domain.ErrEndBeforeStart):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DATE_RANGE", Message: "la fecha final debe ser posterior a la inicial"})
	case errors.Is(err, domain.ErrStartInPast):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DATE_RANGE", Message: "la fecha inicial no puede estar en el pasado"})
	case errors.Is(err, domain.ErrInvalidStatus):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_STATUS", Message: "estado inválido: use pending, approved o rejected"})
	case errors.Is(err, domain.ErrAdminRequired):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "se requiere acceso de administrador"})
	case errors.Is(err, domain.ErrLeaveNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "solicitud de licencia no encontrada"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
