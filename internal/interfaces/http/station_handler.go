package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hraei-ti/inventario-api/internal/application/dto"
	"github.com/hraei-ti/inventario-api/internal/application/usecase"
	"github.com/hraei-ti/inventario-api/internal/domain"
)

// StationHandler maneja las peticiones HTTP para estaciones de cómputo (protegido).
type StationHandler struct {
	uc *usecase.StationUseCase
}

// NewStationHandler construye el handler.
func NewStationHandler(uc *usecase.StationUseCase) *StationHandler {
	return &StationHandler{uc: uc}
}

func stationError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "equipo componente no encontrado"})
	case domain.ErrTipoIncompatible:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "TYPE_MISMATCH", Message: "cpu_id debe ser de tipo CPU y monitor_id de tipo Monitor"})
	case domain.ErrEquipoAsignado:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ASSIGNED", Message: "el equipo ya está integrado a otra estación"})
	case domain.ErrDuplicate:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "display_id ya registrado"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cpu_id y monitor_id deben ser equipos distintos"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// Create godoc
// @Summary      Armar una estación de cómputo
// @Tags         estaciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStationRequest  true  "Datos de la estación"
// @Success      201   {object}  dto.StationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/estaciones [post]
func (h *StationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.DisplayID == "" || in.CPUID == "" || in.MonitorID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "display_id, cpu_id y monitor_id son requeridos"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return stationError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener estación por ID
// @Tags         estaciones
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la estación"
// @Success      200  {object}  dto.StationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/estaciones/{id} [get]
func (h *StationHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "estación no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar estaciones
// @Tags         estaciones
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.StationListResponse
// @Router       /api/estaciones [get]
func (h *StationHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Reconfigurar estación
// @Tags         estaciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la estación"
// @Param        body  body  dto.UpdateStationRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.StationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/estaciones/{id} [put]
func (h *StationHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateStationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return stationError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "estación no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Desarmar estación
// @Tags         estaciones
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la estación"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/estaciones/{id} [delete]
func (h *StationHandler) Delete(c *fiber.Ctx) error {
	err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id"))
	switch err {
	case nil:
		return c.SendStatus(fiber.StatusNoContent)
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "estación no encontrada"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
