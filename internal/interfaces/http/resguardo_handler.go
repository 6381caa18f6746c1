package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hraei-ti/inventario-api/internal/application/dto"
	"github.com/hraei-ti/inventario-api/internal/application/usecase"
	"github.com/hraei-ti/inventario-api/internal/domain"
)

// ResguardoHandler consulta y administración de registros de resguardo (protegido).
// La generación de documentos vive en GenerationHandler.
type ResguardoHandler struct {
	uc *usecase.ResguardoUseCase
}

// NewResguardoHandler construye el handler.
func NewResguardoHandler(uc *usecase.ResguardoUseCase) *ResguardoHandler {
	return &ResguardoHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar un resguardo manualmente
// @Tags         resguardos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateResguardoRequest  true  "Datos del resguardo"
// @Success      201   {object}  dto.ResguardoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/resguardos [post]
func (h *ResguardoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateResguardoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ResguardoType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "resguardo_type es requerido"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "indicar equipment_id o station_id, exactamente uno"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener resguardo por ID
// @Tags         resguardos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del resguardo"
// @Success      200  {object}  dto.ResguardoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/resguardos/{id} [get]
func (h *ResguardoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "resguardo no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar resguardos
// @Tags         resguardos
// @Security     Bearer
// @Produce      json
// @Param        equipment_id  query  string  false  "Filtrar por equipo"
// @Param        station_id    query  string  false  "Filtrar por estación"
// @Param        limit         query  int     false  "Límite"   default(20)
// @Param        offset        query  int     false  "Offset"   default(0)
// @Success      200           {object}  dto.ResguardoListResponse
// @Router       /api/resguardos [get]
func (h *ResguardoHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	var equipmentID, stationID *string
	if v := c.Query("equipment_id"); v != "" {
		equipmentID = &v
	}
	if v := c.Query("station_id"); v != "" {
		stationID = &v
	}
	out, err := h.uc.List(equipmentID, stationID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Sign godoc
// @Summary      Marcar resguardo como firmado
// @Tags         resguardos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del resguardo"
// @Param        body  body  dto.SignResguardoRequest  true  "Estado de firma"
// @Success      200   {object}  dto.ResguardoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/resguardos/{id}/firma [put]
func (h *ResguardoHandler) Sign(c *fiber.Ctx) error {
	var in dto.SignResguardoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetSigned(c.Params("id"), in.Signed)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "resguardo no encontrado"})
	}
	return c.JSON(out)
}
