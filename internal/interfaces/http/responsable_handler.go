package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hraei-ti/inventario-api/internal/application/dto"
	"github.com/hraei-ti/inventario-api/internal/application/usecase"
	"github.com/hraei-ti/inventario-api/internal/domain"
)

// ResponsableHandler maneja las peticiones HTTP para responsables (protegido).
type ResponsableHandler struct {
	uc *usecase.ResponsableUseCase
}

// NewResponsableHandler construye el handler.
func NewResponsableHandler(uc *usecase.ResponsableUseCase) *ResponsableHandler {
	return &ResponsableHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar responsable
// @Tags         responsables
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateResponsableRequest  true  "Datos del responsable"
// @Success      201   {object}  dto.ResponsableResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/responsables [post]
func (h *ResponsableHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateResponsableRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.FullName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "full_name es requerido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener responsable por ID
// @Tags         responsables
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del responsable"
// @Success      200  {object}  dto.ResponsableResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/responsables/{id} [get]
func (h *ResponsableHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "responsable no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar responsables
// @Tags         responsables
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.ResponsableListResponse
// @Router       /api/responsables [get]
func (h *ResponsableHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar responsable
// @Tags         responsables
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del responsable"
// @Param        body  body  dto.UpdateResponsableRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ResponsableResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/responsables/{id} [put]
func (h *ResponsableHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateResponsableRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "responsable no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar responsable
// @Tags         responsables
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del responsable"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/responsables/{id} [delete]
func (h *ResponsableHandler) Delete(c *fiber.Ctx) error {
	err := h.uc.Delete(c.Params("id"))
	switch err {
	case nil:
		return c.SendStatus(fiber.StatusNoContent)
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "responsable no encontrado"})
	case domain.ErrConflict:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "IN_USE", Message: "el responsable tiene activos bajo resguardo"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
