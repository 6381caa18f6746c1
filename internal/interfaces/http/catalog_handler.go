package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hraei-ti/inventario-api/internal/application/dto"
	"github.com/hraei-ti/inventario-api/internal/application/usecase"
)

// CatalogHandler expone los catálogos de tipos y estados de equipo (protegido, solo lectura).
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListTypes godoc
// @Summary      Listar tipos de equipo
// @Tags         catalogos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CatalogListResponse
// @Router       /api/catalogos/tipos [get]
func (h *CatalogHandler) ListTypes(c *fiber.Ctx) error {
	out, err := h.uc.ListTypes()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListStatuses godoc
// @Summary      Listar estados de equipo
// @Tags         catalogos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CatalogListResponse
// @Router       /api/catalogos/estados [get]
func (h *CatalogHandler) ListStatuses(c *fiber.Ctx) error {
	out, err := h.uc.ListStatuses()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
