package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hraei-ti/inventario-api/internal/application/dto"
	"github.com/hraei-ti/inventario-api/internal/application/generation"
	"github.com/hraei-ti/inventario-api/internal/domain"
)

// mime del formato .docx
const contentTypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// GenerationHandler maneja la generación de hojas de resguardo en sus
// cuatro formatos. El contrato de error usa {"error": "..."} porque así lo
// consumen los clientes existentes.
type GenerationHandler struct {
	svc *generation.Service
}

// NewGenerationHandler construye el handler.
func NewGenerationHandler(svc *generation.Service) *GenerationHandler {
	return &GenerationHandler{svc: svc}
}

// parseBody valida el cuerpo común de las cuatro rutas. Si el cuerpo no trae
// itemData escribe el 400 y devuelve ok=false.
func parseBody(c *fiber.Ctx) (in dto.GenerateResguardoRequest, ok bool) {
	if err := c.BodyParser(&in); err != nil || in.ItemData == nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No item data provided"})
		return in, false
	}
	return in, true
}

// GenerateWord godoc
// @Summary      Generar hoja de resguardo en Word
// @Tags         resguardos
// @Security     Bearer
// @Accept       json
// @Produce      application/vnd.openxmlformats-officedocument.wordprocessingml.document
// @Param        body  body  dto.GenerateResguardoRequest  true  "Activo y tipo de resguardo"
// @Success      200  {file}  binary
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/generate-resguardo-word [post]
func (h *GenerationHandler) GenerateWord(c *fiber.Ctx) error {
	in, ok := parseBody(c)
	if !ok {
		return nil
	}
	doc, filename, err := h.svc.GenerateWord(GetUserID(c), in.ItemData.ToItem(), in.ResguardoType)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate Word document"})
	}
	c.Set(fiber.HeaderContentType, contentTypeDocx)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(doc)
}

// GenerateHTML godoc
// @Summary      Generar hoja de resguardo en HTML imprimible
// @Tags         resguardos
// @Security     Bearer
// @Accept       json
// @Produce      html
// @Param        body  body  dto.GenerateResguardoRequest  true  "Activo y tipo de resguardo"
// @Success      200  {string}  string
// @Failure      400  {object}  map[string]string
// @Router       /api/generate-resguardo-html [post]
func (h *GenerationHandler) GenerateHTML(c *fiber.Ctx) error {
	in, ok := parseBody(c)
	if !ok {
		return nil
	}
	page, err := h.svc.GenerateHTML(GetUserID(c), in.ItemData.ToItem(), in.ResguardoType)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate HTML document"})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(page)
}

// GeneratePDF godoc
// @Summary      Generar hoja de resguardo en PDF
// @Tags         resguardos
// @Security     Bearer
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.GenerateResguardoRequest  true  "Activo y tipo de resguardo"
// @Success      200  {file}  binary
// @Failure      400  {object}  map[string]string
// @Router       /api/generate-resguardo-pdf [post]
func (h *GenerationHandler) GeneratePDF(c *fiber.Ctx) error {
	in, ok := parseBody(c)
	if !ok {
		return nil
	}
	doc, filename, err := h.svc.GeneratePDF(c.Context(), GetUserID(c), in.ItemData.ToItem(), in.ResguardoType)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate PDF document"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(doc)
}

// GenerateTexto godoc
// @Summary      Generar resguardo de estación en texto plano
// @Tags         resguardos
// @Security     Bearer
// @Accept       json
// @Produce      plain
// @Param        body  body  dto.GenerateResguardoRequest  true  "Estación y tipo de resguardo"
// @Success      200  {string}  string
// @Failure      400  {object}  map[string]string
// @Router       /api/generate-resguardo-texto [post]
func (h *GenerationHandler) GenerateTexto(c *fiber.Ctx) error {
	in, ok := parseBody(c)
	if !ok {
		return nil
	}
	out, err := h.svc.GenerateTexto(GetUserID(c), in.ItemData.ToItem(), in.ResguardoType)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Text format is only available for stations"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate text document"})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(out)
}
