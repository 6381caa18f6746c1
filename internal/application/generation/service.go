// Package generation orquesta la generación de hojas de resguardo en sus
// cuatro formatos (Word, HTML, PDF y texto plano) y deja constancia de cada
// documento emitido en la tabla de resguardos y en la bitácora.
package generation

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/hraei-ti/inventario-api/internal/domain"
	"github.com/hraei-ti/inventario-api/internal/domain/entity"
	"github.com/hraei-ti/inventario-api/internal/domain/repository"
	"github.com/hraei-ti/inventario-api/internal/domain/resguardo"
	"github.com/hraei-ti/inventario-api/pkg/logger"
	"github.com/hraei-ti/inventario-api/pkg/metrics"
)

// Formatos reportados a métricas y bitácora.
const (
	FormatWord  = "word"
	FormatHTML  = "html"
	FormatPDF   = "pdf"
	FormatTexto = "texto"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Service caso de uso de generación de resguardos.
type Service struct {
	inst      resguardo.Institucion
	now       resguardo.Clock
	formatter *resguardo.Formatter
	html      *resguardo.HTMLRenderer
	pdf       PDFGenerator
	docx      DocxFiller

	resguardos repository.ResguardoRepository
	movements  repository.MovementRepository
	metrics    *metrics.Metrics
	log        *logger.Logger
}

// NewService construye el servicio. El reloj se inyecta para poder fijar la
// fecha en pruebas.
func NewService(
	inst resguardo.Institucion,
	now resguardo.Clock,
	pdf PDFGenerator,
	docx DocxFiller,
	resguardos repository.ResguardoRepository,
	movements repository.MovementRepository,
	m *metrics.Metrics,
	log *logger.Logger,
) *Service {
	return &Service{
		inst:       inst,
		now:        now,
		formatter:  resguardo.NewFormatter(inst, now),
		html:       resguardo.NewHTMLRenderer(inst, now),
		pdf:        pdf,
		docx:       docx,
		resguardos: resguardos,
		movements:  movements,
		metrics:    m,
		log:        log,
	}
}

// Filename arma el nombre de descarga: resguardo_{id}_{tipo}.{ext}, con los
// espacios del tipo colapsados a guiones bajos.
func Filename(itemID, tipoResguardo, ext string) string {
	return fmt.Sprintf("resguardo_%s_%s.%s", itemID, whitespaceRe.ReplaceAllString(tipoResguardo, "_"), ext)
}

// GenerateWord rellena la plantilla .docx con los campos del activo y
// devuelve los bytes del documento junto con el nombre de descarga.
func (s *Service) GenerateWord(userID string, item resguardo.ResguardableItem, tipoResguardo string) ([]byte, string, error) {
	campos := s.formatter.Fields(item, tipoResguardo)
	doc, err := s.docx.Fill(campos)
	if err != nil {
		return nil, "", fmt.Errorf("generar word: %w", err)
	}
	s.record(userID, item, tipoResguardo, FormatWord)
	return doc, Filename(item.ID(), tipoResguardo, "docx"), nil
}

// GenerateHTML devuelve la hoja de resguardo como página HTML imprimible.
func (s *Service) GenerateHTML(userID string, item resguardo.ResguardableItem, tipoResguardo string) (string, error) {
	page, err := s.html.Render(item, tipoResguardo)
	if err != nil {
		return "", fmt.Errorf("generar html: %w", err)
	}
	s.record(userID, item, tipoResguardo, FormatHTML)
	return page, nil
}

// GeneratePDF genera la hoja en PDF y devuelve los bytes con su nombre de descarga.
func (s *Service) GeneratePDF(ctx context.Context, userID string, item resguardo.ResguardableItem, tipoResguardo string) ([]byte, string, error) {
	doc, err := s.pdf.GenerateResguardoPDF(ctx, item, tipoResguardo)
	if err != nil {
		return nil, "", fmt.Errorf("generar pdf: %w", err)
	}
	s.record(userID, item, tipoResguardo, FormatPDF)
	return doc, Filename(item.ID(), tipoResguardo, "pdf"), nil
}

// GenerateTexto genera la versión en texto plano. Solo aplica a estaciones.
func (s *Service) GenerateTexto(userID string, item resguardo.ResguardableItem, tipoResguardo string) (string, error) {
	if item.Kind != resguardo.KindEstacion || item.Estacion == nil {
		return "", domain.ErrInvalidInput
	}
	out := resguardo.GenerateTexto(*item.Estacion, tipoResguardo, s.now)
	s.record(userID, item, tipoResguardo, FormatTexto)
	return out, nil
}

// record deja constancia del documento emitido. El documento ya se entregó al
// cliente, por lo que un fallo aquí no revierte la generación: se registra en log.
func (s *Service) record(userID string, item resguardo.ResguardableItem, tipoResguardo, formato string) {
	if s.metrics != nil {
		s.metrics.ResguardosGenerated.WithLabelValues(formato).Inc()
	}

	now := time.Now()
	res := &entity.Resguardo{
		ID:            uuid.New().String(),
		ResguardoType: tipoResguardo,
		GeneratedByID: userID,
		CreatedAt:     now,
	}
	id := item.ID()
	if item.Kind == resguardo.KindEstacion {
		res.StationID = &id
	} else {
		res.EquipmentID = &id
	}
	if err := s.resguardos.Create(res); err != nil {
		s.log.Warn().Err(err).Str("item_id", id).Msg("no se pudo registrar el resguardo generado")
		return
	}

	mov := &entity.Movement{
		ID:           uuid.New().String(),
		UserID:       userID,
		Timestamp:    now,
		MovementType: entity.MovementResguardo,
		Description:  fmt.Sprintf("Resguardo '%s' generado en formato %s para %s", tipoResguardo, formato, id),
		EquipmentID:  res.EquipmentID,
		StationID:    res.StationID,
		ResguardoID:  &res.ID,
		CreatedAt:    now,
	}
	if err := s.movements.Create(mov); err != nil {
		s.log.Warn().Err(err).Str("resguardo_id", res.ID).Msg("no se pudo registrar el movimiento de resguardo")
	}
}
