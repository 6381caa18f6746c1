package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hraei-ti/inventario-api/internal/application/generation"
	"github.com/hraei-ti/inventario-api/internal/domain/entity"
	"github.com/hraei-ti/inventario-api/internal/domain/resguardo"
	apphttp "github.com/hraei-ti/inventario-api/internal/interfaces/http"
	"github.com/hraei-ti/inventario-api/pkg/logger"
	"github.com/hraei-ti/inventario-api/pkg/metrics"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes para el servicio de generación
// ──────────────────────────────────────────────────────────────────────────────

type genFakeDocx struct {
	out []byte
	err error
}

func (f *genFakeDocx) Fill(map[string]string) ([]byte, error) { return f.out, f.err }

type genFakePDF struct {
	out []byte
	err error
}

func (f *genFakePDF) GenerateResguardoPDF(context.Context, resguardo.ResguardableItem, string) ([]byte, error) {
	return f.out, f.err
}

type genFakeResguardoRepo struct {
	created []*entity.Resguardo
}

func (f *genFakeResguardoRepo) Create(r *entity.Resguardo) error {
	f.created = append(f.created, r)
	return nil
}
func (f *genFakeResguardoRepo) GetByID(string) (*entity.Resguardo, error)            { return nil, nil }
func (f *genFakeResguardoRepo) List(_, _ *string, _, _ int) ([]*entity.Resguardo, error) {
	return nil, nil
}
func (f *genFakeResguardoRepo) SetSigned(string, bool) error { return nil }

type genFakeMovementRepo struct{}

func (f *genFakeMovementRepo) Create(*entity.Movement) error              { return nil }
func (f *genFakeMovementRepo) List(_, _ int) ([]*entity.Movement, error) { return nil, nil }

// generationTestApp monta las cuatro rutas de generación sin auth, con el
// servicio real sobre fakes de docx/pdf/repos.
func generationTestApp(docx *genFakeDocx, pdf *genFakePDF) (*fiber.App, *genFakeResguardoRepo) {
	inst := resguardo.Institucion{
		Direccion:       "Dirección de prueba",
		Telefono:        "(55) 0000 0000",
		Ciudad:          "Ixtapaluca, Edo de México",
		FirmanteEntrega: "Ing. Prueba",
		ChecklistLaptop: []string{"Laptop", "Cable de corriente"},
	}
	reloj := func() time.Time { return time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC) }
	resRepo := &genFakeResguardoRepo{}
	svc := generation.NewService(inst, reloj, pdf, docx, resRepo, &genFakeMovementRepo{},
		metrics.New("test"), logger.New(logger.Config{Env: "development", Level: "error"}))

	app := fiber.New()
	h := apphttp.NewGenerationHandler(svc)
	app.Post("/api/generate-resguardo-word", h.GenerateWord)
	app.Post("/api/generate-resguardo-html", h.GenerateHTML)
	app.Post("/api/generate-resguardo-pdf", h.GeneratePDF)
	app.Post("/api/generate-resguardo-texto", h.GenerateTexto)
	return app, resRepo
}

func postJSON(t *testing.T, app *fiber.App, path string, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

const estacionJSON = `{
	"itemData": {
		"id": "EST001",
		"estado": "Activo",
		"responsable": "Dra. Pérez",
		"ubicacion": "Edificio A, Piso 2, Urgencias",
		"servicio": "Urgencias",
		"accesorios": ["Mouse", "Teclado"],
		"cpu": {"id": "EQ001", "marca": "Dell", "modelo": "OptiPlex 7090", "noSerie": "SN1"},
		"monitor": {"id": "EQ002", "marca": "Samsung", "modelo": "E231", "noSerie": "SN2"}
	},
	"resguardoType": "Asignación Inicial"
}`

const equipoJSON = `{
	"itemData": {
		"id": "EQ010",
		"tipo": "Impresora",
		"marca": "HP",
		"modelo": "LaserJet",
		"noSerie": "SN9",
		"estado": "Activo",
		"responsable": "Lic. Gómez",
		"ubicacion": "Edificio B, Piso 1, Archivo",
		"servicio": "Archivo"
	},
	"resguardoType": "Cambio de Responsable"
}`

// ──────────────────────────────────────────────────────────────────────────────
// Contrato de la ruta Word
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerateWordRoute_SinItemData_Retorna400(t *testing.T) {
	app, _ := generationTestApp(&genFakeDocx{}, &genFakePDF{})
	resp := postJSON(t, app, "/api/generate-resguardo-word", `{"resguardoType": "Asignación Inicial"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "No item data provided", body["error"],
		"el mensaje de error debe ser exactamente el que esperan los clientes")
}

func TestGenerateWordRoute_EntregaDocumentoConHeaders(t *testing.T) {
	docBytes := []byte("PK\x03\x04fake-docx")
	app, resRepo := generationTestApp(&genFakeDocx{out: docBytes}, &genFakePDF{})
	resp := postJSON(t, app, "/api/generate-resguardo-word", estacionJSON)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		resp.Header.Get("Content-Type"))
	assert.Equal(t,
		`attachment; filename="resguardo_EST001_Asignación_Inicial.docx"`,
		resp.Header.Get("Content-Disposition"),
		"el nombre de descarga colapsa los espacios del tipo a guiones bajos")

	got, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, docBytes, got, "el cuerpo debe ser el documento sin alterar")

	require.Len(t, resRepo.created, 1, "debe quedar constancia del resguardo emitido")
	require.NotNil(t, resRepo.created[0].StationID)
	assert.Equal(t, "EST001", *resRepo.created[0].StationID)
}

func TestGenerateWordRoute_FalloDelFiller_Retorna500(t *testing.T) {
	app, resRepo := generationTestApp(&genFakeDocx{err: assert.AnError}, &genFakePDF{})
	resp := postJSON(t, app, "/api/generate-resguardo-word", estacionJSON)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Failed to generate Word document", body["error"])
	assert.Empty(t, resRepo.created, "un fallo de generación no debe registrar resguardo")
}

// ──────────────────────────────────────────────────────────────────────────────
// HTML, PDF y texto plano
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerateHTMLRoute_DevuelvePaginaImprimible(t *testing.T) {
	app, _ := generationTestApp(&genFakeDocx{}, &genFakePDF{})
	resp := postJSON(t, app, "/api/generate-resguardo-html", estacionJSON)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	page, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(page), "<!DOCTYPE html>")
	assert.Contains(t, string(page), "Dra. Pérez")
}

func TestGeneratePDFRoute_EntregaAdjunto(t *testing.T) {
	app, _ := generationTestApp(&genFakeDocx{}, &genFakePDF{out: []byte("%PDF-1.7")})
	resp := postJSON(t, app, "/api/generate-resguardo-pdf", equipoJSON)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Equal(t,
		`attachment; filename="resguardo_EQ010_Cambio_de_Responsable.pdf"`,
		resp.Header.Get("Content-Disposition"))
}

func TestGenerateTextoRoute_RechazaEquiposIndividuales(t *testing.T) {
	app, _ := generationTestApp(&genFakeDocx{}, &genFakePDF{})
	resp := postJSON(t, app, "/api/generate-resguardo-texto", equipoJSON)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Text format is only available for stations", body["error"])
}

func TestGenerateTextoRoute_EstacionDevuelveReporte(t *testing.T) {
	app, _ := generationTestApp(&genFakeDocx{}, &genFakePDF{})
	resp := postJSON(t, app, "/api/generate-resguardo-texto", estacionJSON)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")

	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("RESGUARDO DE EQUIPO DE TI - HOSPITAL")),
		"el reporte en texto inicia con el encabezado institucional")
}
