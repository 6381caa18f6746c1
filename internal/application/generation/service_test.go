package generation_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hraei-ti/inventario-api/internal/application/generation"
	"github.com/hraei-ti/inventario-api/internal/domain"
	"github.com/hraei-ti/inventario-api/internal/domain/entity"
	"github.com/hraei-ti/inventario-api/internal/domain/resguardo"
	"github.com/hraei-ti/inventario-api/pkg/logger"
	"github.com/hraei-ti/inventario-api/pkg/metrics"
)

// ──────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────

type fakeDocx struct {
	campos map[string]string
	out    []byte
	err    error
}

func (f *fakeDocx) Fill(campos map[string]string) ([]byte, error) {
	f.campos = campos
	return f.out, f.err
}

type fakePDF struct {
	out []byte
	err error
}

func (f *fakePDF) GenerateResguardoPDF(_ context.Context, _ resguardo.ResguardableItem, _ string) ([]byte, error) {
	return f.out, f.err
}

type fakeResguardoRepo struct {
	created []*entity.Resguardo
}

func (f *fakeResguardoRepo) Create(r *entity.Resguardo) error { f.created = append(f.created, r); return nil }
func (f *fakeResguardoRepo) GetByID(string) (*entity.Resguardo, error) { return nil, nil }
func (f *fakeResguardoRepo) List(_, _ *string, _, _ int) ([]*entity.Resguardo, error) {
	return nil, nil
}
func (f *fakeResguardoRepo) SetSigned(string, bool) error { return nil }

type fakeMovementRepo struct {
	created []*entity.Movement
}

func (f *fakeMovementRepo) Create(m *entity.Movement) error { f.created = append(f.created, m); return nil }
func (f *fakeMovementRepo) List(_, _ int) ([]*entity.Movement, error) { return nil, nil }

func servicioDePrueba(docx *fakeDocx, pdf *fakePDF) (*generation.Service, *fakeResguardoRepo, *fakeMovementRepo) {
	inst := resguardo.Institucion{
		Direccion:       "Dirección de prueba",
		Telefono:        "(55) 0000 0000",
		Ciudad:          "Ixtapaluca, Edo de México",
		FirmanteEntrega: "Ing. Prueba",
		ChecklistLaptop: []string{"Laptop", "Cable de corriente", "Eliminador"},
	}
	reloj := func() time.Time { return time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC) }
	resRepo := &fakeResguardoRepo{}
	movRepo := &fakeMovementRepo{}
	m := metrics.New("test")
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return generation.NewService(inst, reloj, pdf, docx, resRepo, movRepo, m, log), resRepo, movRepo
}

func estacionDePrueba() resguardo.ResguardableItem {
	return resguardo.NewItemEstacion(resguardo.Estacion{
		ID:          "EST001",
		CPU:         resguardo.Equipo{ID: "EQ001", Marca: "Dell", Modelo: "OptiPlex 7090", NoSerie: "SN1"},
		Monitor:     resguardo.Equipo{ID: "EQ002", Marca: "Samsung", Modelo: "E231", NoSerie: "SN2"},
		Estado:      "Activo",
		Responsable: "Dra. Pérez",
		Ubicacion:   "Edificio A, Piso 2, Urgencias",
		Servicio:    "Urgencias",
		Accesorios:  []string{"Mouse", "Teclado"},
	})
}

// ──────────────────────────────────────────────
// Word
// ──────────────────────────────────────────────

func TestGenerateWord_DevuelveBytesYNombreDeArchivo(t *testing.T) {
	docx := &fakeDocx{out: []byte("DOCX")}
	svc, resRepo, movRepo := servicioDePrueba(docx, &fakePDF{})

	out, filename, err := svc.GenerateWord("user-1", estacionDePrueba(), "Asignación Inicial")
	require.NoError(t, err)

	assert.Equal(t, []byte("DOCX"), out)
	assert.Equal(t, "resguardo_EST001_Asignación_Inicial.docx", filename,
		"los espacios del tipo se colapsan a guiones bajos")
	assert.Equal(t, "Dra. Pérez", docx.campos["responsableNombre"], "el filler recibe los campos formateados")

	require.Len(t, resRepo.created, 1)
	assert.Equal(t, "user-1", resRepo.created[0].GeneratedByID)
	require.NotNil(t, resRepo.created[0].StationID)
	assert.Equal(t, "EST001", *resRepo.created[0].StationID)
	require.Len(t, movRepo.created, 1)
	assert.Equal(t, entity.MovementResguardo, movRepo.created[0].MovementType)
}

func TestGenerateWord_ErrorDelFiller(t *testing.T) {
	docx := &fakeDocx{err: assert.AnError}
	svc, resRepo, _ := servicioDePrueba(docx, &fakePDF{})

	_, _, err := svc.GenerateWord("user-1", estacionDePrueba(), "Asignación Inicial")
	assert.Error(t, err)
	assert.Empty(t, resRepo.created, "un fallo de generación no deja registro")
}

func TestFilename_ColapsaEspaciosMultiples(t *testing.T) {
	assert.Equal(t, "resguardo_EQ001_Cambio_de_Responsable.pdf",
		generation.Filename("EQ001", "Cambio  de\tResponsable", "pdf"))
}

// ──────────────────────────────────────────────
// HTML / PDF / Texto
// ──────────────────────────────────────────────

func TestGenerateHTML_PaginaCompletaYRegistro(t *testing.T) {
	svc, resRepo, _ := servicioDePrueba(&fakeDocx{}, &fakePDF{})

	page, err := svc.GenerateHTML("user-1", estacionDePrueba(), "Asignación Inicial")
	require.NoError(t, err)

	assert.Contains(t, page, "<!DOCTYPE html>")
	assert.Contains(t, page, "Dra. Pérez")
	require.Len(t, resRepo.created, 1)
}

func TestGeneratePDF_DelegaEnElPuerto(t *testing.T) {
	svc, _, _ := servicioDePrueba(&fakeDocx{}, &fakePDF{out: []byte("%PDF")})

	out, filename, err := svc.GeneratePDF(context.Background(), "user-1", estacionDePrueba(), "Cancelación")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), out)
	assert.Equal(t, "resguardo_EST001_Cancelación.pdf", filename)
}

func TestGenerateTexto_SoloEstaciones(t *testing.T) {
	svc, _, _ := servicioDePrueba(&fakeDocx{}, &fakePDF{})

	equipo := resguardo.NewItemEquipo(resguardo.Equipo{ID: "EQ009", Tipo: "Laptop"})
	_, err := svc.GenerateTexto("user-1", equipo, "Asignación Inicial")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGenerateTexto_EstacionGeneraReporte(t *testing.T) {
	svc, resRepo, _ := servicioDePrueba(&fakeDocx{}, &fakePDF{})

	out, err := svc.GenerateTexto("user-1", estacionDePrueba(), "Cancelación")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "RESGUARDO DE EQUIPO DE TI - HOSPITAL"))
	assert.Contains(t, out, "DETALLES DE CANCELACIÓN")
	require.Len(t, resRepo.created, 1)
	require.NotNil(t, resRepo.created[0].StationID)
}
