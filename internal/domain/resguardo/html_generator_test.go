package resguardo_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hraei-ti/inventario-api/internal/domain/resguardo"
)

func renderDePrueba(t *testing.T, item resguardo.ResguardableItem, tipo string) string {
	t.Helper()
	r := resguardo.NewHTMLRenderer(institucionDePrueba(), relojFijo)
	out, err := r.Render(item, tipo)
	require.NoError(t, err, "el renderer nunca debe fallar")
	return out
}

// Una estación produce exactamente dos filas de bienes (CPU y luego Monitor);
// las columnas compartidas solo se llenan en la primera fila.
func TestRenderHTML_EstacionDosFilasConColumnasCompartidas(t *testing.T) {
	out := renderDePrueba(t, resguardo.NewItemEstacion(estacionDePrueba()), "Asignación Inicial")

	// 1 fila de encabezado + 2 filas de bienes
	assert.Equal(t, 3, strings.Count(out, "<tr>"))
	assert.Contains(t, out, "CPU: EQ001")
	assert.Contains(t, out, "Monitor: EQ002")

	// La dirección aparece en el membrete y en la primera fila; nunca en la segunda.
	inst := institucionDePrueba()
	assert.Equal(t, 2, strings.Count(out, inst.Direccion))
	assert.Equal(t, 1, strings.Count(out, ">Urgencias<"),
		"el servicio solo va en la primera fila")

	// Las seis columnas compartidas de la fila del monitor quedan vacías.
	assert.Equal(t, 6, strings.Count(out, "<td></td>"))
}

func TestRenderHTML_EquipoUnaFilaCompleta(t *testing.T) {
	item := resguardo.NewItemEquipo(resguardo.Equipo{
		ID: "EQ020", Tipo: "Impresora", Marca: "Epson", Modelo: "L3250",
		NoSerie: "SN-IMP-2", Responsable: "Lic. Marta Solís",
		Ubicacion: "Torre Norte, Piso 1, Archivo Clínico", Servicio: "Archivo",
	})
	out := renderDePrueba(t, item, "Asignación Inicial")

	assert.Equal(t, 2, strings.Count(out, "<tr>"), "encabezado + una sola fila")
	assert.Contains(t, out, ">IMPRESORA<")
	assert.Contains(t, out, "HOJA DE RESGUARDO EQUIPO DE CÓMPUTO IMPRESORA")
	assert.Zero(t, strings.Count(out, "<td></td>"), "todas las celdas van pobladas")
}

// ──────────────────────────────────────────────────────────────────────────────
// Lista de verificación
// ──────────────────────────────────────────────────────────────────────────────

func TestRenderHTML_ChecklistDeEstacionListaSusAccesorios(t *testing.T) {
	out := renderDePrueba(t, resguardo.NewItemEstacion(estacionDePrueba()), "Asignación Inicial")

	assert.Equal(t, 2, strings.Count(out, "&#9746;"), "una casilla por accesorio")
	assert.Contains(t, out, "&#9746; Mouse")
	assert.Contains(t, out, "&#9746; Teclado")
}

func TestRenderHTML_LaptopLlevaChecklistFijaIgnorandoAccesorios(t *testing.T) {
	item := resguardo.NewItemEquipo(resguardo.Equipo{
		ID: "EQ010", Tipo: "Laptop", Marca: "HP", Modelo: "ProBook 450",
		NoSerie: "SN-LT-9", Ubicacion: "Torre Sur, Piso 1, Oficina TI", Servicio: "Informática",
	})
	out := renderDePrueba(t, item, "Asignación Inicial")

	assert.Equal(t, 3, strings.Count(out, "&#9746;"))
	assert.Contains(t, out, "&#9746; Laptop")
	assert.Contains(t, out, "&#9746; Cable de corriente")
	assert.Contains(t, out, "&#9746; Eliminador")
}

func TestRenderHTML_ImpresoraSinChecklist(t *testing.T) {
	item := resguardo.NewItemEquipo(resguardo.Equipo{
		ID: "EQ020", Tipo: "Impresora", Marca: "Epson", Modelo: "L3250",
		NoSerie: "SN-IMP-2", Ubicacion: "Torre Norte, Piso 1, Archivo", Servicio: "Archivo",
	})
	out := renderDePrueba(t, item, "Asignación Inicial")

	assert.Zero(t, strings.Count(out, "&#9746;"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Marco del documento
// ──────────────────────────────────────────────────────────────────────────────

func TestRenderHTML_MarcoDelDocumento(t *testing.T) {
	out := renderDePrueba(t, resguardo.NewItemEstacion(estacionDePrueba()), "Asignación Inicial")

	assert.Contains(t, out, "HOJA DE RESGUARDO ESTACIÓN DE CÓMPUTO")
	assert.Contains(t, out, "Ixtapaluca, Edo de México, a 15 de enero de 2024.")
	assert.Contains(t, out, "Tel: (55) 5972 9800")
	assert.Contains(t, out, "ENTREGA")
	assert.Contains(t, out, "Ing. Edelberto Arceta Armenta")
	assert.Contains(t, out, "RECIBE")
	assert.Contains(t, out, "Dra. Laura Méndez")
}

// El párrafo normativo por tipo es el mismo en HTML que en el camino de texto.
func TestRenderHTML_ParrafoNormativoPorTipo(t *testing.T) {
	out := renderDePrueba(t, resguardo.NewItemEstacion(estacionDePrueba()), "Cancelación")

	assert.Contains(t, out, "DETALLES DE CANCELACIÓN")
	assert.Contains(t, out, "baja o cancelación de la estación")
}

func TestRenderHTML_EntradaDispersaNoFalla(t *testing.T) {
	r := resguardo.NewHTMLRenderer(resguardo.Institucion{}, relojFijo)

	require.NotPanics(t, func() {
		out, err := r.Render(resguardo.NewItemEquipo(resguardo.Equipo{}), "")
		require.NoError(t, err)
		assert.Contains(t, out, "N/A", "los campos ausentes degradan a N/A")
	})
}
