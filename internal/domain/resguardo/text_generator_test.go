package resguardo_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hraei-ti/inventario-api/internal/domain/resguardo"
)

func TestGenerateTexto_EncabezadoYDatosDeLaEstacion(t *testing.T) {
	out := resguardo.GenerateTexto(estacionDePrueba(), "Asignación Inicial", relojFijo)

	assert.True(t, strings.HasPrefix(out, "RESGUARDO DE EQUIPO DE TI - HOSPITAL"))
	assert.Contains(t, out, "Fecha de Generación: 15 de enero de 2024 10:30")
	assert.Contains(t, out, "Tipo de Resguardo: Asignación Inicial")
	assert.Contains(t, out, "ID de Estación: EST001")
	assert.Contains(t, out, "Nombre Completo: Dra. Laura Méndez")
	assert.Contains(t, out, "CPU Principal:")
	assert.Contains(t, out, "Monitor Secundario:")
	assert.Contains(t, out, "- Mouse")
	assert.Contains(t, out, "- Teclado")
}

// Cada tipo conocido selecciona su propio párrafo normativo.
func TestGenerateTexto_SeleccionDeParrafoPorTipo(t *testing.T) {
	casos := []struct {
		tipo      string
		contenido string
	}{
		{"Asignación Inicial", "DETALLES DE ASIGNACIÓN INICIAL"},
		{"Mantenimiento Preventivo", "DETALLES DE MANTENIMIENTO PREVENTIVO"},
		{"Cambio de Responsable", "DETALLES DE CAMBIO DE RESPONSABLE"},
		{"Creación Inicial", "DETALLES DE CREACIÓN INICIAL"},
		{"Cancelación", "DETALLES DE CANCELACIÓN"},
	}
	for _, c := range casos {
		t.Run(c.tipo, func(t *testing.T) {
			out := resguardo.GenerateTexto(estacionDePrueba(), c.tipo, relojFijo)
			assert.Contains(t, out, c.contenido)
		})
	}
}

// Un tipo no reconocido cae en la rama genérica con el tipo citado.
func TestGenerateTexto_TipoDesconocidoUsaParrafoGenerico(t *testing.T) {
	out := resguardo.GenerateTexto(estacionDePrueba(), "Tipo Inventado", relojFijo)

	assert.Contains(t, out, "DETALLES ADICIONALES")
	assert.Contains(t, out, "Este es un resguardo de tipo 'Tipo Inventado'.")
}

func TestGenerateTexto_SinAccesorios(t *testing.T) {
	est := estacionDePrueba()
	est.Accesorios = nil

	out := resguardo.GenerateTexto(est, "Creación Inicial", relojFijo)

	assert.Contains(t, out, "Accesorios Incluidos: Ninguno")
}

func TestGenerateTexto_FirmasAlFinal(t *testing.T) {
	out := resguardo.GenerateTexto(estacionDePrueba(), "Cancelación", relojFijo)

	assert.Contains(t, out, "FIRMAS:")
	assert.Contains(t, out, "Responsable: _________________________")
	assert.Contains(t, out, "Técnico de TI: _________________________")
	assert.False(t, strings.HasSuffix(out, "\n"), "el reporte va recortado")
}

func TestGenerateTexto_EstacionVaciaNoFalla(t *testing.T) {
	out := resguardo.GenerateTexto(resguardo.Estacion{}, "", relojFijo)

	assert.Contains(t, out, "RESGUARDO DE EQUIPO DE TI - HOSPITAL")
	assert.Contains(t, out, "DETALLES ADICIONALES")
}
