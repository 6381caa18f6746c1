package resguardo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hraei-ti/inventario-api/internal/domain/resguardo"
)

// El parser de ubicaciones es posicional: segmento 0 = edificio, segmento 1 =
// piso, y todo lo demás se vuelve a unir como ubicación interna. Nunca falla;
// solo degrada a "N/A".
func TestParseUbicacion_CuatroSegmentos(t *testing.T) {
	out := resguardo.ParseUbicacion("A, B, C, D")

	assert.Equal(t, "A", out.Edificio)
	assert.Equal(t, "B", out.Piso)
	assert.Equal(t, "C, D", out.UbicacionInterna, "los segmentos restantes se reúnen con ', '")
}

func TestParseUbicacion_SoloEdificio(t *testing.T) {
	out := resguardo.ParseUbicacion("OnlyBuilding")

	assert.Equal(t, "OnlyBuilding", out.Edificio)
	assert.Equal(t, "N/A", out.Piso)
	assert.Equal(t, "N/A", out.UbicacionInterna)
}

func TestParseUbicacion_DosSegmentos(t *testing.T) {
	out := resguardo.ParseUbicacion("Torre Norte, Piso 3")

	assert.Equal(t, "Torre Norte", out.Edificio)
	assert.Equal(t, "Piso 3", out.Piso)
	assert.Equal(t, "N/A", out.UbicacionInterna)
}

func TestParseUbicacion_Vacia(t *testing.T) {
	out := resguardo.ParseUbicacion("")

	assert.Equal(t, "N/A", out.Edificio)
	assert.Equal(t, "N/A", out.Piso)
	assert.Equal(t, "N/A", out.UbicacionInterna)
}

func TestParseUbicacion_RecortaEspacios(t *testing.T) {
	out := resguardo.ParseUbicacion("  Torre Sur ,  Planta Baja ,  Sala de Espera  ")

	assert.Equal(t, "Torre Sur", out.Edificio)
	assert.Equal(t, "Planta Baja", out.Piso)
	assert.Equal(t, "Sala de Espera", out.UbicacionInterna)
}
