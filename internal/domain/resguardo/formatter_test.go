package resguardo_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hraei-ti/inventario-api/internal/domain/resguardo"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// relojFijo devuelve siempre el 15 de enero de 2024 a las 10:30.
func relojFijo() time.Time {
	return time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC)
}

func institucionDePrueba() resguardo.Institucion {
	return resguardo.Institucion{
		Direccion:       "Carretera Federal México-Puebla Km. 34.5, Pueblo de Zoquiapan, 56530, Municipio de Ixtapaluca, Estado de México.",
		Telefono:        "(55) 5972 9800",
		Ciudad:          "Ixtapaluca, Edo de México",
		FirmanteEntrega: "Ing. Edelberto Arceta Armenta",
		ChecklistLaptop: []string{"Laptop", "Cable de corriente", "Eliminador"},
	}
}

func estacionDePrueba() resguardo.Estacion {
	return resguardo.Estacion{
		ID:          "EST001",
		Responsable: "Dra. Laura Méndez",
		Servicio:    "Urgencias",
		Ubicacion:   "Torre Norte, Piso 2, Módulo de Triage",
		Estado:      "Activo",
		Accesorios:  []string{"Mouse", "Teclado"},
		CPU: resguardo.Equipo{
			ID: "EQ001", Tipo: "CPU", Marca: "Dell",
			Modelo: "OptiPlex 7090", NoSerie: "SN-CPU-1",
		},
		Monitor: resguardo.Equipo{
			ID: "EQ002", Tipo: "Monitor", Marca: "Samsung",
			Modelo: "E231", NoSerie: "SN-MON-1",
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Formatter
// ──────────────────────────────────────────────────────────────────────────────

func TestFields_EstacionCombinaModelosConSeparadorExacto(t *testing.T) {
	f := resguardo.NewFormatter(institucionDePrueba(), relojFijo)

	campos := f.Fields(resguardo.NewItemEstacion(estacionDePrueba()), "Asignación Inicial")

	// El separador es exactamente " / ", sin variaciones de espacios.
	assert.Equal(t, "OptiPlex 7090 / E231", campos["equipoModelo"])
	assert.Equal(t, "EQ001 / EQ002", campos["equipoNoSerie"])
	assert.Equal(t, "Dell / Samsung", campos["equipoMarca"],
		"la marca combina CPU y monitor con la misma convención que el modelo")
	assert.Equal(t, "ESTACIÓN DE CÓMPUTO", campos["equipoTipo"])
}

func TestFields_EquipoEtiquetaEnMayusculas(t *testing.T) {
	f := resguardo.NewFormatter(institucionDePrueba(), relojFijo)

	item := resguardo.NewItemEquipo(resguardo.Equipo{
		ID: "EQ010", Tipo: "laptop", Marca: "HP", Modelo: "ProBook 450",
		NoSerie: "SN-LT-9", Responsable: "Enf. Pedro Ruiz",
		Ubicacion: "Torre Sur, Piso 1, Oficina TI", Servicio: "Informática",
	})
	campos := f.Fields(item, "Asignación Inicial")

	assert.Equal(t, "LAPTOP", campos["equipoTipo"])
	assert.Equal(t, "HP", campos["equipoMarca"])
	assert.Equal(t, "ProBook 450", campos["equipoModelo"])
	assert.Equal(t, "SN-LT-9", campos["equipoNoSerie"])
	assert.Equal(t, "Enf. Pedro Ruiz", campos["responsableNombre"])
}

func TestFields_FechaDelRelojInyectado(t *testing.T) {
	f := resguardo.NewFormatter(institucionDePrueba(), relojFijo)

	campos := f.Fields(resguardo.NewItemEstacion(estacionDePrueba()), "Creación Inicial")

	assert.Equal(t, "15 de enero de 2024", campos["fecha"],
		"la fecha sale del reloj inyectado, no del reloj de pared")
}

func TestFields_DesglosaUbicacionPlana(t *testing.T) {
	f := resguardo.NewFormatter(institucionDePrueba(), relojFijo)

	campos := f.Fields(resguardo.NewItemEstacion(estacionDePrueba()), "Asignación Inicial")

	assert.Equal(t, "Torre Norte", campos["equipoEdificio"])
	assert.Equal(t, "Piso 2", campos["equipoPiso"])
	assert.Equal(t, "Módulo de Triage", campos["equipoUbicacionInterna"])
	assert.Equal(t, "Urgencias", campos["equipoServicio"])
}

// Política "siempre producir algo imprimible": un equipo sin ningún dato no
// debe provocar pánico ni errores, solo degradar a "" y "N/A".
func TestFields_EquipoVacioDegradaSinFallar(t *testing.T) {
	f := resguardo.NewFormatter(resguardo.Institucion{}, relojFijo)

	require.NotPanics(t, func() {
		campos := f.Fields(resguardo.NewItemEquipo(resguardo.Equipo{}), "")
		assert.Equal(t, "N/A", campos["responsableNombre"])
		assert.Equal(t, "", campos["equipoMarca"])
		assert.Equal(t, "N/A", campos["equipoEdificio"])
	})
}

func TestFields_CasillasFijasMarcadas(t *testing.T) {
	f := resguardo.NewFormatter(institucionDePrueba(), relojFijo)

	campos := f.Fields(resguardo.NewItemEstacion(estacionDePrueba()), "Asignación Inicial")

	assert.Equal(t, "☒", campos["checkboxLaptop"])
	assert.Equal(t, "☒", campos["checkboxCable"])
	assert.Equal(t, "☒", campos["checkboxEliminador"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Unión etiquetada
// ──────────────────────────────────────────────────────────────────────────────

func TestResguardableItem_Constructores(t *testing.T) {
	est := resguardo.NewItemEstacion(estacionDePrueba())
	require.Equal(t, resguardo.KindEstacion, est.Kind)
	assert.True(t, est.Valido())
	assert.Equal(t, "EST001", est.ID())

	eq := resguardo.NewItemEquipo(resguardo.Equipo{ID: "EQ010"})
	require.Equal(t, resguardo.KindEquipo, eq.Kind)
	assert.True(t, eq.Valido())
	assert.Equal(t, "EQ010", eq.ID())
}

func TestResguardableItem_MalFormadoNoEsValido(t *testing.T) {
	malformado := resguardo.ResguardableItem{Kind: resguardo.KindEstacion}
	assert.False(t, malformado.Valido())
	assert.Equal(t, "", malformado.ID())
}
