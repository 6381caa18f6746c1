package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hraei-ti/inventario-api/internal/application/dto"
	"github.com/hraei-ti/inventario-api/internal/domain/resguardo"
)

// ──────────────────────────────────────────────
// Discriminación estación vs equipo individual
// ──────────────────────────────────────────────

func TestToItem_ConCPUYMonitor_EsEstacion(t *testing.T) {
	p := dto.ItemDataPayload{
		ID:          "EST001",
		Estado:      "Activo",
		Responsable: "Dra. Pérez",
		Ubicacion:   "Edificio A, Piso 2, Urgencias",
		Servicio:    "Urgencias",
		Accesorios:  []string{"Mouse"},
		CPU:         &dto.ComponentePayload{ID: "EQ001", Marca: "Dell", Modelo: "OptiPlex", NoSerie: "SN1"},
		Monitor:     &dto.ComponentePayload{ID: "EQ002", Marca: "Samsung", Modelo: "E231", NoSerie: "SN2"},
	}

	item := p.ToItem()

	require.Equal(t, resguardo.KindEstacion, item.Kind, "cpu y monitor presentes deben dar estación")
	require.NotNil(t, item.Estacion)
	assert.Equal(t, "EST001", item.ID())
	assert.Equal(t, "Dell", item.Estacion.CPU.Marca)
	assert.Equal(t, "Samsung", item.Estacion.Monitor.Marca)
	assert.Equal(t, []string{"Mouse"}, item.Estacion.Accesorios)
}

func TestToItem_SoloCPU_EsEquipo(t *testing.T) {
	p := dto.ItemDataPayload{
		ID:   "EQ010",
		Tipo: "Laptop",
		CPU:  &dto.ComponentePayload{ID: "EQ001"},
	}

	item := p.ToItem()

	assert.Equal(t, resguardo.KindEquipo, item.Kind, "sin monitor no hay estación")
	require.NotNil(t, item.Equipo)
	assert.Equal(t, "EQ010", item.ID())
}

func TestToItem_SoloMonitor_EsEquipo(t *testing.T) {
	p := dto.ItemDataPayload{
		ID:      "EQ011",
		Tipo:    "Monitor",
		Monitor: &dto.ComponentePayload{ID: "EQ002"},
	}

	item := p.ToItem()

	assert.Equal(t, resguardo.KindEquipo, item.Kind, "sin cpu no hay estación")
}

func TestToItem_EquipoIndividual_ConservaCampos(t *testing.T) {
	p := dto.ItemDataPayload{
		ID:          "EQ020",
		Tipo:        "Impresora",
		Marca:       "HP",
		Modelo:      "LaserJet",
		NoSerie:     "XYZ",
		Estado:      "Activo",
		Responsable: "Lic. Gómez",
		Ubicacion:   "Edificio B",
		Servicio:    "Archivo",
	}

	item := p.ToItem()

	require.Equal(t, resguardo.KindEquipo, item.Kind)
	assert.Equal(t, "Impresora", item.Equipo.Tipo)
	assert.Equal(t, "HP", item.Equipo.Marca)
	assert.Equal(t, "LaserJet", item.Equipo.Modelo)
	assert.Equal(t, "XYZ", item.Equipo.NoSerie)
	assert.Equal(t, "Lic. Gómez", item.Equipo.Responsable)
}
