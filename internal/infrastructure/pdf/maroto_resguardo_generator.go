// Package pdf implementa la hoja de resguardo en PDF con Maroto v2.
//
// Layout de la página carta:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Hospital + dirección/teléfono │ Tipo + Fecha        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESPONSABLE: Nombre / Servicio / Ubicación                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: ID | Tipo | Marca | Modelo | No. Serie | Estado      │
//	│  CHECKLIST: accesorios o lista fija de laptop                │
//	│  PÁRRAFO NORMATIVO según el tipo de resguardo                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FECHADO + FIRMAS: ENTREGA / RECIBE                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/hraei-ti/inventario-api/internal/application/generation"
	"github.com/hraei-ti/inventario-api/internal/domain/resguardo"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ generation.PDFGenerator = (*MarotoResguardoGenerator)(nil)

// MarotoResguardoGenerator implementa generation.PDFGenerator usando Maroto v2.
type MarotoResguardoGenerator struct {
	inst resguardo.Institucion
	now  resguardo.Clock
}

// NewMarotoResguardoGenerator construye el generador con el membrete institucional.
func NewMarotoResguardoGenerator(inst resguardo.Institucion, now resguardo.Clock) *MarotoResguardoGenerator {
	return &MarotoResguardoGenerator{inst: inst, now: now}
}

// GenerateResguardoPDF genera el PDF de la hoja de resguardo y devuelve sus bytes.
func (g *MarotoResguardoGenerator) GenerateResguardoPDF(
	_ context.Context,
	item resguardo.ResguardableItem,
	tipoResguardo string,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.Letter).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Hoja de Resguardo", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(item, tipoResguardo))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.responsableRow(item))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range assetRows(item) {
		m.AddRows(r)
	}

	if checklist := checklistFor(item, g.inst); len(checklist) > 0 {
		m.AddRows(line.NewRow(2))
		for _, r := range checklistRows(checklist) {
			m.AddRows(r)
		}
	}

	m.AddRows(line.NewRow(2))
	for _, r := range boilerplateRows(tipoResguardo) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(4))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(g.signatureRows(item)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: membrete del hospital (izq) y tipo de resguardo + fecha (der).
func (g *MarotoResguardoGenerator) headerRow(item resguardo.ResguardableItem, tipoResguardo string) core.Row {
	titulo := "HOJA DE RESGUARDO"
	if item.Kind == resguardo.KindEstacion {
		titulo = resguardo.EtiquetaEstacion
	}
	fecha := resguardo.FormatFechaLarga(g.now())

	return row.New(20).Add(
		col.New(7).Add(
			text.New("HOSPITAL REGIONAL DE ALTA ESPECIALIDAD", props.Text{
				Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 1,
			}),
			text.New(g.inst.Direccion, props.Text{
				Size: 7, Top: 8, Color: colorGray,
			}),
			text.New("Tel: "+g.inst.Telefono, props.Text{
				Size: 7, Top: 16, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(titulo, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(tipoResguardo, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// responsableRow: quién recibe, su servicio y ubicación desglosada.
func (g *MarotoResguardoGenerator) responsableRow(item resguardo.ResguardableItem) core.Row {
	var responsable, servicio, ubicacion string
	switch item.Kind {
	case resguardo.KindEstacion:
		responsable, servicio, ubicacion = item.Estacion.Responsable, item.Estacion.Servicio, item.Estacion.Ubicacion
	case resguardo.KindEquipo:
		responsable, servicio, ubicacion = item.Equipo.Responsable, item.Equipo.Servicio, item.Equipo.Ubicacion
	}
	des := resguardo.ParseUbicacion(ubicacion)

	return row.New(14).Add(
		col.New(12).Add(
			text.New("RESPONSABLE DEL RESGUARDO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(responsable, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Servicio: %s   |   Edificio: %s   |   Piso: %s   |   Ubicación: %s",
				servicio, des.Edificio, des.Piso, des.UbicacionInterna,
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de activos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("ID", 2, align.Left),
		h("Tipo", 2, align.Left),
		h("Marca", 2, align.Left),
		h("Modelo", 3, align.Left),
		h("No. Serie", 2, align.Left),
		h("Estado", 1, align.Center),
	)
}

// assetRows: una fila por activo; las estaciones ponen CPU y Monitor por separado.
func assetRows(item resguardo.ResguardableItem) []core.Row {
	cell := func(value string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	assetRow := func(id, tipo, marca, modelo, noSerie, estado string) core.Row {
		return row.New(7).Add(
			cell(id, 2, align.Left),
			cell(tipo, 2, align.Left),
			cell(marca, 2, align.Left),
			cell(modelo, 3, align.Left),
			cell(noSerie, 2, align.Left),
			cell(estado, 1, align.Center),
		)
	}

	switch item.Kind {
	case resguardo.KindEstacion:
		est := item.Estacion
		return []core.Row{
			assetRow("CPU: "+est.CPU.ID, "CPU", est.CPU.Marca, est.CPU.Modelo, est.CPU.NoSerie, est.Estado),
			assetRow("Monitor: "+est.Monitor.ID, "Monitor", est.Monitor.Marca, est.Monitor.Modelo,
				serieONA(est.Monitor.NoSerie), ""),
		}
	case resguardo.KindEquipo:
		eq := item.Equipo
		return []core.Row{
			assetRow(eq.ID, eq.Tipo, eq.Marca, eq.Modelo, eq.NoSerie, eq.Estado),
		}
	}
	return nil
}

func serieONA(noSerie string) string {
	if noSerie == "" {
		return resguardo.NoDisponible
	}
	return noSerie
}

// checklistFor: accesorios de la estación, o la lista fija cuando el equipo es laptop.
func checklistFor(item resguardo.ResguardableItem, inst resguardo.Institucion) []string {
	switch item.Kind {
	case resguardo.KindEstacion:
		return item.Estacion.Accesorios
	case resguardo.KindEquipo:
		if item.Equipo.Tipo == "Laptop" {
			return inst.ChecklistLaptop
		}
	}
	return nil
}

func checklistRows(checklist []string) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("LISTA DE VERIFICACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	for _, entry := range checklist {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New("☒ "+entry, props.Text{Size: 8, Top: 0.5, Left: 2}),
		)))
	}
	return rows
}

// boilerplateRows: título y párrafo normativo según el tipo de resguardo.
func boilerplateRows(tipoResguardo string) []core.Row {
	titulo, parrafo := resguardo.Boilerplate(tipoResguardo)
	return []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New(titulo, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(12).Add(col.New(12).Add(
			text.New(parrafo, props.Text{Size: 8, Top: 1, Color: colorGray}),
		)),
	}
}

// signatureRows: fechado y bloques ENTREGA / RECIBE.
func (g *MarotoResguardoGenerator) signatureRows(item resguardo.ResguardableItem) []core.Row {
	var responsable string
	switch item.Kind {
	case resguardo.KindEstacion:
		responsable = item.Estacion.Responsable
	case resguardo.KindEquipo:
		responsable = item.Equipo.Responsable
	}
	fechado := fmt.Sprintf("%s, a %s.", g.inst.Ciudad, resguardo.FormatFechaLarga(g.now()))

	return []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New(fechado, props.Text{Size: 9, Align: align.Center, Top: 2}),
		)),
		row.New(20),
		row.New(14).Add(
			col.New(6).Add(
				text.New("_________________________", props.Text{Size: 9, Align: align.Center, Top: 1}),
				text.New("ENTREGA", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 6}),
				text.New(g.inst.FirmanteEntrega, props.Text{Size: 8, Align: align.Center, Top: 10, Color: colorGray}),
			),
			col.New(6).Add(
				text.New("_________________________", props.Text{Size: 9, Align: align.Center, Top: 1}),
				text.New("RECIBE", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 6}),
				text.New(responsable, props.Text{Size: 8, Align: align.Center, Top: 10, Color: colorGray}),
			),
		),
	}
}
