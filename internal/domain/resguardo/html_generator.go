package resguardo

import (
	"html/template"
	"strings"
)

// HTMLRenderer produce la hoja de resguardo como documento HTML completo y
// autocontenido (estilos en línea), listo para abrirse en una ventana del
// navegador e imprimirse a PDF.
type HTMLRenderer struct {
	inst Institucion
	now  Clock
}

// NewHTMLRenderer construye el renderer con el membrete y el reloj inyectados.
func NewHTMLRenderer(inst Institucion, now Clock) *HTMLRenderer {
	return &HTMLRenderer{inst: inst, now: now}
}

// filaActivo es una fila de la tabla de bienes. En estaciones, las columnas
// compartidas (dirección, ubicación, edificio, piso, servicio, ubicación
// interna) solo se llenan en la primera fila; la segunda las deja vacías.
// Esa convención visual se conserva tal cual.
type filaActivo struct {
	Equipo           string
	Marca            string
	Modelo           string
	NoSerie          string
	Direccion        string
	Ubicacion        string
	Edificio         string
	Piso             string
	Servicio         string
	UbicacionInterna string
}

type datosHoja struct {
	ItemID          string
	Direccion       string
	Telefono        string
	TituloItem      string
	Ciudad          string
	Fecha           string
	Checklist       []string
	Filas           []filaActivo
	DetallesTitulo  string
	DetallesParrafo string
	FirmanteEntrega string
	Responsable     string
}

// Render genera el documento HTML de la hoja de resguardo. Nunca entra en
// pánico; con entradas dispersas degrada a "N/A" o celdas vacías.
func (r *HTMLRenderer) Render(item ResguardableItem, tipoResguardo string) (string, error) {
	d := datosHoja{
		ItemID:          item.ID(),
		Direccion:       r.inst.Direccion,
		Telefono:        r.inst.Telefono,
		Ciudad:          r.inst.Ciudad,
		Fecha:           FormatFechaLarga(r.now()),
		FirmanteEntrega: r.inst.FirmanteEntrega,
		Responsable:     NoDisponible,
	}
	d.DetallesTitulo, d.DetallesParrafo = Boilerplate(tipoResguardo)

	switch item.Kind {
	case KindEstacion:
		if est := item.Estacion; est != nil {
			d.TituloItem = EtiquetaEstacion
			if est.Responsable != "" {
				d.Responsable = est.Responsable
			}
			desglose := ParseUbicacion(est.Ubicacion)
			d.Filas = []filaActivo{
				{
					Equipo:           "CPU: " + est.CPU.ID,
					Marca:            est.CPU.Marca,
					Modelo:           est.CPU.Modelo,
					NoSerie:          serieONA(est.CPU.NoSerie),
					Direccion:        r.inst.Direccion,
					Ubicacion:        est.Ubicacion,
					Edificio:         desglose.Edificio,
					Piso:             desglose.Piso,
					Servicio:         est.Servicio,
					UbicacionInterna: desglose.UbicacionInterna,
				},
				{
					Equipo:  "Monitor: " + est.Monitor.ID,
					Marca:   est.Monitor.Marca,
					Modelo:  est.Monitor.Modelo,
					NoSerie: serieONA(est.Monitor.NoSerie),
					// columnas compartidas vacías a propósito
				},
			}
			d.Checklist = est.Accesorios
		}
	case KindEquipo:
		if eq := item.Equipo; eq != nil {
			tipoMayusculas := strings.ToUpper(eq.Tipo)
			d.TituloItem = "EQUIPO DE CÓMPUTO " + tipoMayusculas
			if eq.Responsable != "" {
				d.Responsable = eq.Responsable
			}
			desglose := ParseUbicacion(eq.Ubicacion)
			d.Filas = []filaActivo{{
				Equipo:           tipoMayusculas,
				Marca:            eq.Marca,
				Modelo:           eq.Modelo,
				NoSerie:          eq.NoSerie,
				Direccion:        r.inst.Direccion,
				Ubicacion:        eq.Ubicacion,
				Edificio:         desglose.Edificio,
				Piso:             desglose.Piso,
				Servicio:         eq.Servicio,
				UbicacionInterna: desglose.UbicacionInterna,
			}}
			// Solo las laptops llevan lista de verificación fija; para
			// cualquier otro tipo individual la lista queda vacía.
			if eq.Tipo == "Laptop" {
				d.Checklist = r.inst.ChecklistLaptop
			}
		}
	}

	var b strings.Builder
	if err := plantillaHoja.Execute(&b, d); err != nil {
		return "", err
	}
	return b.String(), nil
}

func serieONA(noSerie string) string {
	if noSerie == "" {
		return NoDisponible
	}
	return noSerie
}

var plantillaHoja = template.Must(template.New("hoja-resguardo").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Hoja de Resguardo - {{.ItemID}}</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            margin: 40px;
            color: #333;
            line-height: 1.6;
        }
        .header {
            text-align: center;
            margin-bottom: 30px;
        }
        .header p {
            margin: 0;
            font-size: 14px;
        }
        .title {
            text-align: center;
            font-size: 20px;
            font-weight: bold;
            margin-bottom: 20px;
            border-bottom: 2px solid #333;
            padding-bottom: 10px;
        }
        .date {
            text-align: right;
            margin-bottom: 20px;
            font-size: 14px;
        }
        .section {
            margin-bottom: 20px;
        }
        .section-title {
            font-weight: bold;
            margin-bottom: 10px;
        }
        .signature-area {
            display: flex;
            justify-content: space-around;
            margin-top: 50px;
            text-align: center;
        }
        table {
            width: 100%;
            border-collapse: collapse;
            margin-top: 15px;
        }
        th, td {
            border: 1px solid #ddd;
            padding: 8px;
            text-align: left;
            font-size: 13px;
        }
        th {
            background-color: #f2f2f2;
        }
    </style>
</head>
<body>
    <div class="header">
        <p>{{.Direccion}}</p>
        <p>Tel: {{.Telefono}}</p>
    </div>

    <div class="title">
        HOJA DE RESGUARDO {{.TituloItem}}
    </div>

    <div class="date">
        {{.Ciudad}}, a {{.Fecha}}.
    </div>

    <div class="section">
        <p><strong>Responsable:</strong> ________________________________________________</p>
        <p>Por medio de la presente entrega el resguardo de los bienes referenciados que a continuación se describen:</p>
        <p>{{range .Checklist}}<span style="margin-right: 15px;">&#9746; {{.}}</span>{{end}}</p>
    </div>

    <div class="section">
        <table>
            <thead>
                <tr>
                    <th>Equipo</th>
                    <th>Marca</th>
                    <th>Modelo</th>
                    <th>No. Serie</th>
                    <th>Dirección</th>
                    <th>Ubicación</th>
                    <th>Edificio</th>
                    <th>Piso</th>
                    <th>Servicio</th>
                    <th>Ubicación interna</th>
                </tr>
            </thead>
            <tbody>
{{range .Filas}}                <tr>
                    <td>{{.Equipo}}</td>
                    <td>{{.Marca}}</td>
                    <td>{{.Modelo}}</td>
                    <td>{{.NoSerie}}</td>
                    <td>{{.Direccion}}</td>
                    <td>{{.Ubicacion}}</td>
                    <td>{{.Edificio}}</td>
                    <td>{{.Piso}}</td>
                    <td>{{.Servicio}}</td>
                    <td>{{.UbicacionInterna}}</td>
                </tr>
{{end}}            </tbody>
        </table>
    </div>

    <div class="section">
        <p class="section-title">{{.DetallesTitulo}}</p>
        <p>{{.DetallesParrafo}}</p>
    </div>

    <div class="signature-area">
        <div>
            <p>_________________________________________</p>
            <p><strong>ENTREGA</strong></p>
            <p>{{.FirmanteEntrega}}</p>
        </div>
        <div>
            <p>_________________________________________</p>
            <p><strong>RECIBE</strong></p>
            <p>{{.Responsable}}</p>
        </div>
    </div>
</body>
</html>
`))
