package resguardo

import (
	"fmt"
	"strings"
)

const separadorLinea = "--------------------------------------------------------------------"

// GenerateTexto produce el reporte de resguardo en texto plano. Este camino es
// exclusivo de estaciones (las hojas de equipos individuales salen por HTML,
// PDF o Word). Nunca falla: los campos ausentes salen vacíos.
func GenerateTexto(est Estacion, tipoResguardo string, now Clock) string {
	t := now()
	fecha := FormatFechaLarga(t)
	hora := FormatHoraCorta(t)

	var b strings.Builder
	fmt.Fprintf(&b, `
RESGUARDO DE EQUIPO DE TI - HOSPITAL
Fecha de Generación: %s %s
%s

Tipo de Resguardo: %s
ID de Estación: %s
Estado de la Estación: %s

%s
INFORMACIÓN DEL RESPONSABLE
Nombre Completo: %s
Servicio Asignado: %s
Ubicación: %s

%s
EQUIPOS ASIGNADOS A LA ESTACIÓN
`, fecha, hora, separadorLinea, tipoResguardo, est.ID, est.Estado,
		separadorLinea, est.Responsable, est.Servicio, est.Ubicacion, separadorLinea)

	fmt.Fprintf(&b, `
CPU Principal:
  ID: %s
  Marca: %s
  Modelo: %s
`, est.CPU.ID, est.CPU.Marca, est.CPU.Modelo)

	fmt.Fprintf(&b, `
Monitor Secundario:
  ID: %s
  Marca: %s
  Modelo: %s
`, est.Monitor.ID, est.Monitor.Marca, est.Monitor.Modelo)

	if len(est.Accesorios) > 0 {
		b.WriteString("\nAccesorios Incluidos:\n")
		for _, acc := range est.Accesorios {
			fmt.Fprintf(&b, "  - %s\n", acc)
		}
	} else {
		b.WriteString("\nAccesorios Incluidos: Ninguno\n")
	}

	titulo, parrafo := Boilerplate(tipoResguardo)
	fmt.Fprintf(&b, "\n%s\n%s\n%s\n", separadorLinea, titulo, parrafo)

	fmt.Fprintf(&b, `
%s
FIRMAS:

Responsable: _________________________

Técnico de TI: _________________________
`, separadorLinea)

	return strings.TrimSpace(b.String())
}
