package resguardo

import "fmt"

// Tipos de resguardo con párrafo propio. La enumeración es abierta: cualquier
// otro string cae en el párrafo genérico.
const (
	TipoAsignacionInicial      = "Asignación Inicial"
	TipoMantenimientoPreventivo = "Mantenimiento Preventivo"
	TipoCambioResponsable      = "Cambio de Responsable"
	TipoCreacionInicial        = "Creación Inicial"
	TipoCancelacion            = "Cancelación"
)

// Boilerplate devuelve el encabezado de sección y el párrafo normativo que
// corresponden al tipo de resguardo. Lo comparten el generador de texto y el
// renderer HTML para que ambos caminos digan lo mismo.
func Boilerplate(tipoResguardo string) (titulo, parrafo string) {
	switch tipoResguardo {
	case TipoAsignacionInicial:
		return "DETALLES DE ASIGNACIÓN INICIAL",
			"Este documento certifica la asignación inicial de la estación de trabajo y sus componentes al responsable indicado.\n" +
				"El responsable se compromete a hacer uso adecuado del equipo y reportar cualquier anomalía."
	case TipoMantenimientoPreventivo:
		return "DETALLES DE MANTENIMIENTO PREVENTIVO",
			"Este resguardo documenta la realización de mantenimiento preventivo en la estación.\n" +
				"Se verificó el funcionamiento de hardware y software, y se realizaron las limpiezas y actualizaciones pertinentes."
	case TipoCambioResponsable:
		return "DETALLES DE CAMBIO DE RESPONSABLE",
			"Este documento registra el cambio de responsable de la estación de trabajo.\n" +
				"El nuevo responsable asume la custodia y el uso adecuado del equipo a partir de la fecha de este resguardo."
	case TipoCreacionInicial:
		return "DETALLES DE CREACIÓN INICIAL",
			"Este resguardo documenta la creación y configuración inicial de la estación de trabajo en el sistema de inventario."
	case TipoCancelacion:
		return "DETALLES DE CANCELACIÓN",
			"Este resguardo documenta la baja o cancelación de la estación de trabajo del inventario."
	default:
		return "DETALLES ADICIONALES",
			fmt.Sprintf("Este es un resguardo de tipo '%s'.", tipoResguardo)
	}
}
