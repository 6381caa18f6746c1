package resguardo

import "strings"

// Etiqueta de tipo para la variante estación.
const EtiquetaEstacion = "ESTACIÓN DE CÓMPUTO"

// Separador usado al combinar los valores del CPU y del monitor de una estación.
const separadorCombinado = " / "

// Marca de casilla seleccionada que esperan las plantillas Word.
const marcaCasilla = "☒"

// Formatter produce el mapa plano de campos que se inyecta a la plantilla
// .docx. No tiene estado mutable; la fecha sale del Clock inyectado.
type Formatter struct {
	inst Institucion
	now  Clock
}

// NewFormatter construye el formatter con el membrete y el reloj inyectados.
func NewFormatter(inst Institucion, now Clock) *Formatter {
	return &Formatter{inst: inst, now: now}
}

// Fields devuelve el mapa campo→valor listo para sustituir en la plantilla.
// Nunca falla: los campos opcionales ausentes degradan a "" o "N/A".
//
// Para estaciones, marca, modelo y número de serie combinan los valores del
// CPU y del monitor con " / "; el número de serie usa los IDs de los equipos
// porque es el identificador que la plantilla histórica espera ahí.
func (f *Formatter) Fields(item ResguardableItem, tipoResguardo string) map[string]string {
	fecha := FormatFechaLarga(f.now())

	responsable := NoDisponible
	var tipo, marca, modelo, noSerie, ubicacion, servicio string

	switch item.Kind {
	case KindEstacion:
		if est := item.Estacion; est != nil {
			if est.Responsable != "" {
				responsable = est.Responsable
			}
			tipo = EtiquetaEstacion
			marca = est.CPU.Marca + separadorCombinado + est.Monitor.Marca
			modelo = est.CPU.Modelo + separadorCombinado + est.Monitor.Modelo
			noSerie = est.CPU.ID + separadorCombinado + est.Monitor.ID
			ubicacion = est.Ubicacion
			servicio = est.Servicio
		}
	case KindEquipo:
		if eq := item.Equipo; eq != nil {
			if eq.Responsable != "" {
				responsable = eq.Responsable
			}
			tipo = strings.ToUpper(eq.Tipo)
			marca = eq.Marca
			modelo = eq.Modelo
			noSerie = eq.NoSerie
			ubicacion = eq.Ubicacion
			servicio = eq.Servicio
		}
	}

	desglose := ParseUbicacion(ubicacion)

	return map[string]string{
		"fecha":                  fecha,
		"tipoResguardo":          tipoResguardo,
		"responsableNombre":      responsable,
		"equipoTipo":             tipo,
		"equipoMarca":            marca,
		"equipoModelo":           modelo,
		"equipoNoSerie":          noSerie,
		"equipoDireccion":        f.inst.Direccion,
		"equipoUbicacion":        ubicacion,
		"equipoEdificio":         desglose.Edificio,
		"equipoPiso":             desglose.Piso,
		"equipoServicio":         servicio,
		"equipoUbicacionInterna": desglose.UbicacionInterna,
		"hospitalAddress":        f.inst.Direccion,
		"hospitalPhone":          f.inst.Telefono,
		// Casillas fijas de la plantilla de laptop
		"checkboxLaptop":     marcaCasilla,
		"checkboxCable":      marcaCasilla,
		"checkboxEliminador": marcaCasilla,
	}
}
