package resguardo

import "strings"

// Valor de relleno cuando falta un segmento de ubicación.
const NoDisponible = "N/A"

// UbicacionDesglosada es el desglose posicional de una ubicación plana.
type UbicacionDesglosada struct {
	Edificio         string
	Piso             string
	UbicacionInterna string
}

// ParseUbicacion desglosa una ubicación en formato plano heredado
// "edificio, piso, resto de ubicación interna". Los segmentos se recortan;
// a partir del tercero se vuelven a unir con ", " como ubicación interna.
// Nunca falla: los segmentos ausentes degradan a "N/A".
func ParseUbicacion(ubicacion string) UbicacionDesglosada {
	out := UbicacionDesglosada{
		Edificio:         NoDisponible,
		Piso:             NoDisponible,
		UbicacionInterna: NoDisponible,
	}
	if strings.TrimSpace(ubicacion) == "" {
		return out
	}

	parts := strings.Split(ubicacion, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	out.Edificio = parts[0]
	if len(parts) >= 2 {
		out.Piso = parts[1]
	}
	if len(parts) >= 3 {
		out.UbicacionInterna = strings.Join(parts[2:], ", ")
	}
	return out
}
