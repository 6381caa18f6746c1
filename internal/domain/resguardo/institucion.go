package resguardo

import (
	"fmt"
	"time"
)

// Clock abstrae la lectura del reloj para que el formateo de documentos sea
// determinista en pruebas. En producción se pasa time.Now.
type Clock func() time.Time

// Institucion es el membrete y la política documental inyectados a los
// generadores: dirección, teléfono, línea de ciudad para el fechado, firmante
// fijo del bloque ENTREGA y lista de verificación para laptops.
type Institucion struct {
	Direccion       string
	Telefono        string
	Ciudad          string
	FirmanteEntrega string
	ChecklistLaptop []string
}

var meses = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// FormatFechaLarga produce la fecha larga en español, ej. "15 de enero de 2024".
func FormatFechaLarga(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), meses[t.Month()-1], t.Year())
}

// FormatHoraCorta produce la hora HH:MM en formato de 24 horas.
func FormatHoraCorta(t time.Time) string {
	return t.Format("15:04")
}
