package resguardo

// Kind discrimina las dos variantes de ítem resguardable. El discriminante se
// fija en el constructor: el código de render nunca vuelve a inferir la
// variante por la forma del dato.
type Kind string

const (
	KindEstacion Kind = "estacion"
	KindEquipo   Kind = "equipo"
)

// Equipo es la vista documental (ya poblada y aplanada) de un bien individual.
// Ubicacion conserva el formato plano "edificio, piso, interna" que desglosa
// ParseUbicacion.
type Equipo struct {
	ID          string
	Tipo        string // CPU, Monitor, Laptop, Impresora... (enumeración abierta)
	Marca       string
	Modelo      string
	NoSerie     string
	Estado      string
	Responsable string // nombre completo; puede venir vacío
	Ubicacion   string
	Servicio    string
}

// Estacion es la vista documental de una estación de cómputo: CPU y monitor
// emparejados más sus accesorios.
type Estacion struct {
	ID          string
	CPU         Equipo
	Monitor     Equipo
	Estado      string
	Responsable string
	Ubicacion   string
	Servicio    string
	Accesorios  []string
}

// ResguardableItem es la unión etiquetada sobre la que operan el formatter y
// los renderers. Exactamente uno de Estacion/Equipo es no-nil según Kind.
type ResguardableItem struct {
	Kind     Kind
	Estacion *Estacion
	Equipo   *Equipo
}

// NewItemEstacion construye un ítem de variante estación.
func NewItemEstacion(e Estacion) ResguardableItem {
	return ResguardableItem{Kind: KindEstacion, Estacion: &e}
}

// NewItemEquipo construye un ítem de variante equipo individual.
func NewItemEquipo(e Equipo) ResguardableItem {
	return ResguardableItem{Kind: KindEquipo, Equipo: &e}
}

// ID devuelve el identificador del ítem, sea cual sea la variante.
func (i ResguardableItem) ID() string {
	switch i.Kind {
	case KindEstacion:
		if i.Estacion != nil {
			return i.Estacion.ID
		}
	case KindEquipo:
		if i.Equipo != nil {
			return i.Equipo.ID
		}
	}
	return ""
}

// Valido indica si la unión está bien formada (variante presente según Kind).
func (i ResguardableItem) Valido() bool {
	switch i.Kind {
	case KindEstacion:
		return i.Estacion != nil
	case KindEquipo:
		return i.Equipo != nil
	}
	return false
}
