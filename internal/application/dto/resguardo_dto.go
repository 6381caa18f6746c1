package dto

import (
	"time"

	"github.com/hraei-ti/inventario-api/internal/domain/resguardo"
)

// GenerateResguardoRequest cuerpo de las rutas de generación de resguardos.
// El cliente envía los datos ya poblados del activo y el tipo de resguardo.
type GenerateResguardoRequest struct {
	ItemData      *ItemDataPayload `json:"itemData"`
	ResguardoType string           `json:"resguardoType"`
}

// ComponentePayload CPU o monitor dentro de una estación.
type ComponentePayload struct {
	ID      string `json:"id"`
	Marca   string `json:"marca"`
	Modelo  string `json:"modelo"`
	NoSerie string `json:"noSerie"`
}

// ItemDataPayload activo resguardable tal como lo envía el cliente.
// Una estación trae cpu y monitor; un equipo individual trae sus
// propios campos de marca/modelo/serie.
type ItemDataPayload struct {
	ID          string             `json:"id"`
	Tipo        string             `json:"tipo"`
	Marca       string             `json:"marca"`
	Modelo      string             `json:"modelo"`
	NoSerie     string             `json:"noSerie"`
	Estado      string             `json:"estado"`
	Responsable string             `json:"responsable"`
	Ubicacion   string             `json:"ubicacion"`
	Servicio    string             `json:"servicio"`
	Accesorios  []string           `json:"accesorios"`
	CPU         *ComponentePayload `json:"cpu"`
	Monitor     *ComponentePayload `json:"monitor"`
}

// ToItem discrimina el payload: si trae cpu Y monitor es una estación,
// en cualquier otro caso se trata como equipo individual.
func (p *ItemDataPayload) ToItem() resguardo.ResguardableItem {
	if p.CPU != nil && p.Monitor != nil {
		return resguardo.NewItemEstacion(resguardo.Estacion{
			ID: p.ID,
			CPU: resguardo.Equipo{
				ID:      p.CPU.ID,
				Marca:   p.CPU.Marca,
				Modelo:  p.CPU.Modelo,
				NoSerie: p.CPU.NoSerie,
			},
			Monitor: resguardo.Equipo{
				ID:      p.Monitor.ID,
				Marca:   p.Monitor.Marca,
				Modelo:  p.Monitor.Modelo,
				NoSerie: p.Monitor.NoSerie,
			},
			Estado:      p.Estado,
			Responsable: p.Responsable,
			Ubicacion:   p.Ubicacion,
			Servicio:    p.Servicio,
			Accesorios:  p.Accesorios,
		})
	}
	return resguardo.NewItemEquipo(resguardo.Equipo{
		ID:          p.ID,
		Tipo:        p.Tipo,
		Marca:       p.Marca,
		Modelo:      p.Modelo,
		NoSerie:     p.NoSerie,
		Estado:      p.Estado,
		Responsable: p.Responsable,
		Ubicacion:   p.Ubicacion,
		Servicio:    p.Servicio,
	})
}

// CreateResguardoRequest registra un resguardo emitido sobre un activo.
type CreateResguardoRequest struct {
	EquipmentID   *string `json:"equipment_id"`
	StationID     *string `json:"station_id"`
	ResguardoType string  `json:"resguardo_type" validate:"required,min=1,max=100"`
	DocumentURL   string  `json:"document_url"`
}

// SignResguardoRequest marca un resguardo como firmado o no.
type SignResguardoRequest struct {
	Signed bool `json:"signed"`
}

// ResguardoResponse salida de un registro de resguardo.
type ResguardoResponse struct {
	ID            string    `json:"id"`
	EquipmentID   *string   `json:"equipment_id,omitempty"`
	StationID     *string   `json:"station_id,omitempty"`
	ResguardoType string    `json:"resguardo_type"`
	GeneratedByID string    `json:"generated_by_id"`
	IsSigned      bool      `json:"is_signed"`
	DocumentURL   string    `json:"document_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ResguardoListResponse lista paginada de resguardos.
type ResguardoListResponse struct {
	Items []ResguardoResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
