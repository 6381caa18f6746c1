package dto

// CatalogEntryResponse entrada de un catálogo (tipos o estados de equipo).
type CatalogEntryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CatalogListResponse listas de catálogo (sin paginar: son decenas de filas).
type CatalogListResponse struct {
	Items []CatalogEntryResponse `json:"items"`
}
