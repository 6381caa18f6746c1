package generation

import (
	"context"

	"github.com/hraei-ti/inventario-api/internal/domain/resguardo"
)

// PDFGenerator puerto hacia el generador de PDF (implementado con Maroto).
type PDFGenerator interface {
	GenerateResguardoPDF(ctx context.Context, item resguardo.ResguardableItem, tipoResguardo string) ([]byte, error)
}

// DocxFiller puerto hacia el rellenador de plantillas Word.
type DocxFiller interface {
	Fill(campos map[string]string) ([]byte, error)
}
