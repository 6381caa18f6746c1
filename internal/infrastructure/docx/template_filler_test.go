package docx_test

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hraei-ti/inventario-api/internal/infrastructure/docx"
)

const documentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Responsable: {responsableNombre}</w:t></w:r></w:p>
    <w:p><w:r><w:t>Equipo {equipoMarca} {equipoModelo}</w:t></w:r></w:p>
    <w:p><w:r><w:t>Sin marcador</w:t></w:r></w:p>
    <w:p><w:r><w:t>{marcadorDesconocido}</w:t></w:r></w:p>
  </w:body>
</w:document>`

// construye un .docx mínimo en memoria.
func docxDePrueba(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range map[string]string{
		"[Content_Types].xml": `<?xml version="1.0"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`,
		"word/document.xml":   documentXML,
		"word/styles.xml":     `<?xml version="1.0"?><w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"/>`,
	} {
		fw, err := zw.Create(name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func leerParte(t *testing.T, docxBytes []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(docxBytes), int64(len(docxBytes)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			require.NoError(t, err)
			defer rc.Close()
			content, err := io.ReadAll(rc)
			require.NoError(t, err)
			return string(content)
		}
	}
	t.Fatalf("parte %s no encontrada", name)
	return ""
}

func TestFillBytes_SustituyeMarcadores(t *testing.T) {
	out, err := docx.FillBytes(docxDePrueba(t), map[string]string{
		"responsableNombre": "Dra. Pérez",
		"equipoMarca":       "Dell",
		"equipoModelo":      "OptiPlex 7090",
	})
	require.NoError(t, err)

	doc := leerParte(t, out, "word/document.xml")
	assert.Contains(t, doc, "Responsable: Dra. Pérez")
	assert.Contains(t, doc, "Equipo Dell OptiPlex 7090")
	assert.NotContains(t, doc, "{responsableNombre}")
}

func TestFillBytes_MarcadorSinValorQuedaIntacto(t *testing.T) {
	out, err := docx.FillBytes(docxDePrueba(t), map[string]string{"equipoMarca": "HP"})
	require.NoError(t, err)

	doc := leerParte(t, out, "word/document.xml")
	assert.Contains(t, doc, "{marcadorDesconocido}", "marcadores sin valor no se tocan")
	assert.Contains(t, doc, "{responsableNombre}")
}

func TestFillBytes_ValoresConCaracteresXML(t *testing.T) {
	out, err := docx.FillBytes(docxDePrueba(t), map[string]string{
		"responsableNombre": "Gómez & Asociados <TI>",
	})
	require.NoError(t, err)

	doc := leerParte(t, out, "word/document.xml")
	assert.Contains(t, doc, "Gómez &amp; Asociados &lt;TI&gt;", "los valores deben escaparse como XML")
}

func TestFillBytes_ConservaOtrasPartes(t *testing.T) {
	out, err := docx.FillBytes(docxDePrueba(t), map[string]string{"equipoMarca": "HP"})
	require.NoError(t, err)

	styles := leerParte(t, out, "word/styles.xml")
	assert.Contains(t, styles, "w:styles")
	assert.NotEmpty(t, leerParte(t, out, "[Content_Types].xml"))
}

func TestFillBytes_PaqueteInvalido(t *testing.T) {
	_, err := docx.FillBytes([]byte("esto no es un zip"), map[string]string{"a": "b"})
	assert.Error(t, err)
}
