// Package docx rellena plantillas de Word (.docx) sustituyendo marcadores
// {clave} por valores. Un .docx es un ZIP con XML dentro; se reescribe el
// archivo completo conservando todas las partes que no se tocan.
package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beevik/etree"
)

// partes del paquete donde pueden aparecer marcadores.
func isTextPart(name string) bool {
	if name == "word/document.xml" {
		return true
	}
	if strings.HasPrefix(name, "word/header") && strings.HasSuffix(name, ".xml") {
		return true
	}
	if strings.HasPrefix(name, "word/footer") && strings.HasSuffix(name, ".xml") {
		return true
	}
	return false
}

// TemplateFiller rellena una plantilla .docx fija del disco.
type TemplateFiller struct {
	path string
}

// NewTemplateFiller construye el filler apuntando a la plantilla.
func NewTemplateFiller(path string) *TemplateFiller {
	return &TemplateFiller{path: path}
}

// Fill lee la plantilla y devuelve los bytes del .docx con los marcadores
// {clave} sustituidos por los valores del mapa. Marcadores sin valor en el
// mapa se dejan intactos.
func (f *TemplateFiller) Fill(campos map[string]string) ([]byte, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("docx: leer plantilla %s: %w", f.path, err)
	}
	return FillBytes(raw, campos)
}

// FillBytes sustituye marcadores en un .docx ya cargado en memoria.
func FillBytes(raw []byte, campos map[string]string) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return nil, fmt.Errorf("docx: abrir paquete: %w", err)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, file := range zr.File {
		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("docx: abrir parte %s: %w", file.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("docx: leer parte %s: %w", file.Name, err)
		}

		if isTextPart(file.Name) {
			content, err = replacePlaceholders(content, campos)
			if err != nil {
				return nil, fmt.Errorf("docx: sustituir en %s: %w", file.Name, err)
			}
		}

		fw, err := zw.Create(file.Name)
		if err != nil {
			return nil, fmt.Errorf("docx: crear parte %s: %w", file.Name, err)
		}
		if _, err := fw.Write(content); err != nil {
			return nil, fmt.Errorf("docx: escribir parte %s: %w", file.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("docx: cerrar paquete: %w", err)
	}
	return buf.Bytes(), nil
}

// replacePlaceholders parsea la parte XML y sustituye {clave} en cada nodo de
// texto. Se trabaja sobre el árbol (no sobre el string crudo) para no romper
// el escape XML de los valores.
func replacePlaceholders(xmlContent []byte, campos map[string]string) ([]byte, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(xmlContent); err != nil {
		return nil, fmt.Errorf("parsear XML: %w", err)
	}
	replaceInElement(doc.Root(), campos)
	return doc.WriteToBytes()
}

func replaceInElement(el *etree.Element, campos map[string]string) {
	if el == nil {
		return
	}
	for _, child := range el.Child {
		switch node := child.(type) {
		case *etree.CharData:
			if strings.Contains(node.Data, "{") {
				node.Data = replaceTokens(node.Data, campos)
			}
		case *etree.Element:
			replaceInElement(node, campos)
		}
	}
}

func replaceTokens(s string, campos map[string]string) string {
	for key, value := range campos {
		s = strings.ReplaceAll(s, "{"+key+"}", value)
	}
	return s
}
