package exampaper

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

// A valid 1x1 transparent PNG.
const tinyPNGBase64 = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg=="

func tinyPNG(t *testing.T) []byte {
	t.Helper()
	data, err := base64.StdEncoding.DecodeString(tinyPNGBase64)
	require.NoError(t, err)
	return data
}

const testContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>`

const testRootRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>`

const testDocumentRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/></Relationships>`

const testStyles = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"></w:styles>`

// buildTestTemplate assembles a minimal but well-formed DOCX template whose
// body holds a single paragraph of bodyText followed by section properties.
func buildTestTemplate(t *testing.T, bodyText string) []byte {
	t.Helper()
	return buildTestTemplateParts(t, bodyText, nil)
}

// buildTestTemplateParts is buildTestTemplate with extra package parts.
func buildTestTemplateParts(t *testing.T, bodyText string, extra map[string][]byte) []byte {
	t.Helper()

	documentXML := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"><w:body><w:p><w:r><w:t>` + bodyText + `</w:t></w:r></w:p><w:sectPr><w:pgSz w:w="12240" w:h="15840"/></w:sectPr></w:body></w:document>`

	parts := map[string][]byte{
		"[Content_Types].xml":          []byte(testContentTypes),
		"_rels/.rels":                  []byte(testRootRels),
		"word/document.xml":            []byte(documentXML),
		"word/_rels/document.xml.rels": []byte(testDocumentRels),
		"word/styles.xml":              []byte(testStyles),
	}
	for name, content := range extra {
		parts[name] = content
	}

	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)
	for name, content := range parts {
		fw, err := zw.Create(name)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// readPart extracts one part from a generated DOCX package.
func readPart(t *testing.T, docx []byte, name string) []byte {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(docx), int64(len(docx)))
	require.NoError(t, err)
	for _, file := range zr.File {
		if file.Name != name {
			continue
		}
		rc, err := file.Open()
		require.NoError(t, err)
		defer rc.Close()
		var out bytes.Buffer
		_, err = out.ReadFrom(rc)
		require.NoError(t, err)
		return out.Bytes()
	}
	t.Fatalf("part %s not found in output package", name)
	return nil
}

func hasPart(t *testing.T, docx []byte, name string) bool {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(docx), int64(len(docx)))
	require.NoError(t, err)
	for _, file := range zr.File {
		if file.Name == name {
			return true
		}
	}
	return false
}
