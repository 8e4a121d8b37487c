package exampaper

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

const relationshipsNamespace = "http://schemas.openxmlformats.org/package/2006/relationships"

// writePackage builds the output DOCX: every part of the template package
// is copied through unchanged except word/document.xml (replaced with the
// spliced body) and, when images were embedded, the main relationships part
// and [Content_Types].xml. New media lands under word/media/.
func writePackage(tpl *Template, documentXML []byte, rels []Relationship, media []mediaPart) ([]byte, error) {
	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)

	zipReader, err := zip.NewReader(bytes.NewReader(tpl.source), int64(len(tpl.source)))
	if err != nil {
		return nil, fmt.Errorf("failed to read template zip: %w", err)
	}

	relsWritten := false
	for _, file := range zipReader.File {
		switch {
		case file.Name == "word/document.xml":
			if err := writePart(w, file.Name, documentXML); err != nil {
				return nil, err
			}

		case file.Name == "word/_rels/document.xml.rels" && len(media) > 0:
			if err := writeRelationships(w, rels); err != nil {
				return nil, err
			}
			relsWritten = true

		case file.Name == "[Content_Types].xml" && len(media) > 0:
			content, err := readZipFile(file)
			if err != nil {
				return nil, err
			}
			if err := writePart(w, file.Name, ensureContentTypeDefaults(content, media)); err != nil {
				return nil, err
			}

		default:
			content, err := readZipFile(file)
			if err != nil {
				return nil, err
			}
			if err := writePart(w, file.Name, content); err != nil {
				return nil, err
			}
		}
	}

	// A template without a relationships part still needs one once images
	// reference it.
	if len(media) > 0 && !relsWritten {
		if err := writeRelationships(w, rels); err != nil {
			return nil, err
		}
	}

	for _, m := range media {
		if err := writePart(w, m.Name, m.Data); err != nil {
			return nil, err
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize output package: %w", err)
	}
	return buf.Bytes(), nil
}

func readZipFile(file *zip.File) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", file.Name, err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file.Name, err)
	}
	return content, nil
}

func writePart(w *zip.Writer, name string, content []byte) error {
	fw, err := w.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	if _, err := fw.Write(content); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

func writeRelationships(w *zip.Writer, rels []Relationship) error {
	output, err := xml.Marshal(&Relationships{
		Namespace:    relationshipsNamespace,
		Relationship: rels,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal relationships: %w", err)
	}

	fw, err := w.Create("word/_rels/document.xml.rels")
	if err != nil {
		return fmt.Errorf("failed to create relationships part: %w", err)
	}

	// XML header with standalone="yes" (required by Word)
	if _, err := fw.Write([]byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")); err != nil {
		return fmt.Errorf("failed to write relationships header: %w", err)
	}
	if _, err := fw.Write(output); err != nil {
		return fmt.Errorf("failed to write relationships part: %w", err)
	}
	return nil
}

// ensureContentTypeDefaults makes sure every embedded image extension has a
// Default entry in [Content_Types].xml so Word accepts the media parts.
func ensureContentTypeDefaults(content []byte, media []mediaPart) []byte {
	doc := string(content)
	for _, m := range media {
		marker := fmt.Sprintf(`Extension="%s"`, m.Extension)
		if strings.Contains(doc, marker) {
			continue
		}
		entry := fmt.Sprintf(`<Default Extension=%q ContentType=%q/>`, m.Extension, m.ContentType)
		doc = strings.Replace(doc, "</Types>", entry+"</Types>", 1)
	}
	return []byte(doc)
}
