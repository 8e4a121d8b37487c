package exampaper

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const imageRelationshipType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"

// Template is a read-only view of an uploaded DOCX template package. The
// assembler clones it into a fresh output package on every request; the
// template itself is never mutated.
type Template struct {
	source []byte
	parts  map[string]*zip.File
}

// Relationship represents a relationship in the DOCX package
type Relationship struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr,omitempty"`
}

// Relationships represents the collection of relationships
type Relationships struct {
	XMLName      xml.Name       `xml:"Relationships"`
	Namespace    string         `xml:"xmlns,attr"`
	Relationship []Relationship `xml:"Relationship"`
}

// OpenTemplate parses template bytes as a DOCX package. Nil or empty input
// yields a TemplateMissingError; anything that is not a zip containing
// word/document.xml yields a TemplateInvalidError.
func OpenTemplate(data []byte) (*Template, error) {
	if len(data) == 0 {
		return nil, &TemplateMissingError{}
	}

	zipReader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &TemplateInvalidError{Cause: err}
	}

	tpl := &Template{
		source: data,
		parts:  make(map[string]*zip.File),
	}
	for _, file := range zipReader.File {
		tpl.parts[file.Name] = file
	}

	if _, ok := tpl.parts["word/document.xml"]; !ok {
		return nil, &TemplateInvalidError{Cause: fmt.Errorf("missing word/document.xml")}
	}

	return tpl, nil
}

// OpenTemplateFile loads a template from a file path.
func OpenTemplateFile(path string) (*Template, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template file: %w", err)
	}
	return OpenTemplate(content)
}

// DocumentXML retrieves the content of word/document.xml.
func (t *Template) DocumentXML() (string, error) {
	content, err := t.Part("word/document.xml")
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// Part retrieves the raw content of a named package part.
func (t *Template) Part(name string) ([]byte, error) {
	file, ok := t.parts[name]
	if !ok {
		return nil, fmt.Errorf("part %s not found", name)
	}

	rc, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open part %s: %w", name, err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read part %s: %w", name, err)
	}
	return content, nil
}

// HasPart reports whether the package contains the named part.
func (t *Template) HasPart(name string) bool {
	_, ok := t.parts[name]
	return ok
}

// Relationships retrieves the main document relationships. A template
// without a relationships part yields an empty collection, not an error.
func (t *Template) Relationships() ([]Relationship, error) {
	if !t.HasPart("word/_rels/document.xml.rels") {
		return []Relationship{}, nil
	}

	content, err := t.Part("word/_rels/document.xml.rels")
	if err != nil {
		return nil, err
	}

	var rels Relationships
	if err := xml.Unmarshal(content, &rels); err != nil {
		return nil, fmt.Errorf("failed to parse relationships: %w", err)
	}
	return rels.Relationship, nil
}

// addImageRelationship appends a new image relationship and returns its ID.
func addImageRelationship(rels *[]Relationship, target string) string {
	newID := nextRelationshipID(*rels)
	*rels = append(*rels, Relationship{
		ID:     newID,
		Type:   imageRelationshipType,
		Target: target,
	})
	return newID
}

// nextRelationshipID generates the next available relationship ID.
func nextRelationshipID(rels []Relationship) string {
	maxID := 0
	for _, rel := range rels {
		if strings.HasPrefix(rel.ID, "rId") {
			if id, err := strconv.Atoi(rel.ID[3:]); err == nil && id > maxID {
				maxID = id
			}
		}
	}
	return fmt.Sprintf("rId%d", maxID+1)
}
