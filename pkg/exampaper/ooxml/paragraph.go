package ooxml

import (
	"encoding/xml"
	"strings"
)

// Paragraph represents a paragraph appended to the document body.
type Paragraph struct {
	Runs []Run
}

// isBodyElement implements the BodyElement interface
func (p Paragraph) isBodyElement() {}

// NewTextParagraph builds a paragraph holding a single text run.
func NewTextParagraph(text string) *Paragraph {
	return &Paragraph{Runs: []Run{{Text: &Text{Content: text}}}}
}

// MarshalXML implements custom XML marshaling for Paragraph to ensure proper namespacing
func (p Paragraph) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:p"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	for _, run := range p.Runs {
		if err := e.EncodeElement(&run, xml.StartElement{Name: xml.Name{Local: "w:r"}}); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// GetText returns the concatenated text of all runs in the paragraph.
func (p *Paragraph) GetText() string {
	var texts []string
	for _, run := range p.Runs {
		if run.Text != nil {
			texts = append(texts, run.Text.Content)
		}
	}
	return strings.Join(texts, "")
}

// Run represents a run inside a paragraph. Exactly one of Text, Break or
// Drawing is expected to be set.
type Run struct {
	Text    *Text
	Break   *Break
	Drawing *Drawing
}

// MarshalXML implements custom XML marshaling for Run to ensure proper namespacing
func (r Run) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:r"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if r.Text != nil {
		if err := e.EncodeElement(r.Text, xml.StartElement{Name: xml.Name{Local: "w:t"}}); err != nil {
			return err
		}
	}
	if r.Break != nil {
		if err := e.EncodeElement(r.Break, xml.StartElement{Name: xml.Name{Local: "w:br"}}); err != nil {
			return err
		}
	}
	if r.Drawing != nil {
		if err := e.EncodeElement(r.Drawing, xml.StartElement{Name: xml.Name{Local: "w:drawing"}}); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// Text represents the literal text content of a run.
type Text struct {
	Content string
}

// MarshalXML emits w:t, adding xml:space="preserve" whenever the content
// carries leading or trailing whitespace (a single-space table cell must
// survive the round trip through Word).
func (t Text) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:t"}
	if t.Content != strings.TrimSpace(t.Content) {
		start.Attr = []xml.Attr{
			{Name: xml.Name{Local: "xml:space"}, Value: "preserve"},
		}
	}
	return e.EncodeElement(t.Content, start)
}

// Break represents a line break within a run.
type Break struct{}

// MarshalXML implements custom XML marshaling for Break
func (b Break) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:br"}
	return e.EncodeElement(struct{}{}, start)
}
