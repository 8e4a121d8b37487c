package ooxml

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// MarshalBlocks serializes an ordered list of body elements into the
// w:-prefixed XML fragment that gets spliced into a document body.
func MarshalBlocks(blocks []BodyElement) ([]byte, error) {
	var buf bytes.Buffer
	encoder := xml.NewEncoder(&buf)

	for _, block := range blocks {
		switch el := block.(type) {
		case *Paragraph:
			if err := encoder.EncodeElement(el, xml.StartElement{Name: xml.Name{Local: "w:p"}}); err != nil {
				return nil, fmt.Errorf("failed to marshal paragraph: %w", err)
			}
		case *Table:
			if err := encoder.EncodeElement(el, xml.StartElement{Name: xml.Name{Local: "w:tbl"}}); err != nil {
				return nil, fmt.Errorf("failed to marshal table: %w", err)
			}
		default:
			return nil, fmt.Errorf("unsupported body element %T", block)
		}
	}

	if err := encoder.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
