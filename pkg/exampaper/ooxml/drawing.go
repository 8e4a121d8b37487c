package ooxml

import (
	"encoding/xml"
	"fmt"
)

// EMUsPerInch is the number of English Metric Units per inch, the unit
// WordprocessingML uses for drawing extents.
const EMUsPerInch = 914400

const (
	nsWordprocessingDrawing = "http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"
	nsDrawingML             = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsPicture               = "http://schemas.openxmlformats.org/drawingml/2006/picture"
	nsRelationships         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

// Drawing represents an inline embedded picture. The image bytes live in a
// word/media part referenced through RelID; the drawing only carries the
// display extents in EMUs.
type Drawing struct {
	RelID     string
	DocPrID   int
	Name      string
	WidthEMU  int64
	HeightEMU int64
}

// isBodyElement is intentionally not implemented: drawings always live
// inside a run, never directly in the body.

// MarshalXML emits the full wp:inline tree for the picture. The wp:, a: and
// pic: namespaces are declared inline on the elements that introduce them,
// so the fragment stays valid regardless of which namespaces the template's
// root element declares.
func (d Drawing) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	attr := func(name, value string) xml.Attr {
		return xml.Attr{Name: xml.Name{Local: name}, Value: value}
	}
	open := func(name string, attrs ...xml.Attr) error {
		return e.EncodeToken(xml.StartElement{Name: xml.Name{Local: name}, Attr: attrs})
	}
	closeEl := func(name string) error {
		return e.EncodeToken(xml.EndElement{Name: xml.Name{Local: name}})
	}
	empty := func(name string, attrs ...xml.Attr) error {
		if err := open(name, attrs...); err != nil {
			return err
		}
		return closeEl(name)
	}

	cx := fmt.Sprintf("%d", d.WidthEMU)
	cy := fmt.Sprintf("%d", d.HeightEMU)
	id := fmt.Sprintf("%d", d.DocPrID)

	if err := open("w:drawing"); err != nil {
		return err
	}
	if err := open("wp:inline",
		attr("xmlns:wp", nsWordprocessingDrawing),
		attr("distT", "0"), attr("distB", "0"), attr("distL", "0"), attr("distR", "0"),
	); err != nil {
		return err
	}

	if err := empty("wp:extent", attr("cx", cx), attr("cy", cy)); err != nil {
		return err
	}
	if err := empty("wp:effectExtent", attr("l", "0"), attr("t", "0"), attr("r", "0"), attr("b", "0")); err != nil {
		return err
	}
	if err := empty("wp:docPr", attr("id", id), attr("name", d.Name)); err != nil {
		return err
	}
	if err := open("wp:cNvGraphicFramePr"); err != nil {
		return err
	}
	if err := empty("a:graphicFrameLocks", attr("xmlns:a", nsDrawingML), attr("noChangeAspect", "1")); err != nil {
		return err
	}
	if err := closeEl("wp:cNvGraphicFramePr"); err != nil {
		return err
	}

	if err := open("a:graphic", attr("xmlns:a", nsDrawingML)); err != nil {
		return err
	}
	if err := open("a:graphicData", attr("uri", nsPicture)); err != nil {
		return err
	}
	if err := open("pic:pic", attr("xmlns:pic", nsPicture)); err != nil {
		return err
	}

	if err := open("pic:nvPicPr"); err != nil {
		return err
	}
	if err := empty("pic:cNvPr", attr("id", id), attr("name", d.Name)); err != nil {
		return err
	}
	if err := empty("pic:cNvPicPr"); err != nil {
		return err
	}
	if err := closeEl("pic:nvPicPr"); err != nil {
		return err
	}

	if err := open("pic:blipFill"); err != nil {
		return err
	}
	if err := empty("a:blip", attr("xmlns:r", nsRelationships), attr("r:embed", d.RelID)); err != nil {
		return err
	}
	if err := open("a:stretch"); err != nil {
		return err
	}
	if err := empty("a:fillRect"); err != nil {
		return err
	}
	if err := closeEl("a:stretch"); err != nil {
		return err
	}
	if err := closeEl("pic:blipFill"); err != nil {
		return err
	}

	if err := open("pic:spPr"); err != nil {
		return err
	}
	if err := open("a:xfrm"); err != nil {
		return err
	}
	if err := empty("a:off", attr("x", "0"), attr("y", "0")); err != nil {
		return err
	}
	if err := empty("a:ext", attr("cx", cx), attr("cy", cy)); err != nil {
		return err
	}
	if err := closeEl("a:xfrm"); err != nil {
		return err
	}
	if err := open("a:prstGeom", attr("prst", "rect")); err != nil {
		return err
	}
	if err := empty("a:avLst"); err != nil {
		return err
	}
	if err := closeEl("a:prstGeom"); err != nil {
		return err
	}
	if err := closeEl("pic:spPr"); err != nil {
		return err
	}

	if err := closeEl("pic:pic"); err != nil {
		return err
	}
	if err := closeEl("a:graphicData"); err != nil {
		return err
	}
	if err := closeEl("a:graphic"); err != nil {
		return err
	}
	if err := closeEl("wp:inline"); err != nil {
		return err
	}
	return closeEl("w:drawing")
}
