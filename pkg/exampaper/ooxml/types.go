package ooxml

// BodyElement represents any element that can appear in a document body.
type BodyElement interface {
	isBodyElement()
}

// Style represents a style reference (pStyle, tblStyle, ...).
type Style struct {
	Val string
}
