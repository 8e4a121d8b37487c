// Package ooxml provides a minimal, marshal-only model of the
// WordprocessingML elements the paper assembler appends to a document:
// paragraphs, runs, tables and inline drawings.
//
// Every element carries an explicit "w:" (or "wp:"/"a:"/"pic:") prefixed
// name in its MarshalXML implementation, so the serialized fragment can be
// spliced directly into a template's word/document.xml without a namespace
// fix-up pass. The package deliberately does not unmarshal: template content
// is never parsed, only preserved byte-for-byte.
package ooxml
