package exampaper

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/exampaper/go-exampaper/pkg/exampaper/ooxml"
)

// sectionHeader is the single heading paragraph written before the
// numbered question entries.
const sectionHeader = "Questions:"

// Assembler renders a question sequence into a template-derived output
// document. One Assembler can serve many requests; each Assemble call
// builds an independent output package.
type Assembler struct {
	log           zerolog.Logger
	imageWidthEMU int64
}

// Option represents a configuration option for the assembler.
type Option func(*Assembler)

// WithLogger attaches a structured logger; the default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(a *Assembler) {
		a.log = log
	}
}

// WithImageWidthEMU overrides the fixed display width used for embedded
// images (default 4 inches).
func WithImageWidthEMU(width int64) Option {
	return func(a *Assembler) {
		a.imageWidthEMU = width
	}
}

// NewAssembler creates an assembler with the given options applied.
func NewAssembler(opts ...Option) *Assembler {
	a := &Assembler{
		log:           zerolog.Nop(),
		imageWidthEMU: defaultImageWidthEMU,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble appends the rendered question sequence to the template and
// returns the finished DOCX bytes. Template content is preserved verbatim;
// rendered blocks are spliced in front of the body's closing section
// properties. Any failure aborts the whole assembly: no partial output is
// ever returned.
func (a *Assembler) Assemble(tpl *Template, questions []Question) ([]byte, error) {
	if tpl == nil {
		return nil, &TemplateMissingError{}
	}
	if len(questions) == 0 {
		return nil, &EmptyQuestionSetError{}
	}

	docXML, err := tpl.DocumentXML()
	if err != nil {
		return nil, &TemplateInvalidError{Cause: err}
	}
	rels, err := tpl.Relationships()
	if err != nil {
		return nil, &TemplateInvalidError{Cause: err}
	}

	blocks := []ooxml.BodyElement{ooxml.NewTextParagraph(sectionHeader)}
	var media []mediaPart

	for i, q := range questions {
		number := i + 1

		switch q := q.(type) {
		case TextQuestion:
			blocks = append(blocks, ooxml.NewTextParagraph(fmt.Sprintf("%d. %s", number, q.Content)))

		case ImageQuestion:
			blocks = append(blocks, ooxml.NewTextParagraph(fmt.Sprintf("%d.", number)))

			part, cx, cy, err := inspectImage(q.Data, len(media)+1, a.imageWidthEMU)
			if err != nil {
				return nil, &ImageDecodeError{Number: number, Cause: err}
			}
			// Templates may already carry media parts; never shadow one.
			for i := len(media) + 2; mediaNameTaken(tpl, media, part.Name); i++ {
				part.Name = mediaPartName(i, part.Extension)
			}
			relID := addImageRelationship(&rels, strings.TrimPrefix(part.Name, "word/"))
			media = append(media, part)

			blocks = append(blocks, &ooxml.Paragraph{Runs: []ooxml.Run{{
				Drawing: &ooxml.Drawing{
					RelID:     relID,
					DocPrID:   len(media),
					Name:      fmt.Sprintf("Picture %d", len(media)),
					WidthEMU:  cx,
					HeightEMU: cy,
				},
			}}})

			if q.Caption != "" {
				blocks = append(blocks, ooxml.NewTextParagraph(q.Caption))
			}

		case MatchQuestion:
			blocks = append(blocks, ooxml.NewTextParagraph(fmt.Sprintf("%d. Match the Following:", number)))
			// No border enforcement on match tables.
			blocks = append(blocks, buildMatchTable(q.Left, q.Right))

		case TableQuestion:
			blocks = append(blocks, ooxml.NewTextParagraph(fmt.Sprintf("%d.", number)))
			tbl := buildAnswerTable(q.Rows, q.Cols, q.Cells)
			SetTableBorders(tbl)
			blocks = append(blocks, tbl)

		default:
			return nil, fmt.Errorf("unsupported question variant %T", q)
		}

		// Separator paragraph after every entry.
		blocks = append(blocks, &ooxml.Paragraph{})
	}

	fragment, err := ooxml.MarshalBlocks(blocks)
	if err != nil {
		return nil, fmt.Errorf("failed to render question blocks: %w", err)
	}

	spliced, err := spliceIntoBody(docXML, fragment)
	if err != nil {
		return nil, &TemplateInvalidError{Cause: err}
	}

	out, err := writePackage(tpl, []byte(spliced), rels, media)
	if err != nil {
		return nil, err
	}

	a.log.Info().
		Int("questions", len(questions)).
		Int("images", len(media)).
		Int("bytes", len(out)).
		Msg("question paper assembled")

	return out, nil
}

// spliceIntoBody inserts the rendered fragment at the end of the document
// body, in front of the body-level section properties so page setup stays
// last, as Word requires.
func spliceIntoBody(docXML string, fragment []byte) (string, error) {
	idx := strings.LastIndex(docXML, "<w:sectPr")
	if idx == -1 {
		idx = strings.LastIndex(docXML, "</w:body>")
	}
	if idx == -1 {
		return "", fmt.Errorf("document body has no insertion point")
	}

	var sb strings.Builder
	sb.Grow(len(docXML) + len(fragment))
	sb.WriteString(docXML[:idx])
	sb.Write(fragment)
	sb.WriteString(docXML[idx:])
	return sb.String(), nil
}
