package exampaper

const (
	// OutputFilename is the fixed delivery filename for generated papers.
	OutputFilename = "question_paper.docx"

	// OutputContentType identifies the DOCX package format.
	OutputContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Generate is the one-call convenience path: parse the template bytes and
// assemble the question sequence into a finished paper.
func Generate(templateData []byte, questions []Question, opts ...Option) ([]byte, error) {
	tpl, err := OpenTemplate(templateData)
	if err != nil {
		return nil, err
	}
	return NewAssembler(opts...).Assemble(tpl, questions)
}
