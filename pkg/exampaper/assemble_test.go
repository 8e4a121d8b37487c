package exampaper

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleRequiresTemplate(t *testing.T) {
	out, err := NewAssembler().Assemble(nil, []Question{TextQuestion{Content: "q"}})
	require.Error(t, err)
	assert.True(t, IsTemplateMissing(err))
	assert.Nil(t, out)
}

func TestAssembleRequiresQuestions(t *testing.T) {
	tpl, err := OpenTemplate(buildTestTemplate(t, "Sunrise Public School"))
	require.NoError(t, err)

	out, err := NewAssembler().Assemble(tpl, nil)
	require.Error(t, err)
	assert.True(t, IsEmptyQuestionSet(err))
	assert.Nil(t, out)
}

func TestOpenTemplateRejectsBadInput(t *testing.T) {
	_, err := OpenTemplate(nil)
	assert.True(t, IsTemplateMissing(err))

	_, err = OpenTemplate([]byte("not a zip archive"))
	assert.True(t, IsTemplateInvalid(err))
}

func TestAssembleTextAndTable(t *testing.T) {
	tpl, err := OpenTemplate(buildTestTemplate(t, "Sunrise Public School"))
	require.NoError(t, err)

	out, err := NewAssembler().Assemble(tpl, []Question{
		TextQuestion{Content: "What is 2+2?"},
		TableQuestion{Rows: 2, Cols: 2, Cells: [][]string{{"a", ""}, {"", "d"}}},
	})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(out), "PK"), "output is a zip package")

	doc := string(readPart(t, out, "word/document.xml"))

	// Template content comes first, untouched, then the question section.
	bodyIdx := strings.Index(doc, "Sunrise Public School")
	headerIdx := strings.Index(doc, ">Questions:<")
	require.NotEqual(t, -1, bodyIdx)
	require.NotEqual(t, -1, headerIdx)
	assert.Less(t, bodyIdx, headerIdx)

	assert.Contains(t, doc, "1. What is 2+2?")
	assert.Contains(t, doc, "<w:t>2.</w:t>")

	// 2x2 answer grid: four cells, each with a full border set, blanks
	// rendered as a preserved single space.
	assert.Equal(t, 4, strings.Count(doc, "<w:tc>"))
	assert.Equal(t, 4, strings.Count(doc, "<w:tcBorders>"))
	assert.Equal(t, 2, strings.Count(doc, `<w:t xml:space="preserve"> </w:t>`))

	// Section properties stay last in the body.
	assert.Less(t, strings.Index(doc, "2+2"), strings.Index(doc, "<w:sectPr"))
	assert.Less(t, strings.Index(doc, "<w:tbl>"), strings.Index(doc, "<w:sectPr"))

	// One separator paragraph per question.
	assert.Equal(t, 2, strings.Count(doc, "<w:p></w:p>"))
}

func TestAssembleNumbersAcrossVariants(t *testing.T) {
	tpl, err := OpenTemplate(buildTestTemplate(t, "body"))
	require.NoError(t, err)

	out, err := NewAssembler().Assemble(tpl, []Question{
		TextQuestion{Content: "first"},
		MatchQuestion{Left: []string{"a"}, Right: []string{"b"}},
		TableQuestion{Rows: 1, Cols: 1},
		TextQuestion{Content: "last"},
	})
	require.NoError(t, err)

	doc := string(readPart(t, out, "word/document.xml"))
	assert.Contains(t, doc, "1. first")
	assert.Contains(t, doc, "2. Match the Following:")
	assert.Contains(t, doc, "<w:t>3.</w:t>")
	assert.Contains(t, doc, "4. last")
}

func TestAssembleMatchTableHasNoBorders(t *testing.T) {
	tpl, err := OpenTemplate(buildTestTemplate(t, "body"))
	require.NoError(t, err)

	out, err := NewAssembler().Assemble(tpl, []Question{
		MatchQuestion{Left: []string{"India", "France"}, Right: []string{"Delhi", "Paris"}},
	})
	require.NoError(t, err)

	doc := string(readPart(t, out, "word/document.xml"))
	assert.NotContains(t, doc, "w:tcBorders")
	assert.Equal(t, 2, strings.Count(doc, "[   ]"))
}

func TestAssembleEmbedsImage(t *testing.T) {
	tpl, err := OpenTemplate(buildTestTemplate(t, "body"))
	require.NoError(t, err)

	png := tinyPNG(t)
	out, err := NewAssembler().Assemble(tpl, []Question{
		ImageQuestion{Data: png, Caption: "Figure 1"},
	})
	require.NoError(t, err)

	assert.Equal(t, png, readPart(t, out, "word/media/question_image1.png"))

	doc := string(readPart(t, out, "word/document.xml"))
	// 1x1 source at a fixed 4 inch width keeps the square aspect.
	assert.Contains(t, doc, `<wp:extent cx="3657600" cy="3657600">`)
	assert.Contains(t, doc, `r:embed="rId2"`)
	assert.Contains(t, doc, "<w:t>Figure 1</w:t>")

	rels := string(readPart(t, out, "word/_rels/document.xml.rels"))
	assert.Contains(t, rels, `Id="rId2"`)
	assert.Contains(t, rels, `Target="media/question_image1.png"`)
	// The template's own relationships survive the rewrite.
	assert.Contains(t, rels, `Target="styles.xml"`)

	contentTypes := string(readPart(t, out, "[Content_Types].xml"))
	assert.Contains(t, contentTypes, `Extension="png"`)
}

func TestAssembleImageNameAvoidsTemplateMedia(t *testing.T) {
	existing := []byte("pre-existing template image")
	tpl, err := OpenTemplate(buildTestTemplateParts(t, "body", map[string][]byte{
		"word/media/question_image1.png": existing,
	}))
	require.NoError(t, err)

	png := tinyPNG(t)
	out, err := NewAssembler().Assemble(tpl, []Question{
		ImageQuestion{Data: png},
		ImageQuestion{Data: png},
	})
	require.NoError(t, err)

	// The template's own media part survives untouched; embedded images
	// land under the next free names, never colliding with the template
	// or with each other.
	assert.Equal(t, existing, readPart(t, out, "word/media/question_image1.png"))
	assert.Equal(t, png, readPart(t, out, "word/media/question_image2.png"))
	assert.Equal(t, png, readPart(t, out, "word/media/question_image3.png"))

	rels := string(readPart(t, out, "word/_rels/document.xml.rels"))
	assert.Contains(t, rels, `Target="media/question_image2.png"`)
	assert.Contains(t, rels, `Target="media/question_image3.png"`)
	assert.NotContains(t, rels, `Target="media/question_image1.png"`)
}

func TestAssembleMatchNeverEmitsRowlessTable(t *testing.T) {
	tpl, err := OpenTemplate(buildTestTemplate(t, "body"))
	require.NoError(t, err)

	out, err := NewAssembler().Assemble(tpl, []Question{MatchQuestion{}})
	require.NoError(t, err)

	doc := string(readPart(t, out, "word/document.xml"))
	assert.Equal(t, 1, strings.Count(doc, "<w:tbl>"))
	assert.GreaterOrEqual(t, strings.Count(doc, "<w:tr>"), 1)
}

func TestAssembleImageWithoutCaption(t *testing.T) {
	tpl, err := OpenTemplate(buildTestTemplate(t, "body"))
	require.NoError(t, err)

	out, err := NewAssembler().Assemble(tpl, []Question{
		ImageQuestion{Data: tinyPNG(t)},
	})
	require.NoError(t, err)

	doc := string(readPart(t, out, "word/document.xml"))
	// Template paragraph, header, number line, drawing holder, separator.
	assert.Equal(t, 5, strings.Count(doc, "<w:p>"))
}

func TestAssembleUndecodableImageAbortsEverything(t *testing.T) {
	tpl, err := OpenTemplate(buildTestTemplate(t, "body"))
	require.NoError(t, err)

	out, err := NewAssembler().Assemble(tpl, []Question{
		TextQuestion{Content: "fine"},
		ImageQuestion{Data: []byte("not an image")},
	})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, IsImageDecode(err))

	var decodeErr *ImageDecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, 2, decodeErr.Number)
}

func TestAssemblePreservesUnrelatedParts(t *testing.T) {
	tpl, err := OpenTemplate(buildTestTemplate(t, "body"))
	require.NoError(t, err)

	out, err := NewAssembler().Assemble(tpl, []Question{TextQuestion{Content: "q"}})
	require.NoError(t, err)

	assert.True(t, hasPart(t, out, "word/styles.xml"))
	assert.Equal(t, []byte(testStyles), readPart(t, out, "word/styles.xml"))
}

func TestGenerate(t *testing.T) {
	out, err := Generate(buildTestTemplate(t, "body"), []Question{TextQuestion{Content: "q"}})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "PK"))

	_, err = Generate(nil, []Question{TextQuestion{Content: "q"}})
	assert.True(t, IsTemplateMissing(err))

	_, err = Generate([]byte("garbage"), []Question{TextQuestion{Content: "q"}})
	assert.True(t, IsTemplateInvalid(err))
}

func TestSpliceIntoBodyFallsBackToBodyClose(t *testing.T) {
	doc := `<w:document><w:body><w:p></w:p></w:body></w:document>`
	out, err := spliceIntoBody(doc, []byte("<w:tbl/>"))
	require.NoError(t, err)
	assert.Equal(t, `<w:document><w:body><w:p></w:p><w:tbl/></w:body></w:document>`, out)

	_, err = spliceIntoBody("<w:document></w:document>", []byte("x"))
	assert.Error(t, err)
}
