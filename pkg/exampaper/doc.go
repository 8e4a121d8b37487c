// Package exampaper assembles an exam-style DOCX document from an ordered
// list of question entries and a pre-existing document template.
//
// The template is treated as an opaque DOCX package: its document body is
// never re-parsed or re-marshaled, only extended by splicing rendered
// question blocks in front of the closing section properties. Four question
// variants are supported (text, image, match-the-following, answer table);
// answer tables get explicit per-cell borders because the default table
// styling does not draw any.
//
// Basic usage:
//
//	tplBytes, _ := os.ReadFile("template.docx")
//	store := exampaper.NewStore()
//	store.Append(exampaper.TextQuestion{Content: "What is 2+2?"})
//
//	out, err := exampaper.Generate(tplBytes, store.Snapshot())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile(exampaper.OutputFilename, out, 0o644)
package exampaper
