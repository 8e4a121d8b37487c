// Command exampaper assembles a question paper from a DOCX template and a
// JSON question list.
//
// Usage:
//
//	exampaper -template template.docx -questions questions.json -o question_paper.docx
//
// The questions file holds a JSON array of question envelopes:
//
//	[
//	  {"type": "text", "content": "What is 2+2?"},
//	  {"type": "match", "left": ["a", "b"], "right": ["1", "2"]},
//	  {"type": "table", "rows": 2, "cols": 2, "cells": [["a", ""], ["", "d"]]},
//	  {"type": "image", "image": "<base64>", "caption": "Figure 1"}
//	]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/exampaper/go-exampaper/pkg/exampaper"
)

func main() {
	templatePath := flag.String("template", "", "path to the DOCX template")
	questionsPath := flag.String("questions", "", "path to the JSON question list")
	outputPath := flag.String("o", exampaper.OutputFilename, "output file path")
	flag.Parse()

	if *templatePath == "" || *questionsPath == "" {
		fmt.Fprintln(os.Stderr, "both -template and -questions are required")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*templatePath, *questionsPath, *outputPath); err != nil {
		fmt.Fprintf(os.Stderr, "exampaper: %v\n", err)
		os.Exit(1)
	}
}

func run(templatePath, questionsPath, outputPath string) error {
	templateData, err := os.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("failed to read template: %w", err)
	}

	questionsData, err := os.ReadFile(questionsPath)
	if err != nil {
		return fmt.Errorf("failed to read questions: %w", err)
	}

	var rawQuestions []json.RawMessage
	if err := json.Unmarshal(questionsData, &rawQuestions); err != nil {
		return fmt.Errorf("questions file is not a JSON array: %w", err)
	}

	questions := make([]exampaper.Question, 0, len(rawQuestions))
	for i, raw := range rawQuestions {
		q, err := exampaper.UnmarshalQuestion(raw)
		if err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
		questions = append(questions, q)
	}

	out, err := exampaper.Generate(templateData, questions)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Printf("wrote %s (%d questions, %d bytes)\n", outputPath, len(questions), len(out))
	return nil
}
