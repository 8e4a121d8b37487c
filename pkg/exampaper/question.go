package exampaper

import (
	"encoding/json"
	"fmt"
)

// Question is the closed set of authoring variants. The marker method keeps
// the union sealed so the assembler's type switch stays exhaustive: adding a
// variant is a compile-time-checked change.
type Question interface {
	isQuestion()
}

// TextQuestion is a single free-text question line.
type TextQuestion struct {
	Content string
}

func (TextQuestion) isQuestion() {}

// ImageQuestion embeds a picture (PNG or JPEG bytes) with an optional
// caption below it.
type ImageQuestion struct {
	Data    []byte
	Caption string
}

func (ImageQuestion) isQuestion() {}

// MatchQuestion holds the two independent item lists of a
// match-the-following question. The lists need not be equal length.
type MatchQuestion struct {
	Left  []string
	Right []string
}

func (MatchQuestion) isQuestion() {}

// TableQuestion is a rectangular answer grid. Cells always has exactly
// Rows x Cols entries; UnmarshalQuestion normalizes ragged input.
type TableQuestion struct {
	Rows  int
	Cols  int
	Cells [][]string
}

func (TableQuestion) isQuestion() {}

// questionEnvelope is the JSON wire shape shared by the CLI and the HTTP
// API. Image data travels base64-encoded (encoding/json's []byte default).
type questionEnvelope struct {
	Type    string     `json:"type"`
	Content string     `json:"content,omitempty"`
	Image   []byte     `json:"image,omitempty"`
	Caption string     `json:"caption,omitempty"`
	Left    []string   `json:"left,omitempty"`
	Right   []string   `json:"right,omitempty"`
	Rows    int        `json:"rows,omitempty"`
	Cols    int        `json:"cols,omitempty"`
	Cells   [][]string `json:"cells,omitempty"`
}

// UnmarshalQuestion decodes one JSON question envelope into its variant.
// Content is not validated beyond the structural minimum; the authoring
// surface owns correctness.
func UnmarshalQuestion(data []byte) (Question, error) {
	var env questionEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to decode question: %w", err)
	}

	switch env.Type {
	case "text":
		return TextQuestion{Content: env.Content}, nil
	case "image":
		if len(env.Image) == 0 {
			return nil, fmt.Errorf("image question carries no image data")
		}
		return ImageQuestion{Data: env.Image, Caption: env.Caption}, nil
	case "match":
		if len(env.Left) == 0 && len(env.Right) == 0 {
			return nil, fmt.Errorf("match question needs at least one item in either list")
		}
		return MatchQuestion{Left: env.Left, Right: env.Right}, nil
	case "table":
		if env.Rows < 1 || env.Cols < 1 {
			return nil, fmt.Errorf("table question needs at least 1 row and 1 column, got %dx%d", env.Rows, env.Cols)
		}
		return TableQuestion{
			Rows:  env.Rows,
			Cols:  env.Cols,
			Cells: normalizeCells(env.Cells, env.Rows, env.Cols),
		}, nil
	default:
		return nil, fmt.Errorf("unknown question type %q", env.Type)
	}
}

// normalizeCells pads or truncates the grid so it is exactly rows x cols.
func normalizeCells(cells [][]string, rows, cols int) [][]string {
	out := make([][]string, rows)
	for r := 0; r < rows; r++ {
		out[r] = make([]string, cols)
		if r >= len(cells) {
			continue
		}
		for c := 0; c < cols && c < len(cells[r]); c++ {
			out[r][c] = cells[r][c]
		}
	}
	return out
}
