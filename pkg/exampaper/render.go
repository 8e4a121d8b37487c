package exampaper

import (
	"strings"

	"github.com/exampaper/go-exampaper/pkg/exampaper/ooxml"
)

// matchPlaceholder is the literal answer box in the middle column of every
// match-the-following row.
const matchPlaceholder = "[   ]"

// buildAnswerTable renders a rectangular answer grid. A cell whose content
// is empty or whitespace-only becomes a single space so it never collapses
// visually. Border enforcement is the caller's job.
func buildAnswerTable(rows, cols int, cells [][]string) *ooxml.Table {
	tbl := ooxml.NewTable(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			text := " "
			if r < len(cells) && c < len(cells[r]) && strings.TrimSpace(cells[r][c]) != "" {
				text = cells[r][c]
			}
			tbl.Rows[r].Cells[c].SetText(text)
		}
	}
	return tbl
}

// buildMatchTable renders the three-column correspondence table: left item,
// answer placeholder, right item. Rows beyond the shorter list leave that
// side's cell blank. Cell borders are deliberately NOT enforced here; match
// tables render with the template's default table styling only, unlike
// answer tables. That asymmetry is intentional and must not be unified.
func buildMatchTable(left, right []string) *ooxml.Table {
	rows := len(left)
	if len(right) > rows {
		rows = len(right)
	}

	tbl := ooxml.NewTable(rows, 3)
	for r := 0; r < rows; r++ {
		if r < len(left) {
			tbl.Rows[r].Cells[0].SetText(left[r])
		}
		tbl.Rows[r].Cells[1].SetText(matchPlaceholder)
		if r < len(right) {
			tbl.Rows[r].Cells[2].SetText(right[r])
		}
	}
	return tbl
}
