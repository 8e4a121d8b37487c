package exampaper

import "github.com/exampaper/go-exampaper/pkg/exampaper/ooxml"

// Border constants for enforced cell borders: a continuous single line,
// 12 eighths of a point (1.5pt), no spacing, black.
const (
	borderStyle = "single"
	borderSize  = "12"
	borderSpace = "0"
	borderColor = "000000"
)

// SetTableBorders forces a visible single-line border onto all four edges
// of every cell in the table. The ambient table styling draws no borders of
// its own, and table-level border properties are not guaranteed to cascade
// to cells, so each cell is set individually.
//
// The borders node is assigned, not appended, so re-applying is idempotent:
// no duplicate or conflicting border definitions can accumulate.
func SetTableBorders(tbl *ooxml.Table) {
	for r := range tbl.Rows {
		for c := range tbl.Rows[r].Cells {
			cell := &tbl.Rows[r].Cells[c]
			if cell.Properties == nil {
				cell.Properties = &ooxml.TableCellProperties{}
			}
			cell.Properties.Borders = &ooxml.TableCellBorders{
				Top:    enforcedBorder(),
				Left:   enforcedBorder(),
				Bottom: enforcedBorder(),
				Right:  enforcedBorder(),
			}
		}
	}
}

func enforcedBorder() *ooxml.BorderProperties {
	return &ooxml.BorderProperties{
		Val:   borderStyle,
		Sz:    borderSize,
		Space: borderSpace,
		Color: borderColor,
	}
}
