package grid

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// A1 renders p in spreadsheet notation ("A1" is col 0, row 0).
//
// Negative coordinates render as "R<row>C<col>" since they have no A1 form.
func (p CellPosition) A1() string {
	name, err := excelize.CoordinatesToCellName(p.Col+1, p.Row+1)
	if err != nil {
		return fmt.Sprintf("R%dC%d", p.Row, p.Col)
	}
	return name
}

func (p CellPosition) String() string { return p.A1() }

// A1 renders r as "A1:B2", or as a single cell name for 1x1 ranges.
func (r SelectionRange) A1() string {
	if r.IsSingleCell() {
		return r.Min.A1()
	}
	return r.Min.A1() + ":" + r.Max.A1()
}

func (r SelectionRange) String() string { return r.A1() }

// ParseA1 parses a cell name such as "C7" into a 0-based position.
func ParseA1(name string) (CellPosition, error) {
	col, row, err := excelize.CellNameToCoordinates(name)
	if err != nil {
		return CellPosition{}, fmt.Errorf("parse cell name %q: %w", name, err)
	}
	return CellPosition{Col: col - 1, Row: row - 1}, nil
}

// ParseA1Range parses "A1:C3" (or a single cell name) into a normalized range.
func ParseA1Range(ref string) (SelectionRange, error) {
	for i := 0; i < len(ref); i++ {
		if ref[i] != ':' {
			continue
		}
		lo, err := ParseA1(ref[:i])
		if err != nil {
			return SelectionRange{}, err
		}
		hi, err := ParseA1(ref[i+1:])
		if err != nil {
			return SelectionRange{}, err
		}
		return NormalizeRange(SelectionRange{Min: lo, Max: hi}), nil
	}
	p, err := ParseA1(ref)
	if err != nil {
		return SelectionRange{}, err
	}
	return SingleCell(p), nil
}
