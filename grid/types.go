package grid

// CellPosition points at a cell by (col, row). Col and Row are 0-based.
type CellPosition struct {
	Col int
	Row int
}

// SelectionRange is an inclusive rectangle of cells: [Min, Max].
// Min <= Max on both axes after normalization.
type SelectionRange struct {
	Min CellPosition
	Max CellPosition
}

// ActiveCell is the focused cell with its stable column identifier resolved.
type ActiveCell struct {
	Col   int
	Row   int
	ColID string
}

// Position drops the column identifier.
func (a ActiveCell) Position() CellPosition {
	return CellPosition{Col: a.Col, Row: a.Row}
}

// SingleCell returns the 1x1 range covering p.
func SingleCell(p CellPosition) SelectionRange {
	return SelectionRange{Min: p, Max: p}
}

// NormalizeRange orders Min and Max per axis.
func NormalizeRange(r SelectionRange) SelectionRange {
	return rangeFromCorners(r.Min, r.Max)
}

func rangeFromCorners(a, b CellPosition) SelectionRange {
	return SelectionRange{
		Min: CellPosition{Col: minInt(a.Col, b.Col), Row: minInt(a.Row, b.Row)},
		Max: CellPosition{Col: maxInt(a.Col, b.Col), Row: maxInt(a.Row, b.Row)},
	}
}

// Contains reports whether p lies inside r.
func (r SelectionRange) Contains(p CellPosition) bool {
	return p.Col >= r.Min.Col && p.Col <= r.Max.Col &&
		p.Row >= r.Min.Row && p.Row <= r.Max.Row
}

// Width is the number of columns covered by r.
func (r SelectionRange) Width() int { return r.Max.Col - r.Min.Col + 1 }

// Height is the number of rows covered by r.
func (r SelectionRange) Height() int { return r.Max.Row - r.Min.Row + 1 }

// IsSingleCell reports whether r covers exactly one cell.
func (r SelectionRange) IsSingleCell() bool { return r.Min == r.Max }

// ClampPos clamps p into a grid of colCount x rowCount cells.
//
// ok is false when the grid has no cells; the returned position is then the
// zero value.
func ClampPos(p CellPosition, colCount, rowCount int) (CellPosition, bool) {
	if colCount <= 0 || rowCount <= 0 {
		return CellPosition{}, false
	}
	return CellPosition{
		Col: clampInt(p.Col, 0, colCount-1),
		Row: clampInt(p.Row, 0, rowCount-1),
	}, true
}

// ClampRange normalizes r and clamps both corners into the grid.
func ClampRange(r SelectionRange, colCount, rowCount int) (SelectionRange, bool) {
	r = NormalizeRange(r)
	lo, ok := ClampPos(r.Min, colCount, rowCount)
	if !ok {
		return SelectionRange{}, false
	}
	hi, _ := ClampPos(r.Max, colCount, rowCount)
	return SelectionRange{Min: lo, Max: hi}, true
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
