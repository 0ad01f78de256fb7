package sheet

import (
	"strconv"

	"github.com/iw2rmb/datagrid/grid"
)

type zone uint8

const (
	zoneCell zone = iota
	zoneHeader
	zoneGutter
)

// columnSpan is where a column is drawn on a line. x includes the gutter.
type columnSpan struct {
	col   int
	x     int
	width int
}

type hit struct {
	zone   zone
	cell   grid.CellPosition
	inside bool
}

func (m Model) gutterWidth() int {
	if !m.cfg.ShowRowNumbers {
		return 0
	}
	n := m.eng.RowCount()
	if n < 1 {
		n = 1
	}
	return len(strconv.Itoa(n)) + 1
}

func (m Model) columnWidth(c grid.Column) int {
	if c.Width > 0 {
		return c.Width
	}
	return m.cfg.DefaultColumnWidth
}

// layoutColumns places every column left to right, one separator cell apart,
// clipped to the sheet width. With StickyRightColumn the last column is pinned
// to the right edge when the columns overflow.
func (m Model) layoutColumns() []columnSpan {
	cols := m.eng.Columns()
	gw := m.gutterWidth()
	spans := make([]columnSpan, 0, len(cols))
	x := gw
	for i, c := range cols {
		w := m.columnWidth(c)
		spans = append(spans, columnSpan{col: i, x: x, width: w})
		x += w + 1
	}
	if len(spans) == 0 || m.width <= 0 {
		return spans
	}
	total := x - 1

	if m.eng.Config().StickyRightColumn && len(spans) > 1 && total > m.width {
		last := spans[len(spans)-1]
		last.x = m.width - last.width
		if last.x < gw {
			last.x = gw
			last.width = m.width - gw
		}
		out := clipSpans(spans[:len(spans)-1], last.x-1)
		return append(out, last)
	}
	return clipSpans(spans, m.width)
}

// clipSpans drops spans starting at or past limit and narrows the one that
// crosses it.
func clipSpans(spans []columnSpan, limit int) []columnSpan {
	out := make([]columnSpan, 0, len(spans))
	for _, s := range spans {
		if s.x >= limit {
			break
		}
		if s.x+s.width > limit {
			s.width = limit - s.x
		}
		out = append(out, s)
	}
	return out
}

// hitTest maps sheet-local mouse coordinates to a zone and a cell.
//
// The cell is always clamped into the grid so drags past the edges keep
// extending the selection; inside reports whether the point really was over it.
func (m Model) hitTest(x, y int) hit {
	h := hit{zone: zoneCell, inside: true}
	if y < headerHeight {
		h.zone = zoneHeader
		h.inside = false
		y = headerHeight
	}

	line := y - headerHeight
	if line >= m.bodyHeight() {
		h.inside = false
	}
	row := (line + m.scroll) / m.rowHeight()
	if row >= m.eng.RowCount() {
		h.inside = false
	}

	gw := m.gutterWidth()
	col := 0
	switch {
	case x < gw:
		if h.zone == zoneCell {
			h.zone = zoneGutter
		}
	default:
		spans := m.layoutColumns()
		found := false
		for _, s := range spans {
			// The separator after a column belongs to it.
			if x >= s.x && x <= s.x+s.width {
				col = s.col
				found = true
				break
			}
			if x > s.x {
				col = s.col
			}
		}
		if !found {
			h.inside = false
		}
	}

	p, ok := grid.ClampPos(grid.CellPosition{Col: col, Row: row}, len(m.eng.Columns()), m.eng.RowCount())
	if !ok {
		h.inside = false
	}
	h.cell = p
	return h
}
