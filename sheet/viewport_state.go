package sheet

import "github.com/iw2rmb/datagrid/grid"

// ViewportState is a host-facing snapshot of the sheet's camera state.
type ViewportState struct {
	// ScrollOffset is the vertical offset of the row area in lines.
	ScrollOffset int
	// Window is the range of rows the virtualizer materializes, overscan
	// included. Window.Len() is 0 without rows.
	Window grid.RowWindow
	// BodyHeight is the number of lines available for rows.
	BodyHeight int
}

// ViewportState returns the current host-facing viewport state.
func (m Model) ViewportState() ViewportState {
	w, _ := grid.VisibleRows(m.eng.Viewport(m.scroll))
	return ViewportState{
		ScrollOffset: m.scroll,
		Window:       w,
		BodyHeight:   m.bodyHeight(),
	}
}

// ScreenToCell maps sheet-local screen coordinates to a cell.
//
// ok is false for the header, the gutter and positions past the last row or
// column; the returned position is then clamped into the grid.
func (m Model) ScreenToCell(x, y int) (grid.CellPosition, bool) {
	h := m.hitTest(x, y)
	return h.cell, h.zone == zoneCell && h.inside
}

// CellToScreen maps a cell to the sheet-local screen coordinates of its first
// character. ok is false when the cell is scrolled out of view.
func (m Model) CellToScreen(p grid.CellPosition) (x, y int, ok bool) {
	spans := m.layoutColumns()
	for _, s := range spans {
		if s.col != p.Col {
			continue
		}
		line := p.Row*m.rowHeight() - m.scroll
		if line < 0 || line >= m.bodyHeight() {
			return s.x, headerHeight + line, false
		}
		return s.x, headerHeight + line, true
	}
	return 0, 0, false
}
