package sheet

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/datagrid/grid"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if isWheel(msg) {
		m.scrollBy(msg)
		return m, nil
	}
	if !m.focused {
		return m, nil
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if !m.mouseInBounds(msg.X, msg.Y) {
			return m, nil
		}
		h := m.hitTest(msg.X, msg.Y)
		if h.zone == zoneHeader || !h.inside && h.zone != zoneGutter {
			return m, nil
		}
		switch msg.Button { //nolint:exhaustive
		case tea.MouseButtonLeft:
			m.press(h, msg.Shift)
		case tea.MouseButtonRight:
			if h.zone == zoneGutter && h.inside {
				m.selectRow(h.cell.Row)
				m.eng.RowContextMenu(h.cell.Row, msg)
			}
		}

	case tea.MouseActionMotion:
		if !m.eng.Dragging() {
			return m, nil
		}
		x, y := m.clampMouseToBounds(msg.X, msg.Y)
		m.eng.MouseOver(m.hitTest(x, y).cell)

	case tea.MouseActionRelease:
		m.eng.MouseUp()
	}
	return m, nil
}

func (m *Model) press(h hit, shift bool) {
	if h.zone == zoneGutter {
		if h.inside {
			m.selectRow(h.cell.Row)
		}
		m.lastClickValid = false
		return
	}

	now := m.cfg.Now()
	double := !shift && m.lastClickValid && m.lastClickCell == h.cell &&
		now.Sub(m.lastClick) <= m.cfg.DoubleClickInterval
	if double {
		m.lastClickValid = false
		m.eng.DoubleClick(h.cell)
		return
	}
	m.lastClick, m.lastClickCell, m.lastClickValid = now, h.cell, true
	m.eng.MouseDown(h.cell, shift)
}

func (m Model) selectRow(row int) {
	last := len(m.eng.Columns()) - 1
	m.eng.SetSelection(grid.SelectionRange{
		Min: grid.CellPosition{Col: 0, Row: row},
		Max: grid.CellPosition{Col: last, Row: row},
	})
}

func (m *Model) scrollBy(msg tea.MouseMsg) {
	switch msg.Button { //nolint:exhaustive
	case tea.MouseButtonWheelUp:
		m.scroll -= wheelStep * m.rowHeight()
	case tea.MouseButtonWheelDown:
		m.scroll += wheelStep * m.rowHeight()
	}
	m.clampScroll()
}

func isWheel(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown)
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.width <= 0 || m.height <= 0 {
		return false
	}
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

func (m Model) clampMouseToBounds(x, y int) (int, int) {
	if m.width > 0 {
		x = clampInt(x, 0, m.width-1)
	}
	if m.height > 0 {
		y = clampInt(y, headerHeight, m.height-1)
	}
	return x, y
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
