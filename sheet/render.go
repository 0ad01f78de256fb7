package sheet

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/datagrid/grid"
	"github.com/iw2rmb/datagrid/internal/grapheme"
)

var singleLine = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

type rightAligner interface {
	AlignRight() bool
}

// renderState is the per-frame snapshot shared by every rendered row.
type renderState struct {
	cols   []grid.Column
	rows   []grid.Row
	spans  []columnSpan
	gutter int

	active   grid.CellPosition
	activeOK bool
	sel      grid.SelectionRange
	selOK    bool
	edit     grid.EditState
}

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	st := renderState{
		cols:   m.eng.Columns(),
		rows:   m.eng.Rows(),
		spans:  m.layoutColumns(),
		gutter: m.gutterWidth(),
		edit:   m.eng.EditState(),
	}
	st.active, st.activeOK = m.activePos()
	st.sel, st.selOK = m.eng.Selection()

	lines := make([]string, 0, m.height)
	lines = append(lines, m.renderHeader(st))

	body := m.bodyHeight()
	rh := m.rowHeight()
	if w, ok := grid.VisibleRows(m.eng.Viewport(m.scroll)); ok {
		for row := w.First; row <= w.Last; row++ {
			top := row*rh - m.scroll
			for i := 0; i < rh; i++ {
				y := top + i
				if y < 0 || y >= body {
					continue
				}
				if i == 0 {
					lines = append(lines, m.renderRow(st, row))
				} else {
					lines = append(lines, "")
				}
			}
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderHeader(st renderState) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", st.gutter))
	x := st.gutter
	for _, s := range st.spans {
		if s.x > x {
			sb.WriteString(strings.Repeat(" ", s.x-x))
		}
		sb.WriteString(m.cfg.Style.Header.Render(grapheme.Pad(st.cols[s.col].Title, s.width, false)))
		x = s.x + s.width
	}
	return sb.String()
}

func (m Model) renderRow(st renderState, row int) string {
	var sb strings.Builder
	if st.gutter > 0 {
		gs := m.cfg.Style.Gutter
		if st.activeOK && st.active.Row == row {
			gs = m.cfg.Style.GutterActive
		}
		sb.WriteString(gs.Render(fmt.Sprintf("%*d ", st.gutter-1, row+1)))
	}

	x := st.gutter
	for _, s := range st.spans {
		if s.x > x {
			sb.WriteString(strings.Repeat(" ", s.x-x))
		}
		sb.WriteString(m.renderCell(st, grid.CellPosition{Col: s.col, Row: row}, s.width))
		x = s.x + s.width
	}
	return sb.String()
}

func (m Model) renderCell(st renderState, p grid.CellPosition, width int) string {
	style := m.cfg.Style
	col := st.cols[p.Col]

	if st.edit.Mode == grid.EditEditing && st.edit.Cell == p && m.focused {
		if width <= 1 {
			return style.Cursor.Render(grapheme.Pad("", width, false))
		}
		draft := grapheme.TruncateLeft(singleLine.Replace(st.edit.Draft), width-1)
		text := style.Editing.Render(draft) + style.Cursor.Render(" ")
		if gap := width - 1 - grapheme.Width(draft); gap > 0 {
			text += style.Editing.Render(strings.Repeat(" ", gap))
		}
		return text
	}

	var cs lipgloss.Style
	switch {
	case st.activeOK && st.active == p && m.focused:
		cs = style.Active
	case st.selOK && !st.sel.IsSingleCell() && st.sel.Contains(p):
		cs = style.Selection
	case m.eng.CellDisabled(p):
		cs = style.Disabled
	default:
		cs = style.Cell
	}

	value := col.Type.Copy(st.rows[p.Row].Get(col.Key))
	if value == "" {
		if ph, ok := col.Type.(grid.Placeholderer); ok && ph.Placeholder() != "" {
			return cs.Inherit(style.Placeholder).Render(grapheme.Pad(ph.Placeholder(), width, false))
		}
	}
	alignRight := false
	if ra, ok := col.Type.(rightAligner); ok {
		alignRight = ra.AlignRight()
	}
	value = singleLine.Replace(value)
	return cs.Render(grapheme.Pad(value, width, alignRight))
}
