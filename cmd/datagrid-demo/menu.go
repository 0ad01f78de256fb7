package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/datagrid/grid"
)

type menuAction uint8

const (
	actionInsertBelow menuAction = iota
	actionDuplicate
	actionDelete
	actionAddRows
)

var menuItems = []struct {
	action menuAction
	label  string
}{
	{actionInsertBelow, "Insert row below"},
	{actionDuplicate, "Duplicate rows"},
	{actionDelete, "Delete rows"},
	{actionAddRows, "Add rows: "},
}

// rowMenu is the popup opened by a right-click on the row gutter.
type rowMenu struct {
	visible bool
	row     int
	x, y    int
	cursor  int
	// count is the typed input of the add-rows item.
	count string
}

func (m *rowMenu) open(ev grid.RowContextMenuEvent) {
	*m = rowMenu{visible: true, row: ev.RowIndex, count: "1"}
	if msg, ok := ev.Source.(tea.MouseMsg); ok {
		m.x, m.y = msg.X, msg.Y
	}
}

func (m *rowMenu) close() { m.visible = false }

func (m *rowMenu) key(msg tea.KeyMsg, eng *grid.Engine) {
	switch msg.Type {
	case tea.KeyEsc:
		m.close()
	case tea.KeyUp:
		m.cursor = (m.cursor + len(menuItems) - 1) % len(menuItems)
	case tea.KeyDown, tea.KeyTab:
		m.cursor = (m.cursor + 1) % len(menuItems)
	case tea.KeyBackspace:
		if m.count != "" {
			m.count = m.count[:len(m.count)-1]
		}
	case tea.KeyEnter:
		m.run(menuItems[m.cursor].action, eng)
		m.close()
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if r >= '0' && r <= '9' {
				m.cursor = len(menuItems) - 1
				m.count += string(r)
			}
		}
	}
}

func (m *rowMenu) run(a menuAction, eng *grid.Engine) {
	switch a {
	case actionInsertBelow:
		eng.InsertRowBelow()
	case actionDuplicate:
		eng.DuplicateRows()
	case actionDelete:
		eng.DeleteRows()
	case actionAddRows:
		eng.AddRows(grid.ParseRowCount(m.count))
	}
}

var (
	menuBox      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	menuSelected = lipgloss.NewStyle().Reverse(true)
)

func (m *rowMenu) view() string {
	lines := make([]string, len(menuItems))
	for i, it := range menuItems {
		label := it.label
		if it.action == actionAddRows {
			label += m.count + "_"
		}
		if i == m.cursor {
			label = menuSelected.Render(label)
		}
		lines[i] = label
	}
	return menuBox.Render(strings.Join(lines, "\n"))
}
