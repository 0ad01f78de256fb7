package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
	"github.com/sirupsen/logrus"

	"github.com/iw2rmb/datagrid/grid"
	"github.com/iw2rmb/datagrid/internal/xlsxsource"
	"github.com/iw2rmb/datagrid/sheet"
)

type options struct {
	columns        []grid.Column
	rows           []grid.Row
	autoAddRow     bool
	lockRows       bool
	showRowNumbers bool
	stickyRight    bool
	output         string
	sheet          string
	log            logrus.FieldLogger
}

// keyMap adds the demo's own bindings to the sheet's for the help footer.
type keyMap struct {
	sheet.KeyMap
	Quit key.Binding
	Save key.Binding
	Help key.Binding
}

func (km keyMap) ShortHelp() []key.Binding {
	return append(km.KeyMap.ShortHelp(), km.Save, km.Help, km.Quit)
}

func (km keyMap) FullHelp() [][]key.Binding {
	return append(km.KeyMap.FullHelp(), []key.Binding{km.Save, km.Help, km.Quit})
}

// status collects engine callbacks. It is shared by pointer since the
// engine calls back while the model is being copied through Update.
type status struct {
	changes int
	lastOps []grid.Operation
	message string
}

func (s *status) onChange(_ []grid.Row, ops []grid.Operation) {
	s.changes++
	s.lastOps = ops
}

type model struct {
	opts   options
	sheet  sheet.Model
	keys   keyMap
	help   help.Model
	menu   *rowMenu
	status *status

	width  int
	height int
}

func newModel(opts options) (model, error) {
	st := &status{}
	menu := &rowMenu{}

	km := keyMap{
		KeyMap: sheet.DefaultKeyMap(),
		Quit:   key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
		Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Help:   key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
	}
	if opts.output == "" {
		km.Save.SetEnabled(false)
	}

	sm, err := sheet.New(sheet.Config{
		Grid: grid.Config{
			Columns:           opts.columns,
			Rows:              opts.rows,
			AutoAddRow:        opts.autoAddRow,
			LockRows:          opts.lockRows,
			StickyRightColumn: opts.stickyRight,
			OnChange:          st.onChange,
			OnRowContextMenu:  menu.open,
			Logger:            opts.log,
		},
		KeyMap:         km.KeyMap,
		Style:          sheet.DefaultStyle(),
		Clipboard:      sheet.SystemClipboard{},
		ShowRowNumbers: opts.showRowNumbers,
	})
	if err != nil {
		return model{}, err
	}
	sm.Engine().SetActiveCell(grid.CellPosition{})

	return model{
		opts:   opts,
		sheet:  sm,
		keys:   km,
		help:   help.New(),
		menu:   menu,
		status: st,
	}, nil
}

func (m model) Init() tea.Cmd { return m.sheet.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.sheet = m.sheet.SetSize(msg.Width, m.sheetHeight())
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.sheet = m.sheet.SetSize(m.width, m.sheetHeight())
			return m, nil
		case key.Matches(msg, m.keys.Save):
			m.save()
			return m, nil
		}
		if m.menu.visible {
			m.menu.key(msg, m.sheet.Engine())
			return m, nil
		}
	case tea.MouseMsg:
		if m.menu.visible {
			if msg.Action == tea.MouseActionPress {
				m.menu.close()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.sheet, cmd = m.sheet.Update(msg)
	return m, cmd
}

func (m model) save() {
	eng := m.sheet.Engine()
	if err := xlsxsource.Save(m.opts.output, m.opts.sheet, eng.Columns(), eng.Rows()); err != nil {
		m.opts.log.WithError(err).Warn("save failed")
		m.status.message = "save failed: " + err.Error()
		return
	}
	m.status.message = "saved " + m.opts.output
}

func (m model) View() string {
	view := m.sheet.View()
	if m.menu.visible {
		popup := m.menu.view()
		x := clampInt(m.menu.x, 0, max(0, m.width-lipgloss.Width(popup)))
		y := clampInt(m.menu.y, 0, max(0, m.sheetHeight()-lipgloss.Height(popup)))
		view = overlay.Composite(popup, view, overlay.Left, overlay.Top, x, y)
	}
	return view + "\n" + m.statusLine() + "\n" + m.help.View(m.keys)
}

func (m model) statusLine() string {
	var parts []string
	if r, ok := m.sheet.Engine().Selection(); ok {
		parts = append(parts, r.A1())
	}
	es := m.sheet.Engine().EditState()
	parts = append(parts, es.Mode.String())
	parts = append(parts, fmt.Sprintf("rows %d", m.sheet.Engine().RowCount()))
	if len(m.status.lastOps) > 0 {
		ops := make([]string, 0, len(m.status.lastOps))
		for _, op := range m.status.lastOps {
			ops = append(ops, op.String())
		}
		parts = append(parts, fmt.Sprintf("#%d %s", m.status.changes, strings.Join(ops, " ")))
	}
	if m.status.message != "" {
		parts = append(parts, m.status.message)
	}
	return statusStyle.Render(strings.Join(parts, " | "))
}

func (m model) sheetHeight() int {
	helpLines := lipgloss.Height(m.help.View(m.keys))
	return max(0, m.height-1-helpLines)
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
