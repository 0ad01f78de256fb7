package sheet

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/iw2rmb/datagrid/grid"
)

// headerHeight is the number of screen lines above the first row.
const headerHeight = 1

// Model is a Bubble Tea component that renders and drives a grid.Engine.
type Model struct {
	cfg Config
	eng *grid.Engine
	log logrus.FieldLogger

	focused bool

	width  int
	height int
	// scroll is the vertical offset of the row area in row-height units.
	scroll int

	lastClick      time.Time
	lastClickCell  grid.CellPosition
	lastClickValid bool
}

// pasteMsg delivers the asynchronous clipboard read of a paste shortcut.
type pasteMsg struct {
	pending *grid.PendingPaste
	text    string
	err     error
}

// New validates cfg and returns a focused Model.
func New(cfg Config) (Model, error) {
	cfg = cfg.withDefaults()
	eng, err := grid.New(cfg.Grid)
	if err != nil {
		return Model{}, fmt.Errorf("sheet: %w", err)
	}
	log := cfg.Grid.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	m := Model{
		cfg:     cfg,
		eng:     eng,
		log:     log,
		focused: true,
	}
	return m, nil
}

// Engine returns the engine driven by the Model. Hosts use it as the
// imperative handle (SetRows, SetActiveCell, Selection, ...).
func (m Model) Engine() *grid.Engine { return m.eng }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height
	m.eng.SetHeight(m.bodyHeight())
	m.clampScroll()
	if p, ok := m.activePos(); ok {
		m.reveal(p.Row)
	}
	return m
}

func (m Model) Focus() Model {
	m.focused = true
	return m
}

// Blur removes focus: an open edit commits and the engine goes idle.
func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.eng.Blur()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	prev, prevOK := m.activePos()

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	case pasteMsg:
		if msg.err != nil {
			m.log.WithError(msg.err).Warn("clipboard read failed")
			return m, nil
		}
		m.eng.ResolvePaste(msg.pending, msg.text)
	default:
		return m, nil
	}
	m.clampScroll()
	// Follow the active cell only when this message moved it, so manual wheel
	// scrolling sticks.
	if p, ok := m.activePos(); ok && (!prevOK || p != prev) {
		m.reveal(p.Row)
	}
	return m, cmd
}

func (m Model) activePos() (grid.CellPosition, bool) {
	a, ok := m.eng.ActiveCell()
	return a.Position(), ok
}

func (m *Model) reveal(row int) {
	m.scroll = grid.ScrollToReveal(m.eng.Viewport(m.scroll), row)
}

func (m *Model) clampScroll() {
	maxOffset := grid.MaxScrollOffset(m.eng.Viewport(m.scroll))
	if m.scroll > maxOffset {
		m.scroll = maxOffset
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

func (m Model) bodyHeight() int {
	h := m.height - headerHeight
	if h < 0 {
		return 0
	}
	return h
}

func (m Model) rowHeight() int {
	return m.eng.Config().RowHeight
}
