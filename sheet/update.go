package sheet

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/datagrid/grid"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Bracketed paste inserts literal text and never triggers shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.pasteText(string(msg.Runes))
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Copy):
		m.copySelection(false)
	case key.Matches(msg, km.CopyWithHeaders):
		m.copySelection(true)
	case key.Matches(msg, km.Cut):
		m.cutSelection()
	case key.Matches(msg, km.Paste):
		return m, m.pasteClipboard()

	case key.Matches(msg, km.AddRow):
		m.eng.AddRows(1)
	case key.Matches(msg, km.InsertRow):
		m.eng.InsertRowBelow()
	case key.Matches(msg, km.DuplicateRows):
		m.eng.DuplicateRows()
	case key.Matches(msg, km.DeleteRows):
		m.eng.DeleteRows()

	default:
		if ev, ok := m.keyEvent(msg); ok {
			m.eng.Key(ev)
		}
	}
	return m, nil
}

// keyEvent translates a terminal key into an engine key event.
func (m Model) keyEvent(msg tea.KeyMsg) (grid.KeyEvent, bool) {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		return grid.KeyEvent{Key: grid.KeyLeft}, true
	case key.Matches(msg, km.Right):
		return grid.KeyEvent{Key: grid.KeyRight}, true
	case key.Matches(msg, km.Up):
		return grid.KeyEvent{Key: grid.KeyUp}, true
	case key.Matches(msg, km.Down):
		return grid.KeyEvent{Key: grid.KeyDown}, true

	case key.Matches(msg, km.ShiftLeft):
		return grid.KeyEvent{Key: grid.KeyLeft, Shift: true}, true
	case key.Matches(msg, km.ShiftRight):
		return grid.KeyEvent{Key: grid.KeyRight, Shift: true}, true
	case key.Matches(msg, km.ShiftUp):
		return grid.KeyEvent{Key: grid.KeyUp, Shift: true}, true
	case key.Matches(msg, km.ShiftDown):
		return grid.KeyEvent{Key: grid.KeyDown, Shift: true}, true

	case key.Matches(msg, km.EdgeLeft):
		return grid.KeyEvent{Key: grid.KeyLeft, Ctrl: true}, true
	case key.Matches(msg, km.EdgeRight):
		return grid.KeyEvent{Key: grid.KeyRight, Ctrl: true}, true
	case key.Matches(msg, km.EdgeUp):
		return grid.KeyEvent{Key: grid.KeyUp, Ctrl: true}, true
	case key.Matches(msg, km.EdgeDown):
		return grid.KeyEvent{Key: grid.KeyDown, Ctrl: true}, true

	case key.Matches(msg, km.Home):
		return grid.KeyEvent{Key: grid.KeyHome}, true
	case key.Matches(msg, km.End):
		return grid.KeyEvent{Key: grid.KeyEnd}, true
	case key.Matches(msg, km.Top):
		return grid.KeyEvent{Key: grid.KeyHome, Ctrl: true}, true
	case key.Matches(msg, km.Bottom):
		return grid.KeyEvent{Key: grid.KeyEnd, Ctrl: true}, true

	case key.Matches(msg, km.Next):
		return grid.KeyEvent{Key: grid.KeyTab}, true
	case key.Matches(msg, km.Prev):
		return grid.KeyEvent{Key: grid.KeyTab, Shift: true}, true
	case key.Matches(msg, km.Edit):
		return grid.KeyEvent{Key: grid.KeyEnter}, true
	case key.Matches(msg, km.Cancel):
		return grid.KeyEvent{Key: grid.KeyEscape}, true
	case key.Matches(msg, km.Backspace):
		return grid.KeyEvent{Key: grid.KeyBackspace}, true
	case key.Matches(msg, km.Delete):
		return grid.KeyEvent{Key: grid.KeyDelete}, true
	}

	switch msg.Type {
	case tea.KeySpace:
		return grid.KeyEvent{Key: grid.KeyRunes, Text: " "}, true
	case tea.KeyRunes:
		if len(msg.Runes) == 0 || msg.Alt {
			return grid.KeyEvent{}, false
		}
		return grid.KeyEvent{Key: grid.KeyRunes, Text: string(msg.Runes)}, true
	default:
		return grid.KeyEvent{}, false
	}
}

func (m Model) copySelection(headers bool) {
	if m.cfg.Clipboard == nil {
		return
	}
	dt := grid.MapTransfer{}
	var ok bool
	if headers {
		_, ok = m.eng.CopyWithHeaders(dt)
	} else {
		_, ok = m.eng.Copy(dt)
	}
	if !ok {
		return
	}
	if err := m.cfg.Clipboard.WriteText(dt.GetData(grid.MIMEPlain)); err != nil {
		m.log.WithError(err).Warn("clipboard write failed")
	}
}

func (m Model) cutSelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	dt := grid.MapTransfer{}
	if _, ok := m.eng.Cut(dt); !ok {
		return
	}
	if err := m.cfg.Clipboard.WriteText(dt.GetData(grid.MIMEPlain)); err != nil {
		m.log.WithError(err).Warn("clipboard write failed")
	}
}

// pasteClipboard captures the paste target now and reads the clipboard in a
// command, since the system clipboard may block.
func (m Model) pasteClipboard() tea.Cmd {
	cb := m.cfg.Clipboard
	if cb == nil {
		return nil
	}
	pending := m.eng.Paste(nil)
	if pending == nil {
		return nil
	}
	return func() tea.Msg {
		s, err := cb.ReadText()
		return pasteMsg{pending: pending, text: s, err: err}
	}
}

// pasteText handles bracketed paste: it extends the draft while editing and
// pastes a matrix otherwise.
func (m Model) pasteText(s string) {
	if st := m.eng.EditState(); st.Mode == grid.EditEditing {
		m.eng.SetDraft(st.Draft + s)
		return
	}
	m.eng.Paste(grid.MapTransfer{grid.MIMEPlain: s})
}
