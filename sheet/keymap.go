package sheet

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the sheet key bindings.
//
// Printable keys that match no binding type into the active cell.
type KeyMap struct {
	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding
	EdgeLeft, EdgeRight, EdgeUp, EdgeDown     key.Binding
	Home, End, Top, Bottom                    key.Binding

	Next, Prev   key.Binding
	Edit, Cancel key.Binding

	Backspace, Delete key.Binding

	Copy, CopyWithHeaders, Cut, Paste key.Binding

	AddRow, InsertRow, DuplicateRows, DeleteRows key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		ShiftUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "select up")),
		ShiftDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "select down")),

		// Terminals vary between ctrl+arrows and alt+arrows.
		EdgeLeft:  key.NewBinding(key.WithKeys("ctrl+left", "alt+left"), key.WithHelp("ctrl+←", "first column")),
		EdgeRight: key.NewBinding(key.WithKeys("ctrl+right", "alt+right"), key.WithHelp("ctrl+→", "last column")),
		EdgeUp:    key.NewBinding(key.WithKeys("ctrl+up", "alt+up"), key.WithHelp("ctrl+↑", "first row")),
		EdgeDown:  key.NewBinding(key.WithKeys("ctrl+down", "alt+down"), key.WithHelp("ctrl+↓", "last row")),

		Home:   key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "row start")),
		End:    key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "row end")),
		Top:    key.NewBinding(key.WithKeys("ctrl+home"), key.WithHelp("ctrl+home", "first cell")),
		Bottom: key.NewBinding(key.WithKeys("ctrl+end"), key.WithHelp("ctrl+end", "last cell")),

		Next: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next cell")),
		Prev: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous cell")),

		Edit:   key.NewBinding(key.WithKeys("enter", "f2"), key.WithHelp("enter", "edit/commit")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "clear")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "clear")),

		Copy:            key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		CopyWithHeaders: key.NewBinding(key.WithKeys("alt+c"), key.WithHelp("alt+c", "copy with headers")),
		Cut:             key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste:           key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),

		AddRow:        key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "add row")),
		InsertRow:     key.NewBinding(key.WithKeys("alt+n"), key.WithHelp("alt+n", "insert row below")),
		DuplicateRows: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "duplicate rows")),
		DeleteRows:    key.NewBinding(key.WithKeys("alt+d"), key.WithHelp("alt+d", "delete rows")),
	}
}

func (km KeyMap) isZero() bool {
	return len(km.Up.Keys()) == 0 && len(km.Down.Keys()) == 0 &&
		len(km.Left.Keys()) == 0 && len(km.Right.Keys()) == 0
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Edit, km.Copy, km.Paste, km.AddRow}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Down, km.Left, km.Right, km.Next, km.Prev},
		{km.Edit, km.Cancel, km.Delete},
		{km.Copy, km.CopyWithHeaders, km.Cut, km.Paste},
		{km.AddRow, km.InsertRow, km.DuplicateRows, km.DeleteRows},
	}
}
