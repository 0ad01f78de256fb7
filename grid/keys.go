package grid

// Key identifies a logical key the engine reacts to. Hosts translate their
// native key events into KeyEvent values; clipboard shortcuts go through
// Copy/Cut/Paste instead.
type Key uint8

const (
	KeyNone Key = iota
	KeyRunes
	KeyEnter
	KeyTab
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyBackspace
	KeyDelete
)

// KeyEvent is one key press.
type KeyEvent struct {
	Key Key
	// Text carries the typed characters for KeyRunes.
	Text  string
	Shift bool
	Ctrl  bool
}

func arrowDir(k Key) (MoveDir, bool) {
	switch k {
	case KeyUp:
		return DirUp, true
	case KeyDown:
		return DirDown, true
	case KeyLeft:
		return DirLeft, true
	case KeyRight:
		return DirRight, true
	default:
		return 0, false
	}
}

func commitMoveForArrow(d MoveDir) CommitMove {
	switch d {
	case DirUp:
		return CommitUp
	case DirDown:
		return CommitDown
	case DirLeft:
		return CommitLeft
	default:
		return CommitRight
	}
}
