package grid

// EditMode is the coarse state of the edit state machine.
type EditMode uint8

const (
	EditIdle    EditMode = iota // no active cell
	EditActive                  // cell focused, not editing
	EditEditing                 // a draft is open on the active cell
)

func (m EditMode) String() string {
	switch m {
	case EditIdle:
		return "idle"
	case EditActive:
		return "active"
	case EditEditing:
		return "editing"
	default:
		return "unknown"
	}
}

// EditState is a snapshot of the edit state machine.
type EditState struct {
	Mode EditMode
	// Cell is the active (or edited) cell. Zero when idle.
	Cell CellPosition
	// Draft is the current draft text while editing.
	Draft string
	// Committed reports whether the draft has reached the row slice: always
	// true for continuous columns after the first change, false for lazy
	// columns until a commit gesture.
	Committed bool
}

// EditTrigger identifies how editing started.
type EditTrigger uint8

const (
	TriggerEnter EditTrigger = iota
	TriggerDoubleClick
	TriggerType
)

// CommitMove identifies where the active cell goes after a commit.
type CommitMove uint8

const (
	CommitStay CommitMove = iota
	// CommitEnter moves down like CommitDown and may append a row when
	// AutoAddRow is set and the edited cell is on the last row.
	CommitEnter
	CommitDown
	CommitUp
	CommitLeft
	CommitRight
	CommitNext // Tab: right, wrapping to column 0 of the next row
	CommitPrev // Shift+Tab: left, wrapping to the last column of the previous row
	CommitBlur // focus left the grid
)

// editSession tracks the single cell being edited.
type editSession struct {
	open bool
	cell CellPosition
	col  Column

	draft string
	// original is the cell value when editing started; commit compares the
	// parsed draft against it.
	original any
	// propagated is true once a continuous draft has been written out.
	propagated bool
}

func (e *editSession) lazy() bool { return !e.col.Type.ContinuousUpdates() }

func (e *editSession) reset() { *e = editSession{} }
