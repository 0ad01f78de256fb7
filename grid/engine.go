package grid

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Config configures an Engine.
type Config struct {
	Columns []Column
	// Initial rows. The engine never mutates this slice in place.
	Rows []Row

	// AutoAddRow appends a row when an Enter commit happens on the last row,
	// and lets paste create the rows it needs.
	AutoAddRow bool
	// LockRows disables every change of the row count.
	LockRows bool

	// Virtualizer inputs. RowHeight defaults to 1.
	Height    int
	RowHeight int
	Overscan  int

	// StickyRightColumn keeps the last column rendered at the right edge.
	StickyRightColumn bool

	// NewRow builds rows created by add-row actions. When nil, rows are deep
	// copies of RowTemplate (or empty rows).
	NewRow      func() Row
	RowTemplate Row

	// OnChange receives the new row slice and the operations of every
	// mutating action.
	OnChange func(rows []Row, ops []Operation)
	// OnActiveCellChange fires when the active cell moves or goes idle.
	OnActiveCellChange func(cell ActiveCell, ok bool)
	// OnSelectionChange fires when the selection rectangle changes.
	OnSelectionChange func(r SelectionRange, ok bool)
	// OnRowContextMenu receives right-clicks on the row gutter.
	OnRowContextMenu func(RowContextMenuEvent)

	// Logger receives debug traces. Defaults to a discarding logger.
	Logger logrus.FieldLogger
}

// RowContextMenuEvent is raised by a right-click on the row gutter. The engine
// does not interpret it; Source carries the host's originating event.
type RowContextMenuEvent struct {
	RowIndex int
	Source   any
}

// Engine is the grid interaction engine and the imperative handle hosts use
// to drive it. It is not safe for concurrent use; hosts call it from their UI
// event loop.
type Engine struct {
	cfg  Config
	cols []Column
	rows []Row

	sel  *Selection
	edit editSession

	version uint64
	rowsGen uint64
	log     logrus.FieldLogger
}

// New validates cfg and returns an idle engine.
//
// A structurally inconsistent column configuration returns a *ColumnError.
func New(cfg Config) (*Engine, error) {
	cols, err := validateColumns(cfg.Columns)
	if err != nil {
		return nil, fmt.Errorf("grid config: %w", err)
	}
	if cfg.RowHeight <= 0 {
		cfg.RowHeight = 1
	}
	if cfg.Overscan < 0 {
		cfg.Overscan = 0
	}
	log := cfg.Logger
	if log == nil {
		log = discardLogger()
	}
	e := &Engine{
		cfg:  cfg,
		cols: cols,
		rows: cfg.Rows,
		log:  log,
	}
	e.sel = NewSelection(len(cols), len(cfg.Rows))
	return e, nil
}

// Version increments on every observable state change (rows, selection or
// edit state).
func (e *Engine) Version() uint64 { return e.version }

// Columns returns the validated columns.
func (e *Engine) Columns() []Column { return append([]Column(nil), e.cols...) }

// Rows returns the current row slice. Callers must not mutate it.
func (e *Engine) Rows() []Row { return e.rows }

// RowCount returns the number of rows.
func (e *Engine) RowCount() int { return len(e.rows) }

// Config returns the engine configuration with defaults applied.
func (e *Engine) Config() Config { return e.cfg }

// SetRows replaces the row slice (the caller's controlled value) and re-clips
// selection and edit state when the row count shrank. It never calls OnChange.
func (e *Engine) SetRows(rows []Row) {
	e.track(func() {
		e.rows = rows
		e.rowsGen++
		e.sel.Resize(len(e.cols), len(rows))
		if e.edit.open && e.edit.cell.Row >= len(rows) {
			e.log.WithFields(cellFields(e.edit.cell)).Debug("edit dropped: row removed")
			e.edit.reset()
		}
	})
}

// ActiveCell returns the active cell with its column identifier.
func (e *Engine) ActiveCell() (ActiveCell, bool) {
	p, ok := e.sel.Active()
	if !ok {
		return ActiveCell{}, false
	}
	return ActiveCell{Col: p.Col, Row: p.Row, ColID: e.cols[p.Col].ID}, true
}

// Selection returns the selection rectangle.
func (e *Engine) Selection() (SelectionRange, bool) { return e.sel.Range() }

// Dragging reports whether a mouse selection drag is in progress.
func (e *Engine) Dragging() bool { return e.sel.Dragging() }

// EditState returns a snapshot of the edit state machine.
func (e *Engine) EditState() EditState {
	if e.edit.open {
		return EditState{
			Mode:      EditEditing,
			Cell:      e.edit.cell,
			Draft:     e.edit.draft,
			Committed: e.edit.propagated,
		}
	}
	if p, ok := e.sel.Active(); ok {
		return EditState{Mode: EditActive, Cell: p}
	}
	return EditState{Mode: EditIdle}
}

// SetActiveCell focuses p (clamped) and collapses the selection. An open edit
// is committed first.
func (e *Engine) SetActiveCell(p CellPosition) {
	e.track(func() {
		e.commitIfEditing(CommitStay)
		e.sel.SetActiveCell(p)
	})
}

// SetSelection selects r (clamped) with the active cell at its top-left. An
// open edit is committed first.
func (e *Engine) SetSelection(r SelectionRange) {
	e.track(func() {
		e.commitIfEditing(CommitStay)
		e.sel.SetSelection(r)
	})
}

// MoveActive is the programmatic form of an arrow key press.
func (e *Engine) MoveActive(dir MoveDir, extend bool) {
	e.track(func() {
		e.commitIfEditing(CommitStay)
		e.sel.Move(Move{Unit: MoveCell, Dir: dir, Extend: extend})
	})
}

// CollapseToActive reduces the selection to the active cell and leaves edit
// mode without touching row data (Escape).
func (e *Engine) CollapseToActive() {
	e.track(func() {
		if e.edit.open {
			e.cancelEdit()
		}
		e.sel.Collapse()
	})
}

// Blur handles focus leaving the grid: an open edit commits and the engine
// goes idle.
func (e *Engine) Blur() {
	e.track(func() {
		if e.edit.open {
			e.commit(CommitBlur)
			return
		}
		e.sel.Clear()
	})
}

// MouseDown handles a primary-button press on a cell. With extend
// (shift+click) the selection grows from the current anchor.
func (e *Engine) MouseDown(p CellPosition, extend bool) {
	e.track(func() {
		if e.edit.open {
			if p == e.edit.cell {
				return
			}
			e.commit(CommitStay)
		}
		e.sel.BeginDrag(p, extend)
	})
}

// MouseOver extends the selection to p while dragging.
func (e *Engine) MouseOver(p CellPosition) {
	e.track(func() {
		e.sel.DragTo(p)
	})
}

// MouseUp ends a selection drag.
func (e *Engine) MouseUp() {
	e.sel.EndDrag()
}

// DoubleClick focuses p and opens an editor with its current value.
func (e *Engine) DoubleClick(p CellPosition) {
	e.track(func() {
		if e.edit.open && p == e.edit.cell {
			return
		}
		e.commitIfEditing(CommitStay)
		if !e.sel.SetActiveCell(p) {
			return
		}
		e.sel.EndDrag()
		e.startEditing(TriggerDoubleClick, "")
	})
}

// RowContextMenu raises the row-tag context event for row.
func (e *Engine) RowContextMenu(row int, source any) {
	if e.cfg.OnRowContextMenu == nil {
		return
	}
	e.cfg.OnRowContextMenu(RowContextMenuEvent{RowIndex: row, Source: source})
}

// Viewport builds virtualizer inputs from the configuration, the current row
// count and the host's scroll offset.
func (e *Engine) Viewport(scrollOffset int) Viewport {
	return Viewport{
		RowCount:     len(e.rows),
		Height:       e.cfg.Height,
		RowHeight:    e.cfg.RowHeight,
		ScrollOffset: scrollOffset,
		Overscan:     e.cfg.Overscan,
	}
}

// SetHeight updates the virtualizer viewport height (on resize).
func (e *Engine) SetHeight(h int) {
	if h < 0 {
		h = 0
	}
	e.cfg.Height = h
}

// Key handles one key press and reports whether the engine consumed it.
func (e *Engine) Key(ev KeyEvent) (handled bool) {
	e.track(func() {
		if e.edit.open {
			handled = e.keyEditing(ev)
			return
		}
		if _, ok := e.sel.Active(); !ok {
			return
		}
		handled = e.keyActive(ev)
	})
	return handled
}

func (e *Engine) keyActive(ev KeyEvent) bool {
	if dir, ok := arrowDir(ev.Key); ok {
		unit := MoveCell
		if ev.Ctrl {
			unit = MoveEdge
		}
		e.sel.Move(Move{Unit: unit, Dir: dir, Extend: ev.Shift})
		return true
	}

	switch ev.Key {
	case KeyHome, KeyEnd:
		dir := DirLeft
		if ev.Key == KeyEnd {
			dir = DirRight
		}
		e.sel.Move(Move{Unit: MoveEdge, Dir: dir, Extend: ev.Shift})
		if ev.Ctrl {
			vdir := DirUp
			if ev.Key == KeyEnd {
				vdir = DirDown
			}
			e.sel.Move(Move{Unit: MoveEdge, Dir: vdir, Extend: ev.Shift})
		}
		return true
	case KeyTab:
		if ev.Shift {
			e.advance(CommitPrev)
		} else {
			e.advance(CommitNext)
		}
		return true
	case KeyEnter:
		return e.startEditing(TriggerEnter, "")
	case KeyEscape:
		e.sel.Collapse()
		return true
	case KeyBackspace, KeyDelete:
		e.deleteSelection()
		return true
	case KeyRunes:
		if ev.Ctrl || ev.Text == "" {
			return false
		}
		return e.startEditing(TriggerType, ev.Text)
	default:
		return false
	}
}

// advance moves the active cell after a commit or a Tab press.
func (e *Engine) advance(move CommitMove) {
	p, ok := e.sel.Active()
	if !ok {
		return
	}
	lastCol, lastRow := len(e.cols)-1, len(e.rows)-1
	switch move {
	case CommitDown, CommitEnter:
		e.sel.Move(Move{Dir: DirDown})
	case CommitUp:
		e.sel.Move(Move{Dir: DirUp})
	case CommitLeft:
		e.sel.Move(Move{Dir: DirLeft})
	case CommitRight:
		e.sel.Move(Move{Dir: DirRight})
	case CommitNext:
		switch {
		case p.Col < lastCol:
			p.Col++
		case p.Row < lastRow:
			p = CellPosition{Col: 0, Row: p.Row + 1}
		}
		e.sel.SetActiveCell(p)
	case CommitPrev:
		switch {
		case p.Col > 0:
			p.Col--
		case p.Row > 0:
			p = CellPosition{Col: lastCol, Row: p.Row - 1}
		}
		e.sel.SetActiveCell(p)
	case CommitBlur:
		e.sel.Clear()
	default:
		e.sel.Collapse()
	}
}

// track runs fn and bumps the version and change notifications when the
// observable state moved.
func (e *Engine) track(fn func()) {
	prevActive, prevActiveOK := e.sel.Active()
	prevRange, prevRangeOK := e.sel.Range()
	prevEdit := e.EditState()
	prevRowsGen := e.rowsGen

	fn()

	active, activeOK := e.sel.Active()
	r, rOK := e.sel.Range()
	activeChanged := active != prevActive || activeOK != prevActiveOK
	rangeChanged := r != prevRange || rOK != prevRangeOK
	rowsChanged := e.rowsGen != prevRowsGen

	if activeChanged || rangeChanged || rowsChanged || e.EditState() != prevEdit {
		e.version++
	}
	if activeChanged && e.cfg.OnActiveCellChange != nil {
		cell, ok := e.ActiveCell()
		e.cfg.OnActiveCellChange(cell, ok)
	}
	if rangeChanged && e.cfg.OnSelectionChange != nil {
		e.cfg.OnSelectionChange(r, rOK)
	}
}

// emit installs the next row slice and hands it to the caller with ops.
func (e *Engine) emit(rows []Row, log *OperationLog) {
	e.rows = rows
	e.rowsGen++
	e.sel.Resize(len(e.cols), len(rows))
	ops := log.Operations()
	e.log.WithField("ops", ops).Debug("rows changed")
	if e.cfg.OnChange != nil {
		e.cfg.OnChange(rows, ops)
	}
}

func (e *Engine) newRow() Row {
	if e.cfg.NewRow != nil {
		if r := e.cfg.NewRow(); r != nil {
			return r
		}
		return Row{}
	}
	if e.cfg.RowTemplate != nil {
		return CloneRow(e.cfg.RowTemplate)
	}
	return Row{}
}

func (e *Engine) cellDisabled(p CellPosition) bool {
	if p.Col < 0 || p.Col >= len(e.cols) || p.Row < 0 || p.Row >= len(e.rows) {
		return true
	}
	return e.cols[p.Col].disabledAt(p.Row, e.rows[p.Row])
}

// CellDisabled reports whether the cell at p is read-only.
func (e *Engine) CellDisabled(p CellPosition) bool { return e.cellDisabled(p) }
