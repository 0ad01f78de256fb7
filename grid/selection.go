package grid

// MoveUnit selects how far a Move travels.
type MoveUnit int

const (
	MoveCell MoveUnit = iota
	MoveEdge          // to the first/last row or column in Dir
)

type MoveDir int

const (
	DirUp MoveDir = iota
	DirDown
	DirLeft
	DirRight
)

// Move describes one navigation step.
type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, grows the selection from the anchor; if false collapses it
}

// Selection owns the active cell and the selection rectangle of a grid.
//
// The zero value is an idle selection over an empty grid; call Resize before
// use. All setters clamp their input into the current grid bounds.
type Selection struct {
	cols int
	rows int

	has    bool
	active CellPosition
	anchor CellPosition
	corner CellPosition

	dragging bool
}

// NewSelection returns an idle selection over a cols x rows grid.
func NewSelection(cols, rows int) *Selection {
	s := &Selection{}
	s.Resize(cols, rows)
	return s
}

// Resize updates the grid bounds and re-clips the current state.
//
// When the grid becomes empty the selection goes idle.
func (s *Selection) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	s.cols, s.rows = cols, rows
	if !s.has {
		return
	}
	active, ok := ClampPos(s.active, cols, rows)
	if !ok {
		s.Clear()
		return
	}
	s.active = active
	s.anchor, _ = ClampPos(s.anchor, cols, rows)
	s.corner, _ = ClampPos(s.corner, cols, rows)
}

// Bounds returns the grid dimensions the selection is clipped to.
func (s *Selection) Bounds() (cols, rows int) { return s.cols, s.rows }

// Active returns the active cell. ok is false when idle.
func (s *Selection) Active() (CellPosition, bool) {
	if !s.has {
		return CellPosition{}, false
	}
	return s.active, true
}

// Range returns the selection rectangle. ok is false when idle.
func (s *Selection) Range() (SelectionRange, bool) {
	if !s.has {
		return SelectionRange{}, false
	}
	return rangeFromCorners(s.anchor, s.corner), true
}

// Anchor returns the fixed corner used when extending the selection.
func (s *Selection) Anchor() (CellPosition, bool) {
	if !s.has {
		return CellPosition{}, false
	}
	return s.anchor, true
}

// SetActiveCell focuses p and collapses the selection onto it.
func (s *Selection) SetActiveCell(p CellPosition) bool {
	p, ok := ClampPos(p, s.cols, s.rows)
	if !ok {
		return false
	}
	s.has = true
	s.active, s.anchor, s.corner = p, p, p
	return true
}

// SetSelection selects r and puts the active cell at its top-left corner.
func (s *Selection) SetSelection(r SelectionRange) bool {
	r, ok := ClampRange(r, s.cols, s.rows)
	if !ok {
		return false
	}
	s.has = true
	s.active = r.Min
	s.anchor = r.Min
	s.corner = r.Max
	return true
}

// Move applies one navigation step.
//
// Without Extend, the active cell moves (stopping at grid edges) and the
// selection collapses onto it. With Extend, the anchor stays fixed and the far
// corner moves; the active cell stays at the anchor.
func (s *Selection) Move(m Move) bool {
	if !s.has {
		return false
	}
	prevActive, prevAnchor, prevCorner := s.active, s.anchor, s.corner

	if m.Extend {
		s.corner = s.step(s.corner, m)
	} else {
		next := s.step(s.active, m)
		s.active, s.anchor, s.corner = next, next, next
	}
	return s.active != prevActive || s.anchor != prevAnchor || s.corner != prevCorner
}

func (s *Selection) step(p CellPosition, m Move) CellPosition {
	lastCol, lastRow := s.cols-1, s.rows-1
	switch m.Unit {
	case MoveEdge:
		switch m.Dir {
		case DirUp:
			p.Row = 0
		case DirDown:
			p.Row = lastRow
		case DirLeft:
			p.Col = 0
		case DirRight:
			p.Col = lastCol
		}
	default:
		switch m.Dir {
		case DirUp:
			p.Row--
		case DirDown:
			p.Row++
		case DirLeft:
			p.Col--
		case DirRight:
			p.Col++
		}
	}
	p, _ = ClampPos(p, s.cols, s.rows)
	return p
}

// Collapse reduces the selection to the active cell.
func (s *Selection) Collapse() bool {
	if !s.has || (s.anchor == s.active && s.corner == s.active) {
		return false
	}
	s.anchor, s.corner = s.active, s.active
	return true
}

// Clear drops the active cell and selection (idle).
func (s *Selection) Clear() {
	s.has = false
	s.dragging = false
	s.active, s.anchor, s.corner = CellPosition{}, CellPosition{}, CellPosition{}
}

// BeginDrag handles a mouse press on p. With extend (shift+click) the current
// anchor is kept and p becomes the far corner.
func (s *Selection) BeginDrag(p CellPosition, extend bool) bool {
	if extend && s.has {
		s.dragging = true
		return s.DragTo(p)
	}
	if !s.SetActiveCell(p) {
		return false
	}
	s.dragging = true
	return true
}

// DragTo extends the rectangle to p while a drag is in progress.
func (s *Selection) DragTo(p CellPosition) bool {
	if !s.has || !s.dragging {
		return false
	}
	p, _ = ClampPos(p, s.cols, s.rows)
	if p == s.corner {
		return false
	}
	s.corner = p
	return true
}

// EndDrag finishes a mouse drag.
func (s *Selection) EndDrag() { s.dragging = false }

// Dragging reports whether a mouse drag is in progress.
func (s *Selection) Dragging() bool { return s.dragging }
