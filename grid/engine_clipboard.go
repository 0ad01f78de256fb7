package grid

// PendingPaste is a paste whose data arrives asynchronously (no synchronous
// transfer object). It captures the target at trigger time.
type PendingPaste struct {
	Origin    CellPosition
	Selection SelectionRange
}

// Copy serializes the selection into dt under text/plain and text/html.
// It is a no-op while editing (the cell editor owns the clipboard), when idle,
// or without a transfer object.
func (e *Engine) Copy(dt DataTransfer) (Payload, bool) {
	return e.copyTo(dt, false)
}

// CopyWithHeaders is Copy with a leading row of column titles.
func (e *Engine) CopyWithHeaders(dt DataTransfer) (Payload, bool) {
	return e.copyTo(dt, true)
}

func (e *Engine) copyTo(dt DataTransfer, headers bool) (Payload, bool) {
	if dt == nil || e.edit.open {
		return Payload{}, false
	}
	r, ok := e.sel.Range()
	if !ok {
		return Payload{}, false
	}
	p := EncodeRange(e.rows, e.cols, r, headers)
	p.WriteTo(dt)
	e.log.WithField("range", r.A1()).Debug("copied")
	return p, true
}

// Cut copies the selection into dt, then writes each column's DeleteValue into
// every enabled selected cell. It emits one UPDATE spanning the selection rows.
func (e *Engine) Cut(dt DataTransfer) (p Payload, ok bool) {
	e.track(func() {
		p, ok = e.copyTo(dt, false)
		if !ok {
			return
		}
		e.clearSelection()
	})
	return p, ok
}

// DeleteSelection clears every enabled selected cell (Delete/Backspace).
func (e *Engine) DeleteSelection() {
	e.track(func() {
		if e.edit.open {
			return
		}
		e.deleteSelection()
	})
}

func (e *Engine) deleteSelection() {
	if _, ok := e.sel.Range(); ok {
		e.clearSelection()
	}
}

func (e *Engine) clearSelection() {
	r, _ := e.sel.Range()
	w := newRowWriter(e.rows)
	for row := r.Min.Row; row <= r.Max.Row; row++ {
		for col := r.Min.Col; col <= r.Max.Col; col++ {
			c := e.cols[col]
			if c.disabledAt(row, e.rows[row]) {
				continue
			}
			w.set(row, c.Key, c.Type.DeleteValue())
		}
	}
	var log OperationLog
	log.Update(r.Min.Row, r.Max.Row+1)
	e.emit(w.result(), &log)
}

// Paste reads the matrix from dt and writes it at the active cell.
//
// With a nil dt the paste cannot complete synchronously: the returned
// PendingPaste captures the target and the host later calls ResolvePaste with
// the text read from the asynchronous clipboard. It returns nil when the
// paste was applied or ignored (idle, editing).
func (e *Engine) Paste(dt DataTransfer) *PendingPaste {
	if e.edit.open {
		return nil
	}
	origin, ok := e.sel.Active()
	if !ok {
		return nil
	}
	r, _ := e.sel.Range()
	if dt == nil {
		e.log.WithFields(cellFields(origin)).Debug("paste deferred to async clipboard")
		return &PendingPaste{Origin: origin, Selection: r}
	}
	matrix := ReadTransfer(dt)
	e.track(func() {
		e.applyPaste(origin, r, matrix)
	})
	return nil
}

// ResolvePaste applies a deferred paste with the plain text read from the
// clipboard, at the target captured when the paste was triggered.
func (e *Engine) ResolvePaste(p *PendingPaste, text string) {
	if p == nil {
		return
	}
	e.track(func() {
		e.commitIfEditing(CommitStay)
		origin, ok := ClampPos(p.Origin, len(e.cols), len(e.rows))
		if !ok {
			return
		}
		r, _ := ClampRange(p.Selection, len(e.cols), len(e.rows))
		e.applyPaste(origin, r, DecodePlain(text))
	})
}

// applyPaste writes matrix with its top-left at origin. A single value pasted
// into a multi-cell selection fills the selection.
func (e *Engine) applyPaste(origin CellPosition, sel SelectionRange, matrix [][]string) {
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return
	}

	if len(matrix) == 1 && len(matrix[0]) == 1 && !sel.IsSingleCell() && sel.Contains(origin) {
		e.fillPaste(sel, matrix[0][0])
		return
	}

	width := minInt(len(matrix[0]), len(e.cols)-origin.Col)
	height := len(matrix)

	var log OperationLog
	w := newRowWriter(e.rows)
	n := len(e.rows)
	if end := origin.Row + height; end > n {
		if e.cfg.AutoAddRow && !e.cfg.LockRows {
			added := make([]Row, 0, end-n)
			for i := n; i < end; i++ {
				added = append(added, e.newRow())
			}
			w.insert(n, added...)
			log.Create(n, end)
		} else {
			height = n - origin.Row
		}
	}
	if width <= 0 || height <= 0 {
		return
	}

	rows := w.rows
	for i := 0; i < height; i++ {
		row := origin.Row + i
		for j := 0; j < width; j++ {
			c := e.cols[origin.Col+j]
			if c.disabledAt(row, rows[row]) {
				continue
			}
			v, err := c.parse(matrix[i][j])
			if err != nil {
				e.log.WithFields(cellFields(CellPosition{Col: origin.Col + j, Row: row})).WithError(err).Debug("paste value fell back to delete value")
			}
			w.set(row, c.Key, v)
		}
	}
	log.Update(origin.Row, origin.Row+height)
	e.emit(w.result(), &log)

	e.sel.SetSelection(SelectionRange{
		Min: origin,
		Max: CellPosition{Col: origin.Col + width - 1, Row: origin.Row + height - 1},
	})
}

func (e *Engine) fillPaste(sel SelectionRange, text string) {
	w := newRowWriter(e.rows)
	for row := sel.Min.Row; row <= sel.Max.Row; row++ {
		for col := sel.Min.Col; col <= sel.Max.Col; col++ {
			c := e.cols[col]
			if c.disabledAt(row, e.rows[row]) {
				continue
			}
			v, err := c.parse(text)
			if err != nil {
				e.log.WithFields(cellFields(CellPosition{Col: col, Row: row})).WithError(err).Debug("paste value fell back to delete value")
			}
			w.set(row, c.Key, v)
		}
	}
	var log OperationLog
	log.Update(sel.Min.Row, sel.Max.Row+1)
	e.emit(w.result(), &log)
	e.sel.SetSelection(sel)
}
