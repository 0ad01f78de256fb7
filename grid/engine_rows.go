package grid

import (
	"strconv"
	"strings"
)

// ParseRowCount converts the add-rows count input into a row count: the
// leading integer of text, at least 1. Unparsable text yields 1, and
// "456xyz" yields 456.
func ParseRowCount(text string) int {
	text = strings.TrimSpace(text)
	end := 0
	if end < len(text) && (text[end] == '-' || text[end] == '+') {
		end++
	}
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(text[:end])
	if err != nil {
		return 1
	}
	return ClampRowCount(n)
}

// ClampRowCount clamps an add-row count to the minimum of 1.
func ClampRowCount(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// AddRows appends count rows (at least 1) and focuses the first new row.
// It reports false when rows are locked.
func (e *Engine) AddRows(count int) (added bool) {
	if e.cfg.LockRows {
		return false
	}
	count = ClampRowCount(count)
	e.track(func() {
		e.commitIfEditing(CommitStay)
		n := len(e.rows)
		e.insertRows(n, e.freshRows(count))
		added = true
	})
	return added
}

// InsertRowBelow inserts one row after the active row.
func (e *Engine) InsertRowBelow() (inserted bool) {
	if e.cfg.LockRows {
		return false
	}
	e.track(func() {
		e.commitIfEditing(CommitStay)
		p, ok := e.sel.Active()
		if !ok {
			return
		}
		e.insertRows(p.Row+1, e.freshRows(1))
		inserted = true
	})
	return inserted
}

// DuplicateRows inserts deep copies of the selected rows right after them and
// selects the copies.
func (e *Engine) DuplicateRows() (duplicated bool) {
	if e.cfg.LockRows {
		return false
	}
	e.track(func() {
		e.commitIfEditing(CommitStay)
		r, ok := e.sel.Range()
		if !ok {
			return
		}
		copies := make([]Row, 0, r.Height())
		for row := r.Min.Row; row <= r.Max.Row; row++ {
			copies = append(copies, CloneRow(e.rows[row]))
		}
		at := r.Max.Row + 1
		e.insertRows(at, copies)
		e.sel.SetSelection(SelectionRange{
			Min: CellPosition{Col: r.Min.Col, Row: at},
			Max: CellPosition{Col: r.Max.Col, Row: at + len(copies) - 1},
		})
		duplicated = true
	})
	return duplicated
}

// DeleteRows removes every row spanned by the selection.
func (e *Engine) DeleteRows() (deleted bool) {
	if e.cfg.LockRows {
		return false
	}
	e.track(func() {
		if e.edit.open {
			e.cancelEdit()
		}
		r, ok := e.sel.Range()
		if !ok {
			return
		}
		w := newRowWriter(e.rows)
		w.remove(r.Min.Row, r.Max.Row+1)
		var log OperationLog
		log.Delete(r.Min.Row, r.Max.Row+1)
		e.emit(w.result(), &log)

		if len(e.rows) == 0 {
			e.sel.Clear()
		} else {
			e.sel.SetActiveCell(CellPosition{Col: r.Min.Col, Row: r.Min.Row})
		}
		deleted = true
	})
	return deleted
}

func (e *Engine) freshRows(n int) []Row {
	out := make([]Row, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, e.newRow())
	}
	return out
}

// insertRows inserts rows at index at, emits one CREATE and focuses the first
// inserted row (keeping the active column).
func (e *Engine) insertRows(at int, rows []Row) {
	w := newRowWriter(e.rows)
	w.insert(at, rows...)
	var log OperationLog
	log.Create(at, at+len(rows))
	e.emit(w.result(), &log)

	col := 0
	if p, ok := e.sel.Active(); ok {
		col = p.Col
	}
	e.sel.SetActiveCell(CellPosition{Col: col, Row: at})
}
