package grid

import (
	"maps"
	"reflect"

	"github.com/mohae/deepcopy"
)

// Row is one application record keyed by Column.Key.
type Row map[string]any

// Get returns the value stored under key, or nil.
func (r Row) Get(key string) any {
	if r == nil {
		return nil
	}
	return r[key]
}

// CloneRow deep-copies r so nested values are not shared.
func CloneRow(r Row) Row {
	if r == nil {
		return Row{}
	}
	out, ok := deepcopy.Copy(r).(Row)
	if !ok || out == nil {
		return maps.Clone(r)
	}
	return out
}

// rowWriter applies cell writes to a row slice copy-on-write: the slice is
// copied once and each row is cloned on its first write. Untouched rows stay
// shared with the input slice.
type rowWriter struct {
	rows   []Row
	copied bool
	cloned map[int]bool
}

func newRowWriter(rows []Row) *rowWriter {
	return &rowWriter{rows: rows}
}

func (w *rowWriter) ensureCopy() {
	if w.copied {
		return
	}
	next := make([]Row, len(w.rows))
	copy(next, w.rows)
	w.rows = next
	w.copied = true
	w.cloned = make(map[int]bool)
}

// set writes v into rows[row][key] and reports whether the value changed.
func (w *rowWriter) set(row int, key string, v any) bool {
	if row < 0 || row >= len(w.rows) {
		return false
	}
	if valuesEqual(w.rows[row].Get(key), v) {
		return false
	}
	w.ensureCopy()
	if !w.cloned[row] {
		w.rows[row] = maps.Clone(w.rows[row])
		if w.rows[row] == nil {
			w.rows[row] = Row{}
		}
		w.cloned[row] = true
	}
	w.rows[row][key] = v
	return true
}

// insert places rows at index at, shifting later rows down.
func (w *rowWriter) insert(at int, rows ...Row) {
	if len(rows) == 0 {
		return
	}
	at = clampInt(at, 0, len(w.rows))
	next := make([]Row, 0, len(w.rows)+len(rows))
	next = append(next, w.rows[:at]...)
	next = append(next, rows...)
	next = append(next, w.rows[at:]...)

	cloned := make(map[int]bool, len(w.cloned)+len(rows))
	for i := range w.cloned {
		if i >= at {
			cloned[i+len(rows)] = true
		} else {
			cloned[i] = true
		}
	}
	for i := range rows {
		cloned[at+i] = true
	}
	w.rows = next
	w.copied = true
	w.cloned = cloned
}

// remove deletes rows [from, to).
func (w *rowWriter) remove(from, to int) {
	from = clampInt(from, 0, len(w.rows))
	to = clampInt(to, from, len(w.rows))
	if from == to {
		return
	}
	n := to - from
	next := make([]Row, 0, len(w.rows)-n)
	next = append(next, w.rows[:from]...)
	next = append(next, w.rows[to:]...)

	cloned := make(map[int]bool, len(w.cloned))
	for i := range w.cloned {
		switch {
		case i < from:
			cloned[i] = true
		case i >= to:
			cloned[i-n] = true
		}
	}
	w.rows = next
	w.copied = true
	w.cloned = cloned
}

// result returns the written slice. It is always a fresh slice, even when no
// cell changed.
func (w *rowWriter) result() []Row {
	w.ensureCopy()
	return w.rows
}

// valuesEqual compares cell values. Non-comparable values (slices, maps) are
// treated as different so a write is never silently dropped.
func valuesEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}
