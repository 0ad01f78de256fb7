package grid

import "github.com/iw2rmb/datagrid/internal/grapheme"

// StartEditing opens an editor on the active cell with its current value, as
// Enter does. It reports whether editing started.
func (e *Engine) StartEditing() (started bool) {
	e.track(func() {
		if e.edit.open {
			return
		}
		started = e.startEditing(TriggerEnter, "")
	})
	return started
}

// SetDraft replaces the draft of the open editor. Hosts with their own cell
// editor call it on every change. Continuous columns propagate immediately.
func (e *Engine) SetDraft(text string) {
	e.track(func() {
		if !e.edit.open || e.edit.draft == text {
			return
		}
		e.edit.draft = text
		e.draftChanged()
	})
}

// CommitEdit commits the open editor and moves the active cell per move.
func (e *Engine) CommitEdit(move CommitMove) {
	e.track(func() {
		e.commitIfEditing(move)
	})
}

// CancelEdit discards the open editor's draft (Escape while editing).
func (e *Engine) CancelEdit() {
	e.track(func() {
		if e.edit.open {
			e.cancelEdit()
		}
	})
}

func (e *Engine) startEditing(trigger EditTrigger, text string) bool {
	p, ok := e.sel.Active()
	if !ok || e.cellDisabled(p) {
		return false
	}
	col := e.cols[p.Col]
	original := e.rows[p.Row].Get(col.Key)

	e.sel.Collapse()
	e.edit = editSession{
		open:     true,
		cell:     p,
		col:      col,
		original: original,
	}
	switch trigger {
	case TriggerType:
		// Type to replace: the keystroke becomes the whole draft.
		e.edit.draft = text
	default:
		e.edit.draft = col.Type.Copy(original)
	}
	e.log.WithFields(cellFields(p)).WithField("trigger", trigger).Debug("edit started")

	if trigger == TriggerType {
		e.draftChanged()
	}
	return true
}

func (e *Engine) keyEditing(ev KeyEvent) bool {
	if dir, ok := arrowDir(ev.Key); ok {
		e.commit(commitMoveForArrow(dir))
		return true
	}
	switch ev.Key {
	case KeyEnter:
		if ev.Shift {
			e.commit(CommitUp)
		} else {
			e.commit(CommitEnter)
		}
		return true
	case KeyTab:
		if ev.Shift {
			e.commit(CommitPrev)
		} else {
			e.commit(CommitNext)
		}
		return true
	case KeyEscape:
		e.cancelEdit()
		return true
	case KeyBackspace:
		if e.edit.draft == "" {
			return true
		}
		e.edit.draft = grapheme.DropLast(e.edit.draft)
		e.draftChanged()
		return true
	case KeyRunes:
		if ev.Ctrl || ev.Text == "" {
			return false
		}
		e.edit.draft += ev.Text
		e.draftChanged()
		return true
	default:
		return false
	}
}

// draftChanged propagates the draft of a continuous column. Lazy columns keep
// it local until commit.
func (e *Engine) draftChanged() {
	if e.edit.lazy() {
		return
	}
	value, err := e.edit.col.parse(e.edit.draft)
	if err != nil {
		e.log.WithFields(cellFields(e.edit.cell)).WithError(err).Debug("draft parse failed")
	}
	w := newRowWriter(e.rows)
	if !w.set(e.edit.cell.Row, e.edit.col.Key, value) {
		return
	}
	e.edit.propagated = true
	var log OperationLog
	log.Update(e.edit.cell.Row, e.edit.cell.Row+1)
	e.emit(w.result(), &log)
}

func (e *Engine) commitIfEditing(move CommitMove) {
	if e.edit.open {
		e.commit(move)
	}
}

// commit writes the draft, emits the net change of the edit and advances the
// active cell.
func (e *Engine) commit(move CommitMove) {
	s := e.edit
	e.edit.reset()

	value, err := s.col.parse(s.draft)
	if err != nil {
		e.log.WithFields(cellFields(s.cell)).WithError(err).Debug("commit parse failed, using delete value")
	}

	var log OperationLog
	w := newRowWriter(e.rows)
	wrote := w.set(s.cell.Row, s.col.Key, value)

	n := len(e.rows)
	created := false
	if move == CommitEnter && s.cell.Row == n-1 && e.cfg.AutoAddRow && !e.cfg.LockRows {
		w.insert(n, e.newRow())
		log.Create(n, n+1)
		created = true
	}
	// A continuous draft has already reached the rows; its commit only
	// reports the cell when something new is written or a row was added.
	changed := wrote || !valuesEqual(value, s.original)
	if wrote || (changed && (s.lazy() || created)) {
		log.Update(s.cell.Row, s.cell.Row+1)
	}

	e.log.WithFields(cellFields(s.cell)).WithField("ops", log.Len()).Debug("edit committed")
	if log.Len() > 0 {
		e.emit(w.result(), &log)
	}
	e.advance(move)
}

func (e *Engine) cancelEdit() {
	e.log.WithFields(cellFields(e.edit.cell)).Debug("edit cancelled")
	e.edit.reset()
}
