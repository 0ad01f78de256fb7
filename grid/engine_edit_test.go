package grid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func ageColumns() []Column {
	return append(peopleColumns(), KeyColumn("age", IntColumn, WithTitle("Age")))
}

func TestEngine_EnterOnLastRowAutoAddsRow(t *testing.T) {
	e, rec := newPeopleEngine(t, func(cfg *Config) { cfg.AutoAddRow = true })
	e.SetActiveCell(CellPosition{Col: 0, Row: 1})

	e.Key(KeyEvent{Key: KeyEnter})
	e.Key(KeyEvent{Key: KeyRunes, Text: "!"})
	e.Key(KeyEvent{Key: KeyEnter})

	if got := e.RowCount(); got != 3 {
		t.Fatalf("rows=%d, want 3", got)
	}
	want := []Operation{
		{Type: OpCreate, FromRowIndex: 2, ToRowIndex: 3},
		{Type: OpUpdate, FromRowIndex: 1, ToRowIndex: 2},
	}
	if diff := cmp.Diff(want, rec.last(t).ops); diff != "" {
		t.Fatalf("operations mismatch (-want +got):\n%s", diff)
	}
	if got := cellText(e, 0, 1); got != "Jeff!" {
		t.Fatalf("edited cell=%v, want %q", got, "Jeff!")
	}
	if got := len(e.Rows()[2]); got != 0 {
		t.Fatalf("new row=%v, want empty", e.Rows()[2])
	}
	a, _ := e.ActiveCell()
	if a.Position() != (CellPosition{Col: 0, Row: 2}) {
		t.Fatalf("active=%v, want A3", a.Position())
	}
}

func TestEngine_ArrowDownOnLastRowDoesNotAddRow(t *testing.T) {
	e, rec := newPeopleEngine(t, func(cfg *Config) {
		cfg.AutoAddRow = true
		cfg.Columns = ageColumns()
	})
	e.SetActiveCell(CellPosition{Col: 2, Row: 1})

	e.Key(KeyEvent{Key: KeyRunes, Text: "9"})
	e.Key(KeyEvent{Key: KeyDown})

	if got := e.RowCount(); got != 2 {
		t.Fatalf("rows=%d, want 2", got)
	}
	want := []Operation{{Type: OpUpdate, FromRowIndex: 1, ToRowIndex: 2}}
	if diff := cmp.Diff(want, rec.last(t).ops); diff != "" {
		t.Fatalf("operations mismatch (-want +got):\n%s", diff)
	}
	a, _ := e.ActiveCell()
	if a.Position() != (CellPosition{Col: 2, Row: 1}) {
		t.Fatalf("active=%v, want C2", a.Position())
	}
}

func TestEngine_CommitMoveDownOnLastRowDoesNotAddRow(t *testing.T) {
	e, rec := newPeopleEngine(t, func(cfg *Config) { cfg.AutoAddRow = true })
	e.SetActiveCell(CellPosition{Col: 0, Row: 1})
	e.StartEditing()
	e.SetDraft("Jeffrey")
	e.CommitEdit(CommitDown)

	if got := e.RowCount(); got != 2 {
		t.Fatalf("rows=%d, want 2", got)
	}
	for _, c := range rec.calls {
		for _, op := range c.ops {
			if op.Type == OpCreate {
				t.Fatalf("unexpected %v", op)
			}
		}
	}
}

func TestEngine_EnterOnLastRowWithLockedRows(t *testing.T) {
	e, rec := newPeopleEngine(t, func(cfg *Config) {
		cfg.AutoAddRow = true
		cfg.LockRows = true
	})
	e.SetActiveCell(CellPosition{Col: 0, Row: 1})
	e.Key(KeyEvent{Key: KeyEnter})
	e.Key(KeyEvent{Key: KeyEnter})

	if got := e.RowCount(); got != 2 {
		t.Fatalf("rows=%d, want 2", got)
	}
	if len(rec.calls) != 0 {
		t.Fatalf("unchanged commit must not emit, got %v", rec.calls)
	}
}

func TestEngine_LazyColumnEmitsOnceOnCommit(t *testing.T) {
	commits := []struct {
		name   string
		commit func(e *Engine)
	}{
		{name: "enter", commit: func(e *Engine) { e.Key(KeyEvent{Key: KeyEnter}) }},
		{name: "tab", commit: func(e *Engine) { e.Key(KeyEvent{Key: KeyTab}) }},
		{name: "arrow", commit: func(e *Engine) { e.Key(KeyEvent{Key: KeyUp}) }},
		{name: "blur", commit: func(e *Engine) { e.Blur() }},
	}
	for _, tc := range commits {
		t.Run(tc.name, func(t *testing.T) {
			e, rec := newPeopleEngine(t, func(cfg *Config) { cfg.Columns = ageColumns() })
			e.SetActiveCell(CellPosition{Col: 2, Row: 0})

			e.Key(KeyEvent{Key: KeyRunes, Text: "4"})
			e.Key(KeyEvent{Key: KeyRunes, Text: "2"})
			e.Key(KeyEvent{Key: KeyBackspace})
			e.Key(KeyEvent{Key: KeyRunes, Text: "3"})
			if len(rec.calls) != 0 {
				t.Fatalf("lazy keystrokes emitted %d calls", len(rec.calls))
			}
			if st := e.EditState(); st.Draft != "43" || st.Committed {
				t.Fatalf("state=%+v, want uncommitted draft 43", st)
			}

			tc.commit(e)
			if len(rec.calls) != 1 {
				t.Fatalf("calls=%d, want 1", len(rec.calls))
			}
			if got := rec.calls[0].rows[0].Get("age"); got != int64(43) {
				t.Fatalf("age=%#v, want int64(43)", got)
			}
			want := []Operation{{Type: OpUpdate, FromRowIndex: 0, ToRowIndex: 1}}
			if diff := cmp.Diff(want, rec.calls[0].ops); diff != "" {
				t.Fatalf("operations mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEngine_ContinuousColumnPropagatesEveryKeystroke(t *testing.T) {
	e, rec := newPeopleEngine(t, nil)
	e.SetActiveCell(CellPosition{})

	e.Key(KeyEvent{Key: KeyRunes, Text: "Z"})
	e.Key(KeyEvent{Key: KeyRunes, Text: "o"})
	if len(rec.calls) != 2 {
		t.Fatalf("calls=%d, want 2", len(rec.calls))
	}
	if got := cellText(e, 0, 0); got != "Zo" {
		t.Fatalf("cell=%v, want Zo", got)
	}
	if st := e.EditState(); st.Mode != EditEditing || !st.Committed {
		t.Fatalf("state=%+v, want editing with a committed draft", st)
	}
}

func TestEngine_EscapeNeverEmits(t *testing.T) {
	t.Run("lazy", func(t *testing.T) {
		e, rec := newPeopleEngine(t, func(cfg *Config) {
			cfg.Columns = ageColumns()
			cfg.Rows = []Row{{"age": int64(30)}}
		})
		e.SetActiveCell(CellPosition{Col: 2, Row: 0})
		e.Key(KeyEvent{Key: KeyRunes, Text: "5"})
		e.Key(KeyEvent{Key: KeyEscape})

		if len(rec.calls) != 0 {
			t.Fatalf("calls=%d, want 0", len(rec.calls))
		}
		if got := cellText(e, 2, 0); got != int64(30) {
			t.Fatalf("age=%#v, want 30", got)
		}
		if st := e.EditState(); st.Mode != EditActive {
			t.Fatalf("mode=%v, want active", st.Mode)
		}
	})

	t.Run("continuous", func(t *testing.T) {
		e, rec := newPeopleEngine(t, nil)
		e.SetActiveCell(CellPosition{})
		e.Key(KeyEvent{Key: KeyRunes, Text: "Z"})
		before := len(rec.calls)
		rows := e.Rows()

		e.Key(KeyEvent{Key: KeyEscape})
		if len(rec.calls) != before {
			t.Fatalf("escape emitted %d extra calls", len(rec.calls)-before)
		}
		if &e.Rows()[0] != &rows[0] {
			t.Fatalf("escape replaced the row slice")
		}
	})
}

func TestEngine_DisabledCellsDoNotEdit(t *testing.T) {
	e, rec := newPeopleEngine(t, func(cfg *Config) {
		cfg.Columns = []Column{
			KeyColumn("firstName", TextColumn, WithDisabled(func(rc RowContext) bool { return rc.RowIndex == 0 })),
			KeyColumn("lastName", TextColumn),
		}
	})
	e.SetActiveCell(CellPosition{})
	if e.StartEditing() {
		t.Fatalf("expected editing to be refused on a disabled cell")
	}
	e.Key(KeyEvent{Key: KeyRunes, Text: "x"})
	if len(rec.calls) != 0 || e.EditState().Mode != EditActive {
		t.Fatalf("typing on a disabled cell changed state")
	}
	if !e.CellDisabled(CellPosition{}) || e.CellDisabled(CellPosition{Row: 1}) {
		t.Fatalf("CellDisabled mismatch")
	}
}

func TestEngine_SetDraftAndCommitMoves(t *testing.T) {
	e, rec := newPeopleEngine(t, nil)
	e.SetActiveCell(CellPosition{Col: 1, Row: 0})
	e.StartEditing()
	e.SetDraft("Tesla")
	e.CommitEdit(CommitNext)

	if got := cellText(e, 1, 0); got != "Tesla" {
		t.Fatalf("cell=%v, want Tesla", got)
	}
	a, _ := e.ActiveCell()
	if a.Position() != (CellPosition{Col: 0, Row: 1}) {
		t.Fatalf("active=%v, want A2 after tab wrap", a.Position())
	}
	// The continuous draft propagated once; the commit adds nothing.
	if len(rec.calls) != 1 {
		t.Fatalf("calls=%d, want 1", len(rec.calls))
	}
}

func TestEngine_ContinuousCommitDoesNotEmitAgain(t *testing.T) {
	e, rec := newPeopleEngine(t, nil)
	e.SetActiveCell(CellPosition{})

	e.Key(KeyEvent{Key: KeyRunes, Text: "Z"})
	if len(rec.calls) != 1 {
		t.Fatalf("calls after typing=%d, want 1", len(rec.calls))
	}
	e.Key(KeyEvent{Key: KeyEnter})
	e.Key(KeyEvent{Key: KeyRunes, Text: "Q"})
	e.Key(KeyEvent{Key: KeyTab})

	// "Z" then "Q" propagated; neither Enter nor Tab committed a second time.
	if len(rec.calls) != 2 {
		t.Fatalf("calls=%d, want 2", len(rec.calls))
	}
	if got := cellText(e, 0, 1); got != "Q" {
		t.Fatalf("cell=%v, want Q", got)
	}
	if e.RowCount() != 2 {
		t.Fatalf("rows=%d, want 2", e.RowCount())
	}
}

func TestEngine_MouseDownElsewhereCommits(t *testing.T) {
	e, rec := newPeopleEngine(t, func(cfg *Config) { cfg.Columns = ageColumns() })
	e.SetActiveCell(CellPosition{Col: 2, Row: 1})
	e.Key(KeyEvent{Key: KeyRunes, Text: "9"})

	e.MouseDown(CellPosition{Col: 2, Row: 1}, false)
	if e.EditState().Mode != EditEditing {
		t.Fatalf("clicking the edited cell should keep editing")
	}
	e.MouseDown(CellPosition{Col: 0, Row: 0}, false)
	e.MouseUp()
	if len(rec.calls) != 1 || cellText(e, 2, 1) != int64(9) {
		t.Fatalf("calls=%d age=%v, want one commit of 9", len(rec.calls), cellText(e, 2, 1))
	}
}

func TestEngine_InvalidNumberCommitsDeleteValue(t *testing.T) {
	e, rec := newPeopleEngine(t, func(cfg *Config) {
		cfg.Columns = ageColumns()
		cfg.Rows = []Row{{"age": int64(30)}}
	})
	e.SetActiveCell(CellPosition{Col: 2, Row: 0})
	e.Key(KeyEvent{Key: KeyRunes, Text: "x"})
	e.Key(KeyEvent{Key: KeyEnter})
	if got := cellText(e, 2, 0); got != nil {
		t.Fatalf("age=%#v, want nil", got)
	}
	if len(rec.calls) != 1 {
		t.Fatalf("calls=%d, want 1", len(rec.calls))
	}
}
