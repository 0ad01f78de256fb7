package grid

import "testing"

type recordedChange struct {
	rows []Row
	ops  []Operation
}

type changeRecorder struct {
	calls []recordedChange
}

func (r *changeRecorder) onChange(rows []Row, ops []Operation) {
	r.calls = append(r.calls, recordedChange{rows: rows, ops: ops})
}

func (r *changeRecorder) last(t *testing.T) recordedChange {
	t.Helper()
	if len(r.calls) == 0 {
		t.Fatalf("expected an onChange call, got none")
	}
	return r.calls[len(r.calls)-1]
}

func peopleRows() []Row {
	return []Row{
		{"firstName": "Elon", "lastName": "Musk"},
		{"firstName": "Jeff", "lastName": "Bezos"},
	}
}

func peopleColumns() []Column {
	return []Column{
		KeyColumn("firstName", TextColumn, WithTitle("First")),
		KeyColumn("lastName", TextColumn, WithTitle("Last")),
	}
}

// newPeopleEngine builds a 2x2 engine over peopleRows. mod may adjust the
// config before the engine is created.
func newPeopleEngine(t *testing.T, mod func(*Config)) (*Engine, *changeRecorder) {
	t.Helper()
	rec := &changeRecorder{}
	cfg := Config{
		Columns:  peopleColumns(),
		Rows:     peopleRows(),
		OnChange: rec.onChange,
	}
	if mod != nil {
		mod(&cfg)
	}
	e, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e, rec
}

func cellText(e *Engine, col, row int) any {
	c := e.Columns()[col]
	return e.Rows()[row].Get(c.Key)
}
