package xlsxsource

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/iw2rmb/datagrid/grid"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, sheet string, cells map[string]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if sheet != "Sheet1" {
		if _, err := f.NewSheet(sheet); err != nil {
			t.Fatalf("NewSheet: %v", err)
		}
	}
	for cell, v := range cells {
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			t.Fatalf("SetCellValue(%s): %v", cell, err)
		}
	}
	path := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	return path
}

func TestLoad_ColumnsAndRows(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", map[string]any{
		"A1": "First Name", "B1": "Age", "C1": "Score", "D1": "",
		"A2": "Ada", "B2": 36, "C2": 9.5, "D2": "x",
		"A3": "Alan", "B3": 41, "C3": 7,
	})

	cols, rows, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cols) != 4 {
		t.Fatalf("len(cols)=%d, want 4", len(cols))
	}

	wantKeys := []string{"first_name", "age", "score", "D"}
	wantTitles := []string{"First Name", "Age", "Score", "D"}
	wantTypes := []grid.ColumnType{grid.TextColumn, grid.IntColumn, grid.FloatColumn, grid.TextColumn}
	for i, c := range cols {
		if c.Key != wantKeys[i] || c.Title != wantTitles[i] {
			t.Fatalf("col %d = (%q, %q), want (%q, %q)", i, c.Key, c.Title, wantKeys[i], wantTitles[i])
		}
		if c.Type != wantTypes[i] {
			t.Fatalf("col %d type=%T, want %T", i, c.Type, wantTypes[i])
		}
	}

	want := []grid.Row{
		{"first_name": "Ada", "age": int64(36), "score": 9.5, "D": "x"},
		{"first_name": "Alan", "age": int64(41), "score": float64(7)},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_DuplicateTitlesFallBackToLetters(t *testing.T) {
	path := writeWorkbook(t, "Data", map[string]any{
		"A1": "Name", "B1": "name",
		"A2": "a", "B2": "b",
	})

	cols, rows, err := Load(path, "Data")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cols[0].Key != "name" || cols[1].Key != "B" {
		t.Fatalf("keys=(%q, %q), want (name, B)", cols[0].Key, cols[1].Key)
	}
	if _, err := grid.New(grid.Config{Columns: cols, Rows: rows}); err != nil {
		t.Fatalf("grid.New rejected loaded columns: %v", err)
	}
}

func TestLoad_Errors(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", map[string]any{"A1": "x"})

	if _, _, err := Load(path, "Missing"); !errors.Is(err, ErrNoSheet) {
		t.Fatalf("err=%v, want ErrNoSheet", err)
	}
	if _, _, err := Load(filepath.Join(t.TempDir(), "nope.xlsx"), ""); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoad_EmptySheet(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", nil)

	cols, rows, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cols) != 0 || len(rows) != 0 {
		t.Fatalf("got %d cols, %d rows, want none", len(cols), len(rows))
	}
}

func TestSaveThenLoad(t *testing.T) {
	cols := []grid.Column{
		grid.KeyColumn("name", grid.TextColumn, grid.WithTitle("Name")),
		grid.KeyColumn("qty", grid.IntColumn, grid.WithTitle("Qty")),
	}
	rows := []grid.Row{
		{"name": "bolt", "qty": int64(12)},
		{"name": "nut"},
	}
	path := filepath.Join(t.TempDir(), "out.xlsx")
	if err := Save(path, "Parts", cols, rows); err != nil {
		t.Fatalf("Save: %v", err)
	}

	gotCols, gotRows, err := Load(path, "Parts")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(gotCols) != 2 || gotCols[1].Type != grid.IntColumn {
		t.Fatalf("cols=%+v, want name text and qty int", gotCols)
	}
	if diff := cmp.Diff(rows, gotRows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}
