// Package xlsxsource seeds grid columns and rows from an .xlsx workbook.
package xlsxsource

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/iw2rmb/datagrid/grid"
	"github.com/xuri/excelize/v2"
)

// ErrNoSheet is returned when the workbook has no sheet with the requested name.
var ErrNoSheet = errors.New("sheet not found")

// Load reads sheet (the first sheet when empty) from the workbook at path.
//
// The first row holds the column titles. Column keys are derived from the
// titles; an empty or repeated title falls back to the column letter.
// Columns whose cells all parse as integers become IntColumn, numeric
// columns FloatColumn, the rest TextColumn.
func Load(path, sheet string) ([]grid.Column, []grid.Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("xlsxsource: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, nil, fmt.Errorf("xlsxsource: %w", ErrNoSheet)
		}
		sheet = list[0]
	} else if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, nil, fmt.Errorf("xlsxsource: %q: %w", sheet, ErrNoSheet)
	}

	raw, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("xlsxsource: read %q: %w", sheet, err)
	}
	cols, rows := build(raw)
	return cols, rows, nil
}

// Save writes cols and rows to sheet of a new workbook at path, titles first.
func Save(path, sheet string, cols []grid.Column, rows []grid.Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheet == "" {
		sheet = "Sheet1"
	}
	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return fmt.Errorf("xlsxsource: %w", err)
		}
	}

	header := make([]any, len(cols))
	for i, c := range cols {
		header[i] = c.Title
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("xlsxsource: %w", err)
	}
	for r, row := range rows {
		values := make([]any, len(cols))
		for i, c := range cols {
			values[i] = row.Get(c.Key)
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return fmt.Errorf("xlsxsource: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("xlsxsource: %w", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("xlsxsource: %w", err)
	}
	return nil
}

type columnKind uint8

const (
	kindEmpty columnKind = iota
	kindInt
	kindFloat
	kindText
)

func build(raw [][]string) ([]grid.Column, []grid.Row) {
	if len(raw) == 0 {
		return nil, nil
	}
	width := 0
	for _, r := range raw {
		width = max(width, len(r))
	}

	header := raw[0]
	body := raw[1:]

	kinds := make([]columnKind, width)
	for _, r := range body {
		for i, s := range r {
			kinds[i] = widen(kinds[i], classify(s))
		}
	}

	cols := make([]grid.Column, width)
	seen := make(map[string]bool, width)
	for i := 0; i < width; i++ {
		letter, _ := excelize.ColumnNumberToName(i + 1)
		title := ""
		if i < len(header) {
			title = strings.TrimSpace(header[i])
		}
		key := columnKey(title)
		if key == "" || seen[key] {
			key = letter
		}
		seen[key] = true
		if title == "" {
			title = letter
		}
		cols[i] = grid.KeyColumn(key, columnType(kinds[i]), grid.WithTitle(title))
	}

	rows := make([]grid.Row, 0, len(body))
	for _, r := range body {
		row := make(grid.Row, len(r))
		for i, s := range r {
			if s == "" {
				continue
			}
			v, err := cols[i].Type.Paste(s)
			if err != nil || v == nil {
				continue
			}
			row[cols[i].Key] = v
		}
		rows = append(rows, row)
	}
	return cols, rows
}

func classify(s string) columnKind {
	s = strings.TrimSpace(s)
	if s == "" {
		return kindEmpty
	}
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return kindInt
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return kindFloat
	}
	return kindText
}

func widen(a, b columnKind) columnKind {
	return max(a, b)
}

func columnType(k columnKind) grid.ColumnType {
	switch k {
	case kindInt:
		return grid.IntColumn
	case kindFloat:
		return grid.FloatColumn
	default:
		return grid.TextColumn
	}
}

// columnKey lowercases title and joins its words with underscores.
func columnKey(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), "_")
}
