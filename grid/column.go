package grid

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ColumnType is the capability set every column type implements.
//
// The engine calls these but never implements value semantics itself.
type ColumnType interface {
	// Copy renders v as clipboard text. nil must render as "".
	Copy(v any) string
	// Paste converts clipboard or draft text into a value. On error the engine
	// stores DeleteValue instead.
	Paste(s string) (any, error)
	// DeleteValue is written by cut and delete.
	DeleteValue() any
	// ContinuousUpdates reports whether draft changes propagate immediately.
	// False marks a lazy column whose edits wait for a commit gesture.
	ContinuousUpdates() bool
}

// Placeholderer is implemented by column types that render a hint in empty cells.
type Placeholderer interface {
	Placeholder() string
}

// RowContext is passed to per-row column predicates.
type RowContext struct {
	RowIndex int
	Row      Row
}

// Column binds a ColumnType to a row field.
type Column struct {
	// ID is the stable column identifier. Defaults to Key.
	ID    string
	Key   string
	Title string
	Type  ColumnType

	// Disabled reports whether the cell in the given row is read-only.
	// nil means always enabled.
	Disabled func(RowContext) bool

	// Width is a rendering hint in terminal cells. 0 lets the host decide.
	Width int
}

// ColumnOption customizes a Column built by KeyColumn.
type ColumnOption func(*Column)

// WithTitle sets the header title.
func WithTitle(title string) ColumnOption {
	return func(c *Column) { c.Title = title }
}

// WithID overrides the column identifier.
func WithID(id string) ColumnOption {
	return func(c *Column) { c.ID = id }
}

// WithWidth sets the rendering width hint.
func WithWidth(w int) ColumnOption {
	return func(c *Column) { c.Width = w }
}

// WithDisabled marks cells as read-only when fn returns true.
func WithDisabled(fn func(RowContext) bool) ColumnOption {
	return func(c *Column) { c.Disabled = fn }
}

// AlwaysDisabled is a Disabled predicate for fully read-only columns.
func AlwaysDisabled(RowContext) bool { return true }

// KeyColumn builds a column reading and writing row[key] through t.
func KeyColumn(key string, t ColumnType, opts ...ColumnOption) Column {
	c := Column{ID: key, Key: key, Title: key, Type: t}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c Column) disabledAt(row int, r Row) bool {
	if c.Disabled == nil {
		return false
	}
	return c.Disabled(RowContext{RowIndex: row, Row: r})
}

func (c Column) copyValue(r Row) string {
	return c.Type.Copy(r.Get(c.Key))
}

func (c Column) parse(s string) (any, error) {
	v, err := c.Type.Paste(s)
	if err != nil {
		return c.Type.DeleteValue(), err
	}
	return v, nil
}

// TextOptions configures a text column type.
type TextOptions struct {
	// ContinuousUpdates propagates every keystroke. Default true via TextColumn.
	ContinuousUpdates bool
	Placeholder       string
	// AlignRight is a rendering hint for numeric-looking text.
	AlignRight bool
}

type textType struct {
	opt TextOptions
}

// TextColumn is a continuously updating string column; empty text becomes nil.
var TextColumn ColumnType = NewTextColumn(TextOptions{ContinuousUpdates: true})

// NewTextColumn returns a string column type.
func NewTextColumn(opt TextOptions) ColumnType {
	return textType{opt: opt}
}

func (t textType) Copy(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func (t textType) Paste(s string) (any, error) {
	s = strings.ReplaceAll(s, "\n", " ")
	if s == "" {
		return nil, nil
	}
	return s, nil
}

func (textType) DeleteValue() any          { return nil }
func (t textType) ContinuousUpdates() bool { return t.opt.ContinuousUpdates }
func (t textType) Placeholder() string     { return t.opt.Placeholder }
func (t textType) AlignRight() bool        { return t.opt.AlignRight }

type checkboxType struct{}

// CheckboxColumn stores bool values. Pasting "true", "yes", "on", "1", "x" or
// "checked" (any case) yields true; anything else false.
var CheckboxColumn ColumnType = checkboxType{}

func (checkboxType) Copy(v any) string {
	if b, ok := v.(bool); ok && b {
		return "true"
	}
	return "false"
}

func (checkboxType) Paste(s string) (any, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on", "1", "x", "checked":
		return true, nil
	default:
		return false, nil
	}
}

func (checkboxType) DeleteValue() any        { return false }
func (checkboxType) ContinuousUpdates() bool { return true }

type intType struct{}

// IntColumn stores int64 values; empty text becomes nil. Lazy, since partial
// numeric input is rarely a valid value.
var IntColumn ColumnType = intType{}

func (intType) Copy(v any) string {
	switch n := v.(type) {
	case nil:
		return ""
	case int64:
		return strconv.FormatInt(n, 10)
	case int:
		return strconv.Itoa(n)
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func (intType) Paste(s string) (any, error) {
	s = normalizeNumber(s)
	if s == "" {
		return nil, nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("parse int %q: %w", s, strconv.ErrSyntax)
	}
	return int64(math.Round(f)), nil
}

func (intType) DeleteValue() any        { return nil }
func (intType) ContinuousUpdates() bool { return false }
func (intType) AlignRight() bool        { return true }

type floatType struct{}

// FloatColumn stores float64 values; empty text becomes nil. Lazy.
var FloatColumn ColumnType = floatType{}

func (floatType) Copy(v any) string {
	switch n := v.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(n, 10)
	default:
		return fmt.Sprint(v)
	}
}

func (floatType) Paste(s string) (any, error) {
	s = normalizeNumber(s)
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("parse float %q: %w", s, strconv.ErrSyntax)
	}
	return f, nil
}

func (floatType) DeleteValue() any        { return nil }
func (floatType) ContinuousUpdates() bool { return false }
func (floatType) AlignRight() bool        { return true }

// normalizeNumber strips whitespace and thousands separators produced by
// spreadsheet number formats.
func normalizeNumber(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	return s
}

// validateColumns checks the collaborator contract and fills defaults.
func validateColumns(cols []Column) ([]Column, error) {
	out := make([]Column, len(cols))
	seen := make(map[string]int, len(cols))
	for i, c := range cols {
		if c.ID == "" {
			c.ID = c.Key
		}
		if c.Type == nil {
			return nil, NewColumnError(i, c.ID, ErrMissingColumnType)
		}
		if c.Key == "" {
			return nil, NewColumnError(i, c.ID, ErrMissingColumnKey)
		}
		if prev, dup := seen[c.ID]; dup {
			return nil, NewColumnError(i, c.ID, fmt.Errorf("%w: also used by column %d", ErrDuplicateColumn, prev))
		}
		seen[c.ID] = i
		out[i] = c
	}
	return out, nil
}
