package grid

import (
	"errors"
	"fmt"
)

// ErrMissingColumnType indicates a column without a ColumnType, so it has no
// copy/paste pair for clipboard interaction.
var ErrMissingColumnType = errors.New("column has no type")

// ErrMissingColumnKey indicates a column not bound to any row field.
var ErrMissingColumnKey = errors.New("column has no key")

// ErrDuplicateColumn indicates two columns sharing an identifier.
var ErrDuplicateColumn = errors.New("duplicate column id")

// ColumnError reports an inconsistent column configuration detected by New.
type ColumnError struct {
	Index int
	ID    string
	Err   error
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("invalid column %d (%q): %v", e.Index, e.ID, e.Err)
}

func (e *ColumnError) Unwrap() error {
	return e.Err
}

// NewColumnError creates a new ColumnError.
func NewColumnError(index int, id string, err error) *ColumnError {
	return &ColumnError{
		Index: index,
		ID:    id,
		Err:   err,
	}
}
