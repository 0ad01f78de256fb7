package grid

import "fmt"

// OpKind identifies what happened to a row range.
type OpKind uint8

const (
	OpUpdate OpKind = iota
	OpCreate
	OpDelete
)

func (k OpKind) String() string {
	switch k {
	case OpCreate:
		return "CREATE"
	case OpDelete:
		return "DELETE"
	case OpUpdate:
		return "UPDATE"
	default:
		return "UNKNOWN"
	}
}

// MarshalText renders the kind as its upper-case name.
func (k OpKind) MarshalText() ([]byte, error) {
	if k > OpDelete {
		return nil, fmt.Errorf("unknown operation kind %d", k)
	}
	return []byte(k.String()), nil
}

// UnmarshalText parses an upper-case kind name.
func (k *OpKind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "CREATE":
		*k = OpCreate
	case "DELETE":
		*k = OpDelete
	case "UPDATE":
		*k = OpUpdate
	default:
		return fmt.Errorf("unknown operation kind %q", b)
	}
	return nil
}

// Operation describes one contiguous row range affected by a user action.
//
// Row indices refer to the row slice as it was when the operation applied:
// [FromRowIndex, ToRowIndex).
type Operation struct {
	Type         OpKind `json:"type"`
	FromRowIndex int    `json:"fromRowIndex"`
	ToRowIndex   int    `json:"toRowIndex"`
}

func (op Operation) String() string {
	return fmt.Sprintf("%s[%d,%d)", op.Type, op.FromRowIndex, op.ToRowIndex)
}

// Len returns the number of rows covered.
func (op Operation) Len() int { return op.ToRowIndex - op.FromRowIndex }

// OperationLog collects the operations of one user gesture in the order they
// occurred, merging adjacent records of the same kind.
type OperationLog struct {
	ops []Operation
}

// Append records op, merging it into the previous record when possible.
// Empty ranges are ignored.
func (l *OperationLog) Append(op Operation) {
	if op.ToRowIndex <= op.FromRowIndex {
		return
	}
	if n := len(l.ops); n > 0 {
		if merged, ok := mergeOperations(l.ops[n-1], op); ok {
			l.ops[n-1] = merged
			return
		}
	}
	l.ops = append(l.ops, op)
}

func (l *OperationLog) Update(from, to int) {
	l.Append(Operation{Type: OpUpdate, FromRowIndex: from, ToRowIndex: to})
}

func (l *OperationLog) Create(from, to int) {
	l.Append(Operation{Type: OpCreate, FromRowIndex: from, ToRowIndex: to})
}

func (l *OperationLog) Delete(from, to int) {
	l.Append(Operation{Type: OpDelete, FromRowIndex: from, ToRowIndex: to})
}

// Len returns the number of records.
func (l *OperationLog) Len() int { return len(l.ops) }

// Operations returns a copy of the records.
func (l *OperationLog) Operations() []Operation {
	return append([]Operation(nil), l.ops...)
}

// mergeOperations coalesces b into a when both describe one contiguous change
// of the same kind.
func mergeOperations(a, b Operation) (Operation, bool) {
	if a.Type != b.Type {
		return Operation{}, false
	}
	switch a.Type {
	case OpUpdate:
		// Overlapping or touching updates become their union.
		if b.FromRowIndex > a.ToRowIndex || b.ToRowIndex < a.FromRowIndex {
			return Operation{}, false
		}
		return Operation{
			Type:         OpUpdate,
			FromRowIndex: minInt(a.FromRowIndex, b.FromRowIndex),
			ToRowIndex:   maxInt(a.ToRowIndex, b.ToRowIndex),
		}, true
	case OpCreate:
		// Rows appended right after the previous insertion.
		if b.FromRowIndex == a.ToRowIndex {
			return Operation{Type: OpCreate, FromRowIndex: a.FromRowIndex, ToRowIndex: b.ToRowIndex}, true
		}
		// Rows inserted right before it.
		if b.FromRowIndex == a.FromRowIndex {
			return Operation{Type: OpCreate, FromRowIndex: a.FromRowIndex, ToRowIndex: a.ToRowIndex + b.Len()}, true
		}
		return Operation{}, false
	case OpDelete:
		// b applies after a removed its rows, so indices are already shifted.
		if b.FromRowIndex == a.FromRowIndex {
			return Operation{Type: OpDelete, FromRowIndex: a.FromRowIndex, ToRowIndex: a.ToRowIndex + b.Len()}, true
		}
		if b.ToRowIndex == a.FromRowIndex {
			return Operation{Type: OpDelete, FromRowIndex: b.FromRowIndex, ToRowIndex: a.ToRowIndex}, true
		}
		return Operation{}, false
	default:
		return Operation{}, false
	}
}
