package grid

// Viewport holds the inputs of row virtualization. Units are arbitrary but
// must agree (pixels for a GUI host, terminal lines for a TUI host).
type Viewport struct {
	RowCount     int
	Height       int
	RowHeight    int
	ScrollOffset int
	Overscan     int
}

// RowWindow is the inclusive range of rows to materialize.
type RowWindow struct {
	First int
	Last  int
}

// Len returns the number of rows in the window.
func (w RowWindow) Len() int {
	if w.Last < w.First {
		return 0
	}
	return w.Last - w.First + 1
}

// Contains reports whether row is materialized.
func (w RowWindow) Contains(row int) bool {
	return row >= w.First && row <= w.Last
}

// VisibleRows computes
//
//	[max(0, floor(s/h) - k), min(N-1, ceil((s+H)/h) + k)]
//
// ok is false when there are no rows. Non-positive row heights count as 1;
// negative scroll offsets, heights and overscans count as 0.
func VisibleRows(v Viewport) (RowWindow, bool) {
	if v.RowCount <= 0 {
		return RowWindow{First: 0, Last: -1}, false
	}
	h := v.RowHeight
	if h <= 0 {
		h = 1
	}
	s := maxInt(v.ScrollOffset, 0)
	height := maxInt(v.Height, 0)
	k := maxInt(v.Overscan, 0)

	first := s/h - k
	last := ceilDiv(s+height, h) + k
	return RowWindow{
		First: clampInt(first, 0, v.RowCount-1),
		Last:  clampInt(last, 0, v.RowCount-1),
	}, true
}

// ContentHeight is the total height of all rows.
func ContentHeight(v Viewport) int {
	h := v.RowHeight
	if h <= 0 {
		h = 1
	}
	return maxInt(v.RowCount, 0) * h
}

// MaxScrollOffset is the largest offset that still fills the viewport.
func MaxScrollOffset(v Viewport) int {
	return maxInt(ContentHeight(v)-maxInt(v.Height, 0), 0)
}

// ScrollToReveal returns the smallest change to v.ScrollOffset that makes row
// fully visible.
func ScrollToReveal(v Viewport, row int) int {
	h := v.RowHeight
	if h <= 0 {
		h = 1
	}
	s := clampInt(v.ScrollOffset, 0, MaxScrollOffset(v))
	if v.RowCount <= 0 || v.Height <= 0 {
		return s
	}
	row = clampInt(row, 0, v.RowCount-1)
	top := row * h
	bottom := top + h
	if top < s {
		return top
	}
	if bottom > s+v.Height {
		return clampInt(bottom-v.Height, 0, MaxScrollOffset(v))
	}
	return s
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
