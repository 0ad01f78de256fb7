package grid

import "testing"

func TestVisibleRows(t *testing.T) {
	cases := []struct {
		name string
		v    Viewport
		want RowWindow
	}{
		{
			name: "terminal lines",
			v:    Viewport{RowCount: 100, Height: 10, RowHeight: 1, ScrollOffset: 20, Overscan: 2},
			want: RowWindow{First: 18, Last: 32},
		},
		{
			name: "pixel rows",
			v:    Viewport{RowCount: 1000, Height: 400, RowHeight: 20, ScrollOffset: 1000, Overscan: 3},
			want: RowWindow{First: 47, Last: 73},
		},
		{
			name: "top of grid",
			v:    Viewport{RowCount: 5, Height: 3, RowHeight: 1, Overscan: 4},
			want: RowWindow{First: 0, Last: 4},
		},
		{
			name: "scrolled past the end",
			v:    Viewport{RowCount: 5, Height: 3, RowHeight: 1, ScrollOffset: 500},
			want: RowWindow{First: 4, Last: 4},
		},
		{
			name: "zero row height counts as one",
			v:    Viewport{RowCount: 50, Height: 4, ScrollOffset: 10},
			want: RowWindow{First: 10, Last: 14},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := VisibleRows(tc.v)
			if !ok {
				t.Fatalf("expected ok")
			}
			if got != tc.want {
				t.Fatalf("window=%+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestVisibleRows_Empty(t *testing.T) {
	w, ok := VisibleRows(Viewport{RowCount: 0, Height: 10, RowHeight: 1})
	if ok {
		t.Fatalf("expected !ok without rows")
	}
	if w.Len() != 0 || w.Contains(0) {
		t.Fatalf("window=%+v, want empty", w)
	}
}

func TestScrollToReveal(t *testing.T) {
	v := Viewport{RowCount: 100, Height: 10, RowHeight: 1}
	if got, want := ScrollToReveal(v, 15), 6; got != want {
		t.Fatalf("reveal below: got %d, want %d", got, want)
	}
	v.ScrollOffset = 6
	if got, want := ScrollToReveal(v, 3), 3; got != want {
		t.Fatalf("reveal above: got %d, want %d", got, want)
	}
	if got, want := ScrollToReveal(v, 8), 6; got != want {
		t.Fatalf("already visible: got %d, want %d", got, want)
	}
	if got, want := ScrollToReveal(v, 500), 90; got != want {
		t.Fatalf("past the end: got %d, want %d", got, want)
	}
	if got, want := ContentHeight(Viewport{RowCount: 7, RowHeight: 3}), 21; got != want {
		t.Fatalf("content height: got %d, want %d", got, want)
	}
}
