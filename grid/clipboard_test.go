package grid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEncodeRange_PlainAndHTML(t *testing.T) {
	r := SelectionRange{Min: CellPosition{Col: 0, Row: 0}, Max: CellPosition{Col: 1, Row: 1}}
	p := EncodeRange(peopleRows(), peopleColumns(), r, false)

	if want := "Elon\tMusk\nJeff\tBezos"; p.Plain != want {
		t.Fatalf("plain=%q, want %q", p.Plain, want)
	}
	if want := "<table><tr><td>Elon</td><td>Musk</td></tr><tr><td>Jeff</td><td>Bezos</td></tr></table>"; p.HTML != want {
		t.Fatalf("html=%q, want %q", p.HTML, want)
	}
}

func TestEncodeRange_Headers(t *testing.T) {
	r := SelectionRange{Min: CellPosition{Col: 1, Row: 1}, Max: CellPosition{Col: 1, Row: 1}}
	p := EncodeRange(peopleRows(), peopleColumns(), r, true)
	if want := "Last\nBezos"; p.Plain != want {
		t.Fatalf("plain=%q, want %q", p.Plain, want)
	}
}

func TestEncodeRange_NilValuesAreEmpty(t *testing.T) {
	rows := []Row{{"firstName": nil}}
	r := SelectionRange{Max: CellPosition{Col: 1, Row: 0}}
	p := EncodeRange(rows, peopleColumns(), r, false)
	if want := "\t"; p.Plain != want {
		t.Fatalf("plain=%q, want %q", p.Plain, want)
	}
}

func TestDecodePlain(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want [][]string
	}{
		{name: "empty", in: "", want: nil},
		{name: "single", in: "x", want: [][]string{{"x"}}},
		{name: "crlf with trailing newline", in: "a\tb\r\nc\td\r\n", want: [][]string{{"a", "b"}, {"c", "d"}}},
		{name: "ragged rows padded", in: "a\tb\nc", want: [][]string{{"a", "b"}, {"c", ""}}},
		{name: "trailing empty cell", in: "a\t", want: [][]string{{"a", ""}}},
		{name: "quoted multiline cell", in: "\"line1\nline2\"\tx", want: [][]string{{"line1\nline2", "x"}}},
		{name: "escaped quotes", in: "\"say \"\"hi\"\"\n!\"", want: [][]string{{"say \"hi\"\n!"}}},
		{name: "plain quotes kept", in: "\"quoted\"\tx", want: [][]string{{"\"quoted\"", "x"}}},
		{name: "unterminated quote kept", in: "\"open\nrow", want: [][]string{{"\"open"}, {"row"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, DecodePlain(tc.in)); diff != "" {
				t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeHTML(t *testing.T) {
	markup := `<meta charset="utf-8"><table><tbody>` +
		`<tr><th>A</th><td>x<br>y</td></tr>` +
		`<tr><td>1</td></tr>` +
		`</tbody></table><table><tr><td>ignored</td></tr></table>`
	want := [][]string{{"A", "x\ny"}, {"1", ""}}
	if diff := cmp.Diff(want, DecodeHTML(markup)); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([][]string{{"hello"}}, DecodeHTML("<b>hello</b>")); diff != "" {
		t.Fatalf("fallback mismatch (-want +got):\n%s", diff)
	}
	if got := DecodeHTML("   "); got != nil {
		t.Fatalf("blank markup=%v, want nil", got)
	}
}

func TestReadTransfer_PrefersPlain(t *testing.T) {
	dt := MapTransfer{
		MIMEPlain: "plain",
		MIMEHTML:  "<table><tr><td>html</td></tr></table>",
	}
	if diff := cmp.Diff([][]string{{"plain"}}, ReadTransfer(dt)); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
	delete(dt, MIMEPlain)
	if diff := cmp.Diff([][]string{{"html"}}, ReadTransfer(dt)); diff != "" {
		t.Fatalf("html fallback mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	matrix := [][]string{{"a", "b c"}, {"", "d"}}
	if diff := cmp.Diff(matrix, DecodePlain(EncodeMatrix(matrix).Plain)); diff != "" {
		t.Fatalf("plain round trip mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(matrix, DecodeHTML(EncodeMatrix(matrix).HTML)); diff != "" {
		t.Fatalf("html round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeMatrix_QuotesSpecialCells(t *testing.T) {
	cases := []struct {
		cell string
		want string
	}{
		{cell: "plain", want: "plain"},
		{cell: `mid "quote"`, want: `mid "quote"`},
		{cell: `"a`, want: `"""a"`},
		{cell: "x\ty", want: "\"x\ty\""},
		{cell: "l1\nl2", want: "\"l1\nl2\""},
	}
	for _, tc := range cases {
		if got := EncodeMatrix([][]string{{tc.cell}}).Plain; got != tc.want {
			t.Fatalf("EncodeMatrix(%q).Plain=%q, want %q", tc.cell, got, tc.want)
		}
	}
}

func TestEncodeDecode_RoundTripSpecialCells(t *testing.T) {
	matrix := [][]string{
		{`"a`, `b"`},
		{"x\ty", "l1\nl2"},
		{`"quoted"`, `say "hi"`},
	}
	if diff := cmp.Diff(matrix, DecodePlain(EncodeMatrix(matrix).Plain)); diff != "" {
		t.Fatalf("plain round trip mismatch (-want +got):\n%s", diff)
	}
}
