package grapheme

import "testing"

const family = "\U0001F468‍\U0001F469‍\U0001F467"

func TestSplitAndCount_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "é" + family + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "é" {
		t.Fatalf("split[1]=%q, want %q", got[1], "é")
	}
	if got[2] != family {
		t.Fatalf("split[2]=%q, want family emoji", got[2])
	}
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
}

func TestDropLast(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "a", want: ""},
		{in: "Jeff", want: "Jef"},
		{in: "ş", want: ""},
		{in: "aé", want: "a"},
		{in: "x" + family, want: "x"},
	}
	for _, tc := range cases {
		if got := DropLast(tc.in); got != tc.want {
			t.Fatalf("DropLast(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got, want := Truncate("Bezos", 10, "…"), "Bezos"; got != want {
		t.Fatalf("fits: got %q, want %q", got, want)
	}
	if got, want := Truncate("Bezos", 3, "…"), "Be…"; got != want {
		t.Fatalf("cut: got %q, want %q", got, want)
	}
	if got, want := Truncate("日本語", 5, ""), "日本"; got != want {
		t.Fatalf("wide runes: got %q, want %q", got, want)
	}
	if got := Truncate("abc", 0, "…"); got != "" {
		t.Fatalf("zero width: got %q, want empty", got)
	}
}

func TestTruncateLeft(t *testing.T) {
	if got, want := TruncateLeft("Bezos", 3), "zos"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got, want := TruncateLeft("a日本", 3), "本"; got != want {
		t.Fatalf("wide runes: got %q, want %q", got, want)
	}
	if got, want := TruncateLeft("ok", 5), "ok"; got != want {
		t.Fatalf("fits: got %q, want %q", got, want)
	}
}

func TestPad(t *testing.T) {
	if got, want := Pad("ab", 4, false), "ab  "; got != want {
		t.Fatalf("left aligned: got %q, want %q", got, want)
	}
	if got, want := Pad("42", 4, true), "  42"; got != want {
		t.Fatalf("right aligned: got %q, want %q", got, want)
	}
	if got, want := Width(Pad("Jeffrey", 4, false)), 4; got != want {
		t.Fatalf("truncated width: got %d, want %d", got, want)
	}
}
