package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// DropLast removes the final grapheme cluster (backspace at end of draft).
func DropLast(text string) string {
	if text == "" {
		return ""
	}
	g := uniseg.NewGraphemes(text)
	last := 0
	for g.Next() {
		start, _ := g.Positions()
		last = start
	}
	return text[:last]
}

// Width returns the terminal cell width of text.
func Width(text string) int {
	w := 0
	for _, c := range Split(text) {
		w += clusterWidth(c)
	}
	return w
}

func clusterWidth(c string) int {
	w := runewidth.StringWidth(c)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		if fallback := uniseg.StringWidth(c); fallback > w {
			w = fallback
		}
	}
	return w
}

// Truncate cuts text to at most width cells without splitting clusters. When
// text is cut and tail fits, tail replaces the last cells.
func Truncate(text string, width int, tail string) string {
	if width <= 0 {
		return ""
	}
	if Width(text) <= width {
		return text
	}
	tw := Width(tail)
	if tw > width {
		tail, tw = "", 0
	}
	limit := width - tw

	var sb strings.Builder
	used := 0
	for _, c := range Split(text) {
		cw := clusterWidth(c)
		if used+cw > limit {
			break
		}
		sb.WriteString(c)
		used += cw
	}
	sb.WriteString(tail)
	return sb.String()
}

// TruncateLeft keeps the trailing clusters of text that fit in width cells.
func TruncateLeft(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if Width(text) <= width {
		return text
	}
	clusters := Split(text)
	used := 0
	start := len(clusters)
	for i := len(clusters) - 1; i >= 0; i-- {
		cw := clusterWidth(clusters[i])
		if used+cw > width {
			break
		}
		used += cw
		start = i
	}
	return strings.Join(clusters[start:], "")
}

// Pad right-pads (or, with alignRight, left-pads) text with spaces to width
// cells. Text wider than width is truncated with an ellipsis.
func Pad(text string, width int, alignRight bool) string {
	text = Truncate(text, width, "…")
	gap := width - Width(text)
	if gap <= 0 {
		return text
	}
	if alignRight {
		return strings.Repeat(" ", gap) + text
	}
	return text + strings.Repeat(" ", gap)
}
