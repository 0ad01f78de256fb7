package grid

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// MIME types written on copy/cut and read on paste.
const (
	MIMEPlain = "text/plain"
	MIMEHTML  = "text/html"
)

// DataTransfer is the synchronous clipboard transfer object of a copy, cut or
// paste event.
type DataTransfer interface {
	GetData(format string) string
	SetData(format, data string)
}

// MapTransfer is an in-memory DataTransfer.
type MapTransfer map[string]string

func (t MapTransfer) GetData(format string) string { return t[format] }
func (t MapTransfer) SetData(format, data string)  { t[format] = data }

// Payload is the serialized form of a selection.
type Payload struct {
	Plain string
	HTML  string
}

// WriteTo stores both representations into dt.
func (p Payload) WriteTo(dt DataTransfer) {
	if dt == nil {
		return
	}
	dt.SetData(MIMEPlain, p.Plain)
	dt.SetData(MIMEHTML, p.HTML)
}

// EncodeRange serializes the cells of r, top to bottom and left to right.
//
// Plain text joins cells with a tab and rows with '\n'; a cell holding a tab,
// a line break or a leading '"' is quoted the way spreadsheets do, so
// DecodePlain restores it. HTML wraps the same matrix in a <table>, one <tr>
// per row and one <td> per cell, with cell text inserted verbatim. With
// headers, a leading row of column titles is added.
func EncodeRange(rows []Row, cols []Column, r SelectionRange, headers bool) Payload {
	r, ok := ClampRange(r, len(cols), len(rows))
	if !ok {
		return Payload{HTML: "<table></table>"}
	}

	matrix := make([][]string, 0, r.Height()+1)
	if headers {
		line := make([]string, 0, r.Width())
		for col := r.Min.Col; col <= r.Max.Col; col++ {
			line = append(line, cols[col].Title)
		}
		matrix = append(matrix, line)
	}
	for row := r.Min.Row; row <= r.Max.Row; row++ {
		line := make([]string, 0, r.Width())
		for col := r.Min.Col; col <= r.Max.Col; col++ {
			line = append(line, cols[col].copyValue(rows[row]))
		}
		matrix = append(matrix, line)
	}
	return EncodeMatrix(matrix)
}

// EncodeMatrix serializes a raw text matrix.
func EncodeMatrix(matrix [][]string) Payload {
	var plain, markup strings.Builder
	markup.WriteString("<table>")
	for i, line := range matrix {
		if i > 0 {
			plain.WriteByte('\n')
		}
		markup.WriteString("<tr>")
		for j, cell := range line {
			if j > 0 {
				plain.WriteByte('\t')
			}
			plain.WriteString(quotePlain(cell))
			markup.WriteString("<td>")
			markup.WriteString(cell)
			markup.WriteString("</td>")
		}
		markup.WriteString("</tr>")
	}
	markup.WriteString("</table>")
	return Payload{Plain: plain.String(), HTML: markup.String()}
}

// quotePlain wraps cell in double quotes, doubling inner quotes, when the raw
// text would not survive DecodePlain.
func quotePlain(cell string) string {
	if !strings.ContainsAny(cell, "\t\n\r") && !strings.HasPrefix(cell, `"`) {
		return cell
	}
	return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
}

// DecodePlain splits pasted text into a rectangular matrix of raw cells.
//
// Line endings are normalized to '\n' and one trailing newline (as appended
// by native spreadsheets) is dropped. Rows split on '\n', cells on '\t'.
// A cell that starts with '"' and whose quoted body spans a tab, a newline or
// an escaped "" is unquoted ("" becomes "). Ragged rows are padded with empty strings.
func DecodePlain(text string) [][]string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}

	var (
		matrix [][]string
		line   []string
	)
	for i := 0; i <= len(text); {
		cell, next, endOfRow := scanPlainCell(text, i)
		line = append(line, cell)
		if endOfRow {
			matrix = append(matrix, line)
			line = nil
		}
		if next > len(text) {
			break
		}
		i = next
	}
	return padMatrix(matrix)
}

// scanPlainCell reads one cell starting at i. next is the index after the
// separator; endOfRow is true when the cell ended a row.
func scanPlainCell(text string, i int) (cell string, next int, endOfRow bool) {
	if i < len(text) && text[i] == '"' {
		if body, end, ok := scanQuoted(text, i); ok {
			if end == len(text) {
				return body, end + 1, true
			}
			return body, end + 1, text[end] == '\n'
		}
	}
	j := i
	for j < len(text) && text[j] != '\t' && text[j] != '\n' {
		j++
	}
	if j == len(text) {
		return text[i:j], j + 1, true
	}
	return text[i:j], j + 1, text[j] == '\n'
}

// scanQuoted parses a quoted cell at text[i]. ok requires the closing quote to
// be followed by a separator or the end of text, and the body to contain a tab,
// a newline or an escaped quote; otherwise the quotes are literal text.
func scanQuoted(text string, i int) (body string, end int, ok bool) {
	var sb strings.Builder
	special := false
	j := i + 1
	for j < len(text) {
		c := text[j]
		if c == '"' {
			if j+1 < len(text) && text[j+1] == '"' {
				sb.WriteByte('"')
				special = true
				j += 2
				continue
			}
			end = j + 1
			if end < len(text) && text[end] != '\t' && text[end] != '\n' {
				return "", 0, false
			}
			if !special {
				return "", 0, false
			}
			return sb.String(), end, true
		}
		if c == '\n' || c == '\t' {
			special = true
		}
		sb.WriteByte(c)
		j++
	}
	return "", 0, false
}

// DecodeHTML extracts the first <table> of pasted markup as a raw matrix.
// Markup without a table yields its text content as a single cell.
func DecodeHTML(markup string) [][]string {
	if strings.TrimSpace(markup) == "" {
		return nil
	}
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil
	}
	table := findElement(doc, atom.Table)
	if table == nil {
		text := strings.TrimSpace(textContent(doc))
		if text == "" {
			return nil
		}
		return [][]string{{text}}
	}

	var matrix [][]string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.DataAtom {
			case atom.Tr:
				var line []string
				for td := c.FirstChild; td != nil; td = td.NextSibling {
					if td.Type == html.ElementNode && (td.DataAtom == atom.Td || td.DataAtom == atom.Th) {
						line = append(line, textContent(td))
					}
				}
				matrix = append(matrix, line)
			case atom.Table:
				// Nested tables belong to their cell's text.
			default:
				walk(c)
			}
		}
	}
	walk(table)
	return padMatrix(matrix)
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			sb.WriteString(n.Data)
		case n.Type == html.ElementNode && n.DataAtom == atom.Br:
			sb.WriteByte('\n')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func padMatrix(matrix [][]string) [][]string {
	width := 0
	for _, line := range matrix {
		width = maxInt(width, len(line))
	}
	for i, line := range matrix {
		for len(line) < width {
			line = append(line, "")
		}
		matrix[i] = line
	}
	return matrix
}

// ReadTransfer decodes the paste payload of dt, preferring text/plain and
// falling back to text/html.
func ReadTransfer(dt DataTransfer) [][]string {
	if dt == nil {
		return nil
	}
	if plain := dt.GetData(MIMEPlain); plain != "" {
		return DecodePlain(plain)
	}
	return DecodeHTML(dt.GetData(MIMEHTML))
}
