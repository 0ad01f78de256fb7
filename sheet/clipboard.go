package sheet

import "github.com/atotto/clipboard"

// Clipboard provides sheet-level clipboard integration.
//
// A terminal clipboard carries text only: copy and cut write the text/plain
// form of the selection, and the text/html form is not exported.
// Errors must not crash the UI; failures are logged and ignored.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// SystemClipboard uses the operating system clipboard.
type SystemClipboard struct{}

func (SystemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }
func (SystemClipboard) WriteText(s string) error  { return clipboard.WriteAll(s) }
