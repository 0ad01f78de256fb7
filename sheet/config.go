package sheet

import (
	"time"

	"github.com/iw2rmb/datagrid/grid"
)

// Config configures the sheet Model.
type Config struct {
	// Grid configures the underlying engine. Grid.Height is managed by the
	// Model from its size.
	Grid grid.Config

	// KeyMap defaults to DefaultKeyMap when left zero.
	KeyMap KeyMap
	Style  Style

	// Clipboard backs copy, cut and paste. nil disables clipboard shortcuts;
	// bracketed paste still works.
	Clipboard Clipboard

	// ShowRowNumbers renders the row gutter. Right-clicks on it raise the
	// engine's row context event.
	ShowRowNumbers bool

	// DefaultColumnWidth applies to columns without a width hint. Defaults to 12.
	DefaultColumnWidth int

	// DoubleClickInterval bounds two presses on one cell that count as a
	// double-click. Defaults to 400ms.
	DoubleClickInterval time.Duration
	// Now is the clock used for double-click detection. Defaults to time.Now.
	Now func() time.Time
}

const (
	defaultColumnWidth         = 12
	defaultDoubleClickInterval = 400 * time.Millisecond
	wheelStep                  = 3
)

func (c Config) withDefaults() Config {
	if c.KeyMap.isZero() {
		c.KeyMap = DefaultKeyMap()
	}
	if c.DefaultColumnWidth <= 0 {
		c.DefaultColumnWidth = defaultColumnWidth
	}
	if c.DoubleClickInterval <= 0 {
		c.DoubleClickInterval = defaultDoubleClickInterval
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}
