// Package sheet provides a Bubble Tea component that hosts a grid.Engine in a
// terminal.
//
// The package translates key, mouse and bracketed-paste messages into engine
// events, bridges the system clipboard, keeps the active cell scrolled into
// view and renders only the rows the virtualizer materializes.
package sheet
