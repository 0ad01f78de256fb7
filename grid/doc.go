// Package grid implements the interaction engine behind the datagrid
// spreadsheet component.
//
// Coordinates are 0-based (Col, Row) cell indices.
// Selection ranges are inclusive rectangles: [Min, Max] on both axes.
//
// The engine owns no row data between events. Every mutation produces a new
// row slice (copy-on-write) plus an ordered list of operations describing the
// delta, delivered through Config.OnChange.
package grid
