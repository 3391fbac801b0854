package widgets

import "fmt"

// Row is an ordered sequence of widgets laid out left to right.
type Row []Widget

// Layout is an ordered sequence of rows laid out top to bottom. It is a
// one-shot input to the window builder: purely data, never mutated after
// a window is built from it.
type Layout []Row

// RowOf builds a row from the given widgets.
func RowOf(ws ...Widget) Row {
	return Row(ws)
}

// LayoutOf builds a layout from the given rows.
func LayoutOf(rows ...Row) Layout {
	return Layout(rows)
}

// InputCount returns the number of input-capable widgets in the layout.
// This equals the length of the value sequence a window built from this
// layout reports on every read.
func (l Layout) InputCount() int {
	n := 0
	for _, row := range l {
		for _, w := range row {
			if w != nil && w.InputCapable() {
				n++
			}
		}
	}
	return n
}

// Validate walks the layout row-major and validates every description,
// reporting the position of the first failure. Nil cells are rejected.
func (l Layout) Validate() error {
	for i, row := range l {
		for j, w := range row {
			pos := Position{Row: i, Col: j}
			if w == nil {
				return fmt.Errorf("widgets: nil widget at %s", pos)
			}
			if err := w.Validate(); err != nil {
				return fmt.Errorf("widgets: invalid %s at %s: %w", w.Kind(), pos, err)
			}
		}
	}
	return nil
}
