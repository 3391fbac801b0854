package window

import (
	"fmt"

	"github.com/go-gadget/gadget/pkg/backend"
	"github.com/go-gadget/gadget/pkg/errors"
	"github.com/go-gadget/gadget/pkg/widgets"
)

// Build materializes a layout into a live window on the given backend.
// A nil backend means the process default.
//
// The layout is walked row by row, cell by cell. Every description is
// validated before it reaches the backend, constructed, and placed at its
// grid cell; input-capable widgets are recorded in traversal order, which
// fixes the order of the value sequence Read reports. The build is
// atomic: any failure tears down everything constructed so far and
// returns a BuildError naming the failing cell, so a half-built window is
// never handed to the caller.
func Build(title string, layout widgets.Layout, b backend.Backend) (*Window, error) {
	if b == nil {
		var err error
		b, err = backend.Default()
		if err != nil {
			return nil, buildErr(title, err)
		}
	}

	// First window on this backend starts its toolkit.
	if err := backend.Retain(b); err != nil {
		return nil, buildErr(title, err)
	}

	handle, err := b.CreateWindow(title)
	if err != nil {
		backend.Release(b)
		return nil, buildErr(title, err)
	}

	w := &Window{
		title:    title,
		backend:  b,
		handle:   handle,
		triggers: make(map[string]string),
		inputs:   []inputRef{},
	}

	abort := func(err error) (*Window, error) {
		// Best effort: CloseWindow releases every widget constructed so
		// far. Its own failure must not mask the build failure.
		if closeErr := b.CloseWindow(handle); closeErr != nil {
			errors.Report(&errors.GadgetError{
				Op:     "window.Build",
				Kind:   errors.KindBackend,
				Window: title,
				Err:    closeErr,
			})
		}
		backend.Release(b)
		return nil, err
	}

	for i, row := range layout {
		for j, desc := range row {
			pos := widgets.Position{Row: i, Col: j}
			if desc == nil {
				return abort(cellErr(title, pos, "", fmt.Errorf("nil widget in layout")))
			}
			if err := desc.Validate(); err != nil {
				return abort(cellErr(title, pos, desc.Kind().String(), err))
			}
			desc = applyRowGroup(desc, i)

			wh, err := b.ConstructWidget(handle, desc)
			if err != nil {
				return abort(cellErr(title, pos, desc.Kind().String(), err))
			}
			if err := b.PlaceWidget(handle, wh, pos); err != nil {
				return abort(cellErr(title, pos, desc.Kind().String(), err))
			}

			if label := triggerLabel(desc); label != "" {
				w.triggers[wh.ID()] = label
			}
			if desc.InputCapable() {
				w.inputs = append(w.inputs, inputRef{
					handle: wh,
					label:  inputLabel(desc),
					pos:    pos,
				})
			}
		}
	}

	source, err := b.SubscribeEvents(handle)
	if err != nil {
		return abort(buildErr(title, err))
	}
	w.source = source

	if err := b.ShowWindow(handle); err != nil {
		return abort(buildErr(title, err))
	}
	return w, nil
}

// applyRowGroup assigns radios without an explicit group to a per-row
// group, so that bare radios on one layout row exclude each other.
func applyRowGroup(desc widgets.Widget, row int) widgets.Widget {
	r, ok := desc.(widgets.Radio)
	if !ok || r.Group != "" {
		return desc
	}
	r.Group = fmt.Sprintf("row-%d", row)
	return r
}

// triggerLabel returns the event identifier a widget reports when it
// fires, or "" for widgets that never trigger reads.
func triggerLabel(desc widgets.Widget) string {
	switch d := desc.(type) {
	case widgets.Button:
		return d.Label
	case widgets.Checkbox:
		return d.Label
	case widgets.Radio:
		return d.Label
	default:
		return ""
	}
}

// inputLabel returns the label used for lookup-by-label over the value
// sequence. Text entries have no label and are addressable by position
// only.
func inputLabel(desc widgets.Widget) string {
	switch d := desc.(type) {
	case widgets.Checkbox:
		return d.Label
	case widgets.Radio:
		return d.Label
	default:
		return ""
	}
}

func buildErr(title string, err error) error {
	return &errors.BuildError{Title: title, Row: -1, Col: -1, Err: err}
}

func cellErr(title string, pos widgets.Position, kind string, err error) error {
	return &errors.BuildError{Title: title, Row: pos.Row, Col: pos.Col, Widget: kind, Err: err}
}
