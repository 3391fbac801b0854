// Package blueprint loads window layouts from YAML files.
//
// A layout is purely data, so it does not have to live in Go source. A
// blueprint file names a window title and its rows:
//
//	title: Greeter
//	rows:
//	  - - kind: text
//	      label: "What's your name?"
//	  - - kind: input
//	  - - kind: button
//	      label: Ok
//
// Load returns the title and a widgets.Layout ready for window.Build.
// Widget defaults match the constructor functions: default padding, the
// conventional 0-100 slider range, horizontal orientation.
package blueprint

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-gadget/gadget/pkg/graphics"
	"github.com/go-gadget/gadget/pkg/widgets"
)

// Document is a parsed blueprint: a window title plus its layout.
type Document struct {
	Title  string
	Layout widgets.Layout
}

type fileSchema struct {
	Title string    `yaml:"title"`
	Rows  [][]entry `yaml:"rows"`
}

type entry struct {
	Kind        string     `yaml:"kind"`
	Label       string     `yaml:"label,omitempty"`
	Group       string     `yaml:"group,omitempty"`
	Placeholder string     `yaml:"placeholder,omitempty"`
	Checked     bool       `yaml:"checked,omitempty"`
	Selected    bool       `yaml:"selected,omitempty"`
	Lines       int        `yaml:"lines,omitempty"`
	Min         *float64   `yaml:"min,omitempty"`
	Max         *float64   `yaml:"max,omitempty"`
	Step        float64    `yaml:"step,omitempty"`
	Initial     *float64   `yaml:"initial,omitempty"`
	Orientation string     `yaml:"orientation,omitempty"`
	Width       int        `yaml:"width,omitempty"`
	Height      int        `yaml:"height,omitempty"`
	Pad         *padSchema `yaml:"pad,omitempty"`
	Foreground  string     `yaml:"foreground,omitempty"`
	Background  string     `yaml:"background,omitempty"`
}

type padSchema struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Load reads and parses a blueprint file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("blueprint: failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses blueprint YAML.
func Parse(data []byte) (*Document, error) {
	var file fileSchema
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("blueprint: failed to parse: %w", err)
	}
	if file.Title == "" {
		return nil, fmt.Errorf("blueprint: missing title")
	}
	if len(file.Rows) == 0 {
		return nil, fmt.Errorf("blueprint: no rows")
	}

	layout := make(widgets.Layout, 0, len(file.Rows))
	for i, row := range file.Rows {
		out := make(widgets.Row, 0, len(row))
		for j, e := range row {
			pos := widgets.Position{Row: i, Col: j}
			w, err := e.toWidget()
			if err != nil {
				return nil, fmt.Errorf("blueprint: %s: %w", pos, err)
			}
			out = append(out, w)
		}
		layout = append(layout, out)
	}
	return &Document{Title: file.Title, Layout: layout}, nil
}

func (e entry) toWidget() (widgets.Widget, error) {
	attrs, err := e.attributes()
	if err != nil {
		return nil, err
	}

	switch e.Kind {
	case "text":
		w := widgets.NewText(e.Label)
		w.Attributes = attrs
		return w, nil
	case "button":
		w := widgets.NewButton(e.Label)
		w.Attributes = attrs
		return w, nil
	case "checkbox":
		w := widgets.NewCheckbox(e.Label).WithChecked(e.Checked)
		w.Attributes = attrs
		return w, nil
	case "radio":
		w := widgets.NewRadio(e.Label, e.Group).WithSelected(e.Selected)
		w.Attributes = attrs
		return w, nil
	case "input":
		w := widgets.NewInput().WithPlaceholder(e.Placeholder)
		w.Attributes = attrs
		return w, nil
	case "multiline":
		w := widgets.NewMultiline(e.Lines).WithPlaceholder(e.Placeholder)
		w.Attributes = attrs
		return w, nil
	case "slider":
		// Omitted bounds get the conventional range; an explicit bound is
		// kept even when it is zero.
		var min, max float64 = widgets.DefaultSliderMin, widgets.DefaultSliderMax
		if e.Min != nil {
			min = *e.Min
		}
		if e.Max != nil {
			max = *e.Max
		}
		w, err := widgets.NewSlider(min, max)
		if err != nil {
			return nil, err
		}
		w = w.WithStep(e.Step)
		if e.Initial != nil {
			w = w.WithInitial(*e.Initial)
		}
		o, err := widgets.ParseOrientation(e.Orientation)
		if err != nil {
			return nil, err
		}
		w = w.WithOrientation(o)
		w.Attributes = attrs
		return w, nil
	case "separator":
		o, err := widgets.ParseOrientation(e.Orientation)
		if err != nil {
			return nil, err
		}
		w := widgets.NewSeparator().WithOrientation(o)
		w.Attributes = attrs
		return w, nil
	case "":
		return nil, fmt.Errorf("missing widget kind")
	default:
		return nil, fmt.Errorf("unknown widget kind %q", e.Kind)
	}
}

func (e entry) attributes() (widgets.Attributes, error) {
	attrs := widgets.Attributes{
		Width:   e.Width,
		Height:  e.Height,
		Padding: widgets.DefaultPadding,
	}
	if e.Pad != nil {
		attrs.Padding = widgets.Padding{X: e.Pad.X, Y: e.Pad.Y}
	}

	fg, err := graphics.ParseColor(e.Foreground)
	if err != nil {
		return widgets.Attributes{}, err
	}
	bg, err := graphics.ParseColor(e.Background)
	if err != nil {
		return widgets.Attributes{}, err
	}
	attrs.Foreground = fg
	attrs.Background = bg
	return attrs, nil
}
