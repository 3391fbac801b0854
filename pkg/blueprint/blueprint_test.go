package blueprint

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-gadget/gadget/pkg/graphics"
	"github.com/go-gadget/gadget/pkg/widgets"
)

func TestParseGreeter(t *testing.T) {
	doc, err := Parse([]byte(`
title: Greeter
rows:
  - - kind: text
      label: "What's your name?"
  - - kind: input
      placeholder: Alice
  - - kind: button
      label: Ok
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if doc.Title != "Greeter" {
		t.Errorf("Title = %q, want %q", doc.Title, "Greeter")
	}

	want := widgets.LayoutOf(
		widgets.RowOf(widgets.NewText("What's your name?")),
		widgets.RowOf(widgets.NewInput().WithPlaceholder("Alice")),
		widgets.RowOf(widgets.NewButton("Ok")),
	)
	if diff := cmp.Diff(want, doc.Layout); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}
}

func TestParseAllKinds(t *testing.T) {
	doc, err := Parse([]byte(`
title: Everything
rows:
  - - kind: checkbox
      label: agree
      checked: true
    - kind: radio
      label: a
      group: g
      selected: true
  - - kind: slider
      min: 5
      max: 50
      step: 5
      initial: 10
      orientation: vertical
  - - kind: multiline
      lines: 6
  - - kind: separator
      orientation: vertical
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	slider, err := widgets.NewSlider(5, 50)
	if err != nil {
		t.Fatal(err)
	}
	want := widgets.LayoutOf(
		widgets.RowOf(
			widgets.NewCheckbox("agree").WithChecked(true),
			widgets.NewRadio("a", "g").WithSelected(true),
		),
		widgets.RowOf(slider.WithStep(5).WithInitial(10).WithOrientation(widgets.OrientationVertical)),
		widgets.RowOf(widgets.NewMultiline(6)),
		widgets.RowOf(widgets.NewSeparator().WithOrientation(widgets.OrientationVertical)),
	)
	if diff := cmp.Diff(want, doc.Layout); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSliderDefaultsRange(t *testing.T) {
	doc, err := Parse([]byte(`
title: S
rows:
  - - kind: slider
`))
	if err != nil {
		t.Fatal(err)
	}
	s := doc.Layout[0][0].(widgets.Slider)
	if s.Min != widgets.DefaultSliderMin || s.Max != widgets.DefaultSliderMax {
		t.Errorf("range = [%v, %v], want [%v, %v]", s.Min, s.Max, widgets.DefaultSliderMin, widgets.DefaultSliderMax)
	}
}

func TestParseSliderExplicitBounds(t *testing.T) {
	t.Run("explicit zero range is kept", func(t *testing.T) {
		doc, err := Parse([]byte(`
title: S
rows:
  - - kind: slider
      min: 0
      max: 0
`))
		if err != nil {
			t.Fatal(err)
		}
		s := doc.Layout[0][0].(widgets.Slider)
		if s.Min != 0 || s.Max != 0 {
			t.Errorf("range = [%v, %v], want [0, 0]", s.Min, s.Max)
		}
	})

	t.Run("omitted bound defaults alone", func(t *testing.T) {
		doc, err := Parse([]byte(`
title: S
rows:
  - - kind: slider
      min: 10
`))
		if err != nil {
			t.Fatal(err)
		}
		s := doc.Layout[0][0].(widgets.Slider)
		if s.Min != 10 || s.Max != widgets.DefaultSliderMax {
			t.Errorf("range = [%v, %v], want [10, %v]", s.Min, s.Max, widgets.DefaultSliderMax)
		}
	})

	t.Run("explicit zero initial is kept", func(t *testing.T) {
		doc, err := Parse([]byte(`
title: S
rows:
  - - kind: slider
      min: -10
      max: 10
      initial: 0
`))
		if err != nil {
			t.Fatal(err)
		}
		s := doc.Layout[0][0].(widgets.Slider)
		if s.Initial != 0 {
			t.Errorf("Initial = %v, want 0", s.Initial)
		}
	})
}

func TestParseAttributes(t *testing.T) {
	doc, err := Parse([]byte(`
title: Styled
rows:
  - - kind: text
      label: big
      width: 20
      height: 10
      pad: {x: 2, y: 1}
      foreground: red
      background: "#1a2b3c"
`))
	if err != nil {
		t.Fatal(err)
	}
	attrs := doc.Layout[0][0].Attrs()
	if attrs.Width != 20 || attrs.Height != 10 {
		t.Errorf("size = %dx%d, want 20x10", attrs.Width, attrs.Height)
	}
	if attrs.Padding != (widgets.Padding{X: 2, Y: 1}) {
		t.Errorf("padding = %+v, want {2 1}", attrs.Padding)
	}
	if attrs.Foreground != graphics.ColorRed {
		t.Errorf("foreground = %v, want red", attrs.Foreground)
	}
	if attrs.Background != graphics.RGB(0x1A, 0x2B, 0x3C) {
		t.Errorf("background = %v", attrs.Background)
	}
}

func TestParsePaddingDefaultsWhenOmitted(t *testing.T) {
	doc, err := Parse([]byte(`
title: P
rows:
  - - kind: text
      label: hi
`))
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.Layout[0][0].Attrs().Padding; got != widgets.DefaultPadding {
		t.Errorf("padding = %+v, want %+v", got, widgets.DefaultPadding)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantSub string
	}{
		{"not yaml", "{{{{", "failed to parse"},
		{"missing title", "rows:\n  - - kind: text\n", "missing title"},
		{"no rows", "title: T\n", "no rows"},
		{"missing kind", "title: T\nrows:\n  - - label: x\n", "missing widget kind"},
		{"unknown kind", "title: T\nrows:\n  - - kind: dial\n", `unknown widget kind "dial"`},
		{"bad color", "title: T\nrows:\n  - - kind: text\n      foreground: nope\n", "unknown color"},
		{"bad orientation", "title: T\nrows:\n  - - kind: separator\n      orientation: diagonal\n", "orientation"},
		{"inverted slider", "title: T\nrows:\n  - - kind: slider\n      min: 9\n      max: 1\n", "invalid range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not contain %q", err, tt.wantSub)
			}
		})
	}
}

func TestParseErrorNamesPosition(t *testing.T) {
	_, err := Parse([]byte(`
title: T
rows:
  - - kind: text
  - - kind: text
    - kind: dial
`))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "row 1 col 1") {
		t.Errorf("error %q does not name row 1 col 1", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	content := "title: FromDisk\nrows:\n  - - kind: button\n      label: Go\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.Title != "FromDisk" || len(doc.Layout) != 1 {
		t.Errorf("doc = %+v", doc)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("error = %v, want read failure", err)
	}
}
