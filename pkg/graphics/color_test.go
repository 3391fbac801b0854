package graphics

import (
	"strings"
	"testing"
)

func TestRGB(t *testing.T) {
	c := RGB(0x12, 0x34, 0x56)
	if c.Red() != 0x12 || c.Green() != 0x34 || c.Blue() != 0x56 {
		t.Errorf("components = %x/%x/%x, want 12/34/56", c.Red(), c.Green(), c.Blue())
	}
	if c.Alpha() != 0xFF {
		t.Errorf("alpha = %x, want ff", c.Alpha())
	}
}

func TestWithAlpha8(t *testing.T) {
	c := ColorRed.WithAlpha8(0x80)
	if c.Alpha() != 0x80 {
		t.Errorf("alpha = %x, want 80", c.Alpha())
	}
	if c.Red() != 0xFF || c.Green() != 0 || c.Blue() != 0 {
		t.Errorf("rgb changed: %x/%x/%x", c.Red(), c.Green(), c.Blue())
	}
}

func TestIsSet(t *testing.T) {
	if ColorNone.IsSet() {
		t.Error("ColorNone must not report set")
	}
	if !ColorBlack.IsSet() {
		t.Error("opaque black must report set")
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		color Color
		want  string
	}{
		{ColorBlack, "#000000"},
		{ColorWhite, "#ffffff"},
		{ColorRed, "#ff0000"},
		{RGB(0x1A, 0x2B, 0x3C), "#1a2b3c"},
	}
	for _, tt := range tests {
		if got := tt.color.Hex(); got != tt.want {
			t.Errorf("Hex(%08x) = %q, want %q", uint32(tt.color), got, tt.want)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{"empty is unset", "", ColorNone, false},
		{"svg name", "red", ColorRed, false},
		{"case insensitive", "ReD", ColorRed, false},
		{"padded", "  blue  ", ColorBlue, false},
		{"hex", "#1a2b3c", RGB(0x1A, 0x2B, 0x3C), false},
		{"hex uppercase", "#FF0000", ColorRed, false},
		{"short hex", "#fff", ColorNone, true},
		{"bad hex digits", "#zzzzzz", ColorNone, true},
		{"unknown name", "notacolor", ColorNone, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %08x, want %08x", tt.input, uint32(got), uint32(tt.want))
			}
		})
	}
}

func TestParseColorRoundTripsHex(t *testing.T) {
	orig := RGB(0xAB, 0xCD, 0xEF)
	parsed, err := ParseColor(orig.Hex())
	if err != nil {
		t.Fatal(err)
	}
	if parsed != orig {
		t.Errorf("round trip = %08x, want %08x", uint32(parsed), uint32(orig))
	}
}

func TestParseColorErrorNamesInput(t *testing.T) {
	_, err := ParseColor("chartreuse-ish")
	if err == nil || !strings.Contains(err.Error(), "chartreuse-ish") {
		t.Errorf("error %v does not name the input", err)
	}
}
