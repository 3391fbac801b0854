// Package graphics provides the color model shared by widget descriptions
// and backends.
package graphics

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is stored as ARGB (0xAARRGGBB).
//
// The zero value means "unset": a backend receiving ColorNone substitutes
// its native default. Opaque black is RGB(0, 0, 0) = 0xFF000000, which is
// distinct from the zero value.
type Color uint32

// ColorNone is the unset color. Backends substitute their own default.
const ColorNone = Color(0x00000000)

// Common colors used as widget foreground/background passthrough values.
const (
	ColorBlack  = Color(0xFF000000)
	ColorWhite  = Color(0xFFFFFFFF)
	ColorRed    = Color(0xFFFF0000)
	ColorGreen  = Color(0xFF00FF00)
	ColorBlue   = Color(0xFF0000FF)
	ColorYellow = Color(0xFFFFFF00)
	ColorGray   = Color(0xFF808080)
)

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// WithAlpha8 returns a copy of the color with the given alpha byte (0-255).
func (c Color) WithAlpha8(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// IsSet reports whether the color carries an explicit value.
func (c Color) IsSet() bool {
	return c != ColorNone
}

// Red returns the red component.
func (c Color) Red() uint8 { return uint8(c >> 16) }

// Green returns the green component.
func (c Color) Green() uint8 { return uint8(c >> 8) }

// Blue returns the blue component.
func (c Color) Blue() uint8 { return uint8(c) }

// Alpha returns the alpha component.
func (c Color) Alpha() uint8 { return uint8(c >> 24) }

// Hex returns the color as a "#rrggbb" string, the form most toolkit
// bindings accept in configuration commands. The alpha channel is dropped.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.Red(), c.Green(), c.Blue())
}

// ParseColor resolves a color from an SVG 1.1 color name (via
// x/image/colornames) or a "#rrggbb" hex literal. Matching is
// case-insensitive. An empty name resolves to ColorNone.
func ParseColor(name string) (Color, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return ColorNone, nil
	}
	if strings.HasPrefix(name, "#") {
		hex := name[1:]
		if len(hex) != 6 {
			return ColorNone, fmt.Errorf("graphics: hex color %q must have 6 digits", name)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return ColorNone, fmt.Errorf("graphics: invalid hex color %q", name)
		}
		return Color(0xFF000000 | uint32(v)), nil
	}
	rgba, ok := colornames.Map[name]
	if !ok {
		return ColorNone, fmt.Errorf("graphics: unknown color name %q", name)
	}
	return RGBA8(rgba.R, rgba.G, rgba.B, rgba.A), nil
}
