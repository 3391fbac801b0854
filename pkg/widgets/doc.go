// Package widgets defines the backend-agnostic widget descriptions that
// make up a layout.
//
// A widget here is pure data: a kind plus its configuration. Nothing in
// this package touches a rendering backend. Descriptions stay immutable
// after construction; once a window binds them, the live value of an
// input-capable widget is owned by the backend.
//
// # Widget Construction
//
// Widgets use a two-tier construction pattern:
//
// ## Tier 1: Constructor functions (canonical, validated)
//
//	ok := widgets.NewButton("Ok")
//	vol, err := widgets.NewSlider(0, 100)
//
// Constructors apply the conventional defaults (padding 10x4, horizontal
// orientation) and reject invalid configurations at construction time,
// before any backend is involved. DefaultSliderMin and DefaultSliderMax
// name the conventional 0-100 range for callers that want it.
//
// ## Tier 2: Struct literals (full control)
//
//	widgets.Slider{Min: -1, Max: 1, Step: 0.1}
//
// Struct-literal widgets skip constructor validation; the window builder
// re-validates every description before handing it to a backend, so an
// invalid literal fails the build instead of reaching the backend.
//
// ## WithX Chaining
//
// WithX methods return copies; they never mutate the receiver:
//
//	widgets.NewButton("Ok").WithSize(20, 2).WithColors(graphics.ColorRed, graphics.ColorNone)
//
// # Layouts
//
// A Layout is an ordered sequence of rows, each an ordered sequence of
// widgets. Order is significant twice over: it defines row-major grid
// placement, and it fixes the index at which each input-capable widget
// reports its value when the window is read.
package widgets
