package colorspace

import (
	"errors"
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidInput reports malformed input: channel values outside 0-255,
// unparseable hex strings, unknown harmony schemes or deficiency types.
// All validation errors returned by the engine wrap this sentinel.
var ErrInvalidInput = errors.New("invalid input")

// RGB is an immutable color value with three 8-bit channels.
//
// RGB is the engine's canonical representation; all other encodings are
// derived from it. The zero value is black.
type RGB struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// New validates the given channel values and returns the corresponding RGB
// color.
//
// Parameters:
//   - r, g, b: channel values, each must be in [0, 255].
//
// Returns:
//   - RGB: the color value.
//   - error: wraps ErrInvalidInput if any channel is out of range.
//
// New is the validation boundary for callers holding untyped integers (JSON
// payloads, user input). Code already holding an RGB value never needs it.
func New(r, g, b int) (RGB, error) {
	for _, ch := range [3]int{r, g, b} {
		if ch < 0 || ch > 255 {
			return RGB{}, fmt.Errorf("%w: channel value %d outside [0,255]", ErrInvalidInput, ch)
		}
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// ParseHex parses a hex color string into an RGB value.
//
// Accepted forms are "#rrggbb" and the shorthand "#rgb" (case-insensitive).
// Malformed strings return an error wrapping ErrInvalidInput.
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q is not a hex color", ErrInvalidInput, s)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// Hex returns the canonical lowercase "#rrggbb" encoding of the color.
func (c RGB) Hex() string {
	return c.colorful().Hex()
}

// colorful converts the 8-bit color to go-colorful's float representation.
func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// fromColorful rounds a float color back to 8-bit channels, clamping values
// that fall outside the displayable gamut.
func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}
