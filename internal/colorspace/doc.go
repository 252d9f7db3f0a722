// Package colorspace implements the color conversion and derived-metric
// layer of the analysis engine.
//
// The package centers on the RGB value type: three 8-bit channels, immutable,
// the single source of truth for a color. Every other representation (hex
// string, HSV, HSL, CMYK) is derived on demand and never stored independently,
// so representations cannot drift apart.
//
// # Conversions
//
// Conversions are pure, total functions for any valid RGB value:
//   - Hex: canonical lowercase "#rrggbb", six digits, no alpha
//   - HSV: hue 0-360 degrees, saturation/value 0-100 percent
//   - HSL: hue 0-360 degrees, saturation/lightness 0-100 percent
//   - CMYK: all channels 0-100 percent; pure black maps to (0,0,0,100)
//
// A color with zero saturation has no defined hue; such colors report hue 0.
// Converting RGB to any space and back yields a value within one unit per
// channel of the original.
//
// # Derived metrics
//
// On top of the conversions the package computes harmony sets (hue rotations
// at constant saturation and value), color-vision-deficiency simulation
// (fixed linear transforms applied to linearized RGB), and WCAG contrast
// ratios with AA/AAA pass flags.
//
// # Error Handling
//
// Functions never fail for well-formed input. Malformed input (out-of-range
// channel values, unknown harmony scheme or deficiency type, unparseable hex
// strings) is reported as an error wrapping ErrInvalidInput; callers test for
// it with errors.Is. Nothing is silently corrected.
package colorspace
