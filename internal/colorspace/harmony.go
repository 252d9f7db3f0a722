package colorspace

import "fmt"

// Scheme identifies a harmony rule: a set of hue rotations that produce
// aesthetically related colors from a base color.
type Scheme string

const (
	// SchemeComplementary rotates the hue by 180 degrees (one color).
	SchemeComplementary Scheme = "complementary"

	// SchemeTriadic rotates the hue by +120 and +240 degrees (two colors).
	SchemeTriadic Scheme = "triadic"

	// SchemeAnalogous rotates the hue by -30 and +30 degrees (two colors).
	SchemeAnalogous Scheme = "analogous"

	// SchemeSplitComplementary rotates the hue by +150 and +210 degrees
	// (two colors), flanking the complement.
	SchemeSplitComplementary Scheme = "split-complementary"
)

// schemeOffsets defines each scheme as its hue rotations in degrees.
// The rotation set fixes both the size and the order of the harmony result.
var schemeOffsets = map[Scheme][]float64{
	SchemeComplementary:      {180},
	SchemeTriadic:            {120, 240},
	SchemeAnalogous:          {-30, 30},
	SchemeSplitComplementary: {150, 210},
}

// Schemes returns all supported harmony schemes in a stable order.
func Schemes() []Scheme {
	return []Scheme{
		SchemeComplementary,
		SchemeTriadic,
		SchemeAnalogous,
		SchemeSplitComplementary,
	}
}

// Harmony derives the harmony set for a base color under the given scheme.
//
// Each derived color keeps the base color's saturation and value; only the
// hue rotates. The result is a fixed-size ordered slice whose length depends
// on the scheme: complementary yields one color, every other scheme two.
//
// Returns an error wrapping ErrInvalidInput for an unknown scheme; for valid
// input the function is total.
func Harmony(c RGB, scheme Scheme) ([]RGB, error) {
	offsets, ok := schemeOffsets[scheme]
	if !ok {
		return nil, fmt.Errorf("%w: unknown harmony scheme %q", ErrInvalidInput, scheme)
	}

	hsv := c.HSV()
	out := make([]RGB, 0, len(offsets))
	for _, off := range offsets {
		// Saturation and value are already validated by construction, so
		// FromHSV cannot fail here.
		rotated, err := FromHSV(hsv.H+off, hsv.S, hsv.V)
		if err != nil {
			return nil, err
		}
		out = append(out, rotated)
	}
	return out, nil
}
