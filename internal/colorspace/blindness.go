package colorspace

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Deficiency identifies a color-vision deficiency to simulate.
type Deficiency string

const (
	// Protanopia is the absence of red-sensitive cones.
	Protanopia Deficiency = "protanopia"

	// Deuteranopia is the absence of green-sensitive cones.
	Deuteranopia Deficiency = "deuteranopia"

	// Tritanopia is the absence of blue-sensitive cones.
	Tritanopia Deficiency = "tritanopia"

	// Achromatopsia is complete color blindness; output is always gray.
	Achromatopsia Deficiency = "achromatopsia"
)

// deficiencyMatrices holds the 3x3 transform for each deficiency, applied to
// linear-light RGB. Rows produce the simulated R, G and B channels. The
// matrices are fixed domain constants; keeping them in one table lets tests
// validate them independently of the transform logic.
var deficiencyMatrices = map[Deficiency][3][3]float64{
	Protanopia: {
		{0.567, 0.433, 0.000},
		{0.558, 0.442, 0.000},
		{0.000, 0.242, 0.758},
	},
	Deuteranopia: {
		{0.625, 0.375, 0.000},
		{0.700, 0.300, 0.000},
		{0.000, 0.300, 0.700},
	},
	Tritanopia: {
		{0.950, 0.050, 0.000},
		{0.000, 0.433, 0.567},
		{0.000, 0.475, 0.525},
	},
	Achromatopsia: {
		{0.299, 0.587, 0.114},
		{0.299, 0.587, 0.114},
		{0.299, 0.587, 0.114},
	},
}

// Deficiencies returns all supported deficiency types in a stable order.
func Deficiencies() []Deficiency {
	return []Deficiency{Protanopia, Deuteranopia, Tritanopia, Achromatopsia}
}

// SimulateBlindness approximates how the color appears to a viewer with the
// given color-vision deficiency.
//
// The color is linearized (sRGB gamma removed), multiplied by the
// deficiency's transform matrix, re-encoded to sRGB and clamped back to the
// 8-bit gamut.
//
// Returns an error wrapping ErrInvalidInput for an unknown deficiency type;
// for valid input the function is total.
func SimulateBlindness(c RGB, d Deficiency) (RGB, error) {
	m, ok := deficiencyMatrices[d]
	if !ok {
		return RGB{}, fmt.Errorf("%w: unknown deficiency type %q", ErrInvalidInput, d)
	}

	lr, lg, lb := c.colorful().LinearRgb()
	sim := colorful.LinearRgb(
		m[0][0]*lr+m[0][1]*lg+m[0][2]*lb,
		m[1][0]*lr+m[1][1]*lg+m[1][2]*lb,
		m[2][0]*lr+m[2][1]*lg+m[2][2]*lb,
	)
	return fromColorful(sim), nil
}
