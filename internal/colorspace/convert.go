package colorspace

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HSV is a color in hue/saturation/value space.
//
// Components are kept as float64 so that conversions round-trip; round for
// display only.
type HSV struct {
	H float64 `json:"h"` // Hue: 0-360 degrees (0 when saturation is 0)
	S float64 `json:"s"` // Saturation: 0-100 percent
	V float64 `json:"v"` // Value: 0-100 percent
}

// HSL is a color in hue/saturation/lightness space.
type HSL struct {
	H float64 `json:"h"` // Hue: 0-360 degrees (0 when saturation is 0)
	S float64 `json:"s"` // Saturation: 0-100 percent
	L float64 `json:"l"` // Lightness: 0-100 percent
}

// CMYK is a color in cyan/magenta/yellow/key space, all channels 0-100.
type CMYK struct {
	C float64 `json:"c"`
	M float64 `json:"m"`
	Y float64 `json:"y"`
	K float64 `json:"k"`
}

// Formats bundles every supported encoding of one color.
//
// This is the result shape of the convert operation: the host displays or
// stores whichever representations it needs without re-deriving them.
type Formats struct {
	Hex  string `json:"hex"`
	RGB  RGB    `json:"rgb"`
	HSV  HSV    `json:"hsv"`
	HSL  HSL    `json:"hsl"`
	CMYK CMYK   `json:"cmyk"`
}

// Convert returns the color in all supported encodings.
func Convert(c RGB) Formats {
	return Formats{
		Hex:  c.Hex(),
		RGB:  c,
		HSV:  c.HSV(),
		HSL:  c.HSL(),
		CMYK: c.CMYK(),
	}
}

// HSV converts the color to HSV space.
//
// Hue is in [0,360) degrees, saturation and value in [0,100] percent.
// Colors with zero saturation (grays) report hue 0.
func (c RGB) HSV() HSV {
	h, s, v := c.colorful().Hsv()
	return HSV{H: h, S: s * 100, V: v * 100}
}

// HSL converts the color to HSL space.
//
// Hue is in [0,360) degrees, saturation and lightness in [0,100] percent.
// Colors with zero saturation report hue 0.
func (c RGB) HSL() HSL {
	h, s, l := c.colorful().Hsl()
	return HSL{H: h, S: s * 100, L: l * 100}
}

// CMYK converts the color to CMYK space, all channels in [0,100].
//
// Pure black is mapped to (0,0,0,100) by convention, which also keeps the
// conversion total: the normalization below would otherwise divide by zero
// when K is 100.
func (c RGB) CMYK() CMYK {
	if c.R == 0 && c.G == 0 && c.B == 0 {
		return CMYK{C: 0, M: 0, Y: 0, K: 100}
	}

	cy := 1 - float64(c.R)/255.0
	ma := 1 - float64(c.G)/255.0
	ye := 1 - float64(c.B)/255.0
	k := math.Min(cy, math.Min(ma, ye))

	return CMYK{
		C: (cy - k) / (1 - k) * 100,
		M: (ma - k) / (1 - k) * 100,
		Y: (ye - k) / (1 - k) * 100,
		K: k * 100,
	}
}

// FromHSV converts an HSV triple back to RGB.
//
// Hue may be any finite value and is wrapped into [0,360); saturation and
// value must be in [0,100] or the call fails with ErrInvalidInput.
func FromHSV(h, s, v float64) (RGB, error) {
	if err := checkPercent("saturation", s); err != nil {
		return RGB{}, err
	}
	if err := checkPercent("value", v); err != nil {
		return RGB{}, err
	}
	return fromColorful(colorful.Hsv(wrapHue(h), s/100, v/100)), nil
}

// FromHSL converts an HSL triple back to RGB.
//
// Hue may be any finite value and is wrapped into [0,360); saturation and
// lightness must be in [0,100] or the call fails with ErrInvalidInput.
func FromHSL(h, s, l float64) (RGB, error) {
	if err := checkPercent("saturation", s); err != nil {
		return RGB{}, err
	}
	if err := checkPercent("lightness", l); err != nil {
		return RGB{}, err
	}
	return fromColorful(colorful.Hsl(wrapHue(h), s/100, l/100)), nil
}

// FromCMYK converts a CMYK quadruple back to RGB.
//
// All channels must be in [0,100] or the call fails with ErrInvalidInput.
func FromCMYK(cy, m, y, k float64) (RGB, error) {
	for _, ch := range [4]float64{cy, m, y, k} {
		if err := checkPercent("channel", ch); err != nil {
			return RGB{}, err
		}
	}
	r := 255 * (1 - cy/100) * (1 - k/100)
	g := 255 * (1 - m/100) * (1 - k/100)
	b := 255 * (1 - y/100) * (1 - k/100)
	return RGB{
		R: uint8(math.Round(r)),
		G: uint8(math.Round(g)),
		B: uint8(math.Round(b)),
	}, nil
}

func checkPercent(name string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 100 {
		return fmt.Errorf("%w: %s %v outside [0,100]", ErrInvalidInput, name, v)
	}
	return nil
}

// wrapHue maps any finite hue onto [0,360).
func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
