package colorspace

import "math"

// WCAG 2.x relative-luminance constants. Kept as named values rather than
// inline literals so the formula can be checked against the standard in one
// place.
const (
	wcagLinearThreshold = 0.03928
	wcagLinearDivisor   = 12.92
	wcagGammaOffset     = 0.055
	wcagGammaDivisor    = 1.055
	wcagGammaExponent   = 2.4

	wcagCoeffR = 0.2126
	wcagCoeffG = 0.7152
	wcagCoeffB = 0.0722
)

// Contrast-ratio thresholds for normal and large text.
const (
	ThresholdAA      = 4.5
	ThresholdAAA     = 7.0
	ThresholdAALarge = 3.0
)

// ContrastResult reports the WCAG contrast ratio between two colors and the
// derived pass/fail flags for normal-text thresholds.
type ContrastResult struct {
	// Ratio is the contrast ratio, always >= 1.0 and symmetric in its inputs.
	Ratio float64 `json:"ratio"`

	// PassesAA reports whether the ratio meets the 4.5:1 AA threshold.
	PassesAA bool `json:"passes_aa"`

	// PassesAAA reports whether the ratio meets the 7:1 AAA threshold.
	PassesAAA bool `json:"passes_aaa"`

	// PassesAALarge reports whether the ratio meets the relaxed 3:1
	// threshold for large text.
	PassesAALarge bool `json:"passes_aa_large"`

	// Rating is a human-readable summary of the strictest level passed.
	Rating string `json:"rating"`
}

// ContrastRatio computes the WCAG contrast ratio between two colors.
//
// The ratio is (L1+0.05)/(L2+0.05) with L1 the larger relative luminance, so
// the result is at least 1.0 (identical colors) and at most 21.0 (black on
// white), and the argument order does not matter.
func ContrastRatio(a, b RGB) ContrastResult {
	la := relativeLuminance(a)
	lb := relativeLuminance(b)
	if lb > la {
		la, lb = lb, la
	}

	ratio := (la + 0.05) / (lb + 0.05)
	return ContrastResult{
		Ratio:         ratio,
		PassesAA:      ratio >= ThresholdAA,
		PassesAAA:     ratio >= ThresholdAAA,
		PassesAALarge: ratio >= ThresholdAALarge,
		Rating:        rating(ratio),
	}
}

func rating(ratio float64) string {
	switch {
	case ratio >= ThresholdAAA:
		return "AAA (Excellent)"
	case ratio >= ThresholdAA:
		return "AA (Good)"
	case ratio >= ThresholdAALarge:
		return "AA Large (Acceptable)"
	default:
		return "Fail (Poor)"
	}
}

// relativeLuminance computes WCAG relative luminance: each channel is
// gamma-linearized, then the channels are combined with the standard sRGB
// coefficients.
func relativeLuminance(c RGB) float64 {
	return wcagCoeffR*wcagLinearize(c.R) +
		wcagCoeffG*wcagLinearize(c.G) +
		wcagCoeffB*wcagLinearize(c.B)
}

func wcagLinearize(ch uint8) float64 {
	v := float64(ch) / 255.0
	if v <= wcagLinearThreshold {
		return v / wcagLinearDivisor
	}
	return math.Pow((v+wcagGammaOffset)/wcagGammaDivisor, wcagGammaExponent)
}
