package imaging

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/histogram"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

// HistogramResult holds per-channel intensity histograms. Each channel slice
// has one entry per bin; bin i covers intensities [i*256/bins, (i+1)*256/bins).
type HistogramResult struct {
	Bins  int   `json:"bins"`
	Red   []int `json:"red"`
	Green []int `json:"green"`
	Blue  []int `json:"blue"`
}

// Histogram computes per-channel color histograms with the given number of
// bins.
//
// The 256 intensity levels are tallied and then folded into bins, so bins
// must be between 1 and 256. Each channel's bin counts sum to the number of
// pixels in the image.
//
// Returns an error wrapping colorspace.ErrInvalidInput for a bin count
// outside [1,256].
func Histogram(img image.Image, bins int) (*HistogramResult, error) {
	if bins < 1 || bins > 256 {
		return nil, fmt.Errorf("%w: bins must be in [1,256], got %d", colorspace.ErrInvalidInput, bins)
	}

	h := histogram.NewRGBAHistogram(img)
	return &HistogramResult{
		Bins:  bins,
		Red:   rebin(h.R.Bins, bins),
		Green: rebin(h.G.Bins, bins),
		Blue:  rebin(h.B.Bins, bins),
	}, nil
}

// rebin folds a 256-entry tally into the requested number of bins.
func rebin(levels []int, bins int) []int {
	out := make([]int, bins)
	for i, n := range levels {
		out[i*bins/len(levels)] += n
	}
	return out
}
