package imaging

import (
	"errors"
	"image/color"
	"testing"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

func TestHistogram_SolidRed(t *testing.T) {
	img := newSolidImage(10, 10, color.RGBA{255, 0, 0, 255})

	h, err := Histogram(img, 16)
	if err != nil {
		t.Fatalf("Histogram failed: %v", err)
	}
	if len(h.Red) != 16 || len(h.Green) != 16 || len(h.Blue) != 16 {
		t.Fatalf("bin counts: got %d/%d/%d, want 16 each", len(h.Red), len(h.Green), len(h.Blue))
	}

	// All red pixels at level 255 fall into the top bin; green and blue sit
	// entirely in the bottom bin.
	if h.Red[15] != 100 {
		t.Errorf("red top bin: got %d, want 100", h.Red[15])
	}
	if h.Green[0] != 100 || h.Blue[0] != 100 {
		t.Errorf("green/blue bottom bins: got %d/%d, want 100/100", h.Green[0], h.Blue[0])
	}
}

func TestHistogram_BinsSumToPixelCount(t *testing.T) {
	img := newQuadrantImage(12, 8)

	for _, bins := range []int{1, 4, 16, 256} {
		h, err := Histogram(img, bins)
		if err != nil {
			t.Fatalf("Histogram(%d bins) failed: %v", bins, err)
		}
		for name, ch := range map[string][]int{"red": h.Red, "green": h.Green, "blue": h.Blue} {
			sum := 0
			for _, n := range ch {
				sum += n
			}
			if sum != 96 {
				t.Errorf("%d bins, %s: counts sum to %d, want 96", bins, name, sum)
			}
		}
	}
}

func TestHistogram_InvalidBins(t *testing.T) {
	img := newSolidImage(2, 2, color.RGBA{0, 0, 0, 255})
	for _, bins := range []int{0, -1, 257} {
		if _, err := Histogram(img, bins); !errors.Is(err, colorspace.ErrInvalidInput) {
			t.Errorf("bins %d: expected ErrInvalidInput, got %v", bins, err)
		}
	}
}
