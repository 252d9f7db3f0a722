package imaging

import (
	"fmt"
	"image"

	disintegration "github.com/disintegration/imaging"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

// Region is a rectangular sub-area of an image: (X1,Y1) inclusive top-left,
// (X2,Y2) exclusive bottom-right.
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Pixels flattens an image (or a region of it) into the row-major pixel
// slice the palette extractor consumes.
//
// Parameters:
//   - img: the source image.
//   - region: optional sub-area; nil means the whole image.
//
// Returns an error wrapping colorspace.ErrInvalidInput if the region is
// empty, inverted, or extends outside the image bounds.
func Pixels(img image.Image, region *Region) ([]colorspace.RGB, error) {
	bounds := img.Bounds()
	if region != nil {
		r := image.Rect(region.X1, region.Y1, region.X2, region.Y2)
		if region.X1 >= region.X2 || region.Y1 >= region.Y2 || !r.In(bounds) {
			return nil, fmt.Errorf("%w: region (%d,%d)-(%d,%d) invalid for %dx%d image",
				colorspace.ErrInvalidInput, region.X1, region.Y1, region.X2, region.Y2,
				bounds.Dx(), bounds.Dy())
		}
		bounds = r
	}

	out := make([]colorspace.RGB, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			out = append(out, colorspace.RGB{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(b >> 8),
			})
		}
	}
	return out, nil
}

// SampleAt returns the color of a single pixel.
//
// Returns an error wrapping colorspace.ErrInvalidInput if the coordinate is
// outside the image bounds.
func SampleAt(img image.Image, x, y int) (colorspace.RGB, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return colorspace.RGB{}, fmt.Errorf("%w: coordinates (%d,%d) outside image bounds",
			colorspace.ErrInvalidInput, x, y)
	}

	r, g, b, _ := img.At(x, y).RGBA()
	return colorspace.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}, nil
}

// AverageAt returns the mean color of the square neighborhood of side
// 2*radius+1 centered on (x,y), clipped to the image bounds. Radius 0 is a
// plain single-pixel sample. This is the picker behavior for noisy sources
// such as camera frames, where one pixel is rarely representative.
//
// Returns an error wrapping colorspace.ErrInvalidInput if the center is
// outside the image bounds or radius is negative.
func AverageAt(img image.Image, x, y, radius int) (colorspace.RGB, error) {
	if radius < 0 {
		return colorspace.RGB{}, fmt.Errorf("%w: radius must not be negative, got %d",
			colorspace.ErrInvalidInput, radius)
	}
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return colorspace.RGB{}, fmt.Errorf("%w: coordinates (%d,%d) outside image bounds",
			colorspace.ErrInvalidInput, x, y)
	}

	x1, y1 := max(bounds.Min.X, x-radius), max(bounds.Min.Y, y-radius)
	x2, y2 := min(bounds.Max.X, x+radius+1), min(bounds.Max.Y, y+radius+1)

	var sumR, sumG, sumB, n uint64
	for yy := y1; yy < y2; yy++ {
		for xx := x1; xx < x2; xx++ {
			r, g, b, _ := img.At(xx, yy).RGBA()
			sumR += uint64(r >> 8)
			sumG += uint64(g >> 8)
			sumB += uint64(b >> 8)
			n++
		}
	}
	return colorspace.RGB{
		R: uint8((sumR + n/2) / n),
		G: uint8((sumG + n/2) / n),
		B: uint8((sumB + n/2) / n),
	}, nil
}

// Downsample scales an image so its longer side is at most maxDim pixels,
// preserving aspect ratio. Images already within the limit are returned
// unchanged.
//
// The nearest-neighbor filter is deliberate: it drops pixels instead of
// blending them, so every color in the result exists in the source, which
// keeps downstream palette extraction honest.
//
// Returns an error wrapping colorspace.ErrInvalidInput if maxDim is not
// positive.
func Downsample(img image.Image, maxDim int) (image.Image, error) {
	if maxDim <= 0 {
		return nil, fmt.Errorf("%w: max dimension must be positive, got %d",
			colorspace.ErrInvalidInput, maxDim)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= maxDim && bounds.Dy() <= maxDim {
		return img, nil
	}
	return disintegration.Fit(img, maxDim, maxDim, disintegration.NearestNeighbor), nil
}
