// Package imaging is the host-side image layer feeding the color analysis
// engine.
//
// The engine proper (colorspace, namedcolor, extract) is pure and never
// touches the filesystem; this package performs the I/O on its behalf:
// decoding image files, caching decoded images, flattening pixel regions
// into the RGB slices the palette extractor consumes, sampling single pixels
// or neighborhood averages for color picking, pre-downsampling large images,
// and computing channel histograms.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with the origin at the top-left corner. For
// regions, (x1,y1) is inclusive and (x2,y2) exclusive.
//
// # Thread Safety
//
// The Cache type is safe for concurrent use. The remaining functions are
// stateless and may be called concurrently on different images.
package imaging
