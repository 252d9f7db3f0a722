// Package extract produces the dominant-color palette of a pixel population
// by k-means clustering in RGB space.
//
// Clustering is deterministic: centroids are seeded with the k-means++
// strategy driven by a caller-fixed random seed (default 42), so identical
// input always produces identical output. Iteration stops when cluster
// assignments stabilize or a maximum iteration cap is reached, whichever
// comes first.
//
// The extractor never subsamples its input. Callers working with large
// images are expected to downsample beforehand (see the imaging package),
// which keeps the engine's behavior predictable and testable.
//
// The per-iteration assignment step fans out across worker goroutines; the
// iteration boundary is a full synchronization barrier, and the cancellation
// context is consulted only between iterations, so no partial state ever
// escapes.
package extract
