package extract

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sort"
	"sync"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

// Defaults for Options fields left at their zero value.
const (
	// DefaultMaxIterations caps the clustering loop.
	DefaultMaxIterations = 100

	// DefaultSeed drives k-means++ initialization. Matching runs on
	// matching input always produce matching palettes.
	DefaultSeed = 42
)

// Options configures a palette extraction.
type Options struct {
	// K is the number of clusters to extract. Must be positive.
	K int

	// MaxIterations caps the clustering loop; 0 means DefaultMaxIterations.
	MaxIterations int

	// Seed drives centroid initialization; 0 means DefaultSeed. Two runs
	// with the same seed and input are identical.
	Seed int64
}

// Cluster is one dominant color with its share of the pixel population.
type Cluster struct {
	Color      colorspace.RGB `json:"color"`
	Hex        string         `json:"hex"`
	Proportion float64        `json:"proportion"` // fraction of all pixels, 0-1
	Count      int            `json:"count"`      // absolute pixel count
}

// Palette is the result of a palette extraction: clusters ordered by
// descending proportion, proportions summing to 1 within floating tolerance.
type Palette struct {
	Clusters   []Cluster `json:"clusters"`
	Total      int       `json:"total_pixels"`
	Iterations int       `json:"iterations"`
	Converged  bool      `json:"converged"`
}

// Extract clusters the pixel population into its K most representative
// colors.
//
// Parameters:
//   - ctx: checked between clustering iterations; cancellation aborts the
//     run without publishing partial results.
//   - pixels: the full pixel population (duplicates expected). The extractor
//     never subsamples; downsample beforehand for large images.
//   - opts: K, iteration cap and seed; see Options.
//
// Returns:
//   - *Palette: clusters sorted by descending pixel share.
//   - error: wraps colorspace.ErrInvalidInput if K is not positive, the
//     iteration cap is negative, or the pixel set is empty; ctx.Err() if the
//     context is cancelled mid-run.
//
// # Degenerate inputs
//
// If the population holds fewer distinct colors than K, each distinct color
// becomes its own cluster and no empty or duplicate clusters are returned.
// A single solid color therefore yields exactly one cluster with proportion
// 1.0 regardless of K.
//
// # Determinism
//
// Initialization is k-means++ driven by opts.Seed, and the distinct-color
// histogram is accumulated in first-appearance order, so repeated runs over
// identical input are bit-for-bit identical even though the assignment step
// runs on several goroutines.
func Extract(ctx context.Context, pixels []colorspace.RGB, opts Options) (*Palette, error) {
	if opts.K <= 0 {
		return nil, fmt.Errorf("%w: k must be positive, got %d", colorspace.ErrInvalidInput, opts.K)
	}
	if opts.MaxIterations < 0 {
		return nil, fmt.Errorf("%w: max iterations must not be negative, got %d", colorspace.ErrInvalidInput, opts.MaxIterations)
	}
	if len(pixels) == 0 {
		return nil, fmt.Errorf("%w: empty pixel set", colorspace.ErrInvalidInput)
	}

	maxIter := opts.MaxIterations
	if maxIter == 0 {
		maxIter = DefaultMaxIterations
	}
	seed := opts.Seed
	if seed == 0 {
		seed = DefaultSeed
	}

	colors, counts := distinctColors(pixels)

	// Fewer distinct colors than clusters: the histogram already is the
	// exact answer.
	if len(colors) <= opts.K {
		return histogramPalette(colors, counts, len(pixels)), nil
	}

	centroids := seedCentroids(colors, counts, opts.K, rand.New(rand.NewSource(seed)))

	assign := make([]int, len(colors))
	for i := range assign {
		assign[i] = -1
	}

	iterations := 0
	converged := false
	for iterations < maxIter {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		iterations++

		changed := assignStep(colors, counts, centroids, assign)
		centroids = recomputeCentroids(colors, counts, assign, centroids)
		if !changed {
			converged = true
			break
		}
	}

	return clusterPalette(colors, counts, assign, centroids, len(pixels), iterations, converged), nil
}

// distinctColors folds the pixel population into a histogram, preserving
// first-appearance order for determinism.
func distinctColors(pixels []colorspace.RGB) ([]colorspace.RGB, []int) {
	index := make(map[colorspace.RGB]int)
	var colors []colorspace.RGB
	var counts []int
	for _, p := range pixels {
		if i, ok := index[p]; ok {
			counts[i]++
			continue
		}
		index[p] = len(colors)
		colors = append(colors, p)
		counts = append(counts, 1)
	}
	return colors, counts
}

// seedCentroids implements k-means++ over the weighted distinct colors: the
// first centroid is drawn proportionally to pixel count, each later one
// proportionally to count times squared distance from the nearest centroid
// chosen so far.
func seedCentroids(colors []colorspace.RGB, counts []int, k int, rng *rand.Rand) [][3]float64 {
	centroids := make([][3]float64, 0, k)

	weights := make([]float64, len(colors))
	for i, c := range counts {
		weights[i] = float64(c)
	}
	centroids = append(centroids, toVec(colors[weightedPick(weights, rng)]))

	minDist := make([]float64, len(colors))
	for i := range minDist {
		minDist[i] = math.Inf(1)
	}

	for len(centroids) < k {
		last := centroids[len(centroids)-1]
		for i, c := range colors {
			if d := sqDist(toVec(c), last); d < minDist[i] {
				minDist[i] = d
			}
		}
		for i := range weights {
			weights[i] = float64(counts[i]) * minDist[i]
		}
		centroids = append(centroids, toVec(colors[weightedPick(weights, rng)]))
	}
	return centroids
}

// weightedPick draws an index proportionally to the given non-negative
// weights. If all weights are zero (every remaining color coincides with a
// centroid), it falls back to the first index.
func weightedPick(weights []float64, rng *rand.Rand) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total == 0 {
		return 0
	}
	target := rng.Float64() * total
	acc := 0.0
	for i, w := range weights {
		acc += w
		if target < acc {
			return i
		}
	}
	return len(weights) - 1
}

// assignStep reassigns every distinct color to its nearest centroid and
// reports whether any assignment changed. The scan is split across worker
// goroutines; workers write disjoint slice ranges, and the WaitGroup below is
// the iteration barrier required before centroids may be recomputed.
func assignStep(colors []colorspace.RGB, counts []int, centroids [][3]float64, assign []int) bool {
	workers := runtime.GOMAXPROCS(0)
	if workers > len(colors) {
		workers = len(colors)
	}
	chunk := (len(colors) + workers - 1) / workers

	changedBy := make([]bool, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(colors) {
			hi = len(colors)
		}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				v := toVec(colors[i])
				best, bestDist := 0, math.Inf(1)
				for j, c := range centroids {
					if d := sqDist(v, c); d < bestDist {
						best, bestDist = j, d
					}
				}
				if assign[i] != best {
					assign[i] = best
					changedBy[w] = true
				}
			}
		}(w, lo, hi)
	}
	wg.Wait()

	for _, c := range changedBy {
		if c {
			return true
		}
	}
	return false
}

// recomputeCentroids replaces each centroid with the weighted mean of its
// assigned colors. A centroid that lost every member keeps its position; it
// will surface as an empty cluster and be dropped from the result.
func recomputeCentroids(colors []colorspace.RGB, counts []int, assign []int, old [][3]float64) [][3]float64 {
	k := len(old)
	sums := make([][3]float64, k)
	members := make([]float64, k)
	for i, a := range assign {
		v := toVec(colors[i])
		w := float64(counts[i])
		sums[a][0] += v[0] * w
		sums[a][1] += v[1] * w
		sums[a][2] += v[2] * w
		members[a] += w
	}

	out := make([][3]float64, k)
	for j := range out {
		if members[j] == 0 {
			out[j] = old[j]
			continue
		}
		out[j] = [3]float64{
			sums[j][0] / members[j],
			sums[j][1] / members[j],
			sums[j][2] / members[j],
		}
	}
	return out
}

// histogramPalette builds the exact palette for populations with no more
// distinct colors than requested clusters.
func histogramPalette(colors []colorspace.RGB, counts []int, total int) *Palette {
	clusters := make([]Cluster, len(colors))
	for i, c := range colors {
		clusters[i] = newCluster(c, counts[i], total)
	}
	sortClusters(clusters)
	return &Palette{Clusters: clusters, Total: total, Iterations: 0, Converged: true}
}

// clusterPalette folds assignments back into per-centroid clusters, rounding
// centroids to 8-bit colors and merging any that round to the same color.
func clusterPalette(colors []colorspace.RGB, counts []int, assign []int, centroids [][3]float64, total, iterations int, converged bool) *Palette {
	memberCount := make([]int, len(centroids))
	for i, a := range assign {
		memberCount[a] += counts[i]
	}

	merged := make(map[colorspace.RGB]int)
	var order []colorspace.RGB
	for j, c := range centroids {
		if memberCount[j] == 0 {
			continue
		}
		rounded := colorspace.RGB{
			R: uint8(math.Round(c[0])),
			G: uint8(math.Round(c[1])),
			B: uint8(math.Round(c[2])),
		}
		if _, ok := merged[rounded]; !ok {
			order = append(order, rounded)
		}
		merged[rounded] += memberCount[j]
	}

	clusters := make([]Cluster, 0, len(order))
	for _, c := range order {
		clusters = append(clusters, newCluster(c, merged[c], total))
	}
	sortClusters(clusters)
	return &Palette{Clusters: clusters, Total: total, Iterations: iterations, Converged: converged}
}

func newCluster(c colorspace.RGB, count, total int) Cluster {
	return Cluster{
		Color:      c,
		Hex:        c.Hex(),
		Count:      count,
		Proportion: float64(count) / float64(total),
	}
}

// sortClusters orders by descending pixel count; the stable sort keeps the
// pre-sort order for equal counts, so ties are deterministic too.
func sortClusters(clusters []Cluster) {
	sort.SliceStable(clusters, func(i, j int) bool {
		return clusters[i].Count > clusters[j].Count
	})
}

func toVec(c colorspace.RGB) [3]float64 {
	return [3]float64{float64(c.R), float64(c.G), float64(c.B)}
}

func sqDist(a, b [3]float64) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	dz := a[2] - b[2]
	return dx*dx + dy*dy + dz*dz
}
