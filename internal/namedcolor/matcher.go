package namedcolor

import (
	"fmt"
	"math"
	"sort"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

// Metric selects the color space in which nearest-neighbor distance is
// measured. The metric applies to the query and the index alike.
type Metric string

const (
	// MetricRGB measures Euclidean distance in 8-bit RGB space.
	MetricRGB Metric = "rgb"

	// MetricLab measures Euclidean distance in CIE Lab space (D65), which
	// tracks perceived color difference more closely than RGB.
	MetricLab Metric = "lab"
)

// maxDistance is the largest possible distance per metric, used to scale the
// confidence figure. The RGB value is the black-to-white diagonal; the Lab
// value is the nominal black-to-white lightness span.
var maxDistance = map[Metric]float64{
	MetricRGB: math.Sqrt(3 * 255 * 255),
	MetricLab: 1.0,
}

// MatchResult is the outcome of a nearest-name lookup.
type MatchResult struct {
	Entry

	// Distance is the match distance in the matcher's metric space. It is
	// not normalized; lower is better, 0 is an exact hit.
	Distance float64 `json:"distance"`

	// Confidence rescales Distance to 0-100, where 100 is an exact hit and
	// 0 is the farthest possible color.
	Confidence float64 `json:"confidence"`
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithMetric selects the distance metric. The default is MetricRGB.
func WithMetric(m Metric) Option {
	return func(mt *Matcher) { mt.metric = m }
}

// Matcher resolves colors to their nearest named reference entry.
//
// The k-d tree index is built once at construction; a Matcher is immutable
// afterwards and safe for concurrent use.
type Matcher struct {
	dataset *Dataset
	metric  Metric
	points  [][3]float64
	tree    *kdNode
}

// NewMatcher indexes the dataset for nearest lookups.
//
// Returns an error wrapping colorspace.ErrInvalidInput if the dataset is nil
// or an option names an unknown metric.
func NewMatcher(d *Dataset, opts ...Option) (*Matcher, error) {
	if d == nil || d.Len() == 0 {
		return nil, fmt.Errorf("%w: matcher needs a non-empty dataset", colorspace.ErrInvalidInput)
	}

	m := &Matcher{dataset: d, metric: MetricRGB}
	for _, opt := range opts {
		opt(m)
	}
	if _, ok := maxDistance[m.metric]; !ok {
		return nil, fmt.Errorf("%w: unknown distance metric %q", colorspace.ErrInvalidInput, m.metric)
	}

	m.points = make([][3]float64, d.Len())
	indices := make([]int, d.Len())
	for i, e := range d.entries {
		m.points[i] = m.toPoint(e.Color)
		indices[i] = i
	}
	m.tree = buildKDTree(m.points, indices, 0)
	return m, nil
}

// Dataset returns the reference dataset backing this matcher.
func (m *Matcher) Dataset() *Dataset { return m.dataset }

// Match returns the reference entry closest to the given color.
//
// Exactly one result is returned for any valid color; the call cannot fail.
// When several references are equidistant, the one appearing first in the
// dataset wins, so repeated calls always agree.
func (m *Matcher) Match(c colorspace.RGB) MatchResult {
	query := m.toPoint(c)
	bestDist := math.Inf(1)
	bestIndex := len(m.points) // larger than any real index
	m.tree.nearest(query, &bestDist, &bestIndex)

	return m.result(bestIndex, math.Sqrt(bestDist))
}

// MatchK returns the k reference entries closest to the given color, ordered
// by ascending distance (ties by dataset order). If k exceeds the dataset
// size, all entries are returned.
//
// Returns an error wrapping colorspace.ErrInvalidInput if k is not positive.
func (m *Matcher) MatchK(c colorspace.RGB, k int) ([]MatchResult, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: k must be positive, got %d", colorspace.ErrInvalidInput, k)
	}
	if k > m.dataset.Len() {
		k = m.dataset.Len()
	}

	// The dataset is small (a few hundred entries), so a scan-and-sort beats
	// maintaining a bounded heap or walking the tree k times.
	query := m.toPoint(c)
	type cand struct {
		index int
		dist  float64
	}
	cands := make([]cand, len(m.points))
	for i, p := range m.points {
		cands[i] = cand{index: i, dist: sqDist(p, query)}
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].dist < cands[j].dist })

	out := make([]MatchResult, 0, k)
	for _, cd := range cands[:k] {
		out = append(out, m.result(cd.index, math.Sqrt(cd.dist)))
	}
	return out, nil
}

// SearchName finds a reference entry by display name, case-insensitively.
// The second return value reports whether a match was found.
func (m *Matcher) SearchName(name string) (Entry, bool) {
	for _, e := range m.dataset.entries {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
	}
	return Entry{}, false
}

func (m *Matcher) result(index int, dist float64) MatchResult {
	conf := (1 - dist/maxDistance[m.metric]) * 100
	if conf < 0 {
		conf = 0
	}
	return MatchResult{
		Entry:      m.dataset.entries[index],
		Distance:   dist,
		Confidence: conf,
	}
}

// toPoint maps a color into the metric space used by the index.
func (m *Matcher) toPoint(c colorspace.RGB) [3]float64 {
	switch m.metric {
	case MetricLab:
		l, a, b := colorful.Color{
			R: float64(c.R) / 255.0,
			G: float64(c.G) / 255.0,
			B: float64(c.B) / 255.0,
		}.Lab()
		return [3]float64{l, a, b}
	default:
		return [3]float64{float64(c.R), float64(c.G), float64(c.B)}
	}
}
