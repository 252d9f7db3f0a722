package namedcolor

import "sort"

// kdNode is one node of a static 3-dimensional k-d tree over the reference
// colors. The tree is built once per Matcher and never rebalanced.
type kdNode struct {
	point       [3]float64
	index       int // position of this entry in the original dataset order
	axis        int
	left, right *kdNode
}

// buildKDTree constructs a balanced tree by recursive median splits.
// indices selects into points; both describe the same dataset ordering.
func buildKDTree(points [][3]float64, indices []int, depth int) *kdNode {
	if len(indices) == 0 {
		return nil
	}

	axis := depth % 3
	sort.SliceStable(indices, func(i, j int) bool {
		return points[indices[i]][axis] < points[indices[j]][axis]
	})

	mid := len(indices) / 2
	node := &kdNode{
		point: points[indices[mid]],
		index: indices[mid],
		axis:  axis,
	}
	// The index slices must not alias after the recursive sorts, so copy.
	left := append([]int(nil), indices[:mid]...)
	right := append([]int(nil), indices[mid+1:]...)
	node.left = buildKDTree(points, left, depth+1)
	node.right = buildKDTree(points, right, depth+1)
	return node
}

// nearest finds the entry closest to query, updating best in place.
//
// Ties on squared distance resolve to the smaller dataset index, which keeps
// results deterministic when several references share a color. Subtrees are
// pruned only when the splitting plane is strictly farther than the current
// best, so equidistant candidates are always visited.
func (n *kdNode) nearest(query [3]float64, bestDist *float64, bestIndex *int) {
	if n == nil {
		return
	}

	d := sqDist(n.point, query)
	if d < *bestDist || (d == *bestDist && n.index < *bestIndex) {
		*bestDist = d
		*bestIndex = n.index
	}

	diff := query[n.axis] - n.point[n.axis]
	near, far := n.left, n.right
	if diff > 0 {
		near, far = n.right, n.left
	}

	near.nearest(query, bestDist, bestIndex)
	if diff*diff <= *bestDist {
		far.nearest(query, bestDist, bestIndex)
	}
}

func sqDist(a, b [3]float64) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	dz := a[2] - b[2]
	return dx*dx + dy*dy + dz*dz
}
