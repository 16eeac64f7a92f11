package ikdtree

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestQuickselect_MedianPartition ASSERTS quickselect places the true
// median-by-index element at k, with everything smaller to its left and
// everything greater-or-equal to its right, without fully sorting
// (spec.md §4.3 step 4).
func TestQuickselect_MedianPartition(t *testing.T) {
	pts := []Point{{X: 5}, {X: 1}, {X: 9}, {X: 3}, {X: 7}, {X: 2}, {X: 8}}
	k := (len(pts) - 1) / 2 // index 3 of 7 elements

	quickselect(pts, 0, len(pts)-1, k, 0)

	sorted := append([]Point(nil), pts...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })
	wantMedian := sorted[k].X

	assert.Equal(t, wantMedian, pts[k].X, "pts[%d].X", k)
	for i := 0; i < k; i++ {
		assert.Less(t, pts[i].X, pts[k].X, "element %d is not < median", i)
	}
	for i := k + 1; i < len(pts); i++ {
		assert.GreaterOrEqual(t, pts[i].X, pts[k].X, "element %d is < median", i)
	}
}

// TestMaxVarianceAxis ASSERTS the axis with the largest spread is selected
// (spec.md §4.3 steps 2-3).
func TestMaxVarianceAxis(t *testing.T) {
	pts := []Point{
		{X: 0, Y: 0, Z: 0},
		{X: 0, Y: 100, Z: 0},
		{X: 0, Y: -100, Z: 0},
		{X: 1, Y: 0, Z: -1},
	}
	axis := maxVarianceAxis(pts, 0, len(pts)-1)
	assert.Equal(t, 1, axis, "maxVarianceAxis should pick Y, the largest spread")
}

// TestBuildTree_Empty ASSERTS an empty range builds an absent subtree.
func TestBuildTree_Empty(t *testing.T) {
	n := buildTree(nil, 0, -1)
	assert.Nil(t, n, "buildTree on empty range should return nil")
}

// TestBuildTree_ContainsEveryPoint ASSERTS BuildTree produces a tree whose
// flatten output is exactly the input multiset (the "Build then flatten"
// round-trip law, spec.md §8).
func TestBuildTree_ContainsEveryPoint(t *testing.T) {
	pts := []Point{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 1}, {X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 0},
		{X: 1, Y: 0, Z: 1}, {X: 0, Y: 1, Z: 1},
	}
	storage := append([]Point(nil), pts...)
	root := buildTree(storage, 0, len(storage)-1)

	var got []Point
	flattenLive(root, &got)

	assertSamePointSet(t, pts, got)
}

// TestBuildTree_Balanced ASSERTS the tree built from a large uniform point
// set stays within a reasonable depth bound (no degenerate list shape).
func TestBuildTree_Balanced(t *testing.T) {
	n := 500
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		pts[i] = Point{X: float64(i % 7), Y: float64((i * 13) % 29), Z: float64((i * 31) % 17)}
	}

	root := buildTree(pts, 0, len(pts)-1)
	depth := treeDepth(root)

	// A balanced binary tree over n nodes has depth ~log2(n); allow a
	// generous multiple to avoid being a brittle exact bound.
	maxDepth := 4 * ceilLog2(n)
	assert.LessOrEqual(t, depth, maxDepth, "tree depth for n=%d", n)
}

func treeDepth(n *Node) int {
	if n == nil {
		return 0
	}
	l, r := treeDepth(n.left), treeDepth(n.right)
	if l > r {
		return l + 1
	}
	return r + 1
}

func ceilLog2(n int) int {
	d := 0
	for v := 1; v < n; v *= 2 {
		d++
	}
	if d == 0 {
		d = 1
	}
	return d
}

// assertSamePointSet fails t unless got and want hold the same points as
// multisets (order-independent).
func assertSamePointSet(t *testing.T, want, got []Point) {
	t.Helper()
	if !assert.Len(t, got, len(want), "point count mismatch") {
		return
	}
	remaining := append([]Point(nil), got...)
	for _, w := range want {
		found := -1
		for i, g := range remaining {
			if samePoint(w, g) {
				found = i
				break
			}
		}
		if !assert.NotEqual(t, -1, found, "point %+v from want is missing from got", w) {
			continue
		}
		remaining = append(remaining[:found], remaining[found+1:]...)
	}
}
