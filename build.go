package ikdtree

import "gonum.org/v1/gonum/stat"

// buildTree builds a balanced subtree from points[l..r] inclusive and
// returns its root (nil if l>r). It selects the division axis of maximum
// variance, order-statistic partitions around the median index, and
// recurses (spec.md §4.3).
func buildTree(points []Point, l, r int) *Node {
	if l > r {
		return nil
	}

	axis := maxVarianceAxis(points, l, r)
	mid := (l + r) / 2
	quickselect(points, l, r, mid, axis)

	// quickselect may leave values equal to the median left of mid. Move
	// them up against mid and take the first of them as the pivot, so the
	// left subtree holds only strictly smaller coordinates (I5).
	pivotVal := points[mid].axis(axis)
	store := l
	for i := l; i < mid; i++ {
		if points[i].axis(axis) < pivotVal {
			points[i], points[store] = points[store], points[i]
			store++
		}
	}
	points[store], points[mid] = points[mid], points[store]
	mid = store

	n := &Node{
		point: points[mid],
		axis:  axis,
	}
	n.left = buildTree(points, l, mid-1)
	n.right = buildTree(points, mid+1, r)
	n.update()
	return n
}

// maxVarianceAxis returns the axis (0=X,1=Y,2=Z) of maximum variance over
// points[l..r], using gonum/stat.MeanVariance for each axis's first and
// second moments (spec.md §4.3 steps 2-3).
func maxVarianceAxis(points []Point, l, r int) int {
	n := r - l + 1
	xs := make([]float64, n)
	ys := make([]float64, n)
	zs := make([]float64, n)
	for i := 0; i < n; i++ {
		p := points[l+i]
		xs[i], ys[i], zs[i] = p.X, p.Y, p.Z
	}
	_, varX := stat.MeanVariance(xs, nil)
	_, varY := stat.MeanVariance(ys, nil)
	_, varZ := stat.MeanVariance(zs, nil)

	axis := 0
	best := varX
	if varY > best {
		axis, best = 1, varY
	}
	if varZ > best {
		axis = 2
	}
	return axis
}

// quickselect partitions points[l..r] in place so that points[k] holds the
// element that would be at index k were the slice fully sorted by
// axis-th coordinate, with every element in [l,k) less-or-equal and every
// element in (k,r] greater-or-equal; elements equal to points[k] may sit
// on either side. This is an order-statistic partition, not a full sort.
func quickselect(points []Point, l, r, k int, axis int) {
	for l < r {
		pivotIdx := partition(points, l, r, (l+r)/2, axis)
		switch {
		case k == pivotIdx:
			return
		case k < pivotIdx:
			r = pivotIdx - 1
		default:
			l = pivotIdx + 1
		}
	}
}

// partition performs a Lomuto partition of points[l..r] around the value
// at pivotIdx (by axis-th coordinate), returning the pivot's final index.
func partition(points []Point, l, r, pivotIdx int, axis int) int {
	pivotVal := points[pivotIdx].axis(axis)
	points[pivotIdx], points[r] = points[r], points[pivotIdx]

	store := l
	for i := l; i < r; i++ {
		if points[i].axis(axis) < pivotVal {
			points[i], points[store] = points[store], points[i]
			store++
		}
	}
	points[store], points[r] = points[r], points[store]
	return store
}
