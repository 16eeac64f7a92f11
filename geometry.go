package ikdtree

import "math"

// boxMinDistSq returns the squared Euclidean distance from p to n's subtree
// bounding box (n.rangeMin..n.rangeMax); coordinates of p inside the range
// contribute 0 on that axis. An absent node returns +Inf, a value that
// never wins a pruning comparison (spec.md §4.1).
func boxMinDistSq(n *Node, p Point) float64 {
	if n == nil {
		return math.Inf(1)
	}

	var d float64
	if p.X < n.rangeMin.X {
		d += (p.X - n.rangeMin.X) * (p.X - n.rangeMin.X)
	} else if p.X > n.rangeMax.X {
		d += (p.X - n.rangeMax.X) * (p.X - n.rangeMax.X)
	}
	if p.Y < n.rangeMin.Y {
		d += (p.Y - n.rangeMin.Y) * (p.Y - n.rangeMin.Y)
	} else if p.Y > n.rangeMax.Y {
		d += (p.Y - n.rangeMax.Y) * (p.Y - n.rangeMax.Y)
	}
	if p.Z < n.rangeMin.Z {
		d += (p.Z - n.rangeMin.Z) * (p.Z - n.rangeMin.Z)
	} else if p.Z > n.rangeMax.Z {
		d += (p.Z - n.rangeMax.Z) * (p.Z - n.rangeMax.Z)
	}
	return d
}

// boxIntersects reports whether box b overlaps n's subtree range on every
// axis, within eps. Used to prune Delete_by_range descent (spec.md §4.7
// step 3, negated).
func boxIntersects(b Box, n *Node) bool {
	if b.Max.X+eps < n.rangeMin.X || b.Min.X-eps > n.rangeMax.X {
		return false
	}
	if b.Max.Y+eps < n.rangeMin.Y || b.Min.Y-eps > n.rangeMax.Y {
		return false
	}
	if b.Max.Z+eps < n.rangeMin.Z || b.Min.Z-eps > n.rangeMax.Z {
		return false
	}
	return true
}

// boxCovers reports whether box b fully contains n's subtree range on
// every axis, within eps (spec.md §4.7 step 4).
func boxCovers(b Box, n *Node) bool {
	return b.Min.X-eps < n.rangeMin.X && b.Max.X+eps > n.rangeMax.X &&
		b.Min.Y-eps < n.rangeMin.Y && b.Max.Y+eps > n.rangeMax.Y &&
		b.Min.Z-eps < n.rangeMin.Z && b.Max.Z+eps > n.rangeMax.Z
}
