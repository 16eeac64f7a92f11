package ikdtree

import "math"

// Node is one node of the k-d tree: a pivot point, the axis it splits on,
// its two children, and the aggregates cached over its subtree.
//
// Invariants (see SPEC_FULL.md §5 / spec.md §3):
//
//	I1: size         = 1 + size(left) + size(right)
//	I2: invalid      = [pointDeleted] + invalid(left) + invalid(right)
//	I3: treeDeleted  = pointDeleted && subtreeDeleted(left) && subtreeDeleted(right)
//	I4: rangeMin/Max bound every pivot in the subtree, including deleted ones
//	I5: left children have point.axis(a) < node.point.axis(a); right have >=
//	I6: treeDeleted propagates to children via pushDown before recursion
type Node struct {
	point Point
	axis  int // division axis, one of {0,1,2}

	left, right *Node

	size         int  // tree_size: all nodes in subtree, including logically deleted
	invalid      int  // invalid_count: logically deleted nodes in subtree
	pointDeleted bool // this node's pivot is logically deleted
	treeDeleted  bool // every point in subtree is logically deleted (lazy mark)
	needRebuild  bool // cached result of the most recent Criterion_Check

	rangeMin, rangeMax Point // bound every pivot in the subtree (I4)
}

// subtreeDeleted reports whether n is absent or fully tree-deleted — the
// vacuous-truth case used by I3/update for an absent child.
func subtreeDeleted(n *Node) bool {
	return n == nil || n.treeDeleted
}

// update recomputes size, invalid, treeDeleted and the coordinate ranges
// of n from n.point/n.pointDeleted and its two children. Called at the end
// of every mutating traversal at n (spec.md §4.2).
func (n *Node) update() {
	left, right := n.left, n.right

	switch {
	case left != nil && right != nil:
		n.size = left.size + right.size + 1
		n.invalid = left.invalid + right.invalid + boolToInt(n.pointDeleted)
		n.treeDeleted = left.treeDeleted && right.treeDeleted && n.pointDeleted
		n.rangeMin = minPoint(minPoint(left.rangeMin, right.rangeMin), n.point)
		n.rangeMax = maxPoint(maxPoint(left.rangeMax, right.rangeMax), n.point)
	case left != nil:
		n.size = left.size + 1
		n.invalid = left.invalid + boolToInt(n.pointDeleted)
		n.treeDeleted = left.treeDeleted && n.pointDeleted
		n.rangeMin = minPoint(left.rangeMin, n.point)
		n.rangeMax = maxPoint(left.rangeMax, n.point)
	case right != nil:
		n.size = right.size + 1
		n.invalid = right.invalid + boolToInt(n.pointDeleted)
		n.treeDeleted = right.treeDeleted && n.pointDeleted
		n.rangeMin = minPoint(right.rangeMin, n.point)
		n.rangeMax = maxPoint(right.rangeMax, n.point)
	default:
		n.size = 1
		n.invalid = boolToInt(n.pointDeleted)
		n.treeDeleted = n.pointDeleted
		n.rangeMin = n.point
		n.rangeMax = n.point
	}
}

// pushDown enforces I6: if n.treeDeleted, mark each present child
// point-deleted and tree-deleted. Child aggregates themselves are left
// untouched until that child is next visited and update runs on it.
// Invoked at the top of every mutating traversal (spec.md §4.2).
func (n *Node) pushDown() {
	if n == nil {
		return
	}
	if n.left != nil && n.treeDeleted {
		n.left.pointDeleted = true
		n.left.treeDeleted = true
	}
	if n.right != nil && n.treeDeleted {
		n.right.pointDeleted = true
		n.right.treeDeleted = true
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func minPoint(a, b Point) Point {
	return Point{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)}
}

func maxPoint(a, b Point) Point {
	return Point{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)}
}
