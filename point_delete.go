package ikdtree

// deleteByPoint recursively marks the first point-equal match to p along
// the division-axis descent path as logically deleted. Duplicates on the
// split plane that live in a different branch are not found — the
// descent stops at the first match, exactly as spec.md §4.8 describes.
// Returns the subtree root (replaced when the rebuild scheduling policy
// rebuilds it) and whether a match was deleted.
func (t *Tree) deleteByPoint(n *Node, p Point, isRoot bool) (*Node, bool) {
	n.pushDown()

	if n == nil || n.treeDeleted {
		return n, false
	}

	if samePoint(n.point, p) && !n.pointDeleted {
		n.pointDeleted = true
		n.invalid++
		if n.invalid == n.size {
			n.treeDeleted = true
		}
		return n, true
	}

	var found bool
	if p.axis(n.axis) < n.point.axis(n.axis) {
		n.left, found = t.deleteByPoint(n.left, p, false)
	} else {
		n.right, found = t.deleteByPoint(n.right, p, false)
	}

	n.update()
	return t.applyRebuildPolicy(n, isRoot), found
}
