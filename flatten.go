package ikdtree

// flattenLive appends every live pivot of n's subtree (point_deleted=false,
// reached without passing through a tree_deleted ancestor) to out, via
// in-order traversal (spec.md §4.4 Rebuild / §4.10 Flatten).
func flattenLive(n *Node, out *[]Point) {
	if n == nil || n.treeDeleted {
		return
	}
	flattenLive(n.left, out)
	if !n.pointDeleted {
		*out = append(*out, n.point)
	}
	flattenLive(n.right, out)
}

// Flatten appends every live point of the tree to out, via in-order
// traversal (spec.md §4.10).
func (t *Tree) Flatten(out *[]Point) {
	flattenLive(t.root, out)
}

// TakeRemoved moves the accumulated removed-points queue out to the
// caller, leaving it empty (spec.md §4.10, §6).
func (t *Tree) TakeRemoved() []Point {
	out := t.removed
	t.removed = nil
	return out
}

// ValidCount returns root.tree_size - root.invalid_count, or 0 if the
// tree is empty (spec.md §6).
func (t *Tree) ValidCount() int {
	if t.root == nil {
		return 0
	}
	return t.root.size - t.root.invalid
}

// RangeDeleteCount returns the cumulative delete_counter (spec.md §4.7):
// the full tree_size of every wholesale-covered subtree plus one for every
// pivot marked individually, summed over all range deletes on this Tree —
// DeleteBoxes calls and the voxel-downsampling range deletes Insert runs.
// Nodes of a subtree already counted are counted again when a later box
// covers a not-yet-deleted ancestor. Mirrors the source's delete_counter
// bookkeeping field, exposed as a diagnostic rather than a printf.
func (t *Tree) RangeDeleteCount() int {
	return t.deleteCounter
}
