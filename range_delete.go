package ikdtree

// deleteByRange recursively applies box as a range-delete against n's
// subtree (spec.md §4.7). When collect is true this is also the engine
// behind voxel downsampling (spec.md §4.6): every live pivot that falls
// inside box is additionally appended to t.downsampleBuf, and a subtree
// whose bounding box is fully covered by box is physically destroyed on
// the spot (rather than merely lazily marked), since voxel downsampling
// needs those nodes gone immediately to make room for the surviving
// candidate.
func (t *Tree) deleteByRange(n *Node, box Box, collect bool, isRoot bool) *Node {
	n.pushDown()

	if n == nil || n.treeDeleted {
		return n
	}

	if !boxIntersects(box, n) {
		return n
	}

	if boxCovers(box, n) {
		if collect {
			// Gathered before the wholesale mark below, which would
			// otherwise hide n's own live pivot.
			t.downsampleBuf = appendLivePivots(n, t.downsampleBuf)
		}

		n.treeDeleted = true
		n.pointDeleted = true
		t.deleteCounter += n.size
		n.invalid = n.size

		if collect {
			// Physically destroyed: the subtree is dropped (nil) rather
			// than kept lazily marked, since voxel downsampling needs the
			// space reclaimed immediately. Go's GC reclaims the nodes; no
			// explicit teardown walk is needed, unlike Rebuild's removed-
			// points bookkeeping.
			return nil
		}
		return n
	}

	if box.Contains(n.point) {
		if !n.pointDeleted {
			n.pointDeleted = true
			n.invalid++
			t.deleteCounter++
			if collect {
				t.downsampleBuf = append(t.downsampleBuf, n.point)
			}
		}
	}

	n.left = t.deleteByRange(n.left, box, collect, false)
	n.right = t.deleteByRange(n.right, box, collect, false)

	n.update()
	return t.applyRebuildPolicy(n, isRoot)
}

// appendLivePivots appends every live pivot of n's subtree (not
// point-deleted, and not under a tree_deleted node whose mark has yet to
// be pushed down) to out, via pre-order traversal. Used when a wholesale
// range-delete is about to physically destroy the subtree and the caller
// needs the surviving candidates for voxel downsampling (spec.md §4.7
// step 4, §4.6).
func appendLivePivots(n *Node, out []Point) []Point {
	if n == nil || n.treeDeleted {
		return out
	}
	if !n.pointDeleted {
		out = append(out, n.point)
	}
	out = appendLivePivots(n.left, out)
	out = appendLivePivots(n.right, out)
	return out
}
