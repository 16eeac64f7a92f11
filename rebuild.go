package ikdtree

// criterionCheck reports whether n's subtree has drifted far enough from
// balanced/clean to warrant a rebuild (spec.md §4.4). Below MinRebuildSize
// the check always reports "balanced" — this also protects the childless
// single-node case from ever dereferencing a nil "heavier child" (spec.md
// §9's dependency note).
func criterionCheck(n *Node, cfg *Config) bool {
	if n.size < cfg.MinRebuildSize {
		return false
	}

	deleteFraction := float64(n.invalid) / float64(n.size)
	if deleteFraction > cfg.DeleteCriterion {
		return true
	}

	balanceFraction := heavierChildFraction(n, cfg.BalanceTieBreak)
	return balanceFraction > cfg.BalanceCriterion || balanceFraction < 1-cfg.BalanceCriterion
}

// heavierChildFraction computes the fraction of n.size occupied by "the
// heavier child", per the configured tie-break policy (spec.md §9).
func heavierChildFraction(n *Node, tie BalanceTieBreak) float64 {
	var childSize int
	switch tie {
	case TieBreakHeaviest:
		if n.left != nil && n.left.size > childSize {
			childSize = n.left.size
		}
		if n.right != nil && n.right.size > childSize {
			childSize = n.right.size
		}
	default: // TieBreakLeftFirst: inspect left first, like the source.
		son := n.left
		if son == nil {
			son = n.right
		}
		if son != nil {
			childSize = son.size
		}
	}
	return float64(childSize) / float64(n.size)
}

// applyRebuildPolicy runs the rebuild scheduling policy of spec.md §4.4 at
// the post-order step of a mutating traversal on n: recompute
// need_rebuild; if n's own criterion did not fire, rebuild any child whose
// own criterion already fired; if it did fire, rebuild n itself only when
// n is the tree root. Returns the (possibly replaced) subtree root.
func (t *Tree) applyRebuildPolicy(n *Node, isRoot bool) *Node {
	n.needRebuild = criterionCheck(n, &t.Config)

	if !n.needRebuild {
		if n.left != nil && n.left.needRebuild {
			n.left = t.rebuild(n.left)
		}
		if n.right != nil && n.right.needRebuild {
			n.right = t.rebuild(n.right)
		}
		return n
	}

	if isRoot {
		return t.rebuild(n)
	}
	return n
}

// rebuild flattens every live point of n's subtree, physically destroys
// every node of that subtree (appending each destroyed pivot to the
// removed-points queue), and rebuilds a balanced replacement subtree from
// the live points (spec.md §4.4).
func (t *Tree) rebuild(n *Node) *Node {
	scratch := t.scratch[:0]
	flattenLive(n, &scratch)
	t.scratch = scratch

	subtreeSize := n.size
	removedBefore := len(t.removed)
	t.removed = destroySubtree(n, t.removed)

	newRoot := buildTree(scratch, 0, len(scratch)-1)

	if t.Config.OnRebuild != nil {
		t.Config.OnRebuild(RebuildStats{
			SubtreeSize:  subtreeSize,
			RemovedCount: len(t.removed) - removedBefore,
		})
	}
	return newRoot
}

// destroySubtree post-order visits every node of n's subtree, appending
// every pivot (logically deleted or not) to sink. This is physical
// deletion, the only point at which a node's pivot enters the
// removed-points queue (spec.md §3 Lifecycle).
func destroySubtree(n *Node, sink []Point) []Point {
	if n == nil {
		return sink
	}
	sink = destroySubtree(n.left, sink)
	sink = destroySubtree(n.right, sink)
	return append(sink, n.point)
}
