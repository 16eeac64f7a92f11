package ikdtree

import "github.com/katalvlaran/ikdtree/internal/pq"

// knnSearch performs the best-first recursion of spec.md §4.9: a bounded
// max-priority-queue of size k tracks the current candidate set, subtree
// bounding-box distances prune entire branches, and the nearer child (by
// box distance) is always explored first to tighten the bound quickly.
func knnSearch(n *Node, query Point, k int, q *pq.BoundedMaxPQ[Point]) {
	if n == nil || n.treeDeleted {
		return
	}

	if !n.pointDeleted {
		q.Offer(n.point, distSq(query, n.point))
	}

	leftDist := boxMinDistSq(n.left, query)
	rightDist := boxMinDistSq(n.right, query)

	nearer, nearerDist := n.left, leftDist
	farther, fartherDist := n.right, rightDist
	if rightDist < leftDist {
		nearer, nearerDist = n.right, rightDist
		farther, fartherDist = n.left, leftDist
	}

	if q.Admissible(nearerDist) {
		knnSearch(nearer, query, k, q)
	}
	if q.Admissible(fartherDist) {
		knnSearch(farther, query, k, q)
	}
}
