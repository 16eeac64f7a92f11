// Package ikdtree implements an incremental, self-balancing, partially
// lazy-deleted k-d tree over 3D points.
//
// 🚀 What is ikdtree?
//
//	A single-writer spatial index that keeps working while the point set
//	keeps changing:
//
//	  • Insertion with voxel-grid downsampling
//	  • Point and axis-aligned-box deletion (lazy, rebuilt lazily)
//	  • k-nearest-neighbor search with branch-and-bound pruning
//	  • Partial (subtree-local) rebuilds triggered by a balance/delete
//	    criterion, instead of full-tree rebuilds
//
// ✨ Why ikdtree?
//
//	Built for robotics and perception pipelines — LiDAR odometry and
//	mapping in particular — where the underlying point cloud is mutated
//	thousands of times per second and a full rebuild per frame is not
//	affordable.
//
// Under the hood, everything lives in one cohesive package:
//
//	Tree        — root holder + configuration + scratch buffers
//	Node        — pivot, division axis, children, cached aggregates
//	internal/pq — bounded max-priority-queue used by kNN search
//
// Quick usage:
//
//	cfg := ikdtree.DefaultConfig()
//	tree, err := ikdtree.NewTree(cfg)
//	if err != nil { /* cfg failed Validate */ }
//	tree.Build([]ikdtree.Point{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 1}})
//	var nearest []ikdtree.Point
//	tree.KNN(ikdtree.Point{}, 1, &nearest)
//
// Performance:
//
//   - Insert/Delete: O(log n) amortized, O(n) worst case on a rebuild
//   - KNN:           O(log n + k) average, pruned by subtree bounding boxes
//   - Rebuild:       O(m) where m is the size of the rebuilt subtree
//
// Errors:
//
//   - ErrInvalidConfig: bad criterion/voxel/rebuild-size value
//   - a point DeletePoints can't match is non-fatal, reported via
//     Config.OnPointNotFound
//
// Non-goals: disk persistence, >3 dimensions, approximate nearest neighbor,
// concurrent multi-writer mutation (see SPEC_FULL.md).
package ikdtree
