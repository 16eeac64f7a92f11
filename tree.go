package ikdtree

import "github.com/katalvlaran/ikdtree/internal/pq"

// Tree is an incremental, self-balancing, partially-lazy-deleted 3D k-d
// tree (spec.md §3). The zero value is not usable; construct with
// NewTree.
type Tree struct {
	Config Config

	root *Node

	scratch       []Point // PCL_Storage: rebuild scratch buffer, reused across calls
	downsampleBuf []Point // Downsample_Storage: voxel-dedup scratch buffer
	removed       []Point // Points_deleted: physically destroyed pivots awaiting TakeRemoved

	deleteCounter int // delete_counter: cumulative nodes marked by range deletes (DeleteBoxes and Insert's voxel purges), surfaced via RangeDeleteCount

	pqPool *pq.BoundedMaxPQ[Point] // reused by KNN when Config.PQPooling is set
}

// NewTree constructs an empty Tree with the given configuration. Returns
// ErrInvalidConfig if cfg fails Validate.
func NewTree(cfg Config) (*Tree, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Tree{Config: cfg}, nil
}

// SetDeleteCriterion live-reconfigures the invalid-fraction rebuild
// threshold. Returns ErrInvalidConfig if v is outside (0,1].
func (t *Tree) SetDeleteCriterion(v float64) error {
	if v <= 0 || v > 1 {
		return ErrInvalidConfig
	}
	t.Config.DeleteCriterion = v
	return nil
}

// SetBalanceCriterion live-reconfigures the balance-fraction rebuild
// threshold. Returns ErrInvalidConfig if v is outside (0.5,1).
func (t *Tree) SetBalanceCriterion(v float64) error {
	if v <= 0.5 || v >= 1 {
		return ErrInvalidConfig
	}
	t.Config.BalanceCriterion = v
	return nil
}

// Build replaces any existing tree with a freshly balanced tree over
// points. Any previously held nodes are simply dropped — unlike Rebuild,
// this teardown is silent and never appends to the removed-points queue,
// matching KD_TREE::Build in original_source/kd_tree.cpp (SPEC_FULL.md
// §8); Go's GC reclaims the old nodes without an explicit teardown walk.
func (t *Tree) Build(points []Point) {
	storage := make([]Point, len(points))
	copy(storage, points)
	t.root = buildTree(storage, 0, len(storage)-1)
}

// Insert voxel-downsamples and adds each point of points (spec.md §4.6,
// §6).
func (t *Tree) Insert(points []Point) {
	for _, p := range points {
		t.insertOne(p)
	}
}

// DeletePoints logically removes each point of points by point-equality
// match. A point with no match is reported through Config.OnPointNotFound
// (non-fatal) and the remaining points are still processed.
func (t *Tree) DeletePoints(points []Point) {
	for _, p := range points {
		var found bool
		t.root, found = t.deleteByPoint(t.root, p, true)
		if !found && t.Config.OnPointNotFound != nil {
			t.Config.OnPointNotFound(p)
		}
	}
}

// DeleteBoxes range-deletes every box of boxes, without voxel-downsample
// collection (spec.md §4.7, §6).
func (t *Tree) DeleteBoxes(boxes []Box) {
	for _, b := range boxes {
		t.root = t.deleteByRange(t.root, b, false, true)
	}
}

// KNN populates out with at most k live points of the tree in ascending
// distance order from query (nearest first). k<=0 or an empty tree yields
// an empty out; neither case is an error (spec.md §7 EmptyQuery class).
func (t *Tree) KNN(query Point, k int, out *[]Point) {
	*out = (*out)[:0]
	if k <= 0 || t.root == nil {
		return
	}

	var q *pq.BoundedMaxPQ[Point]
	if t.Config.PQPooling {
		if t.pqPool == nil {
			t.pqPool = pq.NewBounded[Point](k)
		} else {
			t.pqPool.Reset(k)
		}
		q = t.pqPool
	} else {
		q = pq.NewBounded[Point](k)
	}

	knnSearch(t.root, query, k, q)
	*out = append(*out, q.DrainAscending()...)
}
