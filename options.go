package ikdtree

// BalanceTieBreak selects which child Criterion_Check treats as "the
// heavier child" when both children are present (spec.md §9's observed
// ambiguity: the source always inspects left_son_ptr first).
type BalanceTieBreak int

const (
	// TieBreakLeftFirst reproduces the source exactly: when both children
	// are present, the balance fraction is computed against the left
	// child's size, not necessarily the heavier one.
	TieBreakLeftFirst BalanceTieBreak = iota
	// TieBreakHeaviest computes the balance fraction against whichever
	// child actually has the larger size.
	TieBreakHeaviest
)

// Config configures a Tree. Zero-value Config is not valid; use
// DefaultConfig and override fields, or construct one directly and call
// Validate before NewTree (NewTree validates internally too).
type Config struct {
	// DeleteCriterion is the invalid-fraction threshold that triggers a
	// rebuild. Domain: (0,1].
	DeleteCriterion float64
	// BalanceCriterion is the heavier-child-fraction threshold that
	// triggers a rebuild. Domain: (0.5,1).
	BalanceCriterion float64
	// VoxelSize is the edge length of the downsampling voxel used by
	// Insert. Domain: >0.
	VoxelSize float64
	// MinRebuildSize is the minimum subtree size below which
	// Criterion_Check always reports "balanced". Domain: >0.
	MinRebuildSize int
	// BalanceTieBreak selects the heavier-child policy (spec.md §9).
	BalanceTieBreak BalanceTieBreak
	// PQPooling reuses a single internal/pq.BoundedMaxPQ across
	// successive KNN calls instead of allocating a fresh one each time.
	// Default on; set false to get an isolated queue per call (e.g. for
	// concurrent KNN calls against the same Tree, which pooling does not
	// support).
	PQPooling bool

	// OnPointNotFound, if non-nil, is invoked once per point passed to
	// DeletePoints that matched nothing in the tree (non-fatal).
	OnPointNotFound func(p Point)
	// OnRebuild, if non-nil, is invoked after every partial or root
	// rebuild triggered by a mutating call.
	OnRebuild func(stats RebuildStats)
}

// RebuildStats describes one partial or full rebuild, passed to
// Config.OnRebuild.
type RebuildStats struct {
	// SubtreeSize is the tree_size of the subtree that was rebuilt.
	SubtreeSize int
	// RemovedCount is the number of physically destroyed nodes appended
	// to the removed-points queue: every node of the old subtree, live or
	// logically deleted.
	RemovedCount int
}

// DefaultConfig returns the "default argument set" preset observed in the
// source: delete=0.5, balance=0.7, voxel=0.2, minRebuildSize=10.
func DefaultConfig() Config {
	return Config{
		DeleteCriterion:  0.5,
		BalanceCriterion: 0.7,
		VoxelSize:        0.2,
		MinRebuildSize:   10,
		BalanceTieBreak:  TieBreakLeftFirst,
		PQPooling:        true,
	}
}

// PresetLoose returns the looser threshold set observed in the source's
// example usage: delete=0.3, balance=0.6, voxel=0.2.
func PresetLoose() Config {
	cfg := DefaultConfig()
	cfg.DeleteCriterion = 0.3
	cfg.BalanceCriterion = 0.6
	return cfg
}

// Validate reports ErrInvalidConfig if any field is outside its documented
// domain.
func (c *Config) Validate() error {
	if c.DeleteCriterion <= 0 || c.DeleteCriterion > 1 {
		return ErrInvalidConfig
	}
	if c.BalanceCriterion <= 0.5 || c.BalanceCriterion >= 1 {
		return ErrInvalidConfig
	}
	if c.VoxelSize <= 0 {
		return ErrInvalidConfig
	}
	if c.MinRebuildSize <= 0 {
		return ErrInvalidConfig
	}
	return nil
}
