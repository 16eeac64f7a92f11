package ikdtree

// insertOne voxel-downsamples p against whatever already occupies its
// voxel, then adds the surviving candidate (spec.md §4.6): the voxel's
// existing occupants are purged via a collecting range-delete, and
// whichever of {p, purged points} sits closest to the voxel's geometric
// center is the one that gets added back.
func (t *Tree) insertOne(p Point) {
	box := voxelBox(p, t.Config.VoxelSize)
	mid := box.center()

	t.downsampleBuf = t.downsampleBuf[:0]
	t.root = t.deleteByRange(t.root, box, true, true)

	candidate := p
	best := distSq(p, mid)
	for _, q := range t.downsampleBuf {
		if d := distSq(q, mid); d < best {
			best = d
			candidate = q
		}
	}

	t.root = t.add(t.root, candidate, true)
}
