package ikdtree

import "math"

// eps is the tolerance used for point equality and box-boundary
// comparisons throughout the package (spec: EPS).
const eps = 1e-6

// Point is a three-coordinate point in the index.
type Point struct {
	X, Y, Z float64
}

// axis returns the coordinate of p on the given division axis (0=X, 1=Y, 2=Z).
func (p Point) axis(a int) float64 {
	switch a {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		return p.Z
	}
}

// Box is an axis-aligned bounding box with Min[i] <= Max[i] on every axis.
type Box struct {
	Min, Max Point
}

// Contains reports whether p lies within b, inclusive, within eps.
func (b Box) Contains(p Point) bool {
	return b.Min.X-eps < p.X && p.X < b.Max.X+eps &&
		b.Min.Y-eps < p.Y && p.Y < b.Max.Y+eps &&
		b.Min.Z-eps < p.Z && p.Z < b.Max.Z+eps
}

// center returns the geometric center of b.
func (b Box) center() Point {
	return Point{
		X: (b.Min.X + b.Max.X) / 2,
		Y: (b.Min.Y + b.Max.Y) / 2,
		Z: (b.Min.Z + b.Max.Z) / 2,
	}
}

// voxelBox returns the half-open voxel box of side `size` that p falls into.
func voxelBox(p Point, size float64) Box {
	vx := math.Floor(p.X/size) * size
	vy := math.Floor(p.Y/size) * size
	vz := math.Floor(p.Z/size) * size
	return Box{
		Min: Point{X: vx, Y: vy, Z: vz},
		Max: Point{X: vx + size, Y: vy + size, Z: vz + size},
	}
}

// distSq returns the squared Euclidean distance between a and b.
func distSq(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return dx*dx + dy*dy + dz*dz
}

// samePoint reports whether a and b are equal within eps on every axis.
func samePoint(a, b Point) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}
