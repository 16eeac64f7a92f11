package ikdtree_test

import (
	"fmt"

	"github.com/katalvlaran/ikdtree"
)

// ExampleTree_Build_kNN builds a tree over four points and finds the 2
// nearest to the origin.
//
// Playground: [![Playground - ikdtree](https://img.shields.io/badge/Go_Playground-ikdtree-blue?logo=go)](https://play.golang.org/p/ikdtree)
func ExampleTree_Build_kNN() {
	tr, err := ikdtree.NewTree(ikdtree.DefaultConfig())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	tr.Build([]ikdtree.Point{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 2, Y: 0, Z: 0},
		{X: 5, Y: 5, Z: 5},
	})

	var out []ikdtree.Point
	tr.KNN(ikdtree.Point{X: 0, Y: 0, Z: 0}, 2, &out)
	for _, p := range out {
		fmt.Printf("(%.0f,%.0f,%.0f)\n", p.X, p.Y, p.Z)
	}
	// Output:
	// (0,0,0)
	// (1,0,0)
}

// ExampleTree_Insert demonstrates voxel downsampling: two points that fall
// in the same voxel collapse to a single survivor (spec.md §4.6).
func ExampleTree_Insert() {
	cfg := ikdtree.DefaultConfig()
	cfg.VoxelSize = 1.0

	tr, err := ikdtree.NewTree(cfg)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	tr.Insert([]ikdtree.Point{{X: 0.1, Y: 0.1, Z: 0.1}})
	fmt.Println("after first insert:", tr.ValidCount())

	tr.Insert([]ikdtree.Point{{X: 0.2, Y: 0.2, Z: 0.2}})
	fmt.Println("after second insert into same voxel:", tr.ValidCount())
	// Output:
	// after first insert: 1
	// after second insert into same voxel: 1
}

// ExampleTree_DeletePoints shows that a logical delete drops ValidCount
// immediately. The deleted node itself stays in the tree (and out of the
// removed-points queue) until a rebuild physically destroys it.
func ExampleTree_DeletePoints() {
	tr, err := ikdtree.NewTree(ikdtree.DefaultConfig())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	origin := ikdtree.Point{X: 0, Y: 0, Z: 0}
	tr.Build([]ikdtree.Point{origin, {X: 5, Y: 5, Z: 5}})
	tr.DeletePoints([]ikdtree.Point{origin})

	fmt.Println("valid count:", tr.ValidCount())
	// Output:
	// valid count: 1
}
