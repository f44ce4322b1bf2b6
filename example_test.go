package kdtree_test

import (
	"fmt"
	"sort"

	"github.com/TrevorS/kdtree"
)

func Example() {
	points := []kdtree.Point{
		kdtree.Coords{0, 0},
		kdtree.Coords{1, 1},
		kdtree.Coords{2, 2},
		kdtree.Coords{3, 0},
		kdtree.Coords{0, 3},
	}
	tree, err := kdtree.Build(points)
	if err != nil {
		panic(err)
	}

	query := kdtree.Coords{3, 1}
	p, ok := tree.Nearest(query)
	fmt.Println(p, ok)

	for _, n := range tree.KNearestNeighbors(query, 3) {
		fmt.Println(n.Point, n.DistSq)
	}
	// Output:
	// [3 0] true
	// [3 0] 1
	// [2 2] 2
	// [1 1] 4
}

func ExampleTree_WithinRadius() {
	tree, _ := kdtree.Build([]kdtree.Point{
		kdtree.Coords{0, 0},
		kdtree.Coords{1, 1},
		kdtree.Coords{2, 2},
		kdtree.Coords{3, 0},
		kdtree.Coords{0, 3},
	})

	found := tree.WithinRadius(kdtree.Coords{1, 0}, 1.5)
	// Results come back in traversal order.
	sort.Slice(found, func(i, j int) bool { return found[i].Coord(0) < found[j].Coord(0) })
	fmt.Println(found)
	// Output:
	// [[0 0] [1 1]]
}

func ExampleTree_Fprint() {
	tree, _ := kdtree.Build([]kdtree.Point{
		kdtree.Coords{0, 0},
		kdtree.Coords{1, 1},
		kdtree.Coords{2, 2},
		kdtree.Coords{3, 0},
		kdtree.Coords{0, 3},
	})
	fmt.Print(tree)
	// Output:
	// >--- (1,1)
	//     <--- (0,0)
	//     |    >--- (0,3)
	//     >--- (3,0)
	//         >--- (2,2)
}
