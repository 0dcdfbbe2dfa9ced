// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/pathgrid/gridgraph"
)

// ExampleLayout_Position demonstrates row-major numbering and positions
// on a 3×2 grid with unit spacing.
//
//	0 ─ 1 ─ 2      y =  0
//	│   │   │
//	3 ─ 4 ─ 5      y = -1
func ExampleLayout_Position() {
	l := gridgraph.UnitLayout(3, 2)
	for idx := 0; idx < l.Size(); idx++ {
		c, r := l.Coordinate(idx)
		x, y := l.Position(c, r)
		fmt.Printf("%d:(%g,%g) ", idx, x, y)
	}
	fmt.Println()

	// Output:
	// 0:(0,0) 1:(1,0) 2:(2,0) 3:(0,-1) 4:(1,-1) 5:(2,-1)
}
