package builder_test

import (
	"fmt"

	"github.com/katalvlaran/maxflow/builder"
)

// ExamplePath renders the capacity matrix of a 3-vertex chain.
func ExamplePath() {
	m, _ := builder.Path(3, 4)
	fmt.Print(m)
	// Output:
	// [0, 4, 0]
	// [0, 0, 4]
	// [0, 0, 0]
}

// ExampleDiamond renders the unit diamond used in many solver tests.
func ExampleDiamond() {
	m, _ := builder.Diamond(1)
	fmt.Print(m)
	// Output:
	// [0, 1, 1, 0]
	// [0, 0, 0, 1]
	// [0, 0, 0, 1]
	// [0, 0, 0, 0]
}
