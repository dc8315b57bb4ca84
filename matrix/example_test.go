package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/maxflow/matrix"
)

// ExampleFromRows ingests a capacity table and reads totals back out.
func ExampleFromRows() {
	m, _ := matrix.FromRows([][]int64{
		{0, 10, 5},
		{0, 0, 7},
		{0, 0, 0},
	})

	out, _ := m.RowSum(0)
	in, _ := m.ColSum(2)
	fmt.Println("capacity out of 0:", out)
	fmt.Println("capacity into 2:", in)
	// Output:
	// capacity out of 0: 15
	// capacity into 2: 12
}
