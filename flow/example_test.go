package flow_test

import (
	"fmt"

	"github.com/katalvlaran/maxflow/builder"
	"github.com/katalvlaran/maxflow/flow"
	"github.com/katalvlaran/maxflow/matrix"
)

// ExampleEdmondsKarp demonstrates max flow on a single-edge network:
// 0→1 with capacity 7.
func ExampleEdmondsKarp() {
	capacity, _ := matrix.FromRows([][]int64{
		{0, 7},
		{0, 0},
	})

	res, _ := flow.EdmondsKarp(capacity, 0, 1)
	fmt.Println(res.MaxFlow)
	// Output:
	// 7
}

// ExampleEdmondsKarp_supplyNetwork solves the four-vertex supply network
// S=0, A=1, B=2, T=3 and inspects the flow assignment.
//
//	S→A=10, S→B=5, A→B=15, A→T=10, B→T=10 ⇒ max flow 15
func ExampleEdmondsKarp_supplyNetwork() {
	capacity, _ := matrix.FromRows([][]int64{
		{0, 10, 5, 0},
		{0, 0, 15, 10},
		{0, 0, 0, 10},
		{0, 0, 0, 0},
	})

	res, _ := flow.EdmondsKarp(capacity, 0, 3)
	fmt.Println("max flow:", res.MaxFlow)

	aToT, _ := res.Flow.At(1, 3)
	bToT, _ := res.Flow.At(2, 3)
	fmt.Println("A→T:", aToT)
	fmt.Println("B→T:", bToT)
	// Output:
	// max flow: 15
	// A→T: 10
	// B→T: 5
}

// ExampleEdmondsKarp_minCut shows the cut certificate on a diamond network:
// with unit capacities everywhere, only the source survives saturation.
func ExampleEdmondsKarp_minCut() {
	capacity, _ := builder.Diamond(1)

	res, _ := flow.EdmondsKarp(capacity, 0, 3)
	fmt.Println("max flow:", res.MaxFlow)
	fmt.Println("source side:", res.MinCut)
	// Output:
	// max flow: 2
	// source side: [0]
}

// ExampleWithOnAugment observes each augmentation as it is applied.
func ExampleWithOnAugment() {
	capacity, _ := matrix.FromRows([][]int64{
		{0, 10, 5, 0},
		{0, 0, 15, 10},
		{0, 0, 0, 10},
		{0, 0, 0, 0},
	})

	hook := func(path []int, bottleneck int64) {
		fmt.Println(path, bottleneck)
	}
	res, _ := flow.EdmondsKarp(capacity, 0, 3, flow.WithOnAugment(hook))
	fmt.Println("total:", res.MaxFlow)
	// Output:
	// [0 1 3] 10
	// [0 2 3] 5
	// total: 15
}
