package flow

import "github.com/katalvlaran/maxflow/matrix"

// residual is the solver-owned spare-capacity table: a flat n×n mirror of
// the input capacities, mutated in place on every augmentation and discarded
// once no augmenting path remains. Invariant at all times, for every ordered
// pair (u,v):
//
//	r[u][v] = capacity(u,v) - flow(u,v) + flow(v,u)
//
// so undo capacity created by forward flow accumulates on top of whatever
// capacity a predefined reverse edge carries. Exactly one solve owns a
// residual; no concurrent readers or writers are permitted.
type residual struct {
	n int     // vertex count
	r []int64 // flat row-major spare capacities, length n*n
}

// newResidual initializes the residual table from the capacity matrix:
// r[u][v] = capacity(u,v) for every defined edge, zero elsewhere.
// Complexity: O(n²) memory, O(E) fill.
func newResidual(capacity *matrix.Dense) *residual {
	n := capacity.N()
	res := &residual{n: n, r: make([]int64, n*n)}
	capacity.EachNonZero(func(u, v int, c int64) {
		res.r[u*n+v] = c
	})

	return res
}

// augment applies a path flow f along the parent chain sink→source:
// forward entries lose f, reverse entries gain f. The caller guarantees
// f is the path bottleneck, so no entry goes negative.
// Complexity: O(path length).
func (res *residual) augment(parent []int, source, sink int, f int64) {
	for v := sink; v != source; v = parent[v] {
		u := parent[v]
		res.r[u*res.n+v] -= f
		res.r[v*res.n+u] += f
	}
}

// reachable returns the set of vertices reachable from source through
// strictly positive residual entries. On a finished solve this is the
// source side of a minimum cut.
// Complexity: O(n²).
func (res *residual) reachable(source int) []bool {
	seen := make([]bool, res.n)
	queue := make([]int, 0, res.n)
	seen[source] = true
	queue = append(queue, source)
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		base := u * res.n
		for v := 0; v < res.n; v++ {
			if !seen[v] && res.r[base+v] > 0 {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	return seen
}

// flowMatrix derives the final flow assignment from the residual state:
// flow(u,v) = capacity(u,v) - r[u][v] for every originally-capacitated pair,
// floored at zero so that undo bookkeeping on a pair with capacities in both
// directions never surfaces as negative flow. Pairs without original
// capacity stay zero — reverse residual entries are bookkeeping, not edges.
// Complexity: O(n²).
func (res *residual) flowMatrix(capacity *matrix.Dense) (*matrix.Dense, error) {
	out, err := matrix.NewDense(res.n)
	if err != nil {
		return nil, err
	}
	var setErr error
	capacity.EachNonZero(func(u, v int, c int64) {
		f := c - res.r[u*res.n+v]
		if f < 0 {
			f = 0
		}
		if err := out.Set(u, v, f); err != nil && setErr == nil {
			setErr = err
		}
	})
	if setErr != nil {
		return nil, setErr
	}

	return out, nil
}
