package builder

import (
	"math/rand"

	"github.com/katalvlaran/maxflow/matrix"
)

// mustSet writes an entry that is guaranteed in-bounds and non-negative by
// construction; a failure here is a programmer error in this package.
func mustSet(m *matrix.Dense, u, v int, c int64) {
	if err := m.Set(u, v, c); err != nil {
		panic("builder: internal set failed: " + err.Error())
	}
}

// Path builds a chain 0→1→…→n-1 with uniform capacity c on every link.
// Max flow from 0 to n-1 is exactly c.
// Errors: ErrTooFewVertices (n < 2), ErrInvalidCapacity (c < 1).
func Path(n int, c int64) (*matrix.Dense, error) {
	if n < 2 {
		return nil, ErrTooFewVertices
	}
	if c < 1 {
		return nil, ErrInvalidCapacity
	}
	m, err := matrix.NewDense(n)
	if err != nil {
		return nil, err
	}
	for u := 0; u < n-1; u++ {
		mustSet(m, u, u+1, c)
	}

	return m, nil
}

// Diamond builds the 4-vertex diamond 0→{1,2}→3 with uniform capacity c on
// all four edges. Max flow from 0 to 3 is 2·c.
// Errors: ErrInvalidCapacity (c < 1).
func Diamond(c int64) (*matrix.Dense, error) {
	if c < 1 {
		return nil, ErrInvalidCapacity
	}
	m, err := matrix.NewDense(4)
	if err != nil {
		return nil, err
	}
	mustSet(m, 0, 1, c)
	mustSet(m, 0, 2, c)
	mustSet(m, 1, 3, c)
	mustSet(m, 2, 3, c)

	return m, nil
}

// Bipartite builds a layered network: source 0, a left partition of `left`
// vertices, a right partition of `right` vertices, sink left+right+1.
// Source feeds every left vertex, every left vertex feeds every right
// vertex, every right vertex feeds the sink, all with uniform capacity c.
// Max flow is min(left, right)·c.
// Errors: ErrTooFewVertices (left < 1 or right < 1), ErrInvalidCapacity (c < 1).
func Bipartite(left, right int, c int64) (*matrix.Dense, error) {
	if left < 1 || right < 1 {
		return nil, ErrTooFewVertices
	}
	if c < 1 {
		return nil, ErrInvalidCapacity
	}
	n := left + right + 2
	m, err := matrix.NewDense(n)
	if err != nil {
		return nil, err
	}
	sink := n - 1
	for l := 1; l <= left; l++ {
		mustSet(m, 0, l, c)
		for r := left + 1; r <= left+right; r++ {
			mustSet(m, l, r, c)
		}
	}
	for r := left + 1; r <= left+right; r++ {
		mustSet(m, r, sink, c)
	}

	return m, nil
}

// Grid builds a rows×cols lattice with right and down edges of uniform
// capacity c. Vertex (r, col) has index r*cols+col; the source is the
// top-left corner (index 0) and the sink the bottom-right (index n-1).
// Errors: ErrTooFewVertices (rows < 1, cols < 1, or a single vertex),
// ErrInvalidCapacity (c < 1).
func Grid(rows, cols int, c int64) (*matrix.Dense, error) {
	if rows < 1 || cols < 1 || rows*cols < 2 {
		return nil, ErrTooFewVertices
	}
	if c < 1 {
		return nil, ErrInvalidCapacity
	}
	m, err := matrix.NewDense(rows * cols)
	if err != nil {
		return nil, err
	}
	for r := 0; r < rows; r++ {
		for col := 0; col < cols; col++ {
			u := r*cols + col
			if col+1 < cols {
				mustSet(m, u, u+1, c)
			}
			if r+1 < rows {
				mustSet(m, u, u+cols, c)
			}
		}
	}

	return m, nil
}

// RandomSparse builds an n-vertex network where each ordered pair u→v
// (u ≠ v) carries an edge with probability p and a capacity drawn uniformly
// from [1, maxCap]. The seed fixes the RNG, so equal arguments always yield
// the same matrix.
// Errors: ErrTooFewVertices (n < 2), ErrInvalidProbability (p outside [0,1]),
// ErrInvalidCapacity (maxCap < 1).
func RandomSparse(n int, p float64, maxCap int64, seed int64) (*matrix.Dense, error) {
	if n < 2 {
		return nil, ErrTooFewVertices
	}
	if p < 0 || p > 1 {
		return nil, ErrInvalidProbability
	}
	if maxCap < 1 {
		return nil, ErrInvalidCapacity
	}
	m, err := matrix.NewDense(n)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v {
				continue
			}
			if rng.Float64() < p {
				mustSet(m, u, v, rng.Int63n(maxCap)+1)
			}
		}
	}

	return m, nil
}
