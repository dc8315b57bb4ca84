package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying sentinel with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a square, row-major matrix of non-negative int64 values.
// n is the order (number of rows == number of columns) and data holds
// n*n elements in row-major order.
//
// A Dense value is not safe for concurrent mutation; the flow solver
// treats its input capacity matrix as read-only for the whole solve.
type Dense struct {
	n    int     // matrix order
	data []int64 // flat backing storage, length == n*n
}

// NewDense creates an n×n Dense matrix initialized to zeros.
// Returns ErrInvalidDimensions when n <= 0.
// Complexity: O(n²) time and memory.
func NewDense(n int) (*Dense, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{n: n, data: make([]int64, n*n)}, nil
}

// FromRows ingests a row-of-rows capacity table into a Dense matrix.
// Validation, in priority order:
//  1. len(rows) > 0                → ErrInvalidDimensions otherwise
//  2. every row has len(rows) cols → ErrNonSquare otherwise
//  3. every entry is >= 0          → ErrNegativeEntry otherwise
//
// The input slices are copied; the caller keeps ownership of rows.
// Complexity: O(n²) time and memory.
func FromRows(rows [][]int64) (*Dense, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrInvalidDimensions
	}

	m := &Dense{n: n, data: make([]int64, n*n)}
	for u, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("matrix: row %d has %d columns, want %d: %w", u, len(row), n, ErrNonSquare)
		}
		for v, c := range row {
			if c < 0 {
				return nil, fmt.Errorf("matrix: entry (%d,%d)=%d: %w", u, v, c, ErrNegativeEntry)
			}
			m.data[u*n+v] = c
		}
	}

	return m, nil
}

// N returns the order of the matrix.
// Complexity: O(1).
func (m *Dense) N() int {
	return m.n
}

// indexOf computes the flat index for (row, col) or returns an error.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.n {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	if col < 0 || col >= m.n {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return row*m.n + col, nil
}

// At retrieves the entry at (row, col).
// Returns ErrIndexOutOfBounds when either index is outside [0, n).
// Complexity: O(1).
func (m *Dense) At(row, col int) (int64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value c at (row, col).
// Returns ErrIndexOutOfBounds for bad indices and ErrNegativeEntry for c < 0.
// Complexity: O(1).
func (m *Dense) Set(row, col int, c int64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if c < 0 {
		return denseErrorf("Set", row, col, ErrNegativeEntry)
	}
	m.data[idx] = c

	return nil
}

// RowSum returns the sum of row u: the total capacity (or flow) leaving u.
// Complexity: O(n).
func (m *Dense) RowSum(u int) (int64, error) {
	if u < 0 || u >= m.n {
		return 0, denseErrorf("RowSum", u, 0, ErrIndexOutOfBounds)
	}
	var total int64
	for v := 0; v < m.n; v++ {
		total += m.data[u*m.n+v]
	}

	return total, nil
}

// ColSum returns the sum of column v: the total capacity (or flow) entering v.
// Complexity: O(n).
func (m *Dense) ColSum(v int) (int64, error) {
	if v < 0 || v >= m.n {
		return 0, denseErrorf("ColSum", 0, v, ErrIndexOutOfBounds)
	}
	var total int64
	for u := 0; u < m.n; u++ {
		total += m.data[u*m.n+v]
	}

	return total, nil
}

// EachNonZero calls fn for every non-zero entry, in row-major order.
// The matrix must not be mutated during iteration.
// Complexity: O(n²).
func (m *Dense) EachNonZero(fn func(row, col int, c int64)) {
	for u := 0; u < m.n; u++ {
		for v := 0; v < m.n; v++ {
			if c := m.data[u*m.n+v]; c != 0 {
				fn(u, v, c)
			}
		}
	}
}

// Clone returns a deep copy of the matrix.
// Complexity: O(n²) time and memory.
func (m *Dense) Clone() *Dense {
	data := make([]int64, len(m.data))
	copy(data, m.data)

	return &Dense{n: m.n, data: data}
}

// String implements fmt.Stringer for debugging and demo output.
// Complexity: O(n²).
func (m *Dense) String() string {
	var b strings.Builder
	for u := 0; u < m.n; u++ {
		b.WriteByte('[')
		for v := 0; v < m.n; v++ {
			if v > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%d", m.data[u*m.n+v])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
