// Package matrix: sentinel error set.
// All algorithms MUST return these sentinels and tests MUST check them via
// errors.Is. If context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still match with errors.Is.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that a requested order is non-positive.
	ErrInvalidDimensions = errors.New("matrix: order must be > 0")

	// ErrNonSquare indicates that ingested rows do not form an n×n shape.
	ErrNonSquare = errors.New("matrix: rows are not square")

	// ErrIndexOutOfBounds indicates a row or column index outside [0, n).
	// Public indexers (At/Set) MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNegativeEntry indicates a negative capacity or flow value.
	// Capacities are non-negative by contract; negativity is rejected at
	// ingestion (FromRows) and at mutation (Set).
	ErrNegativeEntry = errors.New("matrix: negative entry")
)
