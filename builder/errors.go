package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, left,
// right) is smaller than the minimum the requested shape needs.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed
// interval [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrInvalidCapacity indicates a non-positive edge capacity parameter.
// Zero-capacity shapes are never useful as fixtures, so the minimum is 1.
var ErrInvalidCapacity = errors.New("builder: capacity must be >= 1")
