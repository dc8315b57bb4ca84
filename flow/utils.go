package flow

import "golang.org/x/exp/constraints"

// minOf returns the smaller of two ordered values.
func minOf[T constraints.Ordered](x, y T) T {
	if y < x {
		return y
	}

	return x
}
