// Package flow implements the Edmonds–Karp maximum-flow algorithm on dense
// capacity matrices from github.com/katalvlaran/maxflow/matrix.
//
// Given an n×n capacity matrix plus source and sink indices, EdmondsKarp
// computes the maximum amount of flow routable from source to sink while
// respecting per-edge capacities and per-node conservation, and reports a
// feasible edge-flow assignment achieving that maximum.
//
//   - Method: breadth-first search for shortest (fewest-edge) augmenting paths.
//
//   - Time:   O(V · E²) worst case with integer capacities — the BFS
//     selection rule bounds augmentations by O(V·E); this is why BFS is
//     mandated here rather than arbitrary path search.
//
//   - Memory: O(V²) for the residual matrix, O(V) for BFS state.
//
// # Residual model
//
// The solver owns a flat n×n residual slice for the duration of one call:
// initialized from the capacity matrix, decremented along each augmenting
// path and incremented on the reverse pairs ("undo" capacity), and discarded
// once no augmenting path remains. Reverse bookkeeping accumulates on top of
// any predefined reverse edge's own capacity; it is never exposed as original
// capacity in the output flow assignment.
//
// # API
//
// The single entry point is:
//
//	func EdmondsKarp(
//	    capacity *matrix.Dense,
//	    source, sink int,
//	    opts ...Option,
//	) (*Result, error)
//
// Result carries the total MaxFlow, a Flow matrix of the capacity's shape
// satisfying conservation and capacity constraints, the number of
// Augmentations performed, and the source side of a minimum cut whose
// capacity equals MaxFlow.
//
// Options follow the functional pattern: WithContext for cancellation,
// WithMaxAugmentations for a hard iteration budget, WithLogger for zerolog
// augmentation tracing, WithOnAugment for per-augmentation observation.
//
// # Determinism
//
// Among equally short augmenting paths, neighbors are enumerated in
// increasing index order. This tie-break is implementation-defined: it fixes
// which feasible flow assignment is returned, never the max-flow value.
//
// # Errors
//
//	ErrNilCapacity      — nil capacity matrix.
//	ErrSourceOutOfRange — source index outside [0, n).
//	ErrSinkOutOfRange   — sink index outside [0, n).
//	ErrSameSourceSink   — source == sink.
//	ErrOptionViolation  — an invalid Option was supplied.
//	ErrAugmentBudget    — the WithMaxAugmentations cutoff was hit.
//	context.Canceled / context.DeadlineExceeded — Ctx canceled mid-solve.
//
// A source disconnected from the sink is NOT an error: the loop terminates
// immediately with MaxFlow == 0, indistinguishable from a saturated network.
package flow
