// Package builder constructs capacity matrices for well-known network
// shapes: chains, diamonds, bipartite layers, lattices and seeded random
// graphs. It exists so tests, benchmarks and demos assemble fixtures
// deterministically instead of hand-writing n×n literals.
//
// Conventions shared by every constructor:
//   - the source is always vertex 0;
//   - the sink is always vertex n-1;
//   - same arguments ⇒ identical matrix (stochastic constructors take an
//     explicit seed).
//
// Constructors validate parameters early and return sentinel errors
// (ErrTooFewVertices, ErrInvalidProbability, ErrInvalidCapacity); callers
// MUST branch with errors.Is. No constructor panics.
package builder
