// Package maxflow computes maximum flows on directed capacitated networks
// represented as dense integer capacity matrices.
//
// 🚀 What is maxflow?
//
//	A small, pure-Go library built from three subpackages:
//		• matrix/  — square int64 capacity & flow matrices with strict validation
//		• flow/    — Edmonds–Karp solver (BFS-selected augmenting paths),
//		             residual bookkeeping, min-cut derivation
//		• builder/ — deterministic network constructors for tests, benchmarks
//		             and experiments (path, diamond, bipartite, grid, random)
//
// ✨ Why Edmonds–Karp?
//
//   - Polynomial worst case — O(V·E²) regardless of capacity magnitudes,
//     unlike unrestricted augmenting-path selection
//   - Deterministic — same capacities, same source/sink ⇒ same max flow,
//     and (with the fixed index-order tie-break) the same flow assignment
//   - Simple residual model — one flat n×n slice, mutated in place,
//     discarded when no augmenting path remains
//
// Quick ASCII example (max flow S→T is 15):
//
//	    S ──10──▶ A ──10──▶ T
//	    │         │         ▲
//	    5        15         │
//	    │         ▼         │
//	    └───────▶ B ───10───┘
//
// The solver is a pure in-memory function: reading capacities from users,
// rendering networks, and printing summaries are downstream consumers of
// flow.Result, not part of this module's contract. See examples/ for a
// runnable demo of that split.
//
//	go get github.com/katalvlaran/maxflow
package maxflow
