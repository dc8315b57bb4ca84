package flow

import (
	"errors"
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/maxflow/matrix"
)

// unvisited marks a vertex not yet reached by the current BFS round.
const unvisited = -1

// EdmondsKarp computes the maximum flow from source to sink in the network
// described by the capacity matrix, using BFS-selected (shortest) augmenting
// paths.
//
// It returns a *Result carrying the total flow, a feasible flow matrix, the
// augmentation count and the source side of a minimum cut. Errors:
//   - ErrNilCapacity, ErrSourceOutOfRange, ErrSinkOutOfRange,
//     ErrSameSourceSink for precondition violations (nothing is computed);
//   - ErrOptionViolation for an invalid Option;
//   - ErrAugmentBudget when WithMaxAugmentations cut the solve short — the
//     partial Result is still returned alongside the error;
//   - the context's error when Options.Ctx is canceled mid-solve.
//
// A source disconnected from the sink is not an error: the first BFS finds
// no path and the call returns MaxFlow == 0.
//
// The capacity matrix is treated as read-only for the whole call; callers in
// concurrent settings must not mutate it until EdmondsKarp returns.
//
// Complexity: O(V · E²) time, O(V²) memory.
func EdmondsKarp(capacity *matrix.Dense, source, sink int, opts ...Option) (*Result, error) {
	// 1) Resolve options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 2) Validate topology preconditions (fail fast, compute nothing)
	if capacity == nil {
		return nil, ErrNilCapacity
	}
	n := capacity.N()
	if source < 0 || source >= n {
		return nil, ErrSourceOutOfRange
	}
	if sink < 0 || sink >= n {
		return nil, ErrSinkOutOfRange
	}
	if source == sink {
		return nil, ErrSameSourceSink
	}

	// 3) Prepare solver state: residual table plus reusable BFS scratch
	s := &solver{
		res:    newResidual(capacity),
		opts:   o,
		source: source,
		sink:   sink,
		parent: make([]int, n),
		bottle: make([]int64, n),
		queue:  make([]int, 0, n),
	}

	// 4) Drive SEARCHING→DONE; ctx and budget errors surface here
	runErr := s.run()
	if runErr != nil && !errors.Is(runErr, ErrAugmentBudget) {
		return nil, runErr
	}

	// 5) Derive outputs from the final residual state
	flowM, err := s.res.flowMatrix(capacity)
	if err != nil {
		return nil, err
	}
	reach := s.res.reachable(source)
	cut := make([]int, 0, n)
	for v, ok := range reach {
		if ok {
			cut = append(cut, v)
		}
	}

	return &Result{
		MaxFlow:       s.total,
		Flow:          flowM,
		Augmentations: s.augs,
		MinCut:        cut,
	}, runErr
}

// solver bundles the mutable state of one Edmonds–Karp invocation.
// parent, bottle and queue are allocated once and reused across BFS rounds.
type solver struct {
	res    *residual
	opts   Options
	source int
	sink   int
	parent []int   // parent[v] = predecessor on the current BFS tree
	bottle []int64 // bottle[v] = bottleneck capacity source→v
	queue  []int   // BFS frontier, reused
	path   []int   // reconstruction buffer for logging/hooks, reused
	total  int64   // accumulated max flow
	augs   int     // augmentations applied
}

// run repeats search+augment until no augmenting path remains (clean DONE),
// the context is canceled, or the augmentation budget is exhausted while
// another path still exists.
func (s *solver) run() error {
	// Path reconstruction is only paid for when someone is listening.
	needPath := s.opts.OnAugment != nil || s.opts.Logger.GetLevel() != zerolog.Disabled

	for {
		// cancellation check before each BFS round
		if err := s.opts.Ctx.Err(); err != nil {
			return err
		}

		found, bottleneck, err := s.search()
		if err != nil {
			return err
		}
		if !found {
			// DONE: saturation and disconnection look identical here
			return nil
		}

		// Budget is a hard cutoff: a further path exists but may not be taken.
		if s.opts.MaxAugmentations > 0 && s.augs >= s.opts.MaxAugmentations {
			return ErrAugmentBudget
		}

		// Bottleneck is ≥ 1 on any BFS-discovered path, so every round makes
		// progress and the loop terminates within O(V·E) augmentations.
		s.res.augment(s.parent, s.source, s.sink, bottleneck)
		s.total += bottleneck
		s.augs++
		if needPath {
			s.observe(bottleneck)
		}
	}
}

// search runs one BFS round over the residual table, following only strictly
// positive entries, and stops the moment the sink is reached (the full BFS
// tree is never needed). It fills s.parent for path reconstruction and
// tracks the running bottleneck per vertex so augmentation needs only one
// re-walk. Neighbors are enumerated in increasing index order; among equally
// short paths this fixes which one is found (implementation-defined).
func (s *solver) search() (found bool, bottleneck int64, err error) {
	for i := range s.parent {
		s.parent[i] = unvisited
	}
	s.queue = s.queue[:0]
	s.parent[s.source] = s.source
	s.bottle[s.source] = math.MaxInt64
	s.queue = append(s.queue, s.source)

	n := s.res.n
	for head := 0; head < len(s.queue); head++ {
		// cancellation check inside the queue loop
		select {
		case <-s.opts.Ctx.Done():
			return false, 0, s.opts.Ctx.Err()
		default:
		}

		u := s.queue[head]
		base := u * n
		for v := 0; v < n; v++ {
			if s.parent[v] != unvisited || s.res.r[base+v] <= 0 {
				continue
			}
			s.parent[v] = u
			s.bottle[v] = minOf(s.bottle[u], s.res.r[base+v])
			if v == s.sink {
				return true, s.bottle[v], nil
			}
			s.queue = append(s.queue, v)
		}
	}

	return false, 0, nil
}

// observe reconstructs the just-augmented path source→…→sink and reports it
// to the logger and the OnAugment hook. The buffer is reused between calls.
func (s *solver) observe(bottleneck int64) {
	s.path = s.path[:0]
	for v := s.sink; v != s.source; v = s.parent[v] {
		s.path = append(s.path, v)
	}
	s.path = append(s.path, s.source)
	for i, j := 0, len(s.path)-1; i < j; i, j = i+1, j-1 {
		s.path[i], s.path[j] = s.path[j], s.path[i]
	}

	s.opts.Logger.Debug().
		Ints("path", s.path).
		Int("edges", len(s.path)-1).
		Int64("bottleneck", bottleneck).
		Int64("total", s.total).
		Msg("augmenting path applied")

	if s.opts.OnAugment != nil {
		s.opts.OnAugment(s.path, bottleneck)
	}
}
