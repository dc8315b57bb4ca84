// Package flow: tunable options, sentinel errors and the Result type
// for the Edmonds–Karp solver.
package flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/maxflow/matrix"
)

// Sentinel errors for solver invocation. Match with errors.Is.
var (
	// ErrNilCapacity is returned when a nil capacity matrix is passed.
	ErrNilCapacity = errors.New("flow: capacity matrix is nil")

	// ErrSourceOutOfRange is returned when source is outside [0, n).
	ErrSourceOutOfRange = errors.New("flow: source index out of range")

	// ErrSinkOutOfRange is returned when sink is outside [0, n).
	ErrSinkOutOfRange = errors.New("flow: sink index out of range")

	// ErrSameSourceSink is returned when source == sink.
	ErrSameSourceSink = errors.New("flow: source and sink must differ")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("flow: invalid option supplied")

	// ErrAugmentBudget is returned when the WithMaxAugmentations cutoff is
	// reached before the network is saturated. The Result accompanying it
	// carries the partial flow accumulated so far; it is a hard cutoff,
	// not a resumable pause.
	ErrAugmentBudget = errors.New("flow: augmentation budget exhausted")
)

// Option configures solver behavior via functional arguments.
// An invalid Option (e.g. negative budget) is recorded internally and
// surfaced as ErrOptionViolation when EdmondsKarp is invoked.
type Option func(*Options)

// Options holds parameters and callbacks customizing one solver run.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked once per BFS round
	// and inside the BFS queue loop.
	Ctx context.Context

	// Logger receives one debug event per augmentation (path edge count,
	// bottleneck, running total). Defaults to zerolog.Nop().
	Logger zerolog.Logger

	// MaxAugmentations, if > 0, aborts the solve with ErrAugmentBudget
	// after that many augmentations. 0 disables the budget.
	MaxAugmentations int

	// OnAugment is called after each augmentation is applied, with the
	// vertex path source→…→sink and the bottleneck pushed along it.
	// The path slice is reused across calls; copy it to retain it.
	OnAugment func(path []int, bottleneck int64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no-op logger
//   - no augmentation budget
//   - no observation hook.
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		Logger:           zerolog.Nop(),
		MaxAugmentations: 0,
		OnAugment:        nil,
		err:              nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes augmentation tracing to the given zerolog.Logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithMaxAugmentations caps the number of augmentations.
//
//	k > 0:  abort with ErrAugmentBudget after k augmentations
//	k == 0: explicit "no budget"
//	k < 0:  invalid option → ErrOptionViolation
func WithMaxAugmentations(k int) Option {
	return func(o *Options) {
		switch {
		case k < 0:
			o.err = fmt.Errorf("%w: MaxAugmentations cannot be negative (%d)", ErrOptionViolation, k)
		default:
			o.MaxAugmentations = k
		}
	}
}

// WithOnAugment registers a callback invoked after each augmentation.
func WithOnAugment(fn func(path []int, bottleneck int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAugment = fn
		}
	}
}

// Result holds the outcome of one max-flow computation.
type Result struct {
	// MaxFlow is the total flow value routed from source to sink.
	MaxFlow int64

	// Flow assigns flow(u,v) = capacity(u,v) - residual(u,v) (floored at
	// zero) for every originally-capacitated pair; every other entry is
	// zero. It satisfies conservation at all vertices except source and
	// sink, and 0 ≤ flow(u,v) ≤ capacity(u,v) everywhere.
	Flow *matrix.Dense

	// Augmentations is the number of augmenting paths applied.
	Augmentations int

	// MinCut lists, in increasing order, the vertices still reachable
	// from the source in the final residual matrix. Together with its
	// complement it forms an s–t cut whose crossing capacity equals
	// MaxFlow (max-flow/min-cut theorem).
	MinCut []int
}

// FlowOutOf returns the total flow leaving vertex u.
// For u == source this equals MaxFlow on a valid Result.
func (r *Result) FlowOutOf(u int) (int64, error) {
	return r.Flow.RowSum(u)
}

// FlowInto returns the total flow entering vertex v.
// For v == sink this equals MaxFlow on a valid Result.
func (r *Result) FlowInto(v int) (int64, error) {
	return r.Flow.ColSum(v)
}
