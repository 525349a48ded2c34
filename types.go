package pcst

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Solve and SolveGraph.
var (
	// ErrInvalidInput indicates the caller-supplied edges, prizes, costs,
	// or Options failed validation before any solving began.
	ErrInvalidInput = errors.New("pcst: invalid input")

	// ErrInternal indicates an invariant check tripped during solving —
	// it should never occur on well-formed input.
	ErrInternal = errors.New("pcst: internal invariant violated")
)

// InputError wraps ErrInvalidInput with a human-readable reason.
type InputError struct{ Reason string }

func (e *InputError) Error() string { return fmt.Sprintf("%v: %s", ErrInvalidInput, e.Reason) }
func (e *InputError) Unwrap() error { return ErrInvalidInput }

// InternalError wraps ErrInternal with the invariant that tripped.
type InternalError struct{ Reason string }

func (e *InternalError) Error() string { return fmt.Sprintf("%v: %s", ErrInternal, e.Reason) }
func (e *InternalError) Unwrap() error { return ErrInternal }

// Edge is one undirected input edge. U and V are vertex ids in 0..n-1 and
// must differ; the edge's position in the slice passed to Solve is its id,
// referenced by Result.Edges.
type Edge struct {
	U, V int
}

// Result is a PCST/PCSF solution: the vertices and edge indices (into the
// input edge slice) the solver decided to keep, both sorted ascending with
// no duplicates.
type Result struct {
	Vertices []int
	Edges    []int
}

// Pruning selects the post-processing policy applied to the grown moat
// forest before it is returned as a Result.
type Pruning int

const (
	// PruningNone returns the spanning forest exactly as grown, with no
	// leaf or branch removal.
	PruningNone Pruning = iota

	// PruningSimple repeatedly drops zero-prize leaves.
	PruningSimple

	// PruningGW applies the Goemans-Williamson reverse-delete pass,
	// processing deactivated clusters in reverse deactivation order.
	PruningGW

	// PruningStrong removes any edge whose severed subtree's prize does
	// not cover its cost, iterated to a fixed point.
	PruningStrong
)

// String renders p the way it is spelled in config files and CLI flags.
func (p Pruning) String() string {
	switch p {
	case PruningNone:
		return "none"
	case PruningSimple:
		return "simple"
	case PruningGW:
		return "gw"
	case PruningStrong:
		return "strong"
	default:
		return fmt.Sprintf("Pruning(%d)", int(p))
	}
}

// ParsePruning parses one of "none", "simple", "gw", "strong" into a
// Pruning value.
func ParsePruning(s string) (Pruning, error) {
	switch s {
	case "none":
		return PruningNone, nil
	case "simple":
		return PruningSimple, nil
	case "gw":
		return PruningGW, nil
	case "strong":
		return PruningStrong, nil
	default:
		return 0, &InputError{Reason: fmt.Sprintf("unknown pruning policy %q", s)}
	}
}

// Options configures a Solve call, following the functional-options
// pattern used throughout this module's algorithm packages.
type Options struct {
	// Root is the vertex every returned component must connect to, or -1
	// for an unrooted solve. If Root >= 0, NumClusters must be 1.
	Root int

	// NumClusters is the number of connected components the pruned
	// result may contain. Must be 1 when Root >= 0; Solve rejects any
	// other value with an *InputError.
	NumClusters int

	// Pruning selects the post-growth pruning policy.
	Pruning Pruning

	// Verbosity controls how much detail Sink receives: 0 silent, 1
	// phase summaries, >=2 per-event traces.
	Verbosity int

	// Sink receives verbosity output, if non-nil. Never invoked at
	// Verbosity 0.
	Sink func(level int, msg string)
}

// Option mutates an Options value under construction.
type Option func(*Options)

// DefaultOptions returns the Options Solve uses when no Option overrides
// them: unrooted, one cluster, strong pruning, silent.
func DefaultOptions() Options {
	return Options{
		Root:        -1,
		NumClusters: 1,
		Pruning:     PruningStrong,
		Verbosity:   0,
		Sink:        nil,
	}
}

// WithRoot requires the solution to be a single tree containing root.
func WithRoot(root int) Option {
	return func(o *Options) {
		o.Root = root
		o.NumClusters = 1
	}
}

// WithNumClusters bounds the number of connected components in an unrooted
// solve. WithRoot resets NumClusters to 1, so a WithNumClusters applied
// before it has no effect; applied after it, any value other than 1 makes
// Solve reject the options (rooted solves are always exactly one cluster).
func WithNumClusters(n int) Option {
	return func(o *Options) {
		o.NumClusters = n
	}
}

// WithPruning selects the post-growth pruning policy.
func WithPruning(p Pruning) Option {
	return func(o *Options) {
		o.Pruning = p
	}
}

// WithVerbosity sets the verbosity level passed to Sink.
func WithVerbosity(v int) Option {
	return func(o *Options) {
		o.Verbosity = v
	}
}

// WithSink installs the callback that receives verbosity output.
func WithSink(sink func(level int, msg string)) Option {
	return func(o *Options) {
		o.Sink = sink
	}
}

func (o *Options) log(level int, format string, args ...interface{}) {
	if o.Sink == nil || level > o.Verbosity {
		return
	}
	o.Sink(level, fmt.Sprintf(format, args...))
}
