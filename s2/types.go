// Package s2 provides contracts, tunable options, and error
// definitions for the S² active-labeling loop.
package s2

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/lvlearn/core"
)

// Sentinel errors for S² execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("s2: graph is nil")

	// ErrEmptyGraph is returned when the input graph has no vertices.
	ErrEmptyGraph = errors.New("s2: graph has no vertices")

	// ErrNilOracle is returned if no oracle is supplied.
	ErrNilOracle = errors.New("s2: oracle is nil")

	// ErrNilPathFunc is returned if no shortest-path function is supplied.
	ErrNilPathFunc = errors.New("s2: path function is nil")

	// ErrMalformedPath is returned when the shortest-path collaborator
	// yields a path that breaks the search invariants (wrong endpoints,
	// fewer than two vertices, or a midpoint that was already labeled).
	ErrMalformedPath = errors.New("s2: malformed shortest path")

	// ErrBadPick is returned when a custom picker selects a vertex
	// outside the unlabeled candidate set.
	ErrBadPick = errors.New("s2: picked vertex not an unlabeled candidate")
)

// Oracle reveals the boolean label of a vertex. Each call is assumed
// costly; Run queries every vertex exactly once. A returned error
// aborts the run and propagates to the caller.
type Oracle func(id string) (bool, error)

// PathFunc resolves a minimum-hop path between two vertices of g as an
// ordered vertex sequence, endpoints included.
//
// A nil path with a nil error means "no path exists" — an ordinary
// answer that makes the search skip the pair. A non-nil error is a
// collaborator fault and aborts the run. bfs.ShortestPath satisfies
// this contract.
type PathFunc func(g *core.Graph, from, to string) ([]string, error)

// Sample is one issued query: the vertex and the label the oracle
// returned for it. A slice of Samples preserves issuance order.
type Sample struct {
	ID    string
	Label bool
}

// PickFunc selects the next reseed vertex from the unlabeled
// candidates. The slice is non-empty and sorted ascending by ID; rng
// is the run's deterministic generator. Returning a vertex outside the
// candidate set aborts the run with ErrBadPick.
type PickFunc func(unlabeled []string, rng *rand.Rand) string

// Option configures Run behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize a run.
type Options struct {
	// Seed feeds the reseed RNG; 0 selects the fixed default seed so
	// runs are reproducible unless a caller opts into another stream.
	Seed int64

	// Pick chooses the reseed vertex. Defaults to a uniform draw over
	// the unlabeled candidates.
	Pick PickFunc

	// OnQuery is called after each oracle response has been recorded.
	OnQuery func(id string, label bool)

	// OnCut is called for every edge removed as a deduced cut.
	OnCut func(e core.Edge)
}

// DefaultOptions returns Options with sane defaults:
//   - Seed 0 (fixed default stream)
//   - uniform random reseed pick
//   - no-op hooks (OnQuery, OnCut)
func DefaultOptions() Options {
	return Options{
		Seed: 0,
		Pick: func(unlabeled []string, rng *rand.Rand) string {
			return unlabeled[rng.Intn(len(unlabeled))]
		},
		OnQuery: func(string, bool) {},
		OnCut:   func(core.Edge) {},
	}
}

// WithSeed sets the RNG seed; 0 keeps the fixed default stream.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithPicker replaces the uniform reseed choice, e.g. with a
// deterministic stub for tests.
func WithPicker(fn PickFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Pick = fn
		}
	}
}

// WithOnQuery registers a callback to run after each oracle response.
func WithOnQuery(fn func(id string, label bool)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnQuery = fn
		}
	}
}

// WithOnCut registers a callback to run per removed cut edge.
func WithOnCut(fn func(e core.Edge)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCut = fn
		}
	}
}
