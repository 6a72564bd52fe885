// Package s2 implements the S² ("shortest shortest path") active
// labeling loop over a core.Graph: query an oracle adaptively, deduce
// cut edges from known labels, and aim every next query at the
// midpoint of the shortest path between opposite labels.
package s2

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlearn/core"
)

// Run discovers the full binary labeling of g by querying oracle once
// per vertex and returns the annotated working graph: every vertex
// labeled, every edge removed iff it was deduced label-discordant.
//
// The caller's graph is never mutated; all work happens on a private
// clone. Queries follow two nested phases:
//
//   - outer ("need new seed"): while unlabeled vertices remain, pick
//     one via Options.Pick over the sorted unlabeled candidates;
//   - inner ("propagate from seed"): query the oracle, record the
//     sample, annotate the clone, strip the newly deduced cut edges,
//     then jump to the midpoint of the shortest discordant path.
//     When no discordant path survives, fall back to the outer phase.
//
// Faults from oracle or pathFn abort the run with the wrapped cause
// and no partial result. With the default options the run is fully
// deterministic; WithSeed/WithPicker control the reseed choice.
// Complexity: O(V) oracle calls; each inner step re-runs cut inference
// and the pairwise path search from scratch.
func Run(g *core.Graph, oracle Oracle, pathFn PathFunc, opts ...Option) (*core.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if oracle == nil {
		return nil, ErrNilOracle
	}
	if pathFn == nil {
		return nil, ErrNilPathFunc
	}
	if g.VertexCount() == 0 {
		return nil, ErrEmptyGraph
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	rng := rngFromSeed(o.Seed)

	work := g.Clone()
	total := work.VertexCount()
	samples := make([]Sample, 0, total)
	queried := make(map[string]bool, total)

	for len(queried) < total {
		target, err := reseed(work, queried, o.Pick, rng)
		if err != nil {
			return nil, err
		}

		// Inner phase: follow midpoints until no discordant path remains.
		for {
			label, err := oracle(target)
			if err != nil {
				return nil, fmt.Errorf("s2: oracle at %q: %w", target, err)
			}
			samples = append(samples, Sample{ID: target, Label: label})
			queried[target] = true
			if err := work.SetLabel(target, label); err != nil {
				return nil, fmt.Errorf("s2: annotate %q: %w", target, err)
			}
			o.OnQuery(target, label)

			cuts, err := CutEdges(work, samples)
			if err != nil {
				return nil, err
			}
			for _, e := range cuts {
				if err := work.RemoveEdge(e.U, e.V); err != nil {
					return nil, fmt.Errorf("s2: remove cut %s–%s: %w", e.U, e.V, err)
				}
				o.OnCut(e)
			}

			path, err := ShortestDiscordantPath(work, samples, pathFn)
			if err != nil {
				return nil, err
			}
			mid, ok := Midpoint(path)
			if !ok {
				break
			}
			// A true shortest discordant path keeps all interior
			// vertices unlabeled; anything else loops forever.
			if queried[mid] {
				return nil, fmt.Errorf("s2: midpoint %q of %v already labeled: %w", mid, path, ErrMalformedPath)
			}
			target = mid
		}
	}

	return work, nil
}

// reseed picks the outer-phase query target among the vertices not
// yet labeled and validates the choice. Candidates arrive sorted
// ascending, so stub pickers index deterministically.
func reseed(work *core.Graph, queried map[string]bool, pick PickFunc, rng *rand.Rand) (string, error) {
	all := work.Vertices()
	candidates := make([]string, 0, len(all)-len(queried))
	for _, id := range all {
		if !queried[id] {
			candidates = append(candidates, id)
		}
	}

	target := pick(candidates, rng)
	if queried[target] || !work.HasVertex(target) {
		return "", fmt.Errorf("s2: pick %q from %d candidates: %w", target, len(candidates), ErrBadPick)
	}
	return target, nil
}
