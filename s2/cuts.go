// File: cuts.go
// Role: Cut inference — edges deducible as label-discordant from
//       already-known labels alone, with no further queries.
// Determinism:
//   - Results enumerate sorted ascending (U, then V), inherited from
//     core edge enumeration.
// Concurrency:
//   - Read-only on the input graph.

package s2

import (
	"fmt"

	"github.com/katalvlaran/lvlearn/core"
)

// CutEdges returns every edge of g both of whose endpoints carry known
// labels that differ. Such edges are exactly the ones a caller may
// remove without consulting the oracle.
//
// Two lookup modes share one scan:
//   - labeled == nil: scan g's own label annotations for the known set.
//   - labeled != nil: the samples are authoritative — their IDs select
//     the vertices, their Label values feed the comparison. An empty
//     non-nil slice therefore means "nothing is known" and yields no
//     cuts. Every referenced vertex must exist in g; a missing one is
//     a wrapped core.ErrVertexNotFound.
//
// Both modes agree whenever g's annotations mirror the samples.
// CutEdges never mutates g; removal belongs to the caller.
// Complexity: O(V + E) for the induced subgraph plus its edge scan.
func CutEdges(g *core.Graph, labeled []Sample) ([]core.Edge, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	labels, err := knownLabels(g, labeled)
	if err != nil {
		return nil, err
	}

	// Restrict the edge scan to the labeled vertices, mirroring an
	// induced-subgraph view over the known set.
	keep := make(map[string]bool, len(labels))
	for id := range labels {
		keep[id] = true
	}
	sub := core.InducedSubgraph(g, keep)

	var cuts []core.Edge
	for _, e := range sub.Edges() {
		if labels[e.U] != labels[e.V] {
			cuts = append(cuts, e)
		}
	}

	return cuts, nil
}

// knownLabels resolves the label lookup for CutEdges: graph
// annotations when labeled is nil, the samples themselves otherwise.
func knownLabels(g *core.Graph, labeled []Sample) (map[string]bool, error) {
	if labeled == nil {
		ids := g.Labeled()
		labels := make(map[string]bool, len(ids))
		for _, id := range ids {
			v, _ := g.Label(id)
			labels[id] = v
		}
		return labels, nil
	}

	labels := make(map[string]bool, len(labeled))
	for _, s := range labeled {
		if !g.HasVertex(s.ID) {
			return nil, fmt.Errorf("s2: labeled vertex %q: %w", s.ID, core.ErrVertexNotFound)
		}
		labels[s.ID] = s.Label
	}
	return labels, nil
}
