// File: view.go
// Role: Non-mutating graph views.
// Determinism:
//   - Kept labels and topology carry over verbatim; enumeration rules
//     of the result follow the usual core contracts.
// Concurrency:
//   - Read lock on source; result is a fresh graph instance.

package core

// InducedSubgraph returns a new Graph induced by the set "keep" of
// vertex IDs: the result contains only vertices v where keep[v] is
// true, every edge whose endpoints are both kept, and the labels of
// the kept vertices. The input graph is not mutated.
// Complexity: O(V + E)
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph()
	for id := range g.vertices {
		if !keep[id] {
			continue
		}
		out.vertices[id] = struct{}{}
		out.adjacency[id] = make(map[string]struct{})
		if label, ok := g.labels[id]; ok {
			out.labels[id] = label
		}
	}
	for u := range out.vertices {
		for v := range g.adjacency[u] {
			if !keep[v] {
				continue
			}
			out.adjacency[u][v] = struct{}{}
			if u < v { // count each unordered pair once
				out.edgeCount++
			}
		}
	}

	return out
}
