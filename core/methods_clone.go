// File: methods_clone.go
// Role: Deep copies of graph instances.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of the Graph: vertices, edges, and labels.
// The clone shares no storage with the source, so mutating one never
// disturbs the other.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph()
	for id := range g.vertices {
		clone.vertices[id] = struct{}{}
		nbrs := make(map[string]struct{}, len(g.adjacency[id]))
		for v := range g.adjacency[id] {
			nbrs[v] = struct{}{}
		}
		clone.adjacency[id] = nbrs
	}
	for id, label := range g.labels {
		clone.labels[id] = label
	}
	clone.edgeCount = g.edgeCount

	return clone
}
