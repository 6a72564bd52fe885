// File: methods_edges.go
// Role: Edge lifecycle & queries over the mirrored adjacency.
// Determinism:
//   - Edges() returns canonical pairs sorted by (U, V) ascending.
//   - Neighbors() returns unique IDs sorted lexicographically ascending.
// Concurrency:
//   - All catalogs guarded by the single graph mutex.

package core

import "sort"

// AddEdge inserts the undirected edge {u, v}, creating missing
// endpoints on the fly. Adding an existing edge is a no-op.
// Returns ErrEmptyVertexID for empty endpoints and ErrLoopNotAllowed
// when u == v.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(u)
	g.addVertexLocked(v)

	if _, dup := g.adjacency[u][v]; dup {
		return nil // simple graphs hold one edge per pair
	}
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
	g.edgeCount++

	return nil
}

// HasEdge reports whether the edge {u, v} exists.
// Complexity: O(1)
func (g *Graph) HasEdge(u, v string) bool {
	if u == "" || v == "" {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[u][v]

	return ok
}

// RemoveEdge deletes the edge {u, v} from both adjacency mirrors.
// The endpoints stay in the graph. Returns ErrEmptyVertexID for empty
// endpoints and ErrEdgeNotFound if the edge does not exist.
// Complexity: O(1)
func (g *Graph) RemoveEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[u][v]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.adjacency[u], v)
	delete(g.adjacency[v], u)
	g.edgeCount--

	return nil
}

// Edges returns every edge as a canonical pair, sorted by (U, V)
// ascending.
// Complexity: O(E log E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for u, nbrs := range g.adjacency {
		for v := range nbrs {
			if u < v { // count each mirrored pair once
				out = append(out, Edge{U: u, V: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}

		return out[i].V < out[j].V
	})

	return out
}

// EdgeCount returns the current number of edges.
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Neighbors returns the vertex IDs adjacent to id, sorted
// lexicographically ascending.
// Returns ErrEmptyVertexID / ErrVertexNotFound on invalid input.
// Complexity: O(d log d) where d is the degree of id.
func (g *Graph) Neighbors(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]string, 0, len(g.adjacency[id]))
	for v := range g.adjacency[id] {
		out = append(out, v)
	}
	sort.Strings(out)

	return out, nil
}

// Degree returns the number of edges incident to id.
// Returns ErrEmptyVertexID / ErrVertexNotFound on invalid input.
// Complexity: O(1)
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	return len(g.adjacency[id]), nil
}
