// File: shortest.go
// Role: Hop-count shortest-path lookup between two vertices.
// Determinism:
//   - Built on BFS over sorted neighbor enumeration; for a fixed graph
//     the returned path is always the same.
// Concurrency:
//   - Read-only; safe for concurrent use on a stable graph.

package bfs

import (
	"fmt"

	"github.com/katalvlaran/lvlearn/core"
)

// ShortestPath returns a minimum-hop path from one vertex to another
// as an ordered slice of vertex IDs, endpoints included.
//
// When to is unreachable from from, ShortestPath returns (nil, nil):
// a missing path is an ordinary answer, not a failure. Real faults do
// error: ErrGraphNil for a nil graph, ErrStartVertexNotFound for a
// missing from, and a wrapped core.ErrVertexNotFound for a missing to.
//
// ShortestPath is a plain function value and can be handed directly
// to any caller expecting a path provider.
// Complexity: O(V + E) per call.
func ShortestPath(g *core.Graph, from, to string) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(to) {
		return nil, fmt.Errorf("bfs: target vertex %q: %w", to, core.ErrVertexNotFound)
	}

	res, err := BFS(g, from)
	if err != nil {
		return nil, err
	}

	// Depth records reachable vertices only.
	if _, ok := res.Depth[to]; !ok {
		return nil, nil
	}

	return res.PathTo(to)
}
