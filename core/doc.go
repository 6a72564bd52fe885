// Package core provides a thread-safe in-memory Graph for label-aware
// undirected simple graphs, with a minimal, composable API surface.
//
// The Graph G = (V, E) is deliberately plain:
//
//   - Undirected edges only, stored as mirrored adjacency:
//     adjacency[u][v] exists iff adjacency[v][u] exists
//   - No weights, no parallel edges, no self-loops — an edge is an
//     unordered pair of distinct vertex IDs (canonical U < V)
//   - At most one boolean label per vertex, write-once (SetLabel)
//   - One sync.RWMutex guarding vertices, adjacency, and labels as a
//     single coherent structure
//
// Why use core.Graph?
//
//   - Deterministic iteration — Vertices(), Edges(), Neighbors(), and
//     Labeled() all return sorted results.
//   - Clone support — deep copies carry topology and labels, never
//     shared storage.
//   - View support — InducedSubgraph restricts a graph to a vertex
//     subset without touching the source.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error             // O(1), idempotent
//	HasVertex(id string) bool              // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v string) error             // O(1), auto-creates endpoints
//	RemoveEdge(u, v string) error          // O(1)
//	HasEdge(u, v string) bool              // O(1)
//
//	// Labels (write-once)
//	SetLabel(id string, label bool) error  // O(1)
//	Label(id string) (bool, bool)          // O(1)
//	HasLabel(id string) bool               // O(1)
//
//	// Query
//	Vertices() []string                    // O(V log V), sorted
//	Edges() []Edge                         // O(E log E), sorted by (U,V)
//	Neighbors(id string) ([]string, error) // O(d log d), sorted
//	Labeled() []string                     // O(L log L), sorted
//	Degree(id string) (int, error)         // O(1)
//	VertexCount() int                      // O(1)
//	EdgeCount() int                        // O(1)
//	LabeledCount() int                     // O(1)
//
//	// Cloning & views
//	Clone() *Graph                                          // O(V+E)
//	InducedSubgraph(g *Graph, keep map[string]bool) *Graph  // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex ID
//	ErrVertexNotFound – missing vertex
//	ErrEdgeNotFound   – missing edge
//	ErrLoopNotAllowed – self-loop attempted
//	ErrLabelConflict  – overwrite of a set label with a different value
package core
