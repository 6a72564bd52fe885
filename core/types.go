// Package core defines the Graph and Edge types for label-aware
// undirected simple graphs, and provides thread-safe primitives for
// building, querying, labeling, and cloning them.
//
// This file declares Edge, Graph, sentinel errors, and the NewGraph
// constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that an operation received an empty vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted; simple graphs carry none.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrLabelConflict indicates an attempt to change an already-set vertex label.
	// Labels are write-once: the first SetLabel pins the value for good.
	ErrLabelConflict = errors.New("core: label conflict")
)

// Edge is an unordered pair of distinct vertex IDs in canonical
// orientation: U < V lexicographically. Two Edge values are equal
// exactly when they denote the same undirected edge, so Edge works as
// a map key and in direct == comparisons.
type Edge struct {
	// U is the lexicographically smaller endpoint.
	U string

	// V is the lexicographically larger endpoint.
	V string
}

// NewEdge returns the unordered pair {u, v} in canonical orientation.
func NewEdge(u, v string) Edge {
	if v < u {
		u, v = v, u
	}

	return Edge{U: u, V: v}
}

// Graph is a label-aware undirected simple graph: no edge weights, no
// parallel edges, no self-loops, no direction. Each vertex may carry
// at most one boolean label, set once (see SetLabel).
//
// All methods are safe for concurrent use; mu guards the catalogs as
// one coherent structure.
type Graph struct {
	mu sync.RWMutex

	// vertices is the vertex catalog.
	vertices map[string]struct{}

	// adjacency mirrors every edge in both directions:
	// adjacency[u][v] exists iff adjacency[v][u] exists iff {u,v} ∈ E.
	adjacency map[string]map[string]struct{}

	// labels holds the boolean label of each labeled vertex;
	// unlabeled vertices are absent from the map.
	labels map[string]bool

	// edgeCount tracks |E| so EdgeCount stays O(1).
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string]map[string]struct{}),
		labels:    make(map[string]bool),
	}
}
