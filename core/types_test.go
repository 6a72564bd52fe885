// SPDX-License-Identifier: MIT
// Package core_test verifies core type contracts: Edge canonical form
// and the zero state of a freshly constructed Graph.
package core_test

import (
	"testing"

	"github.com/katalvlaran/lvlearn/core"
)

// TestNewEdge_CanonicalForm locks in the unordered-pair contract:
// NewEdge normalizes endpoints so U <= V never holds false, and equal
// pairs compare equal regardless of argument order.
func TestNewEdge_CanonicalForm(t *testing.T) {
	e1 := core.NewEdge(VertexB, VertexA)
	MustEqualString(t, e1.U, VertexA, "NewEdge(B,A).U")
	MustEqualString(t, e1.V, VertexB, "NewEdge(B,A).V")

	e2 := core.NewEdge(VertexA, VertexB)
	MustTrue(t, e1 == e2, "NewEdge(B,A) == NewEdge(A,B)")

	// Canonical edges are usable as map keys across orientations.
	seen := map[core.Edge]bool{e1: true}
	MustTrue(t, seen[core.NewEdge(VertexA, VertexB)], "map lookup via mirrored NewEdge")
}

// TestNewGraph_ZeroState locks in that a fresh graph is empty but
// immediately usable (no nil-map panics on first mutation).
func TestNewGraph_ZeroState(t *testing.T) {
	g := core.NewGraph()

	MustEqualInt(t, g.VertexCount(), 0, "VertexCount on new graph")
	MustEqualInt(t, g.EdgeCount(), 0, "EdgeCount on new graph")
	MustEqualInt(t, g.LabeledCount(), 0, "LabeledCount on new graph")
	MustEqualInt(t, len(g.Vertices()), 0, "len(Vertices()) on new graph")
	MustEqualInt(t, len(g.Edges()), 0, "len(Edges()) on new graph")
	MustEqualInt(t, len(g.Labeled()), 0, "len(Labeled()) on new graph")

	MustNoError(t, g.AddEdge(VertexA, VertexB), "AddEdge(A,B) on new graph")
	MustNoError(t, g.SetLabel(VertexA, true), "SetLabel(A,true) on new graph")
}
