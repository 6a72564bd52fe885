// Package lvlearn is an in-memory toolkit for active learning on graphs:
// discover a hidden binary labeling over the vertices of a graph while
// paying for as few label queries as possible.
//
// 🚀 What is lvlearn?
//
//	A small, thread-safe, (almost) zero-dependency library built around the
//	S² ("shortest-shortest-path") query strategy:
//		• Core primitives: label-aware undirected graphs, safely mutable under locks
//		• Traversal: BFS with hooks, depth limits, and hop-count shortest paths
//		• Active learning: the S² loop — query, infer cut edges, bisect the
//		  shortest path between disagreeing vertices, repeat
//
// ✨ Why choose lvlearn?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – R/W locks, in-code docs & hooks
//   - Deterministic – seeded randomness, sorted enumeration, reproducible runs
//   - Extensible – inject your own oracle, shortest-path function, and hooks
//
// Under the hood, everything is organized under three subpackages:
//
//	core/ — label-aware Graph & Edge types and thread-safe primitives
//	bfs/  — breadth-first traversal and the canonical ShortestPath provider
//	s2/   — the S² active query loop, cut inference, and midpoint selection
//
// Quick ASCII example:
//
//	    A───B───C        query A:true, C:false → bisect at B →
//	                      the A/C boundary is pinned with 3 queries.
//
// Dive into the per-package docs for contracts, complexity notes, and
// runnable examples.
//
//	go get github.com/katalvlaran/lvlearn
package lvlearn
