// File: path.go
// Role: Shortest-discordant-path search and midpoint selection — the
//       query-target heuristic at the heart of S².
// Determinism:
//   - Pairs enumerate in issuance order (i<j over the sample slice);
//     strict less-than keeps the first-encountered minimum, so for a
//     fixed sample order and path provider the winner never varies.
// Concurrency:
//   - Read-only; the path provider receives the graph as-is.

package s2

import (
	"fmt"

	"github.com/katalvlaran/lvlearn/core"
)

// ShortestDiscordantPath finds the shortest path (by vertex count)
// connecting any two oppositely-labeled samples, probing every
// discordant pair with pathFn and keeping the minimum.
//
// Pairs for which pathFn answers "no path" ((nil, nil)) are skipped;
// a pathFn error aborts the search. The zero outcome — no discordant
// pair exists, or every pair skipped — is (nil, nil): absence of a
// candidate, not a failure.
//
// Search invariants on any returned path are enforced fail-fast: at
// least two vertices, starting and ending at the probed endpoints
// (ErrMalformedPath otherwise).
// Complexity: O(|labeled|²) pathFn invocations per call; no state is
// cached between calls.
func ShortestDiscordantPath(g *core.Graph, labeled []Sample, pathFn PathFunc) ([]string, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if pathFn == nil {
		return nil, ErrNilPathFunc
	}

	var best []string
	for i := 0; i < len(labeled); i++ {
		for j := i + 1; j < len(labeled); j++ {
			if labeled[i].Label == labeled[j].Label {
				continue
			}
			from, to := labeled[i].ID, labeled[j].ID

			path, err := pathFn(g, from, to)
			if err != nil {
				return nil, fmt.Errorf("s2: path %s–%s: %w", from, to, err)
			}
			if path == nil {
				// unreachable pair: skip, never abort
				continue
			}
			if len(path) < 2 || path[0] != from || path[len(path)-1] != to {
				return nil, fmt.Errorf("s2: path %s–%s = %v: %w", from, to, path, ErrMalformedPath)
			}

			if best == nil || len(path) < len(best) {
				best = path
			}
		}
	}

	return best, nil
}

// Midpoint selects the next query target from a discordant path: the
// vertex at index ⌊len/2⌋. The second return is false when path holds
// no candidate (nil or fewer than two vertices).
//
// A path of [v0 v1 v2 v3 v4] yields v2; the two-vertex path [v0 v1]
// yields v1 — the far endpoint's side is always favored on even
// lengths, halving the unknown span like a binary search.
func Midpoint(path []string) (string, bool) {
	if len(path) < 2 {
		return "", false
	}
	return path[len(path)/2], true
}
