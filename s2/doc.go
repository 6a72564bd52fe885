// Package s2 provides a production-grade implementation of the S²
// ("shortest shortest path") active-learning strategy for discovering
// a binary vertex labeling with as few oracle queries as possible
// (Dasarathy, Nowak & Zhu, COLT 2015).
//
// What
//
//   - Run(g, oracle, pathFn): labels every vertex of a core.Graph by
//     querying the Oracle once per vertex and returns a private
//     annotated copy with every label-discordant edge removed — the
//     surviving edges connect equal labels only.
//   - CutEdges: the inference step — edges whose endpoints are both
//     labeled and disagree; deducible cuts that cost no extra query.
//   - ShortestDiscordantPath + Midpoint: the query-selection step —
//     probe every oppositely-labeled pair with the injected path
//     provider, keep the shortest path, aim the next query at its
//     middle vertex.
//   - Reseeding: when no discordant path remains, fall back to a
//     uniformly random unlabeled vertex (seeded, injectable).
//
// Why
//
//   - Querying the midpoint of the shortest span between opposite
//     labels halves that span, so the label boundary is pinned down
//     binary-search style instead of by exhaustive sweeping.
//   - Typical uses: region/boundary discovery on lattices and meshes,
//     cheap labeling of clustered networks, oracle-cost-bounded
//     classification over graph neighborhoods.
//
// How it works
//
//	 1. Clone the input graph; the caller's graph is never mutated.
//	 2. Outer phase: while unlabeled vertices remain, pick one
//	    (uniform by default; WithSeed / WithPicker override).
//	 3. Inner phase: query the oracle → record the sample → annotate
//	    the clone → remove the cuts CutEdges deduced → jump to the
//	    Midpoint of the ShortestDiscordantPath. No path? Back to 2.
//	 4. Every vertex labeled → return the working graph.
//
//	query #1 ─► a ── b ── c ── d ── e ◄─ query #2
//	            T    ·    ▲    ·    F
//	                      │
//	            query #3: midpoint of a─e; each answer halves the
//	            span until the discordant edge is isolated and cut
//
// Determinism
//
//	Unlabeled candidates enumerate sorted, discordant pairs enumerate
//	in issuance order with a strict minimum, and the reseed RNG is
//	seeded (0 ⇒ fixed default stream). Two runs with the same graph,
//	oracle, path provider, and options produce the same query sequence
//	and the same returned graph.
//
// Complexity (V = |Vertices|, E = |Edges|, Q = labeled so far)
//
//   - Oracle calls: exactly V per Run.
//   - Per inner step: O(V + E) cut inference plus O(Q²) path probes;
//     with bfs.ShortestPath each probe is O(V + E).
//
// Usage
//
//	oracle := func(id string) (bool, error) {
//	    return strings.HasPrefix(id, "in_"), nil
//	}
//	labeled, err := s2.Run(g, oracle, bfs.ShortestPath)
//	if err != nil {
//	    // handle one of:
//	    // ErrNilGraph, ErrEmptyGraph, ErrNilOracle, ErrNilPathFunc,
//	    // ErrMalformedPath, ErrBadPick, or a wrapped collaborator fault
//	}
//	for _, id := range labeled.Vertices() {
//	    l, _ := labeled.Label(id)
//	    fmt.Println(id, l)
//	}
//
// Options
//
//   - DefaultOptions(): seed 0 (fixed default stream), uniform reseed
//     pick, no-op hooks.
//   - WithSeed(n):     reseed RNG seed; 0 keeps the fixed default.
//   - WithPicker(fn):  replace the uniform reseed choice (e.g. a
//     deterministic stub in tests: always unlabeled[0]).
//   - WithOnQuery(fn): observe every oracle response as it lands.
//   - WithOnCut(fn):   observe every removed cut edge.
//
// Errors
//
//   - ErrNilGraph / ErrEmptyGraph / ErrNilOracle / ErrNilPathFunc for
//     invalid inputs.
//   - ErrMalformedPath if the path provider breaks search invariants
//     (wrong endpoints, under two vertices, already-labeled midpoint).
//   - ErrBadPick if a custom picker leaves the candidate set.
//   - Oracle and path-provider faults propagate wrapped; a failed run
//     yields no partial graph.
//
// bfs.ShortestPath is the canonical PathFunc; any provider honoring
// the (nil, nil) no-path contract plugs in unchanged.
package s2
