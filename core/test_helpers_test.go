// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures and assertion helpers for
// lvlearn/core tests.
//
// Policy:
//   - Core tests stay stdlib-only (no third-party assertion frameworks).
//   - No *testing.T usage inside goroutines: concurrent scenarios report
//     through error channels drained by the parent test.
package core_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/katalvlaran/lvlearn/core"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"

	VertexX = "X"
	VertexY = "Y"
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentAdds = 200
	NReaders        = 50
	NCloners        = 20
)

// NewGraphWithEdges returns a graph populated with the given undirected
// edges (endpoints auto-created). Fails the test on any AddEdge error.
func NewGraphWithEdges(t *testing.T, pairs ...[2]string) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	for _, p := range pairs {
		MustNoError(t, g.AddEdge(p[0], p[1]), "AddEdge("+p[0]+","+p[1]+")")
	}

	return g
}

// MustNoError fails the test if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()

	if err == nil {
		return
	}

	t.Fatalf("%s: unexpected error: %v", op, err)
}

// MustErrorIs fails the test unless errors.Is(err, target).
func MustErrorIs(t *testing.T, err, target error, op string) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Fatalf("%s: want errors.Is(err,%v)=true; got err=%v", op, target, err)
}

// MustTrue fails the test if cond is false.
func MustTrue(t *testing.T, cond bool, op string) {
	t.Helper()

	if cond {
		return
	}

	t.Fatalf("%s: predicate is false", op)
}

// MustFalse fails the test if cond is true.
func MustFalse(t *testing.T, cond bool, op string) {
	t.Helper()

	if !cond {
		return
	}

	t.Fatalf("%s: predicate is true", op)
}

// MustEqualInt fails the test if got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()

	if got == want {
		return
	}

	t.Fatalf("%s: got=%d want=%d", op, got, want)
}

// MustEqualString fails the test if got != want.
func MustEqualString(t *testing.T, got, want string, op string) {
	t.Helper()

	if got == want {
		return
	}

	t.Fatalf("%s: got=%q want=%q", op, got, want)
}

// MustSortedStrings fails the test if ids are not sorted ascending.
func MustSortedStrings(t *testing.T, ids []string, op string) {
	t.Helper()

	if sort.StringsAreSorted(ids) {
		return
	}

	t.Fatalf("%s: not sorted asc: %v", op, ids)
}

// MustSameStringSet fails the test if a and b differ as multisets
// (order-independent comparison; duplicates count as multiplicities).
func MustSameStringSet(t *testing.T, a, b []string, op string) {
	t.Helper()

	if len(a) != len(b) {
		t.Fatalf("%s: len(a)=%d len(b)=%d; a=%v b=%v", op, len(a), len(b), a, b)
	}

	aa := append([]string(nil), a...)
	bb := append([]string(nil), b...)
	sort.Strings(aa)
	sort.Strings(bb)

	for i := range aa {
		if aa[i] != bb[i] {
			t.Fatalf("%s: set mismatch at i=%d; a=%v b=%v", op, i, aa, bb)
		}
	}
}

// MustNoErrorsFromChan fails the test on the first non-nil error received.
// The channel must be closed by the caller once all goroutines are done.
func MustNoErrorsFromChan(t *testing.T, errCh <-chan error, op string) {
	t.Helper()

	for err := range errCh {
		if err == nil {
			continue
		}
		t.Fatalf("%s: unexpected concurrent error: %v", op, err)
	}
}
