// File: methods_labels.go
// Role: Write-once boolean vertex labels.
// Determinism:
//   - Labeled() returns IDs sorted lexicographically ascending.
// Concurrency:
//   - All catalogs guarded by the single graph mutex.

package core

import "sort"

// SetLabel pins the boolean label of an existing vertex. Labels are
// write-once: re-setting the same value is a no-op, while a different
// value returns ErrLabelConflict.
// Returns ErrEmptyVertexID / ErrVertexNotFound on invalid input.
// Complexity: O(1)
func (g *Graph) SetLabel(id string, label bool) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}
	if prev, ok := g.labels[id]; ok && prev != label {
		return ErrLabelConflict
	}
	g.labels[id] = label

	return nil
}

// Label returns the label of id and whether id is labeled.
// Unknown vertices report (false, false).
// Complexity: O(1)
func (g *Graph) Label(id string) (label, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	label, ok = g.labels[id]

	return label, ok
}

// HasLabel reports whether id carries a label.
// Complexity: O(1)
func (g *Graph) HasLabel(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.labels[id]

	return ok
}

// Labeled returns the IDs of all labeled vertices, sorted
// lexicographically ascending.
// Complexity: O(L log L) where L is the number of labeled vertices.
func (g *Graph) Labeled() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.labels))
	for id := range g.labels {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// LabeledCount returns the number of labeled vertices.
// Complexity: O(1)
func (g *Graph) LabeledCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.labels)
}
