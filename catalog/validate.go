package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCyclicHierarchy is returned by DetectCycles when a parent-pointer chain
// loops back on itself. Resolution itself tolerates cycles (the expansion
// visited guard keeps traversal bounded); this error exists so tooling can
// surface the broken data before it reaches users.
var ErrCyclicHierarchy = errors.New("catalog: cyclic hierarchy")

// IsCyclicHierarchyErr returns true if err is or wraps ErrCyclicHierarchy.
func IsCyclicHierarchyErr(err error) bool {
	return errors.Is(err, ErrCyclicHierarchy)
}

// color represents the state of a node during DFS cycle detection.
type color int

const (
	white color = iota // unvisited
	gray               // in current DFS path (cycle if revisited)
	black              // fully processed
)

// DetectCycles checks that the given parent links form a forest.
// Returns an error describing the first cycle found, nil otherwise.
//
// This is an advisory check for the CLI validate command and the engine's
// construction-time diagnostics. The resolver does not require it: expansion
// terminates on cyclic input regardless, treating the cycle as a single
// merged component.
//
// Example cyclic input that would be detected:
//
//	electronics -> phones -> smartphones -> electronics
func DetectCycles(links []ParentLink) error {
	// Edges point child -> parent; a cycle in this graph means some node is
	// its own ancestor.
	parent := make(map[string]string, len(links))
	for _, l := range links {
		if l.ParentID == "" || l.ParentID == l.ID {
			continue
		}
		parent[l.ID] = l.ParentID
	}

	colors := make(map[string]color, len(parent))

	for _, l := range links {
		if colors[l.ID] != white {
			continue
		}
		if cycle := walkToRoot(l.ID, parent, colors); cycle != nil {
			return fmt.Errorf("%w: %s", ErrCyclicHierarchy, formatCycle(cycle))
		}
	}

	return nil
}

// walkToRoot follows parent pointers from start, marking nodes gray while on
// the current path and black once the path is known cycle-free. Revisiting a
// gray node means the path looped; the cycle is the gray suffix of the path.
func walkToRoot(start string, parent map[string]string, colors map[string]color) []string {
	path := []string{start}
	colors[start] = gray

	for {
		next, ok := parent[path[len(path)-1]]
		if !ok {
			break // reached a root (or a dangling parent reference)
		}
		if colors[next] == gray {
			// Found cycle - trim the path to the looping suffix
			for i, id := range path {
				if id == next {
					return append(path[i:], next)
				}
			}
			return append(path, next)
		}
		if colors[next] == black {
			break // joins an already-verified path
		}
		colors[next] = gray
		path = append(path, next)
	}

	for _, id := range path {
		colors[id] = black
	}
	return nil
}

// formatCycle converts a cycle path to a human-readable string.
// Example: "electronics -> phones -> smartphones -> electronics"
func formatCycle(cycle []string) string {
	return strings.Join(cycle, " -> ")
}

// StaleReference describes an id referenced by one entity that does not exist
// in the supplied catalog. Stale references are silently ignored during
// resolution; this type exists so the validate tooling can report them.
type StaleReference struct {
	Owner string // entity holding the reference, e.g. "itemType:product"
	Field string // field carrying the reference, e.g. "attributeGroupIds"
	ID    string // the missing id
}

// String returns a single-line description of the stale reference.
func (s StaleReference) String() string {
	return fmt.Sprintf("%s.%s references missing %q", s.Owner, s.Field, s.ID)
}
