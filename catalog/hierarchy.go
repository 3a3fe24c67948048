package catalog

// rootKey is the synthetic parent key for nodes without a parent.
const rootKey = ""

// ParentLink is one (node, parent) edge used to build an Index.
// An empty ParentID marks a root node.
type ParentLink struct {
	ID       string
	ParentID string
}

// Index answers descendant-expansion queries over a parent-pointer forest.
// It holds a parent id -> direct children adjacency, including the synthetic
// root key for parentless nodes. Build cost is O(n); the index is immutable
// after construction and safe for concurrent reads.
//
// Callers may cache an Index across resolutions, but must rebuild it whenever
// the underlying node collection changes. The index performs no staleness
// detection of its own.
type Index struct {
	children map[string][]string
}

// NewIndex builds an Index from explicit parent links.
// Link order is preserved in each children list, so expansion output is
// deterministic for a given input ordering.
func NewIndex(links []ParentLink) *Index {
	children := make(map[string][]string, len(links))
	for _, l := range links {
		parent := l.ParentID
		if parent == l.ID {
			// Self-parented nodes would expand to themselves forever without
			// the visited guard. Treat them as roots.
			parent = rootKey
		}
		children[parent] = append(children[parent], l.ID)
	}
	return &Index{children: children}
}

// CategoryLinks adapts a category collection to parent links.
func CategoryLinks(categories []Category) []ParentLink {
	links := make([]ParentLink, len(categories))
	for i, c := range categories {
		links[i] = ParentLink{ID: c.ID, ParentID: c.ParentCategoryID}
	}
	return links
}

// FamilyLinks adapts a family collection to parent links.
func FamilyLinks(families []Family) []ParentLink {
	links := make([]ParentLink, len(families))
	for i, f := range families {
		links[i] = ParentLink{ID: f.ID, ParentID: f.ParentFamilyID}
	}
	return links
}

// Children returns the direct children of parentID in link order.
// Pass an empty string for root nodes. The returned slice is shared with the
// index and must not be mutated.
func (ix *Index) Children(parentID string) []string {
	return ix.children[parentID]
}

// ExpandDescendants returns seeds plus every node reachable through child
// edges from a seed. Traversal is breadth-first with a visited guard, so it
// terminates even if the input contained an accidental parent cycle - the
// cycle's members simply stop contributing once each has been seen.
//
// Only descendants are added; ancestors of seed nodes are never pulled in. A
// node must be explicitly seeded to contribute its subtree.
//
// The input set is not mutated. Expansion is idempotent: feeding the result
// back in yields an equal set.
func (ix *Index) ExpandDescendants(seeds map[string]bool) map[string]bool {
	result := make(map[string]bool, len(seeds))
	queue := make([]string, 0, len(seeds))
	for id := range seeds {
		if !seeds[id] {
			continue
		}
		result[id] = true
		queue = append(queue, id)
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, child := range ix.children[current] {
			if result[child] {
				continue
			}
			result[child] = true
			queue = append(queue, child)
		}
	}

	return result
}

// IDSet builds a set from the given ids, skipping empties.
// Convenience for assembling ExpandDescendants seeds.
func IDSet(ids ...string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		set[id] = true
	}
	return set
}
