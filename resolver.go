package spesengine

import (
	"github.com/UmitCamurcuk/spesengineDESING-sub007/catalog"
)

// Resolution is the effective attribute set for one item type.
//
// AttributeGroupIDs is the deduplicated set of contributing groups (stale ids
// already dropped). Bindings carries one entry per group in first-seen order,
// with the required/inherited flags of the first contributing source.
// Attributes is the flattened, ordered attribute list: group contribution
// order, then each group's own attribute order, deduplicated by attribute id
// with the first occurrence winning display metadata.
type Resolution struct {
	AttributeGroupIDs map[string]bool
	Bindings          []catalog.AttributeGroupBinding
	Attributes        []catalog.Attribute
}

// Resolve computes the effective attributes for the given item type.
//
// The walk is descendant-only on both forests:
//
//  1. Seed categories from itemType.CategoryIDs plus every category whose
//     LinkedItemTypeIDs names the item type.
//  2. Expand with the category index (descendants only - an ancestor of a
//     seeded category never contributes unless itself seeded).
//  3. Seed families from itemType.LinkedFamilyIDs plus every family whose
//     CategoryID is in the expanded category set.
//  4. Expand with the family index.
//  5. Union attribute groups from the item type, then each category in the
//     expanded set, then each family - first occurrence wins, later sources
//     never overwrite a group already present.
//
// Group ids absent from the snapshot's attribute-group catalog are stale
// references: they are dropped silently and appear nowhere in the result.
//
// The result depends only on set membership, not on which source seeded an id
// first, so it is invariant under permutation of the snapshot's category and
// family slices. Calling twice with identical inputs yields identical output,
// including attribute order.
func (e *Engine) Resolve(itemType catalog.ItemType) Resolution {
	categorySeeds := catalog.IDSet(itemType.CategoryIDs...)
	for _, c := range e.snap.Categories {
		if containsID(c.LinkedItemTypeIDs, itemType.ID) {
			categorySeeds[c.ID] = true
		}
	}
	categories := e.catIndex.ExpandDescendants(categorySeeds)

	familySeeds := catalog.IDSet(itemType.LinkedFamilyIDs...)
	for _, f := range e.snap.Families {
		if f.CategoryID != "" && categories[f.CategoryID] {
			familySeeds[f.ID] = true
		}
	}
	families := e.famIndex.ExpandDescendants(familySeeds)

	c := newGroupCollector(e.groupsByID)
	c.add(itemType.AttributeGroupIDs, itemType.Bindings)
	for _, cat := range e.snap.Categories {
		if categories[cat.ID] {
			c.add(cat.AttributeGroupIDs, cat.Bindings)
		}
	}
	for _, fam := range e.snap.Families {
		if families[fam.ID] {
			c.add(fam.AttributeGroupIDs, fam.Bindings)
		}
	}

	return c.resolution()
}

// ResolveRequest resolves effective attributes for the request's item type.
// Returns ErrUnknownItemType if the snapshot has no item type with that id.
// The request's category and family selection does not alter attribute
// resolution; it only scopes rule matching.
func (e *Engine) ResolveRequest(req ResolutionRequest) (Resolution, error) {
	itemType, ok := e.itemTypesByID[req.ItemTypeID]
	if !ok {
		return Resolution{}, unknownItemType(req.ItemTypeID)
	}
	return e.Resolve(itemType), nil
}

// groupCollector accumulates attribute-group contributions in first-seen
// order, resolving each id against the group catalog and skipping stale ids.
type groupCollector struct {
	groupsByID map[string]catalog.AttributeGroup
	seen       map[string]bool
	order      []string
	bindings   []catalog.AttributeGroupBinding
}

func newGroupCollector(groupsByID map[string]catalog.AttributeGroup) *groupCollector {
	return &groupCollector{
		groupsByID: groupsByID,
		seen:       make(map[string]bool),
	}
}

// add records one source's contributions. The ids slice and the bindings
// slice are the parallel representation upstream payloads use; a group named
// only in bindings still contributes, and a group without a binding entry
// gets a zero-flag binding.
func (c *groupCollector) add(ids []string, bindings []catalog.AttributeGroupBinding) {
	byGroup := make(map[string]catalog.AttributeGroupBinding, len(bindings))
	for _, b := range bindings {
		if _, dup := byGroup[b.AttributeGroupID]; !dup {
			byGroup[b.AttributeGroupID] = b
		}
	}

	for _, id := range ids {
		c.record(id, byGroup[id])
	}
	for _, b := range bindings {
		c.record(b.AttributeGroupID, b)
	}
}

func (c *groupCollector) record(id string, binding catalog.AttributeGroupBinding) {
	if id == "" || c.seen[id] {
		return
	}
	if _, ok := c.groupsByID[id]; !ok {
		return // stale reference, contributes nothing
	}
	c.seen[id] = true
	c.order = append(c.order, id)
	binding.AttributeGroupID = id
	c.bindings = append(c.bindings, binding)
}

// resolution flattens the collected groups into the final result.
func (c *groupCollector) resolution() Resolution {
	res := Resolution{
		AttributeGroupIDs: make(map[string]bool, len(c.order)),
		Bindings:          c.bindings,
	}

	seenAttrs := make(map[string]bool)
	for _, id := range c.order {
		res.AttributeGroupIDs[id] = true
		for _, attr := range c.groupsByID[id].Attributes {
			if seenAttrs[attr.ID] {
				continue
			}
			seenAttrs[attr.ID] = true
			res.Attributes = append(res.Attributes, attr)
		}
	}

	return res
}

// containsID reports whether ids contains id.
func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
