package spesengine

import (
	"github.com/UmitCamurcuk/spesengineDESING-sub007/catalog"
)

// StaleReferences scans the snapshot for ids that reference entities the
// snapshot does not contain: attribute-group bindings pointing at missing
// groups, families belonging to missing categories, and rule scope filters
// naming missing categories or families.
//
// Stale references are tolerated everywhere during resolution - they simply
// contribute nothing. This scan exists for the validate tooling and the
// engine's construction-time diagnostics, so operators can find and clean
// the dangling ids.
//
// Output order follows snapshot order and is deterministic.
func (e *Engine) StaleReferences() []catalog.StaleReference {
	var refs []catalog.StaleReference

	categories := make(map[string]bool, len(e.snap.Categories))
	for _, c := range e.snap.Categories {
		categories[c.ID] = true
	}
	families := make(map[string]bool, len(e.snap.Families))
	for _, f := range e.snap.Families {
		families[f.ID] = true
	}

	appendMissing := func(owner, field string, ids []string, known map[string]bool) {
		for _, id := range ids {
			if id != "" && !known[id] {
				refs = append(refs, catalog.StaleReference{Owner: owner, Field: field, ID: id})
			}
		}
	}
	groupKnown := func(id string) bool {
		_, ok := e.groupsByID[id]
		return ok
	}
	appendMissingGroups := func(owner string, ids []string, bindings []catalog.AttributeGroupBinding) {
		for _, id := range ids {
			if id != "" && !groupKnown(id) {
				refs = append(refs, catalog.StaleReference{Owner: owner, Field: "attributeGroupIds", ID: id})
			}
		}
		for _, b := range bindings {
			if b.AttributeGroupID != "" && !groupKnown(b.AttributeGroupID) && !containsID(ids, b.AttributeGroupID) {
				refs = append(refs, catalog.StaleReference{Owner: owner, Field: "attributeGroupBindings", ID: b.AttributeGroupID})
			}
		}
	}

	for _, it := range e.snap.ItemTypes {
		owner := "itemType:" + it.ID
		appendMissingGroups(owner, it.AttributeGroupIDs, it.Bindings)
		appendMissing(owner, "categoryIds", it.CategoryIDs, categories)
		appendMissing(owner, "linkedFamilyIds", it.LinkedFamilyIDs, families)
	}
	for _, c := range e.snap.Categories {
		appendMissingGroups("category:"+c.ID, c.AttributeGroupIDs, c.Bindings)
	}
	for _, f := range e.snap.Families {
		owner := "family:" + f.ID
		appendMissingGroups(owner, f.AttributeGroupIDs, f.Bindings)
		if f.CategoryID != "" && !categories[f.CategoryID] {
			refs = append(refs, catalog.StaleReference{Owner: owner, Field: "categoryId", ID: f.CategoryID})
		}
	}
	for _, t := range e.snap.AssociationTypes {
		for _, rule := range e.snap.RulesByType[t.ID] {
			owner := "rule:" + rule.ID
			appendMissing(owner, "sourceCategoryIds", rule.SourceCategoryIDs, categories)
			appendMissing(owner, "sourceFamilyIds", rule.SourceFamilyIDs, families)
			appendMissing(owner, "targetCategoryIds", rule.TargetCategoryIDs, categories)
			appendMissing(owner, "targetFamilyIds", rule.TargetFamilyIDs, families)
		}
	}

	return refs
}
