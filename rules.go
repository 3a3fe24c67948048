package spesengine

import (
	"github.com/UmitCamurcuk/spesengineDESING-sub007/catalog"
)

// RuleMatch pairs an applicable rule with its owning association type.
type RuleMatch struct {
	Type catalog.AssociationType
	Rule catalog.AssociationRule
}

// ApplicableRules returns the association rules governing the request's
// source scope, paired with their owning types.
//
// Association types are filtered to those whose SourceItemTypeID matches the
// request. A rule of such a type matches iff each source axis passes:
//
//   - SourceCategoryIDs empty, or it contains req.CategoryID
//   - SourceFamilyIDs empty, or it contains req.FamilyID
//
// An unchosen axis (empty id on the request) fails any non-empty filter on
// that axis: a rule scoped to specific categories cannot be judged applicable
// before a category is chosen. An empty filter set always passes - it means
// unconstrained, never "matches nothing".
//
// Output preserves association-type order, then rule order within each type,
// so repeated calls over the same input are deterministic.
func ApplicableRules(types []catalog.AssociationType, rulesByType map[string][]catalog.AssociationRule, req ResolutionRequest) []RuleMatch {
	var matches []RuleMatch
	for _, t := range types {
		if t.SourceItemTypeID != req.ItemTypeID {
			continue
		}
		for _, rule := range rulesByType[t.ID] {
			if !sourceScopeMatches(rule.SourceCategoryIDs, req.CategoryID) {
				continue
			}
			if !sourceScopeMatches(rule.SourceFamilyIDs, req.FamilyID) {
				continue
			}
			matches = append(matches, RuleMatch{Type: t, Rule: rule})
		}
	}
	return matches
}

// ApplicableRules returns the rules applicable to the request against the
// engine's snapshot. See the package-level ApplicableRules for the matching
// semantics.
func (e *Engine) ApplicableRules(req ResolutionRequest) []RuleMatch {
	return ApplicableRules(e.snap.AssociationTypes, e.snap.RulesByType, req)
}

// sourceScopeMatches applies one axis of a rule's source scope filter.
func sourceScopeMatches(filter []string, selected string) bool {
	if len(filter) == 0 {
		return true
	}
	if selected == "" {
		return false
	}
	return containsID(filter, selected)
}

// TargetCandidates filters a candidate pool down to the records satisfying
// the rule's target scope.
//
// The pool is expected to be pre-filtered by the caller to the rule's target
// item type and an active lifecycle status; this function only applies the
// category/family scope. Matching is exact against the candidate's own
// CategoryID and FamilyID - target scope is deliberately not expanded through
// the hierarchy index, unlike source-side attribute resolution. An empty
// filter set passes everything on that axis.
//
// Returns a fresh slice in pool order; the pool itself is never mutated.
func TargetCandidates(rule catalog.AssociationRule, pool []catalog.Item) []catalog.Item {
	var out []catalog.Item
	for _, item := range pool {
		if len(rule.TargetCategoryIDs) > 0 && !containsID(rule.TargetCategoryIDs, item.CategoryID) {
			continue
		}
		if len(rule.TargetFamilyIDs) > 0 && !containsID(rule.TargetFamilyIDs, item.FamilyID) {
			continue
		}
		out = append(out, item)
	}
	return out
}
