package spesengine

import (
	"fmt"

	"github.com/UmitCamurcuk/spesengineDESING-sub007/catalog"
)

// VerdictKind classifies a cardinality validation outcome.
type VerdictKind int

const (
	// VerdictOk means the selection count satisfies the rule's bounds.
	VerdictOk VerdictKind = iota

	// VerdictBelowMinimum means fewer targets are selected than the rule's
	// minimum requires.
	VerdictBelowMinimum

	// VerdictAboveMaximum means more targets are selected than the rule's
	// maximum allows.
	VerdictAboveMaximum
)

// String returns the kind's canonical name.
func (k VerdictKind) String() string {
	switch k {
	case VerdictOk:
		return "ok"
	case VerdictBelowMinimum:
		return "below-minimum"
	case VerdictAboveMaximum:
		return "above-maximum"
	default:
		return fmt.Sprintf("verdict(%d)", int(k))
	}
}

// Verdict is the structured result of a cardinality validation. A violation
// is never an error - the caller renders the verdict as user feedback.
// Bound carries the violated bound: the minimum for VerdictBelowMinimum, the
// maximum for VerdictAboveMaximum, zero for VerdictOk.
type Verdict struct {
	Kind  VerdictKind
	Bound int
}

// OK reports whether the selection passed.
func (v Verdict) OK() bool {
	return v.Kind == VerdictOk
}

// String returns a short human-readable form, e.g. "below-minimum(1)".
func (v Verdict) String() string {
	if v.Kind == VerdictOk {
		return "ok"
	}
	return fmt.Sprintf("%s(%d)", v.Kind, v.Bound)
}

// ValidateCardinality checks a selection count against a rule's target
// cardinality bounds.
//
// The two bounds are applied independently - a rule configured with
// MaxTargets below MinTargets is not normalized, each bound simply holds on
// its own. When the count violates both (only possible with such a negative
// span), BelowMinimum is reported; a verdict always names one end.
//
// A nil MaxTargets, or one pointing at zero, means unbounded: no upper check
// is applied. MinTargets is never negative by construction; a zero minimum
// accepts an empty selection.
func ValidateCardinality(rule catalog.AssociationRule, selected int) Verdict {
	if selected < rule.MinTargets {
		return Verdict{Kind: VerdictBelowMinimum, Bound: rule.MinTargets}
	}
	if rule.MaxTargets != nil && *rule.MaxTargets > 0 && selected > *rule.MaxTargets {
		return Verdict{Kind: VerdictAboveMaximum, Bound: *rule.MaxTargets}
	}
	return Verdict{Kind: VerdictOk}
}
