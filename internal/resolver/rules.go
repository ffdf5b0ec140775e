package resolver

import "github.com/seitarof/gen-builder/internal/model"

// DefaultRules returns built-in rules in priority order.
func DefaultRules() []Rule {
	return []Rule{
		&OptOutRule{},
		&ForcedRule{},
		&SameRunRule{},
	}
}

// OptOutRule: `builder:"nonested"` never gets an entry.
type OptOutRule struct{}

func (r *OptOutRule) Name() string { return "opt-out" }

func (r *OptOutRule) Try(_ *model.Aggregate, f model.Field) (bool, bool) {
	if f.Nested == model.NestedOff {
		return false, true
	}
	return false, false
}

// ForcedRule: `builder:"nested"` always gets an entry. The field type's
// builder is expected to be generated elsewhere.
type ForcedRule struct{}

func (r *ForcedRule) Name() string { return "forced" }

func (r *ForcedRule) Try(_ *model.Aggregate, f model.Field) (bool, bool) {
	if f.Nested == model.NestedForce {
		return true, true
	}
	return false, false
}

// SameRunRule: a field whose type is generated in the same run gets an entry.
type SameRunRule struct {
	nestedSet NestedSet
}

func (r *SameRunRule) Name() string { return "same-run" }

func (r *SameRunRule) SetNestedSet(set NestedSet) { r.nestedSet = set }

func (r *SameRunRule) Try(_ *model.Aggregate, f model.Field) (bool, bool) {
	if _, ok := r.nestedSet[f.Ref.Key()]; ok {
		return true, true
	}
	return false, false
}
