package resolver

import (
	"github.com/seitarof/gen-builder/internal/model"
)

// Resolver decides which fields get a nested builder entry.
type Resolver interface {
	Resolve(aggs []*model.Aggregate) []Decision
}

// Rule decides for one field, or passes.
type Rule interface {
	Name() string
	Try(agg *model.Aggregate, field model.Field) (nested bool, ok bool)
}

// Decision records the outcome for one field.
type Decision struct {
	Aggregate string
	Field     string
	Nested    bool
	Rule      string
}

type resolverImpl struct {
	rules     []Rule
	nestedSet NestedSet
}

// New builds resolver with rule chain.
func New(rules ...Rule) Resolver {
	return &resolverImpl{rules: rules}
}

// Resolve sets model.Field.Resolved on every field of aggs and returns the
// decisions that enabled a nested entry.
func (r *resolverImpl) Resolve(aggs []*model.Aggregate) []Decision {
	r.nestedSet = buildNestedSet(r.nestedSet, aggs)
	for _, rule := range r.rules {
		if aware, ok := rule.(NestedAware); ok {
			aware.SetNestedSet(r.nestedSet)
		}
	}

	var decisions []Decision
	for _, agg := range aggs {
		for i := range agg.Fields {
			f := &agg.Fields[i]
			nested, rule := r.resolveOne(agg, *f)
			f.Resolved = nested
			if nested {
				decisions = append(decisions, Decision{
					Aggregate: agg.Name,
					Field:     model.FieldLabel(*f),
					Nested:    true,
					Rule:      rule,
				})
			}
		}
	}
	return decisions
}

func (r *resolverImpl) resolveOne(agg *model.Aggregate, f model.Field) (bool, string) {
	if f.Ref == nil {
		return false, ""
	}
	for _, rule := range r.rules {
		if nested, ok := rule.Try(agg, f); ok {
			return nested, rule.Name()
		}
	}
	return false, ""
}

func buildNestedSet(reuse NestedSet, aggs []*model.Aggregate) NestedSet {
	if reuse == nil {
		reuse = make(NestedSet, len(aggs))
	} else {
		clear(reuse)
	}
	for _, agg := range aggs {
		if agg.Shape != model.ShapeStruct {
			continue
		}
		reuse[agg.Key()] = struct{}{}
	}
	return reuse
}
