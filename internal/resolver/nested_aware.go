package resolver

import "github.com/seitarof/gen-builder/internal/model"

// NestedSet stores the aggregates generated in the current run.
type NestedSet map[model.TypeKey]struct{}

// NestedAware can consume the aggregates of the current run.
type NestedAware interface {
	SetNestedSet(NestedSet)
}
