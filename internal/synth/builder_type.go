package synth

import (
	"fmt"

	"github.com/seitarof/gen-builder/internal/fields"
	"github.com/seitarof/gen-builder/internal/generics"
)

func (c *emitter) builderType() TypeDecl {
	stateParams := fields.Map(c.fields, func(s fields.Slot) generics.Param {
		return generics.Param{Name: s.Param, Type: "any"}
	})
	params := c.generics.Decl(append([]generics.Param{c.continuationParam()}, stateParams...)...)

	decl := c.generics.Markers()
	decl = append(decl, generics.Param{
		Name: fields.CallbackField,
		Type: fmt.Sprintf("%s.Callback[%s, %s]", fields.RuntimeQualifier, c.aggregateType(), fields.ContinuationParam),
	})
	decl = append(decl, fields.Map(c.fields, func(s fields.Slot) generics.Param {
		return generics.Param{Name: s.Storage, Type: s.Param}
	})...)

	name := fields.BuilderName(c.agg.Name)
	doc := fmt.Sprintf(
		"%s collects the fields of %s. Every Field type parameter is %s.Unset[T] until the field is set; %s only accepts a builder whose required fields are all set.",
		name, c.agg.Name, fields.RuntimeQualifier, fields.FinishName(c.agg.Name),
	)
	if c.fields.Len() == 0 {
		doc = fmt.Sprintf(
			"%s holds the callback of a %s build. %s has no fields, so %s accepts the builder as soon as it is created.",
			name, c.agg.Name, c.agg.Name, fields.FinishName(c.agg.Name),
		)
	}
	return TypeDecl{
		Doc:        doc,
		Name:       name,
		TypeParams: params,
		Fields:     decl,
	}
}

func (c *emitter) initAlias() AliasDecl {
	name := fields.InitName(c.agg.Name)
	return AliasDecl{
		Doc:        fmt.Sprintf("%s is a %s with no field set.", name, fields.BuilderName(c.agg.Name)),
		Name:       name,
		TypeParams: c.generics.Decl(c.continuationParam()),
		Target:     c.builderRef(fields.ContinuationParam, c.unsetStates()),
	}
}

// unsetLiteral is the body of the all-unset constructor.
func (c *emitter) unsetLiteral(callback string) []string {
	elems := c.generics.MarkerInits()
	elems = append(elems, fields.CallbackField+": "+callback)
	elems = append(elems, fields.Map(c.fields, func(s fields.Slot) string {
		return s.Storage + ": " + s.UnsetType() + "{}"
	})...)
	return c.literal("return "+c.builderRef(fields.ContinuationParam, c.unsetStates()), elems, "")
}
