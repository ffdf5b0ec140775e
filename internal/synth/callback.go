package synth

import (
	"fmt"

	"github.com/seitarof/gen-builder/internal/fields"
	"github.com/seitarof/gen-builder/internal/generics"
)

func (c *emitter) constructors() []Func {
	aggType := c.aggregateType()
	name := fields.ConstructorName(c.agg.Name)
	withCallback := fields.CallbackConstructorName(c.agg.Name)
	initName := fields.InitName(c.agg.Name)

	identity := Func{
		Kind:       KindConstructor,
		Doc:        fmt.Sprintf("%s starts a builder whose %s returns the %s itself.", name, fields.FinishName(c.agg.Name), c.agg.Name),
		Name:       name,
		TypeParams: c.generics.Decl(),
		Result:     generics.Instantiate(initName, c.generics.Use(aggType)),
		Body: []string{fmt.Sprintf(
			"return %s(%s.Identity[%s])",
			generics.Instantiate(withCallback, c.generics.Use(aggType)), fields.RuntimeQualifier, aggType,
		)},
	}

	callback := Func{
		Kind: KindConstructor,
		Doc: fmt.Sprintf(
			"%s starts a builder whose %s passes the finished %s to callback and returns its result.",
			withCallback, fields.FinishName(c.agg.Name), c.agg.Name,
		),
		Name:       withCallback,
		TypeParams: c.generics.Decl(c.continuationParam()),
		Params: []generics.Param{{
			Name: "callback",
			Type: fmt.Sprintf("func(%s) %s", aggType, fields.ContinuationParam),
		}},
		Result: generics.Instantiate(initName, c.generics.Use(fields.ContinuationParam)),
		Body:   c.unsetLiteral("callback"),
	}

	return []Func{identity, callback}
}

// nestedEntry starts the field type's own builder. Its callback sets the
// field on b and returns the outer builder, so finishing the nested builder
// resumes the outer one.
func (c *emitter) nestedEntry(slot fields.Slot) Func {
	ref := slot.Nested
	in, out := c.transitionTypes(slot)
	args := append(append([]string(nil), ref.TypeArgs...), out)

	result := generics.Instantiate(ref.Qualified(fields.InitName(ref.Name)), args)
	start := generics.Instantiate(ref.Qualified(fields.CallbackConstructorName(ref.Name)), args)

	return Func{
		Kind: KindEntry,
		Doc: fmt.Sprintf(
			"%s builds %s with a nested %s. Finishing the nested builder sets the field and returns the %s.",
			slot.Entry, c.fieldRef(slot), fields.BuilderName(ref.Name), fields.BuilderName(c.agg.Name),
		),
		Name:       slot.Entry,
		TypeParams: c.generics.Decl(append([]generics.Param{c.continuationParam()}, c.freeStates(slot.Index)...)...),
		Params:     []generics.Param{{Name: "b", Type: in}},
		Result:     result,
		Body: []string{
			fmt.Sprintf("return %s(func(value %s) %s {", start, slot.Type, out),
			fmt.Sprintf("\treturn %s(b, value)", slot.Setter),
			"})",
		},
	}
}
