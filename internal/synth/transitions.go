package synth

import (
	"fmt"

	"github.com/seitarof/gen-builder/internal/fields"
	"github.com/seitarof/gen-builder/internal/generics"
	"github.com/seitarof/gen-builder/internal/model"
)

// freeStates declares a state parameter for every slot except the one at
// index except.
func (c *emitter) freeStates(except int) []generics.Param {
	var out []generics.Param
	for _, s := range c.fields.All() {
		if s.Index == except {
			continue
		}
		out = append(out, generics.Param{Name: s.Param, Type: "any"})
	}
	return out
}

// transitionTypes returns the builder type a transition on slot consumes and
// the one it produces. Every other slot stays a free parameter.
func (c *emitter) transitionTypes(slot fields.Slot) (in, out string) {
	in = c.builderRef(fields.ContinuationParam, fields.MapExcept(c.fields, slot.Index, paramName, fields.Slot.UnsetType))
	out = c.builderRef(fields.ContinuationParam, fields.MapExcept(c.fields, slot.Index, paramName, fields.Slot.SetType))
	return in, out
}

func (c *emitter) setter(slot fields.Slot) Func {
	in, out := c.transitionTypes(slot)

	elems := c.generics.MarkerInits()
	elems = append(elems, fields.CallbackField+": b."+fields.CallbackField)
	elems = append(elems, fields.MapExcept(c.fields, slot.Index,
		func(s fields.Slot) string { return s.Storage + ": b." + s.Storage },
		func(s fields.Slot) string { return s.Storage + ": value" },
	)...)

	return Func{
		Kind:       KindSetter,
		Doc:        fmt.Sprintf("%s sets %s. It only accepts a builder on which the field is still unset.", slot.Setter, c.fieldRef(slot)),
		Name:       slot.Setter,
		TypeParams: c.generics.Decl(append([]generics.Param{c.continuationParam()}, c.freeStates(slot.Index)...)...),
		Params: []generics.Param{
			{Name: "b", Type: in},
			{Name: "value", Type: slot.Type},
		},
		Result: out,
		Body:   c.literal("return "+out, elems, ""),
	}
}

func (c *emitter) finish() (Func, []string) {
	var notes []string
	extra := []generics.Param{c.continuationParam()}
	for _, s := range c.fields.All() {
		if !s.HasDefault {
			continue
		}
		constraint := fmt.Sprintf("interface{ %s | %s }", s.UnsetType(), s.SetType())
		if s.Interface {
			constraint = "any"
			notes = append(notes, fmt.Sprintf(
				"%s: %s cannot be a union term, the default is resolved at run time", c.fieldRef(s), s.Type,
			))
		}
		extra = append(extra, generics.Param{Name: s.Param, Type: constraint})
	}

	states := fields.Map(c.fields, func(s fields.Slot) string {
		if s.HasDefault {
			return s.Param
		}
		return s.SetType()
	})

	values := fields.Map(c.fields, func(s fields.Slot) string {
		value := "b." + s.Storage
		if s.HasDefault {
			value = fmt.Sprintf("%s.OrDefault[%s](%s)", fields.RuntimeQualifier, s.Type, value)
		}
		if c.fields.Style == model.StyleNamed {
			return s.Name + ": " + value
		}
		return value
	})

	call := "return b." + fields.CallbackField + "(" + c.aggregateType()
	var body []string
	if len(values) == 0 {
		body = []string{call + "{})"}
	} else {
		body = c.literal(call, values, ")")
	}

	name := fields.FinishName(c.agg.Name)
	return Func{
		Kind: KindFinish,
		Doc: fmt.Sprintf(
			"%s constructs the %s and hands it to the builder's callback. Required fields must have been set; default fields may be left unset.",
			name, c.agg.Name,
		),
		Name:       name,
		TypeParams: c.generics.Decl(extra...),
		Params:     []generics.Param{{Name: "b", Type: c.builderRef(fields.ContinuationParam, states)}},
		Result:     fields.ContinuationParam,
		Body:       body,
	}, notes
}

func (c *emitter) fieldRef(slot fields.Slot) string {
	return c.agg.Name + "." + slot.Label
}

func paramName(s fields.Slot) string { return s.Param }
