// Package generics renders an aggregate's own type parameters into the
// parameter lists of generated declarations.
package generics

import (
	"github.com/seitarof/gen-builder/internal/model"
)

// Param is one entry of a type parameter list, or one struct field when used
// for marker declarations.
type Param struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Slot is one of the aggregate's type parameters together with the zero-size
// marker field that keeps it referenced by the builder struct.
type Slot struct {
	Param      model.TypeParam
	Marker     string
	MarkerType string
}

// Encoder renders the aggregate's type parameters.
type Encoder struct {
	slots []Slot
}

// New returns an encoder for params.
func New(params []model.TypeParam) *Encoder {
	e := &Encoder{slots: make([]Slot, 0, len(params))}
	for _, p := range params {
		e.slots = append(e.slots, Slot{
			Param:      p,
			Marker:     "generic" + exportedSuffix(p.Name),
			MarkerType: "[0]" + p.Name,
		})
	}
	return e
}

// Slots returns the aggregate's own parameters in declaration order.
func (e *Encoder) Slots() []Slot { return e.slots }

// Decl returns the declaration form: own parameters with their constraints,
// followed by extra.
func (e *Encoder) Decl(extra ...Param) []Param {
	out := make([]Param, 0, len(e.slots)+len(extra))
	for _, s := range e.slots {
		constraint := s.Param.Constraint
		if constraint == "" {
			constraint = "any"
		}
		out = append(out, Param{Name: s.Param.Name, Type: constraint})
	}
	return append(out, extra...)
}

// Use returns the use form: own parameter names followed by extra, in the
// same order as Decl.
func (e *Encoder) Use(extra ...string) []string {
	out := make([]string, 0, len(e.slots)+len(extra))
	for _, s := range e.slots {
		out = append(out, s.Param.Name)
	}
	return append(out, extra...)
}

// Markers returns the marker field declarations.
func (e *Encoder) Markers() []Param {
	out := make([]Param, 0, len(e.slots))
	for _, s := range e.slots {
		out = append(out, Param{Name: s.Marker, Type: s.MarkerType})
	}
	return out
}

// MarkerInits returns keyed composite literal elements initialising every
// marker field.
func (e *Encoder) MarkerInits() []string {
	out := make([]string, 0, len(e.slots))
	for _, s := range e.slots {
		out = append(out, s.Marker+": "+s.MarkerType+"{}")
	}
	return out
}

// Instantiate renders name with the use form of the parameters, omitting the
// brackets when there are none.
func Instantiate(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	s := name + "["
	for i, a := range args {
		if i > 0 {
			s += ", "
		}
		s += a
	}
	return s + "]"
}

func exportedSuffix(name string) string {
	if name == "" {
		return name
	}
	b := []byte(name)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
