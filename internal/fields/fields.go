// Package fields derives the per-field identifiers and state types of a
// generated builder.
package fields

import (
	"fmt"
	"go/token"

	"go.uber.org/multierr"

	"github.com/seitarof/gen-builder/internal/generics"
	"github.com/seitarof/gen-builder/internal/model"
)

// Slot holds everything the synthesizers need to know about one field.
type Slot struct {
	Index int
	// Name is the aggregate's field name, empty for positional fields.
	Name  string
	Label string
	// Storage is the builder struct field holding the slot.
	Storage string
	Setter  string
	// Entry is the nested builder entry point, set only for nested slots.
	Entry string
	// Param is the builder type parameter tracking the slot's state.
	Param      string
	Type       string
	HasDefault bool
	Interface  bool
	Nested     *model.TypeRef
}

// UnsetType is the slot's type before its setter has run.
func (s Slot) UnsetType() string { return UnsetType(s.Type) }

// SetType is the slot's type once set.
func (s Slot) SetType() string { return s.Type }

// Set is the ordered slot list of one aggregate.
type Set struct {
	Aggregate string
	Style     model.Style
	slots     []Slot
}

// All returns the slots in declaration order.
func (s *Set) All() []Slot { return s.slots }

// Len returns the number of slots.
func (s *Set) Len() int { return len(s.slots) }

// Map applies fn to every slot in declaration order.
func Map[T any](s *Set, fn func(Slot) T) []T {
	out := make([]T, 0, len(s.slots))
	for _, slot := range s.slots {
		out = append(out, fn(slot))
	}
	return out
}

// MapExcept applies usual to every slot except the one at index except,
// which goes through exception instead. Declaration order is preserved.
func MapExcept[T any](s *Set, except int, usual, exception func(Slot) T) []T {
	out := make([]T, 0, len(s.slots))
	for i, slot := range s.slots {
		if i == except {
			out = append(out, exception(slot))
			continue
		}
		out = append(out, usual(slot))
	}
	return out
}

// Encode validates the aggregate's shape and derives its slots. Every
// malformed field is reported; the returned error combines them.
func Encode(agg *model.Aggregate) (*Set, error) {
	if agg.Shape != model.ShapeStruct {
		return nil, model.InvalidShape(agg.Name, model.ShapeStruct, agg.Shape)
	}

	var errs []error
	if agg.Name == "" {
		errs = append(errs, &model.ShapeError{Err: model.ErrMissingIdent, Detail: "aggregate name"})
	}
	if agg.Style == model.StyleUnit && len(agg.Fields) > 0 {
		errs = append(errs, &model.ShapeError{
			Aggregate: agg.Name,
			Err:       model.ErrInvalidShape,
			Detail:    fmt.Sprintf("unit aggregate declares %d fields", len(agg.Fields)),
		})
	}

	set := &Set{Aggregate: agg.Name, Style: agg.Style}
	for i, f := range agg.Fields {
		if err := checkField(agg, f, i); err != nil {
			errs = append(errs, err)
			continue
		}
		set.slots = append(set.slots, newSlot(agg.Name, f, i))
	}
	errs = append(errs, checkCollisions(agg, set.slots)...)

	if err := multierr.Combine(errs...); err != nil {
		return nil, err
	}
	return set, nil
}

func newSlot(aggregate string, f model.Field, i int) Slot {
	sfx := suffix(f, i)
	slot := Slot{
		Index:      i,
		Name:       f.Name,
		Label:      model.FieldLabel(model.Field{Name: f.Name, Index: i}),
		Storage:    "field" + sfx,
		Setter:     aggregate + "Set" + sfx,
		Param:      "Field" + sfx,
		Type:       f.Type,
		HasDefault: f.HasDefault,
		Interface:  f.Interface,
	}
	if f.Resolved && f.Ref != nil {
		slot.Entry = aggregate + "Build" + sfx
		slot.Nested = f.Ref
	}
	return slot
}

func checkField(agg *model.Aggregate, f model.Field, i int) error {
	label := model.FieldLabel(model.Field{Name: f.Name, Index: i})
	fieldErr := func(err error, detail string) error {
		return &model.ShapeError{Aggregate: agg.Name, Field: label, Err: err, Detail: detail}
	}

	switch agg.Style {
	case model.StylePositional:
		if f.Name != "" {
			return fieldErr(model.ErrUnexpectedIdent, fmt.Sprintf("positional field named %q", f.Name))
		}
	default:
		if f.Name == "" {
			return fieldErr(model.ErrMissingIdent, "named field without a name")
		}
		if !token.IsIdentifier(f.Name) {
			return fieldErr(model.ErrMissingIdent, fmt.Sprintf("%q is not a Go identifier", f.Name))
		}
	}
	if f.Type == "" {
		return fieldErr(model.ErrMissingIdent, "field type")
	}
	return nil
}

func checkCollisions(agg *model.Aggregate, slots []Slot) []error {
	var errs []error
	owner := map[string]string{}
	claim := func(ident, by string) {
		if prev, ok := owner[ident]; ok {
			errs = append(errs, &model.ShapeError{
				Aggregate: agg.Name,
				Field:     by,
				Err:       model.ErrIdentCollision,
				Detail:    fmt.Sprintf("%q is also generated for %s", ident, prev),
			})
			return
		}
		owner[ident] = by
	}

	claim(ContinuationParam, "the continuation")
	for _, tp := range agg.TypeParams {
		claim(tp.Name, "type parameter "+tp.Name)
	}
	for _, s := range slots {
		claim(s.Param, "field "+s.Label)
	}

	// Marker fields share the builder struct's field namespace. Storage
	// fields use another prefix, so only markers can clash with each other.
	markers := map[string]string{}
	for _, s := range generics.New(agg.TypeParams).Slots() {
		if prev, ok := markers[s.Marker]; ok {
			errs = append(errs, &model.ShapeError{
				Aggregate: agg.Name,
				Field:     "type parameter " + s.Param.Name,
				Err:       model.ErrIdentCollision,
				Detail:    fmt.Sprintf("marker field %q is also generated for type parameter %s", s.Marker, prev),
			})
			continue
		}
		markers[s.Marker] = s.Param.Name
	}
	return errs
}
