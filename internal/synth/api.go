// Package synth turns aggregate descriptions into the declarations of their
// type-state builders. It performs no I/O; the generator package renders the
// result.
package synth

import (
	"sort"

	"go.uber.org/multierr"

	"github.com/seitarof/gen-builder/internal/fields"
	"github.com/seitarof/gen-builder/internal/generics"
	"github.com/seitarof/gen-builder/internal/model"
)

// File is everything generated into one output file.
type File struct {
	Package string   `json:"package"`
	Imports []string `json:"imports"`
	APIs    []*API   `json:"apis"`
}

// API is the generated surface of one aggregate.
type API struct {
	Aggregate string    `json:"aggregate"`
	Builder   TypeDecl  `json:"builder"`
	Init      AliasDecl `json:"init"`
	Funcs     []Func    `json:"funcs"`
	// Notes are non-fatal remarks about the generated code.
	Notes []string `json:"notes,omitempty"`
}

// TypeDecl is a generic struct declaration.
type TypeDecl struct {
	Doc        string           `json:"doc"`
	Name       string           `json:"name"`
	TypeParams []generics.Param `json:"typeParams"`
	Fields     []generics.Param `json:"fields"`
}

// AliasDecl is a generic type alias declaration.
type AliasDecl struct {
	Doc        string           `json:"doc"`
	Name       string           `json:"name"`
	TypeParams []generics.Param `json:"typeParams"`
	Target     string           `json:"target"`
}

// FuncKind classifies generated functions.
type FuncKind string

const (
	KindConstructor FuncKind = "constructor"
	KindSetter      FuncKind = "setter"
	KindEntry       FuncKind = "entry"
	KindFinish      FuncKind = "finish"
)

// Func is a generated generic function.
type Func struct {
	Kind       FuncKind         `json:"kind"`
	Doc        string           `json:"doc"`
	Name       string           `json:"name"`
	TypeParams []generics.Param `json:"typeParams"`
	Params     []generics.Param `json:"params"`
	Result     string           `json:"result"`
	Body       []string         `json:"body"`
}

// Func returns the first generated function called name.
func (a *API) Func(name string) (Func, bool) {
	for _, f := range a.Funcs {
		if f.Name == name {
			return f, true
		}
	}
	return Func{}, false
}

// Synthesize derives the builder API of one aggregate.
func Synthesize(agg *model.Aggregate) (*API, error) {
	set, err := fields.Encode(agg)
	if err != nil {
		return nil, err
	}
	c := &emitter{agg: agg, fields: set, generics: generics.New(agg.TypeParams)}

	api := &API{
		Aggregate: c.aggregateType(),
		Builder:   c.builderType(),
		Init:      c.initAlias(),
	}
	api.Funcs = append(api.Funcs, c.constructors()...)
	for _, slot := range set.All() {
		api.Funcs = append(api.Funcs, c.setter(slot))
		if slot.Nested != nil {
			api.Funcs = append(api.Funcs, c.nestedEntry(slot))
		}
	}
	finish, notes := c.finish()
	api.Funcs = append(api.Funcs, finish)
	api.Notes = notes
	return api, nil
}

// SynthesizeFile derives every aggregate's API. Errors of all aggregates are
// combined.
func SynthesizeFile(pkgName string, aggs []*model.Aggregate) (*File, error) {
	file := &File{Package: pkgName}
	imports := map[string]struct{}{fields.RuntimePath: {}}

	var errs []error
	for _, agg := range aggs {
		api, err := Synthesize(agg)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		file.APIs = append(file.APIs, api)
		for _, path := range agg.Imports {
			imports[path] = struct{}{}
		}
	}
	if err := multierr.Combine(errs...); err != nil {
		return nil, err
	}

	for path := range imports {
		file.Imports = append(file.Imports, path)
	}
	sort.Strings(file.Imports)
	return file, nil
}

type emitter struct {
	agg      *model.Aggregate
	fields   *fields.Set
	generics *generics.Encoder
}

func (c *emitter) aggregateType() string {
	return generics.Instantiate(c.agg.Name, c.generics.Use())
}

// builderRef renders the builder type with out as continuation result and
// states as the per-field state arguments.
func (c *emitter) builderRef(out string, states []string) string {
	args := append([]string{out}, states...)
	return generics.Instantiate(fields.BuilderName(c.agg.Name), c.generics.Use(args...))
}

func (c *emitter) unsetStates() []string {
	return fields.Map(c.fields, fields.Slot.UnsetType)
}

func (c *emitter) continuationParam() generics.Param {
	return generics.Param{Name: fields.ContinuationParam, Type: "any"}
}

func (c *emitter) literal(prefix string, elems []string, suffix string) []string {
	lines := make([]string, 0, len(elems)+2)
	lines = append(lines, prefix+"{")
	for _, e := range elems {
		lines = append(lines, "\t"+e+",")
	}
	return append(lines, "}"+suffix)
}
