// Package descfile reads aggregate descriptions from YAML, for aggregates
// that are not declared in a loadable Go package yet.
package descfile

import (
	"fmt"
	"os"
	"path"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/seitarof/gen-builder/internal/model"
)

// Loader turns a description file into aggregates.
type Loader interface {
	Load(filename string) ([]*model.Aggregate, error)
}

type loaderImpl struct{}

// New returns the YAML loader.
func New() Loader {
	return &loaderImpl{}
}

func (l *loaderImpl) Load(filename string) ([]*model.Aggregate, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read description file %s: %w", filename, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return f.Model()
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse description YAML: %w", err)
	}
	if f.Package == "" {
		return nil, fmt.Errorf("description: package is required")
	}
	return &f, nil
}

// Model converts the description into the model. Only syntax problems
// are reported here; shape problems are left to the field encoder.
func (f *File) Model() ([]*model.Aggregate, error) {
	qualifiers := make(map[string]string, len(f.Imports))
	for _, p := range f.Imports {
		qualifiers[path.Base(p)] = p
	}
	imports := append([]string(nil), f.Imports...)
	sort.Strings(imports)

	out := make([]*model.Aggregate, 0, len(f.Aggregates))
	for _, a := range f.Aggregates {
		agg := &model.Aggregate{
			Name:    a.Name,
			PkgName: f.Package,
			PkgPath: f.Path,
			Shape:   shape(a.Kind),
			Imports: imports,
		}

		style, err := style(a.Style, len(a.Fields))
		if err != nil {
			return nil, fmt.Errorf("aggregate %s: %w", a.Name, err)
		}
		agg.Style = style

		typeParams := map[string]bool{}
		for _, tp := range a.TypeParams {
			constraint := tp.Constraint
			if constraint == "" {
				constraint = "any"
			}
			agg.TypeParams = append(agg.TypeParams, model.TypeParam{Name: tp.Name, Constraint: constraint})
			typeParams[tp.Name] = true
		}

		r := refParser{pkgPath: f.Path, qualifiers: qualifiers, typeParams: typeParams}
		for i, fd := range a.Fields {
			field := model.Field{
				Name:       fd.Name,
				Index:      i,
				Type:       fd.Type,
				HasDefault: fd.Default,
				Interface:  fd.Interface,
				Nested:     nestedMode(fd.Nested),
			}
			if fd.Type != "" {
				info, err := r.parse(fd.Type)
				if err != nil {
					return nil, fmt.Errorf("aggregate %s field %s: %w", a.Name, model.FieldLabel(field), err)
				}
				field.Ref = info.ref
				field.Interface = field.Interface || info.iface
			}
			agg.Fields = append(agg.Fields, field)
		}
		out = append(out, agg)
	}
	return out, nil
}

func shape(kind string) model.Shape {
	switch kind {
	case "", "struct":
		return model.ShapeStruct
	case "enum":
		return model.ShapeEnum
	case "union":
		return model.ShapeUnion
	case "interface":
		return model.ShapeInterface
	default:
		return model.Shape(kind)
	}
}

func style(s string, fieldCount int) (model.Style, error) {
	switch s {
	case "":
		if fieldCount == 0 {
			return model.StyleUnit, nil
		}
		return model.StyleNamed, nil
	case "named":
		return model.StyleNamed, nil
	case "positional":
		return model.StylePositional, nil
	case "unit":
		return model.StyleUnit, nil
	default:
		return 0, fmt.Errorf("unknown style %q", s)
	}
}

func nestedMode(v *bool) model.NestedMode {
	switch {
	case v == nil:
		return model.NestedAuto
	case *v:
		return model.NestedForce
	default:
		return model.NestedOff
	}
}
