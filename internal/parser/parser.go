package parser

import (
	"fmt"
	"sort"
	"strings"

	"go/types"

	"golang.org/x/tools/go/packages"

	"github.com/seitarof/gen-builder/internal/model"
)

// Parser extracts aggregate descriptions from Go packages.
type Parser interface {
	Parse(pkgPath string, typeName string, opts Options) (*model.Aggregate, error)
	ParseAll(pkgPath string, typeNames []string, opts Options) ([]*model.Aggregate, error)
}

// Options tunes how declarations are read.
type Options struct {
	// Positional lists the types built with unkeyed composite literals.
	Positional []string
}

func (o Options) positional(typeName string) bool {
	for _, name := range o.Positional {
		if name == typeName {
			return true
		}
	}
	return false
}

type parserImpl struct{}

// New returns default parser.
func New() Parser {
	return &parserImpl{}
}

func (p *parserImpl) Parse(pkgPath string, typeName string, opts Options) (*model.Aggregate, error) {
	cache := map[string]*packages.Package{}
	return p.parseWithCache(pkgPath, typeName, opts, cache, map[string]string{})
}

func (p *parserImpl) ParseAll(pkgPath string, typeNames []string, opts Options) ([]*model.Aggregate, error) {
	cache := map[string]*packages.Package{}
	// All aggregates end up in one generated file, so package names must be
	// unique across them.
	names := map[string]string{}
	out := make([]*model.Aggregate, 0, len(typeNames))
	for _, name := range typeNames {
		agg, err := p.parseWithCache(pkgPath, name, opts, cache, names)
		if err != nil {
			return nil, err
		}
		out = append(out, agg)
	}
	return out, nil
}

func (p *parserImpl) parseWithCache(
	pkgPath string,
	typeName string,
	opts Options,
	cache map[string]*packages.Package,
	names map[string]string,
) (*model.Aggregate, error) {
	pkg, err := p.loadPackage(pkgPath, cache)
	if err != nil {
		return nil, err
	}

	if pkg.Types == nil || pkg.Types.Scope() == nil {
		return nil, fmt.Errorf("type info unavailable for package %q", pkgPath)
	}

	obj := pkg.Types.Scope().Lookup(typeName)
	if obj == nil {
		return nil, fmt.Errorf("type %q not found in package %q", typeName, pkgPath)
	}
	if _, ok := obj.(*types.TypeName); !ok {
		return nil, fmt.Errorf("%q in package %q is not a type", typeName, pkgPath)
	}

	qualifier := func(p *types.Package) string {
		if p == nil {
			return ""
		}
		if pkg.Types != nil && p.Path() == pkg.Types.Path() {
			return ""
		}
		return p.Name()
	}

	agg := &model.Aggregate{
		Name:    typeName,
		PkgPath: pkg.Types.Path(),
		PkgName: pkg.Name,
	}
	imports := importSet{self: pkg.Types.Path(), paths: map[string]string{}, names: names}

	agg.TypeParams = typeParams(obj.Type(), qualifier, imports)

	st, ok := extractStructType(obj.Type())
	if !ok {
		agg.Shape = shapeOf(obj.Type())
		return agg, nil
	}
	agg.Shape = model.ShapeStruct

	positional := opts.positional(typeName)
	agg.Fields = collectFields(st, qualifier, positional, imports)
	switch {
	case len(agg.Fields) == 0:
		agg.Style = model.StyleUnit
	case positional:
		agg.Style = model.StylePositional
	default:
		agg.Style = model.StyleNamed
	}
	if err := imports.conflict(); err != nil {
		return nil, fmt.Errorf("type %q: %w", typeName, err)
	}
	agg.Imports = imports.sorted()
	return agg, nil
}

func (p *parserImpl) loadPackage(pkgPath string, cache map[string]*packages.Package) (*packages.Package, error) {
	if cached, ok := cache[pkgPath]; ok {
		return cached, nil
	}

	cfg := &packages.Config{
		Mode: packages.NeedName |
			packages.NeedTypes |
			packages.NeedModule,
	}

	pkgs, err := packages.Load(cfg, pkgPath)
	if err != nil {
		return nil, fmt.Errorf("load package %q: %w", pkgPath, err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		return nil, fmt.Errorf("package %q has compilation errors", pkgPath)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("package %q not found", pkgPath)
	}
	cache[pkgPath] = pkgs[0]
	return pkgs[0], nil
}

func extractStructType(t types.Type) (*types.Struct, bool) {
	switch v := t.(type) {
	case *types.Alias:
		return extractStructType(v.Rhs())
	case *types.Named:
		return extractStructType(v.Underlying())
	case *types.Struct:
		return v, true
	default:
		return nil, false
	}
}

func typeParams(t types.Type, qualifier types.Qualifier, imports importSet) []model.TypeParam {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok || named.TypeParams().Len() == 0 {
		return nil
	}
	list := named.TypeParams()
	out := make([]model.TypeParam, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		tp := list.At(i)
		imports.add(tp.Constraint())
		out = append(out, model.TypeParam{
			Name:       tp.Obj().Name(),
			Constraint: types.TypeString(tp.Constraint(), qualifier),
		})
	}
	return out
}

func shapeOf(t types.Type) model.Shape {
	switch u := t.Underlying().(type) {
	case *types.Interface:
		return model.ShapeInterface
	case *types.Basic:
		return model.Shape(u.Name())
	case *types.Pointer:
		return "pointer"
	case *types.Slice:
		return "slice"
	case *types.Array:
		return "array"
	case *types.Map:
		return "map"
	case *types.Chan:
		return "chan"
	case *types.Signature:
		return "func"
	default:
		return model.ShapeOther
	}
}

// typeRef describes t when it is a defined type, so the resolver can match it
// against other aggregates.
func typeRef(t types.Type, qualifier types.Qualifier) *model.TypeRef {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return nil
	}
	obj := named.Obj()
	ref := &model.TypeRef{Name: obj.Name()}
	if obj.Pkg() != nil {
		ref.PkgPath = obj.Pkg().Path()
		ref.Qualifier = qualifier(obj.Pkg())
	}
	args := named.TypeArgs()
	for i := 0; i < args.Len(); i++ {
		ref.TypeArgs = append(ref.TypeArgs, types.TypeString(args.At(i), qualifier))
	}
	return ref
}

// importSet collects the packages a generated file refers to. Field types
// are rendered with the package name as qualifier, so names maps every name
// to the single path allowed to use it.
type importSet struct {
	self string
	// paths maps import path to package name.
	paths map[string]string
	names map[string]string
}

func (s importSet) add(t types.Type) {
	s.walk(t, map[types.Type]bool{})
}

func (s importSet) walk(t types.Type, seen map[types.Type]bool) {
	if t == nil || seen[t] {
		return
	}
	seen[t] = true

	switch v := t.(type) {
	case *types.Alias:
		s.addPkg(v.Obj().Pkg())
		args := v.TypeArgs()
		for i := 0; i < args.Len(); i++ {
			s.walk(args.At(i), seen)
		}
	case *types.Named:
		s.addPkg(v.Obj().Pkg())
		args := v.TypeArgs()
		for i := 0; i < args.Len(); i++ {
			s.walk(args.At(i), seen)
		}
	case *types.Pointer:
		s.walk(v.Elem(), seen)
	case *types.Slice:
		s.walk(v.Elem(), seen)
	case *types.Array:
		s.walk(v.Elem(), seen)
	case *types.Map:
		s.walk(v.Key(), seen)
		s.walk(v.Elem(), seen)
	case *types.Chan:
		s.walk(v.Elem(), seen)
	case *types.Tuple:
		for i := 0; i < v.Len(); i++ {
			s.walk(v.At(i).Type(), seen)
		}
	case *types.Signature:
		s.walk(v.Params(), seen)
		s.walk(v.Results(), seen)
	case *types.Struct:
		for i := 0; i < v.NumFields(); i++ {
			s.walk(v.Field(i).Type(), seen)
		}
	case *types.Interface:
		for i := 0; i < v.NumEmbeddeds(); i++ {
			s.walk(v.EmbeddedType(i), seen)
		}
		for i := 0; i < v.NumExplicitMethods(); i++ {
			s.walk(v.ExplicitMethod(i).Type(), seen)
		}
	case *types.Union:
		for i := 0; i < v.Len(); i++ {
			s.walk(v.Term(i).Type(), seen)
		}
	}
}

func (s importSet) addPkg(pkg *types.Package) {
	if pkg == nil || pkg.Path() == s.self {
		return
	}
	s.paths[pkg.Path()] = pkg.Name()
	if _, ok := s.names[pkg.Name()]; !ok {
		s.names[pkg.Name()] = pkg.Path()
	}
}

// conflict reports two referenced packages sharing a name.
func (s importSet) conflict() error {
	for _, path := range s.sorted() {
		name := s.paths[path]
		if owner := s.names[name]; owner != path {
			return fmt.Errorf("package name %q is used by both %q and %q", name, owner, path)
		}
	}
	return nil
}

func (s importSet) sorted() []string {
	out := make([]string, 0, len(s.paths))
	for path := range s.paths {
		out = append(out, path)
	}
	sort.Strings(out)
	return out
}

func splitTag(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
