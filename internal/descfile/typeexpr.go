package descfile

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/types"

	"github.com/seitarof/gen-builder/internal/model"
)

type typeInfo struct {
	ref   *model.TypeRef
	iface bool
}

type refParser struct {
	pkgPath    string
	qualifiers map[string]string
	typeParams map[string]bool
}

// parse reads a type expression. Only a (possibly qualified, possibly
// instantiated) defined type yields a reference.
func (r refParser) parse(expr string) (typeInfo, error) {
	x, err := parser.ParseExpr(expr)
	if err != nil {
		return typeInfo{}, fmt.Errorf("type %q: %w", expr, err)
	}

	var args []string
	switch v := x.(type) {
	case *ast.IndexExpr:
		x = v.X
		args = []string{types.ExprString(v.Index)}
	case *ast.IndexListExpr:
		x = v.X
		for _, idx := range v.Indices {
			args = append(args, types.ExprString(idx))
		}
	}

	switch v := x.(type) {
	case *ast.Ident:
		if r.typeParams[v.Name] {
			return typeInfo{iface: true}, nil
		}
		if obj := types.Universe.Lookup(v.Name); obj != nil {
			return typeInfo{iface: types.IsInterface(obj.Type())}, nil
		}
		return typeInfo{ref: &model.TypeRef{PkgPath: r.pkgPath, Name: v.Name, TypeArgs: args}}, nil
	case *ast.SelectorExpr:
		pkg, ok := v.X.(*ast.Ident)
		if !ok {
			return typeInfo{}, fmt.Errorf("type %q: unsupported selector", expr)
		}
		pkgPath, ok := r.qualifiers[pkg.Name]
		if !ok {
			pkgPath = pkg.Name
		}
		return typeInfo{ref: &model.TypeRef{
			PkgPath:   pkgPath,
			Qualifier: pkg.Name,
			Name:      v.Sel.Name,
			TypeArgs:  args,
		}}, nil
	case *ast.InterfaceType:
		return typeInfo{iface: true}, nil
	default:
		return typeInfo{}, nil
	}
}
