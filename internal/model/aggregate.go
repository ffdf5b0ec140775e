package model

import (
	"unicode"
	"unicode/utf8"
)

// Aggregate describes one type a builder is generated for.
type Aggregate struct {
	Name       string
	PkgName    string
	PkgPath    string
	Shape      Shape
	Style      Style
	Fields     []Field
	TypeParams []TypeParam
	// Imports lists the package paths the field types and constraints refer to.
	Imports []string
}

// Exported reports whether the aggregate is visible outside its package.
func (a *Aggregate) Exported() bool {
	return IsExported(a.Name)
}

// Key identifies the aggregate across one generation run.
func (a *Aggregate) Key() TypeKey {
	return TypeKey{PkgPath: a.PkgPath, Name: a.Name}
}

// Field is one field of an aggregate, in declaration order.
type Field struct {
	// Name is empty for positional fields.
	Name  string
	Index int
	// Type is the Go type expression as written inside the aggregate's package.
	Type       string
	HasDefault bool
	// Interface is set when Type is an interface or a bare type parameter,
	// which cannot appear as a union term in a constraint.
	Interface bool
	Nested    NestedMode
	// Ref is set when Type names a defined type.
	Ref *TypeRef
	// Resolved is set by the resolver when the field gets a nested builder entry.
	Resolved bool
}

// TypeParam is one of the aggregate's own type parameters.
type TypeParam struct {
	Name       string
	Constraint string
}

// TypeRef points at a defined (possibly instantiated) type.
type TypeRef struct {
	PkgPath string
	// Qualifier is the package name used in the aggregate's file, empty for
	// the aggregate's own package.
	Qualifier string
	Name      string
	TypeArgs  []string
}

// Key identifies the referenced type.
func (r *TypeRef) Key() TypeKey {
	return TypeKey{PkgPath: r.PkgPath, Name: r.Name}
}

// Qualified prefixes ident with the reference's package qualifier.
func (r *TypeRef) Qualified(ident string) string {
	if r.Qualifier == "" {
		return ident
	}
	return r.Qualifier + "." + ident
}

// TypeKey uniquely identifies a defined type.
type TypeKey struct {
	PkgPath string
	Name    string
}

// Shape is the kind of type declaration an aggregate was read from.
type Shape string

const (
	ShapeStruct    Shape = "struct"
	ShapeEnum      Shape = "enum"
	ShapeUnion     Shape = "union"
	ShapeInterface Shape = "interface"
	ShapeOther     Shape = "other"
)

// Style tells how the finished aggregate is constructed.
type Style int

const (
	StyleNamed Style = iota
	StylePositional
	StyleUnit
)

func (s Style) String() string {
	switch s {
	case StyleNamed:
		return "named"
	case StylePositional:
		return "positional"
	case StyleUnit:
		return "unit"
	default:
		return "unknown"
	}
}

// NestedMode is the per-field opt-in for nested builder entries.
type NestedMode int

const (
	NestedAuto NestedMode = iota
	NestedForce
	NestedOff
)

// IsExported reports whether ident starts with an upper-case letter.
func IsExported(ident string) bool {
	r, _ := utf8.DecodeRuneInString(ident)
	return unicode.IsUpper(r)
}
