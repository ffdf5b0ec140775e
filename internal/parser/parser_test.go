package parser

import (
	"strings"
	"testing"

	"github.com/seitarof/gen-builder/internal/model"
)

const (
	basicPkg  = "github.com/seitarof/gen-builder/testdata/parserbasic"
	nestedPkg = "github.com/seitarof/gen-builder/testdata/parsernested"
	embedPkg  = "github.com/seitarof/gen-builder/testdata/parserembed"
	clashPkg  = "github.com/seitarof/gen-builder/testdata/parserclash"
)

func TestParse_BasicStruct(t *testing.T) {
	p := New()

	agg, err := p.Parse(basicPkg, "User", Options{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if agg.Name != "User" || agg.PkgName != "parserbasic" || agg.PkgPath != basicPkg {
		t.Fatalf("unexpected aggregate header: %#v", agg)
	}
	if agg.Shape != model.ShapeStruct || agg.Style != model.StyleNamed {
		t.Fatalf("shape/style = %s/%s, want struct/named", agg.Shape, agg.Style)
	}

	if len(agg.Fields) != 9 {
		t.Fatalf("expected 9 fields (blank skipped), got %d", len(agg.Fields))
	}

	hidden := fieldByName(agg.Fields, "hidden")
	if hidden == nil {
		t.Fatal("unexported field should be kept: generated code lives in the same package")
	}

	profile := fieldByName(agg.Fields, "Profile")
	if profile == nil || profile.Ref == nil || profile.Ref.Name != "Profile" {
		t.Fatalf("Profile should reference its named type, got %#v", profile)
	}
	if profile.Nested != model.NestedForce {
		t.Fatalf("Profile nested mode = %v, want NestedForce", profile.Nested)
	}

	ptr := fieldByName(agg.Fields, "Ptr")
	if ptr == nil || ptr.Type != "*Profile" || ptr.Ref != nil {
		t.Fatalf("Ptr should be an unreferenced pointer field, got %#v", ptr)
	}

	tags := fieldByName(agg.Fields, "Tags")
	if tags == nil || !tags.HasDefault {
		t.Fatalf("Tags should carry a default, got %#v", tags)
	}

	scores := fieldByName(agg.Fields, "Scores")
	if scores == nil || !scores.HasDefault || scores.Nested != model.NestedOff {
		t.Fatalf("Scores tag options not parsed: %#v", scores)
	}

	errField := fieldByName(agg.Fields, "Err")
	if errField == nil || !errField.Interface {
		t.Fatalf("Err should be flagged as interface, got %#v", errField)
	}

	links := fieldByName(agg.Fields, "Links")
	if links == nil || links.Type != "map[string]*url.URL" {
		t.Fatalf("Links type should be qualified, got %#v", links)
	}

	wantImports := []string{"net/url"}
	if strings.Join(agg.Imports, ",") != strings.Join(wantImports, ",") {
		t.Fatalf("imports = %v, want %v", agg.Imports, wantImports)
	}

	for i, f := range agg.Fields {
		if f.Index != i {
			t.Fatalf("field %s index = %d, want %d", f.Name, f.Index, i)
		}
	}
}

func TestParse_PositionalStruct(t *testing.T) {
	p := New()

	agg, err := p.Parse(basicPkg, "Pair", Options{Positional: []string{"Pair"}})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if agg.Style != model.StylePositional {
		t.Fatalf("style = %s, want positional", agg.Style)
	}
	for _, f := range agg.Fields {
		if f.Name != "" {
			t.Fatalf("positional field should be unnamed, got %q", f.Name)
		}
	}
	if agg.Fields[0].Type != "string" || agg.Fields[1].Type != "uint32" {
		t.Fatalf("unexpected field types: %#v", agg.Fields)
	}
}

func TestParse_UnitStruct(t *testing.T) {
	agg, err := New().Parse(basicPkg, "Empty", Options{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if agg.Style != model.StyleUnit || len(agg.Fields) != 0 {
		t.Fatalf("Empty should be a unit aggregate, got %#v", agg)
	}
}

func TestParse_NonStructShapes(t *testing.T) {
	tests := []struct {
		typeName string
		want     model.Shape
	}{
		{typeName: "Color", want: "int"},
		{typeName: "Shape", want: model.ShapeInterface},
	}
	for _, tc := range tests {
		t.Run(tc.typeName, func(t *testing.T) {
			agg, err := New().Parse(basicPkg, tc.typeName, Options{})
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if agg.Shape != tc.want {
				t.Fatalf("shape = %s, want %s", agg.Shape, tc.want)
			}
		})
	}
}

func TestParse_GenericStruct(t *testing.T) {
	agg, err := New().Parse(basicPkg, "Box", Options{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(agg.TypeParams) != 2 {
		t.Fatalf("expected 2 type params, got %#v", agg.TypeParams)
	}
	if agg.TypeParams[0] != (model.TypeParam{Name: "T", Constraint: "any"}) {
		t.Fatalf("unexpected first type param: %#v", agg.TypeParams[0])
	}
	if agg.TypeParams[1] != (model.TypeParam{Name: "K", Constraint: "comparable"}) {
		t.Fatalf("unexpected second type param: %#v", agg.TypeParams[1])
	}

	item := fieldByName(agg.Fields, "Item")
	if item == nil || item.Type != "T" || !item.Interface {
		t.Fatalf("Item should be a bare type parameter, got %#v", item)
	}
	keys := fieldByName(agg.Fields, "Keys")
	if keys == nil || keys.Type != "[]K" || keys.Interface {
		t.Fatalf("Keys should be a slice of K, got %#v", keys)
	}
}

func TestParse_TypeAliasToStruct(t *testing.T) {
	agg, err := New().Parse(basicPkg, "ProfileAlias", Options{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if agg.Shape != model.ShapeStruct || fieldByName(agg.Fields, "BirthAt") == nil {
		t.Fatalf("alias should resolve to Profile's fields, got %#v", agg)
	}
}

func TestParse_EmbeddedFields(t *testing.T) {
	agg, err := New().Parse(embedPkg, "User", Options{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	base := fieldByName(agg.Fields, "Base")
	if base == nil || base.Type != "Base" || base.Ref == nil {
		t.Fatalf("embedded Base should be one field named after its type, got %#v", base)
	}
	innerA := fieldByName(agg.Fields, "InnerA")
	if innerA == nil || innerA.Type != "*InnerA" {
		t.Fatalf("embedded pointer should keep its pointer type, got %#v", innerA)
	}
	innerB := fieldByName(agg.Fields, "InnerB")
	if innerB == nil || !innerB.HasDefault {
		t.Fatalf("embedded InnerB should read its tag, got %#v", innerB)
	}
	if fieldByName(agg.Fields, "ID") != nil || fieldByName(agg.Fields, "Code") != nil {
		t.Fatal("promoted fields must not be flattened")
	}
}

func TestParseAll_SharesPackageLoad(t *testing.T) {
	aggs, err := New().ParseAll(nestedPkg, []string{"Root", "Child", "Leaf"}, Options{})
	if err != nil {
		t.Fatalf("ParseAll() error = %v", err)
	}
	wantOrder := []string{"Root", "Child", "Leaf"}
	for i, want := range wantOrder {
		if aggs[i].Name != want {
			t.Fatalf("order[%d] = %s, want %s", i, aggs[i].Name, want)
		}
	}
	child := fieldByName(aggs[0].Fields, "Child")
	if child == nil || child.Ref == nil || child.Ref.PkgPath != nestedPkg || child.Ref.Qualifier != "" {
		t.Fatalf("Root.Child should reference the local Child type, got %#v", child)
	}
}

func TestParse_TypeNotFound(t *testing.T) {
	p := New()

	_, err := p.Parse(basicPkg, "NotExist", Options{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParse_PackageNameClash(t *testing.T) {
	_, err := New().Parse(clashPkg, "Both", Options{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), `package name "rand" is used by both`) {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = New().ParseAll(clashPkg, []string{"OnlyMath", "OnlyLocal"}, Options{})
	if err == nil || !strings.Contains(err.Error(), `type "OnlyLocal"`) {
		t.Fatalf("clash across aggregates of one file should be reported, got %v", err)
	}

	for _, name := range []string{"OnlyMath", "OnlyLocal"} {
		agg, err := New().Parse(clashPkg, name, Options{})
		if err != nil {
			t.Fatalf("Parse(%s) error = %v", name, err)
		}
		if len(agg.Imports) != 1 {
			t.Fatalf("Parse(%s) imports = %v, want one", name, agg.Imports)
		}
	}
}

func TestParseFieldTag(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want fieldOptions
	}{
		{name: "no tag", tag: "", want: fieldOptions{}},
		{name: "other key", tag: `json:"name"`, want: fieldOptions{}},
		{name: "default", tag: `builder:"default"`, want: fieldOptions{hasDefault: true}},
		{name: "nested with spaces", tag: `json:"x" builder:" nested , default "`, want: fieldOptions{hasDefault: true, nested: model.NestedForce}},
		{name: "nonested", tag: `builder:"nonested"`, want: fieldOptions{nested: model.NestedOff}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := parseFieldTag(tc.tag)
			if got != tc.want {
				t.Fatalf("parseFieldTag() = %#v, want %#v", got, tc.want)
			}
		})
	}
}

func fieldByName(fields []model.Field, name string) *model.Field {
	for i := range fields {
		if fields[i].Name == name {
			return &fields[i]
		}
	}
	return nil
}
