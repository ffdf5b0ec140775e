package descfile

// File is the YAML aggregate description format.
type File struct {
	Package string `yaml:"package"`
	// Path is the import path of the generated package. It keys nested
	// references; it may be left empty when every aggregate lives in the
	// same file.
	Path       string      `yaml:"path"`
	Imports    []string    `yaml:"imports"`
	Aggregates []Aggregate `yaml:"aggregates"`
}

// Aggregate describes one aggregate of the file.
type Aggregate struct {
	Name       string      `yaml:"name"`
	Kind       string      `yaml:"kind"`
	Style      string      `yaml:"style"`
	TypeParams []TypeParam `yaml:"type_params"`
	Fields     []Field     `yaml:"fields"`
}

type TypeParam struct {
	Name       string `yaml:"name"`
	Constraint string `yaml:"constraint"`
}

// Field is one field. Name is omitted for positional aggregates.
type Field struct {
	Name string `yaml:"name"`
	// Type is a Go type expression. Inside a flow mapping, quote expressions
	// with brackets: {type: "Box[int]"}.
	Type    string `yaml:"type"`
	Default bool   `yaml:"default"`
	// Nested forces (true) or disables (false) the nested builder entry.
	Nested    *bool `yaml:"nested"`
	Interface bool  `yaml:"interface"`
}
