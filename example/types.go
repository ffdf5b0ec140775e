// Package example holds aggregates with committed generated builders. Its
// tests exercise the generated API at run time and through the type checker.
package example

//go:generate go run github.com/seitarof/gen-builder/cmd/gen-builder --path . -t Unit,Pair,FieldStruct,Defaulted,Inner,Outer,Envelope,Box --positional Pair -o builder_gen.go

type Unit struct{}

// Pair is built positionally: its setters are PairSet0 and PairSet1.
type Pair struct {
	First  string
	Second uint32
}

type FieldStruct struct {
	Name  string
	Value uint32
}

type Defaulted struct {
	Name  string
	Value uint32 `builder:"default"`
	Port  Port   `builder:"default"`
}

// Port defaults to 8080 when a builder leaves it unset.
type Port uint16

func (Port) Default() Port { return 8080 }

type Inner struct {
	Name  string
	Value uint32
}

type Outer struct {
	Inner Inner
	Note  string `builder:"default"`
}

type Envelope struct {
	ID    int
	Outer Outer
}

type Box[T any] struct {
	Item  T
	Label string `builder:"default"`
}
