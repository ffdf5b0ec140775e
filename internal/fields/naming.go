package fields

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/seitarof/gen-builder/internal/model"
)

const (
	// RuntimeQualifier is the package name generated code uses for the
	// runtime support package.
	RuntimeQualifier = "builder"
	// RuntimePath is the import path of the runtime support package.
	RuntimePath = "github.com/seitarof/gen-builder/builder"

	// ContinuationParam is the builder type parameter holding the result type
	// of the stored callback.
	ContinuationParam = "Out"
	// CallbackField stores the continuation inside every builder.
	CallbackField = "callback"
)

// BuilderName returns the generated builder type name for an aggregate.
func BuilderName(aggregate string) string { return aggregate + "Builder" }

// InitName returns the alias naming the builder with every field unset.
func InitName(aggregate string) string { return aggregate + "BuilderInit" }

// FinishName returns the terminal Build function name.
func FinishName(aggregate string) string { return aggregate + "Build" }

// ConstructorName returns the identity-callback constructor name. It keeps
// the aggregate's visibility.
func ConstructorName(aggregate string) string {
	if model.IsExported(aggregate) {
		return "New" + aggregate + "Builder"
	}
	return "new" + upperFirst(aggregate) + "Builder"
}

// CallbackConstructorName returns the constructor taking a continuation.
func CallbackConstructorName(aggregate string) string {
	return ConstructorName(aggregate) + "WithCallback"
}

// UnsetType renders the unset marker for a declared type.
func UnsetType(typ string) string {
	return RuntimeQualifier + ".Unset[" + typ + "]"
}

func suffix(f model.Field, i int) string {
	if f.Name == "" {
		return strconv.Itoa(i)
	}
	return upperFirst(f.Name)
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
