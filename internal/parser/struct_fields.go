package parser

import (
	"reflect"

	"go/types"

	"github.com/seitarof/gen-builder/internal/model"
)

const tagKey = "builder"

// fieldOptions are the settings read from a `builder:"..."` struct tag.
type fieldOptions struct {
	hasDefault bool
	nested     model.NestedMode
}

func parseFieldTag(tag string) fieldOptions {
	var opts fieldOptions
	raw, ok := reflect.StructTag(tag).Lookup(tagKey)
	if !ok {
		return opts
	}
	for _, part := range splitTag(raw) {
		switch part {
		case "default":
			opts.hasDefault = true
		case "nested":
			opts.nested = model.NestedForce
		case "nonested":
			opts.nested = model.NestedOff
		}
	}
	return opts
}

// collectFields lists every field of st in declaration order. Embedded fields
// are kept whole and named after their type; blank fields are only kept for
// positional aggregates, whose unkeyed literal needs every field.
func collectFields(
	st *types.Struct,
	qualifier types.Qualifier,
	positional bool,
	imports importSet,
) []model.Field {
	fields := make([]model.Field, 0, st.NumFields())
	for i := 0; i < st.NumFields(); i++ {
		v := st.Field(i)
		if v.Name() == "_" && !positional {
			continue
		}

		opts := parseFieldTag(st.Tag(i))
		field := model.Field{
			Index:      len(fields),
			Type:       types.TypeString(v.Type(), qualifier),
			HasDefault: opts.hasDefault,
			Interface:  types.IsInterface(v.Type()),
			Nested:     opts.nested,
			Ref:        typeRef(v.Type(), qualifier),
		}
		if !positional {
			field.Name = v.Name()
		}
		imports.add(v.Type())
		fields = append(fields, field)
	}
	return fields
}
