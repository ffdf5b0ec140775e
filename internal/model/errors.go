package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidShape is returned for aggregates that are not structs.
	ErrInvalidShape = errors.New("invalid shape")
	// ErrMissingIdent is returned when a name is required but absent.
	ErrMissingIdent = errors.New("missing identifier")
	// ErrUnexpectedIdent is returned when a positional field carries a name.
	ErrUnexpectedIdent = errors.New("unexpected identifier")
	// ErrIdentCollision is returned when two generated identifiers clash.
	ErrIdentCollision = errors.New("identifier collision")
)

// ShapeError reports one malformed aggregate or field.
type ShapeError struct {
	Aggregate string
	// Field is the field name or "#<index>", empty for aggregate-level errors.
	Field  string
	Err    error
	Detail string
}

func (e *ShapeError) Error() string {
	var b strings.Builder
	if e.Aggregate != "" {
		b.WriteString(e.Aggregate)
	} else {
		b.WriteString("<unnamed>")
	}
	if e.Field != "" {
		b.WriteString(".")
		b.WriteString(e.Field)
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

func (e *ShapeError) Unwrap() error { return e.Err }

// InvalidShape builds the error for a non-struct aggregate.
func InvalidShape(aggregate string, expected, found Shape) *ShapeError {
	return &ShapeError{
		Aggregate: aggregate,
		Err:       ErrInvalidShape,
		Detail:    fmt.Sprintf("expected %s, found %s", expected, found),
	}
}

// FieldLabel names a field in diagnostics.
func FieldLabel(f Field) string {
	if f.Name != "" {
		return f.Name
	}
	return fmt.Sprintf("#%d", f.Index)
}
