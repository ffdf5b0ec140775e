// Package builder holds the runtime support used by code generated with
// gen-builder.
//
// A generated builder carries one type parameter per field of the built
// aggregate. The parameter is Unset[T] until the field's setter has run and T
// afterwards, so a builder that is missing a required field has a type the
// generated Build function does not accept.
package builder

// Unset marks a field slot that has not been assigned. It has no runtime
// representation and remembers only the field's declared type.
type Unset[T any] struct{}

func (Unset[T]) String() string { return "Unset" }

func (Unset[T]) unset() {}

type unsetMarker interface {
	unset()
}

// Callback receives the finished aggregate and produces the builder's result.
type Callback[T, O any] func(T) O

// Identity is the callback installed by plain New<Type>Builder constructors.
func Identity[T any](v T) T { return v }

// Defaulter lets a type choose the value an omitted default field gets.
// Default is called on the zero value of T (or on a pointer to it).
type Defaulter[T any] interface {
	Default() T
}

// Default returns the default value for T: the result of Default() when T or
// *T implements Defaulter[T], the zero value otherwise.
func Default[T any]() T {
	var zero T
	if d, ok := any(zero).(Defaulter[T]); ok {
		return d.Default()
	}
	if d, ok := any(&zero).(Defaulter[T]); ok {
		return d.Default()
	}
	return zero
}

// OrDefault resolves a field slot: a set slot yields its value, an Unset slot
// yields Default[T]().
//
// The decision is made at run time. Generated code usually constrains slot to
// Unset[T] or T, but for interface types and bare type parameters the
// constraint is any: then an Unset value of any type, even one supplied as a
// field value, yields the default, and a slot of an unrelated type yields the
// zero value of T.
func OrDefault[T any](slot any) T {
	if IsUnset(slot) {
		return Default[T]()
	}
	v, _ := slot.(T)
	return v
}

// IsUnset reports whether slot is an Unset marker.
func IsUnset(slot any) bool {
	_, ok := slot.(unsetMarker)
	return ok
}
