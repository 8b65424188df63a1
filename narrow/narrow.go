// Package narrow provides checked narrowing of interface values.
//
// Go widens implicitly: any value may be bound to a variable of a matching
// interface type, giving up static knowledge of the concrete type. Narrowing
// back is a runtime question, and a failed narrowing must surface at the
// point of the attempt, never silently. Clients choose how failure is
// reported: As returns a Result, Refine hands the original value back,
// MustAs panics.
package narrow

import (
	"fmt"
	"reflect"

	"github.com/npillmayer/cons/either"
	"github.com/npillmayer/cons/result"
)

// TypeMismatch reports a failed narrowing: a value of dynamic type Got
// cannot be viewed as type Want.
type TypeMismatch struct {
	Want string
	Got  string
}

func (e TypeMismatch) Error() string {
	return fmt.Sprintf("cannot view %s as %s", e.Got, e.Want)
}

// As views v as a value of type T. It returns Ok with the narrowed view, or
// Err holding a TypeMismatch if the view is invalid.
func As[T any](v any) result.Result[T] {
	if t, ok := v.(T); ok {
		return result.Ok(t)
	}
	return result.Err[T](mismatch[T](v))
}

// Is reports whether v may be viewed as a value of type T.
func Is[T any](v any) bool {
	_, ok := v.(T)
	return ok
}

// MustAs views v as a value of type T, panicking with a TypeMismatch if the
// view is invalid. Clients who cannot afford the panic use As instead.
func MustAs[T any](v any) T {
	t, ok := v.(T)
	if !ok {
		panic(mismatch[T](v))
	}
	return t
}

// Refine views v as a value of type T, handing the original value back on
// failure: Right holds the narrowed view, Left the untouched input.
func Refine[T any](v any) either.Either[any, T] {
	if t, ok := v.(T); ok {
		return either.Right[any](t)
	}
	return either.Left[any, T](v)
}

// mismatch names the two types involved in a failed narrowing. The wanted
// type is recovered through a pointer so that interface types print
// correctly.
func mismatch[T any](v any) TypeMismatch {
	got := "<nil>"
	if v != nil {
		got = reflect.TypeOf(v).String()
	}
	return TypeMismatch{
		Want: reflect.TypeOf((*T)(nil)).Elem().String(),
		Got:  got,
	}
}
