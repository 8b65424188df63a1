package result

/*
{-| A `Result` is the result of a computation that may fail. This is a great
way to manage errors in Elm.

# Type and Constructors
@docs Result

# Mapping
@docs map

# Chaining
@docs andThen

# Handling Errors
@docs withDefault, toMaybe, fromMaybe, mapError
-}
*/

import "github.com/npillmayer/cons/maybe"

// Result is a sealed variant type: Ok and Err are the only two shapes, both
// created through the constructor functions of this package.
type Result[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Map(func(T) T) Result[T]
}

type result[T any] struct {
	value T
	err   error
}

func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

// WithDefault returns the value held by r, or def if r is an Err.
func (r result[T]) WithDefault(def T) T {
	if r.err == nil {
		return r.value
	}
	return def
}

func (r result[T]) Map(f func(T) T) Result[T] {
	if r.err == nil {
		return Ok(f(r.value))
	}
	return r
}

// Map transforms the value held by x, if any. An Err passes through
// untouched.
func Map[T, S any](f func(T) S, x Result[T]) Result[S] {
	var v T
	var e error
	switch m := x.Match(); m {
	case m.Ok(&v):
		return Ok(f(v))
	case m.Err(&e):
	}
	return Err[S](e)
}

// AndThen chains a Result into a function which itself may fail.
func AndThen[T, S any](f func(T) Result[S], x Result[T]) Result[S] {
	var v T
	var e error
	switch m := x.Match(); m {
	case m.Ok(&v):
		return f(v)
	case m.Err(&e):
	}
	return Err[S](e)
}

// MapError transforms the error held by x, if any. An Ok passes through
// untouched.
func MapError[T any](f func(error) error, x Result[T]) Result[T] {
	var e error
	switch m := x.Match(); m {
	case m.Ok(nil):
		return x
	case m.Err(&e):
	}
	return Err[T](f(e))
}

// ToMaybe drops the error information from x.
func ToMaybe[T any](x Result[T]) maybe.Maybe[T] {
	var v T
	switch m := x.Match(); m {
	case m.Ok(&v):
		return maybe.Just(v)
	case m.Err(nil):
	}
	return maybe.Nothing[T]()
}

// FromMaybe tags an absent value with err.
func FromMaybe[T any](err error, x maybe.Maybe[T]) Result[T] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return Ok(v)
	case m.Nothing():
	}
	return Err[T](err)
}

// --- Matching --------------------------------------------------------------

type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

// matcher points to the result instead of embedding it. Match-statements
// compare matchers as interface values, which must not trap for value types
// that are not comparable.
type matcher[T any] struct {
	r *result[T]
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: &r}
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		if v != nil {
			*v = rm.r.value
		}
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		if err != nil {
			*err = rm.r.err
		}
		return rm
	}
	return nil
}
