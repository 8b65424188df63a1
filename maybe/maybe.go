package maybe

/*
module Maybe exposing (Maybe(Just,Nothing), andThen, map, withDefault, oneOf)

{-| This library fills a bunch of important niches in Elm. A `Maybe` can help
you with optional arguments, error handling, and records with optional fields.

# Definition
@docs Maybe

# Common Helpers
@docs map, withDefault, oneOf

# Chaining Maybes
@docs andThen

-}
*/

// Maybe is a sealed variant type: Just and Nothing are the only two shapes,
// both created through the constructor functions of this package.
type Maybe[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
}

type maybe[T any] struct {
	value T
	tag   bool
}

func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	case m.Nothing():
	}
	return Nothing[S]()
}

// Map transforms the value held by x, if any. Other than method Map, the
// package-level version may change the type of the value.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return Just(f(v))
	case m.Nothing():
	}
	return Nothing[S]()
}

// OneOf returns the first of ms which holds a value, or Nothing if none does.
func OneOf[T any](ms ...Maybe[T]) Maybe[T] {
	for _, x := range ms {
		switch m := x.Match(); m {
		case m.Just(nil):
			return x
		case m.Nothing():
		}
	}
	return Nothing[T]()
}

// --- Matching --------------------------------------------------------------

type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

// matcher points to the maybe instead of embedding it. Match-statements
// compare matchers as interface values, which must not trap for value types
// that are not comparable.
type matcher[T any] struct {
	m *maybe[T]
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: &m}
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		if v != nil {
			*v = mm.m.value
		}
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
