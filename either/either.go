// Package either provides a sum type with two variants.
//
// Haskell defines
//
//	type Either a b = Left a | Right b
//
// which Go has no direct counterpart for. We approximate the type with a
// sealed interface and the two constructors Left and Right, decomposed by
// clients with a match-statement:
//
//	var l error
//	var r int
//	switch m := x.Match(); m {
//	case m.Left(&l):
//	    // use l
//	case m.Right(&r):
//	    // use r
//	}
//
// By convention the right variant carries the value of interest and the left
// variant carries the alternative (an error, a fallback, the unmodified
// input).
package either

// Either holds a value of type L or a value of type R, never both.
//
// Either is a sealed variant type: Left and Right are the only two shapes,
// both created through the constructor functions of this package.
type Either[L, R any] interface {
	Match() Matcher[L, R]
}

type either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left wraps a value into the left variant.
func Left[L, R any](l L) Either[L, R] {
	return either[L, R]{left: l}
}

// Right wraps a value into the right variant.
func Right[L, R any](r R) Either[L, R] {
	return either[L, R]{right: r, isRight: true}
}

// MapLeft transforms the left value held by x, if any. A right variant
// passes through untouched.
func MapLeft[L, R, S any](f func(L) S, x Either[L, R]) Either[S, R] {
	var l L
	var r R
	switch m := x.Match(); m {
	case m.Left(&l):
		return Left[S, R](f(l))
	case m.Right(&r):
	}
	return Right[S](r)
}

// MapRight transforms the right value held by x, if any. A left variant
// passes through untouched.
func MapRight[L, R, S any](f func(R) S, x Either[L, R]) Either[L, S] {
	var l L
	var r R
	switch m := x.Match(); m {
	case m.Left(&l):
		return Left[L, S](l)
	case m.Right(&r):
	}
	return Right[L](f(r))
}

// Fold collapses an Either into a single value, applying onLeft or onRight
// depending on the variant.
func Fold[L, R, S any](onLeft func(L) S, onRight func(R) S, x Either[L, R]) S {
	var l L
	var r R
	switch m := x.Match(); m {
	case m.Left(&l):
		return onLeft(l)
	case m.Right(&r):
	}
	return onRight(r)
}

// --- Matching --------------------------------------------------------------

// Matcher is a helper type for decomposing an Either in a match-statement.
// Exactly one of its cases selects.
type Matcher[L, R any] interface {
	Left(*L) Matcher[L, R]
	Right(*R) Matcher[L, R]
}

// matcher points to the either instead of embedding it. Match-statements
// compare matchers as interface values, which must not trap for value types
// that are not comparable.
type matcher[L, R any] struct {
	e *either[L, R]
}

func (e either[L, R]) Match() Matcher[L, R] {
	return matcher[L, R]{e: &e}
}

func (em matcher[L, R]) Left(l *L) Matcher[L, R] {
	if !em.e.isRight {
		if l != nil {
			*l = em.e.left
		}
		return em
	}
	return nil
}

func (em matcher[L, R]) Right(r *R) Matcher[L, R] {
	if em.e.isRight {
		if r != nil {
			*r = em.e.right
		}
		return em
	}
	return nil
}
