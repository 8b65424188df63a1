// Package cons collects small functional-programming helpers which the
// packages of this module share: function combinators and an ad-hoc pair.
package cons

// Identity returns its argument unchanged.
func Identity[T any](x T) T {
	return x
}

// Unit returns unit for any input => the zero value for T.
func Unit[T any](_ T) T {
	var zero T
	return zero
}

// Const returns a function that produces x.
func Const[T any](x T) func() T {
	return func() T {
		return x
	}
}

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}

// Flip turns a function of two arguments into one taking them in opposite
// order.
func Flip[A, B, C any](f func(A, B) C) func(B, A) C {
	return func(b B, a A) C {
		return f(a, b)
	}
}

// --- Pair ------------------------------------------------------------------

// Pair is an ad-hoc product of two values, possibly of different types.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// P constructs a Pair from two values.
func P[A, B any](x A, y B) Pair[A, B] {
	return Pair[A, B]{Left: x, Right: y}
}

// Decompose returns both halves of a pair.
func (p Pair[A, B]) Decompose() (A, B) {
	return p.Left, p.Right
}

// Swap returns the pair with its halves exchanged.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{Left: p.Right, Right: p.Left}
}
