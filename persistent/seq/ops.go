package seq

import (
	"github.com/npillmayer/cons"
	"github.com/npillmayer/cons/maybe"
	"golang.org/x/exp/constraints"
)

// Map applies f to every element of s, collecting the results in a new
// sequence of the same length. Other than method Map, the package-level
// version may change the element type.
func Map[T, S any](f func(T) S, s Seq[T]) Seq[S] {
	if s.IsEmpty() {
		return Empty[S]()
	}
	elements := make([]S, 0, s.Len())
	s.Each(func(v T) {
		elements = append(elements, f(v))
	})
	return From(elements...)
}

// Map applies f to every element of s, keeping the element type.
func (s Seq[T]) Map(f func(T) T) Seq[T] {
	return Map(f, s)
}

// Filter keeps the elements of s for which predicate p holds.
func (s Seq[T]) Filter(p func(T) bool) Seq[T] {
	if s.IsEmpty() {
		return s
	}
	elements := make([]T, 0, s.Len())
	s.Each(func(v T) {
		if p(v) {
			elements = append(elements, v)
		}
	})
	return From(elements...)
}

// FoldL reduces s front to back, folding every element onto an accumulator
// which starts out as zero:
//
//     FoldL(f, z, ⟨a b c⟩)    // f(c, f(b, f(a, z)))
//
// If s is empty, zero will be returned.
func FoldL[T, S any](f func(T, S) S, zero S, s Seq[T]) S {
	acc := zero
	s.Each(func(v T) {
		acc = f(v, acc)
	})
	return acc
}

// FoldR reduces s back to front. Application starts from the right ('R'),
// which corresponds to the last element of the sequence:
//
//     FoldR(f, z, ⟨a b c⟩)    // f(a, f(b, f(c, z)))
//
// If s is empty, zero will be returned.
func FoldR[T, S any](f func(T, S) S, zero S, s Seq[T]) S {
	elements := s.ToSlice()
	acc := zero
	for i := len(elements) - 1; i >= 0; i-- {
		acc = f(elements[i], acc)
	}
	return acc
}

// Reverse returns s with its elements in opposite order.
func (s Seq[T]) Reverse() Seq[T] {
	r := Empty[T]()
	s.Each(func(v T) {
		r = r.Prepend(v)
	})
	return r
}

// Append concatenates s and t. The result shares all of t's cells; only the
// cells of s are rebuilt.
func (s Seq[T]) Append(t Seq[T]) Seq[T] {
	if s.IsEmpty() {
		return t
	}
	if t.IsEmpty() {
		return s
	}
	elements := s.ToSlice()
	r := t
	for i := len(elements) - 1; i >= 0; i-- {
		r = r.Prepend(elements[i])
	}
	tracer().Debugf("append rebuilt %d cells, sharing %d", len(elements), t.Len())
	return r
}

// Take returns the first n elements of s. Take clamps: n of at least Len
// returns s itself, n of 0 or below the empty sequence.
func (s Seq[T]) Take(n int) Seq[T] {
	if n <= 0 {
		return Empty[T]()
	}
	if n >= s.Len() {
		return s
	}
	elements := make([]T, 0, n)
	for c := s.firstCell(); c != nil && len(elements) < n; c = c.next() {
		elements = append(elements, c.head)
	}
	return From(elements...)
}

// Drop returns s without its first n elements, clamping like Take. No cells
// are rebuilt: the result is a view into s.
func (s Seq[T]) Drop(n int) Seq[T] {
	r := s
	for n > 0 && !r.IsEmpty() {
		r = r.Tail()
		n--
	}
	return r
}

// Equal is true iff s and t hold the same elements in the same order.
// Sequences sharing structure shortcut the walk: a cell is always equal to
// itself.
func Equal[T comparable](s, t Seq[T]) bool {
	sn, tn := s.norm(), t.norm()
	for {
		if sn == tn {
			return true
		}
		sc, sok := sn.(*consCell[T])
		tc, tok := tn.(*consCell[T])
		if !sok || !tok {
			return false
		}
		if sc.count != tc.count || sc.head != tc.head {
			return false
		}
		sn, tn = sc.tail, tc.tail
	}
}

// Member is true iff v occurs in s.
func Member[T comparable](v T, s Seq[T]) bool {
	for c := s.firstCell(); c != nil; c = c.next() {
		if c.head == v {
			return true
		}
	}
	return false
}

// Range builds the sequence of integers from lo to hi, inclusive. If lo is
// greater than hi, the sequence is empty.
func Range(lo, hi int) Seq[int] {
	s := Empty[int]()
	for i := hi; i >= lo; i-- {
		s = s.Prepend(i)
	}
	return s
}

// Maximum returns the largest element of s, or Nothing for an empty
// sequence.
func Maximum[T constraints.Ordered](s Seq[T]) maybe.Maybe[T] {
	c := s.firstCell()
	if c == nil {
		return maybe.Nothing[T]()
	}
	max := c.head
	for c = c.next(); c != nil; c = c.next() {
		if c.head > max {
			max = c.head
		}
	}
	return maybe.Just(max)
}

// Minimum returns the smallest element of s, or Nothing for an empty
// sequence.
func Minimum[T constraints.Ordered](s Seq[T]) maybe.Maybe[T] {
	c := s.firstCell()
	if c == nil {
		return maybe.Nothing[T]()
	}
	min := c.head
	for c = c.next(); c != nil; c = c.next() {
		if c.head < min {
			min = c.head
		}
	}
	return maybe.Just(min)
}

// Sum adds up the elements of s. The sum of the empty sequence is 0.
func Sum[T constraints.Integer | constraints.Float](s Seq[T]) T {
	var sum T
	s.Each(func(v T) {
		sum += v
	})
	return sum
}

// Zip pairs up the elements of s and t, stopping at the end of the shorter
// sequence.
func Zip[A, B any](s Seq[A], t Seq[B]) Seq[cons.Pair[A, B]] {
	n := s.Len()
	if t.Len() < n {
		n = t.Len()
	}
	if n == 0 {
		return Empty[cons.Pair[A, B]]()
	}
	pairs := make([]cons.Pair[A, B], 0, n)
	sc, tc := s.firstCell(), t.firstCell()
	for sc != nil && tc != nil {
		pairs = append(pairs, cons.P(sc.head, tc.head))
		sc, tc = sc.next(), tc.next()
	}
	return From(pairs...)
}

// Unzip splits a sequence of pairs into the sequence of left components and
// the sequence of right components.
func Unzip[A, B any](s Seq[cons.Pair[A, B]]) (Seq[A], Seq[B]) {
	if s.IsEmpty() {
		return Empty[A](), Empty[B]()
	}
	lefts := make([]A, 0, s.Len())
	rights := make([]B, 0, s.Len())
	s.Each(func(p cons.Pair[A, B]) {
		lefts = append(lefts, p.Left)
		rights = append(rights, p.Right)
	})
	return From(lefts...), From(rights...)
}

// Widen views s as a sequence of empty-interface values, giving up static
// knowledge of the element type. Widening loses no elements; narrowing the
// elements back is the business of package narrow.
func Widen[T any](s Seq[T]) Seq[any] {
	if s.IsEmpty() {
		return Empty[any]()
	}
	return Map(func(v T) any { return v }, s)
}
