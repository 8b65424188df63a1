package seq

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cons/maybe"
)

// Seq is a persistent sequence of values of type T. The zero value is a
// valid, empty sequence, i.e. this is legal:
//
//     s := seq.Seq[int]{}.Prepend(42)
//
// returning a sequence holding the single element 42.
type Seq[T any] struct {
	root node
}

// node is the variant type sequences are made of. It is sealed: the empty
// sentinel and the cons cell are the only two implementations, and clients
// cannot add more.
type node interface {
	isSeqNode()
}

// emptySeq terminates every sequence. It stores no element and never yields
// one, so it carries no element type; that lets the single sentinel value
// theEmpty serve every instantiation of Seq.
type emptySeq struct{}

func (emptySeq) isSeqNode() {}

// theEmpty is the canonical empty sequence, shared process-wide.
var theEmpty node = emptySeq{}

// consCell is one immutable link of a sequence: an element plus the rest of
// the sequence. count caches the number of elements hanging off this cell,
// giving O(1) Len.
type consCell[T any] struct {
	head  T
	tail  node
	count int
}

func (*consCell[T]) isSeqNode() {}

// next steps to the following cell, or nil at the end of the sequence.
func (c *consCell[T]) next() *consCell[T] {
	if cc, ok := c.tail.(*consCell[T]); ok {
		return cc
	}
	return nil
}

// --- Construction ------------------------------------------------------------

// Empty returns the empty sequence for element type T. All empty sequences
// view one canonical sentinel, whatever their element type.
func Empty[T any]() Seq[T] {
	return Seq[T]{root: theEmpty}
}

// Prepend returns a new sequence with value as its first element, followed
// by all of s. s stays untouched and is shared by the result, not copied.
func (s Seq[T]) Prepend(value T) Seq[T] {
	cell := &consCell[T]{head: value, tail: s.norm(), count: s.Len() + 1}
	tracer().Debugf("prepend %v onto sequence of length %d", value, cell.count-1)
	return Seq[T]{root: cell}
}

// Cons is the classical two-argument spelling of Prepend: it links head onto
// tail.
func Cons[T any](head T, tail Seq[T]) Seq[T] {
	return tail.Prepend(head)
}

// From builds a sequence of the given elements, preserving their order:
//
//     seq.From(1, 2, 3)    // ⟨1 2 3⟩
//
// From() without arguments returns the empty sequence.
func From[T any](elements ...T) Seq[T] {
	s := Empty[T]()
	for i := len(elements) - 1; i >= 0; i-- {
		s = s.Prepend(elements[i])
	}
	return s
}

// --- API ---------------------------------------------------------------------

// IsEmpty is true iff s holds no elements.
func (s Seq[T]) IsEmpty() bool {
	_, ok := s.norm().(*consCell[T])
	return !ok
}

// Len returns the number of elements in s. Cells cache their count, so Len
// costs O(1).
func (s Seq[T]) Len() int {
	if s.IsEmpty() {
		return 0
	}
	return s.cell().count
}

// Head returns the first element of s, or Nothing for an empty sequence.
func (s Seq[T]) Head() maybe.Maybe[T] {
	if s.IsEmpty() {
		return maybe.Nothing[T]()
	}
	return maybe.Just(s.cell().head)
}

// Tail returns s without its first element. The tail of the empty sequence
// is again the empty sequence. The result shares all of its structure with
// s; nothing is copied.
func (s Seq[T]) Tail() Seq[T] {
	if s.IsEmpty() {
		return s
	}
	return Seq[T]{root: s.cell().tail}
}

// Each walks s front to back, calling f for every element.
func (s Seq[T]) Each(f func(T)) {
	for c := s.firstCell(); c != nil; c = c.next() {
		f(c.head)
	}
}

// ToSlice copies the elements of s into a fresh slice. An empty sequence
// yields a nil slice.
func (s Seq[T]) ToSlice() []T {
	if s.IsEmpty() {
		return nil
	}
	slice := make([]T, 0, s.Len())
	s.Each(func(v T) {
		slice = append(slice, v)
	})
	return slice
}

// String renders s in list notation, e.g. “(1 2 3)”. The empty sequence
// renders as “()”.
func (s Seq[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('(')
	first := true
	s.Each(func(v T) {
		if !first {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%v", v))
		first = false
	})
	b.WriteByte(')')
	return b.String()
}

// --- Matching ----------------------------------------------------------------

// Matcher is a helper type for decomposing a sequence in a match-statement.
// Exactly one of its cases selects:
//
//     var head int
//     var tail seq.Seq[int]
//     switch m := s.Match(); m {
//     case m.Cons(&head, &tail):
//         // use head and tail
//     case m.Empty():
//         // s holds no elements
//     }
//
// Either pointer handed to Cons may be nil if the caller has no use for it.
type Matcher[T any] interface {
	Cons(*T, *Seq[T]) Matcher[T]
	Empty() Matcher[T]
}

type matcher[T any] struct {
	s Seq[T]
}

func (s Seq[T]) Match() Matcher[T] {
	return matcher[T]{s: s}
}

func (sm matcher[T]) Cons(head *T, tail *Seq[T]) Matcher[T] {
	if sm.s.IsEmpty() {
		return nil
	}
	cell := sm.s.cell()
	if head != nil {
		*head = cell.head
	}
	if tail != nil {
		*tail = Seq[T]{root: cell.tail}
	}
	return sm
}

func (sm matcher[T]) Empty() Matcher[T] {
	if sm.s.IsEmpty() {
		return sm
	}
	return nil
}

// --- Internals ---------------------------------------------------------------

// norm folds the zero value into the sentinel: a Seq which never had a node
// attached is the empty sequence.
func (s Seq[T]) norm() node {
	if s.root == nil {
		return theEmpty
	}
	return s.root
}

// cell narrows the root node to a cons cell. Callers must have ruled out the
// empty sequence.
func (s Seq[T]) cell() *consCell[T] {
	c, ok := s.norm().(*consCell[T])
	assertThat(ok, "attempt to read an element off the empty sequence")
	return c
}

// firstCell returns the first cell of s, or nil for the empty sequence.
func (s Seq[T]) firstCell() *consCell[T] {
	if s.IsEmpty() {
		return nil
	}
	return s.cell()
}
