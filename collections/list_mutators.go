package collections

import (
	"fmt"

	"github.com/hasbyte1/go-chain-utils/arr"
)

// ─────────────────────────────────────────────────────────────────────────────
// Mutating adapters
//
// Each adapter copies the receiver, applies the mutation to the copy and
// returns the copy. The receiver, and any variable still pointing at it,
// never observes the change:
//
//	a := collections.New(1, 2)
//	b := a.Append(3)   // a: [1 2]   b: [1 2 3]
// ─────────────────────────────────────────────────────────────────────────────

// Append returns a copy of l with items added at the end.
func (l *List[T]) Append(items ...T) *List[T] {
	if l.err != nil {
		return l
	}
	out := make([]T, len(l.items), len(l.items)+len(items))
	copy(out, l.items)
	return &List[T]{items: append(out, items...)}
}

// Extend returns a copy of l with every element of items added at the end.
func (l *List[T]) Extend(items []T) *List[T] {
	return l.Append(items...)
}

// Sort returns a sorted copy of l. The sort is stable.
// A nil less fails the chain with [ErrInvalidArgument].
func (l *List[T]) Sort(less func(a, b T) bool) *List[T] {
	if l.err != nil {
		return l
	}
	if less == nil {
		return failed[T]("sort", fmt.Errorf("%w: missing less function", ErrInvalidArgument))
	}
	return &List[T]{items: arr.Sort(l.items, less)}
}

// Reverse returns a copy of l in reverse order.
func (l *List[T]) Reverse() *List[T] {
	if l.err != nil {
		return l
	}
	return &List[T]{items: arr.Reverse(l.items)}
}

// Insert returns a copy of l with x inserted before index i. Negative i
// counts from the end and out-of-range positions are clamped, so the value
// always lands in the list.
func (l *List[T]) Insert(i int, x T) *List[T] {
	if l.err != nil {
		return l
	}
	return &List[T]{items: arr.Insert(l.items, i, x)}
}
