package collections

import (
	"cmp"

	"github.com/hasbyte1/go-chain-utils/arr"
)

// This file contains package-level generic functions for operations that
// need a type parameter of their own: a new element type, an ordered
// constraint, or a fold result.
//
// Go methods cannot introduce type parameters, so these stand alone and wrap
// a chain:
//
//	labels := collections.MapFunc(
//	    collections.New(1, 2, 3).Keep(func(n int) bool { return n > 1 }),
//	    strconv.Itoa,
//	)

// MapFunc applies fn to every item and returns a new List[U].
//
//	lengths := collections.MapFunc(collections.New("a", "bcd"),
//	    func(s string) int { return len(s) })
func MapFunc[T, U any](l *List[T], fn func(T) U) *List[U] {
	if l.err != nil {
		return &List[U]{items: []U{}, err: l.err}
	}
	return &List[U]{items: arr.Map(l.items, fn)}
}

// MapTo is [List.Map] with a different result type: fn and args are bound
// with the same rules, and every result is converted to U.
//
//	strs := collections.MapTo[int, string](l, strconv.Itoa)
func MapTo[T, U any](l *List[T], fn any, args ...any) *List[U] {
	return mapTo[T, U](l, "map", fn, args)
}

// Reduce folds the list left to right into a single value of type U.
// A failed list returns initial together with the chain error.
//
//	sum, err := collections.Reduce(collections.New(1, 2, 3, 4),
//	    func(acc, n int) int { return acc + n }, 0)
func Reduce[T, U any](l *List[T], fn func(U, T) U, initial U) (U, error) {
	if l.err != nil {
		return initial, l.err
	}
	return arr.Reduce(l.items, fn, initial), nil
}

// Sorted returns a copy of l in ascending natural order.
func Sorted[T cmp.Ordered](l *List[T]) *List[T] {
	return l.Sort(cmp.Less[T])
}

// SortedItems returns the entries of d ordered by key, for callers that
// need a deterministic walk over a dict.
func SortedItems[K cmp.Ordered, V any](d *Dict[K, V]) []Pair[K, V] {
	return arr.Sort(d.Items(), func(a, b Pair[K, V]) bool { return a.Key < b.Key })
}
