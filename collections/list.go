package collections

import (
	"encoding/json"
	"fmt"

	"github.com/hasbyte1/go-chain-utils/arr"
	"github.com/hasbyte1/go-chain-utils/bind"
)

// List is a chainable, ordered sequence of T.
//
// Transformations (Map, Keep, Rem, ...) return a *new* List and leave the
// receiver unchanged. The mutating adapters (Append, Sort, ...) copy the
// receiver, mutate the copy and return it, so they chain like everything
// else:
//
//	n, err := collections.New(3, 1, 2).
//	    Append(5).
//	    Sort(func(a, b int) bool { return a < b }).
//	    Keep(func(n int) bool { return n > 1 }).
//	    Count()
//
// # Functions and bound arguments
//
// Every dynamic step takes a function followed by optional bound arguments,
// resolved with [bind.Bind]. Without a [bind.Blank] the element is passed
// first; with one, the element fills the placeholder:
//
//	l.Keep(strings.HasPrefix, "go")             // HasPrefix(x, "go")
//	l.Keep(strings.Contains, "gopher", bind.Blank) // Contains("gopher", x)
//
// Predicate results are read with [bind.Truthy].
//
// # Errors
//
// A step that fails returns an empty List carrying the error. Every later
// step passes that List along untouched and terminal operations return the
// error, so a chain only needs to be checked once, at the end, via Err or a
// terminal's error result.
type List[T any] struct {
	items     []T
	err       error
	lastValue any
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a List from a variadic list of items (copied).
func New[T any](items ...T) *List[T] {
	return &List[T]{items: arr.Clone(items)}
}

// From creates a List from a slice (the slice is copied).
func From[T any](items []T) *List[T] {
	return &List[T]{items: arr.Clone(items)}
}

// Empty creates an empty List of type T.
func Empty[T any]() *List[T] {
	return &List[T]{items: []T{}}
}

// failed returns the List handed down a chain after op failed with err.
func failed[T any](op string, err error) *List[T] {
	logFailure(op, err)
	return &List[T]{items: []T{}, err: err}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// ToSlice returns a copy of the underlying slice.
func (l *List[T]) ToSlice() []T { return arr.Clone(l.items) }

// Len returns the number of items.
func (l *List[T]) Len() int { return len(l.items) }

// Get returns the item at index i together with a presence flag.
// Negative indices count from the end.
func (l *List[T]) Get(i int) (T, bool) {
	var zero T
	idx, ok := arr.Index(i, len(l.items))
	if !ok {
		return zero, false
	}
	return l.items[idx], true
}

// Err returns the error that stopped the chain, if any.
func (l *List[T]) Err() error { return l.err }

// LastValue returns the result stored by the most recent [List.Tee].
func (l *List[T]) LastValue() any { return l.lastValue }

// ToJSON serialises the items to a JSON array.
func (l *List[T]) ToJSON() ([]byte, error) {
	if l.err != nil {
		return nil, l.err
	}
	return json.Marshal(l.items)
}

// String returns a JSON representation of the list.
// It implements [fmt.Stringer].
func (l *List[T]) String() string {
	if l.err != nil {
		return fmt.Sprintf("List(error: %v)", l.err)
	}
	b, err := l.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", l.items)
	}
	return string(b)
}

// Dump logs the list at Info level and returns l for chaining.
func (l *List[T]) Dump() *List[T] {
	dump(fmt.Sprintf("%T", l), len(l.items), l.String())
	return l
}

// Clone returns a shallow copy of the list. A pending error is carried over;
// the last Tee value is not.
func (l *List[T]) Clone() *List[T] {
	return &List[T]{items: arr.Clone(l.items), err: l.err}
}

// Slice returns items[start:end] as a new List. Negative bounds count from
// the end and out-of-range bounds are clamped.
func (l *List[T]) Slice(start, end int) *List[T] {
	if l.err != nil {
		return l
	}
	return &List[T]{items: arr.Slice(l.items, start, end)}
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map returns a new list of fn(x, args...) for every element, in order.
// Results must be assignable or convertible to T; use [MapTo] to change the
// element type.
func (l *List[T]) Map(fn any, args ...any) *List[T] {
	return mapTo[T, T](l, "map", fn, args)
}

// Keep returns a new list with the elements for which the predicate is truthy.
func (l *List[T]) Keep(fn any, args ...any) *List[T] {
	return l.filter("keep", true, fn, args)
}

// Rem returns a new list with the elements for which the predicate is falsy.
// It is the complement of [List.Keep].
func (l *List[T]) Rem(fn any, args ...any) *List[T] {
	return l.filter("rem", false, fn, args)
}

func (l *List[T]) filter(op string, want bool, fn any, args []any) *List[T] {
	if l.err != nil {
		return l
	}
	f, err := bind.Bind(fn, args...)
	if err != nil {
		return failed[T](op, err)
	}
	out := make([]T, 0, len(l.items))
	for _, x := range l.items {
		r, err := f(x)
		if err != nil {
			return failed[T](op, err)
		}
		if bind.Truthy(r) == want {
			out = append(out, x)
		}
	}
	return &List[T]{items: out}
}

// Attr maps every element to its field, map entry or method called name.
// Dotted names walk nested values: "Address.City".
// A missing name fails the chain with [ErrNoAttribute].
func (l *List[T]) Attr(name string) *List[any] {
	return transform[T, any](l, "attr", func(x T) (any, error) {
		return attr(x, name)
	})
}

// Item maps every element to element[key]. Slices, arrays and strings take
// an integer index (negative counts from the end); maps take a key, and
// map[string]any elements also accept dotted paths.
// A missing index or key fails the chain with [ErrNoItem].
func (l *List[T]) Item(key any) *List[any] {
	return transform[T, any](l, "item", func(x T) (any, error) {
		return item(x, key)
	})
}

// Invoke maps every element to the result of calling its method name with
// args. A missing method fails the chain with [ErrNoMethod]; an error
// returned by the method fails it with that error.
func (l *List[T]) Invoke(name string, args ...any) *List[any] {
	return transform[T, any](l, "invoke", func(x T) (any, error) {
		return invoke(x, name, args)
	})
}

// mapTo binds fn and maps it over l, converting each result to U.
func mapTo[T, U any](l *List[T], op string, fn any, args []any) *List[U] {
	if l.err != nil {
		return &List[U]{items: []U{}, err: l.err}
	}
	f, err := bind.Bind(fn, args...)
	if err != nil {
		return failed[U](op, err)
	}
	return transform[T, U](l, op, func(x T) (any, error) { return f(x) })
}

func transform[T, U any](l *List[T], op string, f func(T) (any, error)) *List[U] {
	if l.err != nil {
		return &List[U]{items: []U{}, err: l.err}
	}
	out := make([]U, len(l.items))
	for i, x := range l.items {
		r, err := f(x)
		if err != nil {
			return failed[U](op, err)
		}
		v, err := bind.Coerce[U](r)
		if err != nil {
			return failed[U](op, fmt.Errorf("element %d: %w", i, err))
		}
		out[i] = v
	}
	return &List[U]{items: out}
}

// ─────────────────────────────────────────────────────────────────────────────
// Search & testing
// ─────────────────────────────────────────────────────────────────────────────

// scan returns the index of the first element whose predicate truthiness
// equals stop, or -1.
func (l *List[T]) scan(fn any, args []any, stop bool) (int, error) {
	if l.err != nil {
		return -1, l.err
	}
	f, err := bind.Bind(fn, args...)
	if err != nil {
		return -1, err
	}
	for i, x := range l.items {
		r, err := f(x)
		if err != nil {
			return -1, err
		}
		if bind.Truthy(r) == stop {
			return i, nil
		}
	}
	return -1, nil
}

// Find returns the first element satisfying the predicate. found is false
// when no element matches; that is not an error.
func (l *List[T]) Find(fn any, args ...any) (x T, found bool, err error) {
	i, err := l.scan(fn, args, true)
	if err != nil || i < 0 {
		return x, false, err
	}
	return l.items[i], true, nil
}

// Some reports whether at least one element satisfies the predicate.
// It stops at the first match.
func (l *List[T]) Some(fn any, args ...any) (bool, error) {
	i, err := l.scan(fn, args, true)
	return i >= 0, err
}

// Has is an alias for [List.Some].
func (l *List[T]) Has(fn any, args ...any) (bool, error) { return l.Some(fn, args...) }

// All reports whether every element satisfies the predicate.
// It stops at the first failure; an empty list yields true.
func (l *List[T]) All(fn any, args ...any) (bool, error) {
	i, err := l.scan(fn, args, false)
	return i < 0 && err == nil, err
}

// Count returns the number of items, or with a predicate the number of
// items [List.Keep] would retain.
func (l *List[T]) Count(args ...any) (int, error) {
	if l.err != nil {
		return 0, l.err
	}
	if len(args) == 0 {
		return len(l.items), nil
	}
	kept := l.Clone().Keep(args[0], args[1:]...)
	return kept.Len(), kept.Err()
}

// Empty reports whether the list has no items. Given a predicate it reports
// whether every element satisfies it, which for a predicate such as
// "x is nil" reads as "empty of real values".
func (l *List[T]) Empty(args ...any) (bool, error) {
	if l.err != nil {
		return false, l.err
	}
	if len(args) == 0 {
		return len(l.items) == 0, nil
	}
	return l.All(args[0], args[1:]...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Escape hatches
// ─────────────────────────────────────────────────────────────────────────────

// Do calls fn with the list itself (and any bound args) and returns the raw
// result:
//
//	n, err := l.Do(func(l *collections.List[int]) int { return l.Len() })
func (l *List[T]) Do(fn any, args ...any) (any, error) {
	if l.err != nil {
		return nil, l.err
	}
	f, err := bind.Bind(fn, args...)
	if err != nil {
		return nil, err
	}
	return f(l)
}

// Tee works like [List.Do] but returns l, keeping the result in
// [List.LastValue]. Use it for side effects in the middle of a chain.
func (l *List[T]) Tee(fn any, args ...any) *List[T] {
	if l.err != nil {
		return l
	}
	r, err := l.Do(fn, args...)
	if err != nil {
		return failed[T]("tee", err)
	}
	l.lastValue = r
	return l
}

// ─────────────────────────────────────────────────────────────────────────────
// Typed counterparts
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn for every item. On a failed list fn is never called and the
// chain error is returned.
func (l *List[T]) Each(fn func(T)) error {
	if l.err != nil {
		return l.err
	}
	for _, item := range l.items {
		fn(item)
	}
	return nil
}

// KeepFunc is the typed form of [List.Keep].
func (l *List[T]) KeepFunc(fn func(T) bool) *List[T] {
	if l.err != nil {
		return l
	}
	return &List[T]{items: arr.Filter(l.items, fn)}
}

// RemFunc is the typed form of [List.Rem].
func (l *List[T]) RemFunc(fn func(T) bool) *List[T] {
	if l.err != nil {
		return l
	}
	return &List[T]{items: arr.Reject(l.items, fn)}
}

// FindFunc is the typed form of [List.Find].
func (l *List[T]) FindFunc(fn func(T) bool) (T, bool, error) {
	if l.err != nil {
		var zero T
		return zero, false, l.err
	}
	x, found := arr.First(l.items, fn)
	return x, found, nil
}

// SomeFunc is the typed form of [List.Some].
func (l *List[T]) SomeFunc(fn func(T) bool) (bool, error) {
	if l.err != nil {
		return false, l.err
	}
	return arr.Contains(l.items, fn), nil
}

// AllFunc is the typed form of [List.All].
func (l *List[T]) AllFunc(fn func(T) bool) (bool, error) {
	if l.err != nil {
		return false, l.err
	}
	return arr.Every(l.items, fn), nil
}

// EmptyFunc is the typed form of [List.Empty] with a predicate.
func (l *List[T]) EmptyFunc(fn func(T) bool) (bool, error) { return l.AllFunc(fn) }

// CountFunc is the typed form of [List.Count] with a predicate.
func (l *List[T]) CountFunc(fn func(T) bool) (int, error) {
	kept := l.KeepFunc(fn)
	return kept.Len(), kept.Err()
}
