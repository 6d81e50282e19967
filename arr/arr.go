package arr

import "sort"

// ─────────────────────────────────────────────────────────────────────────────
// Copying
// ─────────────────────────────────────────────────────────────────────────────

// Clone returns a shallow copy of items. A nil slice yields an empty,
// non-nil slice.
func Clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element, optionally matching fns[0].
// Returns the zero value and false when items is empty or no element matches.
func First[T any](items []T, fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		for _, item := range items {
			if fns[0](item) {
				return item, true
			}
		}
		return zero, false
	}
	if len(items) == 0 {
		return zero, false
	}
	return items[0], true
}

// Contains reports whether at least one element satisfies fn.
// It stops at the first match.
func Contains[T any](items []T, fn func(T) bool) bool {
	for _, item := range items {
		if fn(item) {
			return true
		}
	}
	return false
}

// Every reports whether every element satisfies fn. It stops at the first
// element that does not; an empty slice yields true.
func Every[T any](items []T, fn func(T) bool) bool {
	for _, item := range items {
		if !fn(item) {
			return false
		}
	}
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn to each element and returns a new slice.
func Map[T, U any](items []T, fn func(T) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// Filter returns elements for which fn returns true.
func Filter[T any](items []T, fn func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if fn(item) {
			out = append(out, item)
		}
	}
	return out
}

// Reject returns elements for which fn returns false.
func Reject[T any](items []T, fn func(T) bool) []T {
	return Filter(items, func(item T) bool { return !fn(item) })
}

// Reduce folds items left to right into a single value of type U.
func Reduce[T, U any](items []T, fn func(U, T) U, initial U) U {
	result := initial
	for _, item := range items {
		result = fn(result, item)
	}
	return result
}

// Reverse returns a reversed copy of items.
func Reverse[T any](items []T) []T {
	n := len(items)
	out := make([]T, n)
	for i, item := range items {
		out[n-1-i] = item
	}
	return out
}

// Sort returns a sorted copy of items using less.
// The sort is stable: equal elements keep their original order.
func Sort[T any](items []T, less func(a, b T) bool) []T {
	out := Clone(items)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Positional helpers
// ─────────────────────────────────────────────────────────────────────────────

// Index resolves i against a sequence of length n. Negative indices count
// from the end. ok is false when the result falls outside [0, n).
func Index(i, n int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}

// clamp resolves a slice bound the way list slicing does: negative values
// count from the end, then the result is clamped into [0, n].
func clamp(i, n int) int {
	if i < 0 {
		i += n
		if i < 0 {
			return 0
		}
	}
	if i > n {
		return n
	}
	return i
}

// Insert returns a copy of items with values inserted before index i.
// Negative i counts from the end; out-of-range positions are clamped, so
// Insert never fails.
//
//	Insert([]int{1, 2, 3}, -1, 9)  // → [1 2 9 3]
//	Insert([]int{1, 2, 3}, 99, 9)  // → [1 2 3 9]
func Insert[T any](items []T, i int, values ...T) []T {
	i = clamp(i, len(items))
	out := make([]T, 0, len(items)+len(values))
	out = append(out, items[:i]...)
	out = append(out, values...)
	out = append(out, items[i:]...)
	return out
}

// Slice returns a copy of items[start:end] with list-slicing semantics:
// negative bounds count from the end, bounds are clamped, and start >= end
// yields an empty slice.
func Slice[T any](items []T, start, end int) []T {
	n := len(items)
	start, end = clamp(start, n), clamp(end, n)
	if start >= end {
		return []T{}
	}
	return Clone(items[start:end])
}
