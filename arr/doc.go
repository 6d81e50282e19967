// Package arr provides the plain-slice and dot-notation helpers the chain
// containers in package collections are built on.
//
// # Slice helpers
//
// All slice helpers are generic and operate on plain []T values. None of
// them modifies its input:
//
//	evens := arr.Filter([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
//	grown := arr.Insert([]int{1, 3}, 1, 2)   // → [1 2 3]
//	tail  := arr.Slice([]int{1, 2, 3}, -2, 3) // → [2 3]
//
// Positions follow list-indexing rules: negative values count from the end
// and slice bounds are clamped rather than rejected.
//
// # Dot-notation lookup
//
// [Lookup] reads values from nested map[string]any structures using
// dot-separated key paths:
//
//	v, ok := arr.Lookup(m, "user.address.city") // → "London", true
package arr
