// Package collections provides chainable containers over ordered sequences
// ([List]) and key/value mappings ([Dict]), so that transformations read left
// to right instead of as nested calls.
//
// # Overview
//
//	n, err := collections.New(1, -2, 3, 0, 5).
//	    Rem(func(n int) bool { return n <= 0 }).
//	    Map(func(n, by int) int { return n * by }, 10).
//	    Count()
//	// → 3, nil
//
// Every chain step accepts a function followed by bound arguments. Binding
// follows package bind: the element is prepended to the bound arguments,
// or written into the slot marked by [bind.Blank]:
//
//	l.Keep(strings.HasSuffix, ".go")                  // HasSuffix(x, ".go")
//	l.Map(strings.Replace, bind.Blank, "a", "b", -1) // Replace(x, "a", "b", -1)
//
// Functions registered with [bind.Register] can be named by string.
//
// # Copy-on-write
//
// Transformations return a *new* container. The mutating adapters
// (Append, Extend, Sort, Reverse, Insert on List; Update, Clear on Dict) copy
// the receiver, mutate the copy and return it. Two variables never observe
// each other's mutations.
//
// # Errors
//
// Steps do not return errors individually. A failed step yields a container
// carrying the error, later steps pass it along, and terminals such as
// Count, Find or Some return it:
//
//	names := collections.New(users...).Attr("Name")
//	if err := names.Err(); err != nil { ... }
//
// # Typed helpers
//
// KeepFunc, FindFunc, ... and the package-level [MapFunc], [Reduce] and
// [Sorted] accept plain typed functions and skip reflection entirely. They
// honour a pending chain error like every other operation.
package collections
