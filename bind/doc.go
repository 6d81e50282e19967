// Package bind turns a function plus bound arguments into a single-argument
// callable, the primitive every chain step in package collections is built on.
//
// # Binding rules
//
// [Bind] picks one of three constructors from the shape of its arguments:
//
//	bind.Bind(f)              // x -> f(x)               (see [Call])
//	bind.Bind(f, a, b)        // x -> f(x, a, b)         (see [Prepend])
//	bind.Bind(f, a, bind.Blank, b) // x -> f(a, x, b)    (see [At])
//
// [Blank] is the placeholder: wherever it appears among the bound arguments
// the runtime value is written in its place. Without a placeholder the
// runtime value is prepended.
//
//	div := func(a, b float64) float64 { return a / b }
//	half, _ := bind.Bind(div, bind.Blank, 2.0)
//	v, _ := half(10.0) // → 5
//
// Two-argument callables used by key/value chains come from [Bind2], which
// appends the extra arguments after (key, value) and has no placeholder
// support.
//
// # Calling convention
//
// Functions are invoked reflectively. Arguments are matched against the
// parameter types: assignable values pass through, numbers convert when the
// value survives the round trip without changing sign, nil becomes the zero
// value of nilable parameters. A trailing error result fails the call with that error; two
// non-error results come back as a [Tuple].
//
// A string in function position names a function added with [Register]:
//
//	bind.Register("positive", func(n int) bool { return n > 0 })
//	keep, _ := bind.Bind("positive")
//
// # Typed helpers
//
// When the types are known at compile time, [Right], [Left] and [Not] give
// the same shapes without reflection.
package bind
