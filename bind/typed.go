package bind

// Right fixes the trailing argument of f: x -> f(x, a).
// It is the typed form of a binding without placeholder.
func Right[T, A, R any](f func(T, A) R, a A) func(T) R {
	return func(x T) R { return f(x, a) }
}

// Left fixes the leading argument of f: x -> f(a, x).
// It is the typed form of Bind(f, a, Blank).
func Left[A, T, R any](f func(A, T) R, a A) func(T) R {
	return func(x T) R { return f(a, x) }
}

// Not negates a predicate.
func Not[T any](pred func(T) bool) func(T) bool {
	return func(x T) bool { return !pred(x) }
}
