package collections

import "fmt"

// Pair is a single key/value entry of a [Dict].
//
// A dict Map function may return a Pair instead of two values.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// String returns a human-readable representation: "(key, value)".
func (p Pair[K, V]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Key, p.Value)
}
