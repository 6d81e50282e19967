package collections

// Chain is the surface shared by [List] and [Dict]: size, pending error,
// the last stored side-effect value and the predicate-based terminals.
type Chain interface {
	// Len returns the number of items.
	Len() int

	// Err returns the error that stopped the chain, if any.
	Err() error

	// LastValue returns the value stored by the last Tee (List) or Do (Dict).
	LastValue() any

	// Count returns Len, or with a predicate the number of matching items.
	Count(args ...any) (int, error)

	// Empty reports Len == 0, or with a predicate whether every item
	// satisfies it.
	Empty(args ...any) (bool, error)

	// Some reports whether any item satisfies the predicate.
	Some(fn any, args ...any) (bool, error)

	// Has is an alias for Some.
	Has(fn any, args ...any) (bool, error)

	// All reports whether every item satisfies the predicate.
	All(fn any, args ...any) (bool, error)

	String() string
}

// ListMutator lists the mutating operations of a [List]. Each one works on
// a copy and returns it instead of modifying the receiver.
type ListMutator[T any] interface {
	Append(items ...T) *List[T]
	Extend(items []T) *List[T]
	Sort(less func(a, b T) bool) *List[T]
	Reverse() *List[T]
	Insert(i int, x T) *List[T]
}

// DictMutator lists the mutating operations of a [Dict]. Each one works on
// a copy and returns it instead of modifying the receiver.
type DictMutator[K comparable, V any] interface {
	Update(maps ...map[K]V) *Dict[K, V]
	UpdatePairs(pairs ...Pair[K, V]) *Dict[K, V]
	Clear() *Dict[K, V]
}

var (
	_ Chain                    = (*List[int])(nil)
	_ Chain                    = (*Dict[string, int])(nil)
	_ ListMutator[int]         = (*List[int])(nil)
	_ DictMutator[string, int] = (*Dict[string, int])(nil)
)
