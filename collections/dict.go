package collections

import (
	"encoding/json"
	"fmt"
	"maps"

	"github.com/hasbyte1/go-chain-utils/bind"
)

// Dict is a chainable key/value mapping. Iteration order is Go's map order,
// i.e. unspecified; use [SortedItems] for a stable walk.
//
// Dict mirrors [List] with predicates that receive (key, value) followed by
// any extra arguments, bound with [bind.Bind2]:
//
//	adults, err := collections.FromMap(ages).
//	    Keep(func(name string, age, floor int) bool { return age >= floor }, 18).
//	    Count()
//
// Unlike List there is no placeholder support in dict predicates.
//
// # In-place dicts
//
// A Dict built with [FromMapInPlace] has its saveInPlace flag set. On such a
// dict Map, Keep and Rem build nothing, leave the receiver alone and return
// nil. The nil *Dict is a valid receiver whose Err is [ErrNoResult].
// Every copy (Copy, Clone, the mutating adapters) clears the flag.
type Dict[K comparable, V any] struct {
	m           map[K]V
	saveInPlace bool
	err         error
	lastValue   any
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// NewDict creates an empty Dict.
func NewDict[K comparable, V any]() *Dict[K, V] {
	return &Dict[K, V]{m: make(map[K]V)}
}

// FromMap creates a Dict from m (the map is copied).
func FromMap[K comparable, V any](m map[K]V) *Dict[K, V] {
	return &Dict[K, V]{m: cloneMap(m)}
}

// FromMapInPlace creates a Dict from m (copied) with the saveInPlace flag set.
func FromMapInPlace[K comparable, V any](m map[K]V) *Dict[K, V] {
	return &Dict[K, V]{m: cloneMap(m), saveInPlace: true}
}

// FromPairs creates a Dict from entries. Later duplicates win.
func FromPairs[K comparable, V any](pairs ...Pair[K, V]) *Dict[K, V] {
	m := make(map[K]V, len(pairs))
	for _, p := range pairs {
		m[p.Key] = p.Value
	}
	return &Dict[K, V]{m: m}
}

// FromKeys creates a Dict mapping every key to value.
//
//	seen := collections.FromKeys([]string{"a", "b"}, false)
func FromKeys[K comparable, V any](keys []K, value V) *Dict[K, V] {
	m := make(map[K]V, len(keys))
	for _, k := range keys {
		m[k] = value
	}
	return &Dict[K, V]{m: m}
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	maps.Copy(out, m)
	return out
}

func failedDict[K comparable, V any](op string, err error) *Dict[K, V] {
	logFailure(op, err)
	return &Dict[K, V]{m: make(map[K]V), err: err}
}

// state returns the error every method on d must propagate.
func (d *Dict[K, V]) state() error {
	if d == nil {
		return ErrNoResult
	}
	return d.err
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of entries.
func (d *Dict[K, V]) Len() int {
	if d == nil {
		return 0
	}
	return len(d.m)
}

// Err returns the error that stopped the chain, if any.
func (d *Dict[K, V]) Err() error { return d.state() }

// LastValue returns the result stored by the most recent [Dict.Do].
func (d *Dict[K, V]) LastValue() any {
	if d == nil {
		return nil
	}
	return d.lastValue
}

// Get returns the value stored under k.
func (d *Dict[K, V]) Get(k K) (V, bool) {
	var zero V
	if d == nil {
		return zero, false
	}
	v, ok := d.m[k]
	return v, ok
}

// Keys returns the keys in unspecified order.
func (d *Dict[K, V]) Keys() []K {
	out := make([]K, 0, d.Len())
	if d != nil {
		for k := range d.m {
			out = append(out, k)
		}
	}
	return out
}

// Values returns the values in unspecified order.
func (d *Dict[K, V]) Values() []V {
	out := make([]V, 0, d.Len())
	if d != nil {
		for _, v := range d.m {
			out = append(out, v)
		}
	}
	return out
}

// Items returns the entries in unspecified order.
func (d *Dict[K, V]) Items() []Pair[K, V] {
	out := make([]Pair[K, V], 0, d.Len())
	if d != nil {
		for k, v := range d.m {
			out = append(out, Pair[K, V]{Key: k, Value: v})
		}
	}
	return out
}

// ToMap returns a copy of the underlying map.
func (d *Dict[K, V]) ToMap() map[K]V {
	if d == nil {
		return map[K]V{}
	}
	return cloneMap(d.m)
}

// ToJSON serialises the dict to a JSON object. Keys must be strings,
// integers or implement encoding.TextMarshaler.
func (d *Dict[K, V]) ToJSON() ([]byte, error) {
	if err := d.state(); err != nil {
		return nil, err
	}
	return json.Marshal(d.m)
}

// String returns a JSON representation of the dict.
func (d *Dict[K, V]) String() string {
	if err := d.state(); err != nil {
		return fmt.Sprintf("Dict(error: %v)", err)
	}
	b, err := d.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", d.m)
	}
	return string(b)
}

// Dump logs the dict at Info level and returns d for chaining.
func (d *Dict[K, V]) Dump() *Dict[K, V] {
	dump(fmt.Sprintf("%T", d), d.Len(), d.String())
	return d
}

// Copy returns a shallow copy of d with the saveInPlace flag cleared.
func (d *Dict[K, V]) Copy() *Dict[K, V] {
	if d == nil {
		return nil
	}
	return &Dict[K, V]{m: cloneMap(d.m), err: d.err}
}

// Clone is an alias for [Dict.Copy].
func (d *Dict[K, V]) Clone() *Dict[K, V] { return d.Copy() }

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map builds a new dict from fn(k, v, extra...) for every entry. fn must
// return a key and a value, either as two results or as a [Pair].
//
//	upper := d.Map(func(k string, v int) (string, int) {
//	    return strings.ToUpper(k), v
//	})
//
// On a saveInPlace dict Map returns nil without calling fn.
func (d *Dict[K, V]) Map(fn any, extra ...any) *Dict[K, V] {
	if d.state() != nil {
		return d
	}
	f, err := bind.Bind2(fn, extra...)
	if err != nil {
		return failedDict[K, V]("map", err)
	}
	if d.saveInPlace {
		return nil
	}
	out := make(map[K]V, len(d.m))
	for k, v := range d.m {
		r, err := f(k, v)
		if err != nil {
			return failedDict[K, V]("map", err)
		}
		nk, nv, err := entry[K, V](r)
		if err != nil {
			return failedDict[K, V]("map", fmt.Errorf("key %v: %w", k, err))
		}
		out[nk] = nv
	}
	return &Dict[K, V]{m: out}
}

// entry unpacks a Map result into a key and a value.
func entry[K comparable, V any](r any) (K, V, error) {
	var (
		k K
		v V
	)
	var parts []any
	switch t := r.(type) {
	case Pair[K, V]:
		return t.Key, t.Value, nil
	case bind.Tuple:
		parts = t
	case []any:
		parts = t
	}
	if len(parts) != 2 {
		return k, v, fmt.Errorf("%w: map function must return a key and a value, got %T", ErrInvalidArgument, r)
	}
	k, err := bind.Coerce[K](parts[0])
	if err != nil {
		return k, v, err
	}
	v, err = bind.Coerce[V](parts[1])
	return k, v, err
}

// Keep returns a new dict with the entries for which the predicate is truthy.
// On a saveInPlace dict it returns nil without calling fn.
func (d *Dict[K, V]) Keep(fn any, extra ...any) *Dict[K, V] {
	return d.filter("keep", true, fn, extra)
}

// Rem returns a new dict with the entries for which the predicate is falsy.
// On a saveInPlace dict it returns nil without calling fn.
func (d *Dict[K, V]) Rem(fn any, extra ...any) *Dict[K, V] {
	return d.filter("rem", false, fn, extra)
}

func (d *Dict[K, V]) filter(op string, want bool, fn any, extra []any) *Dict[K, V] {
	if d.state() != nil {
		return d
	}
	f, err := bind.Bind2(fn, extra...)
	if err != nil {
		return failedDict[K, V](op, err)
	}
	if d.saveInPlace {
		return nil
	}
	out := make(map[K]V, len(d.m))
	for k, v := range d.m {
		r, err := f(k, v)
		if err != nil {
			return failedDict[K, V](op, err)
		}
		if bind.Truthy(r) == want {
			out[k] = v
		}
	}
	return &Dict[K, V]{m: out}
}

// ─────────────────────────────────────────────────────────────────────────────
// Testing
// ─────────────────────────────────────────────────────────────────────────────

// scan reports whether some entry's predicate truthiness equals stop.
func (d *Dict[K, V]) scan(fn any, extra []any, stop bool) (bool, error) {
	if err := d.state(); err != nil {
		return false, err
	}
	f, err := bind.Bind2(fn, extra...)
	if err != nil {
		return false, err
	}
	for k, v := range d.m {
		r, err := f(k, v)
		if err != nil {
			return false, err
		}
		if bind.Truthy(r) == stop {
			return true, nil
		}
	}
	return false, nil
}

// All reports whether every entry satisfies the predicate.
// It stops at the first failure; an empty dict yields true.
func (d *Dict[K, V]) All(fn any, extra ...any) (bool, error) {
	miss, err := d.scan(fn, extra, false)
	return !miss && err == nil, err
}

// Some reports whether at least one entry satisfies the predicate.
func (d *Dict[K, V]) Some(fn any, extra ...any) (bool, error) {
	return d.scan(fn, extra, true)
}

// Has is an alias for [Dict.Some].
func (d *Dict[K, V]) Has(fn any, extra ...any) (bool, error) { return d.Some(fn, extra...) }

// Count returns the number of entries, or with a predicate the number of
// entries a copy would keep.
func (d *Dict[K, V]) Count(args ...any) (int, error) {
	if err := d.state(); err != nil {
		return 0, err
	}
	if len(args) == 0 {
		return len(d.m), nil
	}
	kept := d.Copy().Keep(args[0], args[1:]...)
	return kept.Len(), kept.Err()
}

// Empty reports whether the dict has no entries. Given a predicate it
// reports whether removing every matching entry from a copy leaves it empty,
// i.e. whether every entry satisfies the predicate.
func (d *Dict[K, V]) Empty(args ...any) (bool, error) {
	if err := d.state(); err != nil {
		return false, err
	}
	if len(args) == 0 {
		return len(d.m) == 0, nil
	}
	rest := d.Copy().Rem(args[0], args[1:]...)
	return rest.Len() == 0 && rest.Err() == nil, rest.Err()
}

// Do calls fn(d, args...), stores the result in [Dict.LastValue] and returns
// d. Bound args are always appended; there is no placeholder handling.
//
//	d.Do(func(d *collections.Dict[string, int]) int { return d.Len() })
func (d *Dict[K, V]) Do(fn any, args ...any) *Dict[K, V] {
	if d.state() != nil {
		return d
	}
	f, err := bind.Prepend(fn, args...)
	if err != nil {
		return failedDict[K, V]("do", err)
	}
	r, err := f(d)
	if err != nil {
		return failedDict[K, V]("do", err)
	}
	d.lastValue = r
	return d
}

// ─────────────────────────────────────────────────────────────────────────────
// Typed counterparts
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn for every entry. On a failed dict fn is never called and the
// chain error is returned.
func (d *Dict[K, V]) Each(fn func(K, V)) error {
	if err := d.state(); err != nil {
		return err
	}
	for k, v := range d.m {
		fn(k, v)
	}
	return nil
}

// KeepFunc is the typed form of [Dict.Keep]. It ignores saveInPlace.
func (d *Dict[K, V]) KeepFunc(fn func(K, V) bool) *Dict[K, V] {
	if d.state() != nil {
		return d
	}
	out := make(map[K]V, len(d.m))
	for k, v := range d.m {
		if fn(k, v) {
			out[k] = v
		}
	}
	return &Dict[K, V]{m: out}
}

// RemFunc is the typed form of [Dict.Rem]. It ignores saveInPlace.
func (d *Dict[K, V]) RemFunc(fn func(K, V) bool) *Dict[K, V] {
	return d.KeepFunc(func(k K, v V) bool { return !fn(k, v) })
}

// AllFunc is the typed form of [Dict.All].
func (d *Dict[K, V]) AllFunc(fn func(K, V) bool) (bool, error) {
	miss, err := d.SomeFunc(func(k K, v V) bool { return !fn(k, v) })
	return !miss && err == nil, err
}

// SomeFunc is the typed form of [Dict.Some].
func (d *Dict[K, V]) SomeFunc(fn func(K, V) bool) (bool, error) {
	if err := d.state(); err != nil {
		return false, err
	}
	for k, v := range d.m {
		if fn(k, v) {
			return true, nil
		}
	}
	return false, nil
}

// CountFunc is the typed form of [Dict.Count] with a predicate.
func (d *Dict[K, V]) CountFunc(fn func(K, V) bool) (int, error) {
	kept := d.KeepFunc(fn)
	return kept.Len(), kept.Err()
}
