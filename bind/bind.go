package bind

import "fmt"

// Func is a single-argument callable produced by [Bind].
type Func func(x any) (any, error)

// Func2 is a (key, value) callable produced by [Bind2].
type Func2 func(k, v any) (any, error)

// Bind resolves f and args into a [Func]:
//
//   - no args: x -> f(x)
//   - args without [Blank]: x -> f(x, args...)
//   - args with [Blank]: x -> f(args...) with x written at the placeholder
//
// Only the first placeholder is substituted; any later one is passed through
// as a literal value.
//
//	add := func(a, b int) int { return a + b }
//	f, _ := bind.Bind(add, 10)
//	v, _ := f(5) // add(5, 10)
func Bind(f any, args ...any) (Func, error) {
	if len(args) == 0 {
		return Call(f)
	}
	if pos := blankIndex(args); pos >= 0 {
		return At(f, pos, args...)
	}
	return Prepend(f, args...)
}

// Call returns x -> f(x).
func Call(f any) (Func, error) {
	fv, err := resolve(f)
	if err != nil {
		return nil, err
	}
	return func(x any) (any, error) {
		return call(fv, []any{x})
	}, nil
}

// Prepend returns x -> f(x, args...). The bound arguments are copied.
func Prepend(f any, args ...any) (Func, error) {
	fv, err := resolve(f)
	if err != nil {
		return nil, err
	}
	bound := append([]any(nil), args...)
	return func(x any) (any, error) {
		in := make([]any, 0, len(bound)+1)
		in = append(in, x)
		in = append(in, bound...)
		return call(fv, in)
	}, nil
}

// At returns a callable that writes its runtime value into args[pos] and calls
// f(args...). The argument slice is captured once and overwritten on every
// call, so the returned Func must not be shared between goroutines.
func At(f any, pos int, args ...any) (Func, error) {
	fv, err := resolve(f)
	if err != nil {
		return nil, err
	}
	if pos < 0 || pos >= len(args) {
		return nil, fmt.Errorf("%w: placeholder position %d out of range [0, %d)", ErrInvalidArgument, pos, len(args))
	}
	bound := append([]any(nil), args...)
	return func(x any) (any, error) {
		bound[pos] = x
		return call(fv, bound)
	}, nil
}

// Bind2 returns (k, v) -> f(k, v, extra...).
//
// There is no placeholder support: a [Blank] inside extra is handed to f
// unchanged.
func Bind2(f any, extra ...any) (Func2, error) {
	fv, err := resolve(f)
	if err != nil {
		return nil, err
	}
	bound := append([]any(nil), extra...)
	return func(k, v any) (any, error) {
		in := make([]any, 0, len(bound)+2)
		in = append(in, k, v)
		in = append(in, bound...)
		return call(fv, in)
	}, nil
}

// Apply calls f(args...) directly, with the same argument matching and result
// handling as a bound call.
func Apply(f any, args ...any) (any, error) {
	fv, err := resolve(f)
	if err != nil {
		return nil, err
	}
	return call(fv, args)
}
