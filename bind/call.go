package bind

import (
	"fmt"
	"reflect"
)

// Tuple holds the results of a function returning more than one non-error
// value, in declaration order.
type Tuple []any

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// resolve turns f into a callable reflect.Value. Strings are looked up in
// the registry.
func resolve(f any) (reflect.Value, error) {
	if f == nil {
		return reflect.Value{}, fmt.Errorf("%w: missing function", ErrInvalidArgument)
	}
	if name, ok := f.(string); ok {
		fn, found := Lookup(name)
		if !found {
			return reflect.Value{}, fmt.Errorf("%w: %q", ErrUnknownFunc, name)
		}
		f = fn
	}
	fv := reflect.ValueOf(f)
	if fv.Kind() != reflect.Func {
		return reflect.Value{}, fmt.Errorf("%w: %T is not a function", ErrInvalidArgument, f)
	}
	if fv.IsNil() {
		return reflect.Value{}, fmt.Errorf("%w: nil %s", ErrInvalidArgument, fv.Type())
	}
	return fv, nil
}

func call(fv reflect.Value, args []any) (any, error) {
	ft := fv.Type()
	n := ft.NumIn()
	if ft.IsVariadic() {
		if len(args) < n-1 {
			return nil, fmt.Errorf("%w: %s wants at least %d arguments, got %d", ErrInvalidArgument, ft, n-1, len(args))
		}
	} else if len(args) != n {
		return nil, fmt.Errorf("%w: %s wants %d arguments, got %d", ErrInvalidArgument, ft, n, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, a := range args {
		pt := paramType(ft, i)
		v, err := convert(a, pt)
		if err != nil {
			return nil, fmt.Errorf("%w: argument %d of %s: %v", ErrInvalidArgument, i, ft, err)
		}
		in[i] = v
	}
	return unpack(ft, fv.Call(in))
}

func paramType(ft reflect.Type, i int) reflect.Type {
	if ft.IsVariadic() && i >= ft.NumIn()-1 {
		return ft.In(ft.NumIn() - 1).Elem()
	}
	return ft.In(i)
}

func unpack(ft reflect.Type, out []reflect.Value) (any, error) {
	if n := ft.NumOut(); n > 0 && ft.Out(n-1) == errorType {
		last := out[n-1]
		if !last.IsNil() {
			return nil, last.Interface().(error)
		}
		out = out[:n-1]
	}
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		return out[0].Interface(), nil
	}
	res := make(Tuple, len(out))
	for i, v := range out {
		res[i] = v.Interface()
	}
	return res, nil
}

// convert matches a against parameter type pt.
func convert(a any, pt reflect.Type) (reflect.Value, error) {
	if a == nil {
		if nilable(pt.Kind()) {
			return reflect.Zero(pt), nil
		}
		return reflect.Value{}, fmt.Errorf("cannot use nil as %s", pt)
	}
	av := reflect.ValueOf(a)
	at := av.Type()
	if at.AssignableTo(pt) {
		return av, nil
	}
	if numeric(at.Kind()) && numeric(pt.Kind()) {
		cv := av.Convert(pt)
		if cv.Convert(at).Equal(av) && !(negative(av) && unsigned(pt.Kind())) && !(unsigned(at.Kind()) && negative(cv)) {
			return cv, nil
		}
		return reflect.Value{}, fmt.Errorf("%v (%s) does not fit in %s", a, at, pt)
	}
	if at.Kind() == pt.Kind() && at.ConvertibleTo(pt) {
		return av.Convert(pt), nil
	}
	return reflect.Value{}, fmt.Errorf("cannot use %s as %s", at, pt)
}

// Convert matches v against type t using the argument matching rules of a
// bound call.
func Convert(v any, t reflect.Type) (reflect.Value, error) {
	rv, err := convert(v, t)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return rv, nil
}

// Coerce converts v to T using the argument matching rules of a bound call.
func Coerce[T any](v any) (T, error) {
	if t, ok := v.(T); ok {
		return t, nil
	}
	var zero T
	rv, err := Convert(v, reflect.TypeOf((*T)(nil)).Elem())
	if err != nil {
		return zero, err
	}
	out, _ := rv.Interface().(T)
	return out, nil
}

func nilable(k reflect.Kind) bool {
	switch k {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	}
	return false
}

func negative(v reflect.Value) bool {
	switch {
	case v.CanInt():
		return v.Int() < 0
	case v.CanFloat():
		return v.Float() < 0
	}
	return false
}

func unsigned(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func numeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
