package collections

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/hasbyte1/go-chain-utils/arr"
	"github.com/hasbyte1/go-chain-utils/bind"
)

// ─────────────────────────────────────────────────────────────────────────────
// Reflective element lookups behind Attr, Item and Invoke
// ─────────────────────────────────────────────────────────────────────────────

// indirect unwraps pointers and interfaces. ok is false on a nil along the way.
func indirect(v reflect.Value) (reflect.Value, bool) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return v, false
		}
		v = v.Elem()
	}
	return v, v.IsValid()
}

// method finds name on v, on the value v points to, or on a pointer to a copy
// of it so that pointer-receiver methods are reachable from stored values.
func method(v reflect.Value, name string) (reflect.Value, bool) {
	if !v.IsValid() {
		return reflect.Value{}, false
	}
	if v.Kind() != reflect.Interface {
		if m := v.MethodByName(name); m.IsValid() {
			return m, true
		}
	}
	base, ok := indirect(v)
	if !ok {
		return reflect.Value{}, false
	}
	if m := base.MethodByName(name); m.IsValid() {
		return m, true
	}
	p := reflect.New(base.Type())
	p.Elem().Set(base)
	if m := p.MethodByName(name); m.IsValid() {
		return m, true
	}
	return reflect.Value{}, false
}

func attrOf(v reflect.Value, name string) (reflect.Value, bool) {
	if base, ok := indirect(v); ok {
		switch base.Kind() {
		case reflect.Struct:
			if f, found := base.Type().FieldByName(name); found && f.IsExported() {
				if fv, err := base.FieldByIndexErr(f.Index); err == nil {
					return fv, true
				}
			}
		case reflect.Map:
			if kt := base.Type().Key(); kt.Kind() == reflect.String {
				if mv := base.MapIndex(reflect.ValueOf(name).Convert(kt)); mv.IsValid() {
					return mv, true
				}
			}
		}
	}
	return method(v, name)
}

func attr(x any, name string) (any, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrNoAttribute)
	}
	cur := reflect.ValueOf(x)
	for _, seg := range strings.Split(name, ".") {
		next, ok := attrOf(cur, seg)
		if !ok {
			return nil, fmt.Errorf("%w: %T has no %q", ErrNoAttribute, x, name)
		}
		cur = next
	}
	return cur.Interface(), nil
}

func item(x any, key any) (any, error) {
	if m, ok := x.(map[string]any); ok {
		if k, isString := key.(string); isString {
			if v, found := arr.Lookup(m, k); found {
				return v, nil
			}
			return nil, fmt.Errorf("%w: key %q", ErrNoItem, k)
		}
	}

	v, ok := indirect(reflect.ValueOf(x))
	if !ok {
		return nil, fmt.Errorf("%w: cannot index %T", ErrNoItem, x)
	}
	switch v.Kind() {
	case reflect.Slice, reflect.Array, reflect.String:
		i, err := bind.Coerce[int](key)
		if err != nil {
			return nil, fmt.Errorf("%w: %T index %v: %v", ErrNoItem, x, key, err)
		}
		if v.Kind() == reflect.String {
			runes := []rune(v.String())
			idx, ok := arr.Index(i, len(runes))
			if !ok {
				return nil, fmt.Errorf("%w: index %d out of range [0, %d)", ErrNoItem, i, len(runes))
			}
			return string(runes[idx]), nil
		}
		idx, ok := arr.Index(i, v.Len())
		if !ok {
			return nil, fmt.Errorf("%w: index %d out of range [0, %d)", ErrNoItem, i, v.Len())
		}
		return v.Index(idx).Interface(), nil
	case reflect.Map:
		kv, err := bind.Convert(key, v.Type().Key())
		if err != nil {
			return nil, fmt.Errorf("%w: %T key %v: %v", ErrNoItem, x, key, err)
		}
		mv := v.MapIndex(kv)
		if !mv.IsValid() {
			return nil, fmt.Errorf("%w: key %v", ErrNoItem, key)
		}
		return mv.Interface(), nil
	}
	return nil, fmt.Errorf("%w: cannot index %T", ErrNoItem, x)
}

func invoke(x any, name string, args []any) (any, error) {
	m, ok := method(reflect.ValueOf(x), name)
	if !ok {
		return nil, fmt.Errorf("%w: %T has no method %q", ErrNoMethod, x, name)
	}
	return bind.Apply(m.Interface(), args...)
}
