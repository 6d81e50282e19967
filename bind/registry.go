package bind

import "sync"

// registry is the package-level, goroutine-safe store of named functions.
var registry struct {
	mu    sync.RWMutex
	funcs map[string]any
}

func init() {
	registry.funcs = make(map[string]any)
}

// Register stores fn under name so it can be passed to [Bind], [Bind2] and
// [Apply] as a plain string. An existing entry with the same name is
// replaced. fn is validated when it is bound, not here.
//
//	bind.Register("even", func(n int) bool { return n%2 == 0 })
//	ok, _ := collections.New(1, 2, 3).Some("even")
func Register(name string, fn any) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.funcs[name] = fn
}

// Registered reports whether a function is stored under name.
func Registered(name string) bool {
	_, ok := Lookup(name)
	return ok
}

// Lookup returns the function stored under name.
func Lookup(name string) (any, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	fn, ok := registry.funcs[name]
	return fn, ok
}

// Flush removes every registered function.
// Intended for use in tests.
func Flush() {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.funcs = make(map[string]any)
}
