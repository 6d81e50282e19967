package bind

// placeholder is never zero-sized: pointers to distinct zero-size values may
// compare equal.
type placeholder struct {
	name string
}

func (p *placeholder) String() string { return p.name }

// Blank marks the slot a runtime value is written into:
//
//	f, _ := bind.Bind(strings.Repeat, "ab", bind.Blank)
//	s, _ := f(3) // → "ababab"
//
// It is compared by identity only. Passing Blank as ordinary data to a bound
// function is unsupported.
var Blank any = &placeholder{name: "bind.Blank"}

// IsBlank reports whether v is the [Blank] placeholder.
func IsBlank(v any) bool {
	p, ok := v.(*placeholder)
	return ok && p == Blank
}

// blankIndex returns the position of the first placeholder in args, or -1.
func blankIndex(args []any) int {
	for i, a := range args {
		if IsBlank(a) {
			return i
		}
	}
	return -1
}
