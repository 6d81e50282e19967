package arr

import "strings"

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation lookup for map[string]any
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "name": "Alice",
//	        "address": map[string]any{"city": "London"},
//	    },
//	}
//
//	Lookup(m, "user.address.city")  → "London", true
//	Lookup(m, "user.age")           → nil, false
// ─────────────────────────────────────────────────────────────────────────────

// Lookup retrieves the value stored at a dot-notation key. A key that exists
// literally (dots included) wins over the nested path.
func Lookup(m map[string]any, key string) (any, bool) {
	if v, ok := m[key]; ok {
		return v, true
	}
	segments := strings.Split(key, ".")
	current := m
	for i, seg := range segments {
		val, ok := current[seg]
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return val, true
		}
		nested, ok := val.(map[string]any)
		if !ok {
			return nil, false
		}
		current = nested
	}
	return nil, false
}
