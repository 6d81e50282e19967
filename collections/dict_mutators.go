package collections

// ─────────────────────────────────────────────────────────────────────────────
// Mutating adapters
//
// Like the List adapters these work on a copy: the returned dict has the
// change, the receiver does not, and the copy never has saveInPlace set.
// ─────────────────────────────────────────────────────────────────────────────

// Update returns a copy of d with every entry of maps written into it, left
// to right.
func (d *Dict[K, V]) Update(maps ...map[K]V) *Dict[K, V] {
	if d.state() != nil {
		return d
	}
	out := d.Copy()
	for _, m := range maps {
		for k, v := range m {
			out.m[k] = v
		}
	}
	return out
}

// UpdatePairs returns a copy of d with the given entries written into it.
func (d *Dict[K, V]) UpdatePairs(pairs ...Pair[K, V]) *Dict[K, V] {
	if d.state() != nil {
		return d
	}
	out := d.Copy()
	for _, p := range pairs {
		out.m[p.Key] = p.Value
	}
	return out
}

// Clear returns an empty copy of d.
func (d *Dict[K, V]) Clear() *Dict[K, V] {
	if d.state() != nil {
		return d
	}
	out := d.Copy()
	clear(out.m)
	return out
}
