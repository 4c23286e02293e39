package game

// Flags is a named bit collection over a 32-bit domain. The simulator keeps
// four independent flag domains (persistent actor flags, per-tick input
// flags, per-tick particle flags, and the read-only capability view decoded
// from the action code); they share this type but must never be mixed.
type Flags uint32

// Has reports whether ALL of the given bits are set.
func (f Flags) Has(bits ...Flags) bool {
	var mask Flags
	for _, b := range bits {
		mask |= b
	}
	return f&mask == mask
}

// HasAny reports whether at least one of the given bits is set.
func (f Flags) HasAny(bits ...Flags) bool {
	var mask Flags
	for _, b := range bits {
		mask |= b
	}
	return f&mask != 0
}

// Add sets the given bits. Adding a bit that is already set is a no-op.
func (f *Flags) Add(bits ...Flags) {
	for _, b := range bits {
		*f |= b
	}
}

// Remove clears the given bits. Removing an unset bit is a no-op.
func (f *Flags) Remove(bits ...Flags) {
	for _, b := range bits {
		*f &^= b
	}
}

// Set replaces the whole value.
func (f *Flags) Set(v Flags) {
	*f = v
}

// Clear zeroes the collection.
func (f *Flags) Clear() {
	*f = 0
}
