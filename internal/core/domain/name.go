package domain

import "unique"

// Name is an interned identifier for dependencies and categories.
// Registry names repeat across the registry, probe results, reports, and the
// probe cache, so they are interned to keep comparisons cheap and allocations low.
type Name struct {
	h unique.Handle[string]
}

// NewName interns the given string and returns it as a Name.
func NewName(s string) Name {
	return Name{h: unique.Make(s)}
}

// String returns the underlying string value.
func (n Name) String() string {
	var zero unique.Handle[string]
	if n.h == zero {
		return ""
	}
	return n.h.Value()
}

// IsZero reports whether the name is empty.
func (n Name) IsZero() bool {
	var zero unique.Handle[string]
	return n.h == zero
}

// MarshalText implements encoding.TextMarshaler.
func (n Name) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Name) UnmarshalText(text []byte) error {
	n.h = unique.Make(string(text))
	return nil
}
