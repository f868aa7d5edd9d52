package flagmeta

// Metadata describes one declared flag binding: the flag name and the value
// the bound property takes when no raw value is supplied. The default also
// fixes the value type the flag is parsed into.
//
// Metadata is immutable; With* methods return modified copies.
type Metadata struct {
	name        string
	def         Value
	description string
}

// New returns metadata for the flag name with default def.
func New(name string, def Value) Metadata {
	return Metadata{name: name, def: def}
}

// Name returns the flag name.
func (m Metadata) Name() string { return m.name }

// Default returns the default value.
func (m Metadata) Default() Value { return m.def }

// Description returns the optional human-readable description.
func (m Metadata) Description() string { return m.description }

// Type returns the type of the default value, or the zero Type if there is no
// default.
func (m Metadata) Type() Type {
	if m.def == nil {
		return Type{}
	}
	return m.def.Type()
}

// WithDescription returns a copy of m with the description set.
func (m Metadata) WithDescription(description string) Metadata {
	m.description = description
	return m
}

// IsZero reports whether m carries neither a name nor a default.
func (m Metadata) IsZero() bool {
	return m.name == "" && m.def == nil
}
