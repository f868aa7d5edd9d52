package flagmeta

import "fmt"

// Kind classifies a Value.
type Kind int

const (
	KindInvalid Kind = iota
	KindInt
	KindBool
	KindString
	KindDuration
	KindEnum
	KindCustom
)

var kindNames = [...]string{
	KindInvalid:  "INVALID",
	KindInt:      "INT",
	KindBool:     "BOOL",
	KindString:   "STRING",
	KindDuration: "DURATION",
	KindEnum:     "ENUM",
	KindCustom:   "CUSTOM",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Type identifies the value type of a flag. It is comparable and is used as a
// map key for type-level parser registration.
//
// Primitive kinds have exactly one Type each. Enumerations and custom values
// are distinguished by Name.
type Type struct {
	Kind Kind
	Name string
}

// Predefined primitive types.
var (
	IntType      = Type{Kind: KindInt, Name: "int"}
	BoolType     = Type{Kind: KindBool, Name: "bool"}
	StringType   = Type{Kind: KindString, Name: "string"}
	DurationType = Type{Kind: KindDuration, Name: "duration"}
)

// CustomType returns the Type for an application-defined value kind.
func CustomType(name string) Type {
	return Type{Kind: KindCustom, Name: name}
}

// IsValid reports whether t names a known kind.
func (t Type) IsValid() bool {
	return t.Kind > KindInvalid && t.Kind <= KindCustom && t.Name != ""
}

func (t Type) String() string {
	switch t.Kind {
	case KindEnum:
		return "enum " + t.Name
	case KindCustom:
		return "custom " + t.Name
	case KindInvalid:
		return "<invalid>"
	default:
		return t.Name
	}
}
