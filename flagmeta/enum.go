package flagmeta

import (
	"fmt"
	"reflect"

	"github.com/apstndb/flagbind/internal/parser"
)

// Enum describes an enumeration: a name and an ordered list of members.
// An Enum is immutable once constructed and safe for concurrent use.
type Enum struct {
	name     string
	members  []enumMember
	byName   map[string]int
	byValue  map[any]int
	parser   *parser.EnumParser[int]
	typeInfo Type
}

type enumMember struct {
	name    string
	payload any
}

// NewEnum creates an enumeration whose members are identified by name only.
// It panics on an empty enum name, an empty member list, or duplicate member
// names; these are declaration mistakes, not runtime conditions.
func NewEnum(name string, members ...string) *Enum {
	ms := make([]enumMember, len(members))
	for i, m := range members {
		ms[i] = enumMember{name: m}
	}
	return newEnum(name, ms)
}

// EnumOf creates an enumeration from Go values. Each member is named by the
// value's String method and carries the value itself as payload.
func EnumOf[T fmt.Stringer](name string, values ...T) *Enum {
	ms := make([]enumMember, len(values))
	for i, v := range values {
		ms[i] = enumMember{name: v.String(), payload: v}
	}
	return newEnum(name, ms)
}

func newEnum(name string, members []enumMember) *Enum {
	if name == "" {
		panic("flagmeta: enum name must not be empty")
	}
	if len(members) == 0 {
		panic(fmt.Sprintf("flagmeta: enum %s has no members", name))
	}

	e := &Enum{
		name:     name,
		members:  members,
		byName:   make(map[string]int, len(members)),
		byValue:  make(map[any]int, len(members)),
		typeInfo: Type{Kind: KindEnum, Name: name},
	}
	for i, m := range members {
		if m.name == "" {
			panic(fmt.Sprintf("flagmeta: enum %s has an unnamed member at %d", name, i))
		}
		if _, dup := e.byName[m.name]; dup {
			panic(fmt.Sprintf("flagmeta: enum %s has duplicate member %s", name, m.name))
		}
		e.byName[m.name] = i
		if isComparable(m.payload) {
			e.byValue[m.payload] = i
		}
	}
	e.parser = parser.NewEnumParser(e.byName)
	return e
}

// Name returns the enumeration name.
func (e *Enum) Name() string { return e.name }

// Type returns the Type shared by all members.
func (e *Enum) Type() Type { return e.typeInfo }

// Len returns the number of members.
func (e *Enum) Len() int { return len(e.members) }

// Members returns all members in declaration order.
func (e *Enum) Members() []Member {
	result := make([]Member, len(e.members))
	for i := range e.members {
		result[i] = Member{enum: e, index: i}
	}
	return result
}

// Names returns the member names in declaration order.
func (e *Enum) Names() []string {
	result := make([]string, len(e.members))
	for i, m := range e.members {
		result[i] = m.name
	}
	return result
}

// Member looks up a member by its exact name.
func (e *Enum) Member(name string) (Member, bool) {
	i, ok := e.byName[name]
	if !ok {
		return Member{}, false
	}
	return Member{enum: e, index: i}, true
}

// MustMember is like Member but panics if name is not a member.
func (e *Enum) MustMember(name string) Member {
	m, ok := e.Member(name)
	if !ok {
		panic(fmt.Sprintf("flagmeta: %s is not a member of enum %s", name, e.name))
	}
	return m
}

// Of returns the member whose payload equals v.
func (e *Enum) Of(v any) (Member, bool) {
	if !isComparable(v) {
		return Member{}, false
	}
	i, ok := e.byValue[v]
	if !ok {
		return Member{}, false
	}
	return Member{enum: e, index: i}, true
}

// Parse resolves raw to a member. An exact name match wins; otherwise the
// match is case-insensitive. Surrounding whitespace is ignored.
func (e *Enum) Parse(raw string) (Member, error) {
	i, err := e.parser.Parse(raw)
	if err != nil {
		return Member{}, fmt.Errorf("enum %s: %w", e.name, err)
	}
	return Member{enum: e, index: i}, nil
}

func isComparable(v any) bool {
	return v != nil && reflect.TypeOf(v).Comparable()
}

// Member is a member of an Enum. The zero Member belongs to no enumeration.
type Member struct {
	enum  *Enum
	index int
}

// Enum returns the enumeration the member belongs to.
func (m Member) Enum() *Enum { return m.enum }

// IsZero reports whether m is the zero Member.
func (m Member) IsZero() bool { return m.enum == nil }

// Name returns the member name.
func (m Member) Name() string {
	if m.enum == nil {
		return ""
	}
	return m.enum.members[m.index].name
}

// Ordinal returns the declaration index of the member.
func (m Member) Ordinal() int { return m.index }

// Payload returns the Go value the member was created from by EnumOf, or nil.
func (m Member) Payload() any {
	if m.enum == nil {
		return nil
	}
	return m.enum.members[m.index].payload
}

func (m Member) Type() Type {
	if m.enum == nil {
		return Type{Kind: KindEnum}
	}
	return m.enum.typeInfo
}

func (m Member) String() string { return m.Name() }

func (Member) isValue() {}
