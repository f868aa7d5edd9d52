package binding

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/constraints"

	"github.com/apstndb/flagbind/flagmeta"
)

// Accessor reads and writes one bound property. Set must reject values whose
// Type differs from Type() without modifying the property.
type Accessor interface {
	Type() flagmeta.Type
	Get() flagmeta.Value
	Set(v flagmeta.Value) error
}

// typedAccessor converts between a Go value held at ptr and flag values.
type typedAccessor[T any] struct {
	typ  flagmeta.Type
	ptr  *T
	to   func(T) flagmeta.Value
	from func(flagmeta.Value) (T, error)
}

func (a *typedAccessor[T]) Type() flagmeta.Type { return a.typ }

func (a *typedAccessor[T]) Get() flagmeta.Value { return a.to(*a.ptr) }

func (a *typedAccessor[T]) Set(v flagmeta.Value) error {
	if err := checkType(a.typ, v); err != nil {
		return err
	}
	t, err := a.from(v)
	if err != nil {
		return err
	}
	*a.ptr = t
	return nil
}

func checkType(want flagmeta.Type, v flagmeta.Value) error {
	if v == nil {
		return &TypeMismatchError{Want: want}
	}
	if got := v.Type(); got != want {
		return &TypeMismatchError{Want: want, Got: got}
	}
	return nil
}

// IntField binds an integer field. Values that do not fit in T are rejected.
// Flag values are int64, so an unsigned field holding more than
// math.MaxInt64 reads back as math.MaxInt64.
func IntField[T constraints.Integer](ptr *T) Accessor {
	return &typedAccessor[T]{
		typ: flagmeta.IntType,
		ptr: ptr,
		to: func(v T) flagmeta.Value {
			if v > 0 && int64(v) < 0 {
				return flagmeta.Int(math.MaxInt64)
			}
			return flagmeta.Int(v)
		},
		from: func(v flagmeta.Value) (T, error) {
			n := int64(v.(flagmeta.Int))
			t := T(n)
			if int64(t) != n || (t < 0) != (n < 0) {
				return t, fmt.Errorf("value %d out of range for %T", n, t)
			}
			return t, nil
		},
	}
}

// BoolField binds a boolean field.
func BoolField[T ~bool](ptr *T) Accessor {
	return &typedAccessor[T]{
		typ:  flagmeta.BoolType,
		ptr:  ptr,
		to:   func(v T) flagmeta.Value { return flagmeta.Bool(v) },
		from: func(v flagmeta.Value) (T, error) { return T(v.(flagmeta.Bool)), nil },
	}
}

// StringField binds a string field.
func StringField[T ~string](ptr *T) Accessor {
	return &typedAccessor[T]{
		typ:  flagmeta.StringType,
		ptr:  ptr,
		to:   func(v T) flagmeta.Value { return flagmeta.String(v) },
		from: func(v flagmeta.Value) (T, error) { return T(v.(flagmeta.String)), nil },
	}
}

// DurationField binds a time.Duration field.
func DurationField(ptr *time.Duration) Accessor {
	return &typedAccessor[time.Duration]{
		typ:  flagmeta.DurationType,
		ptr:  ptr,
		to:   func(v time.Duration) flagmeta.Value { return flagmeta.Duration(v) },
		from: func(v flagmeta.Value) (time.Duration, error) { return time.Duration(v.(flagmeta.Duration)), nil },
	}
}

// EnumField binds a field holding Go enum values lifted with flagmeta.EnumOf.
// The member payload is stored in the field.
func EnumField[T comparable](ptr *T, enum *flagmeta.Enum) Accessor {
	return &typedAccessor[T]{
		typ: enum.Type(),
		ptr: ptr,
		to: func(v T) flagmeta.Value {
			m, _ := enum.Of(v)
			return m
		},
		from: func(v flagmeta.Value) (T, error) {
			m := v.(flagmeta.Member)
			t, ok := m.Payload().(T)
			if !ok {
				return t, fmt.Errorf("member %s of enum %s carries no %T payload", m.Name(), enum.Name(), t)
			}
			return t, nil
		},
	}
}

// MemberField binds a field holding a flagmeta.Member of enum.
func MemberField(ptr *flagmeta.Member, enum *flagmeta.Enum) Accessor {
	return &typedAccessor[flagmeta.Member]{
		typ:  enum.Type(),
		ptr:  ptr,
		to:   func(v flagmeta.Member) flagmeta.Value { return v },
		from: func(v flagmeta.Value) (flagmeta.Member, error) { return v.(flagmeta.Member), nil },
	}
}

// CustomField binds a field of an application-defined type.
func CustomField[T any](ptr *T, typ flagmeta.Type) Accessor {
	mustCustom(typ)
	return &typedAccessor[T]{
		typ: typ,
		ptr: ptr,
		to:  func(v T) flagmeta.Value { return flagmeta.NewCustom(typ, v) },
		from: func(v flagmeta.Value) (T, error) {
			t, ok := flagmeta.As[T](v)
			if !ok {
				return t, fmt.Errorf("custom value %v is not a %T", v, t)
			}
			return t, nil
		},
	}
}

type funcsAccessor struct {
	typ flagmeta.Type
	get func() flagmeta.Value
	set func(flagmeta.Value) error
}

// Funcs builds an accessor from a getter and a setter, for computed
// properties. The setter only sees values of type typ.
func Funcs(typ flagmeta.Type, get func() flagmeta.Value, set func(flagmeta.Value) error) Accessor {
	return &funcsAccessor{typ: typ, get: get, set: set}
}

func (a *funcsAccessor) Type() flagmeta.Type { return a.typ }

func (a *funcsAccessor) Get() flagmeta.Value { return a.get() }

func (a *funcsAccessor) Set(v flagmeta.Value) error {
	if err := checkType(a.typ, v); err != nil {
		return err
	}
	return a.set(v)
}
