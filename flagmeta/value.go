package flagmeta

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Value is a typed flag value. The set of implementations is closed; see the
// package documentation.
type Value interface {
	Type() Type
	String() string

	isValue()
}

// Int is an integer flag value.
type Int int64

func (Int) Type() Type { return IntType }

func (v Int) String() string { return strconv.FormatInt(int64(v), 10) }

func (Int) isValue() {}

// Bool is a boolean flag value.
type Bool bool

func (Bool) Type() Type { return BoolType }

func (v Bool) String() string { return strings.ToUpper(strconv.FormatBool(bool(v))) }

func (Bool) isValue() {}

// String is a string flag value.
type String string

func (String) Type() Type { return StringType }

func (v String) String() string { return string(v) }

func (String) isValue() {}

// Duration is a duration flag value.
type Duration time.Duration

func (Duration) Type() Type { return DurationType }

func (v Duration) String() string { return time.Duration(v).String() }

func (Duration) isValue() {}

// Custom carries an application-defined value together with its Type.
type Custom struct {
	typ Type
	v   any
}

// NewCustom wraps v as a value of the custom type typ.
// It panics if typ is not a custom type.
func NewCustom(typ Type, v any) Custom {
	if typ.Kind != KindCustom {
		panic(fmt.Sprintf("flagmeta: NewCustom with non-custom type %v", typ))
	}
	return Custom{typ: typ, v: v}
}

func (c Custom) Type() Type { return c.typ }

// Interface returns the wrapped Go value.
func (c Custom) Interface() any { return c.v }

func (c Custom) String() string {
	switch v := c.v.(type) {
	case fmt.Stringer:
		return v.String()
	case []string:
		return strings.Join(v, ",")
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func (Custom) isValue() {}

// As extracts the Go value of type T from a custom value.
func As[T any](v Value) (T, bool) {
	c, ok := v.(Custom)
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := c.v.(T)
	return t, ok
}
