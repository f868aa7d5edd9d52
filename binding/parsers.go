package binding

import (
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/apstndb/flagbind/flagmeta"
	"github.com/apstndb/flagbind/internal/parser"
)

// Parser converts an optional raw flag value into a typed value.
// A nil raw means the value is absent; parsers then return meta.Default().
type Parser func(raw *string, meta flagmeta.Metadata) (flagmeta.Value, error)

// UpdateFunc applies one named update. (*Engine).ApplyUpdate satisfies it, and
// it is what transports are handed as their listener callback.
type UpdateFunc func(name string, raw *string) error

// fromParser lifts a string parser into a Parser that honours absence.
func fromParser[T any](p parser.Parser[T], wrap func(T) flagmeta.Value) Parser {
	return func(raw *string, meta flagmeta.Metadata) (flagmeta.Value, error) {
		if raw == nil {
			return meta.Default(), nil
		}
		v, err := p.Parse(*raw)
		if err != nil {
			return nil, err
		}
		return wrap(v), nil
	}
}

var (
	parseInt = fromParser[int64](parser.NewIntParser(), func(v int64) flagmeta.Value {
		return flagmeta.Int(v)
	})
	parseBool = fromParser[bool](parser.NewBoolParser(), func(v bool) flagmeta.Value {
		return flagmeta.Bool(v)
	})
	parseString = fromParser[string](parser.NewStringParser(), func(v string) flagmeta.Value {
		return flagmeta.String(v)
	})
	parseDuration = fromParser[time.Duration](parser.NewDurationParser(), func(v time.Duration) flagmeta.Value {
		return flagmeta.Duration(v)
	})
)

// parseEnum resolves a member of the enumeration the default belongs to.
func parseEnum(raw *string, meta flagmeta.Metadata) (flagmeta.Value, error) {
	if raw == nil {
		return meta.Default(), nil
	}
	def, ok := meta.Default().(flagmeta.Member)
	if !ok || def.IsZero() {
		return nil, errors.New("default is not an enumeration member")
	}
	return def.Enum().Parse(*raw)
}

func builtinParsers() map[flagmeta.Type]Parser {
	return map[flagmeta.Type]Parser{
		flagmeta.IntType:      parseInt,
		flagmeta.BoolType:     parseBool,
		flagmeta.StringType:   parseString,
		flagmeta.DurationType: parseDuration,
	}
}

// IntParser builds an integer Parser from a parse function, for flags whose
// text form is not plain base-10.
func IntParser(fn func(string) (int64, error)) Parser {
	return fromParser[int64](parser.Func(fn), func(v int64) flagmeta.Value {
		return flagmeta.Int(v)
	})
}

// IntRangeParser builds an integer Parser rejecting values outside [min, max].
func IntRangeParser(min, max int64) Parser {
	return fromParser[int64](parser.NewIntRangeParser(min, max), func(v int64) flagmeta.Value {
		return flagmeta.Int(v)
	})
}

// DurationRangeParser builds a duration Parser rejecting values outside [min, max].
func DurationRangeParser(min, max time.Duration) Parser {
	return fromParser[time.Duration](parser.NewDurationRangeParser(min, max), func(v time.Duration) flagmeta.Value {
		return flagmeta.Duration(v)
	})
}

// StringLengthParser builds a string Parser rejecting values whose byte
// length is outside [min, max].
func StringLengthParser(min, max int) Parser {
	return fromParser[string](parser.NewStringLengthParser(min, max), func(v string) flagmeta.Value {
		return flagmeta.String(v)
	})
}

// CustomParser builds a Parser producing values of the custom type typ.
// Parsed values must pass every validator, in order.
// It panics if typ is not a custom type.
func CustomParser[T any](typ flagmeta.Type, fn func(string) (T, error), validators ...func(T) error) Parser {
	mustCustom(typ)
	p := parser.WithValidation[T](parser.Func(fn), lo.Map(validators, func(v func(T) error, _ int) parser.Validator[T] {
		return v
	})...)
	return fromParser[T](p, func(v T) flagmeta.Value {
		return flagmeta.NewCustom(typ, v)
	})
}

// ListParser builds a Parser for []string values of the custom type typ,
// splitting on sep. Elements are trimmed and empty elements dropped.
func ListParser(typ flagmeta.Type, sep string) Parser {
	mustCustom(typ)
	return fromParser[[]string](parser.NewListParser(sep), func(v []string) flagmeta.Value {
		return flagmeta.NewCustom(typ, v)
	})
}

func mustCustom(typ flagmeta.Type) {
	if typ.Kind != flagmeta.KindCustom {
		panic(fmt.Sprintf("binding: %v is not a custom type", typ))
	}
}
