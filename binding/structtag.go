package binding

import (
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/apstndb/flagbind/flagmeta"
	"github.com/apstndb/flagbind/internal/tagparse"
)

// StructOption configures FromStruct.
type StructOption func(*structConfig)

type structConfig struct {
	enums   map[reflect.Type]*flagmeta.Enum
	customs map[reflect.Type]flagmeta.Type
}

// WithEnum binds fields of Go type t as members of enum. The enum must have
// been built with flagmeta.EnumOf over values of type t.
func WithEnum(t reflect.Type, enum *flagmeta.Enum) StructOption {
	return func(c *structConfig) {
		c.enums[t] = enum
	}
}

// WithCustom binds fields of Go type t as values of the custom type typ.
// The default is the field's value at FromStruct time.
func WithCustom(t reflect.Type, typ flagmeta.Type) StructOption {
	return func(c *structConfig) {
		c.customs[t] = typ
	}
}

type structContainer struct {
	decls []Declaration
}

func (s *structContainer) FlagBindings() []Declaration {
	return s.decls
}

var durationType = reflect.TypeFor[time.Duration]()

// FromStruct builds a Container from the `flag` tags of the struct ptr points
// to. Example:
//
//	type settings struct {
//		SpawnVerticalOffset int `flag:"name=spawn_z_offset,default=0,desc='Vertical spawn offset'"`
//	}
//
// Supported field types are integers, bool, string, time.Duration, and types
// registered with WithEnum or WithCustom. A tag without a default uses the
// field's current value. Tag defaults must fit the field, and unsigned fields
// must not hold values above math.MaxInt64.
func FromStruct(ptr any, opts ...StructOption) (Container, error) {
	rv := reflect.ValueOf(ptr)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("FromStruct: want non-nil pointer to struct, got %T", ptr)
	}

	cfg := &structConfig{
		enums:   make(map[reflect.Type]*flagmeta.Enum),
		customs: make(map[reflect.Type]flagmeta.Type),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	sv := rv.Elem()
	st := sv.Type()
	var decls []Declaration
	for i := 0; i < st.NumField(); i++ {
		field := st.Field(i)
		tag, err := tagparse.Parse(field.Tag.Get("flag"))
		if err != nil {
			return nil, &InvalidDeclarationError{Property: field.Name, Reason: err.Error()}
		}
		if tag == nil {
			continue
		}
		if !field.IsExported() {
			return nil, &InvalidDeclarationError{Property: field.Name, Reason: "unexported field"}
		}

		accessor, err := cfg.accessor(sv.Field(i))
		if err != nil {
			return nil, &InvalidDeclarationError{Property: field.Name, Reason: err.Error()}
		}

		def := accessor.Get()
		if tag.HasDefault {
			def, err = cfg.parseTagDefault(field.Type, accessor.Type(), tag.Default)
			if err == nil {
				err = cfg.checkFits(field.Type, def)
			}
			if err != nil {
				return nil, &InvalidDeclarationError{
					Property: field.Name,
					Reason:   fmt.Sprintf("default %q: %v", tag.Default, err),
				}
			}
		} else if m, ok := def.(flagmeta.Member); ok && m.IsZero() {
			return nil, &InvalidDeclarationError{
				Property: field.Name,
				Reason:   fmt.Sprintf("value %v is not a member of enum %s", sv.Field(i).Interface(), accessor.Type().Name),
			}
		}

		decls = append(decls, Declaration{
			Property: field.Name,
			Accessor: accessor,
			Metadata: flagmeta.New(tag.Name, def).WithDescription(tag.Description),
		})
	}

	return &structContainer{decls: decls}, nil
}

// parseTagDefault parses a tag default with the built-in parser for typ.
func (c *structConfig) parseTagDefault(ft reflect.Type, typ flagmeta.Type, raw string) (flagmeta.Value, error) {
	switch typ.Kind {
	case flagmeta.KindEnum:
		return c.enums[ft].Parse(raw)
	case flagmeta.KindCustom:
		return nil, fmt.Errorf("tag defaults are not supported for %v", typ)
	default:
		return builtinParsers()[typ](&raw, flagmeta.Metadata{})
	}
}

// checkFits reports whether a field of type ft can hold v, by writing v into a
// scratch value.
func (c *structConfig) checkFits(ft reflect.Type, v flagmeta.Value) error {
	scratch, err := c.accessor(reflect.New(ft).Elem())
	if err != nil {
		return err
	}
	return scratch.Set(v)
}

func (c *structConfig) accessor(fv reflect.Value) (Accessor, error) {
	ft := fv.Type()

	if enum, ok := c.enums[ft]; ok {
		return enumFieldValue(fv, enum), nil
	}
	if typ, ok := c.customs[ft]; ok {
		if typ.Kind != flagmeta.KindCustom {
			return nil, fmt.Errorf("%v is not a custom type", typ)
		}
		return customFieldValue(fv, typ), nil
	}
	if ft == durationType {
		return DurationField(fv.Addr().Interface().(*time.Duration)), nil
	}

	switch ft.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Funcs(flagmeta.IntType,
			func() flagmeta.Value { return flagmeta.Int(fv.Int()) },
			func(v flagmeta.Value) error {
				n := int64(v.(flagmeta.Int))
				if fv.OverflowInt(n) {
					return fmt.Errorf("value %d out of range for %v", n, ft)
				}
				fv.SetInt(n)
				return nil
			}), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		// Flag values are int64; larger unsigned values have no representation.
		if fv.Uint() > math.MaxInt64 {
			return nil, fmt.Errorf("value %d exceeds the flag value range", fv.Uint())
		}
		return Funcs(flagmeta.IntType,
			func() flagmeta.Value { return flagmeta.Int(fv.Uint()) },
			func(v flagmeta.Value) error {
				n := int64(v.(flagmeta.Int))
				if n < 0 || fv.OverflowUint(uint64(n)) {
					return fmt.Errorf("value %d out of range for %v", n, ft)
				}
				fv.SetUint(uint64(n))
				return nil
			}), nil
	case reflect.Bool:
		return Funcs(flagmeta.BoolType,
			func() flagmeta.Value { return flagmeta.Bool(fv.Bool()) },
			func(v flagmeta.Value) error {
				fv.SetBool(bool(v.(flagmeta.Bool)))
				return nil
			}), nil
	case reflect.String:
		return Funcs(flagmeta.StringType,
			func() flagmeta.Value { return flagmeta.String(fv.String()) },
			func(v flagmeta.Value) error {
				fv.SetString(string(v.(flagmeta.String)))
				return nil
			}), nil
	default:
		return nil, fmt.Errorf("unsupported field type %v", ft)
	}
}

func enumFieldValue(fv reflect.Value, enum *flagmeta.Enum) Accessor {
	return Funcs(enum.Type(),
		func() flagmeta.Value {
			m, _ := enum.Of(fv.Interface())
			return m
		},
		func(v flagmeta.Value) error {
			m := v.(flagmeta.Member)
			pv := reflect.ValueOf(m.Payload())
			if !pv.IsValid() || pv.Type() != fv.Type() {
				return fmt.Errorf("member %s of enum %s carries no %v payload", m.Name(), enum.Name(), fv.Type())
			}
			fv.Set(pv)
			return nil
		})
}

func customFieldValue(fv reflect.Value, typ flagmeta.Type) Accessor {
	return Funcs(typ,
		func() flagmeta.Value { return flagmeta.NewCustom(typ, fv.Interface()) },
		func(v flagmeta.Value) error {
			x := v.(flagmeta.Custom).Interface()
			if x == nil {
				fv.SetZero()
				return nil
			}
			xv := reflect.ValueOf(x)
			if !xv.Type().AssignableTo(fv.Type()) {
				return fmt.Errorf("custom value of %T is not assignable to %v", x, fv.Type())
			}
			fv.Set(xv)
			return nil
		})
}
