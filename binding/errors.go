package binding

import (
	"errors"
	"fmt"

	"github.com/apstndb/flagbind/flagmeta"
)

// ErrNilContainer is returned by Register when given a nil container.
var ErrNilContainer = errors.New("binding: nil container")

// Error types for proper error handling with errors.Is/As
type (
	// UnresolvedParserError is returned by Register when neither a
	// name-level nor a type-level parser exists for a declaration.
	UnresolvedParserError struct {
		Flag     string
		Property string
		Type     flagmeta.Type
	}

	// InvalidDeclarationError is returned when a declaration is malformed.
	InvalidDeclarationError struct {
		Property string
		Reason   string
	}

	// UnboundFlagError is returned for updates to a flag with no binding,
	// when the engine uses the UnboundError policy.
	UnboundFlagError struct {
		Name string
	}

	// ConversionError is returned when a raw value cannot be converted to the
	// bound property's type. The property is left unchanged.
	ConversionError struct {
		Flag string
		// Raw is the offending raw value; nil means the value was absent.
		Raw *string
		Err error
	}

	// TypeMismatchError is returned by accessors given a value of another type.
	TypeMismatchError struct {
		Want flagmeta.Type
		Got  flagmeta.Type
	}
)

func (e *UnresolvedParserError) Error() string {
	return fmt.Sprintf("no parser for flag %s (property %s, type %v)", e.Flag, e.Property, e.Type)
}

func (e *InvalidDeclarationError) Error() string {
	return fmt.Sprintf("invalid declaration for property %s: %s", e.Property, e.Reason)
}

func (e *UnboundFlagError) Error() string {
	return fmt.Sprintf("unbound flag: %s", e.Name)
}

func (e *ConversionError) Error() string {
	if e.Raw == nil {
		return fmt.Sprintf("flag %s: cannot apply absent value: %v", e.Flag, e.Err)
	}
	return fmt.Sprintf("flag %s: invalid value %q: %v", e.Flag, *e.Raw, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: want %v, got %v", e.Want, e.Got)
}
