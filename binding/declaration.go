package binding

import (
	"fmt"

	"github.com/apstndb/flagbind/flagmeta"
)

// Declaration binds one property of a container to a flag.
type Declaration struct {
	// Property names the bound property in diagnostics.
	Property string
	Accessor Accessor
	Metadata flagmeta.Metadata
}

// Container is an application object whose properties are bound to flags.
//
// The engine identifies a container by interface equality, so containers
// passed to Unregister must be of a comparable type, usually a pointer.
type Container interface {
	FlagBindings() []Declaration
}

// Declarations adapts a function to the Container interface.
// Func values are not comparable, so bindings registered through a
// Declarations value cannot be removed with Unregister.
type Declarations func() []Declaration

func (d Declarations) FlagBindings() []Declaration {
	return d()
}

func (d Declaration) validate() error {
	property := d.Property
	if property == "" {
		property = d.Metadata.Name()
	}
	invalid := func(reason string) error {
		return &InvalidDeclarationError{Property: property, Reason: reason}
	}

	switch {
	case d.Metadata.Name() == "":
		return invalid("empty flag name")
	case d.Accessor == nil:
		return invalid("nil accessor")
	case d.Metadata.Default() == nil:
		return invalid("nil default")
	case !d.Metadata.Type().IsValid():
		return invalid("default has no valid type")
	case d.Accessor.Type() != d.Metadata.Type():
		return invalid(fmt.Sprintf("flag %s: accessor type %v does not match default type %v",
			d.Metadata.Name(), d.Accessor.Type(), d.Metadata.Type()))
	}
	return nil
}
