package binding

import (
	"errors"
	"log/slog"
	"maps"
	"reflect"
	"slices"
	"sync"

	"github.com/samber/lo"

	"github.com/apstndb/flagbind/flagmeta"
)

// UnboundPolicy selects how ApplyUpdate treats updates for unbound flags.
type UnboundPolicy int

const (
	// UnboundIgnore logs a warning and reports success.
	UnboundIgnore UnboundPolicy = iota
	// UnboundError returns an *UnboundFlagError.
	UnboundError
)

// Engine owns a parser registry and a binding table.
// It is safe for concurrent use. Property writes made by ApplyUpdate and reads
// made by Lookup, Bindings and Value are serialized by the engine; accesses
// to a bound property from outside the engine are the owner's to synchronize.
type Engine struct {
	mu       sync.RWMutex
	byType   map[flagmeta.Type]Parser
	byName   map[string]Parser
	bindings map[string]*entry
	logger   Logger
	unbound  UnboundPolicy
}

type entry struct {
	target   Container
	property string
	accessor Accessor
	meta     flagmeta.Metadata
	parser   Parser
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger for engine diagnostics. The default is
// slog.Default().
func WithLogger(l Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithUnboundPolicy sets the policy for updates to unbound flags.
func WithUnboundPolicy(p UnboundPolicy) Option {
	return func(e *Engine) {
		e.unbound = p
	}
}

// WithParserForType installs a type-level parser, as SetParserForType.
func WithParserForType(t flagmeta.Type, p Parser) Option {
	return func(e *Engine) {
		e.setParserForType(t, p)
	}
}

// WithParserForName installs a name-level parser, as SetParserForName.
func WithParserForName(name string, p Parser) Option {
	return func(e *Engine) {
		e.setParserForName(name, p)
	}
}

// NewEngine creates an engine with the built-in int, bool, string and
// duration parsers installed.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		byType:   builtinParsers(),
		byName:   make(map[string]Parser),
		bindings: make(map[string]*entry),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetParserForName installs p for the flag name. It is consulted by later
// registrations of name and wins over type-level resolution; an existing
// binding of name keeps its parser. A nil p removes the override.
func (e *Engine) SetParserForName(name string, p Parser) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.setParserForName(name, p)
}

func (e *Engine) setParserForName(name string, p Parser) {
	if p == nil {
		delete(e.byName, name)
		return
	}
	e.byName[name] = p
	if _, bound := e.bindings[name]; bound {
		e.logger.Warn("name-level parser installed for bound flag; takes effect on next registration", "flag", name)
	}
}

// SetParserForType installs p as the default parser for t. Only bindings
// registered afterwards use it. A nil p removes the type default.
func (e *Engine) SetParserForType(t flagmeta.Type, p Parser) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.setParserForType(t, p)
}

func (e *Engine) setParserForType(t flagmeta.Type, p Parser) {
	if t.Kind == flagmeta.KindEnum {
		e.logger.Warn("type-level parser for enumeration is never consulted; use a name-level parser", "type", t.String())
	}
	if p == nil {
		delete(e.byType, t)
		return
	}
	e.byType[t] = p
}

// Register adds the bindings declared by c, in declaration order.
//
// A binding whose flag name is already bound replaces the previous one.
// Registration stops at the first invalid or unresolvable declaration;
// declarations before it stay registered.
func (e *Engine) Register(c Container) error {
	if c == nil {
		return ErrNilContainer
	}
	if d, ok := c.(Declarations); ok && d == nil {
		return ErrNilContainer
	}

	decls := c.FlagBindings()

	e.mu.Lock()
	defer e.mu.Unlock()

	for _, d := range decls {
		if err := d.validate(); err != nil {
			return err
		}

		name := d.Metadata.Name()
		p, ok := e.resolve(d.Metadata)
		if !ok {
			return &UnresolvedParserError{Flag: name, Property: d.Property, Type: d.Metadata.Type()}
		}

		if prev, exists := e.bindings[name]; exists {
			e.logger.Debug("flag binding replaced", "flag", name, "previous", prev.property, "property", d.Property)
		}
		e.bindings[name] = &entry{
			target:   c,
			property: d.Property,
			accessor: d.Accessor,
			meta:     d.Metadata,
			parser:   p,
		}
	}
	return nil
}

// MustRegister is like Register but panics on error.
func (e *Engine) MustRegister(c Container) {
	if err := e.Register(c); err != nil {
		panic(err)
	}
}

func (e *Engine) resolve(meta flagmeta.Metadata) (Parser, bool) {
	if p, ok := e.byName[meta.Name()]; ok {
		return p, true
	}
	typ := meta.Type()
	if typ.Kind == flagmeta.KindEnum {
		return parseEnum, true
	}
	p, ok := e.byType[typ]
	return p, ok
}

// Unregister removes every binding registered from c and returns how many
// were removed. Containers of non-comparable types are never matched.
func (e *Engine) Unregister(c Container) int {
	if c == nil || !reflect.TypeOf(c).Comparable() {
		return 0
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	removed := 0
	for name, b := range e.bindings {
		if b.target == c {
			delete(e.bindings, name)
			removed++
		}
	}
	if removed > 0 {
		e.logger.Debug("container unregistered", "bindings", removed)
	}
	return removed
}

// ApplyUpdate parses raw for the flag name and writes the result into the
// bound property. A nil raw resets the property to its default.
//
// On a conversion failure the property is left unchanged and a
// *ConversionError is returned. Updates for unbound flags follow the
// engine's UnboundPolicy.
func (e *Engine) ApplyUpdate(name string, raw *string) error {
	// Exclusive: the accessor writes the property.
	e.mu.Lock()
	defer e.mu.Unlock()

	b, ok := e.bindings[name]
	if !ok {
		if e.unbound == UnboundError {
			return &UnboundFlagError{Name: name}
		}
		e.logger.Warn("ignoring update for unbound flag", "flag", name)
		return nil
	}

	v, err := b.parser(raw, b.meta)
	if err != nil {
		return &ConversionError{Flag: name, Raw: raw, Err: err}
	}
	if err := b.accessor.Set(v); err != nil {
		return &ConversionError{Flag: name, Raw: raw, Err: err}
	}

	e.logger.Debug("flag updated", "flag", name, "property", b.property, "value", v.String())
	return nil
}

// Set applies a present raw value.
func (e *Engine) Set(name, raw string) error {
	return e.ApplyUpdate(name, &raw)
}

// Reset applies an absent value, restoring the default.
func (e *Engine) Reset(name string) error {
	return e.ApplyUpdate(name, nil)
}

// ApplyAll applies a batch of updates in name order. Every update is
// attempted; failures are joined.
func (e *Engine) ApplyAll(updates map[string]*string) error {
	var errs []error
	for _, name := range slices.Sorted(maps.Keys(updates)) {
		if err := e.ApplyUpdate(name, updates[name]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Binding is a snapshot of one binding.
type Binding struct {
	Name     string
	Property string
	Metadata flagmeta.Metadata
	// Value is the property value when the snapshot was taken.
	Value flagmeta.Value
}

func (b *entry) snapshot(name string) Binding {
	return Binding{
		Name:     name,
		Property: b.property,
		Metadata: b.meta,
		Value:    b.accessor.Get(),
	}
}

// Lookup returns a snapshot of the binding for name.
func (e *Engine) Lookup(name string) (Binding, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	b, ok := e.bindings[name]
	if !ok {
		return Binding{}, false
	}
	return b.snapshot(name), true
}

// Bindings returns snapshots of all bindings sorted by flag name.
func (e *Engine) Bindings() []Binding {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return lo.Map(e.sortedNames(), func(name string, _ int) Binding {
		return e.bindings[name].snapshot(name)
	})
}

// Names returns the bound flag names in sorted order.
func (e *Engine) Names() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.sortedNames()
}

func (e *Engine) sortedNames() []string {
	names := lo.Keys(e.bindings)
	slices.Sort(names)
	return names
}

// Value returns the current value of the property bound to name.
func (e *Engine) Value(name string) (flagmeta.Value, error) {
	b, ok := e.Lookup(name)
	if !ok {
		return nil, &UnboundFlagError{Name: name}
	}
	return b.Value, nil
}
