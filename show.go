package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/samber/lo"

	"github.com/apstndb/flagbind/binding"
)

// writeBindings writes the binding table sorted by flag name.
func writeBindings(w io.Writer, bindings []binding.Binding) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(
			renderer.NewBlueprint(tw.Rendition{Symbols: tw.NewSymbols(tw.StyleASCII)})),
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	).Configure(func(config *tablewriter.Config) {
		config.Row.Formatting.AutoWrap = tw.WrapNone
	})

	table.Header([]string{"NAME", "TYPE", "DEFAULT", "VALUE", "PROPERTY", "DESCRIPTION"})
	for _, b := range bindings {
		row := []string{
			b.Name,
			b.Metadata.Type().String(),
			b.Metadata.Default().String(),
			b.Value.String(),
			b.Property,
			b.Metadata.Description(),
		}
		if err := table.Append(row); err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

// updateEcho prints every applied update as "name = value".
type updateEcho struct {
	w      io.Writer
	engine *binding.Engine
	name   *color.Color
	value  *color.Color
	note   *color.Color
}

func newUpdateEcho(w io.Writer, engine *binding.Engine, noColor bool) *updateEcho {
	e := &updateEcho{
		w:      w,
		engine: engine,
		name:   color.New(color.FgCyan, color.Bold),
		value:  color.New(color.FgGreen),
		note:   color.New(color.Faint),
	}
	if noColor {
		e.name.DisableColor()
		e.value.DisableColor()
		e.note.DisableColor()
	}
	return e
}

// print echoes the current value of name. Unbound names print nothing.
func (e *updateEcho) print(name string, reset bool) {
	v, err := e.engine.Value(name)
	if err != nil {
		return
	}
	fmt.Fprintf(e.w, "%s = %s%s\n", e.name.Sprint(name), e.value.Sprint(v.String()),
		lo.Ternary(reset, e.note.Sprint(" (default)"), ""))
}

// wrap returns an UpdateFunc that applies through apply and echoes successes.
func (e *updateEcho) wrap(apply binding.UpdateFunc) binding.UpdateFunc {
	return func(name string, raw *string) error {
		if err := apply(name, raw); err != nil {
			return err
		}
		e.print(name, raw == nil)
		return nil
	}
}
