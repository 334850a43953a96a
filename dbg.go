package cprint

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Printer is a fail-fast writer facade.
type Printer interface {
	Printf(format string, a ...any) (int, NeverError)
}

// TryPrinter is a propagating writer facade.
type TryPrinter interface {
	Printf(format string, a ...any) (int, error)
}

// Renderer renders a value for a debug print.
type Renderer func(v any) string

// Renderer names accepted by ParseRenderer.
const (
	RenderGoSyntax = "gosyntax"
	RenderSpew     = "spew"
)

// GoSyntax renders v with %#v.
func GoSyntax(v any) string { return fmt.Sprintf("%#v", v) }

var spewConfig = spew.ConfigState{
	Indent:                  "    ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Spew renders v as an indented dump, one field per line.
func Spew(v any) string {
	return strings.TrimSuffix(spewConfig.Sdump(v), "\n")
}

// ParseRenderer returns the renderer with the given name. An empty name is
// GoSyntax.
func ParseRenderer(name string) (Renderer, error) {
	switch name {
	case "", RenderGoSyntax:
		return GoSyntax, nil
	case RenderSpew:
		return Spew, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedRenderer, name)
	}
}

const (
	dbgHereFormat  = "[%s:%d]\n"
	dbgValueFormat = "[%s:%d] %s = %s\n"
)

func dbgArgs(site callSite, i int, v any, render Renderer) []any {
	if render == nil {
		render = GoSyntax
	}
	return []any{site.file, site.line, site.expr(i, v), render(v)}
}

// Debugger prints values together with the file and line they were printed
// from, and the source text of the expression that produced them.
type Debugger struct {
	p      Printer
	render Renderer
}

// NewDebugger returns a Debugger writing through p.
func NewDebugger(p Printer) Debugger {
	return Debugger{p: p, render: GoSyntax}
}

// WithRenderer returns a copy of d rendering values with r.
func (d Debugger) WithRenderer(r Renderer) Debugger {
	d.render = r
	return d
}

// Dbg writes "[file:line] expr = value" for each value, one write per value,
// and returns values. With no values it writes "[file:line]".
func (d Debugger) Dbg(values ...any) []any {
	return d.dbg(locate(1, "Dbg", 0), values)
}

func (d Debugger) dbg(site callSite, values []any) []any {
	if len(values) == 0 {
		d.p.Printf(dbgHereFormat, site.file, site.line)
		return nil
	}
	for i, v := range values {
		d.p.Printf(dbgValueFormat, dbgArgs(site, i, v, d.render)...)
	}
	return values
}

// Value is Dbg for a single value, keeping its type.
func Value[T any](d Debugger, v T) T {
	d.dbg(locate(1, "Value", 1), []any{v})
	return v
}

// TryDebugger is Debugger over a propagating writer.
type TryDebugger struct {
	p      TryPrinter
	render Renderer
}

// NewTryDebugger returns a TryDebugger writing through p.
func NewTryDebugger(p TryPrinter) TryDebugger {
	return TryDebugger{p: p, render: GoSyntax}
}

// WithRenderer returns a copy of d rendering values with r.
func (d TryDebugger) WithRenderer(r Renderer) TryDebugger {
	d.render = r
	return d
}

// Dbg is Debugger.Dbg returning the first write error. Values after a
// failed write are not printed.
func (d TryDebugger) Dbg(values ...any) ([]any, error) {
	return d.dbg(locate(1, "Dbg", 0), values)
}

func (d TryDebugger) dbg(site callSite, values []any) ([]any, error) {
	if len(values) == 0 {
		_, err := d.p.Printf(dbgHereFormat, site.file, site.line)
		return nil, err
	}
	for i, v := range values {
		if _, err := d.p.Printf(dbgValueFormat, dbgArgs(site, i, v, d.render)...); err != nil {
			return nil, err
		}
	}
	return values, nil
}

// TryValue is TryDebugger.Dbg for a single value, keeping its type.
func TryValue[T any](d TryDebugger, v T) (T, error) {
	if _, err := d.dbg(locate(1, "TryValue", 1), []any{v}); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}
