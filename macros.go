package cprint

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/charmbracelet/log"
)

// Option configures Define and DefineTry.
type Option func(*options)

type options struct {
	flush  Flusher[Outcome]
	render Renderer
	log    *log.Logger
}

// WithFlusher sets the flush function. Without one, Flush does nothing.
func WithFlusher(f Flusher[Outcome]) Option {
	return func(o *options) { o.flush = f }
}

// WithRenderer overrides the configured debug renderer.
func WithRenderer(r Renderer) Option {
	return func(o *options) { o.render = r }
}

// WithLogger logs errors a propagating fmt writer drops.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.log = l }
}

func buildOptions(c Config, opts []Option) (options, error) {
	render, err := ParseRenderer(c.Render)
	if err != nil {
		return options{}, err
	}
	o := options{flush: NoFlush{}, render: render}
	for _, opt := range opts {
		opt(&o)
	}
	if o.flush == nil {
		o.flush = NoFlush{}
	}
	return o, nil
}

// byteShaped returns fn as a byte writer, or an error naming the shape when
// the io writer cannot use it.
func byteShaped(fn WriteFn, raw any) (BytesWriteFn, error) {
	if !canWriteBytes(fn) {
		return nil, fmt.Errorf("%w: %s writer requires a byte-shaped function, got %T", ErrUnsupportedShape, IO, raw)
	}
	return fn.(BytesWriteFn), nil
}

type printer interface {
	io.Writer
	Printer
	Print(a ...any) (int, NeverError)
	Println(a ...any) (int, NeverError)
}

// Macros is a set of fail-fast print functions bound to one primitive.
// None of them return errors: a failed write panics.
type Macros struct {
	w     printer
	flush Flusher[Outcome]
	dbg   Debugger
}

// Define builds fail-fast print functions over fn with the facade c names.
// The io facade needs a byte-shaped fn.
func Define[F WriteFunc](c Config, fn F, opts ...Option) (*Macros, error) {
	if c.Policy != "" && c.Policy != Expect {
		return nil, fmt.Errorf("%w: %q, Define needs %q", ErrUnsupportedPolicy, c.Policy, Expect)
	}
	o, err := buildOptions(c, opts)
	if err != nil {
		return nil, err
	}
	wfn := IntoWriteFn(fn)
	m := &Macros{flush: o.flush}
	switch c.Writer {
	case Concat, "":
		m.w = WrapConcatWriter(wfn)
	case Fmt:
		m.w = WrapFmtWriter(wfn)
	case IO:
		bfn, err := byteShaped(wfn, fn)
		if err != nil {
			return nil, err
		}
		m.w = WrapIOWriter(bfn, o.flush)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedWriter, c.Writer)
	}
	m.dbg = NewDebugger(m.w).WithRenderer(o.render)
	return m, nil
}

// Writer returns the facade the functions write through.
func (m *Macros) Writer() io.Writer { return m.w }

// Debugger returns the debugger behind Dbg, for use with Value.
func (m *Macros) Debugger() Debugger { return m.dbg }

// Print writes the operands in their default formats.
func (m *Macros) Print(a ...any) { m.w.Print(a...) }

// Println writes the operands separated by spaces and a newline.
func (m *Macros) Println(a ...any) { m.w.Println(a...) }

// Printf writes according to a format specifier.
func (m *Macros) Printf(format string, a ...any) { m.w.Printf(format, a...) }

// Dbg prints each value with its location and source expression and
// returns the values.
func (m *Macros) Dbg(values ...any) []any {
	return m.dbg.dbg(locate(1, "Dbg", 0), values)
}

// Flush flushes the io facade, or calls the configured flusher for the
// others.
func (m *Macros) Flush() {
	if f, ok := m.w.(interface{ Flush() NeverError }); ok {
		f.Flush()
		return
	}
	mustFlush(ioFlushResult(m.flush.Flush()))
}

// ReportPanic writes a recovered panic and its stack, then panics again
// with the same value. Use it as
//
//	defer m.ReportPanic()
func (m *Macros) ReportPanic() {
	r := recover()
	if r == nil {
		return
	}
	m.w.Printf("panic: %v\n\n%s", r, debug.Stack())
	panic(r)
}

type tryPrinter interface {
	io.Writer
	TryPrinter
	Print(a ...any) (int, error)
	Println(a ...any) (int, error)
}

// TryMacros is a set of propagating print functions bound to one primitive.
type TryMacros struct {
	w     tryPrinter
	flush Flusher[Outcome]
	dbg   TryDebugger
}

// DefineTry builds propagating print functions over fn with the facade c
// names. The io facade needs a byte-shaped fn.
func DefineTry[F WriteFunc](c Config, fn F, opts ...Option) (*TryMacros, error) {
	if c.Policy != "" && c.Policy != Try {
		return nil, fmt.Errorf("%w: %q, DefineTry needs %q", ErrUnsupportedPolicy, c.Policy, Try)
	}
	o, err := buildOptions(c, opts)
	if err != nil {
		return nil, err
	}
	wfn := IntoTryWriteFn(fn)
	m := &TryMacros{flush: o.flush}
	switch c.Writer {
	case Concat, "":
		m.w = WrapConcatTryWriter(wfn)
	case Fmt:
		m.w = WrapFmtTryWriter(wfn).WithLogger(o.log)
	case IO:
		bfn, err := byteShaped(wfn, fn)
		if err != nil {
			return nil, err
		}
		m.w = WrapIOTryWriter(bfn, o.flush)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedWriter, c.Writer)
	}
	m.dbg = NewTryDebugger(m.w).WithRenderer(o.render)
	return m, nil
}

// Writer returns the facade the functions write through.
func (m *TryMacros) Writer() io.Writer { return m.w }

// Debugger returns the debugger behind Dbg, for use with TryValue.
func (m *TryMacros) Debugger() TryDebugger { return m.dbg }

// Print writes the operands in their default formats.
func (m *TryMacros) Print(a ...any) error {
	_, err := m.w.Print(a...)
	return err
}

// Println writes the operands separated by spaces and a newline.
func (m *TryMacros) Println(a ...any) error {
	_, err := m.w.Println(a...)
	return err
}

// Printf writes according to a format specifier.
func (m *TryMacros) Printf(format string, a ...any) error {
	_, err := m.w.Printf(format, a...)
	return err
}

// Dbg prints each value with its location and source expression. It stops
// at the first failed write.
func (m *TryMacros) Dbg(values ...any) ([]any, error) {
	return m.dbg.dbg(locate(1, "Dbg", 0), values)
}

// Flush flushes the io facade, or calls the configured flusher for the
// others.
func (m *TryMacros) Flush() error {
	if f, ok := m.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return ioFlushResult(m.flush.Flush())
}
