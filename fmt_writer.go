package cprint

import (
	"iter"

	"github.com/charmbracelet/log"
)

// FmtTryWriter calls the primitive once per formatted fragment, with no
// intermediate buffer: a literal run, one operand, a separator. Empty
// fragments are skipped.
//
// Failures surface as ErrFormat. The primitive's own error is not part of
// the result; set a logger with WithLogger to keep a record of it.
type FmtTryWriter struct {
	fn     WriteFn
	log    *log.Logger
	expect bool // panic with the primitive's error instead of dropping it
}

// NewFmtTryWriter returns a FmtTryWriter over fn. C-string shapes report a
// NUL byte as an error.
func NewFmtTryWriter[F WriteFunc](fn F) FmtTryWriter {
	return FmtTryWriter{fn: IntoTryWriteFn(fn)}
}

// WrapFmtTryWriter returns a FmtTryWriter over an already wrapped primitive.
func WrapFmtTryWriter(fn WriteFn) FmtTryWriter {
	return FmtTryWriter{fn: fn}
}

// WithLogger returns a copy of w that logs each dropped error at debug
// level.
func (w FmtTryWriter) WithLogger(l *log.Logger) FmtTryWriter {
	w.log = l
	return w
}

// WriteString writes s in one call.
func (w FmtTryWriter) WriteString(s string) (int, error) {
	return w.result(fmtResult(w.fn.WriteStr(s), len(s)), len(s))
}

// Write writes p in one call.
func (w FmtTryWriter) Write(p []byte) (int, error) {
	return w.result(fmtResult(writeBytes(w.fn, p), len(p)), len(p))
}

func (w FmtTryWriter) result(err error, n int) (int, error) {
	if err == nil {
		return n, nil
	}
	if w.expect {
		mustWrite(0, err)
	}
	if w.log != nil {
		w.log.Debug("dropped write error", "err", err)
	}
	return 0, ErrFormat
}

func (w FmtTryWriter) writeFragments(seq iter.Seq[string]) (int, error) {
	var n int
	for frag := range seq {
		if frag == "" {
			continue
		}
		m, err := w.WriteString(frag)
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// Printf formats according to a format specifier, writing each fragment as
// it is produced. It stops at the first failed fragment.
func (w FmtTryWriter) Printf(format string, a ...any) (int, error) {
	return w.writeFragments(printfFragments(format, a))
}

// Print writes each operand, and the spaces fmt.Sprint would put between
// them, as separate fragments.
func (w FmtTryWriter) Print(a ...any) (int, error) {
	return w.writeFragments(printFragments(a))
}

// Println writes each operand, separating spaces and a trailing newline as
// separate fragments.
func (w FmtTryWriter) Println(a ...any) (int, error) {
	return w.writeFragments(printlnFragments(a))
}

// FmtWriter is FmtTryWriter panicking on any write error. The panic carries
// the primitive's own error.
type FmtWriter struct {
	try FmtTryWriter
}

// NewFmtWriter returns a FmtWriter over fn. C-string shapes panic on a NUL
// byte.
func NewFmtWriter[F WriteFunc](fn F) FmtWriter {
	return FmtWriter{try: FmtTryWriter{fn: IntoWriteFn(fn), expect: true}}
}

// WrapFmtWriter returns a FmtWriter over an already wrapped primitive.
func WrapFmtWriter(fn WriteFn) FmtWriter {
	return FmtWriter{try: FmtTryWriter{fn: fn, expect: true}}
}

// WriteString writes s in one call, panicking on failure.
func (w FmtWriter) WriteString(s string) (int, error) {
	return mustWrite(w.try.WriteString(s)), nil
}

// Write writes p in one call, panicking on failure.
func (w FmtWriter) Write(p []byte) (int, error) {
	return mustWrite(w.try.Write(p)), nil
}

// Printf is FmtTryWriter.Printf panicking on the first failed fragment.
func (w FmtWriter) Printf(format string, a ...any) (int, NeverError) {
	return mustWrite(w.try.Printf(format, a...)), nil
}

// Print is FmtTryWriter.Print panicking on the first failed fragment.
func (w FmtWriter) Print(a ...any) (int, NeverError) {
	return mustWrite(w.try.Print(a...)), nil
}

// Println is FmtTryWriter.Println panicking on the first failed fragment.
func (w FmtWriter) Println(a ...any) (int, NeverError) {
	return mustWrite(w.try.Println(a...)), nil
}
