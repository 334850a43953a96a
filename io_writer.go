package cprint

import (
	"fmt"
	"io"
)

// IOTryWriter writes through a partial-write retry loop and supports
// flushing. Buffering, if any, belongs to the primitive.
type IOTryWriter struct {
	fn    BytesWriteFn
	flush Flusher[Outcome]
}

// NewIOTryWriter returns an IOTryWriter over fn with no flush function.
// C-string shapes report a NUL byte as an error wrapping ErrInvalidData.
func NewIOTryWriter[F BytesFunc](fn F) IOTryWriter {
	return IOTryWriter{fn: IntoTryBytesWriteFn(fn), flush: NoFlush{}}
}

// WrapIOTryWriter returns an IOTryWriter over already wrapped primitives. A
// nil flush does nothing.
func WrapIOTryWriter(fn BytesWriteFn, flush Flusher[Outcome]) IOTryWriter {
	if flush == nil {
		flush = NoFlush{}
	}
	return IOTryWriter{fn: fn, flush: flush}
}

// FromWriter returns an IOTryWriter over w's Write method. If w has a
// Flush() error method, such as a *bufio.Writer, Flush goes through it.
func FromWriter(w io.Writer) IOTryWriter {
	t := NewIOTryWriter(w.Write)
	if f, ok := w.(interface{ Flush() error }); ok {
		t = t.WithFlush(NewFlushFn(f.Flush))
	}
	return t
}

// WithFlush returns a copy of w that flushes through f.
func (w IOTryWriter) WithFlush(f Flusher[Outcome]) IOTryWriter {
	return WrapIOTryWriter(w.fn, f)
}

// WriteOnce makes exactly one call into the primitive and reports how many
// bytes of p it consumed. The count may be short of len(p) with a nil error.
func (w IOTryWriter) WriteOnce(p []byte) (int, error) {
	return ioWriteResult(w.fn.WriteBytes(p), len(p))
}

// Write calls the primitive until all of p is consumed. Each retry gets the
// suffix the previous call left. Interrupted calls are retried without
// consuming input; a call consuming nothing fails with ErrWriteZero.
func (w IOTryWriter) Write(p []byte) (int, error) {
	var written int
	for written < len(p) {
		rest := p[written:]
		n, err := w.WriteOnce(rest)
		switch {
		case isInterrupted(err):
			continue
		case err != nil:
			if n < 0 || n > len(rest) {
				n = 0
			}
			return written + n, err
		case n < 0 || n > len(rest):
			return written, fmt.Errorf("%w: %d of %d", ErrInvalidCount, n, len(rest))
		case n == 0:
			return written, ErrWriteZero
		}
		written += n
	}
	return written, nil
}

// WriteString writes s as bytes.
func (w IOTryWriter) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

// Flush calls the flush function.
func (w IOTryWriter) Flush() error {
	return ioFlushResult(w.flush.Flush())
}

// Printf formats according to a format specifier and writes the result.
func (w IOTryWriter) Printf(format string, a ...any) (int, error) {
	return fmt.Fprintf(w, format, a...)
}

// Print formats using the default formats and writes the result.
func (w IOTryWriter) Print(a ...any) (int, error) {
	return fmt.Fprint(w, a...)
}

// Println is Print with spaces between operands and a trailing newline.
func (w IOTryWriter) Println(a ...any) (int, error) {
	return fmt.Fprintln(w, a...)
}

// IOWriter is IOTryWriter panicking on any write or flush error.
type IOWriter struct {
	try IOTryWriter
}

// NewIOWriter returns an IOWriter over fn with no flush function. C-string
// shapes panic on a NUL byte.
func NewIOWriter[F BytesFunc](fn F) IOWriter {
	return IOWriter{try: IOTryWriter{fn: IntoBytesWriteFn(fn), flush: NoFlush{}}}
}

// WrapIOWriter returns an IOWriter over already wrapped primitives. A nil
// flush does nothing.
func WrapIOWriter(fn BytesWriteFn, flush Flusher[Outcome]) IOWriter {
	return IOWriter{try: WrapIOTryWriter(fn, flush)}
}

// WithFlush returns a copy of w that flushes through f.
func (w IOWriter) WithFlush(f Flusher[Outcome]) IOWriter {
	return IOWriter{try: w.try.WithFlush(f)}
}

// WriteOnce makes exactly one call into the primitive. A short count is
// returned, not retried.
func (w IOWriter) WriteOnce(p []byte) (int, NeverError) {
	return mustWrite(w.try.WriteOnce(p)), nil
}

// Write calls the primitive until all of p is consumed, panicking on failure.
func (w IOWriter) Write(p []byte) (int, error) {
	return mustWrite(w.try.Write(p)), nil
}

// WriteString writes s as bytes.
func (w IOWriter) WriteString(s string) (int, error) {
	return mustWrite(w.try.WriteString(s)), nil
}

// Flush calls the flush function, panicking on failure.
func (w IOWriter) Flush() NeverError {
	mustFlush(w.try.Flush())
	return nil
}

// Printf is IOTryWriter.Printf panicking on failure.
func (w IOWriter) Printf(format string, a ...any) (int, NeverError) {
	return mustWrite(w.try.Printf(format, a...)), nil
}

// Print is IOTryWriter.Print panicking on failure.
func (w IOWriter) Print(a ...any) (int, NeverError) {
	return mustWrite(w.try.Print(a...)), nil
}

// Println is IOTryWriter.Println panicking on failure.
func (w IOWriter) Println(a ...any) (int, NeverError) {
	return mustWrite(w.try.Println(a...)), nil
}

var (
	_ io.Writer       = IOTryWriter{}
	_ io.StringWriter = IOTryWriter{}
	_ io.Writer       = IOWriter{}
	_ io.Writer       = ConcatTryWriter{}
	_ io.Writer       = ConcatWriter{}
	_ io.Writer       = FmtTryWriter{}
	_ io.Writer       = FmtWriter{}
)
