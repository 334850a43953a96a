package cprint

import (
	"fmt"
	"strings"
)

// ConcatTryWriter renders each call into one string and hands it to the
// primitive in a single call. Errors from the primitive are returned.
//
// Use it when every call into the primitive is expensive, such as a call
// across a foreign function boundary.
type ConcatTryWriter struct {
	fn WriteFn
}

// NewConcatTryWriter returns a ConcatTryWriter over fn. C-string shapes
// report a NUL byte as a *NulError.
func NewConcatTryWriter[F WriteFunc](fn F) ConcatTryWriter {
	return ConcatTryWriter{fn: IntoTryWriteFn(fn)}
}

// WrapConcatTryWriter returns a ConcatTryWriter over an already wrapped
// primitive.
func WrapConcatTryWriter(fn WriteFn) ConcatTryWriter {
	return ConcatTryWriter{fn: fn}
}

// WriteString hands s to the primitive. The count is the one the primitive
// reported, or len(s) if it reports none.
func (w ConcatTryWriter) WriteString(s string) (int, error) {
	return concatResult(w.fn.WriteStr(s), len(s))
}

// Write hands p to the primitive.
func (w ConcatTryWriter) Write(p []byte) (int, error) {
	return concatResult(writeBytes(w.fn, p), len(p))
}

// Printf formats according to a format specifier and writes the result in
// one call. A format without operands or verbs is written as is.
func (w ConcatTryWriter) Printf(format string, a ...any) (int, error) {
	if len(a) == 0 && !strings.Contains(format, "%") {
		return w.WriteString(format)
	}
	return w.WriteString(fmt.Sprintf(format, a...))
}

// Print formats using the default formats and writes the result in one call.
func (w ConcatTryWriter) Print(a ...any) (int, error) {
	return w.WriteString(fmt.Sprint(a...))
}

// Println is Print with spaces between operands and a trailing newline.
func (w ConcatTryWriter) Println(a ...any) (int, error) {
	return w.WriteString(fmt.Sprintln(a...))
}

// ConcatWriter is ConcatTryWriter panicking on any write error.
type ConcatWriter struct {
	try ConcatTryWriter
}

// NewConcatWriter returns a ConcatWriter over fn. C-string shapes panic on a
// NUL byte.
func NewConcatWriter[F WriteFunc](fn F) ConcatWriter {
	return ConcatWriter{try: ConcatTryWriter{fn: IntoWriteFn(fn)}}
}

// WrapConcatWriter returns a ConcatWriter over an already wrapped primitive.
func WrapConcatWriter(fn WriteFn) ConcatWriter {
	return ConcatWriter{try: ConcatTryWriter{fn: fn}}
}

// WriteString hands s to the primitive, panicking on failure.
func (w ConcatWriter) WriteString(s string) (int, error) {
	return mustWrite(w.try.WriteString(s)), nil
}

// Write hands p to the primitive, panicking on failure.
func (w ConcatWriter) Write(p []byte) (int, error) {
	return mustWrite(w.try.Write(p)), nil
}

// Printf is ConcatTryWriter.Printf panicking on failure.
func (w ConcatWriter) Printf(format string, a ...any) (int, NeverError) {
	return mustWrite(w.try.Printf(format, a...)), nil
}

// Print is ConcatTryWriter.Print panicking on failure.
func (w ConcatWriter) Print(a ...any) (int, NeverError) {
	return mustWrite(w.try.Print(a...)), nil
}

// Println is ConcatTryWriter.Println panicking on failure.
func (w ConcatWriter) Println(a ...any) (int, NeverError) {
	return mustWrite(w.try.Println(a...)), nil
}
