package cprint

import "strings"

// PtrLenFunc is the set of function shapes PtrLenFn accepts.
type PtrLenFunc interface {
	func(*byte, int) | func(*byte, int) int | func(*byte, int) error | func(*byte, int) (int, error)
}

// LenPtrFunc is the set of function shapes LenPtrFn accepts.
type LenPtrFunc interface {
	func(int, *byte) | func(int, *byte) int | func(int, *byte) error | func(int, *byte) (int, error)
}

// BytesFuncShape is the set of function shapes BytesFn accepts.
type BytesFuncShape interface {
	func([]byte) | func([]byte) int | func([]byte) error | func([]byte) (int, error)
}

// StrFunc is the set of function shapes StrFn accepts.
type StrFunc interface {
	func(string) | func(string) int | func(string) error | func(string) (int, error)
}

// StringFunc is the set of function shapes StringFn accepts.
type StringFunc interface {
	func(*strings.Builder) | func(*strings.Builder) int | func(*strings.Builder) error | func(*strings.Builder) (int, error)
}

// BytesFunc is every function shape that can write raw bytes.
type BytesFunc interface {
	PtrLenFunc | LenPtrFunc | BytesFuncShape | CStrFunc | CStringFunc | CCharPtrFunc
}

// WriteFunc is every function shape a writer can be built from.
type WriteFunc interface {
	BytesFunc | StrFunc | StringFunc
}

func bytePtr(p []byte) *byte {
	if len(p) == 0 {
		return nil
	}
	return &p[0]
}

// PtrLenFn wraps a function taking a pointer to the data and its length.
type PtrLenFn struct {
	fn any
}

// NewPtrLenFn returns a PtrLenFn calling fn.
func NewPtrLenFn[F PtrLenFunc](fn F) PtrLenFn {
	return PtrLenFn{fn: fn}
}

// WriteBytes calls the wrapped function with p's address and length. An
// empty p is passed as a nil pointer.
func (w PtrLenFn) WriteBytes(p []byte) Outcome {
	return invoke2(w.fn, bytePtr(p), len(p))
}

// WriteStr writes s as bytes.
func (w PtrLenFn) WriteStr(s string) Outcome { return w.WriteBytes([]byte(s)) }

// LenPtrFn wraps a function taking the data length and a pointer to it.
type LenPtrFn struct {
	fn any
}

// NewLenPtrFn returns a LenPtrFn calling fn.
func NewLenPtrFn[F LenPtrFunc](fn F) LenPtrFn {
	return LenPtrFn{fn: fn}
}

// WriteBytes calls the wrapped function with p's length and address.
func (w LenPtrFn) WriteBytes(p []byte) Outcome {
	return invoke2(w.fn, len(p), bytePtr(p))
}

// WriteStr writes s as bytes.
func (w LenPtrFn) WriteStr(s string) Outcome { return w.WriteBytes([]byte(s)) }

// BytesFn wraps a function taking a byte slice. The slice is only valid for
// the duration of the call.
type BytesFn struct {
	fn any
}

// NewBytesFn returns a BytesFn calling fn.
func NewBytesFn[F BytesFuncShape](fn F) BytesFn {
	return BytesFn{fn: fn}
}

// WriteBytes calls the wrapped function with p.
func (w BytesFn) WriteBytes(p []byte) Outcome { return invoke1(w.fn, p) }

// WriteStr writes s as bytes.
func (w BytesFn) WriteStr(s string) Outcome { return w.WriteBytes([]byte(s)) }

// StrFn wraps a function taking a string. It can only write text.
type StrFn struct {
	fn any
}

// NewStrFn returns a StrFn calling fn.
func NewStrFn[F StrFunc](fn F) StrFn {
	return StrFn{fn: fn}
}

// WriteStr calls the wrapped function with s.
func (w StrFn) WriteStr(s string) Outcome { return invoke1(w.fn, s) }

// StringFn wraps a function that takes ownership of a freshly allocated
// builder holding the text. It can only write text.
type StringFn struct {
	fn any
}

// NewStringFn returns a StringFn calling fn.
func NewStringFn[F StringFunc](fn F) StringFn {
	return StringFn{fn: fn}
}

// WriteStr calls the wrapped function with a new builder holding s.
func (w StringFn) WriteStr(s string) Outcome {
	b := new(strings.Builder)
	b.Grow(len(s))
	b.WriteString(s)
	return invoke1(w.fn, b)
}
