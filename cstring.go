package cprint

import (
	"bytes"
	"fmt"
	"sync"
)

// NulError reports an interior NUL byte in data that had to become a C
// string.
type NulError struct {
	Pos  int
	Data []byte
}

// Error reports the position of the NUL byte.
func (e *NulError) Error() string {
	return fmt.Sprintf("nul byte found in provided data at position: %d", e.Pos)
}

// Unwrap returns ErrNulByte.
func (e *NulError) Unwrap() error { return ErrNulByte }

// CStr is a borrowed NUL-terminated byte string. It is only valid for the
// duration of the call it was passed to; copy it to keep it.
type CStr struct {
	b []byte // includes the terminator
}

// Bytes returns the contents without the terminator.
func (c CStr) Bytes() []byte {
	if len(c.b) == 0 {
		return nil
	}
	return c.b[:len(c.b)-1]
}

// BytesWithNul returns the contents including the terminator.
func (c CStr) BytesWithNul() []byte { return c.b }

// Ptr returns a pointer to the first byte, or nil for the zero CStr.
func (c CStr) Ptr() *byte {
	if len(c.b) == 0 {
		return nil
	}
	return &c.b[0]
}

// Len returns the length without the terminator.
func (c CStr) Len() int { return len(c.Bytes()) }

// String returns the contents as a string.
func (c CStr) String() string { return string(c.Bytes()) }

// CString is an owned NUL-terminated byte string.
type CString struct {
	b []byte // includes the terminator
}

// NewCString copies p into a new CString. It fails with a *NulError if p
// contains a NUL byte.
func NewCString(p []byte) (CString, error) {
	if i := bytes.IndexByte(p, 0); i >= 0 {
		return CString{}, &NulError{Pos: i, Data: bytes.Clone(p)}
	}
	b := make([]byte, len(p)+1)
	copy(b, p)
	return CString{b: b}, nil
}

// AsCStr borrows c as a CStr.
func (c CString) AsCStr() CStr { return CStr(c) }

// Bytes returns the contents without the terminator.
func (c CString) Bytes() []byte { return c.AsCStr().Bytes() }

// BytesWithNul returns the contents including the terminator.
func (c CString) BytesWithNul() []byte { return c.b }

// Ptr returns a pointer to the first byte, or nil for the zero CString.
func (c CString) Ptr() *byte { return c.AsCStr().Ptr() }

// Len returns the length without the terminator.
func (c CString) Len() int { return c.AsCStr().Len() }

// String returns the contents as a string.
func (c CString) String() string { return c.AsCStr().String() }

// maxPooled caps the size of buffers kept for reuse.
const maxPooled = 64 << 10

var cstrPool = sync.Pool{New: func() any { return new([]byte) }}

// borrowCStr copies p into a pooled NUL-terminated buffer. The CStr is valid
// until the buffer is handed back with releaseCStr. Each call gets its own
// buffer, so concurrent and nested writes never share one.
func borrowCStr(p []byte) (CStr, *[]byte, error) {
	if i := bytes.IndexByte(p, 0); i >= 0 {
		return CStr{}, nil, &NulError{Pos: i, Data: bytes.Clone(p)}
	}
	buf := cstrPool.Get().(*[]byte)
	*buf = append(append((*buf)[:0], p...), 0)
	return CStr{b: *buf}, buf, nil
}

func releaseCStr(buf *[]byte) {
	if cap(*buf) > maxPooled {
		return
	}
	cstrPool.Put(buf)
}

func panicNul(err error, p []byte) {
	pos := -1
	if nulErr, ok := err.(*NulError); ok {
		pos = nulErr.Pos
	}
	panic(fmt.Sprintf("nul byte found in provided data at position: %d, buffer: %v", pos, p))
}

// nulOutcome is what a Try C-string wrapper reports when the data cannot be
// converted. The primitive is not called.
func nulOutcome(err error) Outcome {
	return Outcome{Returns: ReturnsCountError, Err: err}
}

// CStrFunc is the set of function shapes CStrFn accepts.
type CStrFunc interface {
	func(CStr) | func(CStr) int | func(CStr) error | func(CStr) (int, error)
}

// CStringFunc is the set of function shapes CStringFn accepts.
type CStringFunc interface {
	func(CString) | func(CString) int | func(CString) error | func(CString) (int, error)
}

// CCharPtrFunc is the set of function shapes CCharPtrFn accepts. The pointer
// addresses a NUL-terminated buffer.
type CCharPtrFunc interface {
	func(*byte) | func(*byte) int | func(*byte) error | func(*byte) (int, error)
}

// CStrFn wraps a function taking a borrowed C string. Data with a NUL byte
// panics.
type CStrFn struct {
	fn any
}

// NewCStrFn returns a CStrFn calling fn.
func NewCStrFn[F CStrFunc](fn F) CStrFn {
	return CStrFn{fn: fn}
}

// WriteBytes converts p to a C string and calls the wrapped function.
func (w CStrFn) WriteBytes(p []byte) Outcome {
	c, buf, err := borrowCStr(p)
	if err != nil {
		panicNul(err, p)
	}
	defer releaseCStr(buf)
	return invoke1(w.fn, c)
}

// WriteStr writes s as bytes.
func (w CStrFn) WriteStr(s string) Outcome { return w.WriteBytes([]byte(s)) }

// CStringFn wraps a function taking an owned C string. Data with a NUL byte
// panics.
type CStringFn struct {
	fn any
}

// NewCStringFn returns a CStringFn calling fn.
func NewCStringFn[F CStringFunc](fn F) CStringFn {
	return CStringFn{fn: fn}
}

// WriteBytes copies p into a new C string and calls the wrapped function.
func (w CStringFn) WriteBytes(p []byte) Outcome {
	c, err := NewCString(p)
	if err != nil {
		panicNul(err, p)
	}
	return invoke1(w.fn, c)
}

// WriteStr writes s as bytes.
func (w CStringFn) WriteStr(s string) Outcome { return w.WriteBytes([]byte(s)) }

// CCharPtrFn wraps a function taking a pointer to a NUL-terminated buffer.
// Data with a NUL byte panics.
type CCharPtrFn struct {
	fn any
}

// NewCCharPtrFn returns a CCharPtrFn calling fn.
func NewCCharPtrFn[F CCharPtrFunc](fn F) CCharPtrFn {
	return CCharPtrFn{fn: fn}
}

// WriteBytes converts p to a C string and calls the wrapped function with
// its first byte.
func (w CCharPtrFn) WriteBytes(p []byte) Outcome {
	c, buf, err := borrowCStr(p)
	if err != nil {
		panicNul(err, p)
	}
	defer releaseCStr(buf)
	return invoke1(w.fn, c.Ptr())
}

// WriteStr writes s as bytes.
func (w CCharPtrFn) WriteStr(s string) Outcome { return w.WriteBytes([]byte(s)) }

// TryCStrFn is CStrFn reporting a NUL byte as a *NulError.
type TryCStrFn struct {
	fn any
}

// NewTryCStrFn returns a TryCStrFn calling fn.
func NewTryCStrFn[F CStrFunc](fn F) TryCStrFn {
	return TryCStrFn{fn: fn}
}

// WriteBytes converts p to a C string and calls the wrapped function.
func (w TryCStrFn) WriteBytes(p []byte) Outcome {
	c, buf, err := borrowCStr(p)
	if err != nil {
		return nulOutcome(err)
	}
	defer releaseCStr(buf)
	return invoke1(w.fn, c)
}

// WriteStr writes s as bytes.
func (w TryCStrFn) WriteStr(s string) Outcome { return w.WriteBytes([]byte(s)) }

// TryCStringFn is CStringFn reporting a NUL byte as a *NulError.
type TryCStringFn struct {
	fn any
}

// NewTryCStringFn returns a TryCStringFn calling fn.
func NewTryCStringFn[F CStringFunc](fn F) TryCStringFn {
	return TryCStringFn{fn: fn}
}

// WriteBytes copies p into a new C string and calls the wrapped function.
func (w TryCStringFn) WriteBytes(p []byte) Outcome {
	c, err := NewCString(p)
	if err != nil {
		return nulOutcome(err)
	}
	return invoke1(w.fn, c)
}

// WriteStr writes s as bytes.
func (w TryCStringFn) WriteStr(s string) Outcome { return w.WriteBytes([]byte(s)) }

// TryCCharPtrFn is CCharPtrFn reporting a NUL byte as a *NulError.
type TryCCharPtrFn struct {
	fn any
}

// NewTryCCharPtrFn returns a TryCCharPtrFn calling fn.
func NewTryCCharPtrFn[F CCharPtrFunc](fn F) TryCCharPtrFn {
	return TryCCharPtrFn{fn: fn}
}

// WriteBytes converts p to a C string and calls the wrapped function with
// its first byte.
func (w TryCCharPtrFn) WriteBytes(p []byte) Outcome {
	c, buf, err := borrowCStr(p)
	if err != nil {
		return nulOutcome(err)
	}
	defer releaseCStr(buf)
	return invoke1(w.fn, c.Ptr())
}

// WriteStr writes s as bytes.
func (w TryCCharPtrFn) WriteStr(s string) Outcome { return w.WriteBytes([]byte(s)) }
