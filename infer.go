package cprint

import (
	"fmt"
	"strings"
)

// IntoWriteFn picks the wrapper matching fn's parameter list. C-string
// shapes get the wrappers that panic on a NUL byte.
//
// The accepted shapes are fixed by WriteFunc: any other function type does
// not compile.
func IntoWriteFn[F WriteFunc](fn F) WriteFn {
	return intoWriteFn(fn, false)
}

// IntoTryWriteFn is IntoWriteFn with C-string shapes mapped to the Try
// wrappers, which report a NUL byte as a *NulError.
func IntoTryWriteFn[F WriteFunc](fn F) WriteFn {
	return intoWriteFn(fn, true)
}

// IntoBytesWriteFn is IntoWriteFn restricted to shapes that can write raw
// bytes.
func IntoBytesWriteFn[F BytesFunc](fn F) BytesWriteFn {
	return intoBytesWriteFn(fn, false)
}

// IntoTryBytesWriteFn is IntoTryWriteFn restricted to shapes that can write
// raw bytes.
func IntoTryBytesWriteFn[F BytesFunc](fn F) BytesWriteFn {
	return intoBytesWriteFn(fn, true)
}

func intoWriteFn(fn any, try bool) WriteFn {
	switch f := fn.(type) {
	case func(string), func(string) int, func(string) error, func(string) (int, error):
		return StrFn{fn: f}
	case func(*strings.Builder), func(*strings.Builder) int, func(*strings.Builder) error, func(*strings.Builder) (int, error):
		return StringFn{fn: f}
	default:
		return intoBytesWriteFn(fn, try)
	}
}

func intoBytesWriteFn(fn any, try bool) BytesWriteFn {
	switch f := fn.(type) {
	case func(*byte, int), func(*byte, int) int, func(*byte, int) error, func(*byte, int) (int, error):
		return PtrLenFn{fn: f}
	case func(int, *byte), func(int, *byte) int, func(int, *byte) error, func(int, *byte) (int, error):
		return LenPtrFn{fn: f}
	case func([]byte), func([]byte) int, func([]byte) error, func([]byte) (int, error):
		return BytesFn{fn: f}
	case func(CStr), func(CStr) int, func(CStr) error, func(CStr) (int, error):
		if try {
			return TryCStrFn{fn: f}
		}
		return CStrFn{fn: f}
	case func(CString), func(CString) int, func(CString) error, func(CString) (int, error):
		if try {
			return TryCStringFn{fn: f}
		}
		return CStringFn{fn: f}
	case func(*byte), func(*byte) int, func(*byte) error, func(*byte) (int, error):
		if try {
			return TryCCharPtrFn{fn: f}
		}
		return CCharPtrFn{fn: f}
	}
	panic(fmt.Sprintf("cprint: unsupported write function %T", fn))
}

// canWriteBytes reports whether a wrapped primitive has a byte entry point.
func canWriteBytes(fn WriteFn) bool {
	_, ok := fn.(BytesWriteFn)
	return ok
}
