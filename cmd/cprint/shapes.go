package main

import (
	"fmt"
	"io"
	"strings"
	"unsafe"

	"github.com/bjaus/cprint"
)

type shape struct {
	name   string
	params string
	writes string
}

var shapes = []shape{
	{name: "ptrlen", params: "func(*byte, int) (int, error)", writes: "bytes, text"},
	{name: "lenptr", params: "func(int, *byte) (int, error)", writes: "bytes, text"},
	{name: "bytes", params: "func([]byte) (int, error)", writes: "bytes, text"},
	{name: "str", params: "func(string) (int, error)", writes: "text"},
	{name: "string", params: "func(*strings.Builder) (int, error)", writes: "text"},
	{name: "cstr", params: "func(cprint.CStr) (int, error)", writes: "bytes, text (NUL-checked)"},
	{name: "cstring", params: "func(cprint.CString) error", writes: "bytes, text (NUL-checked)"},
	{name: "cchar", params: "func(*byte) error", writes: "bytes, text (NUL-checked)"},
}

func shapeNames() []string {
	names := make([]string, len(shapes))
	for i, s := range shapes {
		names[i] = s.name
	}
	return names
}

// cLen returns the length of the NUL-terminated buffer starting at p.
func cLen(p *byte) int {
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return n
}

// emitShape runs e with a write function of the named shape writing to out.
func emitShape(name string, out io.Writer, e emitter) error {
	switch name {
	case "ptrlen":
		return emit(e, func(p *byte, n int) (int, error) {
			return out.Write(unsafe.Slice(p, n))
		})
	case "lenptr":
		return emit(e, func(n int, p *byte) (int, error) {
			return out.Write(unsafe.Slice(p, n))
		})
	case "bytes":
		return emit(e, out.Write)
	case "str":
		return emit(e, func(s string) (int, error) {
			return io.WriteString(out, s)
		})
	case "string":
		return emit(e, func(b *strings.Builder) (int, error) {
			return io.WriteString(out, b.String())
		})
	case "cstr":
		return emit(e, func(c cprint.CStr) (int, error) {
			return out.Write(c.Bytes())
		})
	case "cstring":
		return emit(e, func(c cprint.CString) error {
			_, err := out.Write(c.Bytes())
			return err
		})
	case "cchar":
		return emit(e, func(p *byte) error {
			if p == nil {
				return nil
			}
			_, err := out.Write(unsafe.Slice(p, cLen(p)))
			return err
		})
	default:
		return fmt.Errorf("%w: %q (want one of %s)", cprint.ErrUnsupportedShape, name, strings.Join(shapeNames(), ", "))
	}
}
