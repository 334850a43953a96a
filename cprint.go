package cprint

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrNulByte             = errors.New("nul byte found")
	ErrFormat              = errors.New("an error occurred when formatting an argument")
	ErrWriteZero           = errors.New("write returned zero")
	ErrInterrupted         = errors.New("operation interrupted")
	ErrInvalidData         = errors.New("invalid data")
	ErrInvalidCount        = errors.New("write reported an invalid byte count")
	ErrUnsupportedWriter   = errors.New("unsupported writer")
	ErrUnsupportedPolicy   = errors.New("unsupported policy")
	ErrUnsupportedShape    = errors.New("unsupported write function shape")
	ErrUnsupportedRenderer = errors.New("unsupported renderer")
)

// Kind selects one of the three writer facades.
type Kind string

const (
	// Concat renders a whole call into one string and writes it once.
	Concat Kind = "concat"
	// Fmt writes each formatted fragment as it is produced.
	Fmt Kind = "fmt"
	// IO writes through a partial-write retry loop and supports flushing.
	IO Kind = "io"
)

var kinds = []Kind{Concat, Fmt, IO}

// String returns the writer kind name.
func (k Kind) String() string { return string(k) }

// Kinds returns all supported writer kinds.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// ParseKind parses a writer kind name.
func ParseKind(s string) (Kind, error) {
	for _, k := range kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedWriter, s)
}

// Policy selects how write errors reach the caller.
type Policy string

const (
	// Expect panics on any write error. Callers never check a result.
	Expect Policy = "expect"
	// Try returns every write error to the caller.
	Try Policy = "try"
)

var policies = []Policy{Expect, Try}

// String returns the policy name.
func (p Policy) String() string { return string(p) }

// Policies returns all supported error policies.
func Policies() []Policy {
	out := make([]Policy, len(policies))
	copy(out, policies)
	return out
}

// ParsePolicy parses an error policy name.
func ParsePolicy(s string) (Policy, error) {
	for _, p := range policies {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedPolicy, s)
}

// --- Capability Interfaces ---

// BytesWriter writes raw bytes. R is whatever the implementation reports
// for a single call.
type BytesWriter[R any] interface {
	WriteBytes(p []byte) R
}

// StringWriter writes text. R is whatever the implementation reports for a
// single call.
type StringWriter[R any] interface {
	WriteStr(s string) R
}

// Flusher flushes buffered output.
type Flusher[R any] interface {
	Flush() R
}

// WriteFn is a wrapped write primitive that can write text.
type WriteFn interface {
	StringWriter[Outcome]
}

// BytesWriteFn is a wrapped write primitive that can also write raw bytes.
type BytesWriteFn interface {
	WriteFn
	BytesWriter[Outcome]
}

// writeBytes writes p through fn, going through text when fn has no byte
// entry point.
func writeBytes(fn WriteFn, p []byte) Outcome {
	if bw, ok := fn.(BytesWriter[Outcome]); ok {
		return bw.WriteBytes(p)
	}
	return fn.WriteStr(string(p))
}
