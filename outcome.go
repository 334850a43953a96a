package cprint

import (
	"errors"
	"fmt"
	"io"
	"syscall"
)

// Returns describes the result shape of a write or flush primitive.
type Returns uint8

const (
	ReturnsNothing    Returns = iota // func(...)
	ReturnsCount                     // func(...) int
	ReturnsError                     // func(...) error
	ReturnsCountError                // func(...) (int, error)
)

// Outcome is the raw result of one call into a primitive, before a facade
// normalizes it.
type Outcome struct {
	Returns Returns
	N       int
	Err     error
}

func invoke0(fn any) Outcome {
	switch f := fn.(type) {
	case func():
		f()
		return Outcome{}
	case func() error:
		return Outcome{Returns: ReturnsError, Err: f()}
	}
	panic(fmt.Sprintf("cprint: unsupported flush function %T", fn))
}

func invoke1[A any](fn any, a A) Outcome {
	switch f := fn.(type) {
	case func(A):
		f(a)
		return Outcome{}
	case func(A) int:
		return Outcome{Returns: ReturnsCount, N: f(a)}
	case func(A) error:
		return Outcome{Returns: ReturnsError, Err: f(a)}
	case func(A) (int, error):
		n, err := f(a)
		return Outcome{Returns: ReturnsCountError, N: n, Err: err}
	}
	panic(fmt.Sprintf("cprint: unsupported write function %T", fn))
}

func invoke2[A, B any](fn any, a A, b B) Outcome {
	switch f := fn.(type) {
	case func(A, B):
		f(a, b)
		return Outcome{}
	case func(A, B) int:
		return Outcome{Returns: ReturnsCount, N: f(a, b)}
	case func(A, B) error:
		return Outcome{Returns: ReturnsError, Err: f(a, b)}
	case func(A, B) (int, error):
		n, err := f(a, b)
		return Outcome{Returns: ReturnsCountError, N: n, Err: err}
	}
	panic(fmt.Sprintf("cprint: unsupported write function %T", fn))
}

// concatResult normalizes an outcome for the single-shot writers. n is the
// length of the text that was handed to the primitive.
func concatResult(o Outcome, n int) (int, error) {
	switch o.Returns {
	case ReturnsCount:
		return o.N, nil
	case ReturnsError:
		if o.Err != nil {
			return 0, o.Err
		}
		return n, nil
	case ReturnsCountError:
		return o.N, o.Err
	default:
		return n, nil
	}
}

// fmtResult reports why an outcome failed a fragment write, or nil. A count
// short of the fragment is a failure: the fragment writer never retries.
func fmtResult(o Outcome, n int) error {
	switch o.Returns {
	case ReturnsCount:
		if o.N != n {
			return io.ErrShortWrite
		}
		return nil
	case ReturnsError:
		return o.Err
	case ReturnsCountError:
		if o.Err != nil {
			return o.Err
		}
		if o.N != n {
			return io.ErrShortWrite
		}
		return nil
	default:
		return nil
	}
}

// ioWriteResult normalizes an outcome for a single incremental write.
func ioWriteResult(o Outcome, n int) (int, error) {
	n, err := concatResult(o, n)
	var nulErr *NulError
	if errors.As(err, &nulErr) {
		return 0, fmt.Errorf("%w: %w", ErrInvalidData, err)
	}
	return n, err
}

func ioFlushResult(o Outcome) error {
	return o.Err
}

func isInterrupted(err error) bool {
	return errors.Is(err, ErrInterrupted) || errors.Is(err, syscall.EINTR)
}

func mustWrite(n int, err error) int {
	if err != nil {
		panic(fmt.Errorf("failed writing: %w", err))
	}
	return n
}

func mustFlush(err error) {
	if err != nil {
		panic(fmt.Errorf("failed flushing: %w", err))
	}
}
