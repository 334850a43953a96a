package cprint

// FlushFunc is the set of flush function shapes FlushFn accepts.
type FlushFunc interface {
	func() | func() error
}

// FlushFn wraps a flush function.
type FlushFn struct {
	fn any
}

// NewFlushFn returns a FlushFn calling fn.
func NewFlushFn[F FlushFunc](fn F) FlushFn {
	return FlushFn{fn: fn}
}

// Flush calls the wrapped function.
func (f FlushFn) Flush() Outcome {
	return invoke0(f.fn)
}

// NoFlush is the flusher used when none is supplied. It does nothing.
type NoFlush struct{}

// Flush does nothing.
func (NoFlush) Flush() Outcome { return Outcome{} }
