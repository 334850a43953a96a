// Package cprint builds print, println, printf and debug-print functions on
// top of an arbitrary write function, without adapter code for each
// function shape.
//
// # Write Functions
//
// A write function is any of nine parameter shapes, each returning nothing,
// a byte count, an error, or both:
//
//   - func(*byte, int) and func(int, *byte): pointer and length
//   - func([]byte)
//   - func(string)
//   - func(*strings.Builder): an owned copy of the text
//   - func([CStr]), func([CString]) and func(*byte): NUL-terminated data
//
// [IntoWriteFn] wraps a function in the matching wrapper, such as [PtrLenFn]
// or [StrFn]. The set of shapes is closed: passing any other function type is
// a compile error. [IntoTryWriteFn] does the same but maps C-string shapes to
// wrappers that report an embedded NUL as a [*NulError] instead of panicking.
//
// # Writers
//
// Three facades differ in when the formatted text reaches the write function:
//
//   - [ConcatWriter] renders a call into one string and writes it once.
//   - [FmtWriter] writes each literal run and operand as it is produced.
//   - [IOWriter] writes through a partial-write retry loop and can flush.
//
// Each has a Try variant ([ConcatTryWriter], [FmtTryWriter],
// [IOTryWriter]) that returns errors. The fail-fast variants panic on any
// error and report [NeverError] in the error slot:
//
//	w := cprint.NewConcatWriter(func(p *byte, n int) { consoleLog(p, n) })
//	w.Println("hello")
//
// # Results
//
// Whatever the write function returns is normalized to the facade's result:
// nothing means every byte was written, a count is passed through, and an
// error is returned or panics. [FmtTryWriter] reports every failure as
// [ErrFormat]; use [FmtTryWriter.WithLogger] to keep the original error.
//
// # Debug Printing
//
// [Debugger] writes each value with its file, line and source expression:
//
//	d := cprint.NewDebugger(w)
//	d.Dbg("first", second) // [main.go:12] "first" = "first"
//	                       // [main.go:12] second = "second"
//
// # Definitions
//
// [Define] and [DefineTry] build a ready set of print functions from a
// [Config], which [LoadConfig] reads from YAML:
//
//	writer: io
//	policy: expect
//	render: spew
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrNulByte]: data for a C string contains a NUL byte
//   - [ErrFormat]: a fragment write failed
//   - [ErrWriteZero]: a write function made no progress
//   - [ErrInterrupted]: a retryable write failure
//   - [ErrInvalidData]: wraps [ErrNulByte] in the io facades
//   - [ErrInvalidCount]: a write function reported a count outside the buffer
//   - [ErrUnsupportedWriter], [ErrUnsupportedPolicy], [ErrUnsupportedShape],
//     [ErrUnsupportedRenderer]: invalid configuration
package cprint
