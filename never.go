package cprint

// NeverError is an error type with no values other than nil.
//
// The fail-fast writers report their results as (n, NeverError) so the shape
// of a call matches its Try counterpart while making it plain that the error
// slot is never filled: any failure panics instead.
type NeverError interface {
	error
	never()
}
