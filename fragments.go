package cprint

import (
	"fmt"
	"iter"
	"reflect"
	"strings"
	"unicode/utf8"
)

// segment is either a literal run or one formatting verb with the number of
// operands it consumes.
type segment struct {
	text  string
	verb  bool
	nargs int
}

// printfFragments yields the pieces fmt.Sprintf(format, a...) is made of:
// literal runs and one rendered operand per verb, in order. Formats with
// explicit argument indexes are yielded as a single fragment.
func printfFragments(format string, a []any) iter.Seq[string] {
	return func(yield func(string) bool) {
		segs, indexed := parseFormat(format)
		if indexed {
			yield(fmt.Sprintf(format, a...))
			return
		}
		argi := 0
		for _, seg := range segs {
			if !seg.verb {
				if !yield(seg.text) {
					return
				}
				continue
			}
			end := min(argi+seg.nargs, len(a))
			if !yield(fmt.Sprintf(seg.text, a[argi:end]...)) {
				return
			}
			argi = end
		}
		if argi < len(a) {
			// With no verbs, fmt renders only %!(EXTRA ...) for the operands.
			var noVerbs string
			yield(fmt.Sprintf(noVerbs, a[argi:]...))
		}
	}
}

// printFragments yields the pieces of fmt.Sprint(a...): each operand, with a
// space between operands when neither is a string.
func printFragments(a []any) iter.Seq[string] {
	return func(yield func(string) bool) {
		prevString := false
		for i, arg := range a {
			isString := arg != nil && reflect.TypeOf(arg).Kind() == reflect.String
			if i > 0 && !isString && !prevString {
				if !yield(" ") {
					return
				}
			}
			if !yield(fmt.Sprint(arg)) {
				return
			}
			prevString = isString
		}
	}
}

// printlnFragments yields the pieces of fmt.Sprintln(a...).
func printlnFragments(a []any) iter.Seq[string] {
	return func(yield func(string) bool) {
		for i, arg := range a {
			if i > 0 {
				if !yield(" ") {
					return
				}
			}
			if !yield(fmt.Sprint(arg)) {
				return
			}
		}
		yield("\n")
	}
}

// parseFormat splits a printf format into segments. indexed reports whether
// any verb uses an explicit argument index.
func parseFormat(format string) (segs []segment, indexed bool) {
	var lit strings.Builder
	flushLit := func() {
		if lit.Len() > 0 {
			segs = append(segs, segment{text: lit.String()})
			lit.Reset()
		}
	}
	for i := 0; i < len(format); {
		c := format[i]
		if c != '%' {
			lit.WriteByte(c)
			i++
			continue
		}
		if i+1 < len(format) && format[i+1] == '%' {
			lit.WriteByte('%')
			i += 2
			continue
		}
		start := i
		i++
		nargs := 1
		for i < len(format) && strings.IndexByte("+-# 0", format[i]) >= 0 {
			i++
		}
	scan:
		for i < len(format) {
			switch ch := format[i]; {
			case ch == '*':
				nargs++
			case ch == '[':
				indexed = true
			case ch == ']' || ch == '.' || (ch >= '0' && ch <= '9'):
			default:
				break scan
			}
			i++
		}
		if i < len(format) {
			_, size := utf8.DecodeRuneInString(format[i:])
			i += size
		} else {
			// A trailing '%' renders as %!(NOVERB) and takes no operand.
			nargs = 0
		}
		flushLit()
		segs = append(segs, segment{text: format[start:i], verb: true, nargs: nargs})
	}
	flushLit()
	return segs, indexed
}
