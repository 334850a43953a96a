package cprint_test

import (
	"bufio"
	"bytes"
	"strings"
	"syscall"
	"testing"

	"github.com/bjaus/cprint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chunker accepts at most max bytes per call.
type chunker struct {
	max   int
	calls []string
}

func (c *chunker) write(p []byte) int {
	c.calls = append(c.calls, string(p))
	return min(len(p), c.max)
}

func (c *chunker) take() []string {
	calls := c.calls
	c.calls = nil
	return calls
}

// lineWriter passes output on up to the last newline it has seen and keeps
// the rest until Flush.
type lineWriter struct {
	pending []byte
	lines   []string
}

func (l *lineWriter) Write(p []byte) (int, error) {
	i := bytes.LastIndexByte(p, '\n')
	if i < 0 {
		l.pending = append(l.pending, p...)
		return len(p), nil
	}
	l.lines = append(l.lines, string(l.pending)+string(p[:i+1]))
	l.pending = append(l.pending[:0], p[i+1:]...)
	return len(p), nil
}

func (l *lineWriter) Flush() error {
	if len(l.pending) > 0 {
		l.lines = append(l.lines, string(l.pending))
		l.pending = l.pending[:0]
	}
	return nil
}

func (l *lineWriter) take() []string {
	lines := l.lines
	l.lines = nil
	return lines
}

func TestIOWriterRetriesPartialWrites(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		max  int
		call func(w cprint.IOWriter)
		want []string
	}{
		"print": {
			max:  4,
			call: func(w cprint.IOWriter) { w.Print("first") },
			want: []string{"first", "t"},
		},
		"printf": {
			max:  2,
			call: func(w cprint.IOWriter) { w.Printf("first %s\nthird\n", "second") },
			want: []string{
				"first second\nthird\n",
				"rst second\nthird\n",
				"t second\nthird\n",
				"second\nthird\n",
				"cond\nthird\n",
				"nd\nthird\n",
				"\nthird\n",
				"hird\n",
				"rd\n",
				"\n",
			},
		},
		"println": {
			max:  4,
			call: func(w cprint.IOWriter) { w.Println() },
			want: []string{"\n"},
		},
		"exact fit": {
			max:  3,
			call: func(w cprint.IOWriter) { w.Print("abcdef") },
			want: []string{"abcdef", "def"},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			c := &chunker{max: tt.max}
			tt.call(cprint.NewIOWriter(c.write))
			assert.Equal(t, tt.want, c.calls)
		})
	}
}

func TestIOWriterCallCount(t *testing.T) {
	t.Parallel()
	text := strings.Repeat("x", 10)
	for chunk := 1; chunk <= 11; chunk++ {
		c := &chunker{max: chunk}
		n, err := cprint.NewIOTryWriter(c.write).WriteString(text)
		require.NoError(t, err)
		assert.Equal(t, len(text), n)
		assert.Len(t, c.calls, (len(text)+chunk-1)/chunk, "chunk %d", chunk)
		for _, call := range c.calls {
			assert.True(t, strings.HasSuffix(text, call))
		}
	}
}

func TestIOTryWriterWriteOnce(t *testing.T) {
	t.Parallel()
	c := &chunker{max: 2}
	w := cprint.NewIOTryWriter(c.write)
	n, err := w.WriteOnce([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"abc"}, c.calls)
}

func TestIOTryWriterErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		w         func(calls *int) cprint.IOTryWriter
		wantN     int
		want      error
		wantCalls int
	}{
		"zero progress": {
			w: func(calls *int) cprint.IOTryWriter {
				return cprint.NewIOTryWriter(func([]byte) int { *calls++; return 0 })
			},
			want:      cprint.ErrWriteZero,
			wantCalls: 1,
		},
		"zero progress after partial": {
			w: func(calls *int) cprint.IOTryWriter {
				return cprint.NewIOTryWriter(func(p []byte) int {
					*calls++
					if *calls == 1 {
						return 2
					}
					return 0
				})
			},
			wantN:     2,
			want:      cprint.ErrWriteZero,
			wantCalls: 2,
		},
		"error": {
			w: func(calls *int) cprint.IOTryWriter {
				return cprint.NewIOTryWriter(func(*byte, int) error { *calls++; return errBoom })
			},
			want:      errBoom,
			wantCalls: 1,
		},
		"count and error": {
			w: func(calls *int) cprint.IOTryWriter {
				return cprint.NewIOTryWriter(func(int, *byte) (int, error) { *calls++; return 3, errBoom })
			},
			wantN:     3,
			want:      errBoom,
			wantCalls: 1,
		},
		"count too large": {
			w: func(calls *int) cprint.IOTryWriter {
				return cprint.NewIOTryWriter(func(p []byte) int { *calls++; return len(p) + 1 })
			},
			want:      cprint.ErrInvalidCount,
			wantCalls: 1,
		},
		"negative count": {
			w: func(calls *int) cprint.IOTryWriter {
				return cprint.NewIOTryWriter(func([]byte) int { *calls++; return -1 })
			},
			want:      cprint.ErrInvalidCount,
			wantCalls: 1,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var calls int
			n, err := tt.w(&calls).Write([]byte("hello"))
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.wantN, n)
			assert.Equal(t, tt.wantCalls, calls)
		})
	}
}

func TestIOTryWriterRetriesInterrupted(t *testing.T) {
	t.Parallel()
	tests := map[string]error{
		"sentinel": cprint.ErrInterrupted,
		"eintr":    syscall.EINTR,
	}
	for name, interrupt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var calls []string
			w := cprint.NewIOTryWriter(func(p []byte) (int, error) {
				calls = append(calls, string(p))
				if len(calls) == 1 {
					return 0, interrupt
				}
				return len(p), nil
			})
			n, err := w.Print("hello")
			require.NoError(t, err)
			assert.Equal(t, 5, n)
			assert.Equal(t, []string{"hello", "hello"}, calls)
		})
	}
}

func TestIOTryWriterNul(t *testing.T) {
	t.Parallel()
	tests := map[string]cprint.IOTryWriter{
		"cstr":    cprint.NewIOTryWriter(func(cprint.CStr) {}),
		"cstring": cprint.NewIOTryWriter(func(cprint.CString) {}),
		"cchar":   cprint.NewIOTryWriter(func(*byte) {}),
	}
	for name, w := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			n, err := w.Printf("a%sb", "\x00")
			assert.Zero(t, n)
			assert.ErrorIs(t, err, cprint.ErrInvalidData)
			assert.ErrorIs(t, err, cprint.ErrNulByte)
			var nulErr *cprint.NulError
			require.ErrorAs(t, err, &nulErr)
			assert.Equal(t, 1, nulErr.Pos)
		})
	}
}

func TestIOWriterPanics(t *testing.T) {
	t.Parallel()
	w := cprint.NewIOWriter(func([]byte) int { return 0 })
	assert.PanicsWithError(t, "failed writing: write returned zero", func() { w.Print("x") })
	assert.NotPanics(t, func() { w.WriteOnce([]byte("x")) })

	e := cprint.NewIOWriter(func([]byte) error { return errBoom })
	assert.PanicsWithError(t, "failed writing: boom", func() { e.WriteOnce([]byte("x")) })

	f := cprint.NewIOWriter(func([]byte) {}).WithFlush(cprint.NewFlushFn(func() error { return errBoom }))
	assert.PanicsWithError(t, "failed flushing: boom", func() { f.Flush() })
}

func TestIOWriterWriteOnceReportsShortCount(t *testing.T) {
	t.Parallel()
	c := &chunker{max: 1}
	n, err := cprint.NewIOWriter(c.write).WriteOnce([]byte("ab"))
	assert.Nil(t, err)
	assert.Equal(t, 1, n)
}

func TestIOWriterFlushesLineBuffer(t *testing.T) {
	t.Parallel()
	lw := &lineWriter{}
	w := cprint.NewIOWriter(lw.Write).WithFlush(cprint.NewFlushFn(lw.Flush))

	w.Print("first")
	assert.Empty(t, lw.take())

	w.Printf("first %s\nthird\n", "second")
	assert.Equal(t, []string{"firstfirst second\nthird\n"}, lw.take())

	w.Println()
	assert.Equal(t, []string{"\n"}, lw.take())

	w.Print("first")
	w.Print("\nsecond")
	w.Print(" third")
	assert.Equal(t, []string{"first\n"}, lw.take())

	w.Flush()
	assert.Equal(t, []string{"second third"}, lw.take())

	w.Flush()
	assert.Empty(t, lw.take())
}

func TestFromWriter(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	bw := bufio.NewWriter(&out)
	w := cprint.FromWriter(bw)

	_, err := w.Printf("%s=%d\n", "a", 1)
	require.NoError(t, err)
	assert.Empty(t, out.String())

	require.NoError(t, w.Flush())
	assert.Equal(t, "a=1\n", out.String())

	var plain bytes.Buffer
	pw := cprint.FromWriter(&plain)
	_, err = pw.Println("x")
	require.NoError(t, err)
	require.NoError(t, pw.Flush())
	assert.Equal(t, "x\n", plain.String())
}
