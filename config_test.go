package cprint_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bjaus/cprint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		want    cprint.Kind
		wantErr bool
	}{
		"concat": {want: cprint.Concat},
		"fmt":    {want: cprint.Fmt},
		"io":     {want: cprint.IO},
		"IO":     {wantErr: true},
		"":       {wantErr: true},
	}
	for input, tt := range tests {
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			got, err := cprint.ParseKind(input)
			if tt.wantErr {
				assert.ErrorIs(t, err, cprint.ErrUnsupportedWriter)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, input, got.String())
		})
	}
}

func TestParsePolicy(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		want    cprint.Policy
		wantErr bool
	}{
		"expect": {want: cprint.Expect},
		"try":    {want: cprint.Try},
		"panic":  {wantErr: true},
	}
	for input, tt := range tests {
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			got, err := cprint.ParsePolicy(input)
			if tt.wantErr {
				assert.ErrorIs(t, err, cprint.ErrUnsupportedPolicy)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKindsAndPolicies(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []cprint.Kind{cprint.Concat, cprint.Fmt, cprint.IO}, cprint.Kinds())
	assert.Equal(t, []cprint.Policy{cprint.Expect, cprint.Try}, cprint.Policies())

	kinds := cprint.Kinds()
	kinds[0] = "changed"
	assert.Equal(t, cprint.Concat, cprint.Kinds()[0])
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  cprint.Config
		err   error
	}{
		"empty": {
			want: cprint.DefaultConfig(),
		},
		"full": {
			input: "writer: io\npolicy: try\nrender: spew\n",
			want:  cprint.Config{Writer: cprint.IO, Policy: cprint.Try, Render: cprint.RenderSpew},
		},
		"partial": {
			input: "writer: fmt\n",
			want:  cprint.Config{Writer: cprint.Fmt, Policy: cprint.Expect, Render: cprint.RenderGoSyntax},
		},
		"bad writer": {
			input: "writer: stream\n",
			err:   cprint.ErrUnsupportedWriter,
		},
		"bad policy": {
			input: "policy: maybe\n",
			err:   cprint.ErrUnsupportedPolicy,
		},
		"bad renderer": {
			input: "render: pretty\n",
			err:   cprint.ErrUnsupportedRenderer,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := cprint.LoadConfig(strings.NewReader(tt.input))
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadConfigRejectsUnknownFields(t *testing.T) {
	t.Parallel()
	_, err := cprint.LoadConfig(strings.NewReader("writer: io\nbuffered: true\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "buffered")
}

func TestWriteConfig(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, cprint.WriteConfig(&buf, cprint.DefaultConfig()))
	assert.Equal(t, "writer: concat\npolicy: expect\nrender: gosyntax\n", buf.String())

	got, err := cprint.LoadConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, cprint.DefaultConfig(), got)
}
