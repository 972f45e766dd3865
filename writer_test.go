package ctext

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCwrite(t *testing.T) {
	tests := []struct {
		name  string
		mode  Mode
		input string
		want  string
	}{
		{
			name:  "auto on non-terminal strips markup",
			mode:  Auto,
			input: "@r{hi}",
			want:  "hi",
		},
		{
			name:  "always",
			mode:  Always,
			input: "@r{hi}",
			want:  "\x1b[0;31mhi\x1b[0m",
		},
		{
			name:  "never",
			mode:  Never,
			input: "@r{hi}",
			want:  "hi",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			err := Cwrite(buf, test.mode, test.input)
			assert.NoError(t, err)
			assert.Equal(t, test.want, buf.String())
		})
	}
}

func TestCwriteParseError(t *testing.T) {
	buf := &bytes.Buffer{}
	err := Cwrite(buf, Always, "broken @")
	assert.Error(t, err)
	// reject the whole call: no prefix reaches the stream
	assert.Zero(t, buf.Len())
}

func TestCprint(t *testing.T) {
	buf := &bytes.Buffer{}
	err := Cprint(buf, Always, "@g{done}")
	assert.NoError(t, err)
	// the newline is appended before rendering, after the reset
	assert.Equal(t, "\x1b[0;32mdone\x1b[0m\n", buf.String())
}

func TestWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf, Always)

	n, err := w.Write([]byte("@b{x}"))
	assert.NoError(t, err)
	assert.Equal(t, len("@b{x}"), n)
	assert.Equal(t, "\x1b[0;34mx\x1b[0m", buf.String())

	buf.Reset()
	n, err = w.WriteString("@.")
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "\x1b[0m", buf.String())

	buf.Reset()
	n, err = w.Write([]byte("bad @"))
	assert.Error(t, err)
	assert.Zero(t, n)
	assert.Zero(t, buf.Len())
}

func TestWriterRaw(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf, Always)

	n, err := w.WriteRaw([]byte("@r{untouched}"))
	assert.NoError(t, err)
	assert.Equal(t, len("@r{untouched}"), n)
	assert.Equal(t, "@r{untouched}", buf.String())
}

func TestWriterStrings(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf, Always)

	err := w.WriteStrings("@r{a}", "b", "@.")
	assert.NoError(t, err)
	assert.Equal(t, "\x1b[0;31ma\x1b[0mb\x1b[0m", buf.String())
}

type recordedStream struct {
	bytes.Buffer
	flushed bool
	closed  bool
}

func (s *recordedStream) Flush() error {
	s.flushed = true
	return nil
}

func (s *recordedStream) Close() error {
	s.closed = true
	return nil
}

func TestWriterDelegation(t *testing.T) {
	stream := &recordedStream{}
	w := NewWriter(stream, Never)

	assert.NoError(t, w.Flush())
	assert.True(t, stream.flushed)
	assert.NoError(t, w.Close())
	assert.True(t, stream.closed)
	assert.Equal(t, stream, w.Unwrap())

	// a plain buffer has neither capability; both are no-ops
	plain := NewWriter(&bytes.Buffer{}, Never)
	assert.NoError(t, plain.Flush())
	assert.NoError(t, plain.Close())
	assert.Equal(t, ^uintptr(0), plain.Fd())
}
