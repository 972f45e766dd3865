//go:build !windows

package ctext

import (
	"bytes"
	"testing"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
)

// Auto detection needs a real terminal on the other end of the write;
// a pty pair provides one.
func TestAutoDetection(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	assert.True(t, Auto.enabled(tty))
	assert.False(t, Auto.enabled(&bytes.Buffer{}))

	err = Cwrite(tty, Auto, "@g{ok}")
	assert.NoError(t, err)

	buf := make([]byte, 64)
	n, err := ptmx.Read(buf)
	assert.NoError(t, err)
	assert.Equal(t, "\x1b[0;32mok\x1b[0m", string(buf[:n]))
}

func TestWriterAutoOnPty(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	w := NewWriter(tty, Auto)
	assert.Equal(t, tty.Fd(), w.Fd())

	_, err = w.WriteString("@r{hot}")
	assert.NoError(t, err)

	buf := make([]byte, 64)
	n, err := ptmx.Read(buf)
	assert.NoError(t, err)
	assert.Equal(t, "\x1b[0;31mhot\x1b[0m", string(buf[:n]))
}
