package ctext

import (
	"io"
	"strings"

	"golang.org/x/term"
)

// Mode controls when markup renders to escape sequences.
type Mode uint8

const (
	// Auto enables color only when the destination is an interactive
	// terminal. Auto is the zero value.
	Auto Mode = iota
	// Always renders escape sequences regardless of destination.
	Always
	// Never strips markup, leaving plain text.
	Never
)

// fder is the capability a destination must expose for terminal
// detection. *os.File satisfies it.
type fder interface {
	Fd() uintptr
}

// enabled resolves the mode against a destination.
func (m Mode) enabled(w io.Writer) bool {
	switch m {
	case Always:
		return true
	case Never:
		return false
	default:
		f, ok := w.(fder)
		on := ok && term.IsTerminal(int(f.Fd()))
		log.Debug("color auto-detection", "tty", on)
		return on
	}
}

// Cwrite renders the markup in s and writes the result to w. Under
// [Auto] the destination is colored only when it is an interactive
// terminal. A parse error is returned before anything is written.
func Cwrite(w io.Writer, mode Mode, s string) error {
	out, err := Render(s, mode.enabled(w))
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// Cprint is Cwrite with a trailing newline. The newline is appended
// before rendering, so it always lands after any closing escape
// sequence.
func Cprint(w io.Writer, mode Mode, s string) error {
	return Cwrite(w, mode, s+"\n")
}

// Cescape doubles every '@' in s so that the result passes through
// [Render] as literal text, whatever s contains.
func Cescape(s string) string {
	return strings.ReplaceAll(s, "@", "@@")
}

// Writer renders color markup on its way to an underlying stream. The
// color decision is made once, at construction, and applies to every
// write. Flush, Close and Fd delegate to the wrapped stream when it
// has the capability.
type Writer struct {
	dst   io.Writer
	color bool
}

// NewWriter wraps dst. Under [Auto] the wrapper probes dst for an
// interactive terminal at construction time.
func NewWriter(dst io.Writer, mode Mode) *Writer {
	return &Writer{dst: dst, color: mode.enabled(dst)}
}

// Write renders p and forwards the result. The returned count reports
// bytes consumed from p, per the io.Writer contract; nothing is
// written when p fails to parse.
func (w *Writer) Write(p []byte) (int, error) {
	out, err := Render(string(p), w.color)
	if err != nil {
		return 0, err
	}
	if _, err := io.WriteString(w.dst, out); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteString renders s and forwards the result.
func (w *Writer) WriteString(s string) (int, error) {
	out, err := Render(s, w.color)
	if err != nil {
		return 0, err
	}
	if _, err := io.WriteString(w.dst, out); err != nil {
		return 0, err
	}
	return len(s), nil
}

// WriteRaw forwards p untouched, bypassing the renderer.
func (w *Writer) WriteRaw(p []byte) (int, error) {
	return w.dst.Write(p)
}

// WriteStrings renders each item and forwards it. Each item passes
// through the renderer exactly once; the forwarding write takes the
// raw path.
func (w *Writer) WriteStrings(items ...string) error {
	for _, s := range items {
		out, err := Render(s, w.color)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w.dst, out); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying stream when it supports flushing and is
// a no-op otherwise.
func (w *Writer) Flush() error {
	if f, ok := w.dst.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Close closes the underlying stream when it is an io.Closer and is a
// no-op otherwise.
func (w *Writer) Close() error {
	if c, ok := w.dst.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Fd exposes the underlying stream's descriptor so that wrapped files
// still support terminal detection. Returns ^uintptr(0) when the
// stream has none.
func (w *Writer) Fd() uintptr {
	if f, ok := w.dst.(fder); ok {
		return f.Fd()
	}
	return ^uintptr(0)
}

// Unwrap returns the wrapped stream.
func (w *Writer) Unwrap() io.Writer {
	return w.dst
}
