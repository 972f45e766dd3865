// Package ctext renders a small color markup language into ANSI SGR
// escape sequences. Markup expressions are embedded directly in
// strings, printf-style:
//
//	@r         Turn on red coloring
//	@R         Turn on bright red coloring
//	@*{foo}    Bold foo, but don't change text color
//	@_{bar}    Underline bar, but don't change text color
//	@*b        Turn on bold, blue text
//	@.         Revert to plain formatting
//	@*g{green} Print 'green' in bold green, then reset to plain
//
// An expression starts with '@', followed by an optional style marker
// ('*' for bold, '_' for underline) and an optional color letter. The
// letters krgybmcw select black, red, green, yellow, blue, magenta,
// cyan and white; their uppercase forms select the bright variants.
// When the expression ends with text in braces, only that text is
// colored and formatting reverts to plain afterwards. Without braces
// the color stays on until a later @. resets it.
//
// A literal '@' is written as '@@', and a literal '}' inside braces as
// '}}'. [Cescape] applies the '@' escaping to arbitrary text.
//
// [Render] is the core transform. [Cwrite], [Cprint] and [Writer]
// handle output to streams, enabling color only when the destination
// is an interactive terminal unless told otherwise.
package ctext

import "strings"

// Render replaces every markup expression in s with its ANSI escape
// sequence and returns the result. When color is false the escape
// sequences render as empty strings instead, leaving plain text
// suitable for non-terminal destinations.
//
// Render is a pure function and returns either the fully rendered
// string or a [ParseError]; it never returns partial output.
func Render(s string, color bool) (string, error) {
	exprs, err := parse(s)
	if err != nil {
		return "", err
	}
	b := &strings.Builder{}
	b.Grow(len(s))
	for _, e := range exprs {
		e.render(b, color)
	}
	return b.String(), nil
}

// Colorize renders s with color enabled.
func Colorize(s string) (string, error) {
	return Render(s, true)
}

// Strip renders s with color disabled, removing all markup while
// keeping the visible text.
func Strip(s string) (string, error) {
	return Render(s, false)
}

func (e expr) render(b *strings.Builder, color bool) {
	switch e.kind {
	case exprText:
		b.WriteString(e.text)
	case exprAt:
		b.WriteByte('@')
	case exprReset:
		if color {
			b.WriteString(sgrReset)
		}
	case exprSpan:
		if color {
			b.WriteString(csi)
			b.WriteString(styles[e.style])
			if e.color != 0 {
				b.WriteByte(';')
				b.WriteString(colors[e.color])
			}
			b.WriteByte('m')
		}
		if e.text != "" {
			b.WriteString(e.text)
			if color {
				b.WriteString(sgrReset)
			}
		}
	}
}
