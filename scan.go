package ctext

import (
	"fmt"
	"strings"
)

// ParseError is returned when a color expression fails to parse:
// either a bare '@' with no valid continuation, or a letter outside
// the sixteen-color set.
type ParseError struct {
	// Msg describes the failure
	Msg string
	// Fragment is the offending expression text
	Fragment string
	// Input is the full string being rendered
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q in %q", e.Msg, e.Fragment, e.Input)
}

func incompleteErr(frag, input string) error {
	return &ParseError{Msg: "incomplete color expression", Fragment: frag, Input: input}
}

func badColorErr(frag, input string) error {
	return &ParseError{Msg: "invalid color specifier", Fragment: frag, Input: input}
}

type exprKind uint8

const (
	exprText  exprKind = iota // a run of ordinary text
	exprAt                    // @@, a literal @
	exprReset                 // @., revert to plain formatting
	exprSpan                  // @ with optional style, color and braced body
)

// expr is a single parsed unit of a markup string. Expressions are
// ephemeral: discovered, rendered and discarded per call.
type expr struct {
	kind   exprKind
	text   string // literal text, or the unescaped body of a braced span
	style  byte   // '*' or '_', 0 when absent
	color  byte   // color letter, 0 when absent
	braced bool   // span carried a {...} block
}

// parse splits s into its markup expressions, scanning left to right.
// Text outside any expression is preserved byte-for-byte. Parsing is
// all-or-nothing: on error no expressions are returned.
func parse(s string) ([]expr, error) {
	var exprs []expr
	start := 0
	i := 0
	for i < len(s) {
		if s[i] != '@' {
			i++
			continue
		}
		if i > start {
			exprs = append(exprs, expr{kind: exprText, text: s[start:i]})
		}
		e, n, err := parseExpr(s, i)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
		i += n
		start = i
	}
	if start < len(s) {
		exprs = append(exprs, expr{kind: exprText, text: s[start:]})
	}
	return exprs, nil
}

// parseExpr parses one expression beginning at the '@' at s[i] and
// returns it along with the number of bytes consumed.
func parseExpr(s string, i int) (expr, int, error) {
	j := i + 1
	if j < len(s) {
		switch s[j] {
		case '@':
			return expr{kind: exprAt}, 2, nil
		case '.':
			return expr{kind: exprReset}, 2, nil
		}
	}
	e := expr{kind: exprSpan}
	if j < len(s) && (s[j] == '*' || s[j] == '_') {
		e.style = s[j]
		j++
	}
	if j < len(s) && isLetter(s[j]) {
		if _, ok := colors[s[j]]; !ok {
			return expr{}, 0, badColorErr(string(s[j]), s)
		}
		e.color = s[j]
		j++
	}
	if j < len(s) && s[j] == '{' {
		body, n, closed := parseBody(s, j+1)
		if closed {
			e.text = body
			e.braced = true
			j += 1 + n
		}
		// An unclosed block is not part of the expression; the
		// brace and everything after it stay literal text.
	}
	// A lone '@' with nothing attached, whether at end of input or
	// before an unrecognized character.
	if e.style == 0 && e.color == 0 && !e.braced {
		return expr{}, 0, incompleteErr("@", s)
	}
	return e, j - i, nil
}

// parseBody scans a braced body starting just past the opening brace.
// Within the body '}}' stands for a literal '}'; the first unescaped
// '}' closes it. When the body runs out of input mid-pair, the block
// still closes at the last pair's opening brace, leaving the second
// half outside the expression. Returns the unescaped body, the bytes
// consumed including the closing brace, and whether a close was found.
func parseBody(s string, start int) (string, int, bool) {
	lastPair := -1
	i := start
	for i < len(s) {
		if s[i] != '}' {
			i++
			continue
		}
		if i+1 < len(s) && s[i+1] == '}' {
			lastPair = i
			i += 2
			continue
		}
		return unescapeBody(s[start:i]), i + 1 - start, true
	}
	if lastPair >= 0 {
		return unescapeBody(s[start:lastPair]), lastPair + 1 - start, true
	}
	return "", 0, false
}

func unescapeBody(s string) string {
	return strings.ReplaceAll(s, "}}", "}")
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
