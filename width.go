package ctext

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Clen returns the number of terminal columns s occupies once
// rendered, with markup and escape sequences excluded. Width is
// measured per Unicode grapheme cluster, so wide characters and emoji
// count their display width rather than their byte length.
func Clen(s string) (int, error) {
	plain, err := Render(s, false)
	if err != nil {
		return 0, err
	}
	return uniseg.StringWidth(plain), nil
}

// Cextra returns the number of bytes of s consumed by markup rather
// than visible text.
func Cextra(s string) (int, error) {
	plain, err := Render(s, false)
	if err != nil {
		return 0, err
	}
	return len(s) - len(plain), nil
}

// Ctruncate shortens the visible text of s to at most width terminal
// columns, appending tail when anything was cut. Markup is preserved,
// so a braced span cut mid-body keeps its color and its closing reset.
// The tail is appended verbatim and measured as plain text; pass it
// through [Cescape] first if it may contain '@'.
func Ctruncate(s string, width int, tail string) (string, error) {
	exprs, err := parse(s)
	if err != nil {
		return "", err
	}
	total := 0
	for _, e := range exprs {
		total += e.width()
	}
	if total <= width {
		return s, nil
	}
	budget := width - runewidth.StringWidth(tail)
	if budget < 0 {
		budget = 0
	}
	b := &strings.Builder{}
	for _, e := range exprs {
		w := e.width()
		if w <= budget {
			e.appendMarkup(b)
			budget -= w
			continue
		}
		switch e.kind {
		case exprText:
			b.WriteString(truncGraphemes(e.text, budget))
		case exprSpan:
			cut := expr{
				kind:   exprSpan,
				style:  e.style,
				color:  e.color,
				braced: true,
				text:   truncGraphemes(e.text, budget),
			}
			if cut.text != "" {
				cut.appendMarkup(b)
			}
		}
		break
	}
	b.WriteString(tail)
	return b.String(), nil
}

// width is the expression's contribution in terminal columns.
func (e expr) width() int {
	switch e.kind {
	case exprAt:
		return 1
	case exprText, exprSpan:
		return uniseg.StringWidth(e.text)
	}
	return 0
}

// appendMarkup writes the expression back out in markup form.
func (e expr) appendMarkup(b *strings.Builder) {
	switch e.kind {
	case exprText:
		b.WriteString(e.text)
	case exprAt:
		b.WriteString("@@")
	case exprReset:
		b.WriteString("@.")
	case exprSpan:
		b.WriteByte('@')
		if e.style != 0 {
			b.WriteByte(e.style)
		}
		if e.color != 0 {
			b.WriteByte(e.color)
		}
		if e.braced {
			b.WriteByte('{')
			b.WriteString(strings.ReplaceAll(e.text, "}", "}}"))
			b.WriteByte('}')
		}
	}
}

// truncGraphemes cuts s at a grapheme cluster boundary so that it fits
// in budget columns.
func truncGraphemes(s string, budget int) string {
	b := &strings.Builder{}
	used := 0
	state := -1
	var cluster string
	var w int
	for len(s) > 0 {
		cluster, s, w, state = uniseg.FirstGraphemeClusterInString(s, state)
		if used+w > budget {
			break
		}
		b.WriteString(cluster)
		used += w
	}
	return b.String()
}
