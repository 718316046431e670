package blueprint

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/arthur-debert/chromasync/pkg/colortable"
)

// PlaceholderKind distinguishes plain colors from composites
type PlaceholderKind int

const (
	// Plain is {name}
	Plain PlaceholderKind = iota
	// Composite is {name1:amount:name2}
	Composite
)

// Placeholder is one occurrence found in a body line. Start and End are
// byte offsets of the braces in the line, End exclusive.
type Placeholder struct {
	Kind   PlaceholderKind
	Color1 string
	Amount string
	Color2 string
	Start  int
	End    int
}

// Text returns the expression without braces, e.g. "foreground:50:background"
func (p Placeholder) Text() string {
	if p.Kind == Plain {
		return p.Color1
	}
	return p.Color1 + colortable.FieldSeparator + p.Amount + colortable.FieldSeparator + p.Color2
}

// ScanPlaceholders returns the non-overlapping placeholders of line from
// left to right. A { that doesn't open a valid expression is skipped one
// character at a time.
func ScanPlaceholders(line string) []Placeholder {
	var found []Placeholder

	for i := 0; i < len(line); {
		if line[i] != '{' {
			i++
			continue
		}
		p, ok := scanPlaceholder(line, i)
		if !ok {
			i++
			continue
		}
		found = append(found, p)
		i = p.End
	}

	return found
}

// ReplacePlaceholders rebuilds line with every placeholder replaced by
// the result of fn
func ReplacePlaceholders(line string, fn func(Placeholder) string) string {
	found := ScanPlaceholders(line)
	if len(found) == 0 {
		return line
	}

	var b strings.Builder
	last := 0
	for _, p := range found {
		b.WriteString(line[last:p.Start])
		b.WriteString(fn(p))
		last = p.End
	}
	b.WriteString(line[last:])
	return b.String()
}

// scanPlaceholder reads {word} or {word:digits:word} starting at the {
// at position start
func scanPlaceholder(line string, start int) (Placeholder, bool) {
	pos := start + 1

	color1, pos := scanRun(line, pos, isWordRune)
	if color1 == "" || pos >= len(line) {
		return Placeholder{}, false
	}

	if line[pos] == '}' {
		return Placeholder{Kind: Plain, Color1: color1, Start: start, End: pos + 1}, true
	}

	if !strings.HasPrefix(line[pos:], colortable.FieldSeparator) {
		return Placeholder{}, false
	}
	pos += len(colortable.FieldSeparator)

	amount, pos := scanRun(line, pos, unicode.IsDigit)
	if amount == "" || !strings.HasPrefix(line[pos:], colortable.FieldSeparator) {
		return Placeholder{}, false
	}
	pos += len(colortable.FieldSeparator)

	color2, pos := scanRun(line, pos, isWordRune)
	if color2 == "" || pos >= len(line) || line[pos] != '}' {
		return Placeholder{}, false
	}

	return Placeholder{
		Kind:   Composite,
		Color1: color1,
		Amount: amount,
		Color2: color2,
		Start:  start,
		End:    pos + 1,
	}, true
}

// scanRun returns the longest prefix of line[pos:] whose runes satisfy
// accept, and the position right after it
func scanRun(line string, pos int, accept func(rune) bool) (string, int) {
	start := pos
	for pos < len(line) {
		r, size := utf8.DecodeRuneInString(line[pos:])
		if !accept(r) {
			break
		}
		pos += size
	}
	return line[start:pos], pos
}
