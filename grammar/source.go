package grammar

import (
	"fmt"

	"golang.org/x/text/width"
)

// Span is a half-open interval [from, to) of character positions within
// an input line. Positions count runes, not bytes.
type Span [2]int

// From returns the start position of a span.
func (s Span) From() int {
	return s[0]
}

// To returns the position just behind the end of a span.
func (s Span) To() int {
	return s[1]
}

// Len returns the number of characters covered by a span.
func (s Span) Len() int {
	return s[1] - s[0]
}

// IsNull is a predicate: does the span cover no characters at all?
func (s Span) IsNull() bool {
	return s[1] <= s[0]
}

// Extend returns the smallest span covering both s and other.
// A null span is neutral to extension.
func (s Span) Extend(other Span) Span {
	if s == (Span{}) {
		return other
	}
	if other == (Span{}) {
		return s
	}
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("%d...%d", s[0], s[1])
}

// --- Source ----------------------------------------------------------------

// Source is an input line to be parsed. Spans are resolved against a
// source only when their text is needed, e.g. for reading an operator or
// reporting an error.
type Source struct {
	line  string // the line as entered
	input []rune // the line after width folding, as seen by the tokenizer
}

// NewSource creates a source from an input line.
//
// Full-width forms of characters (as entered with many East Asian input
// methods) are folded to their narrow counterparts, thus "２＋３" will be read
// as "2+3". Folding maps single characters to single characters, so
// character positions are identical for the line and the folded input.
func NewSource(line string) *Source {
	return &Source{
		line:  line,
		input: []rune(width.Narrow.String(line)),
	}
}

// Line returns the input line as entered.
func (src *Source) Line() string {
	return src.line
}

// Input returns the folded input line, as seen by the tokenizer.
func (src *Source) Input() string {
	return string(src.input)
}

// Len returns the number of characters of the input.
func (src *Source) Len() int {
	return len(src.input)
}

// Text returns the (folded) input text covered by a span. Spans exceeding
// the input are clipped.
func (src *Source) Text(span Span) string {
	from, to := clip(span.From(), len(src.input)), clip(span.To(), len(src.input))
	if to <= from {
		return ""
	}
	return string(src.input[from:to])
}

// LineText returns the text of the line as entered, covered by a span.
func (src *Source) LineText(span Span) string {
	return Excerpt(src.line, span)
}

// Excerpt returns the part of line covered by span, where span counts
// characters. Spans exceeding the line are clipped.
func Excerpt(line string, span Span) string {
	runes := []rune(line)
	from, to := clip(span.From(), len(runes)), clip(span.To(), len(runes))
	if to <= from {
		return ""
	}
	return string(runes[from:to])
}

func clip(pos, max int) int {
	if pos < 0 {
		return 0
	}
	if pos > max {
		return max
	}
	return pos
}
