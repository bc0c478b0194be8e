package grammar

import "fmt"

// SyntaxReason classifies syntax errors.
type SyntaxReason int8

// Reasons for an input line to be rejected by the parser.
const (
	EmptyNotAllowed  SyntaxReason = iota // input is empty or blank
	UnmatchedPattern                     // a character is not part of the grammar
	UnexpectedToken                      // a character is out of place
	UnexpectedEnd                        // input ended prematurely
)

var syntaxReasons = [...]string{
	"empty input",
	"unmatched pattern",
	"unexpected token",
	"unexpected end of input",
}

func (r SyntaxReason) String() string {
	if int(r) < 0 || int(r) >= len(syntaxReasons) {
		return fmt.Sprintf("SyntaxReason(%d)", r)
	}
	return syntaxReasons[r]
}

// SyntaxError is an error type for input not conforming to the grammar.
// Span locates the offending part of the input.
type SyntaxError struct {
	Span   Span
	Reason SyntaxReason
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s at %s", e.Reason, e.Span)
}

func syntaxError(reason SyntaxReason, span Span) *SyntaxError {
	return &SyntaxError{Span: span, Reason: reason}
}
