package exsolve

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/exsolve/evaluator"
	"github.com/npillmayer/exsolve/grammar"
)

// Solve parses and evaluates an input line.
//
// Input not conforming to the expression grammar results in a
// *grammar.SyntaxError, unknown identifiers and unsupported numbers of
// function arguments in an *evaluator.EvaluationError.
func Solve(line string) (float64, error) {
	src := grammar.NewSource(line)
	tree, err := grammar.ParseTree(src)
	if err != nil {
		return 0, err
	}
	return evaluator.Evaluate(tree, src)
}

// Respond solves an input line and returns the text to display for it:
// either the result or an error message. Panics are reported as an unknown
// error.
func Respond(line string) (answer string) {
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("solving %q: %v", line, r)
			answer = FormatError(line, fmt.Errorf("%v", r))
		}
	}()
	v, err := Solve(line)
	if err != nil {
		tracer().Debugf("solving %q: %v", line, err)
		return FormatError(line, err)
	}
	return FormatResult(v)
}

// FormatResult formats a result value. Values are printed in the shortest
// decimal notation which reads back to the same float64, and integral values
// keep a decimal point: 14 is printed as "14.0". Very large and very small
// magnitudes use exponent notation.
func FormatResult(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1<<53) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FormatError formats an error for an input line, as in
//
//     Error: unknown variable 'foo' at 0...3
//
// Errors other than syntax errors or evaluation errors are reported as
// "Error: unknown".
func FormatError(line string, err error) string {
	var serr *grammar.SyntaxError
	if errors.As(err, &serr) {
		return located(line, serr.Reason.String(), serr.Span)
	}
	var everr *evaluator.EvaluationError
	if errors.As(err, &everr) {
		return located(line, everr.Reason.String(), everr.Span)
	}
	return "Error: unknown"
}

func located(line string, reason string, span grammar.Span) string {
	return fmt.Sprintf("Error: %s '%s' at %s", reason, grammar.Excerpt(line, span), span)
}
