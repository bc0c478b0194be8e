package evaluator

import (
	"fmt"

	"github.com/npillmayer/exsolve/grammar"
)

// Reason classifies evaluation errors.
type Reason int8

// Reasons for an expression to fail evaluation.
const (
	UnknownVariable  Reason = iota // identifier is not a known constant
	UnknownFunction                // no function of that name for the given number of arguments
	ArgumentMismatch               // functions take either 1 or 2 arguments
)

var reasons = [...]string{
	"unknown variable",
	"unknown function",
	"argument mismatch",
}

func (r Reason) String() string {
	if int(r) < 0 || int(r) >= len(reasons) {
		return fmt.Sprintf("Reason(%d)", r)
	}
	return reasons[r]
}

// EvaluationError is an error type for well-formed expressions which cannot
// be evaluated. Span locates the offending sub-expression.
type EvaluationError struct {
	Span   grammar.Span
	Reason Reason
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluation error: %s at %s", e.Reason, e.Span)
}

func evalError(reason Reason, t grammar.Tree) *EvaluationError {
	return &EvaluationError{Span: t.Span(), Reason: reason}
}
