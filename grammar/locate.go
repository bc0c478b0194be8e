package grammar

import (
	"github.com/emirpasic/gods/stacks/linkedliststack"
)

// The Earley parser tells us that an input has been rejected, but not where.
// For reporting, the lexemes are run through a small recognizer for the
// language of the grammar, which stops at the first lexeme that cannot
// continue any valid expression.

type locState int8

const (
	expectOperand locState = iota // start of an operand, including unary signs
	inInteger                     // digits of an integer
	afterPoint                    // decimal point of a real, digit required
	inFraction                    // digits after the decimal point
	inName                        // letters of a variable or function name
	afterOperand                  // a complete operand, operator or closing bracket follows
)

// open brackets on the locator's stack
type opening int8

const (
	parenthesis opening = iota // '(' of a bracketed sum
	callArgs                   // '(' of a function call
)

// locate returns a syntax error for the first offending lexeme, or for the
// end of input if the lexemes form an incomplete expression. If the lexemes
// are a valid expression, locate returns nil.
func locate(lexemes []*Lexeme, end int) *SyntaxError {
	open := linkedliststack.New()
	state := expectOperand
	for _, lx := range lexemes {
		var ok bool
		if state, ok = step(state, lx.Char, open); !ok {
			tracer().Debugf("locator stops at %v", lx)
			return syntaxError(UnexpectedToken, lx.Span)
		}
	}
	switch state {
	case inInteger, inFraction, inName, afterOperand:
		if open.Empty() {
			return nil
		}
	}
	return syntaxError(UnexpectedEnd, Span{end, end})
}

// step is the transition function of the locator.
func step(state locState, c rune, open *linkedliststack.Stack) (locState, bool) {
	switch state {
	case expectOperand:
		switch {
		case isDigit(c):
			return inInteger, true
		case isLetter(c):
			return inName, true
		case c == '+' || c == '-':
			return expectOperand, true
		case c == '(':
			open.Push(parenthesis)
			return expectOperand, true
		}
		return state, false
	case inInteger:
		if isDigit(c) {
			return inInteger, true
		} else if c == '.' {
			return afterPoint, true
		}
	case afterPoint:
		if isDigit(c) {
			return inFraction, true
		}
		return state, false
	case inFraction:
		if isDigit(c) {
			return inFraction, true
		}
	case inName:
		if isLetter(c) {
			return inName, true
		} else if c == '(' {
			open.Push(callArgs)
			return expectOperand, true
		}
	}
	// operand is complete
	switch c {
	case '+', '-', '*', '/', '^':
		return expectOperand, true
	case ')':
		if _, ok := open.Pop(); ok {
			return afterOperand, true
		}
	case ',':
		if top, ok := open.Peek(); ok && top.(opening) == callArgs {
			return expectOperand, true
		}
	}
	return state, false
}
