package evaluator

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/npillmayer/exsolve/grammar"
)

// Evaluate computes the value of a syntax tree. src is the input the tree
// has been parsed from; it is consulted for the text of operators, numbers
// and identifiers.
//
// Evaluate returns an *EvaluationError for unknown identifiers and for function
// calls with an unsupported number of arguments. It panics if the tree
// contains a node shape the expression grammar cannot produce.
func Evaluate(tree *grammar.Node, src *grammar.Source) (float64, error) {
	ev := evaluator{src: src}
	v, err := ev.eval(tree)
	if err != nil {
		tracer().Debugf("evaluation of %q failed: %v", src.Input(), err)
		return 0, err
	}
	tracer().Debugf("%q = %g", src.Input(), v)
	return v, nil
}

type evaluator struct {
	src *grammar.Source
}

func (ev evaluator) eval(t grammar.Tree) (float64, error) {
	n, ok := t.(*grammar.Node)
	if !ok {
		panic(fmt.Sprintf("cannot evaluate leaf at %s", t.Span()))
	}
	tracer().Debugf("eval %v/%d", n, n.Arity())
	switch n.Label {
	case grammar.Sum, grammar.Product:
		switch n.Arity() {
		case 1:
			return ev.eval(n.Child(0))
		case 3:
			return ev.binary(n)
		}
	case grammar.Power:
		switch n.Arity() {
		case 1:
			return ev.eval(n.Child(0))
		case 2:
			return ev.unary(n)
		case 3:
			base, err := ev.eval(n.Child(0))
			if err != nil {
				return 0, err
			}
			exp, err := ev.eval(n.Child(2))
			if err != nil {
				return 0, err
			}
			return math.Pow(base, exp), nil
		}
	case grammar.Brackets:
		if n.Arity() == 3 {
			return ev.eval(n.Child(1))
		}
	case grammar.Atom:
		if n.Arity() == 1 {
			return ev.eval(n.Child(0))
		}
	case grammar.Integer, grammar.Real:
		return ev.number(n), nil
	case grammar.Variable:
		if n.Arity() == 1 {
			if v, ok := Constant(ev.src.Text(n.Span())); ok {
				return v, nil
			}
			return 0, evalError(UnknownVariable, n)
		}
	case grammar.Function:
		if n.Arity() == 4 {
			return ev.call(n)
		}
	}
	panic(fmt.Sprintf("unexpected syntax tree node %v with arity %d", n, n.Arity()))
}

// binary evaluates sums and products: left operand, operator, right operand.
func (ev evaluator) binary(n *grammar.Node) (float64, error) {
	l, err := ev.eval(n.Child(0))
	if err != nil {
		return 0, err
	}
	r, err := ev.eval(n.Child(2))
	if err != nil {
		return 0, err
	}
	switch op := ev.src.Text(n.Child(1).Span()); op {
	case "+":
		return l + r, nil
	case "-":
		return l - r, nil
	case "*":
		return l * r, nil
	case "/":
		return l / r, nil
	default:
		panic(fmt.Sprintf("unexpected binary operator %q in %v", op, n))
	}
}

// unary evaluates a signed power: the sign applies to the power as a whole.
func (ev evaluator) unary(n *grammar.Node) (float64, error) {
	v, err := ev.eval(n.Child(1))
	if err != nil {
		return 0, err
	}
	switch op := ev.src.Text(n.Child(0).Span()); op {
	case "+":
		return v, nil
	case "-":
		return -v, nil
	default:
		panic(fmt.Sprintf("unexpected unary operator %q in %v", op, n))
	}
}

// number converts the text of an integer or real node to a float64.
// Literals too large for a float64 result in ±Inf.
func (ev evaluator) number(n *grammar.Node) float64 {
	lit := ev.src.Text(n.Span())
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		panic(fmt.Sprintf("malformed number literal %q: %v", lit, err))
	}
	return v
}

// call evaluates a function node
//
//     function ::= string '(' arguments ')'
//
// The number of arguments selects the function table to search.
func (ev evaluator) call(n *grammar.Node) (float64, error) {
	name := n.Child(0)
	args, err := ev.arguments(n.Child(2), nil)
	if err != nil {
		return 0, err
	}
	fname := ev.src.Text(name.Span())
	switch len(args) {
	case 1:
		if f, ok := Unary(fname); ok {
			return f(args[0]), nil
		}
		return 0, evalError(UnknownFunction, name)
	case 2:
		if f, ok := Binary(fname); ok {
			return f(args[0], args[1]), nil
		}
		return 0, evalError(UnknownFunction, name)
	}
	return 0, evalError(ArgumentMismatch, n)
}

// arguments flattens an argument list, preserving the order of the arguments.
func (ev evaluator) arguments(t grammar.Tree, args []float64) ([]float64, error) {
	n, ok := t.(*grammar.Node)
	if !ok || n.Label != grammar.Arguments {
		panic(fmt.Sprintf("expected argument list at %s", t.Span()))
	}
	var err error
	switch n.Arity() {
	case 1:
		var v float64
		if v, err = ev.eval(n.Child(0)); err != nil {
			return nil, err
		}
		return append(args, v), nil
	case 3:
		if args, err = ev.arguments(n.Child(0), args); err != nil {
			return nil, err
		}
		var v float64
		if v, err = ev.eval(n.Child(2)); err != nil {
			return nil, err
		}
		return append(args, v), nil
	}
	panic(fmt.Sprintf("unexpected argument list %v with arity %d", n, n.Arity()))
}
