package evaluator_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/npillmayer/exsolve/evaluator"
	"github.com/npillmayer/exsolve/grammar"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func eval(t *testing.T, input string) (float64, error) {
	t.Helper()
	src := grammar.NewSource(input)
	tree, err := grammar.ParseTree(src)
	if err != nil {
		t.Fatalf("cannot parse %q: %v", input, err)
	}
	return evaluator.Evaluate(tree, src)
}

func TestArithmetic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exsolve.evaluator")
	defer teardown()
	//
	for i, x := range []struct {
		input string
		v     float64
	}{
		{input: "2+3*4", v: 14},
		{input: "(2+3)*4", v: 20},
		{input: "10-4-3", v: 3},
		{input: "8/4/2", v: 1},
		{input: "2^3^2", v: 512},
		{input: "-2^2", v: -4},
		{input: "+3", v: 3},
		{input: "--3", v: 3},
		{input: "2^-1", v: 0.5},
		{input: "2*-3", v: -6},
		{input: "3.25*4", v: 13},
		{input: "007", v: 7},
		{input: "((1))", v: 1},
		{input: "0^0", v: 1},
	} {
		v, err := eval(t, x.input)
		if err != nil {
			t.Errorf("test %d: %q failed: %v", i, x.input, err)
		} else if v != x.v {
			t.Errorf("test %d: expected %q = %g, have %g", i, x.input, x.v, v)
		}
	}
}

func TestFloatingPoint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exsolve.evaluator")
	defer teardown()
	//
	if v, _ := eval(t, "1/0"); !math.IsInf(v, 1) {
		t.Errorf("expected 1/0 = +Inf, have %g", v)
	}
	if v, _ := eval(t, "-1/0"); !math.IsInf(v, -1) {
		t.Errorf("expected -1/0 = -Inf, have %g", v)
	}
	if v, _ := eval(t, "0/0"); !math.IsNaN(v) {
		t.Errorf("expected 0/0 = NaN, have %g", v)
	}
	if v, _ := eval(t, "sqrt(-1)"); !math.IsNaN(v) {
		t.Errorf("expected sqrt(-1) = NaN, have %g", v)
	}
	huge := "1" + strings.Repeat("0", 400)
	if v, err := eval(t, huge); err != nil || !math.IsInf(v, 1) {
		t.Errorf("expected overflowing literal to be +Inf, have %g, %v", v, err)
	}
}

func TestConstantsAndFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exsolve.evaluator")
	defer teardown()
	//
	for i, x := range []struct {
		input string
		v     float64
	}{
		{input: "pi", v: math.Pi},
		{input: "e", v: math.E},
		{input: "2*pi", v: 2 * math.Pi},
		{input: "sin(0)", v: 0},
		{input: "sqrt(4)", v: 2},
		{input: "pow(2,3)", v: 8},
		{input: "pow(3,2)", v: 9},
		{input: "cos(pi)", v: -1},
		{input: "sqrt(pow(3,2)+16)", v: 5},
		{input: "exp(0)+1", v: 2},
	} {
		v, err := eval(t, x.input)
		if err != nil {
			t.Errorf("test %d: %q failed: %v", i, x.input, err)
		} else if v != x.v {
			t.Errorf("test %d: expected %q = %g, have %g", i, x.input, x.v, v)
		}
	}
}

func TestEvaluationErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exsolve.evaluator")
	defer teardown()
	//
	for i, x := range []struct {
		input  string
		reason evaluator.Reason
		span   grammar.Span
	}{
		{input: "foo", reason: evaluator.UnknownVariable, span: grammar.Span{0, 3}},
		{input: "1+pie", reason: evaluator.UnknownVariable, span: grammar.Span{2, 5}},
		{input: "foo(1)", reason: evaluator.UnknownFunction, span: grammar.Span{0, 3}},
		{input: "pow(2)", reason: evaluator.UnknownFunction, span: grammar.Span{0, 3}},
		{input: "sin(1,2)", reason: evaluator.UnknownFunction, span: grammar.Span{0, 3}},
		{input: "sin(1,2,3)", reason: evaluator.ArgumentMismatch, span: grammar.Span{0, 10}},
		{input: "2*max(1,2,3)", reason: evaluator.ArgumentMismatch, span: grammar.Span{2, 12}},
		{input: "sin(x)", reason: evaluator.UnknownVariable, span: grammar.Span{4, 5}},
	} {
		_, err := eval(t, x.input)
		var everr *evaluator.EvaluationError
		if !errors.As(err, &everr) {
			t.Errorf("test %d: expected %q to fail with an evaluation error, has %v", i, x.input, err)
			continue
		}
		if everr.Reason != x.reason || everr.Span != x.span {
			t.Errorf("test %d: expected %q to fail with %s at %s, has %v", i, x.input, x.reason, x.span, everr)
		}
	}
}

func TestIdempotence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exsolve.evaluator")
	defer teardown()
	//
	v1, err1 := eval(t, "sin(pi/4)^2+cos(pi/4)^2")
	v2, err2 := eval(t, "sin(pi/4)^2+cos(pi/4)^2")
	if err1 != nil || err2 != nil || v1 != v2 {
		t.Errorf("expected identical results, have %g (%v) and %g (%v)", v1, err1, v2, err2)
	}
}

func TestMalformedTreePanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exsolve.evaluator")
	defer teardown()
	//
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected evaluation of malformed tree to panic")
		}
	}()
	src := grammar.NewSource("1")
	digit := grammar.NewNode(grammar.Digit, grammar.NewLeaf(grammar.Span{0, 1}))
	tree := grammar.NewNode(grammar.Sum, digit, digit) // sum of arity 2
	evaluator.Evaluate(tree, src)
}

func TestTables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exsolve.evaluator")
	defer teardown()
	//
	consts := evaluator.Constants()
	if len(consts) != 2 || consts[0].Name != "e" || consts[1].Name != "pi" {
		t.Errorf("expected constants e and pi, have %v", consts)
	}
	unary := evaluator.UnaryFunctions()
	if len(unary) != 15 {
		t.Errorf("expected 15 unary functions, have %d", len(unary))
	}
	for i := 1; i < len(unary); i++ {
		if unary[i-1] >= unary[i] {
			t.Errorf("expected unary functions to be sorted, have %v", unary)
			break
		}
	}
	if binary := evaluator.BinaryFunctions(); len(binary) != 1 || binary[0] != "pow" {
		t.Errorf("expected binary function pow, have %v", binary)
	}
}

// Syntax trees built by hand, independent of the parser.

func leaf(at int) *grammar.Leaf {
	return grammar.NewLeaf(grammar.Span{at, at + 1})
}

func number(at int) *grammar.Node { // single digit atom
	return grammar.NewNode(grammar.Atom, grammar.NewNode(grammar.Integer,
		grammar.NewNode(grammar.Digit, leaf(at))))
}

func word(from, to int) *grammar.Node {
	s := grammar.NewNode(grammar.String, grammar.NewNode(grammar.Letter, leaf(from)))
	for at := from + 1; at < to; at++ {
		s = grammar.NewNode(grammar.String, s, grammar.NewNode(grammar.Letter, leaf(at)))
	}
	return s
}

func expr(power *grammar.Node) *grammar.Node {
	return grammar.NewNode(grammar.Sum, grammar.NewNode(grammar.Product, power))
}

func TestHandBuiltTrees(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exsolve.evaluator")
	defer teardown()
	//
	pow := func(base *grammar.Node, at int, exp *grammar.Node) *grammar.Node {
		return grammar.NewNode(grammar.Power, base, grammar.NewNode(grammar.BinopPow, leaf(at)), exp)
	}
	unop := func(at int, p *grammar.Node) *grammar.Node {
		return grammar.NewNode(grammar.Power, grammar.NewNode(grammar.Unop, leaf(at)), p)
	}
	power := func(a *grammar.Node) *grammar.Node {
		return grammar.NewNode(grammar.Power, a)
	}
	call := func(name *grammar.Node, open int, args *grammar.Node) *grammar.Node {
		rparen := args.Span().To()
		return grammar.NewNode(grammar.Atom, grammar.NewNode(grammar.Function, name, leaf(open), args, leaf(rparen)))
	}
	for i, x := range []struct {
		input string
		tree  *grammar.Node
		v     float64
	}{
		{input: "2^3", tree: expr(pow(number(0), 1, power(number(2)))), v: 8},
		{input: "2^3^2", tree: expr(pow(number(0), 1, pow(number(2), 3, power(number(4))))), v: 512},
		{input: "-3", tree: expr(unop(0, power(number(1)))), v: -3},
		{input: "-2^2", tree: expr(unop(0, pow(number(1), 2, power(number(3))))), v: -4},
		{input: "+-3", tree: expr(unop(0, unop(1, power(number(2))))), v: -3},
		{input: "sin(0)", tree: expr(power(call(word(0, 3), 3,
			grammar.NewNode(grammar.Arguments, expr(power(number(4))))))), v: 0},
		{input: "pow(2,3)", tree: expr(power(call(word(0, 3), 3,
			grammar.NewNode(grammar.Arguments,
				grammar.NewNode(grammar.Arguments, expr(power(number(4)))),
				leaf(5), expr(power(number(6))))))), v: 8},
		{input: "(4)", tree: expr(power(grammar.NewNode(grammar.Atom,
			grammar.NewNode(grammar.Brackets, leaf(0), expr(power(number(1))), leaf(2))))), v: 4},
	} {
		v, err := evaluator.Evaluate(x.tree, grammar.NewSource(x.input))
		if err != nil {
			t.Errorf("test %d: %q failed: %v", i, x.input, err)
		} else if v != x.v {
			t.Errorf("test %d: expected %q = %g, have %g", i, x.input, x.v, v)
		}
	}
}

func TestHandBuiltErrorSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exsolve.evaluator")
	defer teardown()
	//
	src := grammar.NewSource("foo(1,2,3)")
	args := grammar.NewNode(grammar.Arguments, expr(grammar.NewNode(grammar.Power, number(4))))
	for _, at := range []int{6, 8} {
		args = grammar.NewNode(grammar.Arguments, args, leaf(at-1), expr(grammar.NewNode(grammar.Power, number(at))))
	}
	fn := grammar.NewNode(grammar.Function, word(0, 3), leaf(3), args, leaf(9))
	tree := expr(grammar.NewNode(grammar.Power, grammar.NewNode(grammar.Atom, fn)))
	_, err := evaluator.Evaluate(tree, src)
	var everr *evaluator.EvaluationError
	if !errors.As(err, &everr) || everr.Reason != evaluator.ArgumentMismatch || everr.Span != (grammar.Span{0, 10}) {
		t.Errorf("expected argument mismatch at 0...10, have %v", err)
	}
	variable := grammar.NewNode(grammar.Atom, grammar.NewNode(grammar.Variable, word(2, 4)))
	tree = expr(grammar.NewNode(grammar.Power, variable))
	_, err = evaluator.Evaluate(tree, grammar.NewSource("1+xy"))
	if !errors.As(err, &everr) || everr.Reason != evaluator.UnknownVariable || everr.Span != (grammar.Span{2, 4}) {
		t.Errorf("expected unknown variable at 2...4, have %v", err)
	}
}
