package exsolve

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/exsolve/evaluator"
	"github.com/npillmayer/exsolve/grammar"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSolve(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exsolve")
	defer teardown()
	//
	for i, x := range []struct {
		input string
		v     float64
	}{
		{input: "2+3*4", v: 14},
		{input: "2 + 3", v: 5},
		{input: "２＾３", v: 8},
		{input: "pow(2,3)", v: 8},
		{input: " sqrt( 16 ) ", v: 4},
		{input: "2^3^2", v: 512},
		{input: "-2^2", v: -4},
		{input: "-3", v: -3},
		{input: "1+2^3", v: 9},
		{input: "0^0", v: 1},
		{input: "12^2", v: 144},
		{input: "-3+1", v: -2},
	} {
		v, err := Solve(x.input)
		if err != nil {
			t.Errorf("test %d: %q failed: %v", i, x.input, err)
		} else if v != x.v {
			t.Errorf("test %d: expected %q = %g, have %g", i, x.input, x.v, v)
		}
	}
}

func TestSolveErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exsolve")
	defer teardown()
	//
	_, err := Solve("1 2")
	var serr *grammar.SyntaxError
	if !errors.As(err, &serr) {
		t.Errorf("expected syntax error for '1 2', have %v", err)
	}
	_, err = Solve("foo")
	var everr *evaluator.EvaluationError
	if !errors.As(err, &everr) || everr.Reason != evaluator.UnknownVariable {
		t.Errorf("expected unknown variable for 'foo', have %v", err)
	}
}

func TestFormatResult(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exsolve")
	defer teardown()
	//
	for i, x := range []struct {
		v float64
		s string
	}{
		{v: 14, s: "14.0"},
		{v: -4, s: "-4.0"},
		{v: 0.5, s: "0.5"},
		{v: 512, s: "512.0"},
		{v: math.Pi, s: "3.141592653589793"},
		{v: 1e20, s: "1e+20"},
		{v: 0.00001, s: "1e-05"},
		{v: math.Inf(1), s: "inf"},
		{v: math.Inf(-1), s: "-inf"},
		{v: math.NaN(), s: "nan"},
	} {
		if s := FormatResult(x.v); s != x.s {
			t.Errorf("test %d: expected %g to format as %q, is %q", i, x.v, x.s, s)
		}
	}
}

func TestRespond(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exsolve")
	defer teardown()
	//
	for i, x := range []struct {
		input, answer string
	}{
		{input: "(2+3)*4", answer: "20.0"},
		{input: "2^3^2", answer: "512.0"},
		{input: "-3", answer: "-3.0"},
		{input: "2^1024", answer: "inf"},
		{input: " 2 ^ 10", answer: "1024.0"},
		{input: "foo", answer: "Error: unknown variable 'foo' at 0...3"},
		{input: "1+foo(2)", answer: "Error: unknown function 'foo' at 2...5"},
		{input: "sin(1,2,3)", answer: "Error: argument mismatch 'sin(1,2,3)' at 0...10"},
		{input: "2+", answer: "Error: unexpected end of input '' at 2...2"},
		{input: "2+*3", answer: "Error: unexpected token '*' at 2...3"},
		{input: "2$", answer: "Error: unmatched pattern '$' at 1...2"},
		{input: "", answer: "Error: empty input '' at 0...0"},
		{input: "１＋ｘ", answer: "Error: unknown variable 'ｘ' at 2...3"},
	} {
		if answer := Respond(x.input); answer != x.answer {
			t.Errorf("test %d: expected %q to answer %q, has %q", i, x.input, x.answer, answer)
		}
	}
}

func TestFormatUnknownError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exsolve")
	defer teardown()
	//
	if s := FormatError("1", errors.New("something else")); s != "Error: unknown" {
		t.Errorf("expected unclassified error to format as 'Error: unknown', is %q", s)
	}
}
