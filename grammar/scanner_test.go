package grammar

import (
	"testing"

	"github.com/npillmayer/gorgo/lr/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSpanExtend(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exsolve.grammar")
	defer teardown()
	//
	for i, x := range []struct {
		a, b, ext Span
	}{
		{a: Span{}, b: Span{2, 3}, ext: Span{2, 3}},
		{a: Span{2, 3}, b: Span{}, ext: Span{2, 3}},
		{a: Span{2, 3}, b: Span{5, 7}, ext: Span{2, 7}},
		{a: Span{5, 7}, b: Span{0, 1}, ext: Span{0, 7}},
	} {
		if ext := x.a.Extend(x.b); ext != x.ext {
			t.Errorf("test %d: expected %s to extend %s to %s, is %s", i, x.b, x.a, x.ext, ext)
		}
	}
}

func TestSourceFolding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exsolve.grammar")
	defer teardown()
	//
	src := NewSource("２＋ｓｉｎ(1)")
	if src.Input() != "2+sin(1)" {
		t.Errorf("expected full-width input to be folded to narrow, is %q", src.Input())
	}
	if src.Text(Span{2, 5}) != "sin" {
		t.Errorf("expected text of 2...5 to be 'sin', is %q", src.Text(Span{2, 5}))
	}
	if src.LineText(Span{0, 1}) != "２" {
		t.Errorf("expected line text of 0...1 to be '２', is %q", src.LineText(Span{0, 1}))
	}
	if src.Text(Span{6, 12}) != "1)" {
		t.Errorf("expected span to be clipped, text is %q", src.Text(Span{6, 12}))
	}
}

func TestTokenizerLexemes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exsolve.grammar")
	defer teardown()
	//
	tz, err := NewTokenizer(NewSource(" 12 + pi*(3.5)\t"))
	if err != nil {
		t.Fatal(err)
	}
	expect := "12+pi*(3.5)"
	var chars []rune
	for {
		tokval, token, pos, length := tz.NextToken(nil)
		if tokval == scanner.EOF {
			break
		}
		lx := token.(*Lexeme)
		if tokval != int(lx.Char) || length != 1 || int(pos) != lx.Span.From() {
			t.Errorf("inconsistent token %v: tokval=%d, pos=%d, len=%d", lx, tokval, pos, length)
		}
		chars = append(chars, lx.Char)
	}
	if string(chars) != expect {
		t.Errorf("expected lexemes %q, have %q", expect, string(chars))
	}
	if tz.Err() != nil {
		t.Errorf("expected tokenizer to succeed, has error %v", tz.Err())
	}
	if tz.Lexemes()[1].Span != (Span{2, 3}) {
		t.Errorf("expected second lexeme at 2...3, is at %s", tz.Lexemes()[1].Span)
	}
}

func TestTokenizerErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exsolve.grammar")
	defer teardown()
	//
	for i, x := range []struct {
		input  string
		reason SyntaxReason
		span   Span
	}{
		{input: "2$", reason: UnmatchedPattern, span: Span{1, 2}},
		{input: "1+ä", reason: UnmatchedPattern, span: Span{2, 3}},
		{input: "1 2", reason: UnexpectedToken, span: Span{1, 2}},
		{input: "si  n(1)", reason: UnexpectedToken, span: Span{2, 4}},
		{input: "1. 5", reason: UnexpectedToken, span: Span{2, 3}},
	} {
		tz, err := NewTokenizer(NewSource(x.input))
		if err != nil {
			t.Fatal(err)
		}
		tz.drain()
		if tz.Err() == nil {
			t.Errorf("test %d: expected %q to produce a tokenizer error", i, x.input)
			continue
		}
		if tz.Err().Reason != x.reason || tz.Err().Span != x.span {
			t.Errorf("test %d: expected %s at %s, have %v", i, x.reason, x.span, tz.Err())
		}
	}
}
