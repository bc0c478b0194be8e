package grammar

import (
	"errors"
	"fmt"
	"sync"

	"github.com/npillmayer/gorgo/lr"
	"github.com/npillmayer/gorgo/lr/earley"
	"github.com/npillmayer/gorgo/lr/sppf"
	"github.com/npillmayer/gorgo/terex/termr"
)

// --- Initialization --------------------------------------------------------

var startOnce sync.Once // monitors one-time creation of the grammar

var exprGrammar *lr.LRAnalysis
var grammarError error

func initGrammar() error {
	startOnce.Do(func() {
		tracer().Infof("Creating grammar")
		exprGrammar, grammarError = MakeExpressionGrammar()
	})
	return grammarError
}

func createParser() (*earley.Parser, error) {
	if err := initGrammar(); err != nil {
		return nil, err
	}
	parser := earley.NewParser(exprGrammar, earley.GenerateTree(true), earley.StoreTokens(true))
	if parser == nil {
		return nil, errors.New("could not create expression parser")
	}
	return parser, nil
}

// ---------------------------------------------------------------------------

// MakeExpressionGrammar generates the grammar for arithmetic expressions,
// constructs all the parsing tables for it and returns them as a package
// (or an error).
//
// This is usually not called directly by clients, but rather implicitly
// invoked through Parse().
func MakeExpressionGrammar() (*lr.LRAnalysis, error) {
	b := lr.NewGrammarBuilder("Expressions")
	for _, r := range rules {
		if len(r.rhs) == 1 && len(r.rhs[0].chars) > 1 { // one rule per character
			for _, c := range r.rhs[0].chars {
				b.LHS(r.lhs.String()).T(char(c)).End()
			}
			continue
		}
		rb := b.LHS(r.lhs.String())
		for _, it := range r.rhs {
			if it.chars != "" {
				rb = rb.T(char(rune(it.chars[0])))
			} else {
				rb = rb.N(it.nt.String())
			}
		}
		rb.End()
	}
	g, err := b.Grammar()
	if err != nil {
		tracer().Errorf("Error creating expression grammar")
		return nil, err
	}
	return lr.Analysis(g), nil
}

// char returns name and token value of a single-character terminal.
func char(c rune) (string, int) {
	return fmt.Sprintf("'%c'", c), int(c)
}

// Parse parses an input line. It returns the parse forest and a
// TokenRetriever, or an error in case of failure.
//
// Input not conforming to the grammar results in an error of type
// *SyntaxError. Clients may use SyntaxTree to create a syntax tree from
// the parse forest.
func Parse(src *Source) (*sppf.Forest, termr.TokenRetriever, error) {
	forest, tokRetr, _, err := parse(src)
	return forest, tokRetr, err
}

func parse(src *Source) (*sppf.Forest, termr.TokenRetriever, []*Lexeme, error) {
	parser, err := createParser()
	if err != nil {
		return nil, nil, nil, err
	}
	tz, err := NewTokenizer(src)
	if err != nil {
		return nil, nil, nil, err
	}
	accept, err := parser.Parse(tz, nil)
	tz.drain()
	if tz.Err() != nil {
		return nil, nil, nil, tz.Err()
	}
	if len(tz.Lexemes()) == 0 {
		return nil, nil, nil, syntaxError(EmptyNotAllowed, Span{0, 0})
	}
	if err != nil || !accept {
		tracer().Debugf("parser rejects %q: %v", src.Input(), err)
		if serr := locate(tz.Lexemes(), src.Len()); serr != nil {
			return nil, nil, nil, serr
		}
		if err == nil {
			err = errors.New("parser rejected input")
		}
		return nil, nil, nil, fmt.Errorf("cannot parse %q: %w", src.Input(), err)
	}
	return parser.ParseForest(), earleyTokenRetriever(parser), tz.Lexemes(), nil
}

func earleyTokenRetriever(parser *earley.Parser) termr.TokenRetriever {
	return func(pos uint64) interface{} {
		return parser.TokenAt(pos)
	}
}

// --- Syntax tree -----------------------------------------------------------

// SyntaxTree creates a syntax tree from a parse forest for input src. The
// root of the tree is always a node labeled Sum, spanning all of the input.
//
// The tree is checked against the rules of the grammar. If the forest does
// not yield a complete derivation of src, SyntaxTree returns an error
// instead of a partial tree.
func SyntaxTree(forest *sppf.Forest, tokRetr termr.TokenRetriever, src *Source) (*Node, error) {
	if src == nil {
		return nil, errors.New("no input to create a syntax tree for")
	}
	tz, err := NewTokenizer(src)
	if err != nil {
		return nil, err
	}
	tz.drain()
	if tz.Err() != nil {
		return nil, tz.Err()
	}
	return syntaxTree(forest, tokRetr, tz.Lexemes())
}

func syntaxTree(forest *sppf.Forest, tokRetr termr.TokenRetriever, lexemes []*Lexeme) (*Node, error) {
	if forest == nil {
		return nil, errors.New("no parse forest to create a syntax tree from")
	}
	tb := &treeBuilder{tokRetr: tokRetr}
	cursor := forest.SetCursor(nil, nil)
	value := cursor.TopDown(tb, sppf.LtoR, sppf.Continue)
	root, ok := value.(*Node)
	if !ok || root == nil {
		tracer().Errorf("Cannot create syntax tree from parse forest")
		return nil, errors.New("error while creating syntax tree")
	}
	if !isDerivation(root, lexemes) {
		tracer().Debugf("forest walk yields incomplete tree %v for %d lexemes", root, len(lexemes))
		return nil, fmt.Errorf("syntax tree %v does not derive the complete input", root)
	}
	tracer().Debugf("syntax tree root = %v", root)
	return root, nil
}

// ParseTree parses an input line and returns its syntax tree. It is a
// shortcut for Parse followed by SyntaxTree. If the parse forest does not
// yield a complete derivation, the tree is derived from the accepted
// lexemes by the rules of the grammar.
func ParseTree(src *Source) (*Node, error) {
	forest, tokRetr, lexemes, err := parse(src)
	if err != nil {
		return nil, err
	}
	root, err := syntaxTree(forest, tokRetr, lexemes)
	if err == nil {
		return root, nil
	}
	tracer().Debugf("%v, deriving tree from lexemes", err)
	if root, err = buildTree(lexemes); err != nil {
		return nil, err
	}
	if !isDerivation(root, lexemes) { // cannot happen for accepted input
		return nil, fmt.Errorf("cannot create syntax tree for %q", src.Input())
	}
	return root, nil
}
