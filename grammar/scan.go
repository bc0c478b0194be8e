package grammar

import (
	"fmt"
	"sync"

	"github.com/npillmayer/gorgo/lr/scanner"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Every terminal of the grammar is a single character and its token value is
// the character code. Whitespace is recognized by the lexer, but never
// handed to the parser.
const whitespace = int(' ')

// Regular expressions for the operator and punctuation terminals.
var operatorPatterns = []string{
	`\+`, `-`, `\*`, `/`, `\^`, `\(`, `\)`, `\.`, `,`,
}

var lexerOnce sync.Once // monitors one-time creation of the lexer

var exprLexer *lexmachine.Lexer
var lexerError error

// Lexer returns the lexmachine lexer for expressions. It is created and
// compiled on first use and shared afterwards.
//
// This is usually not called directly by clients, but rather implicitly
// through a Tokenizer.
func Lexer() (*lexmachine.Lexer, error) {
	lexerOnce.Do(func() {
		tracer().Infof("Creating lexer")
		lexer := lexmachine.NewLexer()
		lexer.Add([]byte(`[0-9]`), charToken)
		lexer.Add([]byte(`[a-z]|[A-Z]`), charToken)
		for _, op := range operatorPatterns {
			lexer.Add([]byte(op), charToken)
		}
		lexer.Add([]byte(`( |\t|\n|\r)+`), spaceToken)
		if lexerError = lexer.Compile(); lexerError != nil {
			tracer().Errorf("Cannot compile expression lexer: %v", lexerError)
			return
		}
		exprLexer = lexer
	})
	return exprLexer, lexerError
}

func charToken(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	return s.Token(int(m.Bytes[0]), nil, m), nil
}

func spaceToken(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	return s.Token(whitespace, nil, m), nil
}

// --- Tokenizer -------------------------------------------------------------

// Lexeme is a token as delivered to the parser: a single character together
// with its position.
type Lexeme struct {
	Char rune
	Span Span
}

func (lx *Lexeme) String() string {
	return fmt.Sprintf("'%c'@%s", lx.Char, lx.Span)
}

// Tokenizer implements the scanner.Tokenizer interface of gorgo, splitting
// an input line into single-character tokens.
//
// Whitespace is skipped, as long as it does not split up a number or an
// identifier: "1 2" will not be read as "12", but rather flagged as an error.
// After the first error the tokenizer will signal end of input; the error is
// available with Err().
type Tokenizer struct {
	scan    *lexmachine.Scanner
	lexemes []*Lexeme // lexemes handed out so far
	space   Span      // whitespace preceding the next lexeme
	end     int       // length of input
	done    bool      // at EOF?
	err     *SyntaxError
}

var _ scanner.Tokenizer = (*Tokenizer)(nil)

// NewTokenizer creates a tokenizer for an input line.
func NewTokenizer(src *Source) (*Tokenizer, error) {
	lexer, err := Lexer()
	if err != nil {
		return nil, fmt.Errorf("expression lexer not available: %w", err)
	}
	scan, err := lexer.Scanner([]byte(src.Input()))
	if err != nil {
		return nil, err
	}
	return &Tokenizer{scan: scan, end: src.Len()}, nil
}

// NextToken returns the next single-character token of the input.
// The token's value is the character code, the token itself is a *Lexeme.
func (tz *Tokenizer) NextToken(expected []int) (int, interface{}, uint64, uint64) {
	for !tz.done {
		tok, err, eof := tz.scan.Next()
		if err != nil {
			tz.fail(tz.unmatched(err))
			break
		} else if eof {
			tz.done = true
			break
		}
		token := tok.(*lexmachine.Token)
		span := Span{token.TC, token.TC + len(token.Lexeme)}
		if token.Type == whitespace {
			tz.space = span
			continue
		}
		lx := &Lexeme{Char: rune(token.Lexeme[0]), Span: span}
		if !tz.space.IsNull() && len(tz.lexemes) > 0 && joins(tz.lexemes[len(tz.lexemes)-1].Char, lx.Char) {
			tz.fail(syntaxError(UnexpectedToken, tz.space))
			break
		}
		tz.space = Span{}
		tz.lexemes = append(tz.lexemes, lx)
		tracer().Debugf("expression tokenizer accepting %v", lx)
		return int(lx.Char), lx, uint64(span.From()), uint64(span.Len())
	}
	return scanner.EOF, nil, uint64(tz.end), 0
}

// SetErrorHandler is part of the scanner.Tokenizer interface.
//
// Currently does nothing: tokenizer errors are collected and reported by Err.
func (tz *Tokenizer) SetErrorHandler(h func(error)) {
}

// Err returns the first error the tokenizer ran into, or nil.
func (tz *Tokenizer) Err() *SyntaxError {
	return tz.err
}

// Lexemes returns the lexemes handed out to the parser so far.
func (tz *Tokenizer) Lexemes() []*Lexeme {
	return tz.lexemes
}

// drain reads the rest of the input, in case the parser stopped early.
func (tz *Tokenizer) drain() {
	for !tz.done {
		tz.NextToken(nil)
	}
}

func (tz *Tokenizer) fail(err *SyntaxError) {
	tracer().Debugf("expression tokenizer stops: %v", err)
	if tz.err == nil {
		tz.err = err
	}
	tz.done = true
}

func (tz *Tokenizer) unmatched(err error) *SyntaxError {
	pos := tz.end
	if ui, ok := err.(*machines.UnconsumedInput); ok {
		pos = ui.StartTC
	}
	return syntaxError(UnmatchedPattern, Span{pos, pos + 1})
}

// joins is a predicate: would characters a and b be part of the same
// number or identifier, if not separated by whitespace?
func joins(a, b rune) bool {
	return isWordChar(a) && isWordChar(b)
}

func isWordChar(r rune) bool {
	return isDigit(r) || isLetter(r) || r == '.'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
