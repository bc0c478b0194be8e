package grammar

import (
	"fmt"
	"strings"

	"github.com/npillmayer/gorgo/lr"
	"github.com/npillmayer/gorgo/lr/scanner"
	"github.com/npillmayer/gorgo/lr/sppf"
	"github.com/npillmayer/gorgo/terex/termr"
)

// NonTerminal is the label of an interior node of a syntax tree, i.e. the
// grammar symbol a node has been derived from.
type NonTerminal int8

// Non-terminals of the expression grammar.
const (
	NoSymbol NonTerminal = iota
	Sum
	Product
	Power
	Atom
	Brackets
	BinopAddSub
	BinopMulDiv
	BinopPow
	Unop
	Integer
	Real
	Digit
	Variable
	Function
	Arguments
	String
	Letter
)

var nonTerminalNames = [...]string{
	"<none>", "sum", "product", "power", "atom", "brackets",
	"binop-add-sub", "binop-mul-div", "binop-pow", "unop",
	"integer", "real", "digit", "variable", "function", "arguments",
	"string", "letter",
}

var nonTerminalsByName map[string]NonTerminal

func init() {
	nonTerminalsByName = make(map[string]NonTerminal, len(nonTerminalNames))
	for i, name := range nonTerminalNames[1:] {
		nonTerminalsByName[name] = NonTerminal(i + 1)
	}
}

func (nt NonTerminal) String() string {
	if int(nt) < 0 || int(nt) >= len(nonTerminalNames) {
		return fmt.Sprintf("NonTerminal(%d)", nt)
	}
	return nonTerminalNames[nt]
}

// NonTerminalFor returns the non-terminal for a grammar symbol name.
func NonTerminalFor(name string) (NonTerminal, bool) {
	nt, ok := nonTerminalsByName[name]
	return nt, ok
}

// --- Syntax tree -----------------------------------------------------------

// Tree is a syntax tree, either a *Node or a *Leaf.
type Tree interface {
	Span() Span
	isTree()
}

// Node is an interior node of a syntax tree. The number and kind of children
// is dictated by the grammar rule the node has been derived with, terminals
// included: a node for
//
//     brackets ::= '(' sum ')'
//
// will have three children, the middle one being the sum.
type Node struct {
	Label    NonTerminal
	Children []Tree
	span     Span
}

// Leaf is a terminal of a syntax tree, bound to the single character of input
// it has matched.
type Leaf struct {
	span Span
}

// NewNode creates a node with a label and children. The node's span is
// derived from the children.
func NewNode(label NonTerminal, children ...Tree) *Node {
	n := &Node{Label: label, Children: children}
	for _, ch := range children {
		n.span = n.span.Extend(ch.Span())
	}
	return n
}

// NewLeaf creates a leaf for a span of input.
func NewLeaf(span Span) *Leaf {
	return &Leaf{span: span}
}

// Span returns the span of input the node has been derived from.
func (n *Node) Span() Span {
	return n.span
}

// Arity returns the number of children of a node.
func (n *Node) Arity() int {
	return len(n.Children)
}

// Child returns the i-th child of a node.
func (n *Node) Child(i int) Tree {
	return n.Children[i]
}

func (n *Node) isTree() {}

func (n *Node) String() string {
	return fmt.Sprintf("%s@%s", n.Label, n.span)
}

// Span returns the span of input the leaf has matched.
func (l *Leaf) Span() Span {
	return l.span
}

func (l *Leaf) isTree() {}

// Format returns a parenthesized notation of a syntax tree, with leafs
// replaced by their text from src, e.g. "(sum (product ...))".
func Format(t Tree, src *Source) string {
	var b strings.Builder
	format(t, src, &b)
	return b.String()
}

func format(t Tree, src *Source, b *strings.Builder) {
	switch x := t.(type) {
	case *Leaf:
		b.WriteString(src.Text(x.span))
	case *Node:
		b.WriteString("(")
		b.WriteString(x.Label.String())
		for _, ch := range x.Children {
			b.WriteString(" ")
			format(ch, src, b)
		}
		b.WriteString(")")
	}
}

// --- Building trees from a parse forest ------------------------------------

// treeBuilder walks a parse forest and builds a syntax tree from it.
// It implements sppf.Listener.
type treeBuilder struct {
	tokRetr termr.TokenRetriever
}

var _ sppf.Listener = (*treeBuilder)(nil)

// EnterRule is part of sppf.Listener interface.
func (tb *treeBuilder) EnterRule(sym *lr.Symbol, rhs []*sppf.RuleNode, ctxt sppf.RuleCtxt) bool {
	tracer().Debugf("+ enter %s", sym.Name)
	return true
}

// ExitRule is part of sppf.Listener interface. It creates a node from the
// values of the child nodes, which are either nodes or leafs themselves.
func (tb *treeBuilder) ExitRule(sym *lr.Symbol, rhs []*sppf.RuleNode, ctxt sppf.RuleCtxt) interface{} {
	label, ok := NonTerminalFor(sym.Name)
	if !ok { // the grammar's artificial start rule
		for _, r := range rhs {
			if n, ok := r.Value.(*Node); ok {
				return n
			}
		}
		return nil
	}
	children := make([]Tree, 0, len(rhs))
	for _, r := range rhs {
		switch t := r.Value.(type) {
		case *Node:
			children = append(children, t)
		case *Leaf:
			children = append(children, t)
		}
	}
	n := NewNode(label, children...)
	tracer().Debugf("- exit %v with %d children", n, len(children))
	return n
}

// Terminal is part of sppf.Listener interface. It creates a leaf for a
// lexeme of the input.
func (tb *treeBuilder) Terminal(tokval int, token interface{}, ctxt sppf.RuleCtxt) interface{} {
	if tokval == scanner.EOF {
		return nil
	}
	lx, ok := token.(*Lexeme)
	if !ok && tb.tokRetr != nil {
		lx, ok = tb.tokRetr(ctxt.Span.From()).(*Lexeme)
	}
	if !ok {
		tracer().Errorf("cannot find lexeme for terminal %q", rune(tokval))
		return nil
	}
	return NewLeaf(lx.Span)
}

// Conflict is part of sppf.Listener interface. The expression grammar is
// unambiguous, therefore conflicts should never occur.
func (tb *treeBuilder) Conflict(sym *lr.Symbol, ctxt sppf.RuleCtxt) (int, error) {
	tracer().Errorf("ambiguous parse for %s", sym.Name)
	return 0, nil
}

// MakeAttrs is part of sppf.Listener interface.
func (tb *treeBuilder) MakeAttrs(*lr.Symbol) interface{} {
	return nil
}
