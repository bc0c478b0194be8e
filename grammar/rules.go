package grammar

import "strings"

const digits = "0123456789"
const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// item is a symbol on the right hand side of a rule: either a non-terminal
// or a class of single-character terminals.
type item struct {
	nt    NonTerminal
	chars string // terminal characters, empty for non-terminals
}

func sym(nt NonTerminal) item {
	return item{nt: nt}
}

func term(chars string) item {
	return item{chars: chars}
}

// rule is a production of the expression grammar. A terminal class with more
// than one character stands for one rule per character.
type rule struct {
	lhs NonTerminal
	rhs []item
}

var rules = []rule{
	{Sum, []item{sym(Sum), sym(BinopAddSub), sym(Product)}},
	{Sum, []item{sym(Product)}},
	{Product, []item{sym(Power)}},
	{Product, []item{sym(Product), sym(BinopMulDiv), sym(Power)}},
	{Power, []item{sym(Atom)}},
	{Power, []item{sym(Atom), sym(BinopPow), sym(Power)}},
	{Power, []item{sym(Unop), sym(Power)}},
	{Atom, []item{sym(Brackets)}},
	{Atom, []item{sym(Integer)}},
	{Atom, []item{sym(Real)}},
	{Atom, []item{sym(Variable)}},
	{Atom, []item{sym(Function)}},
	{Brackets, []item{term("("), sym(Sum), term(")")}},
	{BinopAddSub, []item{term("+-")}},
	{BinopMulDiv, []item{term("*/")}},
	{BinopPow, []item{term("^")}},
	{Unop, []item{term("+-")}},
	{Integer, []item{sym(Integer), sym(Digit)}},
	{Integer, []item{sym(Digit)}},
	{Real, []item{sym(Integer), term("."), sym(Integer)}},
	{Digit, []item{term(digits)}},
	{Variable, []item{sym(String)}},
	{Function, []item{sym(String), term("("), sym(Arguments), term(")")}},
	{Arguments, []item{sym(Sum)}},
	{Arguments, []item{sym(Arguments), term(","), sym(Sum)}},
	{String, []item{sym(String), sym(Letter)}},
	{String, []item{sym(Letter)}},
	{Letter, []item{term(letters)}},
}

var rulesByLHS map[NonTerminal][]rule

func init() {
	rulesByLHS = make(map[NonTerminal][]rule)
	for _, r := range rules {
		rulesByLHS[r.lhs] = append(rulesByLHS[r.lhs], r)
	}
}

// --- Checking derivations --------------------------------------------------

// isDerivation is a predicate: is tree a complete derivation of the lexemes
// by the rules of the expression grammar?
func isDerivation(tree *Node, lexemes []*Lexeme) bool {
	if tree == nil || tree.Label != Sum {
		return false
	}
	end, ok := derive(tree, lexemes, 0)
	return ok && end == len(lexemes)
}

// derive checks that t has been derived by a grammar rule from the lexemes
// starting at pos. It returns the position behind the last lexeme covered.
func derive(t Tree, lexemes []*Lexeme, pos int) (int, bool) {
	node, ok := t.(*Node)
	if !ok {
		return pos, false
	}
	for _, r := range rulesByLHS[node.Label] {
		if len(r.rhs) != node.Arity() {
			continue
		}
		if end, ok := deriveBy(r, node, lexemes, pos); ok {
			return end, true
		}
	}
	return pos, false
}

func deriveBy(r rule, node *Node, lexemes []*Lexeme, pos int) (int, bool) {
	for i, it := range r.rhs {
		child := node.Children[i]
		if it.chars != "" {
			leaf, ok := child.(*Leaf)
			if !ok || pos >= len(lexemes) || lexemes[pos].Span != leaf.Span() ||
				!strings.ContainsRune(it.chars, lexemes[pos].Char) {
				return pos, false
			}
			pos++
			continue
		}
		sub, ok := child.(*Node)
		if !ok || sub.Label != it.nt {
			return pos, false
		}
		if pos, ok = derive(sub, lexemes, pos); !ok {
			return pos, false
		}
	}
	return pos, true
}
