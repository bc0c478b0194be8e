package grammar

import (
	"fmt"
	"strings"
)

// buildTree derives the syntax tree for a sequence of lexemes directly from
// the rules of the expression grammar. The lexemes must already have been
// accepted by the parser. Left-recursive rules are built iteratively, so the
// resulting tree has the same shape as a derivation taken from the parse
// forest.
func buildTree(lexemes []*Lexeme) (*Node, error) {
	d := &descent{lexemes: lexemes}
	root := d.sum()
	if d.err == nil && d.pos < len(lexemes) {
		d.fail()
	}
	if d.err != nil {
		return nil, d.err
	}
	return root, nil
}

type descent struct {
	lexemes []*Lexeme
	pos     int
	err     error
}

func (d *descent) peek() rune {
	if d.err != nil || d.pos >= len(d.lexemes) {
		return 0
	}
	return d.lexemes[d.pos].Char
}

func (d *descent) at(chars string) bool {
	c := d.peek()
	return c != 0 && strings.ContainsRune(chars, c)
}

func (d *descent) leaf() *Leaf {
	lx := d.lexemes[d.pos]
	d.pos++
	return NewLeaf(lx.Span)
}

func (d *descent) expect(c rune) *Leaf {
	if d.peek() != c {
		d.fail()
		return NewLeaf(Span{})
	}
	return d.leaf()
}

func (d *descent) fail() {
	if d.err == nil {
		d.err = fmt.Errorf("cannot derive syntax tree at lexeme %d", d.pos)
	}
}

func (d *descent) sum() *Node {
	n := NewNode(Sum, d.product())
	for d.at("+-") {
		op := NewNode(BinopAddSub, d.leaf())
		n = NewNode(Sum, n, op, d.product())
	}
	return n
}

func (d *descent) product() *Node {
	n := NewNode(Product, d.power())
	for d.at("*/") {
		op := NewNode(BinopMulDiv, d.leaf())
		n = NewNode(Product, n, op, d.power())
	}
	return n
}

// power is right-recursive, a^b^c groups as a^(b^c).
func (d *descent) power() *Node {
	if d.at("+-") {
		op := NewNode(Unop, d.leaf())
		return NewNode(Power, op, d.power())
	}
	a := d.atom()
	if d.at("^") {
		op := NewNode(BinopPow, d.leaf())
		return NewNode(Power, a, op, d.power())
	}
	return NewNode(Power, a)
}

func (d *descent) atom() *Node {
	switch c := d.peek(); {
	case c == '(':
		open := d.leaf()
		inner := d.sum()
		return NewNode(Atom, NewNode(Brackets, open, inner, d.expect(')')))
	case isDigit(c):
		whole := d.integer()
		if d.at(".") {
			point := d.leaf()
			return NewNode(Atom, NewNode(Real, whole, point, d.integer()))
		}
		return NewNode(Atom, whole)
	case isLetter(c):
		name := d.name()
		if d.at("(") {
			open := d.leaf()
			args := d.arguments()
			return NewNode(Atom, NewNode(Function, name, open, args, d.expect(')')))
		}
		return NewNode(Atom, NewNode(Variable, name))
	}
	d.fail()
	return NewNode(Atom)
}

func (d *descent) integer() *Node {
	if !isDigit(d.peek()) {
		d.fail()
		return NewNode(Integer)
	}
	n := NewNode(Integer, NewNode(Digit, d.leaf()))
	for isDigit(d.peek()) {
		n = NewNode(Integer, n, NewNode(Digit, d.leaf()))
	}
	return n
}

func (d *descent) name() *Node {
	n := NewNode(String, NewNode(Letter, d.leaf()))
	for isLetter(d.peek()) {
		n = NewNode(String, n, NewNode(Letter, d.leaf()))
	}
	return n
}

func (d *descent) arguments() *Node {
	n := NewNode(Arguments, d.sum())
	for d.at(",") {
		comma := d.leaf()
		n = NewNode(Arguments, n, comma, d.sum())
	}
	return n
}
