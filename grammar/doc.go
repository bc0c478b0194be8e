/*
Package grammar implements the context-free grammar for arithmetic expressions,
together with a tokenizer and an Earley parser for it.

Expressions are parsed character by character: every terminal of the grammar
is a single character, and precedence as well as associativity of operators
is expressed purely by the nesting of grammar rules:

    sum        ::= sum binop-add-sub product | product
    product    ::= power | product binop-mul-div power
    power      ::= atom | atom binop-pow power | unop power
    atom       ::= brackets | integer | real | variable | function
    brackets   ::= '(' sum ')'
    binop-add-sub ::= '+' | '-'
    binop-mul-div ::= '*' | '/'
    binop-pow  ::= '^'
    unop       ::= '+' | '-'
    integer    ::= integer digit | digit
    real       ::= integer '.' integer
    digit      ::= '0'..'9'
    variable   ::= string
    function   ::= string '(' arguments ')'
    arguments  ::= sum | arguments ',' sum
    string     ::= string letter | letter
    letter     ::= 'A'..'Z' | 'a'..'z'

Parsing results in a parse forest, which is converted to a SyntaxTree. Nodes
of the syntax tree carry the grammar symbol they have been derived from, leafs
carry the span of input they have matched.

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'exsolve.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("exsolve.grammar")
}
