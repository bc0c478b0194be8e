/*
Package evaluator computes the value of arithmetic expressions, given as
syntax trees of package grammar.

Evaluation is purely driven by the shape of the tree: every node is
dispatched by its label together with the number of its children. Precedence
and associativity of operators are already encoded in the nesting of tree
nodes, therefore the evaluator never has to compare operators. Constants and
functions are resolved against fixed tables, which are set up at
initialization time and are never modified afterwards.

Evaluation of a tree either results in a float64 or in an error of type
*EvaluationError, which locates the offending sub-expression in the input.
Trees not conforming to the expression grammar are a programming error and
will panic.

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
package evaluator

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'exsolve.evaluator'.
func tracer() tracing.Trace {
	return tracing.Select("exsolve.evaluator")
}
