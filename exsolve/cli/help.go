package cli

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/exsolve"
	"github.com/npillmayer/exsolve/evaluator"
)

// symbolTable lists the constants and functions available in expressions.
func symbolTable() table.Writer {
	tw := table.NewWriter()
	tw.SetTitle("Constants and functions")
	tw.AppendHeader(table.Row{"name", "kind", "value / arity"})
	for _, c := range evaluator.Constants() {
		tw.AppendRow(table.Row{c.Name, "constant", exsolve.FormatResult(c.Value)})
	}
	for _, f := range evaluator.UnaryFunctions() {
		tw.AppendRow(table.Row{f + "(x)", "function", 1})
	}
	for _, f := range evaluator.BinaryFunctions() {
		tw.AppendRow(table.Row{f + "(x,y)", "function", 2})
	}
	tw.SetStyle(table.StyleLight)
	return tw
}

// writeHelp prints a short introduction and the table of symbols, using the
// interpreter's formatter.
func (intp *exsolveIntpr) writeHelp(w io.Writer) {
	io.WriteString(w, `
Expressions may use numbers, the operators + - * / ^ (with ^ binding
to the right), parentheses and unary signs. Blanks may separate tokens,
but not split up numbers or names.

`)
	if ok, err := intp.formatter.Format(symbolTable(), w); !ok || err != nil {
		tracer().Errorf("cannot display table of symbols: %v", err)
	}
}
