// Package cli implements the exsolve command line interface.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/exsolve"
	"github.com/npillmayer/exsolve/exsolve/ui/termui"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

const toolname = "exsolve"
const version = "0.1"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   toolname,
	Short: "A calculator for arithmetic expressions",
	Long: `Welcome to exsolve V0.1

exsolve evaluates arithmetic expressions, one per line. Expressions consist
of numbers, the constants e and pi, functions like sin(x) or pow(x,y), the
operators + - * / ^ and parentheses.

If input is a terminal, exsolve prompts for expressions in a REPL with line
editing and history. Otherwise it reads expressions from standard input until
input ends.

`,
	Args: cobra.NoArgs,
	Run:  runExsolveCmd,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called exactly once by exsolve.main(). It returns the exit code for
// the application.
func Execute() int {
	if rootCmd.Execute() != nil {
		return 2
	}
	return 0
}

func init() {
	cobra.OnInitialize(loadConfig)
	// persistent flags which will be global for the application
	rootCmd.PersistentFlags().BoolP("interactive", "i", false, "Force run in interactive mode")
	rootCmd.PersistentFlags().String("logfile", "stderr", "URL of log output location")
}

func runExsolveCmd(cmd *cobra.Command, args []string) {
	tracing.Infof("exsolve interpreter called")
	ctx := exsolve.SignalContext
	if ctx == nil {
		ctx = context.Background()
	}
	intp := &exsolveIntpr{formatter: termui.DefaultFormatter{}}
	if forceInteractive() || termui.IsInteractive() {
		repl, err := termui.NewBaseREPL(toolname, version, historyFile(defaultPaths(), toolname))
		if err == nil {
			repl.Interpreter = intp
			repl.Helper = intp.writeHelp
			intp.out, _ = repl.Outputs()
			repl.Prompt(ctx)
			return
		}
		tracer().Errorf("cannot start interactive REPL: %v", err)
	}
	loop := termui.NewLineREPL(os.Stdin, os.Stdout)
	loop.Interpreter = intp
	intp.out = os.Stdout
	if err := loop.Run(ctx); err != nil && err != context.Canceled {
		tracer().Errorf("reading input: %v", err)
	}
}

func forceInteractive() bool {
	return exsolve.Configuration != nil && exsolve.Configuration.Bool("interactive")
}

// exsolveIntpr solves every statement it receives as an expression.
type exsolveIntpr struct {
	out       io.Writer
	formatter termui.Formatter
}

func (intp *exsolveIntpr) InterpretCommand(command string) {
	command = strings.Trim(command, "\x00")
	tracer().Debugf("expression interpreter: %q", command)
	if _, err := intp.formatter.Format(exsolve.Respond(command), intp.out); err != nil {
		tracer().Errorf("cannot write answer: %v", err)
	}
}
