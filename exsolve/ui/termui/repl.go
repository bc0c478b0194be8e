package termui

// Utilities for interactive command line interfaces.

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
)

// Some global defaults
var welcomeMessage = "Welcome to %s [V%s]"
var stdprompt = "%s> "
var editmode string = "emacs"

// UnknownError is printed for statements which made the interpreter panic.
const UnknownError = "Error: unknown"

// REPLCommandInterpreter is an interface all interpreters have to implement.
// It is the workhorse doing interpretation of interactive
// commands.
//
// The REPL will delegate interpreting command strings (i.e. those which do not represent
// internal administrative commands) to the interpreter.
type REPLCommandInterpreter interface {
	InterpretCommand(string)
}

// BaseREPL is a base type to instantiate a REPL interpreter.
// Concrete REPL implementations will usually use this as a base type.
type BaseREPL struct {
	Interpreter REPLCommandInterpreter // the interpreter this REPL runs for
	Helper      func(io.Writer)        // print out help information
	readline    *readline.Instance
	toolname    string
	version     string
}

// NewBaseREPL creates a new REPL base object initialized for an interpreter
// tool and a given version. Input history is kept in histfile.
func NewBaseREPL(toolname, version, histfile string) (*BaseREPL, error) {
	rl, err := newReadline(toolname, histfile)
	if err != nil {
		return nil, err
	}
	repl := &BaseREPL{
		readline: rl,
		toolname: toolname,
		version:  version,
	}
	return repl, nil
}

// Create a readline instance.
func newReadline(toolname, histfile string) (*readline.Instance, error) {
	prompt := prtxt.FgGreen.Sprintf(stdprompt, toolname)
	return readline.NewEx(&readline.Config{
		Prompt:              prompt,
		HistoryFile:         histfile,
		AutoComplete:        replCompleter,
		InterruptPrompt:     "^C",
		EOFPrompt:           "exit",
		HistorySearchFold:   true,
		FuncFilterInputRune: filterReplInput,
	})
}

// IsInteractive is a predicate: is standard input a terminal?
func IsInteractive() bool {
	return readline.IsTerminal(int(os.Stdin.Fd()))
}

// displayCommands prints a help message with available commands
// We support some internal interactive sub-commands (not part of the interpreter).
func (repl *BaseREPL) displayCommands(out io.Writer) {
	io.WriteString(out, fmt.Sprintf(welcomeMessage, repl.toolname, repl.version))
	io.WriteString(out, "\n\nThe following commands are available:\n\n")
	io.WriteString(out, "  help               : print this message\n")
	io.WriteString(out, "  bye                : quit application\n")
	io.WriteString(out, "  mode [mode]        : display or set current editing mode\n")
	io.WriteString(out, "  setprompt [prompt] : set current prompt [to default]\n")
	io.WriteString(out, "\nEvery other line is evaluated as an expression.\n")
}

// Completer-tree for interactive sub-commands
var replCompleter = readline.NewPrefixCompleter(
	readline.PcItem("help"),
	readline.PcItem("bye"),
	readline.PcItem("mode",
		readline.PcItem("vi"),
		readline.PcItem("emacs"),
	),
	readline.PcItem("setprompt"),
)

// Outputs returns stdout and stderr of this REPL.
func (repl *BaseREPL) Outputs() (io.Writer, io.Writer) {
	return repl.readline.Stdout(), repl.readline.Stderr()
}

// Prompt enters a REPL and executes commands, until the user enters 'bye' or
// input ends. Commands are either internal administrative (setprompt, help,
// etc.) or interpreted statements.
func (repl *BaseREPL) Prompt(ctx context.Context) {
	defer repl.readline.Close()
	io.WriteString(repl.readline.Stderr(),
		fmt.Sprintf(welcomeMessage, repl.toolname, repl.version))
	if !strings.HasSuffix(welcomeMessage, "\n") {
		repl.readline.Stderr().Write([]byte{'\n'})
	}
	for ctx.Err() == nil {
		line, err := repl.readline.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			break
		}
		words := strings.Fields(line)
		command := ""
		if len(words) > 0 {
			command = words[0]
		}
		if doExit := repl.executeCommand(command, words, line); doExit {
			break
		}
	}
}

// Central dispatcher function to execute internal REPL commands or interpreter
// statements. It receives the command (i.e. the first word of the line),
// a list of words (args) including the command, and the complete line of text.
// The line is passed to the interpreter unchanged, so positions reported by
// the interpreter refer to the line as typed.
// If it returns true, the REPL should terminate.
func (repl *BaseREPL) executeCommand(cmd string, args []string, line string) bool {
	switch {
	case cmd == "":
		// blank lines are not interpreted
	case cmd == "help":
		repl.displayCommands(repl.readline.Stderr())
		if repl.Helper != nil {
			repl.Helper(repl.readline.Stderr())
		}
	case cmd == "bye":
		io.WriteString(repl.readline.Stderr(), "> goodbye!\n")
		return true
	case cmd == "mode":
		if len(args) > 1 {
			switch args[1] {
			case "vi":
				repl.readline.SetVimMode(true)
				editmode = "vi"
				return false
			case "emacs":
				repl.readline.SetVimMode(false)
				editmode = "emacs"
				return false
			}
		}
		io.WriteString(repl.readline.Stderr(),
			fmt.Sprintf("> current input mode: %s\n", editmode))
	case cmd == "setprompt":
		var prmpt string
		if arg := strings.TrimSpace(line); len(arg) <= 10 {
			prmpt = prtxt.FgGreen.Sprintf(stdprompt, repl.toolname)
		} else {
			prmpt = arg[10:] + " "
		}
		repl.readline.SetPrompt(prmpt)
	default:
		trace().Debugf("call interpreter on: '%s'", line)
		interpret(repl.Interpreter, line, repl.readline.Stdout())
	}
	return false // do not exit
}

// interpret calls the interpreter, sending a statement. A panicking
// interpreter is reported as an unknown error.
func interpret(intp REPLCommandInterpreter, line string, out io.Writer) {
	if intp == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			trace().Errorf("interpreter panic on %q: %v", line, r)
			io.WriteString(out, UnknownError+"\n")
		}
	}()
	intp.InterpretCommand(line)
}

// Input filter for REPL. Blocks ctrl-z.
func filterReplInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// --- Plain line loop -------------------------------------------------------

// LineREPL is a minimal REPL for non-terminal input, e.g. from a pipe.
// It prints a plain prompt, reads a line and hands it to the interpreter,
// until input ends. There is no line editing and no internal commands.
// Lines may be of any length.
type LineREPL struct {
	Interpreter REPLCommandInterpreter // the interpreter this REPL runs for
	Prompt      string
	in          *bufio.Reader
	out         io.Writer
}

// NewLineREPL creates a line loop reading from in and writing prompts to out.
func NewLineREPL(in io.Reader, out io.Writer) *LineREPL {
	return &LineREPL{
		Prompt: "> ",
		in:     bufio.NewReader(in),
		out:    out,
	}
}

// Outputs returns the output of this REPL, for stdout and stderr alike.
func (repl *LineREPL) Outputs() (io.Writer, io.Writer) {
	return repl.out, repl.out
}

// Run reads and interprets lines until input ends or ctx is cancelled.
// Blank lines are skipped, all other lines are interpreted as read, without
// their line terminator.
func (repl *LineREPL) Run(ctx context.Context) error {
	for ctx.Err() == nil {
		io.WriteString(repl.out, repl.Prompt)
		line, err := repl.in.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		if line == "" && err == io.EOF {
			return nil
		}
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if strings.TrimSpace(line) != "" {
			interpret(repl.Interpreter, line, repl.out)
		}
		if err == io.EOF {
			io.WriteString(repl.out, repl.Prompt)
			return nil
		}
	}
	return ctx.Err()
}
