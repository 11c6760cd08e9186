// Package repl implements the interactive Read-Eval-Print Loop described
// in spec.md §6: "opens a REPL reading one line at a time, prompt '> ',
// evaluates each line as a whole program, resets the had syntactic error
// flag between lines, exits on EOF."
//
// It is a direct, trimmed adaptation of the teacher's repl.Repl
// (repl/repl.go): a constructor trimmed to banner/version/prompt, the
// same use of github.com/chzyer/readline for history and
// line editing and github.com/fatih/color for feedback coloring, same
// Start(reader, writer io.*) signature that lets a single implementation
// serve both stdin/stdout and a net.Conn (see cmd/interpreter's `serve`
// mode). What's dropped is go-mix's `.exit`/`/scope` REPL command
// vocabulary and result-echoing — spec.md's REPL has no meta-commands and
// no implicit expression-result display, only `print` output and
// diagnostics.
package repl

import (
	"io"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/StellaZare/lox-interpreter/diag"
	"github.com/StellaZare/lox-interpreter/interpreter"
	"github.com/StellaZare/lox-interpreter/lexer"
	"github.com/StellaZare/lox-interpreter/parser"
)

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration of an interactive session.
type Repl struct {
	Banner  string
	Version string
	Prompt  string
}

// New creates a Repl ready to Start.
func New(banner, version, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Prompt: prompt}
}

// Start runs the loop until EOF (Ctrl+D) or a readline error. A fresh
// Interpreter persists across lines so variable declarations accumulate
// the way spec.md implies ("evaluates each line as a whole program"
// against one running environment), matching go-mix's own
// "evaluator instance... maintains state across REPL sessions".
func (r *Repl) Start(in io.Reader, out io.Writer) {
	cyanColor.Fprintf(out, "%s\n", r.Banner)
	cyanColor.Fprintf(out, "Version %s. Press Ctrl+D to exit.\n", r.Version)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.Prompt,
		Stdin:  io.NopCloser(in),
		Stdout: out,
	})
	if err != nil {
		redColor.Fprintf(out, "repl: %v\n", err)
		return
	}
	defer rl.Close()

	reporter := diag.NewStreamReporter(out)
	interp := interpreter.New(reporter)
	interp.SetWriter(out)

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF on Ctrl+D, readline.ErrInterrupt on Ctrl+C
			return
		}
		if line == "" {
			continue
		}
		rl.SaveHistory(line)

		reporter.Reset()
		lex := lexer.New(line, reporter)
		tokens := lex.ScanTokens()
		par := parser.New(tokens, reporter)
		statements := par.Parse()

		if reporter.HadSyntaxError() {
			continue
		}
		interp.Interpret(statements)
	}
}
