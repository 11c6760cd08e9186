// Command interpreter is the CLI entry point spec.md §1 scopes out of the
// core: choosing REPL vs. file mode, reading files, and mapping the had-
// syntax-error/had-runtime-error flags to a process exit code.
//
// Grounded on the teacher's main/main.go: the three-way argument dispatch
// (no args → REPL, one arg → run file, `serve <port>` → TCP REPL) and the
// --help/--version flags are carried over directly; what's new is the
// exit-code mapping spec.md §6 specifies (0/65/70/64), which go-mix's own
// driver doesn't attempt (it always exits 0 or 1).
package main

import (
	"fmt"
	"io"
	"net"
	"os"

	"github.com/fatih/color"

	"github.com/StellaZare/lox-interpreter/diag"
	"github.com/StellaZare/lox-interpreter/interpreter"
	"github.com/StellaZare/lox-interpreter/lexer"
	"github.com/StellaZare/lox-interpreter/parser"
	"github.com/StellaZare/lox-interpreter/repl"
)

const (
	version = "v1.0.0"
	banner  = "lox-interpreter"
	prompt  = "> "
)

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

// Exit codes, per spec.md §6.
const (
	exitOK           = 0
	exitUsage        = 64
	exitSyntaxError  = 65
	exitRuntimeError = 70
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run implements the CLI dispatch as a pure function of its arguments and
// streams, so cmd/interpreter's tests can exercise exit-code mapping
// without forking a process.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	switch len(args) {
	case 0:
		repl.New(banner, version, prompt).Start(stdin, stdout)
		return exitOK

	case 1:
		switch args[0] {
		case "--help", "-h":
			printUsage(stdout)
			return exitOK
		case "--version", "-v":
			cyanColor.Fprintf(stdout, "%s %s\n", banner, version)
			return exitOK
		default:
			return runFile(args[0], stdout, stderr)
		}

	case 2:
		if args[0] == "serve" {
			return serve(args[1], stdout, stderr)
		}
		fallthrough

	default:
		printUsage(stderr)
		return exitUsage
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  interpreter                start a REPL")
	fmt.Fprintln(w, "  interpreter <script>       run a script file")
	fmt.Fprintln(w, "  interpreter serve <port>   start a TCP REPL server")
	fmt.Fprintln(w, "  interpreter --version      print the version")
}

// runFile implements spec.md §6's file mode: read, lex, parse, interpret,
// map diagnostics to exit codes 0/65/70.
func runFile(path string, stdout, stderr io.Writer) int {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(stderr, "Could not read file %q: %v\n", path, err)
		return exitUsage
	}

	reporter := diag.NewStreamReporter(stderr)

	lex := lexer.New(string(source), reporter)
	tokens := lex.ScanTokens()

	par := parser.New(tokens, reporter)
	statements := par.Parse()

	if reporter.HadSyntaxError() {
		return exitSyntaxError
	}

	interp := interpreter.New(reporter)
	interp.SetWriter(stdout)
	interp.Interpret(statements)

	if reporter.HadRuntimeError() {
		return exitRuntimeError
	}
	return exitOK
}

// serve starts a TCP listener and hands each connection its own REPL
// instance, reusing net.Conn as both the reader and the writer — a
// supplemental feature carried over from the teacher's
// main.startServer/handleClient, documented in SPEC_FULL.md.
func serve(port string, stdout, stderr io.Writer) int {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(stderr, "Failed to listen on port %s: %v\n", port, err)
		return exitUsage
	}
	defer listener.Close()
	cyanColor.Fprintf(stdout, "listening on :%s\n", port)

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(stderr, "accept: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	repl.New(banner, version, prompt).Start(conn, conn)
}
