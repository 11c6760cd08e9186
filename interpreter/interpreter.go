// Package interpreter implements the tree-walking evaluator of spec.md
// §4.3: a visitor over the AST (expressed, per ast's package doc, as a
// type switch over ast.Expr/ast.Stmt) that interprets a dynamically-typed
// value domain against a chained lexical environment.
//
// The overall shape — an Interpreter struct holding the current
// environment and an output writer, a statement-execution loop, an
// expression-evaluation switch — is grounded on the teacher's
// eval.Evaluator (eval/evaluator.go, eval/eval_statements.go,
// eval/eval_expressions.go, eval/eval_conditionals.go, eval/eval_loops.go).
// Two deliberate departures from the teacher, both directed by spec.md §9:
//
//  1. Runtime failures are a typed panic (runtimeError) recovered once at
//     Interpret, not an Error value threaded back up through every Eval
//     call the way go-mix's evaluator does it. spec.md §4.3 describes
//     exactly the panic/recover shape: "raised at the operation site,
//     unwinds any in-progress block evaluations..., and is caught only at
//     the outermost interpret boundary". go-mix's own driver already uses
//     recover() as a safety net around its error-value pipeline (see
//     repl.executeWithRecovery); this package promotes that same
//     Go idiom to be the primary control-flow mechanism for the one error
//     condition spec.md says must not be locally swallowed.
//  2. Assign evaluates and binds its RHS value (fixing the bug spec.md §9
//     attributes to the source material's visitExpr storing the
//     unevaluated expression).
package interpreter

import (
	"io"
	"os"

	"github.com/StellaZare/lox-interpreter/ast"
	"github.com/StellaZare/lox-interpreter/diag"
	"github.com/StellaZare/lox-interpreter/environment"
)

// Interpreter executes a statement list against a chain of environments
// rooted at Globals. It holds no other state: there is nothing else to
// reset between REPL lines besides the Reporter's flags (owned by the
// driver, per spec.md §5's "Shared resources" paragraph).
type Interpreter struct {
	Globals *environment.Environment
	env     *environment.Environment
	writer  io.Writer
	report  diag.Reporter
}

// New creates an Interpreter with a fresh global environment. Output from
// `print` statements goes to os.Stdout until SetWriter overrides it.
func New(report diag.Reporter) *Interpreter {
	globals := environment.New(nil)
	return &Interpreter{
		Globals: globals,
		env:     globals,
		writer:  os.Stdout,
		report:  report,
	}
}

// SetWriter redirects `print` output, primarily so tests can capture it.
func (in *Interpreter) SetWriter(w io.Writer) {
	in.writer = w
}

// Interpret executes statements in source order against the current
// environment. This is the outermost boundary spec.md §4.3 names: the one
// place a runtimeError panic is recovered. A runtime error reported here
// stops evaluation of the current statement list immediately — the REPL
// still accepts the next line, and file mode's caller maps this to exit
// code 70 (spec.md §6, §7).
func (in *Interpreter) Interpret(statements []ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(runtimeError)
			if !ok {
				panic(r)
			}
			in.report.RuntimeError(rerr.token.Line, rerr.message)
		}
	}()

	for _, stmt := range statements {
		in.execute(stmt)
	}
}
