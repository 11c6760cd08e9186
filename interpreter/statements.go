package interpreter

import (
	"fmt"

	"github.com/StellaZare/lox-interpreter/ast"
	"github.com/StellaZare/lox-interpreter/environment"
)

// execute dispatches on the concrete ast.Stmt shape, implementing
// spec.md §4.3's "Statement semantics" section.
func (in *Interpreter) execute(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		in.evaluate(s.Expr)
	case *ast.PrintStmt:
		value := in.evaluate(s.Expr)
		fmt.Fprintln(in.writer, stringify(value))
	case *ast.VarStmt:
		var value Value
		if s.Initializer != nil {
			value = in.evaluate(s.Initializer)
		}
		in.env.Define(s.Name.Lexeme, value)
	case *ast.BlockStmt:
		in.executeBlock(s.Statements, environment.New(in.env))
	case *ast.IfStmt:
		if isTruthy(in.evaluate(s.Condition)) {
			in.execute(s.Then)
		} else if s.Else != nil {
			in.execute(s.Else)
		}
	case *ast.WhileStmt:
		for isTruthy(in.evaluate(s.Condition)) {
			in.execute(s.Body)
		}
	default:
		panic(fmt.Sprintf("interpreter: unhandled statement type %T", stmt))
	}
}

// executeBlock installs env as the current environment, executes
// statements in order, and restores the previous environment on every
// exit path — normal completion or a runtimeError panic unwinding through
// it — via defer. This is the scoped-acquisition contract spec.md §5
// requires: "the previous environment reference is restored on all exit
// paths."
func (in *Interpreter) executeBlock(statements []ast.Stmt, env *environment.Environment) {
	previous := in.env
	defer func() { in.env = previous }()

	in.env = env
	for _, stmt := range statements {
		in.execute(stmt)
	}
}
