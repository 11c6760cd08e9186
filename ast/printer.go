package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders a statement list as a fully-parenthesized, canonical
// source-like string. It exists for two reasons the teacher's own
// PrintingVisitor/test_visitor.go served in go-mix: debugging ("what did the
// parser actually build?") and the round-trip testable property in
// spec.md §8 ("pretty-print then re-parse yields a structurally equal
// AST") — canonical output makes that comparison a plain string diff
// instead of a structural walk.
func Print(statements []Stmt) string {
	var b strings.Builder
	for _, s := range statements {
		printStmt(&b, s)
		b.WriteByte('\n')
	}
	return b.String()
}

// PrintExpr renders a single expression, fully parenthesized.
func PrintExpr(e Expr) string {
	var b strings.Builder
	printExpr(&b, e)
	return b.String()
}

func printStmt(b *strings.Builder, s Stmt) {
	switch n := s.(type) {
	case *ExpressionStmt:
		printExpr(b, n.Expr)
		b.WriteByte(';')
	case *PrintStmt:
		b.WriteString("(print ")
		printExpr(b, n.Expr)
		b.WriteString(")")
	case *VarStmt:
		fmt.Fprintf(b, "(var %s", n.Name.Lexeme)
		if n.Initializer != nil {
			b.WriteByte(' ')
			printExpr(b, n.Initializer)
		}
		b.WriteByte(')')
	case *BlockStmt:
		b.WriteString("(block")
		for _, inner := range n.Statements {
			b.WriteByte(' ')
			printStmt(b, inner)
		}
		b.WriteByte(')')
	case *IfStmt:
		b.WriteString("(if ")
		printExpr(b, n.Condition)
		b.WriteByte(' ')
		printStmt(b, n.Then)
		if n.Else != nil {
			b.WriteByte(' ')
			printStmt(b, n.Else)
		}
		b.WriteByte(')')
	case *WhileStmt:
		b.WriteString("(while ")
		printExpr(b, n.Condition)
		b.WriteByte(' ')
		printStmt(b, n.Body)
		b.WriteByte(')')
	default:
		fmt.Fprintf(b, "<unknown-stmt %T>", s)
	}
}

func printExpr(b *strings.Builder, e Expr) {
	switch n := e.(type) {
	case *Literal:
		b.WriteString(literalString(n.Value))
	case *Grouping:
		b.WriteString("(group ")
		printExpr(b, n.Inner)
		b.WriteByte(')')
	case *Unary:
		fmt.Fprintf(b, "(%s ", n.Op.Lexeme)
		printExpr(b, n.Operand)
		b.WriteByte(')')
	case *Binary:
		fmt.Fprintf(b, "(%s ", n.Op.Lexeme)
		printExpr(b, n.Left)
		b.WriteByte(' ')
		printExpr(b, n.Right)
		b.WriteByte(')')
	case *Logical:
		fmt.Fprintf(b, "(%s ", n.Op.Lexeme)
		printExpr(b, n.Left)
		b.WriteByte(' ')
		printExpr(b, n.Right)
		b.WriteByte(')')
	case *Variable:
		b.WriteString(n.Name.Lexeme)
	case *Assign:
		fmt.Fprintf(b, "(= %s ", n.Name.Lexeme)
		printExpr(b, n.Value)
		b.WriteByte(')')
	default:
		fmt.Fprintf(b, "<unknown-expr %T>", e)
	}
}

func literalString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case string:
		return strconv.Quote(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
