package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/StellaZare/lox-interpreter/token"
)

func numberToken(lexeme string, line int) token.Token {
	return token.New(token.NUMBER, lexeme, nil, line)
}

func TestPrintExpr_Literal(t *testing.T) {
	assert.Equal(t, "1", PrintExpr(&Literal{Value: 1.0}))
	assert.Equal(t, "nil", PrintExpr(&Literal{Value: nil}))
	assert.Equal(t, "true", PrintExpr(&Literal{Value: true}))
	assert.Equal(t, `"hi"`, PrintExpr(&Literal{Value: "hi"}))
}

func TestPrintExpr_Grouping(t *testing.T) {
	expr := &Grouping{Inner: &Literal{Value: 1.0}}
	assert.Equal(t, "(group 1)", PrintExpr(expr))
}

func TestPrintExpr_Unary(t *testing.T) {
	expr := &Unary{
		Op:      token.New(token.MINUS, "-", nil, 1),
		Operand: &Literal{Value: 5.0},
	}
	assert.Equal(t, "(- 5)", PrintExpr(expr))
}

func TestPrintExpr_Binary(t *testing.T) {
	expr := &Binary{
		Left:  &Literal{Value: 1.0},
		Op:    token.New(token.PLUS, "+", nil, 1),
		Right: &Literal{Value: 2.0},
	}
	assert.Equal(t, "(+ 1 2)", PrintExpr(expr))
}

func TestPrintExpr_NestedExpressionFromTheBookExample(t *testing.T) {
	// (-123) * (45.67) — the canonical example used to validate printers
	// of this shape.
	expr := &Binary{
		Left: &Unary{
			Op:      token.New(token.MINUS, "-", nil, 1),
			Operand: &Literal{Value: 123.0},
		},
		Op: token.New(token.STAR, "*", nil, 1),
		Right: &Grouping{
			Inner: &Literal{Value: 45.67},
		},
	}
	assert.Equal(t, "(* (- 123) (group 45.67))", PrintExpr(expr))
}

func TestPrint_Statements(t *testing.T) {
	statements := []Stmt{
		&VarStmt{Name: token.New(token.IDENTIFIER, "x", nil, 1), Initializer: &Literal{Value: 1.0}},
		&PrintStmt{Expr: &Variable{Name: token.New(token.IDENTIFIER, "x", nil, 1)}},
	}
	assert.Equal(t, "(var x 1)\n(print x)\n", Print(statements))
}

func TestPrint_IfElse(t *testing.T) {
	statements := []Stmt{
		&IfStmt{
			Condition: &Literal{Value: true},
			Then:      &PrintStmt{Expr: &Literal{Value: 1.0}},
			Else:      &PrintStmt{Expr: &Literal{Value: 2.0}},
		},
	}
	assert.Equal(t, "(if true (print 1) (print 2))\n", Print(statements))
}

func TestPrint_Block(t *testing.T) {
	statements := []Stmt{
		&BlockStmt{Statements: []Stmt{
			&ExpressionStmt{Expr: &Literal{Value: 1.0}},
		}},
	}
	assert.Equal(t, "(block 1;)\n", Print(statements))
}
