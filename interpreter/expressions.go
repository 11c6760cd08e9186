package interpreter

import (
	"fmt"

	"github.com/StellaZare/lox-interpreter/ast"
	"github.com/StellaZare/lox-interpreter/token"
)

// evaluate dispatches on the concrete ast.Expr shape, implementing
// spec.md §4.3's "Expression semantics" section. Operand evaluation is
// strictly left-to-right everywhere a binary form appears, and short-
// circuit operators never evaluate their right operand when the left
// already determines the result — both guaranteed here by ordinary Go
// evaluation order, per spec.md §5.
func (in *Interpreter) evaluate(expr ast.Expr) Value {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value

	case *ast.Grouping:
		return in.evaluate(e.Inner)

	case *ast.Unary:
		operand := in.evaluate(e.Operand)
		switch e.Op.Kind {
		case token.MINUS:
			n := in.checkNumberOperand(e.Op, operand)
			return -n
		case token.BANG:
			return !isTruthy(operand)
		}
		panic(fmt.Sprintf("interpreter: unhandled unary operator %s", e.Op.Kind))

	case *ast.Binary:
		left := in.evaluate(e.Left)
		right := in.evaluate(e.Right)
		return in.evaluateBinary(e.Op, left, right)

	case *ast.Logical:
		left := in.evaluate(e.Left)
		if e.Op.Kind == token.OR {
			if isTruthy(left) {
				return left
			}
		} else {
			if !isTruthy(left) {
				return left
			}
		}
		return in.evaluate(e.Right)

	case *ast.Variable:
		return in.lookupVariable(e.Name)

	case *ast.Assign:
		value := in.evaluate(e.Value)
		if !in.env.Assign(e.Name.Lexeme, value) {
			panic(newRuntimeError(e.Name, "Undefined variable '"+e.Name.Lexeme+"'."))
		}
		return value
	}

	panic(fmt.Sprintf("interpreter: unhandled expression type %T", expr))
}

func (in *Interpreter) lookupVariable(name token.Token) Value {
	value, ok := in.env.Get(name.Lexeme)
	if !ok {
		panic(newRuntimeError(name, "Undefined variable '"+name.Lexeme+"'."))
	}
	return value
}

// evaluateBinary implements spec.md §4.3's arithmetic, `+` overload,
// comparison, and equality rules.
func (in *Interpreter) evaluateBinary(op token.Token, left, right Value) Value {
	switch op.Kind {
	case token.MINUS:
		a, b := in.checkNumberOperands(op, left, right)
		return a - b
	case token.SLASH:
		a, b := in.checkNumberOperands(op, left, right)
		return a / b
	case token.STAR:
		a, b := in.checkNumberOperands(op, left, right)
		return a * b
	case token.PLUS:
		return in.evaluateAdd(op, left, right)
	case token.GREATER:
		a, b := in.checkNumberOperands(op, left, right)
		return a > b
	case token.GREATER_EQUAL:
		a, b := in.checkNumberOperands(op, left, right)
		return a >= b
	case token.LESS:
		a, b := in.checkNumberOperands(op, left, right)
		return a < b
	case token.LESS_EQUAL:
		a, b := in.checkNumberOperands(op, left, right)
		return a <= b
	case token.EQUAL_EQUAL:
		return isEqual(left, right)
	case token.BANG_EQUAL:
		return !isEqual(left, right)
	}
	panic(fmt.Sprintf("interpreter: unhandled binary operator %s", op.Kind))
}

// evaluateAdd implements `+`'s overload: number+number sums, string+string
// concatenates, anything else is a runtime error.
func (in *Interpreter) evaluateAdd(op token.Token, left, right Value) Value {
	if a, ok := left.(float64); ok {
		if b, ok := right.(float64); ok {
			return a + b
		}
	}
	if a, ok := left.(string); ok {
		if b, ok := right.(string); ok {
			return a + b
		}
	}
	panic(newRuntimeError(op, "Operands must be two numbers or two strings."))
}

func (in *Interpreter) checkNumberOperand(op token.Token, operand Value) float64 {
	if n, ok := operand.(float64); ok {
		return n
	}
	panic(newRuntimeError(op, "Operand must be a number."))
}

func (in *Interpreter) checkNumberOperands(op token.Token, left, right Value) (float64, float64) {
	a, aok := left.(float64)
	b, bok := right.(float64)
	if !aok || !bok {
		panic(newRuntimeError(op, "Operands must be numbers."))
	}
	return a, b
}
