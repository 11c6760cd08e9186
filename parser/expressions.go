package parser

import (
	"github.com/StellaZare/lox-interpreter/ast"
	"github.com/StellaZare/lox-interpreter/token"
)

// expression → assignment
func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment → IDENTIFIER "=" assignment | logic_or
//
// spec.md §4.2's assignment target rule: parse logic_or first, and only
// then check for `=`. If what was just parsed is a Variable, reuse its
// name token to build an Assign node; otherwise report "Invalid assignment
// target" at the `=` token and keep the left-hand side unchanged — this is
// a diagnostic, not a parseError, so parsing continues normally.
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(token.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		if v, ok := expr.(*ast.Variable); ok {
			return &ast.Assign{Name: v.Name, Value: value}
		}
		p.report.Report(equals.Line, "at '"+equals.Lexeme+"'", "Invalid assignment target.")
	}

	return expr
}

// logic_or → logic_and ("or" logic_and)*
func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.OR) {
		op := p.previous()
		right := p.and()
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

// logic_and → equality ("and" equality)*
func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.AND) {
		op := p.previous()
		right := p.equality()
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

// equality → comparison (("!=" | "==") comparison)*
func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

// comparison → term ((">"|">="|"<"|"<=") term)*
func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		op := p.previous()
		right := p.term()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

// term → factor (("-"|"+") factor)*
func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.MINUS, token.PLUS) {
		op := p.previous()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

// factor → unary (("/"|"*") unary)*
func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.SLASH, token.STAR) {
		op := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

// unary → ("!"|"-") unary | primary
func (p *Parser) unary() ast.Expr {
	if p.match(token.BANG, token.MINUS) {
		op := p.previous()
		operand := p.unary()
		return &ast.Unary{Op: op, Operand: operand}
	}
	return p.primary()
}

// primary → NUMBER | STRING | "true" | "false" | "nil" | "(" expression ")" | IDENTIFIER
func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.FALSE):
		return &ast.Literal{Value: false}
	case p.match(token.TRUE):
		return &ast.Literal{Value: true}
	case p.match(token.NIL):
		return &ast.Literal{Value: nil}
	case p.match(token.NUMBER, token.STRING):
		return &ast.Literal{Value: p.previous().Literal}
	case p.match(token.IDENTIFIER):
		return &ast.Variable{Name: p.previous()}
	case p.match(token.LEFT_PAREN):
		expr := p.expression()
		p.consume(token.RIGHT_PAREN, "Expect ')' after expression.")
		return &ast.Grouping{Inner: expr}
	}

	panic(p.errorAt(p.peek(), "Expect expression."))
}
