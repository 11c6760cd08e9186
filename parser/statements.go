package parser

import (
	"github.com/StellaZare/lox-interpreter/ast"
	"github.com/StellaZare/lox-interpreter/token"
)

// declaration → varDecl | statement
//
// This is the recovery boundary spec.md §4.2 names explicitly: a
// parseError panicking out of anything this call reaches is caught here,
// synchronized, and turned into "no AST node contributed" rather than
// aborting the whole parse.
func (p *Parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); !ok {
				panic(r)
			}
			p.synchronize()
			stmt = nil
		}
	}()

	if p.match(token.VAR) {
		return p.varDeclaration()
	}
	return p.statement()
}

// varDecl → "var" IDENTIFIER ("=" expression)? ";"
func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(token.IDENTIFIER, "Expect variable name.")

	var initializer ast.Expr
	if p.match(token.EQUAL) {
		initializer = p.expression()
	}

	p.consume(token.SEMICOLON, "Expect ';' after variable declaration.")
	return &ast.VarStmt{Name: name, Initializer: initializer}
}

// statement → exprStmt | printStmt | block | ifStmt | whileStmt | forStmt
func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.PRINT):
		return p.printStatement()
	case p.match(token.LEFT_BRACE):
		return &ast.BlockStmt{Statements: p.block()}
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.match(token.FOR):
		return p.forStatement()
	default:
		return p.expressionStatement()
	}
}

// printStmt → "print" expression ";"
func (p *Parser) printStatement() ast.Stmt {
	value := p.expression()
	p.consume(token.SEMICOLON, "Expect ';' after value.")
	return &ast.PrintStmt{Expr: value}
}

// exprStmt → expression ";"
func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(token.SEMICOLON, "Expect ';' after expression.")
	return &ast.ExpressionStmt{Expr: expr}
}

// block → "{" declaration* "}"
func (p *Parser) block() []ast.Stmt {
	var statements []ast.Stmt
	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	p.consume(token.RIGHT_BRACE, "Expect '}' after block.")
	return statements
}

// ifStmt → "if" "(" expression ")" statement ("else" statement)?
func (p *Parser) ifStatement() ast.Stmt {
	p.consume(token.LEFT_PAREN, "Expect '(' after 'if'.")
	condition := p.expression()
	p.consume(token.RIGHT_PAREN, "Expect ')' after if condition.")

	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.match(token.ELSE) {
		elseBranch = p.statement()
	}
	return &ast.IfStmt{Condition: condition, Then: thenBranch, Else: elseBranch}
}

// whileStmt → "while" "(" expression ")" statement
func (p *Parser) whileStatement() ast.Stmt {
	p.consume(token.LEFT_PAREN, "Expect '(' after 'while'.")
	condition := p.expression()
	p.consume(token.RIGHT_PAREN, "Expect ')' after condition.")
	body := p.statement()
	return &ast.WhileStmt{Condition: condition, Body: body}
}

// forStmt → "for" "(" (varDecl | exprStmt | ";") expression? ";" expression? ")" statement
//
// spec.md §4.2 specifies `for` as pure syntax sugar with no AST shape of
// its own: it rewrites to `{ init; while (cond) { body; incr; } }`,
// defaulting a missing condition to `true` and omitting the init/incr
// wrapper pieces that weren't present in the source. The evaluator never
// learns that `for` exists.
func (p *Parser) forStatement() ast.Stmt {
	p.consume(token.LEFT_PAREN, "Expect '(' after 'for'.")

	var initializer ast.Stmt
	switch {
	case p.match(token.SEMICOLON):
		initializer = nil
	case p.match(token.VAR):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(token.SEMICOLON) {
		condition = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after loop condition.")

	var increment ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		increment = p.expression()
	}
	p.consume(token.RIGHT_PAREN, "Expect ')' after for clauses.")

	body := p.statement()

	if increment != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{body, &ast.ExpressionStmt{Expr: increment}}}
	}

	if condition == nil {
		condition = &ast.Literal{Value: true}
	}
	body = &ast.WhileStmt{Condition: condition, Body: body}

	if initializer != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{initializer, body}}
	}

	return body
}
