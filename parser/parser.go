// Package parser implements the recursive-descent parser described in
// spec.md §4.2. The grammar is transcribed directly from the spec — each
// grammar rule is one method, and recursion depth encodes precedence —
// so, unlike the teacher's Pratt-table dispatch (parser.UnaryFuncs /
// BinaryFuncs in go-mix), there is no token-to-function registry here: the
// spec's own precedence ladder already is the dispatch table.
//
// What is reused from the teacher is its error-handling idiom: collect
// diagnostics instead of failing the whole parse, and use a single
// recovered panic to unwind from deep inside a rule back up to the
// statement boundary (go-mix's REPL and file-mode drivers already wrap
// their own pipelines in defer/recover; this package applies the same
// technique one level deeper, exactly where spec.md §4.2 says the
// "parse error" signal must be caught: "exactly at the declaration
// boundary").
package parser

import (
	"github.com/StellaZare/lox-interpreter/ast"
	"github.com/StellaZare/lox-interpreter/diag"
	"github.com/StellaZare/lox-interpreter/token"
)

// parseError is the internal panic payload raised by consume and by
// primary when no expression can start at the current token. It is never
// exported and never escapes this package: declaration recovers it,
// synchronizes, and drops the faulty declaration, so the unwind always
// stops at the declaration boundary.
type parseError struct{}

// Parser turns a token stream into a statement list, collecting
// diagnostics through a diag.Reporter rather than aborting on the first
// error — spec.md §4.2: "the parser always returns whatever list of
// statements it successfully built."
type Parser struct {
	tokens  []token.Token
	current int
	report  diag.Reporter
}

// New creates a Parser over a complete token stream (as produced by
// lexer.ScanTokens, EOF-terminated). report receives syntactic
// diagnostics.
func New(tokens []token.Token, report diag.Reporter) *Parser {
	return &Parser{tokens: tokens, report: report}
}

// Parse runs `program → declaration* EOF` and returns every statement it
// could build. Diagnostics for declarations it couldn't build have already
// reached the Reporter; the caller (the driver) decides whether to
// evaluate based on the Reporter's had-syntax-error flag, per spec.md §7.
func (p *Parser) Parse() []ast.Stmt {
	var statements []ast.Stmt
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return statements
}

// --- token cursor primitives -------------------------------------------------

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == token.EOF
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind token.Kind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

// match consumes and returns true if the current token is one of kinds.
func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past the current token if it has the expected kind;
// otherwise it reports message at the current token and raises parseError.
func (p *Parser) consume(kind token.Kind, message string) token.Token {
	if p.check(kind) {
		return p.advance()
	}
	panic(p.errorAt(p.peek(), message))
}

// errorAt reports a syntactic diagnostic in the wire format spec.md §6
// defines ("at end" for EOF, "at '<lexeme>'" otherwise) and returns the
// parseError payload to panic with.
func (p *Parser) errorAt(tok token.Token, message string) parseError {
	if tok.Kind == token.EOF {
		p.report.Report(tok.Line, "at end", message)
	} else {
		p.report.Report(tok.Line, "at '"+tok.Lexeme+"'", message)
	}
	return parseError{}
}

// synchronize implements the recovery protocol of spec.md §4.2: advance
// one token, then skip until either the last consumed token was a `;` or
// the next token starts a new statement.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == token.SEMICOLON {
			return
		}
		switch p.peek().Kind {
		case token.CLASS, token.FUN, token.VAR, token.FOR,
			token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}
