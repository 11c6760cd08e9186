// Package ast defines the abstract syntax tree produced by the parser and
// walked by the interpreter.
//
// spec.md §9 notes that the source material this design is drawn from uses
// a double-dispatch visitor over a class hierarchy, and that a
// systems-language rewrite should collapse that into a tagged variant (a
// sum type) with a type switch at each interpreter entry point. Go has no
// native sum types, so the idiomatic translation is a marker-method
// interface implemented by a closed set of concrete node types, matched
// with a type switch in the interpreter. That is what this package does:
// Expr and Stmt are the two tags, exprNode()/stmtNode() are unexported
// marker methods that close the set to this package, and every shape named
// in spec.md §3 has exactly one corresponding struct.
package ast

import "github.com/StellaZare/lox-interpreter/token"

// Expr is implemented by every expression AST node. The unexported marker
// method prevents types outside this package from satisfying it, keeping
// the variant closed the way spec.md §3 describes.
type Expr interface {
	exprNode()
}

// Literal is a constant value baked into the source: a number, a string, a
// boolean, or nil. The zero value of Value (nil) represents the `nil`
// literal.
type Literal struct {
	Value interface{}
}

func (*Literal) exprNode() {}

// Grouping is a parenthesized sub-expression, kept as its own node (rather
// than collapsed away) so that a pretty-printer can round-trip parentheses.
type Grouping struct {
	Inner Expr
}

func (*Grouping) exprNode() {}

// Unary is a prefix `!` or `-` applied to a single operand.
type Unary struct {
	Op      token.Token
	Operand Expr
}

func (*Unary) exprNode() {}

// Binary is an arithmetic, comparison, or equality operator applied to two
// operands, evaluated left-to-right.
type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (*Binary) exprNode() {}

// Logical is `and`/`or`, kept distinct from Binary because it short-circuits
// and returns an operand verbatim rather than a coerced boolean.
type Logical struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (*Logical) exprNode() {}

// Variable is a read of an identifier.
type Variable struct {
	Name token.Token
}

func (*Variable) exprNode() {}

// Assign is a write to an identifier. spec.md §3's invariant that an
// Assign's target is syntactically only a Variable is enforced by the
// parser, which is the only place an Assign node is constructed.
type Assign struct {
	Name  token.Token
	Value Expr
}

func (*Assign) exprNode() {}
