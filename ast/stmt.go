package ast

import "github.com/StellaZare/lox-interpreter/token"

// Stmt is implemented by every statement AST node. See the package doc on
// Expr for why this is a marker-interface tagged variant rather than a
// visitor hierarchy.
type Stmt interface {
	stmtNode()
}

// ExpressionStmt evaluates an expression purely for its side effects and
// discards the result.
type ExpressionStmt struct {
	Expr Expr
}

func (*ExpressionStmt) stmtNode() {}

// PrintStmt evaluates an expression, stringifies it, and writes it followed
// by a newline.
type PrintStmt struct {
	Expr Expr
}

func (*PrintStmt) stmtNode() {}

// VarStmt declares an identifier in the current environment, optionally
// initializing it. Initializer is nil when the declaration has no `= expr`.
type VarStmt struct {
	Name        token.Token
	Initializer Expr
}

func (*VarStmt) stmtNode() {}

// BlockStmt is an ordered sequence of statements executed in a fresh
// environment nested under the one active where the block appears.
type BlockStmt struct {
	Statements []Stmt
}

func (*BlockStmt) stmtNode() {}

// IfStmt is a conditional with an optional else branch. Else is nil when
// the source has no `else` clause.
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

func (*IfStmt) stmtNode() {}

// WhileStmt repeats Body for as long as Condition evaluates truthy.
// spec.md §4.2's `for` desugaring lowers to this node plus a BlockStmt —
// there is no separate ForStmt shape in the AST.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (*WhileStmt) stmtNode() {}
