package interpreter

import "github.com/StellaZare/lox-interpreter/token"

// runtimeError is the panic payload a failing operation raises. It carries
// the offending operator token (for line attribution, per spec.md §4.3's
// Failure model) and a message. It is recovered exactly once, at the
// outermost Interpret call — nothing in between ever recovers it, so a
// runtime error unwinds cleanly through any number of nested block
// evaluations, restoring each environment on the way out via Go's own
// defer mechanism (the scoped-acquisition contract of spec.md §5).
type runtimeError struct {
	token   token.Token
	message string
}

func (e runtimeError) Error() string { return e.message }

func newRuntimeError(tok token.Token, message string) runtimeError {
	return runtimeError{token: tok, message: message}
}
