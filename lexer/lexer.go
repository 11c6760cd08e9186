// Package lexer implements the hand-written scanner described in
// spec.md §4.1: it turns source text into a token stream, attributing each
// token with its lexeme, an optional literal value, and a line number.
//
// The scanning loop, the advance/peek cursor primitives, and the
// comment/whitespace skipping are a direct, re-scoped adaptation of the
// teacher's lexer.Lexer (lexer/lexer.go, lexer/lexer_utils.go): same
// single-pass switch-on-current-byte structure, same "record start, read
// one char, dispatch" iteration. What's dropped is everything go-mix needs
// that this language doesn't: column tracking (spec.md §1 Non-goals caps
// position tracking at line number), bitwise/compound-assignment operators,
// and the extra bracket/struct punctuation. What's added is the
// two-character lookahead table for `!= == <= >=`, the `//` and `/* */`
// comment forms (go-mix only has `//`), and the De Morgan block-comment fix
// spec.md §9 calls for.
package lexer

import (
	"github.com/StellaZare/lox-interpreter/diag"
	"github.com/StellaZare/lox-interpreter/token"
)

// Lexer scans a single source string into a token stream. It holds no
// resources other than the string itself and a cursor, so it has no Close
// method and is safe to discard once ScanTokens returns.
type Lexer struct {
	source  string
	start   int // index of the first byte of the lexeme being scanned
	current int // index of the next byte to read
	line    int
	report  diag.Reporter
}

// New creates a Lexer over src. report receives lexical diagnostics
// (unterminated strings, unterminated comments, unexpected characters);
// it must not be nil.
func New(src string, report diag.Reporter) *Lexer {
	return &Lexer{source: src, line: 1, report: report}
}

// ScanTokens consumes the entire source and returns its tokens terminated
// by exactly one EOF sentinel, per spec.md §3's Token invariant.
func (l *Lexer) ScanTokens() []token.Token {
	var tokens []token.Token
	for !l.atEnd() {
		l.start = l.current
		if tok, ok := l.scanToken(); ok {
			tokens = append(tokens, tok)
		}
	}
	tokens = append(tokens, token.New(token.EOF, "", nil, l.line))
	return tokens
}

func (l *Lexer) atEnd() bool {
	return l.current >= len(l.source)
}

// advance consumes and returns the current byte.
func (l *Lexer) advance() byte {
	c := l.source[l.current]
	l.current++
	return c
}

// peek returns the current (unconsumed) byte without advancing, or 0 at
// end of input.
func (l *Lexer) peek() byte {
	if l.atEnd() {
		return 0
	}
	return l.source[l.current]
}

// peekNext returns the byte one past the current one, or 0 if that would
// be past the end of input.
func (l *Lexer) peekNext() byte {
	if l.current+1 >= len(l.source) {
		return 0
	}
	return l.source[l.current+1]
}

// match consumes the current byte and returns true if it equals expected;
// otherwise it leaves the cursor untouched and returns false. This is the
// lookahead primitive behind every two-character operator.
func (l *Lexer) match(expected byte) bool {
	if l.atEnd() || l.source[l.current] != expected {
		return false
	}
	l.current++
	return true
}

func (l *Lexer) lexeme() string {
	return l.source[l.start:l.current]
}

func (l *Lexer) emit(kind token.Kind) (token.Token, bool) {
	return token.New(kind, l.lexeme(), nil, l.line), true
}

func (l *Lexer) emitLiteral(kind token.Kind, literal interface{}) (token.Token, bool) {
	return token.New(kind, l.lexeme(), literal, l.line), true
}

// scanToken scans exactly one token (or skips exactly one piece of
// whitespace/comment/invalid input), mirroring the per-character switch in
// the teacher's NextToken.
func (l *Lexer) scanToken() (token.Token, bool) {
	c := l.advance()
	switch c {
	case '(':
		return l.emit(token.LEFT_PAREN)
	case ')':
		return l.emit(token.RIGHT_PAREN)
	case '{':
		return l.emit(token.LEFT_BRACE)
	case '}':
		return l.emit(token.RIGHT_BRACE)
	case ',':
		return l.emit(token.COMMA)
	case '.':
		return l.emit(token.DOT)
	case '-':
		return l.emit(token.MINUS)
	case '+':
		return l.emit(token.PLUS)
	case ';':
		return l.emit(token.SEMICOLON)
	case '*':
		return l.emit(token.STAR)
	case '!':
		if l.match('=') {
			return l.emit(token.BANG_EQUAL)
		}
		return l.emit(token.BANG)
	case '=':
		if l.match('=') {
			return l.emit(token.EQUAL_EQUAL)
		}
		return l.emit(token.EQUAL)
	case '<':
		if l.match('=') {
			return l.emit(token.LESS_EQUAL)
		}
		return l.emit(token.LESS)
	case '>':
		if l.match('=') {
			return l.emit(token.GREATER_EQUAL)
		}
		return l.emit(token.GREATER)
	case '/':
		switch {
		case l.match('/'):
			l.skipLineComment()
			return token.Token{}, false
		case l.match('*'):
			l.skipBlockComment()
			return token.Token{}, false
		default:
			return l.emit(token.SLASH)
		}
	case ' ', '\r', '\t':
		return token.Token{}, false
	case '\n':
		l.line++
		return token.Token{}, false
	case '"':
		return l.scanString()
	default:
		switch {
		case isDigit(c):
			return l.scanNumber()
		case isAlpha(c):
			return l.scanIdentifier()
		default:
			l.report.Report(l.line, "", "Unexpected character.")
			return token.Token{}, false
		}
	}
}

// skipLineComment consumes up to (but excluding) the next newline or EOF.
func (l *Lexer) skipLineComment() {
	for l.peek() != '\n' && !l.atEnd() {
		l.advance()
	}
}

// skipBlockComment consumes until the closing "*/" or EOF. It uses the
// corrected termination test spec.md §9 calls for — the source material's
// `peek() != '*' && peekNext() != '/'` terminates on the first `*` or `/`
// seen anywhere (a De Morgan error); the right test is the negation of the
// actual close sequence.
func (l *Lexer) skipBlockComment() {
	for !l.atEnd() {
		if l.peek() == '*' && l.peekNext() == '/' {
			l.advance()
			l.advance()
			return
		}
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}
	l.report.Report(l.line, "", "Unterminated comment.")
}

// scanString consumes a string literal. Embedded newlines are permitted and
// tracked; reaching EOF before the closing quote reports and discards the
// partial token, per spec.md §4.1.
func (l *Lexer) scanString() (token.Token, bool) {
	for l.peek() != '"' && !l.atEnd() {
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}
	if l.atEnd() {
		l.report.Report(l.line, "", "Unterminated string.")
		return token.Token{}, false
	}
	l.advance() // the closing quote
	value := l.source[l.start+1 : l.current-1]
	return l.emitLiteral(token.STRING, value)
}

// scanNumber consumes the maximal digit run, optionally followed by a
// fractional part iff a `.` is immediately followed by a digit — trailing
// dots and scientific notation are not part of the grammar (spec.md §4.1).
func (l *Lexer) scanNumber() (token.Token, bool) {
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance() // consume the '.'
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	value := parseFloat(l.lexeme())
	return l.emitLiteral(token.NUMBER, value)
}

// scanIdentifier consumes the maximal letter/digit/underscore run and
// classifies it as a keyword or a plain identifier via token.Keywords.
func (l *Lexer) scanIdentifier() (token.Token, bool) {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}
	text := l.lexeme()
	kind, isKeyword := token.Keywords[text]
	if !isKeyword {
		kind = token.IDENTIFIER
	}
	return l.emit(kind)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
