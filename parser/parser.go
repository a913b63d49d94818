/*
File: glox/parser/parser.go
*/
package parser

import (
	"fmt"

	"github.com/loxlang/glox/lexer"
)

// Parser is a predictive, one-token-lookahead recursive-descent parser. It
// never panics out to its caller: a syntax error is recorded in Errors and
// parsing resynchronizes at the next likely statement boundary (see
// synchronize), so a single run can surface more than one mistake.
type Parser struct {
	tokens  []lexer.Token
	current int
	errors  []error
}

// New creates a Parser over a complete, EOF-terminated token stream.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// ParseError is a syntax error tied to the token where it was detected.
type ParseError struct {
	Token   lexer.Token
	Message string
}

func (e *ParseError) Error() string {
	if e.Token.Type == lexer.EOF {
		return fmt.Sprintf("[line %d] Error at end: %s", e.Token.Line, e.Message)
	}
	return fmt.Sprintf("[line %d] Error at '%s': %s", e.Token.Line, e.Token.Lexeme, e.Message)
}

// Errors returns every syntax error collected during Parse.
func (p *Parser) Errors() []error {
	return p.errors
}

// HasErrors reports whether any syntax error was recorded.
func (p *Parser) HasErrors() bool {
	return len(p.errors) > 0
}

// Parse consumes the entire token stream and returns the program as a list
// of top-level declarations. Check HasErrors afterwards: per spec, a
// program with any syntax error must not be executed even though Parse
// itself always returns a (partial) statement list.
func (p *Parser) Parse() []Stmt {
	var stmts []Stmt
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

// --- token stream primitives ----------------------------------------------

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.EOF
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(t lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

// match advances and returns true if the current token has any of the given
// types, otherwise it leaves the position unchanged.
func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// consume requires the current token to have type t, advancing past it; if
// it does not, a parse error is recorded (and panicked, to be caught by the
// nearest declaration-level recover) carrying message.
func (p *Parser) consume(t lexer.TokenType, message string) lexer.Token {
	if p.check(t) {
		return p.advance()
	}
	panic(p.errorAt(p.peek(), message))
}

// errorAt records a parse error without unwinding, and returns it so
// callers that want to panic immediately can do `panic(p.errorAt(...))`.
func (p *Parser) errorAt(tok lexer.Token, message string) *ParseError {
	err := &ParseError{Token: tok, Message: message}
	p.errors = append(p.errors, err)
	return err
}

// synchronize discards tokens after a syntax error until it reaches a
// plausible statement boundary: just past a ';', or just before a keyword
// that starts a new declaration/statement. This lets one parse run surface
// multiple independent errors instead of stopping at the first.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == lexer.SEMICOLON {
			return
		}
		switch p.peek().Type {
		case lexer.CLASS, lexer.FUN, lexer.VAR, lexer.FOR,
			lexer.IF, lexer.WHILE, lexer.PRINT, lexer.RETURN:
			return
		}
		p.advance()
	}
}
