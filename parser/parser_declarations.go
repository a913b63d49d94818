/*
File: glox/parser/parser_declarations.go
*/
package parser

import "github.com/loxlang/glox/lexer"

// declaration parses one top-level-or-block item: a class, function, or
// variable declaration, falling through to a plain statement otherwise. A
// syntax error anywhere below this point unwinds (via panic) back up to
// here, where it is caught and the parser resynchronizes before continuing
// with the next declaration — this is what lets a single Parse() surface
// more than one error.
func (p *Parser) declaration() (stmt Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*ParseError); ok {
				p.synchronize()
				stmt = nil
				return
			}
			panic(r)
		}
	}()

	switch {
	case p.match(lexer.CLASS):
		return p.classDeclaration()
	case p.match(lexer.FUN):
		return p.function("function")
	case p.match(lexer.VAR):
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

// classDeclaration parses `class Name (< Super)? { method* }`. The
// superclass, if present, is parsed as a plain variable-use expression —
// the grammar does not give superclasses special syntax beyond that.
func (p *Parser) classDeclaration() Stmt {
	name := p.consume(lexer.IDENTIFIER, "Expect class name.")

	var superclass *VariableExpr
	if p.match(lexer.LESS) {
		superName := p.consume(lexer.IDENTIFIER, "Expect superclass name.")
		superclass = &VariableExpr{Name: superName}
	}

	p.consume(lexer.LEFT_BRACE, "Expect '{' before class body.")

	var methods []*FunctionStmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		methods = append(methods, p.function("method"))
	}

	p.consume(lexer.RIGHT_BRACE, "Expect '}' after class body.")

	return &ClassStmt{Name: name, Superclass: superclass, Methods: methods}
}

// function parses a function declaration or a class method (kind is
// "function" or "method", used only in error messages); the `fun` keyword
// itself has already been consumed by the caller for "function", while
// methods never have one.
func (p *Parser) function(kind string) *FunctionStmt {
	name := p.consume(lexer.IDENTIFIER, "Expect "+kind+" name.")
	p.consume(lexer.LEFT_PAREN, "Expect '(' after "+kind+" name.")

	var params []lexer.Token
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= 255 {
				p.errorAt(p.peek(), "Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(lexer.IDENTIFIER, "Expect parameter name."))
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after parameters.")

	p.consume(lexer.LEFT_BRACE, "Expect '{' before "+kind+" body.")
	body := p.block()

	return &FunctionStmt{Name: name, Params: params, Body: body}
}

// varDeclaration parses `var name (= expr)? ;`.
func (p *Parser) varDeclaration() Stmt {
	name := p.consume(lexer.IDENTIFIER, "Expect variable name.")

	var initializer Expr
	if p.match(lexer.EQUAL) {
		initializer = p.expression()
	}

	p.consume(lexer.SEMICOLON, "Expect ';' after variable declaration.")
	return &VarStmt{Name: name, Initializer: initializer}
}
