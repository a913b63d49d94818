/*
File: glox/resolver/resolver.go
*/

// Package resolver performs a single static pass over the parsed AST,
// walking lexical scopes the same way the interpreter's environment chain
// will at runtime, and recording — for every variable-use expression — how
// many scopes out from its use site the declaring scope sits. The
// interpreter consults this depth map instead of re-deriving it by walking
// the live environment chain, which is both faster and, more importantly,
// the only way to make closures over shadowed names resolve correctly.
//
// This is also where every purely static Lox error lives: redeclaration in
// a local scope, reading a variable in its own initializer, `return`
// outside a function, `this` outside a class, `super` outside a subclass,
// returning a value from an initializer, and a class inheriting from
// itself.
package resolver

import (
	"fmt"

	"github.com/loxlang/glox/lexer"
	"github.com/loxlang/glox/parser"
)

// functionType tracks what kind of function body is currently being
// resolved, so `return` can be validated against it.
type functionType int

const (
	functionNone functionType = iota
	functionFunction
	functionInitializer
	functionMethod
)

// classType tracks whether the resolver is currently inside a class body,
// and whether that class has a superclass, so `this`/`super` can be
// validated against it.
type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// ResolveError is a static (compile-time) error tied to the token nearest
// the offending construct.
type ResolveError struct {
	Token   lexer.Token
	Message string
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("[line %d] Error at '%s': %s", e.Token.Line, e.Token.Lexeme, e.Message)
}

// Resolver walks the AST maintaining a stack of local scopes; the global
// scope is implicit and never pushed onto this stack.
type Resolver struct {
	scopes []map[string]bool
	locals map[parser.Expr]int

	currentFunction functionType
	currentClass    classType

	errors []error
}

// New creates a Resolver ready to resolve a complete program.
func New() *Resolver {
	return &Resolver{locals: make(map[parser.Expr]int)}
}

// Resolve walks every top-level statement and returns the collected static
// errors (empty if the program is sound). Locals() returns the depth map
// regardless of whether errors were found, but the interpreter must not run
// a program for which Resolve returned any error.
func (r *Resolver) Resolve(stmts []parser.Stmt) []error {
	r.errors = nil
	r.resolveStmts(stmts)
	return r.errors
}

// Locals returns the resolved scope-depth map: for each VariableExpr,
// AssignExpr, ThisExpr, or SuperExpr the interpreter evaluates, a depth
// recorded here means "walk exactly this many enclosing environment links";
// a name absent from this map is a global, looked up dynamically by name.
func (r *Resolver) Locals() map[parser.Expr]int {
	return r.locals
}

func (r *Resolver) error(tok lexer.Token, message string) {
	r.errors = append(r.errors, &ResolveError{Token: tok, Message: message})
}

// --- scope stack helpers ---------------------------------------------------

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare marks name as present-but-not-yet-initialized in the innermost
// scope. In the (implicit) global scope this is a no-op — top-level
// declarations are resolved dynamically, which is what lets top-level
// functions call each other regardless of declaration order.
func (r *Resolver) declare(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.error(name, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

// define marks a previously declared name as fully initialized, allowing
// its own initializer expression to not see it (see VisitVariableExpr's
// read-in-own-initializer check) while later siblings in the same scope
// can.
func (r *Resolver) define(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal searches the scope stack innermost-out for name, recording
// the hop count in r.locals when found. No match means the name is a
// global; nothing is recorded and the interpreter will look it up
// dynamically at runtime.
func (r *Resolver) resolveLocal(expr parser.Expr, name lexer.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}
