/*
File: glox/resolver/resolver_stmt.go
*/
package resolver

import "github.com/loxlang/glox/parser"

func (r *Resolver) resolveStmts(stmts []parser.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(s parser.Stmt) {
	s.Accept(r)
}

func (r *Resolver) resolveExpr(e parser.Expr) {
	e.Accept(r)
}

func (r *Resolver) VisitBlockStmt(s *parser.BlockStmt) {
	r.beginScope()
	r.resolveStmts(s.Statements)
	r.endScope()
}

func (r *Resolver) VisitVarStmt(s *parser.VarStmt) {
	r.declare(s.Name)
	if s.Initializer != nil {
		r.resolveExpr(s.Initializer)
	}
	r.define(s.Name)
}

func (r *Resolver) VisitFunctionStmt(s *parser.FunctionStmt) {
	r.declare(s.Name)
	r.define(s.Name)
	r.resolveFunction(s, functionFunction)
}

// resolveFunction resolves a function or method body in its own scope, with
// each parameter declared and defined up front. currentFunction is saved
// and restored around the body so nested functions don't corrupt the
// enclosing function's `return` validation.
func (r *Resolver) resolveFunction(fn *parser.FunctionStmt, kind functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

func (r *Resolver) VisitExpressionStmt(s *parser.ExpressionStmt) {
	r.resolveExpr(s.Expression)
}

func (r *Resolver) VisitIfStmt(s *parser.IfStmt) {
	r.resolveExpr(s.Condition)
	r.resolveStmt(s.Then)
	if s.Else != nil {
		r.resolveStmt(s.Else)
	}
}

func (r *Resolver) VisitPrintStmt(s *parser.PrintStmt) {
	r.resolveExpr(s.Expression)
}

func (r *Resolver) VisitReturnStmt(s *parser.ReturnStmt) {
	if r.currentFunction == functionNone {
		r.error(s.Keyword, "Can't return from top-level code.")
	}
	if s.Value != nil {
		if r.currentFunction == functionInitializer {
			r.error(s.Keyword, "Can't return a value from an initializer.")
		}
		r.resolveExpr(s.Value)
	}
}

func (r *Resolver) VisitWhileStmt(s *parser.WhileStmt) {
	r.resolveExpr(s.Condition)
	r.resolveStmt(s.Body)
}

// VisitClassStmt resolves a class declaration: the class name itself, then
// (if present) the superclass expression — rejecting self-inheritance
// before that — then a `super` scope wrapping a `this` scope around every
// method body.
func (r *Resolver) VisitClassStmt(s *parser.ClassStmt) {
	enclosingClass := r.currentClass
	r.currentClass = classClass

	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.error(s.Superclass.Name, "A class can't inherit from itself.")
		}
		r.currentClass = classSubclass
		r.resolveExpr(s.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range s.Methods {
		kind := functionMethod
		if method.Name.Lexeme == "init" {
			kind = functionInitializer
		}
		r.resolveFunction(method, kind)
	}

	r.endScope()

	if s.Superclass != nil {
		r.endScope()
	}

	r.currentClass = enclosingClass
}
