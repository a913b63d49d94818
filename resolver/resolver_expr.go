/*
File: glox/resolver/resolver_expr.go
*/
package resolver

import "github.com/loxlang/glox/parser"

// VisitVariableExpr is where the "read a local variable in its own
// initializer" error is caught: if the innermost scope has the name
// declared but not yet defined, the use site must be the initializer
// expression that is in the middle of defining it.
func (r *Resolver) VisitVariableExpr(e *parser.VariableExpr) {
	if len(r.scopes) > 0 {
		if defined, declared := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; declared && !defined {
			r.error(e.Name, "Can't read local variable in its own initializer.")
		}
	}
	r.resolveLocal(e, e.Name)
}

func (r *Resolver) VisitAssignExpr(e *parser.AssignExpr) {
	r.resolveExpr(e.Value)
	r.resolveLocal(e, e.Name)
}

func (r *Resolver) VisitBinaryExpr(e *parser.BinaryExpr) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
}

func (r *Resolver) VisitLogicalExpr(e *parser.LogicalExpr) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
}

func (r *Resolver) VisitCallExpr(e *parser.CallExpr) {
	r.resolveExpr(e.Callee)
	for _, arg := range e.Args {
		r.resolveExpr(arg)
	}
}

func (r *Resolver) VisitGetExpr(e *parser.GetExpr) {
	// The property name is resolved dynamically at runtime; only the
	// object expression has lexical structure to resolve.
	r.resolveExpr(e.Object)
}

func (r *Resolver) VisitSetExpr(e *parser.SetExpr) {
	r.resolveExpr(e.Value)
	r.resolveExpr(e.Object)
}

func (r *Resolver) VisitGroupingExpr(e *parser.GroupingExpr) {
	r.resolveExpr(e.Expression)
}

func (r *Resolver) VisitLiteralExpr(e *parser.LiteralExpr) {
	// Nothing to resolve.
}

func (r *Resolver) VisitUnaryExpr(e *parser.UnaryExpr) {
	r.resolveExpr(e.Right)
}

func (r *Resolver) VisitThisExpr(e *parser.ThisExpr) {
	if r.currentClass == classNone {
		r.error(e.Keyword, "Can't use 'this' outside of a class.")
		return
	}
	r.resolveLocal(e, e.Keyword)
}

func (r *Resolver) VisitSuperExpr(e *parser.SuperExpr) {
	switch r.currentClass {
	case classNone:
		r.error(e.Keyword, "Can't use 'super' outside of a class.")
	case classClass:
		r.error(e.Keyword, "Can't use 'super' in a class with no superclass.")
	}
	r.resolveLocal(e, e.Keyword)
}
