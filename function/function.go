/*
File    : glox/function/function.go
*/

// Package function represents user-defined (as opposed to native) Lox
// callables. It deliberately holds no Call method: invoking a function
// means executing its Body in a fresh environment, which is the
// interpreter's job (see eval.Interpreter.callFunction) exactly the way the
// teacher codebase's evaluator reaches into Function's Params/Body/Scp
// fields directly rather than going through a polymorphic dispatch method.
package function

import (
	"fmt"

	"github.com/loxlang/glox/environment"
	"github.com/loxlang/glox/parser"
)

// Function is a closure: a function declaration paired with the
// environment active at the point it was declared, so it can see variables
// from enclosing scopes even after those scopes have returned.
type Function struct {
	Declaration   *parser.FunctionStmt
	Closure       *environment.Environment
	IsInitializer bool
}

// New wraps a function (or method) declaration with the environment it
// closes over.
func New(declaration *parser.FunctionStmt, closure *environment.Environment, isInitializer bool) *Function {
	return &Function{Declaration: declaration, Closure: closure, IsInitializer: isInitializer}
}

// Arity is the number of declared parameters.
func (f *Function) Arity() int {
	return len(f.Declaration.Params)
}

// Bind returns a copy of f whose closure is extended with `this` bound to
// instance — this is what turns a class's raw method into something
// callable as `instance.method()` with the right receiver in scope.
// instance is kept as interface{} (rather than *objects.Instance) so this
// package never needs to import objects, which avoids an import cycle
// since objects.Instance.Get returns bound Functions.
func (f *Function) Bind(instance interface{}) *Function {
	env := environment.NewEnclosed(f.Closure)
	env.Define("this", instance)
	return New(f.Declaration, env, f.IsInitializer)
}

func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.Declaration.Name.Lexeme)
}
