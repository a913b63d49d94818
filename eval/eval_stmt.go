/*
File    : glox/eval/eval_stmt.go
*/
package eval

import (
	"fmt"

	"github.com/loxlang/glox/environment"
	"github.com/loxlang/glox/function"
	"github.com/loxlang/glox/objects"
	"github.com/loxlang/glox/parser"
)

func (i *Interpreter) VisitExpressionStmt(s *parser.ExpressionStmt) {
	_, i.err = i.evaluate(s.Expression)
}

func (i *Interpreter) VisitPrintStmt(s *parser.PrintStmt) {
	value, err := i.evaluate(s.Expression)
	if err != nil {
		i.err = err
		return
	}
	fmt.Fprintln(i.Writer, objects.Stringify(value))
}

// VisitVarStmt declares Name before evaluating Initializer, not after: a
// global `var a = a;` must see the not-yet-initialized `a` as nil rather
// than an undefined variable (the resolver only rejects this read inside a
// local scope — see the resolver's VisitVariableExpr own-initializer check — a global
// self-reference is legal and evaluates to nil). Mirrors VisitClassStmt's
// pre-declare-then-assign pattern below.
func (i *Interpreter) VisitVarStmt(s *parser.VarStmt) {
	i.environment.Define(s.Name.Lexeme, nil)

	if s.Initializer != nil {
		value, err := i.evaluate(s.Initializer)
		if err != nil {
			i.err = err
			return
		}
		i.environment.Define(s.Name.Lexeme, value)
	}
}

func (i *Interpreter) VisitBlockStmt(s *parser.BlockStmt) {
	i.err = i.executeBlock(s.Statements, environment.NewEnclosed(i.environment))
}

func (i *Interpreter) VisitIfStmt(s *parser.IfStmt) {
	cond, err := i.evaluate(s.Condition)
	if err != nil {
		i.err = err
		return
	}
	if objects.IsTruthy(cond) {
		i.err = i.execute(s.Then)
	} else if s.Else != nil {
		i.err = i.execute(s.Else)
	}
}

func (i *Interpreter) VisitWhileStmt(s *parser.WhileStmt) {
	for {
		cond, err := i.evaluate(s.Condition)
		if err != nil {
			i.err = err
			return
		}
		if !objects.IsTruthy(cond) {
			return
		}
		if err := i.execute(s.Body); err != nil {
			i.err = err
			return
		}
	}
}

func (i *Interpreter) VisitFunctionStmt(s *parser.FunctionStmt) {
	fn := function.New(s, i.environment, false)
	i.environment.Define(s.Name.Lexeme, fn)
}

// VisitReturnStmt unwinds the current function call by panicking with a
// returnSignal, caught at the call-frame boundary in callFunction. This is
// not an error: it's the ordinary exit path for every function call that
// didn't simply fall off the end of its body.
func (i *Interpreter) VisitReturnStmt(s *parser.ReturnStmt) {
	var value interface{}
	if s.Value != nil {
		v, err := i.evaluate(s.Value)
		if err != nil {
			i.err = err
			return
		}
		value = v
	}
	panic(&returnSignal{Value: value})
}

// VisitClassStmt evaluates a class declaration: resolve the (optional)
// superclass, push a `super` scope around method resolution when one is
// present, then build the Class value with every method closed over that
// environment.
func (i *Interpreter) VisitClassStmt(s *parser.ClassStmt) {
	var superclass *objects.Class
	if s.Superclass != nil {
		value, err := i.evaluate(s.Superclass)
		if err != nil {
			i.err = err
			return
		}
		sc, ok := value.(*objects.Class)
		if !ok {
			i.err = &RuntimeError{Token: s.Superclass.Name, Message: "Superclass must be a class."}
			return
		}
		superclass = sc
	}

	i.environment.Define(s.Name.Lexeme, nil)

	methodEnv := i.environment
	if s.Superclass != nil {
		methodEnv = environment.NewEnclosed(i.environment)
		methodEnv.Define("super", superclass)
	}

	methods := make(map[string]*function.Function, len(s.Methods))
	for _, method := range s.Methods {
		methods[method.Name.Lexeme] = function.New(method, methodEnv, method.Name.Lexeme == "init")
	}

	class := &objects.Class{Name: s.Name.Lexeme, Superclass: superclass, Methods: methods}
	i.err = i.environment.Assign(s.Name.Lexeme, class)
}
