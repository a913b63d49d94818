/*
File    : glox/eval/eval_call.go
*/
package eval

import (
	"fmt"

	"github.com/loxlang/glox/environment"
	"github.com/loxlang/glox/function"
	"github.com/loxlang/glox/lexer"
	"github.com/loxlang/glox/objects"
)

// returnSignal is the panic value VisitReturnStmt raises and callFunction
// recovers; it is control flow, never reported as an error.
type returnSignal struct {
	Value interface{}
}

// callValue dispatches a call expression's callee to whichever of the
// three callable shapes it turned out to be at runtime. There is no shared
// Callable interface across packages because a Function's Call would need
// to reach back into *Interpreter, and objects/function must not import
// eval — so the interpreter does the dispatch itself, the same way the
// teacher codebase's evalCallExpression type-switches on function.Function
// directly instead of calling through an interface.
func (i *Interpreter) callValue(paren lexer.Token, callee interface{}, args []interface{}) (interface{}, error) {
	switch c := callee.(type) {
	case *function.Function:
		if len(args) != c.Arity() {
			return nil, &RuntimeError{Token: paren, Message: fmt.Sprintf("Expected %d arguments but got %d.", c.Arity(), len(args))}
		}
		return i.callFunction(c, args)
	case *objects.Class:
		if len(args) != c.Arity() {
			return nil, &RuntimeError{Token: paren, Message: fmt.Sprintf("Expected %d arguments but got %d.", c.Arity(), len(args))}
		}
		return i.instantiate(c, args)
	case *objects.NativeFunction:
		if len(args) != c.Arity() {
			return nil, &RuntimeError{Token: paren, Message: fmt.Sprintf("Expected %d arguments but got %d.", c.Arity(), len(args))}
		}
		value, err := c.Fn(args)
		if err != nil {
			return nil, &RuntimeError{Token: paren, Message: err.Error()}
		}
		return value, nil
	default:
		return nil, &RuntimeError{Token: paren, Message: "Can only call functions and classes."}
	}
}

// callFunction executes fn's body in a fresh environment enclosed by its
// closure, with each parameter bound to the matching argument. A `return`
// inside the body panics with *returnSignal, recovered here; initializers
// (`init` methods) always yield `this` regardless of what the body
// returned, including when it fell off the end with no `return` at all.
func (i *Interpreter) callFunction(fn *function.Function, args []interface{}) (result interface{}, err error) {
	env := environment.NewEnclosed(fn.Closure)
	for idx, param := range fn.Declaration.Params {
		env.Define(param.Lexeme, args[idx])
	}

	defer func() {
		if r := recover(); r != nil {
			sig, ok := r.(*returnSignal)
			if !ok {
				panic(r)
			}
			if fn.IsInitializer {
				result = fn.Closure.GetAt(0, "this")
			} else {
				result = sig.Value
			}
			err = nil
		}
	}()

	if execErr := i.executeBlock(fn.Declaration.Body, env); execErr != nil {
		return nil, execErr
	}

	if fn.IsInitializer {
		return fn.Closure.GetAt(0, "this"), nil
	}
	return nil, nil
}

// instantiate creates a new Instance of class and, if it declares `init`,
// calls it with args — the constructor's return value is discarded; the
// freshly constructed instance is always what `ClassName(...)` yields.
func (i *Interpreter) instantiate(class *objects.Class, args []interface{}) (interface{}, error) {
	instance := objects.NewInstance(class)
	if init, ok := class.FindMethod("init"); ok {
		if _, err := i.callFunction(init.Bind(instance), args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}
