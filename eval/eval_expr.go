/*
File    : glox/eval/eval_expr.go
*/
package eval

import (
	"github.com/loxlang/glox/lexer"
	"github.com/loxlang/glox/objects"
	"github.com/loxlang/glox/parser"
)

func (i *Interpreter) VisitLiteralExpr(e *parser.LiteralExpr) {
	i.value = e.Value
}

func (i *Interpreter) VisitGroupingExpr(e *parser.GroupingExpr) {
	i.value, i.err = i.evaluate(e.Expression)
}

func (i *Interpreter) VisitUnaryExpr(e *parser.UnaryExpr) {
	right, err := i.evaluate(e.Right)
	if err != nil {
		i.err = err
		return
	}

	switch e.Operator.Type {
	case lexer.MINUS:
		n, ok := right.(float64)
		if !ok {
			i.err = &RuntimeError{Token: e.Operator, Message: "Operand must be a number."}
			return
		}
		i.value = -n
	case lexer.BANG:
		i.value = !objects.IsTruthy(right)
	}
}

func (i *Interpreter) VisitBinaryExpr(e *parser.BinaryExpr) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		i.err = err
		return
	}
	right, err := i.evaluate(e.Right)
	if err != nil {
		i.err = err
		return
	}

	switch e.Operator.Type {
	case lexer.PLUS:
		if ln, lok := left.(float64); lok {
			if rn, rok := right.(float64); rok {
				i.value = ln + rn
				return
			}
		}
		if ls, lok := left.(string); lok {
			if rs, rok := right.(string); rok {
				i.value = ls + rs
				return
			}
		}
		i.err = &RuntimeError{Token: e.Operator, Message: "Operands must be two numbers or two strings."}
	case lexer.MINUS:
		ln, rn, ok := i.numberOperands(e.Operator, left, right)
		if !ok {
			return
		}
		i.value = ln - rn
	case lexer.STAR:
		ln, rn, ok := i.numberOperands(e.Operator, left, right)
		if !ok {
			return
		}
		i.value = ln * rn
	case lexer.SLASH:
		ln, rn, ok := i.numberOperands(e.Operator, left, right)
		if !ok {
			return
		}
		i.value = ln / rn
	case lexer.GREATER:
		ln, rn, ok := i.numberOperands(e.Operator, left, right)
		if !ok {
			return
		}
		i.value = ln > rn
	case lexer.GREATER_EQUAL:
		ln, rn, ok := i.numberOperands(e.Operator, left, right)
		if !ok {
			return
		}
		i.value = ln >= rn
	case lexer.LESS:
		ln, rn, ok := i.numberOperands(e.Operator, left, right)
		if !ok {
			return
		}
		i.value = ln < rn
	case lexer.LESS_EQUAL:
		ln, rn, ok := i.numberOperands(e.Operator, left, right)
		if !ok {
			return
		}
		i.value = ln <= rn
	case lexer.BANG_EQUAL:
		i.value = !objects.IsEqual(left, right)
	case lexer.EQUAL_EQUAL:
		i.value = objects.IsEqual(left, right)
	}
}

// numberOperands checks that both operands are float64, setting a
// RuntimeError on i and returning ok=false if not.
func (i *Interpreter) numberOperands(operator lexer.Token, left, right interface{}) (float64, float64, bool) {
	ln, lok := left.(float64)
	rn, rok := right.(float64)
	if !lok || !rok {
		i.err = &RuntimeError{Token: operator, Message: "Operands must be numbers."}
		return 0, 0, false
	}
	return ln, rn, true
}

func (i *Interpreter) VisitLogicalExpr(e *parser.LogicalExpr) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		i.err = err
		return
	}

	if e.Operator.Type == lexer.OR {
		if objects.IsTruthy(left) {
			i.value = left
			return
		}
	} else {
		if !objects.IsTruthy(left) {
			i.value = left
			return
		}
	}
	i.value, i.err = i.evaluate(e.Right)
}

func (i *Interpreter) VisitVariableExpr(e *parser.VariableExpr) {
	i.value, i.err = i.lookUpVariable(e.Name, e)
}

func (i *Interpreter) VisitAssignExpr(e *parser.AssignExpr) {
	value, err := i.evaluate(e.Value)
	if err != nil {
		i.err = err
		return
	}

	if distance, ok := i.locals[e]; ok {
		i.environment.AssignAt(distance, e.Name.Lexeme, value)
	} else if err := i.Globals.Assign(e.Name.Lexeme, value); err != nil {
		i.err = &RuntimeError{Token: e.Name, Message: err.Error()}
		return
	}
	i.value = value
}

func (i *Interpreter) VisitCallExpr(e *parser.CallExpr) {
	callee, err := i.evaluate(e.Callee)
	if err != nil {
		i.err = err
		return
	}

	args := make([]interface{}, len(e.Args))
	for idx, argExpr := range e.Args {
		arg, err := i.evaluate(argExpr)
		if err != nil {
			i.err = err
			return
		}
		args[idx] = arg
	}

	i.value, i.err = i.callValue(e.Paren, callee, args)
}

func (i *Interpreter) VisitGetExpr(e *parser.GetExpr) {
	object, err := i.evaluate(e.Object)
	if err != nil {
		i.err = err
		return
	}

	instance, ok := object.(*objects.Instance)
	if !ok {
		i.err = &RuntimeError{Token: e.Name, Message: "Only instances have properties."}
		return
	}

	value, getErr := instance.Get(e.Name)
	if getErr != nil {
		i.err = &RuntimeError{Token: e.Name, Message: getErr.Error()}
		return
	}
	i.value = value
}

func (i *Interpreter) VisitSetExpr(e *parser.SetExpr) {
	object, err := i.evaluate(e.Object)
	if err != nil {
		i.err = err
		return
	}

	instance, ok := object.(*objects.Instance)
	if !ok {
		i.err = &RuntimeError{Token: e.Name, Message: "Only instances have fields."}
		return
	}

	value, err := i.evaluate(e.Value)
	if err != nil {
		i.err = err
		return
	}

	instance.Set(e.Name, value)
	i.value = value
}

func (i *Interpreter) VisitThisExpr(e *parser.ThisExpr) {
	i.value, i.err = i.lookUpVariable(e.Keyword, e)
}

// VisitSuperExpr resolves the method on the statically-known superclass (at
// depth recorded for the `super` expression itself) but binds it to the
// dynamically-known `this` (one scope nearer, since the resolver always
// pushes the `this` scope directly inside the `super` scope).
func (i *Interpreter) VisitSuperExpr(e *parser.SuperExpr) {
	distance := i.locals[e]
	superclass, _ := i.environment.GetAt(distance, "super").(*objects.Class)
	instance := i.environment.GetAt(distance-1, "this")

	method, ok := superclass.FindMethod(e.Method.Lexeme)
	if !ok {
		i.err = &RuntimeError{Token: e.Method, Message: "Undefined property '" + e.Method.Lexeme + "'."}
		return
	}
	i.value = method.Bind(instance)
}
