/*
File    : glox/objects/objects.go
*/

// Package objects defines the runtime value model: the handful of native Go
// types every Lox value is represented as (nil, bool, float64, string),
// plus the composite values the interpreter can't express as a bare Go
// primitive — classes, instances, and native (Go-implemented) functions.
// User-defined functions live in the sibling function package; Instance
// here depends on function.Function for method dispatch, which is why that
// dependency runs objects -> function and not the other way around.
package objects

import (
	"fmt"
	"strconv"

	"github.com/loxlang/glox/function"
	"github.com/loxlang/glox/lexer"
)

// IsTruthy applies Lox's truthiness rule: everything is truthy except nil
// and the boolean false. Zero, the empty string, and empty-looking values
// have no special status.
func IsTruthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if b, ok := value.(bool); ok {
		return b
	}
	return true
}

// IsEqual implements Lox's `==`: nil equals only nil, and there is no
// implicit conversion between types (a number is never equal to a string).
// float64's own == gives NaN != NaN for free.
func IsEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a == b
}

// Stringify renders a value the way `print` and the REPL do. Numbers that
// hold an integral value print without a trailing ".0", matching jlox's
// convention of backing every number with a double.
func Stringify(value interface{}) string {
	if value == nil {
		return "nil"
	}
	switch v := value.(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	case bool:
		return fmt.Sprintf("%t", v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// NativeFunction wraps a built-in callable implemented directly in Go (the
// single one the language ships is clock, in std/clock.go).
type NativeFunction struct {
	Name     string
	ArityVal int
	Fn       func(args []interface{}) (interface{}, error)
}

func (n *NativeFunction) Arity() int { return n.ArityVal }

func (n *NativeFunction) String() string {
	return fmt.Sprintf("<native fn %s>", n.Name)
}

// Class is a Lox class: a name, an optional superclass, and the methods
// declared directly on it (inherited methods are found by walking
// Superclass in FindMethod, not copied in).
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*function.Function
}

// FindMethod looks up name on this class, falling back to the superclass
// chain. A subclass method of the same name always wins because this class's
// own Methods map is checked first.
func (c *Class) FindMethod(name string) (*function.Function, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Arity is the arity of `init`, or 0 for a class with no initializer —
// calling a class invokes its constructor.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

func (c *Class) String() string {
	return c.Name
}

// Instance is a runtime object created by calling a Class.
type Instance struct {
	Class  *Class
	Fields map[string]interface{}
}

// NewInstance creates a field-less instance of class.
func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: make(map[string]interface{})}
}

// Get reads a property off the instance: fields shadow methods of the same
// name, and a found method is bound to this instance before being returned
// so a later call sees the right `this`.
func (i *Instance) Get(name lexer.Token) (interface{}, error) {
	if value, ok := i.Fields[name.Lexeme]; ok {
		return value, nil
	}
	if method, ok := i.Class.FindMethod(name.Lexeme); ok {
		return method.Bind(i), nil
	}
	return nil, fmt.Errorf("Undefined property '%s'.", name.Lexeme)
}

// Set assigns a field on the instance, creating it if absent. Lox classes
// have no field declarations; any name can be set on any instance.
func (i *Instance) Set(name lexer.Token, value interface{}) {
	i.Fields[name.Lexeme] = value
}

func (i *Instance) String() string {
	return i.Class.Name + " instance"
}
