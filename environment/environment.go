/*
File: glox/environment/environment.go
*/

// Package environment implements the variable-binding chain that backs
// lexical scoping at runtime: one global Environment plus one per block or
// function call, each linking to the Environment it was created inside.
//
// Lookups by name (globals, and any read the resolver couldn't tie to a
// fixed depth) walk the Enclosing chain outward. Lookups the resolver already
// resolved to a depth (see package resolver) go straight to the Environment
// that many links out via GetAt/AssignAt, skipping the name search entirely
// — this is what makes two different variables named the same thing in
// nested scopes resolve to the right binding even after the declaring block
// has returned (closures).
package environment

import "fmt"

// UndefinedVariableError reports a read or assignment to a name with no
// binding anywhere in the enclosing chain. It carries no line information —
// the caller (the interpreter) attaches that when it wraps this into a
// runtime error tied to the offending token.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("Undefined variable '%s'.", e.Name)
}

// Environment is one link in the lexical scope chain.
type Environment struct {
	values   map[string]interface{}
	Enclosing *Environment
}

// New creates a global environment with no enclosing scope.
func New() *Environment {
	return &Environment{values: make(map[string]interface{})}
}

// NewEnclosed creates a new scope nested directly inside enclosing, as when
// entering a block, a function call, or a method body.
func NewEnclosed(enclosing *Environment) *Environment {
	return &Environment{values: make(map[string]interface{}), Enclosing: enclosing}
}

// Define binds name to value in this environment, shadowing any binding of
// the same name in an enclosing scope. Redefining an existing name in the
// same environment (permitted at the top level, e.g. the REPL) simply
// overwrites it; the resolver is what rejects redeclaration inside a block.
func (e *Environment) Define(name string, value interface{}) {
	e.values[name] = value
}

// Get looks up name, walking outward through Enclosing until it is found or
// the chain is exhausted.
func (e *Environment) Get(name string) (interface{}, error) {
	if value, ok := e.values[name]; ok {
		return value, nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Get(name)
	}
	return nil, &UndefinedVariableError{Name: name}
}

// GetAt reads name from the environment exactly distance links out from e —
// the depth the resolver recorded for this use site. The name is assumed
// present there; resolution having succeeded is the guarantee.
func (e *Environment) GetAt(distance int, name string) interface{} {
	value, _ := e.ancestor(distance).values[name]
	return value
}

// Assign rebinds an existing name to value, walking outward through
// Enclosing. Unlike Define, it is an error to assign to a name that was
// never declared anywhere in the chain.
func (e *Environment) Assign(name string, value interface{}) error {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Assign(name, value)
	}
	return &UndefinedVariableError{Name: name}
}

// AssignAt rebinds name in the environment exactly distance links out from
// e, mirroring GetAt.
func (e *Environment) AssignAt(distance int, name string, value interface{}) {
	e.ancestor(distance).values[name] = value
}

// ancestor walks distance links out through Enclosing.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.Enclosing
	}
	return env
}
