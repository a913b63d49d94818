/*
File    : glox/eval/interpreter.go
*/

// Package eval walks the resolved AST and executes it. Interpreter holds
// the two pieces of mutable state a tree-walk needs — Globals (the
// outermost environment, which never goes away) and environment (whichever
// scope is currently active, swapped in and out as blocks and calls are
// entered and left) — plus the resolver's locals map, consulted instead of
// re-deriving scope depth by walking the live chain.
//
// ExprVisitor and StmtVisitor methods are void, mirroring the teacher
// codebase's NodeVisitor convention: each Visit method stashes its result
// on the Interpreter itself (value/err for expressions, err alone for
// statements), and evaluate/execute extract it once Accept returns.
package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/loxlang/glox/environment"
	"github.com/loxlang/glox/lexer"
	"github.com/loxlang/glox/parser"
	"github.com/loxlang/glox/std"
)

// RuntimeError is any failure detected while a program is running —
// calling a non-callable value, a wrong-arity call, a binary operator
// applied to mismatched types, reading an undefined global, and so on. It
// is always tied to the token nearest the offending operation so the
// driver can report a line.
type RuntimeError struct {
	Token   lexer.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Line)
}

// Interpreter executes a resolved program.
type Interpreter struct {
	Globals     *environment.Environment
	environment *environment.Environment
	locals      map[parser.Expr]int
	Writer      io.Writer

	value interface{}
	err   error
}

// New creates an Interpreter whose global scope has `clock` already bound.
// locals is the depth map produced by resolver.Resolver.Resolve; it must
// come from resolving the exact statements later passed to Interpret.
func New(locals map[parser.Expr]int) *Interpreter {
	globals := environment.New()
	globals.Define("clock", std.Clock())
	return &Interpreter{
		Globals:     globals,
		environment: globals,
		locals:      locals,
		Writer:      os.Stdout,
	}
}

// SetWriter redirects `print` output, e.g. to a buffer under test.
func (i *Interpreter) SetWriter(w io.Writer) {
	i.Writer = w
}

// Interpret executes a complete program's top-level statements in order,
// stopping at the first RuntimeError.
func (i *Interpreter) Interpret(stmts []parser.Stmt) error {
	for _, stmt := range stmts {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) execute(s parser.Stmt) error {
	i.err = nil
	s.Accept(i)
	return i.err
}

func (i *Interpreter) evaluate(e parser.Expr) (interface{}, error) {
	i.value = nil
	i.err = nil
	e.Accept(i)
	return i.value, i.err
}

// executeBlock runs statements in env, restoring the previous environment
// before returning (even on error) so a failed block doesn't leak its
// scope into whatever runs next.
func (i *Interpreter) executeBlock(stmts []parser.Stmt, env *environment.Environment) error {
	previous := i.environment
	i.environment = env
	defer func() { i.environment = previous }()

	for _, stmt := range stmts {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// lookUpVariable resolves name either by the fixed depth the resolver
// recorded for expr, or — if expr isn't in the map, meaning it's a global —
// dynamically by name in Globals.
func (i *Interpreter) lookUpVariable(name lexer.Token, expr parser.Expr) (interface{}, error) {
	if distance, ok := i.locals[expr]; ok {
		return i.environment.GetAt(distance, name.Lexeme), nil
	}
	value, err := i.Globals.Get(name.Lexeme)
	if err != nil {
		return nil, &RuntimeError{Token: name, Message: err.Error()}
	}
	return value, nil
}
