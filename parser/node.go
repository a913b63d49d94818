/*
File: glox/parser/node.go
*/

// Package parser turns a token stream into an AST (this file) via a
// recursive-descent parser (parser.go and its *_statements.go /
// *_expressions.go / *_declarations.go companions).
package parser

import "github.com/loxlang/glox/lexer"

// Expr is the common interface for every expression node. Every concrete
// expression type is a distinct pointer type, so an Expr value's own
// identity (not its contents) can be used as a map key — this is exactly
// what the resolver needs: it must tell apart two syntactically identical
// uses of the same name at different points in the program.
type Expr interface {
	exprNode()
	Accept(v ExprVisitor)
}

// Stmt is the common interface for every statement node.
type Stmt interface {
	stmtNode()
	Accept(v StmtVisitor)
}

// ExprVisitor implements one case per expression shape. Visit methods are
// void: the visitor (typically the interpreter or resolver) records
// whatever result it needs on itself, and a small wrapper method
// (Interpreter.evaluate, Resolver.resolveExpr) extracts it after Accept
// returns. This mirrors the zero-return NodeVisitor convention used
// throughout this codebase's AST-walking passes.
type ExprVisitor interface {
	VisitLiteralExpr(e *LiteralExpr)
	VisitGroupingExpr(e *GroupingExpr)
	VisitUnaryExpr(e *UnaryExpr)
	VisitBinaryExpr(e *BinaryExpr)
	VisitLogicalExpr(e *LogicalExpr)
	VisitVariableExpr(e *VariableExpr)
	VisitAssignExpr(e *AssignExpr)
	VisitCallExpr(e *CallExpr)
	VisitGetExpr(e *GetExpr)
	VisitSetExpr(e *SetExpr)
	VisitThisExpr(e *ThisExpr)
	VisitSuperExpr(e *SuperExpr)
}

// StmtVisitor implements one case per statement shape.
type StmtVisitor interface {
	VisitExpressionStmt(s *ExpressionStmt)
	VisitPrintStmt(s *PrintStmt)
	VisitVarStmt(s *VarStmt)
	VisitBlockStmt(s *BlockStmt)
	VisitIfStmt(s *IfStmt)
	VisitWhileStmt(s *WhileStmt)
	VisitFunctionStmt(s *FunctionStmt)
	VisitReturnStmt(s *ReturnStmt)
	VisitClassStmt(s *ClassStmt)
}

// --- Expressions ---------------------------------------------------------

// LiteralExpr is a nil, boolean, number, or string constant. Value holds the
// corresponding native Go type (nil, bool, float64, string).
type LiteralExpr struct {
	Value interface{}
}

func (*LiteralExpr) exprNode()                    {}
func (e *LiteralExpr) Accept(v ExprVisitor)        { v.VisitLiteralExpr(e) }

// GroupingExpr is a parenthesized expression. It holds no token of its own;
// keeping it as a separate node is what makes a parenthesized target such
// as `(a) = 1` an invalid assignment target.
type GroupingExpr struct {
	Expression Expr
}

func (*GroupingExpr) exprNode()             {}
func (e *GroupingExpr) Accept(v ExprVisitor) { v.VisitGroupingExpr(e) }

// UnaryExpr is a prefix operator: `!expr` or `-expr`.
type UnaryExpr struct {
	Operator lexer.Token
	Right    Expr
}

func (*UnaryExpr) exprNode()             {}
func (e *UnaryExpr) Accept(v ExprVisitor) { v.VisitUnaryExpr(e) }

// BinaryExpr is an arithmetic or comparison operator with eager (non
// short-circuiting) operand evaluation.
type BinaryExpr struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (*BinaryExpr) exprNode()             {}
func (e *BinaryExpr) Accept(v ExprVisitor) { v.VisitBinaryExpr(e) }

// LogicalExpr is `and`/`or`. Kept distinct from BinaryExpr because its
// right operand is evaluated conditionally (short-circuit), and because it
// yields an operand value rather than a coerced boolean.
type LogicalExpr struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (*LogicalExpr) exprNode()             {}
func (e *LogicalExpr) Accept(v ExprVisitor) { v.VisitLogicalExpr(e) }

// VariableExpr reads the value bound to Name. The resolver annotates each
// VariableExpr's scope depth out of band, keyed by the expression's own
// pointer identity (see resolver.Resolver.locals).
type VariableExpr struct {
	Name lexer.Token
}

func (*VariableExpr) exprNode()             {}
func (e *VariableExpr) Accept(v ExprVisitor) { v.VisitVariableExpr(e) }

// AssignExpr assigns Value to the variable Name, which must already be
// bound somewhere in the enclosing scope chain.
type AssignExpr struct {
	Name  lexer.Token
	Value Expr
}

func (*AssignExpr) exprNode()             {}
func (e *AssignExpr) Accept(v ExprVisitor) { v.VisitAssignExpr(e) }

// CallExpr invokes Callee with Args. Paren is the closing ")" token, kept so
// runtime errors (wrong arity, non-callable callee) can report a line.
type CallExpr struct {
	Callee Expr
	Paren  lexer.Token
	Args   []Expr
}

func (*CallExpr) exprNode()             {}
func (e *CallExpr) Accept(v ExprVisitor) { v.VisitCallExpr(e) }

// GetExpr reads a property (field or method) off an instance: `obj.Name`.
type GetExpr struct {
	Object Expr
	Name   lexer.Token
}

func (*GetExpr) exprNode()             {}
func (e *GetExpr) Accept(v ExprVisitor) { v.VisitGetExpr(e) }

// SetExpr assigns a field on an instance: `obj.Name = Value`.
type SetExpr struct {
	Object Expr
	Name   lexer.Token
	Value  Expr
}

func (*SetExpr) exprNode()             {}
func (e *SetExpr) Accept(v ExprVisitor) { v.VisitSetExpr(e) }

// ThisExpr is the `this` keyword used inside a method body.
type ThisExpr struct {
	Keyword lexer.Token
}

func (*ThisExpr) exprNode()             {}
func (e *ThisExpr) Accept(v ExprVisitor) { v.VisitThisExpr(e) }

// SuperExpr is `super.Method` used inside a subclass method body.
type SuperExpr struct {
	Keyword lexer.Token
	Method  lexer.Token
}

func (*SuperExpr) exprNode()             {}
func (e *SuperExpr) Accept(v ExprVisitor) { v.VisitSuperExpr(e) }

// --- Statements ------------------------------------------------------------

// ExpressionStmt evaluates Expression for its side effects and discards the
// result.
type ExpressionStmt struct {
	Expression Expr
}

func (*ExpressionStmt) stmtNode()             {}
func (s *ExpressionStmt) Accept(v StmtVisitor) { v.VisitExpressionStmt(s) }

// PrintStmt evaluates Expression and writes its string form followed by a
// newline.
type PrintStmt struct {
	Expression Expr
}

func (*PrintStmt) stmtNode()             {}
func (s *PrintStmt) Accept(v StmtVisitor) { v.VisitPrintStmt(s) }

// VarStmt declares Name in the current scope, bound to Initializer's value
// (or nil if Initializer is nil).
type VarStmt struct {
	Name        lexer.Token
	Initializer Expr // nil if no `= expr` was given
}

func (*VarStmt) stmtNode()             {}
func (s *VarStmt) Accept(v StmtVisitor) { v.VisitVarStmt(s) }

// BlockStmt introduces a new lexical scope around Statements.
type BlockStmt struct {
	Statements []Stmt
}

func (*BlockStmt) stmtNode()             {}
func (s *BlockStmt) Accept(v StmtVisitor) { v.VisitBlockStmt(s) }

// IfStmt is `if (Condition) Then else Else`; Else is nil when absent.
type IfStmt struct {
	Condition  Expr
	Then       Stmt
	Else       Stmt
}

func (*IfStmt) stmtNode()             {}
func (s *IfStmt) Accept(v StmtVisitor) { v.VisitIfStmt(s) }

// WhileStmt is `while (Condition) Body`. `for` loops are desugared into
// this plus a BlockStmt by the parser (see parser_statements.go).
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (*WhileStmt) stmtNode()             {}
func (s *WhileStmt) Accept(v StmtVisitor) { v.VisitWhileStmt(s) }

// FunctionStmt declares a named function with Params and a Body block. The
// same shape is reused for methods inside a ClassStmt (method declarations
// omit the `fun` keyword but parse identically otherwise).
type FunctionStmt struct {
	Name   lexer.Token
	Params []lexer.Token
	Body   []Stmt
}

func (*FunctionStmt) stmtNode()             {}
func (s *FunctionStmt) Accept(v StmtVisitor) { v.VisitFunctionStmt(s) }

// ReturnStmt unwinds the current function call, yielding Value (or nil if
// Value is nil, i.e. a bare `return;`). Keyword is kept for error line
// numbers (e.g. "return outside function").
type ReturnStmt struct {
	Keyword lexer.Token
	Value   Expr
}

func (*ReturnStmt) stmtNode()             {}
func (s *ReturnStmt) Accept(v StmtVisitor) { v.VisitReturnStmt(s) }

// ClassStmt declares a class with an optional Superclass (parsed as a plain
// variable-use expression, resolved like any other name) and a list of
// method declarations.
type ClassStmt struct {
	Name       lexer.Token
	Superclass *VariableExpr // nil if there is no `< Super` clause
	Methods    []*FunctionStmt
}

func (*ClassStmt) stmtNode()             {}
func (s *ClassStmt) Accept(v StmtVisitor) { v.VisitClassStmt(s) }
