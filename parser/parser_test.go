package parser

import (
	"testing"

	"github.com/loxlang/glox/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseSource(t *testing.T, src string) *Parser {
	t.Helper()
	toks, lexErrs := lexer.New(src).ScanTokens()
	require.Empty(t, lexErrs)
	return New(toks)
}

func TestParser_BinaryPrecedence(t *testing.T) {
	p := parseSource(t, "1 + 2 * 3;")
	stmts := p.Parse()
	require.False(t, p.HasErrors())
	require.Len(t, stmts, 1)

	exprStmt, ok := stmts[0].(*ExpressionStmt)
	require.True(t, ok)

	bin, ok := exprStmt.Expression.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, lexer.PLUS, bin.Operator.Type)

	right, ok := bin.Right.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, lexer.STAR, right.Operator.Type)
}

func TestParser_AssignmentRightAssociative(t *testing.T) {
	p := parseSource(t, "a = b = 1;")
	stmts := p.Parse()
	require.False(t, p.HasErrors())

	assign, ok := stmts[0].(*ExpressionStmt).Expression.(*AssignExpr)
	require.True(t, ok)
	assert.Equal(t, "a", assign.Name.Lexeme)

	inner, ok := assign.Value.(*AssignExpr)
	require.True(t, ok)
	assert.Equal(t, "b", inner.Name.Lexeme)
}

func TestParser_InvalidAssignmentTargetDoesNotResync(t *testing.T) {
	p := parseSource(t, "1 = 2; print 3;")
	stmts := p.Parse()
	require.True(t, p.HasErrors())
	// Parsing continued past the bad '=' without losing the print statement.
	require.Len(t, stmts, 2)
	_, ok := stmts[1].(*PrintStmt)
	assert.True(t, ok)
}

func TestParser_DanglingElseBindsToNearestIf(t *testing.T) {
	p := parseSource(t, "if (a) if (b) print 1; else print 2;")
	stmts := p.Parse()
	require.False(t, p.HasErrors())

	outer, ok := stmts[0].(*IfStmt)
	require.True(t, ok)
	inner, ok := outer.Then.(*IfStmt)
	require.True(t, ok)
	assert.NotNil(t, inner.Else)
	assert.Nil(t, outer.Else)
}

func TestParser_ForDesugarsToWhile(t *testing.T) {
	p := parseSource(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	stmts := p.Parse()
	require.False(t, p.HasErrors())

	block, ok := stmts[0].(*BlockStmt)
	require.True(t, ok)
	require.Len(t, block.Statements, 2)

	_, ok = block.Statements[0].(*VarStmt)
	assert.True(t, ok)

	while, ok := block.Statements[1].(*WhileStmt)
	require.True(t, ok)

	body, ok := while.Body.(*BlockStmt)
	require.True(t, ok)
	require.Len(t, body.Statements, 2)
}

func TestParser_ForOmittedConditionIsTrue(t *testing.T) {
	p := parseSource(t, "for (;;) print 1;")
	stmts := p.Parse()
	require.False(t, p.HasErrors())

	while, ok := stmts[0].(*WhileStmt)
	require.True(t, ok)
	lit, ok := while.Condition.(*LiteralExpr)
	require.True(t, ok)
	assert.Equal(t, true, lit.Value)
}

func TestParser_ClassWithSuperclassAndMethods(t *testing.T) {
	p := parseSource(t, `class B < A { hi() { print "hi"; } }`)
	stmts := p.Parse()
	require.False(t, p.HasErrors())

	class, ok := stmts[0].(*ClassStmt)
	require.True(t, ok)
	assert.Equal(t, "B", class.Name.Lexeme)
	require.NotNil(t, class.Superclass)
	assert.Equal(t, "A", class.Superclass.Name.Lexeme)
	require.Len(t, class.Methods, 1)
	assert.Equal(t, "hi", class.Methods[0].Name.Lexeme)
}

func TestParser_SyntaxErrorSynchronizesAtNextStatement(t *testing.T) {
	p := parseSource(t, "var = 1; var ok = 2;")
	stmts := p.Parse()
	require.True(t, p.HasErrors())

	// the malformed `var` decl is dropped but `ok` still parses.
	require.Len(t, stmts, 1)
	v, ok := stmts[0].(*VarStmt)
	require.True(t, ok)
	assert.Equal(t, "ok", v.Name.Lexeme)
}

func TestParser_CallAndGetChain(t *testing.T) {
	p := parseSource(t, "a(b)(c).d;")
	stmts := p.Parse()
	require.False(t, p.HasErrors())

	get, ok := stmts[0].(*ExpressionStmt).Expression.(*GetExpr)
	require.True(t, ok)
	assert.Equal(t, "d", get.Name.Lexeme)

	call2, ok := get.Object.(*CallExpr)
	require.True(t, ok)
	_, ok = call2.Callee.(*CallExpr)
	assert.True(t, ok)
}

func TestParser_SuperExpression(t *testing.T) {
	p := parseSource(t, "super.hi();")
	stmts := p.Parse()
	require.False(t, p.HasErrors())

	call, ok := stmts[0].(*ExpressionStmt).Expression.(*CallExpr)
	require.True(t, ok)
	super, ok := call.Callee.(*SuperExpr)
	require.True(t, ok)
	assert.Equal(t, "hi", super.Method.Lexeme)
}
