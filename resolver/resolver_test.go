package resolver

import (
	"testing"

	"github.com/loxlang/glox/lexer"
	"github.com/loxlang/glox/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveSource(t *testing.T, src string) (*Resolver, []parser.Stmt, []error) {
	t.Helper()
	toks, lexErrs := lexer.New(src).ScanTokens()
	require.Empty(t, lexErrs)
	p := parser.New(toks)
	stmts := p.Parse()
	require.False(t, p.HasErrors())

	r := New()
	errs := r.Resolve(stmts)
	return r, stmts, errs
}

func TestResolver_GlobalSelfInitializerIsAllowed(t *testing.T) {
	_, _, errs := resolveSource(t, "var a = a;")
	assert.Empty(t, errs)
}

func TestResolver_LocalSelfInitializerIsStaticError(t *testing.T) {
	_, _, errs := resolveSource(t, "{ var a = a; }")
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Error(), "own initializer")
}

func TestResolver_RedeclarationInLocalScopeIsError(t *testing.T) {
	_, _, errs := resolveSource(t, "{ var a = 1; var a = 2; }")
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Error(), "Already a variable")
}

func TestResolver_ReturnOutsideFunctionIsError(t *testing.T) {
	_, _, errs := resolveSource(t, "return 1;")
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Error(), "top-level code")
}

func TestResolver_ReturnValueFromInitializerIsError(t *testing.T) {
	_, _, errs := resolveSource(t, `class C { init() { return 1; } }`)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Error(), "initializer")
}

func TestResolver_ThisOutsideClassIsError(t *testing.T) {
	_, _, errs := resolveSource(t, "print this;")
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Error(), "'this'")
}

func TestResolver_SuperOutsideSubclassIsError(t *testing.T) {
	_, _, errs := resolveSource(t, `class A { hi() { return super.hi(); } }`)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Error(), "'super'")
}

func TestResolver_ClassInheritingFromItselfIsError(t *testing.T) {
	_, _, errs := resolveSource(t, `class A < A {}`)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Error(), "inherit from itself")
}

func TestResolver_DepthRecordedForShadowedBlockVariable(t *testing.T) {
	r, stmts, errs := resolveSource(t, "var a = 1; { var a = 2; print a; }")
	require.Empty(t, errs)

	block := stmts[1].(*parser.BlockStmt)
	printStmt := block.Statements[1].(*parser.PrintStmt)
	varExpr := printStmt.Expression.(*parser.VariableExpr)

	depth, ok := r.Locals()[varExpr]
	require.True(t, ok)
	assert.Equal(t, 0, depth)
}

func TestResolver_ClosureCapturesEnclosingFunctionScope(t *testing.T) {
	r, stmts, errs := resolveSource(t, `
		fun makeCounter() {
			var i = 0;
			fun count() {
				i = i + 1;
				print i;
			}
			return count;
		}
	`)
	require.Empty(t, errs)

	outer := stmts[0].(*parser.FunctionStmt)
	inner := outer.Body[1].(*parser.FunctionStmt)
	assignStmt := inner.Body[0].(*parser.ExpressionStmt)
	assign := assignStmt.Expression.(*parser.AssignExpr)

	depth, ok := r.Locals()[assign]
	require.True(t, ok)
	assert.Equal(t, 1, depth)
}
