package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/loxlang/glox/lexer"
	"github.com/loxlang/glox/parser"
	"github.com/loxlang/glox/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run lexes, parses, resolves, and interprets src, capturing everything
// `print` wrote. It mirrors the pipeline cmd/glox/main.go drives.
func run(t *testing.T, src string) string {
	t.Helper()

	toks, lexErrs := lexer.New(src).ScanTokens()
	require.Empty(t, lexErrs)

	p := parser.New(toks)
	stmts := p.Parse()
	require.False(t, p.HasErrors())

	r := resolver.New()
	resolveErrs := r.Resolve(stmts)
	require.Empty(t, resolveErrs)

	interp := New(r.Locals())
	var buf bytes.Buffer
	interp.SetWriter(&buf)

	err := interp.Interpret(stmts)
	require.NoError(t, err)

	return buf.String()
}

func TestInterpreter_ArithmeticPrecedence(t *testing.T) {
	out := run(t, "print 1 + 2 * 3;")
	assert.Equal(t, "7\n", out)
}

func TestInterpreter_StringConcatenation(t *testing.T) {
	out := run(t, `print "foo" + "bar";`)
	assert.Equal(t, "foobar\n", out)
}

func TestInterpreter_IntegralNumberPrintsWithoutTrailingZero(t *testing.T) {
	out := run(t, "print 6 / 2;")
	assert.Equal(t, "3\n", out)
}

func TestInterpreter_BlockScopingShadowsOuterVariable(t *testing.T) {
	out := run(t, `
		var a = "outer";
		{
			var a = "inner";
			print a;
		}
		print a;
	`)
	assert.Equal(t, "inner\nouter\n", out)
}

func TestInterpreter_GlobalSelfInitializerReadsNilWithoutError(t *testing.T) {
	out := run(t, "var a = a; print a;")
	assert.Equal(t, "nil\n", out)
}

func TestInterpreter_ClosureCountsAcrossCalls(t *testing.T) {
	out := run(t, `
		fun makeCounter() {
			var i = 0;
			fun count() {
				i = i + 1;
				print i;
			}
			return count;
		}
		var counter = makeCounter();
		counter();
		counter();
	`)
	assert.Equal(t, "1\n2\n", out)
}

func TestInterpreter_LogicalOperatorsShortCircuitAndReturnOperand(t *testing.T) {
	out := run(t, `
		print "hi" or 2;
		print nil or "yes";
		print false and "unreached";
	`)
	assert.Equal(t, "hi\nyes\nfalse\n", out)
}

func TestInterpreter_IfElseAndWhile(t *testing.T) {
	out := run(t, `
		var i = 0;
		while (i < 3) {
			if (i == 1) print "one"; else print i;
			i = i + 1;
		}
	`)
	assert.Equal(t, "0\none\n2\n", out)
}

func TestInterpreter_ForDesugarsAndRuns(t *testing.T) {
	out := run(t, `
		var sum = 0;
		for (var i = 1; i <= 3; i = i + 1) sum = sum + i;
		print sum;
	`)
	assert.Equal(t, "6\n", out)
}

func TestInterpreter_ClassInitializerAndMethods(t *testing.T) {
	out := run(t, `
		class Greeter {
			init(name) {
				this.name = name;
			}
			greet() {
				print "hi " + this.name;
			}
		}
		var g = Greeter("sam");
		g.greet();
	`)
	assert.Equal(t, "hi sam\n", out)
}

func TestInterpreter_SuperDispatchesToParentMethod(t *testing.T) {
	out := run(t, `
		class A {
			hello() {
				print "A hello";
			}
		}
		class B < A {
			hello() {
				super.hello();
				print "B hello";
			}
		}
		B().hello();
	`)
	assert.Equal(t, "A hello\nB hello\n", out)
}

func TestInterpreter_InitializerAlwaysReturnsInstanceEvenWithBareReturn(t *testing.T) {
	out := run(t, `
		class Thing {
			init() {
				return;
			}
		}
		var t = Thing();
		print t;
	`)
	assert.Equal(t, "Thing instance\n", out)
}

func TestInterpreter_CallingNonCallableIsRuntimeError(t *testing.T) {
	toks, _ := lexer.New("var a = 1; a();").ScanTokens()
	p := parser.New(toks)
	stmts := p.Parse()
	require.False(t, p.HasErrors())

	r := resolver.New()
	require.Empty(t, r.Resolve(stmts))

	interp := New(r.Locals())
	interp.SetWriter(&bytes.Buffer{})
	err := interp.Interpret(stmts)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "Can only call functions and classes."))
}

func TestInterpreter_ClockIsBoundAndCallable(t *testing.T) {
	toks, _ := lexer.New("var x = clock();").ScanTokens()
	p := parser.New(toks)
	stmts := p.Parse()
	require.False(t, p.HasErrors())

	r := resolver.New()
	require.Empty(t, r.Resolve(stmts))

	interp := New(r.Locals())
	err := interp.Interpret(stmts)
	require.NoError(t, err)
}
