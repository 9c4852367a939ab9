/*
File    : golox/interp/interp_test.go
Derived : github.com/akashmaji946/go-mix (eval/evaluator_test.go)
*/
package interp

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runSource(t *testing.T, src string) (string, *RuntimeError) {
	t.Helper()
	toks, lexErrs := lexer.Tokenize(src)
	require.Empty(t, lexErrs)
	stmts, perr := parser.ParseProgram(toks)
	require.Nil(t, perr)

	var buf bytes.Buffer
	in := New(&buf)
	err := in.Run(stmts)
	return buf.String(), err
}

func TestRun_ArithmeticAndPrint(t *testing.T) {
	out, err := runSource(t, `print 1 + 2 * 3;`)
	require.Nil(t, err)
	assert.Equal(t, "7\n", out)
}

func TestRun_StringConcatenation(t *testing.T) {
	out, err := runSource(t, `print "foo" + "bar";`)
	require.Nil(t, err)
	assert.Equal(t, "foobar\n", out)
}

func TestRun_MixedAddOperandsIsRuntimeError(t *testing.T) {
	_, err := runSource(t, `print "foo" + 1;`)
	require.NotNil(t, err)
	assert.Contains(t, err.Message, "Operands must be two numbers or two strings.")
}

func TestRun_DivisionOperandMustBeNumber(t *testing.T) {
	_, err := runSource(t, `print "foo" / 2;`)
	require.NotNil(t, err)
	assert.Contains(t, err.Message, "Operands must be numbers.")
}

func TestRun_VarAssignmentAndScoping(t *testing.T) {
	out, err := runSource(t, `
		var a = 1;
		{
			var a = 2;
			print a;
		}
		print a;
	`)
	require.Nil(t, err)
	assert.Equal(t, "2\n1\n", out)
}

func TestRun_UndefinedVariable(t *testing.T) {
	_, err := runSource(t, `print x;`)
	require.NotNil(t, err)
	assert.Contains(t, err.Message, "Undefined variable 'x'.")
}

func TestRun_IfElse(t *testing.T) {
	out, err := runSource(t, `
		if (1 < 2) { print "yes"; } else { print "no"; }
	`)
	require.Nil(t, err)
	assert.Equal(t, "yes\n", out)
}

func TestRun_WhileLoop(t *testing.T) {
	out, err := runSource(t, `
		var i = 0;
		while (i < 3) {
			print i;
			i = i + 1;
		}
	`)
	require.Nil(t, err)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestRun_ForLoop(t *testing.T) {
	out, err := runSource(t, `
		for (var i = 0; i < 3; i = i + 1) {
			print i;
		}
	`)
	require.Nil(t, err)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestRun_FunctionCallAndReturn(t *testing.T) {
	out, err := runSource(t, `
		fun add(a, b) {
			return a + b;
		}
		print add(2, 3);
	`)
	require.Nil(t, err)
	assert.Equal(t, "5\n", out)
}

func TestRun_ClosureCapturesLiveEnvironment(t *testing.T) {
	out, err := runSource(t, `
		fun makeCounter() {
			var count = 0;
			fun increment() {
				count = count + 1;
				print count;
			}
			return increment;
		}
		var counter = makeCounter();
		counter();
		counter();
		counter();
	`)
	require.Nil(t, err)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestRun_ArityMismatch(t *testing.T) {
	_, err := runSource(t, `
		fun add(a, b) { return a + b; }
		add(1);
	`)
	require.NotNil(t, err)
	assert.Contains(t, err.Message, "Expected 2 arguments but got 1.")
}

func TestRun_TopLevelReturnIsRuntimeError(t *testing.T) {
	_, err := runSource(t, `return 1;`)
	require.NotNil(t, err)
	assert.Contains(t, err.Message, "Can't return from top-level code.")
}

func TestRun_LogicalOperatorsReturnOperandValue(t *testing.T) {
	out, err := runSource(t, `
		print nil or "default";
		print "first" and "second";
	`)
	require.Nil(t, err)
	assert.Equal(t, "default\nsecond\n", out)
}

func TestRun_RecursiveFunction(t *testing.T) {
	out, err := runSource(t, `
		fun fib(n) {
			if (n < 2) { return n; }
			return fib(n - 1) + fib(n - 2);
		}
		print fib(10);
	`)
	require.Nil(t, err)
	assert.Equal(t, "55\n", out)
}
