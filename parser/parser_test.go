/*
File    : golox/parser/parser_test.go
Derived : github.com/akashmaji946/go-mix (parser/parser_test.go)
*/
package parser

import (
	"testing"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexOK(t *testing.T, src string) []token.Token {
	t.Helper()
	toks, errs := lexer.Tokenize(src)
	require.Empty(t, errs)
	return toks
}

func TestParseExpressions_Precedence(t *testing.T) {
	toks := lexOK(t, "1 + 2 * 3;")
	exprs, err := ParseExpressions(toks)
	require.Nil(t, err)
	require.Len(t, exprs, 1)
	assert.Equal(t, "(+ 1.0 (* 2.0 3.0))", exprs[0].String())
}

func TestParseExpressions_Grouping(t *testing.T) {
	toks := lexOK(t, "(1 + 2) * 3;")
	exprs, err := ParseExpressions(toks)
	require.Nil(t, err)
	assert.Equal(t, "(* (group (+ 1.0 2.0)) 3.0)", exprs[0].String())
}

func TestParseExpressions_UnaryAndComparison(t *testing.T) {
	toks := lexOK(t, "!true == false;")
	exprs, err := ParseExpressions(toks)
	require.Nil(t, err)
	assert.Equal(t, "(== (! true) false)", exprs[0].String())
}

func TestParseExpressions_MissingSemicolon(t *testing.T) {
	toks := lexOK(t, "1 + 2")
	_, err := ParseExpressions(toks)
	require.NotNil(t, err)
	assert.Equal(t, ExpectSemicolon, err.Kind)
}

func TestParseExpressions_MissingRightParen(t *testing.T) {
	toks := lexOK(t, "(1 + 2;")
	_, err := ParseExpressions(toks)
	require.NotNil(t, err)
	assert.Equal(t, ExpectRightParen, err.Kind)
}

func TestParseProgram_VarAndPrint(t *testing.T) {
	toks := lexOK(t, `var a = 1; print a;`)
	stmts, err := ParseProgram(toks)
	require.Nil(t, err)
	require.Len(t, stmts, 2)
	v, ok := stmts[0].(*ast.VarStmt)
	require.True(t, ok)
	assert.Equal(t, "a", v.Name)
	_, ok = stmts[1].(*ast.PrintStmt)
	assert.True(t, ok)
}

func TestParseProgram_IfElse(t *testing.T) {
	toks := lexOK(t, `if (a > 0) { print "pos"; } else { print "neg"; }`)
	stmts, err := ParseProgram(toks)
	require.Nil(t, err)
	require.Len(t, stmts, 1)
	ifs, ok := stmts[0].(*ast.IfStmt)
	require.True(t, ok)
	assert.NotNil(t, ifs.Then)
	assert.NotNil(t, ifs.Else)
}

func TestParseProgram_While(t *testing.T) {
	toks := lexOK(t, `while (a < 10) { a = a + 1; }`)
	stmts, err := ParseProgram(toks)
	require.Nil(t, err)
	_, ok := stmts[0].(*ast.WhileStmt)
	assert.True(t, ok)
}

func TestParseProgram_ForDesugarsToForStmt(t *testing.T) {
	toks := lexOK(t, `for (var i = 0; i < 10; i = i + 1) { print i; }`)
	stmts, err := ParseProgram(toks)
	require.Nil(t, err)
	f, ok := stmts[0].(*ast.ForStmt)
	require.True(t, ok)
	assert.NotNil(t, f.Init)
	assert.NotNil(t, f.Cond)
	assert.NotNil(t, f.Post)
}

func TestParseProgram_FnAndReturn(t *testing.T) {
	toks := lexOK(t, `fun add(a, b) { return a + b; }`)
	stmts, err := ParseProgram(toks)
	require.Nil(t, err)
	fn, ok := stmts[0].(*ast.FnStmt)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, []string{"a", "b"}, fn.Params)
	require.Len(t, fn.Body.Stmts, 1)
	_, ok = fn.Body.Stmts[0].(*ast.ReturnStmt)
	assert.True(t, ok)
}

func TestParseProgram_CallExpression(t *testing.T) {
	toks := lexOK(t, `add(1, 2);`)
	stmts, err := ParseProgram(toks)
	require.Nil(t, err)
	es, ok := stmts[0].(*ast.ExprStmt)
	require.True(t, ok)
	call, ok := es.Expr.(*ast.Call)
	require.True(t, ok)
	assert.Equal(t, "add", call.Callee)
	assert.Len(t, call.Args, 2)
}

func TestParseProgram_InvalidAssignmentTarget(t *testing.T) {
	toks := lexOK(t, `1 = 2;`)
	_, err := ParseProgram(toks)
	require.NotNil(t, err)
	assert.Equal(t, InvalidAssignmentTarget, err.Kind)
}

func TestParseProgram_AssignmentIsRightAssociative(t *testing.T) {
	toks := lexOK(t, `a = b = 3;`)
	stmts, err := ParseProgram(toks)
	require.Nil(t, err)
	es := stmts[0].(*ast.ExprStmt)
	outer, ok := es.Expr.(*ast.Assignment)
	require.True(t, ok)
	assert.Equal(t, "a", outer.Target)
	inner, ok := outer.Value.(*ast.Assignment)
	require.True(t, ok)
	assert.Equal(t, "b", inner.Target)
}

func TestParseProgram_LogicalAndOr(t *testing.T) {
	toks := lexOK(t, `a and b or c;`)
	stmts, err := ParseProgram(toks)
	require.Nil(t, err)
	es := stmts[0].(*ast.ExprStmt)
	top, ok := es.Expr.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, ast.OpOr, top.Op)
	left, ok := top.Left.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, ast.OpAnd, left.Op)
}
