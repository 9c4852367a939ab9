/*
File    : golox/parser/parser.go
Derived : github.com/akashmaji946/go-mix (parser/parser.go, parser_expressions.go,
          parser_statements.go, parser_controls.go, parser_functions.go,
          parser_precedence.go) and
          _examples/conneroisu-gix/pkg/parser/parser.go (cur/peek lookahead shape)
*/

// Package parser implements a recursive-descent parser: one token of
// lookahead, precedence encoded directly in the call chain (equality ->
// comparison -> addition -> multiplication -> unary -> call -> primary)
// rather than a Pratt operator table, since the grammar's precedence
// tiers are fixed and small. A parse error stops parsing immediately,
// unlike the lexer's total-scan contract.
package parser

import (
	"fmt"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/token"
)

// maxExprDepth bounds recursive-descent nesting (parenthesized groups,
// chained unary operators) so that pathological input produces a parse
// error instead of overflowing the host goroutine stack.
const maxExprDepth = 500

// Error is a parse error bound to the 1-based source line it was
// detected on. Kind records which concrete shape this is (ExpectExpression,
// ExpectSemicolon, ExpectRightParen, ExpectRightBrace, ExpectIdentifier,
// InvalidAssignmentTarget), for callers that want to branch on it, while
// Error() renders the same "[line N] Error: <message>" form the lexer's
// errors use.
type Error struct {
	Kind    ErrorKind
	Line    int
	Message string
}

// ErrorKind enumerates the parse error taxonomy.
type ErrorKind string

const (
	ExpectExpression        ErrorKind = "ExpectExpression"
	ExpectSemicolon         ErrorKind = "ExpectSemicolon"
	ExpectRightParen        ErrorKind = "ExpectRightParen"
	ExpectRightBrace        ErrorKind = "ExpectRightBrace"
	ExpectIdentifier        ErrorKind = "ExpectIdentifier"
	InvalidAssignmentTarget ErrorKind = "InvalidAssignmentTarget"
	ExprTooDeep             ErrorKind = "ExprTooDeep"
)

func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

// Parser holds the token stream and cursor, plus the single error that
// stopped parsing — a parse error stops parsing immediately with that
// error reported.
type Parser struct {
	tokens []token.Token
	pos    int
	err    *Error
	depth  int
}

// New creates a Parser over an already-lexed token stream.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) cur() token.Token  { return p.tokens[p.pos] }
func (p *Parser) atEnd() bool       { return p.cur().Kind == token.EOF }
func (p *Parser) advance() token.Token {
	tk := p.cur()
	if !p.atEnd() {
		p.pos++
	}
	return tk
}

func (p *Parser) check(kind token.Kind) bool {
	return !p.atEnd() && p.cur().Kind == kind
}

func (p *Parser) matchKind(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) fail(kind ErrorKind, line int, format string, a ...interface{}) {
	if p.err == nil {
		p.err = &Error{Kind: kind, Line: line, Message: fmt.Sprintf(format, a...)}
	}
}

// failed reports whether an error has already stopped this parse.
func (p *Parser) failed() bool { return p.err != nil }

func (p *Parser) expect(kind token.Kind, errKind ErrorKind, msg string) (token.Token, bool) {
	if p.check(kind) {
		return p.advance(), true
	}
	p.fail(errKind, p.cur().Line, msg)
	return token.Token{}, false
}

// ParseExpressions parses the `parse` command's input: a list of
// top-level expressions, each terminated by ';'. Parsing stops at the
// first error.
func ParseExpressions(tokens []token.Token) ([]ast.Expr, *Error) {
	p := New(tokens)
	var exprs []ast.Expr
	for !p.atEnd() && !p.failed() {
		e := p.expression()
		if p.failed() {
			break
		}
		if _, ok := p.expect(token.Semicolon, ExpectSemicolon, "Expect ';' after expression."); !ok {
			break
		}
		exprs = append(exprs, e)
	}
	if p.failed() {
		return nil, p.err
	}
	return exprs, nil
}

// ParseProgram parses the `run` command's (and each REPL line's) input:
// a sequence of statements (`program := statement*`).
func ParseProgram(tokens []token.Token) ([]ast.Stmt, *Error) {
	p := New(tokens)
	var stmts []ast.Stmt
	for !p.atEnd() && !p.failed() {
		s := p.statement()
		if p.failed() {
			break
		}
		stmts = append(stmts, s)
	}
	if p.failed() {
		return nil, p.err
	}
	return stmts, nil
}

// ---- statements ----

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.matchKind(token.Print):
		return p.printStmt()
	case p.matchKind(token.If):
		return p.ifStmt()
	case p.matchKind(token.Var):
		return p.varDecl()
	case p.matchKind(token.Return):
		return p.returnStmt()
	case p.matchKind(token.While):
		return p.whileStmt()
	case p.matchKind(token.For):
		return p.forStmt()
	case p.matchKind(token.Fun):
		return p.fnDecl()
	case p.check(token.LeftBrace):
		p.advance()
		return p.block()
	default:
		return p.exprStmt()
	}
}

func (p *Parser) printStmt() ast.Stmt {
	line := p.tokens[p.pos-1].Line
	e := p.expression()
	if p.failed() {
		return nil
	}
	p.expect(token.Semicolon, ExpectSemicolon, "Expect ';' after value.")
	return &ast.PrintStmt{Expr: e, Line: line}
}

func (p *Parser) varDecl() ast.Stmt {
	name, ok := p.expect(token.Identifier, ExpectIdentifier, "Expect variable name.")
	if !ok {
		return nil
	}
	var init ast.Expr
	if p.matchKind(token.Equal) {
		init = p.expression()
		if p.failed() {
			return nil
		}
	}
	p.expect(token.Semicolon, ExpectSemicolon, "Expect ';' after variable declaration.")
	return &ast.VarStmt{Name: name.Lexeme, Init: init}
}

func (p *Parser) block() ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RightBrace) && !p.atEnd() && !p.failed() {
		stmts = append(stmts, p.statement())
	}
	p.expect(token.RightBrace, ExpectRightBrace, "Expect '}' after block.")
	return &ast.BlockStmt{Stmts: stmts}
}

func (p *Parser) ifStmt() ast.Stmt {
	p.expect(token.LeftParen, ExpectRightParen, "Expect '(' after 'if'.")
	cond := p.expression()
	if p.failed() {
		return nil
	}
	p.expect(token.RightParen, ExpectRightParen, "Expect ')' after if condition.")
	then := p.statement()
	if p.failed() {
		return nil
	}
	var els ast.Stmt
	if p.matchKind(token.Else) {
		els = p.statement()
	}
	return &ast.IfStmt{Cond: cond, Then: then, Else: els}
}

func (p *Parser) whileStmt() ast.Stmt {
	p.expect(token.LeftParen, ExpectRightParen, "Expect '(' after 'while'.")
	cond := p.expression()
	if p.failed() {
		return nil
	}
	p.expect(token.RightParen, ExpectRightParen, "Expect ')' after condition.")
	body := p.statement()
	return &ast.WhileStmt{Cond: cond, Body: body}
}

// forStmt builds an ast.ForStmt rather than a While wrapper, per the doc
// comment on ast.ForStmt: the three optional clauses are carried through
// to the executor's dedicated for-loop case (interp's execFor), which
// runs the initializer in the enclosing scope.
func (p *Parser) forStmt() ast.Stmt {
	p.expect(token.LeftParen, ExpectRightParen, "Expect '(' after 'for'.")

	var init ast.Stmt
	switch {
	case p.matchKind(token.Semicolon):
		init = nil
	case p.matchKind(token.Var):
		init = p.varDecl()
	default:
		init = p.exprStmt()
	}
	if p.failed() {
		return nil
	}

	var cond ast.Expr
	if !p.check(token.Semicolon) {
		cond = p.expression()
		if p.failed() {
			return nil
		}
	}
	p.expect(token.Semicolon, ExpectSemicolon, "Expect ';' after loop condition.")

	var post ast.Expr
	if !p.check(token.RightParen) {
		post = p.expression()
		if p.failed() {
			return nil
		}
	}
	p.expect(token.RightParen, ExpectRightParen, "Expect ')' after for clauses.")

	body := p.statement()
	return &ast.ForStmt{Init: init, Cond: cond, Post: post, Body: body}
}

func (p *Parser) fnDecl() ast.Stmt {
	line := p.tokens[p.pos-1].Line
	name, ok := p.expect(token.Identifier, ExpectIdentifier, "Expect function name.")
	if !ok {
		return nil
	}
	p.expect(token.LeftParen, ExpectRightParen, "Expect '(' after function name.")
	var params []string
	if !p.check(token.RightParen) {
		for {
			pn, ok := p.expect(token.Identifier, ExpectIdentifier, "Expect parameter name.")
			if !ok {
				return nil
			}
			params = append(params, pn.Lexeme)
			if !p.matchKind(token.Comma) {
				break
			}
		}
	}
	p.expect(token.RightParen, ExpectRightParen, "Expect ')' after parameters.")
	p.expect(token.LeftBrace, ExpectRightBrace, "Expect '{' before function body.")
	if p.failed() {
		return nil
	}
	body := p.block().(*ast.BlockStmt)
	return &ast.FnStmt{Name: name.Lexeme, Params: params, Body: body, Line: line}
}

func (p *Parser) returnStmt() ast.Stmt {
	line := p.tokens[p.pos-1].Line
	var value ast.Expr
	if !p.check(token.Semicolon) {
		value = p.expression()
		if p.failed() {
			return nil
		}
	}
	p.expect(token.Semicolon, ExpectSemicolon, "Expect ';' after return value.")
	return &ast.ReturnStmt{Value: value, Line: line}
}

func (p *Parser) exprStmt() ast.Stmt {
	e := p.expression()
	if p.failed() {
		return nil
	}
	p.expect(token.Semicolon, ExpectSemicolon, "Expect ';' after expression.")
	return &ast.ExprStmt{Expr: e}
}

// ---- expressions, lowest to highest precedence ----

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

func (p *Parser) assignment() ast.Expr {
	expr := p.logicOr()
	if p.failed() {
		return expr
	}
	if p.matchKind(token.Equal) {
		eqLine := p.tokens[p.pos-1].Line
		value := p.assignment()
		if p.failed() {
			return nil
		}
		id, ok := expr.(*ast.Identifier)
		if !ok {
			p.fail(InvalidAssignmentTarget, eqLine, "Invalid assignment target.")
			return nil
		}
		return &ast.Assignment{Target: id.Name, Value: value, Line: eqLine}
	}
	return expr
}

func (p *Parser) logicOr() ast.Expr {
	expr := p.logicAnd()
	for !p.failed() && p.matchKind(token.Or) {
		line := p.tokens[p.pos-1].Line
		right := p.logicAnd()
		expr = &ast.Binary{Left: expr, Op: ast.OpOr, Right: right, Line: line}
	}
	return expr
}

func (p *Parser) logicAnd() ast.Expr {
	expr := p.equality()
	for !p.failed() && p.matchKind(token.And) {
		line := p.tokens[p.pos-1].Line
		right := p.equality()
		expr = &ast.Binary{Left: expr, Op: ast.OpAnd, Right: right, Line: line}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for !p.failed() && p.matchKind(token.EqualEqual, token.BangEqual) {
		op, line := binaryOpOf(p.tokens[p.pos-1])
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Op: op, Right: right, Line: line}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.addition()
	for !p.failed() && p.matchKind(token.Less, token.LessEqual, token.Greater, token.GreaterEqual) {
		op, line := binaryOpOf(p.tokens[p.pos-1])
		right := p.addition()
		expr = &ast.Binary{Left: expr, Op: op, Right: right, Line: line}
	}
	return expr
}

func (p *Parser) addition() ast.Expr {
	expr := p.multiplication()
	for !p.failed() && p.matchKind(token.Plus, token.Minus) {
		op, line := binaryOpOf(p.tokens[p.pos-1])
		right := p.multiplication()
		expr = &ast.Binary{Left: expr, Op: op, Right: right, Line: line}
	}
	return expr
}

func (p *Parser) multiplication() ast.Expr {
	expr := p.unary()
	for !p.failed() && p.matchKind(token.Star, token.Slash) {
		op, line := binaryOpOf(p.tokens[p.pos-1])
		right := p.unary()
		expr = &ast.Binary{Left: expr, Op: op, Right: right, Line: line}
	}
	return expr
}

func binaryOpOf(tk token.Token) (ast.BinaryOp, int) {
	switch tk.Kind {
	case token.Plus:
		return ast.OpAdd, tk.Line
	case token.Minus:
		return ast.OpSub, tk.Line
	case token.Star:
		return ast.OpMul, tk.Line
	case token.Slash:
		return ast.OpDiv, tk.Line
	case token.EqualEqual:
		return ast.OpEqual, tk.Line
	case token.BangEqual:
		return ast.OpNotEqual, tk.Line
	case token.Less:
		return ast.OpLess, tk.Line
	case token.LessEqual:
		return ast.OpLessEqual, tk.Line
	case token.Greater:
		return ast.OpGreater, tk.Line
	case token.GreaterEqual:
		return ast.OpGreaterEqual, tk.Line
	default:
		return "", tk.Line
	}
}

func (p *Parser) unary() ast.Expr {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxExprDepth {
		p.fail(ExprTooDeep, p.cur().Line, "Expression nested too deeply.")
		return nil
	}
	if p.matchKind(token.Bang, token.Minus) {
		tk := p.tokens[p.pos-1]
		op := ast.OpNot
		if tk.Kind == token.Minus {
			op = ast.OpNegate
		}
		operand := p.unary()
		return &ast.Unary{Op: op, Operand: operand, Line: tk.Line}
	}
	return p.call()
}

func (p *Parser) call() ast.Expr {
	expr := p.primary()
	if p.failed() {
		return expr
	}
	if p.check(token.LeftParen) {
		id, ok := expr.(*ast.Identifier)
		if !ok {
			p.fail(ExpectExpression, p.cur().Line, "Can only call named functions.")
			return nil
		}
		p.advance()
		var args []ast.Expr
		if !p.check(token.RightParen) {
			for {
				args = append(args, p.expression())
				if p.failed() {
					return nil
				}
				if !p.matchKind(token.Comma) {
					break
				}
			}
		}
		p.expect(token.RightParen, ExpectRightParen, "Expect ')' after arguments.")
		return &ast.Call{Callee: id.Name, Args: args, Line: id.Line}
	}
	return expr
}

func (p *Parser) primary() ast.Expr {
	tk := p.cur()
	switch tk.Kind {
	case token.Number:
		p.advance()
		return &ast.NumberLit{Value: tk.Literal.(float64)}
	case token.String:
		p.advance()
		return &ast.StringLit{Value: tk.Literal.(string)}
	case token.True:
		p.advance()
		return &ast.BoolLit{Value: true}
	case token.False:
		p.advance()
		return &ast.BoolLit{Value: false}
	case token.Nil:
		p.advance()
		return &ast.NilLit{}
	case token.Identifier:
		p.advance()
		return &ast.Identifier{Name: tk.Lexeme, Line: tk.Line}
	case token.LeftParen:
		p.advance()
		inner := p.expression()
		if p.failed() {
			return nil
		}
		p.expect(token.RightParen, ExpectRightParen, "Expect ')' after expression.")
		return &ast.Grouping{Expr: inner}
	default:
		p.fail(ExpectExpression, tk.Line, "Expect expression.")
		return nil
	}
}
