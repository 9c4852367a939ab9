/*
File    : golox/ast/expr.go
Derived : github.com/akashmaji946/go-mix (parser/node.go) and
          _examples/conneroisu-gix/internal/types/ast.go (node shape)
*/

// Package ast defines the expression and statement node vocabulary shared
// by the parser and the evaluator. Tokens are not embedded in AST nodes —
// only the source Line a node needs for runtime diagnostics is carried
// forward.
package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Expr is any expression node. The marker method keeps Expr distinct from
// Stmt at compile time, the same separation go-mix's node.go draws
// between ExpressionNode and StatementNode.
type Expr interface {
	exprNode()
	// String renders the node in the canonical prefix form the `parse`
	// command prints.
	String() string
}

// BinaryOp enumerates the binary operators: arithmetic, comparison,
// equality, and the short-circuiting logical operators (And/Or are
// parsed as Binary rather than a dedicated node, even though their
// evaluation short-circuits — see interp's evalLogical).
type BinaryOp string

const (
	OpAdd          BinaryOp = "+"
	OpSub          BinaryOp = "-"
	OpMul          BinaryOp = "*"
	OpDiv          BinaryOp = "/"
	OpEqual        BinaryOp = "=="
	OpNotEqual     BinaryOp = "!="
	OpLess         BinaryOp = "<"
	OpLessEqual    BinaryOp = "<="
	OpGreater      BinaryOp = ">"
	OpGreaterEqual BinaryOp = ">="
	OpAnd          BinaryOp = "and"
	OpOr           BinaryOp = "or"
)

// UnaryOp enumerates the unary operators.
type UnaryOp string

const (
	OpNegate UnaryOp = "-"
	OpNot    UnaryOp = "!"
)

// NumberLit is a numeric literal, e.g. 3.14.
type NumberLit struct {
	Value float64
}

func (*NumberLit) exprNode() {}
func (n *NumberLit) String() string {
	if n.Value == float64(int64(n.Value)) {
		return strconv.FormatFloat(n.Value, 'f', 1, 64)
	}
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// StringLit is a string literal, stored without its surrounding quotes.
type StringLit struct {
	Value string
}

func (*StringLit) exprNode()        {}
func (s *StringLit) String() string { return s.Value }

// BoolLit is the `true`/`false` literal.
type BoolLit struct {
	Value bool
}

func (*BoolLit) exprNode()        {}
func (b *BoolLit) String() string { return strconv.FormatBool(b.Value) }

// NilLit is the `nil` literal.
type NilLit struct{}

func (*NilLit) exprNode()      {}
func (*NilLit) String() string { return "nil" }

// Grouping is a parenthesized sub-expression, `( expr )`.
type Grouping struct {
	Expr Expr
}

func (*Grouping) exprNode()        {}
func (g *Grouping) String() string { return fmt.Sprintf("(group %s)", g.Expr.String()) }

// Identifier is a bare name reference, evaluated by looking it up in the
// current environment.
type Identifier struct {
	Name string
	Line int
}

func (*Identifier) exprNode()        {}
func (i *Identifier) String() string { return i.Name }

// Call invokes a named function (or the built-in table) with evaluated
// arguments. Calls are scoped to a bare callee name, not an arbitrary
// callee expression — there are no first-class call targets other than a
// name already bound to a Function symbol.
type Call struct {
	Callee string
	Args   []Expr
	Line   int
}

func (*Call) exprNode() {}
func (c *Call) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", c.Callee, strings.Join(parts, ", "))
}

// Unary applies a prefix operator to a single operand.
type Unary struct {
	Op      UnaryOp
	Operand Expr
	Line    int
}

func (*Unary) exprNode() {}
func (u *Unary) String() string {
	return fmt.Sprintf("(%s %s)", u.Op, u.Operand.String())
}

// Binary applies an infix operator to two operands.
type Binary struct {
	Left  Expr
	Op    BinaryOp
	Right Expr
	Line  int
}

func (*Binary) exprNode() {}
func (b *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Op, b.Left.String(), b.Right.String())
}

// Assignment assigns Value to the variable named Target, yielding the
// assigned value. Only an Identifier is a legal assignment target — the
// parser rejects anything else with InvalidAssignmentTarget before an
// Assignment node is ever built.
type Assignment struct {
	Target string
	Value  Expr
	Line   int
}

func (*Assignment) exprNode() {}
func (a *Assignment) String() string {
	return fmt.Sprintf("(= %s %s)", a.Target, a.Value.String())
}
