/*
File    : golox/ast/stmt.go
Derived : github.com/akashmaji946/go-mix (parser/node.go, parser_statements.go)
*/
package ast

// Stmt is any statement node.
type Stmt interface {
	stmtNode()
}

// ExprStmt evaluates an expression and discards its value.
type ExprStmt struct {
	Expr Expr
}

func (*ExprStmt) stmtNode() {}

// PrintStmt evaluates an expression and writes its printed form followed
// by a newline.
type PrintStmt struct {
	Expr Expr
	Line int
}

func (*PrintStmt) stmtNode() {}

// VarStmt declares a variable, binding it to the evaluated Init
// expression (or Nil if Init is absent).
type VarStmt struct {
	Name string
	Init Expr // nil if no initializer was given
}

func (*VarStmt) stmtNode() {}

// BlockStmt executes its statements in a fresh child environment.
type BlockStmt struct {
	Stmts []Stmt
}

func (*BlockStmt) stmtNode() {}

// IfStmt executes Then when Cond is truthy, else Else (if present).
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt // nil if there is no else-branch
}

func (*IfStmt) stmtNode() {}

// WhileStmt repeats Body for as long as Cond evaluates truthy.
type WhileStmt struct {
	Cond Expr
	Body Stmt
}

func (*WhileStmt) stmtNode() {}

// ForStmt is kept by the parser as Init/Cond/Post pieces rather than a
// While wrapper: its Init runs in the enclosing scope, not a scope
// private to the loop — see interp's execFor.
type ForStmt struct {
	Init Stmt // nil, *VarStmt, or *ExprStmt
	Cond Expr // nil means "always true"
	Post Expr // nil if no increment clause
	Body Stmt
}

func (*ForStmt) stmtNode() {}

// FnStmt declares a named function, capturing the environment active at
// the point of declaration for closure semantics.
type FnStmt struct {
	Name   string
	Params []string
	Body   *BlockStmt
	Line   int
}

func (*FnStmt) stmtNode() {}

// ReturnStmt unwinds execution to the nearest enclosing call boundary
// with Value (Nil if Value is absent). At the top level this is a
// runtime error.
type ReturnStmt struct {
	Value Expr // nil means "return nil"
	Line  int
}

func (*ReturnStmt) stmtNode() {}
