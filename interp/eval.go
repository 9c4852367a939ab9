/*
File    : golox/interp/eval.go
Derived : github.com/akashmaji946/go-mix (eval_expressions.go, evaluator_expressions.go)
*/
package interp

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/callable"
	"github.com/akashmaji946/golox/environment"
	"github.com/akashmaji946/golox/value"
)

// EvalExpr evaluates e in env and returns its Value, or the first
// RuntimeError encountered.
func (in *Interp) EvalExpr(e ast.Expr, env *environment.Environment) (value.Value, *RuntimeError) {
	switch n := e.(type) {
	case *ast.NumberLit:
		return value.Number{Val: n.Value}, nil
	case *ast.StringLit:
		return value.String{Val: n.Value}, nil
	case *ast.BoolLit:
		return value.Boolean{Val: n.Value}, nil
	case *ast.NilLit:
		return value.NilValue, nil
	case *ast.Grouping:
		return in.EvalExpr(n.Expr, env)
	case *ast.Identifier:
		v, ok := env.Get(n.Name)
		if !ok {
			return nil, runtimeErr(n.Line, "Undefined variable '%s'.", n.Name)
		}
		return v, nil
	case *ast.Assignment:
		v, err := in.EvalExpr(n.Value, env)
		if err != nil {
			return nil, err
		}
		if !env.Assign(n.Target, v) {
			return nil, runtimeErr(n.Line, "Undefined variable '%s'.", n.Target)
		}
		return v, nil
	case *ast.Unary:
		return in.evalUnary(n, env)
	case *ast.Binary:
		return in.evalBinary(n, env)
	case *ast.Call:
		return in.evalCall(n, env)
	default:
		return nil, runtimeErr(0, "unknown expression type %T", e)
	}
}

func (in *Interp) evalUnary(n *ast.Unary, env *environment.Environment) (value.Value, *RuntimeError) {
	operand, err := in.EvalExpr(n.Operand, env)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case ast.OpNot:
		return value.Boolean{Val: !operand.Truthy()}, nil
	case ast.OpNegate:
		num, ok := operand.(value.Number)
		if !ok {
			return nil, runtimeErr(n.Line, "Operand must be a number.")
		}
		return value.Number{Val: -num.Val}, nil
	default:
		return nil, runtimeErr(n.Line, "unknown unary operator %q", n.Op)
	}
}

// evalBinary evaluates n.Left and (for every operator except the
// short-circuiting And/Or) n.Right, then applies Op. And/Or are parsed
// as ast.Binary rather than getting their own node, so their
// short-circuit evaluation is handled here rather than in a separate
// logical-expression case.
func (in *Interp) evalBinary(n *ast.Binary, env *environment.Environment) (value.Value, *RuntimeError) {
	if n.Op == ast.OpAnd || n.Op == ast.OpOr {
		return in.evalLogical(n, env)
	}

	left, err := in.EvalExpr(n.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := in.EvalExpr(n.Right, env)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case ast.OpEqual:
		return value.Boolean{Val: value.Equal(left, right)}, nil
	case ast.OpNotEqual:
		return value.Boolean{Val: !value.Equal(left, right)}, nil
	case ast.OpAdd:
		return evalAdd(left, right, n.Line)
	case ast.OpSub, ast.OpMul, ast.OpDiv:
		return evalArith(n.Op, left, right, n.Line)
	case ast.OpLess, ast.OpLessEqual, ast.OpGreater, ast.OpGreaterEqual:
		return evalCompare(n.Op, left, right, n.Line)
	default:
		return nil, runtimeErr(n.Line, "unknown binary operator %q", n.Op)
	}
}

// evalLogical implements `and`/`or`'s short-circuit contract: each
// operator evaluates its right operand only when necessary, and the
// result is whichever operand value decided the outcome, not a coerced
// Boolean.
func (in *Interp) evalLogical(n *ast.Binary, env *environment.Environment) (value.Value, *RuntimeError) {
	left, err := in.EvalExpr(n.Left, env)
	if err != nil {
		return nil, err
	}
	if n.Op == ast.OpOr {
		if left.Truthy() {
			return left, nil
		}
	} else {
		if !left.Truthy() {
			return left, nil
		}
	}
	return in.EvalExpr(n.Right, env)
}

// evalAdd implements `+`'s dual contract: numeric addition, or string
// concatenation when both operands are strings. Mixed number/string
// operands are a runtime error, unlike some Lox variants that coerce
// one side.
func evalAdd(left, right value.Value, line int) (value.Value, *RuntimeError) {
	if ln, ok := left.(value.Number); ok {
		if rn, ok := right.(value.Number); ok {
			return value.Number{Val: ln.Val + rn.Val}, nil
		}
	}
	if ls, ok := left.(value.String); ok {
		if rs, ok := right.(value.String); ok {
			return value.String{Val: ls.Val + rs.Val}, nil
		}
	}
	return nil, runtimeErr(line, "Operands must be two numbers or two strings.")
}

func evalArith(op ast.BinaryOp, left, right value.Value, line int) (value.Value, *RuntimeError) {
	ln, ok := left.(value.Number)
	if !ok {
		return nil, runtimeErr(line, "Operands must be numbers.")
	}
	rn, ok := right.(value.Number)
	if !ok {
		return nil, runtimeErr(line, "Operands must be numbers.")
	}
	switch op {
	case ast.OpSub:
		return value.Number{Val: ln.Val - rn.Val}, nil
	case ast.OpMul:
		return value.Number{Val: ln.Val * rn.Val}, nil
	case ast.OpDiv:
		return value.Number{Val: ln.Val / rn.Val}, nil
	default:
		return nil, runtimeErr(line, "unknown arithmetic operator %q", op)
	}
}

func evalCompare(op ast.BinaryOp, left, right value.Value, line int) (value.Value, *RuntimeError) {
	ln, ok := left.(value.Number)
	if !ok {
		return nil, runtimeErr(line, "Operands must be numbers.")
	}
	rn, ok := right.(value.Number)
	if !ok {
		return nil, runtimeErr(line, "Operands must be numbers.")
	}
	switch op {
	case ast.OpLess:
		return value.Boolean{Val: ln.Val < rn.Val}, nil
	case ast.OpLessEqual:
		return value.Boolean{Val: ln.Val <= rn.Val}, nil
	case ast.OpGreater:
		return value.Boolean{Val: ln.Val > rn.Val}, nil
	case ast.OpGreaterEqual:
		return value.Boolean{Val: ln.Val >= rn.Val}, nil
	default:
		return nil, runtimeErr(line, "unknown comparison operator %q", op)
	}
}

// evalCall resolves n.Callee to a user-defined Function in env, falling
// back to the builtin table only when the name isn't bound there, and
// invokes it with its evaluated arguments. Resolving env first means a
// user's own `fun clock() {...}` shadows the builtin of the same name,
// same as any other variable shadowing.
func (in *Interp) evalCall(n *ast.Call, env *environment.Environment) (value.Value, *RuntimeError) {
	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := in.EvalExpr(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	if callee, ok := env.Get(n.Callee); ok {
		fn, ok := callee.(*callable.Function)
		if !ok {
			return nil, runtimeErr(n.Line, "Can only call functions.")
		}
		return in.Call(fn, args, n.Line)
	}

	if b, ok := builtins[n.Callee]; ok {
		if len(args) != 0 {
			return nil, runtimeErr(n.Line, "Expected 0 arguments but got %d.", len(args))
		}
		return b(), nil
	}

	return nil, runtimeErr(n.Line, "Undefined variable '%s'.", n.Callee)
}

// Call invokes fn with args already evaluated, binding each parameter in
// a fresh scope enclosed by fn's captured Closure — not the caller's
// environment, which is what gives this language lexical (rather than
// dynamic) scoping for function bodies.
func (in *Interp) Call(fn *callable.Function, args []value.Value, line int) (value.Value, *RuntimeError) {
	if len(args) != len(fn.Params) {
		return nil, runtimeErr(line, "Expected %d arguments but got %d.", len(fn.Params), len(args))
	}
	callEnv := environment.New(fn.Closure)
	for i, p := range fn.Params {
		callEnv.Define(p, args[i])
	}
	sig, err := in.ExecBlock(fn.Body.Stmts, callEnv)
	if err != nil {
		return nil, err
	}
	if sig != nil {
		return sig.value, nil
	}
	return value.NilValue, nil
}
