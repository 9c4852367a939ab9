/*
File    : golox/interp/interp.go
Derived : github.com/akashmaji946/go-mix (eval/evaluator.go, eval_expressions.go,
          eval_statements.go, eval_conditionals.go, eval_loops.go,
          eval_controls.go)
*/

// Package interp is the tree-walking evaluator/executor: EvalExpr
// computes an expression's Value, ExecStmt runs a statement for effect,
// and Call invokes a user-defined Function (the `clock` builtin is
// dispatched by evalCall). Both halves share the go-mix
// pattern of threading an io.Writer through the interpreter for `print`
// output, so tests can capture it instead of writing to os.Stdout.
package interp

import (
	"fmt"
	"io"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/callable"
	"github.com/akashmaji946/golox/environment"
	"github.com/akashmaji946/golox/value"
)

// Interp holds the interpreter's global environment and output writer,
// mirroring go-mix's Evaluator struct (Scp + Writer), minus the Par/Types
// fields this language has no analogue for (no column-tracking parser
// handle, no struct type table).
type Interp struct {
	Globals *environment.Environment
	Writer  io.Writer
}

// New creates an interpreter with a fresh global environment, writing
// `print` output to w.
func New(w io.Writer) *Interp {
	return &Interp{Globals: environment.New(nil), Writer: w}
}

// signal is the control-flow wrapper a `return` statement produces,
// grounded on go-mix's *std.ReturnValue (see eval/eval_controls.go):
// rather than unwinding via panic/recover, each ExecStmt/ExecBlock
// returns a non-nil *signal up through its caller, which checks for one
// after every nested statement and stops iterating/executing as soon as
// it sees one, exactly as go-mix's eval_statements.go and eval_loops.go
// check `result.(*std.ReturnValue)` after every statement.
type signal struct {
	value value.Value
}

// Run executes a parsed program (the top-level statement list of the
// `run` command and of each REPL line) against the interpreter's global environment. A
// `return` signal reaching this top level produces a "Can't return from
// top-level code." runtime error.
func (in *Interp) Run(stmts []ast.Stmt) *RuntimeError {
	for _, s := range stmts {
		sig, err := in.ExecStmt(s, in.Globals)
		if err != nil {
			return err
		}
		if sig != nil {
			return runtimeErr(0, "Can't return from top-level code.")
		}
	}
	return nil
}

// EvalTopLevel evaluates a single top-level expression (the `evaluate`
// command's contract) against the global environment and returns its
// Value.
func (in *Interp) EvalTopLevel(e ast.Expr) (value.Value, *RuntimeError) {
	return in.EvalExpr(e, in.Globals)
}

// ExecStmt executes one statement, returning a non-nil *signal if a
// `return` was encountered during execution (which the caller must
// propagate, not swallow).
func (in *Interp) ExecStmt(stmt ast.Stmt, env *environment.Environment) (*signal, *RuntimeError) {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		_, err := in.EvalExpr(s.Expr, env)
		return nil, err

	case *ast.PrintStmt:
		v, err := in.EvalExpr(s.Expr, env)
		if err != nil {
			return nil, err
		}
		fmt.Fprintln(in.Writer, v.String())
		return nil, nil

	case *ast.VarStmt:
		var v value.Value = value.NilValue
		if s.Init != nil {
			var err *RuntimeError
			v, err = in.EvalExpr(s.Init, env)
			if err != nil {
				return nil, err
			}
		}
		env.Define(s.Name, v)
		return nil, nil

	case *ast.BlockStmt:
		return in.ExecBlock(s.Stmts, environment.New(env))

	case *ast.IfStmt:
		cond, err := in.EvalExpr(s.Cond, env)
		if err != nil {
			return nil, err
		}
		if cond.Truthy() {
			return in.ExecStmt(s.Then, env)
		}
		if s.Else != nil {
			return in.ExecStmt(s.Else, env)
		}
		return nil, nil

	case *ast.WhileStmt:
		return in.execWhile(s, env)

	case *ast.ForStmt:
		return in.execFor(s, env)

	case *ast.FnStmt:
		fn := &callable.Function{Name: s.Name, Params: s.Params, Body: s.Body, Closure: env}
		env.Define(s.Name, fn)
		return nil, nil

	case *ast.ReturnStmt:
		var v value.Value = value.NilValue
		if s.Value != nil {
			var err *RuntimeError
			v, err = in.EvalExpr(s.Value, env)
			if err != nil {
				return nil, err
			}
		}
		return &signal{value: v}, nil

	default:
		return nil, runtimeErr(0, "unknown statement type %T", stmt)
	}
}

// ExecBlock executes stmts in env (the caller supplies the child scope,
// since a function call body and a bare block statement each create that
// child scope differently — see Call and the BlockStmt case above),
// stopping and propagating the first *signal or error encountered.
func (in *Interp) ExecBlock(stmts []ast.Stmt, env *environment.Environment) (*signal, *RuntimeError) {
	for _, s := range stmts {
		sig, err := in.ExecStmt(s, env)
		if err != nil {
			return nil, err
		}
		if sig != nil {
			return sig, nil
		}
	}
	return nil, nil
}

func (in *Interp) execWhile(s *ast.WhileStmt, env *environment.Environment) (*signal, *RuntimeError) {
	for {
		cond, err := in.EvalExpr(s.Cond, env)
		if err != nil {
			return nil, err
		}
		if !cond.Truthy() {
			return nil, nil
		}
		sig, err := in.ExecStmt(s.Body, env)
		if err != nil {
			return nil, err
		}
		if sig != nil {
			return sig, nil
		}
	}
}

// execFor runs the for-loop pieces ast.ForStmt carries. Init runs once
// in the enclosing env itself, not in a scope private to the loop, so
// each iteration's Cond/Post/Body see the same loop variable binding, a
// closure created inside Body captures that one binding across
// iterations, and a `var` declared by Init stays bound in env after the
// loop ends.
func (in *Interp) execFor(s *ast.ForStmt, env *environment.Environment) (*signal, *RuntimeError) {
	if s.Init != nil {
		if _, err := in.ExecStmt(s.Init, env); err != nil {
			return nil, err
		}
	}
	for {
		if s.Cond != nil {
			cond, err := in.EvalExpr(s.Cond, env)
			if err != nil {
				return nil, err
			}
			if !cond.Truthy() {
				return nil, nil
			}
		}
		sig, err := in.ExecStmt(s.Body, env)
		if err != nil {
			return nil, err
		}
		if sig != nil {
			return sig, nil
		}
		if s.Post != nil {
			if _, err := in.EvalExpr(s.Post, env); err != nil {
				return nil, err
			}
		}
	}
}
