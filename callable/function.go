/*
File    : golox/callable/function.go
Derived : github.com/akashmaji946/go-mix (function/function.go)
*/

// Package callable defines the Function runtime value: a user-defined
// function's parameters, body, and captured closure environment. It is
// split out from package value (the same way go-mix splits function.Function
// out of objects.GoMixObject) purely to avoid value importing
// environment just to spell out a field type nothing else in value
// needs.
package callable

import (
	"fmt"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/environment"
	"github.com/akashmaji946/golox/value"
)

// Function is a user-defined function value: the parameter names,
// the body block to execute on Call, and Closure — the environment
// active at the point the function was declared (value.Kind() reports
// KindFunction for it).
//
// Closure is captured by pointer, not copied, so that reassigning a
// variable in the declaring scope after the function is created is still
// observed inside the function body, and so that storing the function
// back into its own declaring scope (the classic self-referential
// closure) does not require cloning that scope.
type Function struct {
	Name    string
	Params  []string
	Body    *ast.BlockStmt
	Closure *environment.Environment
}

func (*Function) Kind() value.Kind { return value.KindFunction }
func (*Function) Truthy() bool     { return true }

// String renders the sentinel form for a function read as a value
// (not called): "<fn NAME>".
func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.Name)
}

var _ value.Value = (*Function)(nil)
