/*
File    : golox/environment/environment.go
Derived : github.com/akashmaji946/go-mix (scope/scope.go)
*/

// Package environment implements lexically nested symbol tables: a
// chain of scopes rooted at a global environment, where lookups walk
// leaf-to-root and each child holds an observable reference to its
// parent.
package environment

import "github.com/akashmaji946/golox/value"

// Environment is one lexical scope: a set of name→value bindings plus a
// pointer to the enclosing scope (nil at the global level). This mirrors
// go-mix's *scope.Scope exactly, minus the Consts/LetVars/LetTypes
// bookkeeping go-mix carries for its `const`/`let` features — this
// language has only `var`, so a single Values map is enough.
//
// Crucially, Environment is always handled by pointer. A function value
// captures this same pointer (see package callable), so mutations made
// through any alias — a nested block, a re-entered call frame, the
// function's own closure — are visible through every other alias. This
// is why go-mix's Scope.Copy() (a shallow clone taken at closure-capture
// time) is not reproduced here: Copy would sever exactly the aliasing a
// closure needs to observe later mutation of variables in its declaring
// scope.
type Environment struct {
	Values map[string]value.Value
	Parent *Environment
}

// New creates a child environment enclosed by parent (nil for the global
// scope).
func New(parent *Environment) *Environment {
	return &Environment{Values: make(map[string]value.Value), Parent: parent}
}

// Define unconditionally binds name in this scope, overwriting any prior
// binding of the same name in this scope only (shadowing an outer
// binding is exactly how `var` redeclaration in a nested block works).
func (e *Environment) Define(name string, v value.Value) {
	e.Values[name] = v
}

// Get walks the scope chain leaf-to-root and returns the first binding
// found for name. The second return value is false if name is unbound
// anywhere in the chain.
func (e *Environment) Get(name string) (value.Value, bool) {
	if v, ok := e.Values[name]; ok {
		return v, true
	}
	if e.Parent != nil {
		return e.Parent.Get(name)
	}
	return nil, false
}

// Assign finds the nearest scope (starting at e) that already defines
// name and overwrites its binding there. It never creates a new binding;
// it reports false if name is not defined in any enclosing scope, which
// the caller turns into an "Undefined variable '<name>'" runtime error.
func (e *Environment) Assign(name string, v value.Value) bool {
	if _, ok := e.Values[name]; ok {
		e.Values[name] = v
		return true
	}
	if e.Parent != nil {
		return e.Parent.Assign(name, v)
	}
	return false
}
