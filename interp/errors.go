/*
File    : golox/interp/errors.go
Derived : github.com/akashmaji946/go-mix (eval/eval_helpers.go error conventions)
*/
package interp

import "fmt"

// RuntimeError is a failure detected while executing an already-parsed
// program: a type mismatch on an operator, an undefined variable
// reference, a call arity mismatch, or a top-level `return`. Its Error()
// renders a wire format that differs from the lexer's and parser's
// "[line N] Error: msg" shape: the message comes first, the location
// annotation on its own line after.
type RuntimeError struct {
	Line    int
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Line)
}

func runtimeErr(line int, format string, a ...interface{}) *RuntimeError {
	return &RuntimeError{Line: line, Message: fmt.Sprintf(format, a...)}
}
