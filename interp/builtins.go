/*
File    : golox/interp/builtins.go
Derived : github.com/akashmaji946/go-mix (std/builtins.go Builtin/CallbackFunc shape,
          std/time.go's `now` builtin)
*/
package interp

import (
	"time"

	"github.com/akashmaji946/golox/value"
)

// builtinFunc is the narrowed form of go-mix's std.CallbackFunc: this
// language ships no standard library beyond the single `clock` builtin,
// so there is no Runtime/writer plumbing or variadic argument slice here
// — just the one zero-arity function this language actually ships.
type builtinFunc func() value.Value

// builtins is the global builtin table, consulted by evalCall only as a
// fallback once the environment lookup for the callee name has come up
// empty — a user's own declaration of the same name always wins.
var builtins = map[string]builtinFunc{
	"clock": clockBuiltin,
}

// clockBuiltin returns the number of seconds since the Unix epoch as a
// Number, the same quantity go-mix's `now()` builtin exposes (see
// std/time.go), but as a float64 rather than an Integer so that sub-second
// precision survives through this language's single numeric type.
func clockBuiltin() value.Value {
	return value.Number{Val: float64(time.Now().UnixNano()) / 1e9}
}
