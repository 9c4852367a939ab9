/*
File    : golox/value/value.go
Derived : github.com/akashmaji946/go-mix (objects/objects.go)
*/

// Package value defines the runtime value representation: a tagged union
// mirroring go-mix's GoMixObject interface narrowed to the kinds this
// language needs. The Function variant lives in the sibling callable
// package (not here) so that Value can be defined without importing the
// environment package a closure must capture — the same split go-mix
// draws between its objects package and its function package.
package value

import "strconv"

// Kind identifies which concrete Value variant a value holds, the same
// role go-mix's GoMixType constants play for GoMixObject.
type Kind string

const (
	KindNumber   Kind = "number"
	KindString   Kind = "string"
	KindBoolean  Kind = "boolean"
	KindNil      Kind = "nil"
	KindFunction Kind = "function"
)

// Value is any runtime value. It is intentionally the narrow interface
// go-mix's GoMixObject is, minus ToObject (no debug-inspection form is
// needed; interp's diagnostics use String directly).
type Value interface {
	Kind() Kind
	// String renders the value the way `print` and `evaluate` show it:
	// integral numbers print without a decimal point, unlike the
	// tokenizer's ".0" convention.
	String() string
	// Truthy is false only for Nil and Boolean(false); everything else,
	// including zero, is true.
	Truthy() bool
}

// Number is a double-precision floating point runtime value.
type Number struct{ Val float64 }

func (Number) Kind() Kind     { return KindNumber }
func (Number) Truthy() bool   { return true }
func (n Number) String() string {
	if n.Val == float64(int64(n.Val)) {
		return strconv.FormatInt(int64(n.Val), 10)
	}
	return strconv.FormatFloat(n.Val, 'g', -1, 64)
}

// String is a runtime string value.
type String struct{ Val string }

func (String) Kind() Kind       { return KindString }
func (String) Truthy() bool     { return true }
func (s String) String() string { return s.Val }

// Boolean is a runtime boolean value.
type Boolean struct{ Val bool }

func (Boolean) Kind() Kind       { return KindBoolean }
func (b Boolean) Truthy() bool   { return b.Val }
func (b Boolean) String() string { return strconv.FormatBool(b.Val) }

// Nil is the sole `nil` runtime value.
type Nil struct{}

func (Nil) Kind() Kind     { return KindNil }
func (Nil) Truthy() bool   { return false }
func (Nil) String() string { return "nil" }

// NilValue is the shared Nil instance, analogous to go-mix's pattern of
// a single sentinel for absent values.
var NilValue Value = Nil{}

// Equal implements structural equality: values of different Kind are
// never equal (Nil != Boolean(false)); same-kind values compare their
// payload. Callable values (see package callable) are compared by
// identity and fall to the default case here, since value does not know
// their concrete type.
func Equal(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case Number:
		return av.Val == b.(Number).Val
	case String:
		return av.Val == b.(String).Val
	case Boolean:
		return av.Val == b.(Boolean).Val
	case Nil:
		return true
	default:
		return a == b
	}
}
