// Package variant models partial boolean assignments over named symbols and
// the conditions evaluated against them. A Variant assigns an optional value
// to each symbol in scope; Conditions wrap a boolean expression and decide
// satisfaction for partially assigned variants by restricting the expression
// to the symbols that have values.
package variant

import (
	"fmt"

	"github.com/variant-framework/vartree/pkg/boolalg"
)

// Value is the optional value of an attribute.
type Value int8

const (
	Unset Value = iota
	False
	True
)

// ValueOf converts a bare boolean to a set Value.
func ValueOf(b bool) Value {
	if b {
		return True
	}
	return False
}

// Known reports whether the value is set.
func (v Value) Known() bool {
	return v != Unset
}

// Bool returns the boolean form of a set value; it is false for Unset.
func (v Value) Bool() bool {
	return v == True
}

func (v Value) String() string {
	switch v {
	case True:
		return "true"
	case False:
		return "false"
	}
	return "unset"
}

// Attribute pairs a symbol with an optional value.
type Attribute struct {
	Symbol boolalg.Symbol
	Value  Value
}

func (a Attribute) String() string {
	return fmt.Sprintf("%s: %s", a.Symbol, a.Value)
}
