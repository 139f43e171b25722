package variant

import (
	"fmt"
	"sort"
	"strings"

	"github.com/variant-framework/vartree/pkg/boolalg"
)

// Variant is an ordered list of attributes, one per symbol in scope. A
// Variant is never mutated after construction; refinement always produces a
// new Variant.
type Variant struct {
	attrs []Attribute
}

// New returns a Variant over the given attributes. Each symbol may appear at
// most once.
func New(attrs []Attribute) (Variant, error) {
	seen := make(map[boolalg.Symbol]bool, len(attrs))
	for _, a := range attrs {
		if seen[a.Symbol] {
			return Variant{}, fmt.Errorf("duplicate symbol %q in variant", a.Symbol)
		}
		seen[a.Symbol] = true
	}
	return Variant{attrs: append([]Attribute(nil), attrs...)}, nil
}

// NewRoot returns a Variant with every given symbol unset.
func NewRoot(symbols []boolalg.Symbol) Variant {
	attrs := make([]Attribute, len(symbols))
	for i, s := range symbols {
		attrs[i] = Attribute{Symbol: s}
	}
	return Variant{attrs: attrs}
}

// Attributes returns the variant's attributes in their original order.
func (v Variant) Attributes() []Attribute {
	return append([]Attribute(nil), v.attrs...)
}

// SortedAttributes returns the attributes sorted by symbol name.
func (v Variant) SortedAttributes() []Attribute {
	attrs := v.Attributes()
	sort.Slice(attrs, func(i, j int) bool { return attrs[i].Symbol < attrs[j].Symbol })
	return attrs
}

// Assignments returns the assigned subset of the variant as a symbol-to-value
// map; unset attributes are omitted.
func (v Variant) Assignments() map[boolalg.Symbol]bool {
	m := make(map[boolalg.Symbol]bool)
	for _, a := range v.attrs {
		if a.Value.Known() {
			m[a.Symbol] = a.Value.Bool()
		}
	}
	return m
}

// AssignedSymbols returns the symbols with a set value, in attribute order.
func (v Variant) AssignedSymbols() []boolalg.Symbol {
	var syms []boolalg.Symbol
	for _, a := range v.attrs {
		if a.Value.Known() {
			syms = append(syms, a.Symbol)
		}
	}
	return syms
}

// Equal reports whether two variants have equal assigned subsets; unset
// attributes are not distinguishing.
func (v Variant) Equal(other Variant) bool {
	a, b := v.Assignments(), other.Assignments()
	if len(a) != len(b) {
		return false
	}
	for s, val := range a {
		if bv, ok := b[s]; !ok || bv != val {
			return false
		}
	}
	return true
}

// IsDerivedFromOrEqual reports whether v refines other: every attribute of
// other with a set value has the identical value in v. This is a partial
// order, not a total one.
func (v Variant) IsDerivedFromOrEqual(other Variant) bool {
	values := v.Assignments()
	for _, a := range other.attrs {
		if !a.Value.Known() {
			continue
		}
		val, ok := values[a.Symbol]
		if !ok || val != a.Value.Bool() {
			return false
		}
	}
	return true
}

// IsPossible reports whether some element of possible is a refinement root of
// v, i.e. v is derived from or equal to it.
func (v Variant) IsPossible(possible []Variant) bool {
	for _, p := range possible {
		if p.IsDerivedFromOrEqual(v) {
			return true
		}
	}
	return false
}

// IsFinal reports whether every attribute whose symbol is in relevant has a
// set value.
func (v Variant) IsFinal(relevant []boolalg.Symbol) bool {
	set := make(map[boolalg.Symbol]bool, len(relevant))
	for _, s := range relevant {
		set[s] = true
	}
	for _, a := range v.attrs {
		if set[a.Symbol] && !a.Value.Known() {
			return false
		}
	}
	return true
}

// IsEmpty reports whether no attribute has a set value.
func (v Variant) IsEmpty() bool {
	for _, a := range v.attrs {
		if a.Value.Known() {
			return false
		}
	}
	return true
}

// DeriveVariants returns one derived variant per value combination: a copy of
// v with the attributes for nextSymbols set to the combination's values,
// every other attribute untouched. Each combination is ordered to match
// nextSymbols.
func (v Variant) DeriveVariants(nextSymbols []boolalg.Symbol, combinations [][]bool) []Variant {
	index := make(map[boolalg.Symbol]int, len(nextSymbols))
	for i, s := range nextSymbols {
		index[s] = i
	}
	derived := make([]Variant, 0, len(combinations))
	for _, combo := range combinations {
		attrs := append([]Attribute(nil), v.attrs...)
		for i := range attrs {
			if j, ok := index[attrs[i].Symbol]; ok {
				attrs[i].Value = ValueOf(combo[j])
			}
		}
		derived = append(derived, Variant{attrs: attrs})
	}
	return derived
}

func (v Variant) String() string {
	parts := make([]string, len(v.attrs))
	for i, a := range v.attrs {
		parts[i] = a.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Combinations returns all 2^k boolean combinations of width k in ascending
// integer order, each integer rendered most-significant bit first. This fixes
// the branch ordering of the variant tree.
func Combinations(k int) [][]bool {
	combos := make([][]bool, 0, 1<<uint(k))
	for i := 0; i < 1<<uint(k); i++ {
		combo := make([]bool, k)
		for j := 0; j < k; j++ {
			combo[j] = i&(1<<uint(k-1-j)) != 0
		}
		combos = append(combos, combo)
	}
	return combos
}
