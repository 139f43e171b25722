package boolalg

import (
	"fmt"
	"sort"

	"github.com/variant-framework/vartree/internal/sop"
)

// Minterms enumerates the truth table of e over the given symbol ordering and
// returns the indices of the rows on which e is true, ascending. A row's
// index is the integer formed by reading its bit assignment across ordered,
// most-significant bit first. ordered must contain every free symbol of e
// exactly once; it may contain additional symbols.
func (a *Algebra) Minterms(e Expr, ordered []Symbol) ([]int, error) {
	a.check(e)
	pos := make(map[Symbol]int, len(ordered))
	for i, s := range ordered {
		if _, ok := pos[s]; ok {
			return nil, fmt.Errorf("duplicate symbol %q in ordering", s)
		}
		pos[s] = i
	}
	for _, s := range a.FreeSymbols(e) {
		if _, ok := pos[s]; !ok {
			return nil, fmt.Errorf("free symbol %q missing from ordering", s)
		}
	}

	n := len(ordered)
	values := make(map[Symbol]bool, n)
	var minterms []int
	for row := 0; row < 1<<uint(n); row++ {
		for j, s := range ordered {
			values[s] = row&(1<<uint(n-1-j)) != 0
		}
		res, err := a.Eval(e, values)
		if err != nil {
			return nil, err
		}
		if res {
			minterms = append(minterms, row)
		}
	}
	return minterms, nil
}

// Cube is one product term of a minimized cover. Mask selects the symbol
// positions the term constrains, Value fixes their polarity; both are read
// MSB first over the symbol ordering the cover was built for.
type Cube = sop.Cube

// Cubes minimizes a set of minterm indices over the given symbol ordering
// and returns the resulting cover. Duplicate minterms are ignored.
func Cubes(ordered []Symbol, minterms []int) []Cube {
	return sop.Minimize(dedupe(minterms), len(ordered))
}

// SOP synthesizes a minimized sum-of-products expression over exactly the
// given symbols from a set of minterm indices. An empty minterm set yields
// False; the complete set yields True.
func (a *Algebra) SOP(ordered []Symbol, minterms []int) Expr {
	cubes := Cubes(ordered, minterms)
	if len(cubes) == 0 {
		return a.False()
	}
	n := len(ordered)
	terms := make([]Expr, 0, len(cubes))
	for _, cube := range cubes {
		var factors []Expr
		for j, s := range ordered {
			bit := uint(1) << uint(n-1-j)
			if cube.Mask&bit == 0 {
				continue
			}
			v := a.Var(s)
			if cube.Value&bit == 0 {
				v = a.Not(v)
			}
			factors = append(factors, v)
		}
		terms = append(terms, a.And(factors...))
	}
	return a.Or(terms...)
}

func dedupe(minterms []int) []int {
	seen := make(map[int]bool, len(minterms))
	out := make([]int, 0, len(minterms))
	for _, m := range minterms {
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	sort.Ints(out)
	return out
}
