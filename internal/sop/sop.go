// Package sop minimizes sets of truth-table minterms into sum-of-products
// cubes. Minterm indices follow the MSB-first convention: bit width-1 of an
// index holds the value of the first symbol in the caller's ordering.
package sop

import (
	"math/bits"
	"sort"
)

// Cube is one product term of a sum-of-products form. Mask selects the bit
// positions fixed by the term; Value holds their values. Bits outside Mask
// are don't-cares and are always zero in Value. The zero Cube is the
// constant-true term.
type Cube struct {
	Value uint
	Mask  uint
}

// Covers reports whether the minterm with index m satisfies the cube.
func (c Cube) Covers(m int) bool {
	return uint(m)&c.Mask == c.Value
}

// Minimize returns a minimal-ish sum-of-products cover of the given minterms
// over width bits: adjacent cubes are merged into prime implicants, then a
// greedy pass selects a subset covering every input minterm. The result is
// deterministic for a given input. An empty minterm set yields nil; width
// zero with a non-empty set yields the single constant-true cube.
func Minimize(minterms []int, width int) []Cube {
	if len(minterms) == 0 {
		return nil
	}
	if width == 0 {
		return []Cube{{}}
	}

	full := uint(1)<<uint(width) - 1
	current := make(map[Cube]bool)
	for _, m := range minterms {
		current[Cube{Value: uint(m) & full, Mask: full}] = true
	}

	primes := make(map[Cube]bool)
	for len(current) > 0 {
		next := make(map[Cube]bool)
		merged := make(map[Cube]bool)
		cubes := sortedCubes(current)
		for i, a := range cubes {
			for _, b := range cubes[i+1:] {
				if a.Mask != b.Mask {
					continue
				}
				diff := a.Value ^ b.Value
				if bits.OnesCount(diff) != 1 {
					continue
				}
				next[Cube{Value: a.Value &^ diff, Mask: a.Mask &^ diff}] = true
				merged[a] = true
				merged[b] = true
			}
		}
		for c := range current {
			if !merged[c] {
				primes[c] = true
			}
		}
		current = next
	}

	// Greedy cover over the original minterms, widest cubes first.
	uncovered := make(map[int]bool, len(minterms))
	for _, m := range minterms {
		uncovered[m] = true
	}
	var cover []Cube
	for _, c := range sortedCubes(primes) {
		hit := false
		for m := range uncovered {
			if c.Covers(m) {
				hit = true
				break
			}
		}
		if !hit {
			continue
		}
		cover = append(cover, c)
		for m := range uncovered {
			if c.Covers(m) {
				delete(uncovered, m)
			}
		}
		if len(uncovered) == 0 {
			break
		}
	}
	sort.Slice(cover, func(i, j int) bool { return cubeLess(cover[i], cover[j]) })
	return cover
}

func sortedCubes(set map[Cube]bool) []Cube {
	cubes := make([]Cube, 0, len(set))
	for c := range set {
		cubes = append(cubes, c)
	}
	sort.Slice(cubes, func(i, j int) bool { return cubeLess(cubes[i], cubes[j]) })
	return cubes
}

func cubeLess(a, b Cube) bool {
	pa, pb := bits.OnesCount(a.Mask), bits.OnesCount(b.Mask)
	if pa != pb {
		return pa < pb
	}
	if a.Value != b.Value {
		return a.Value < b.Value
	}
	return a.Mask < b.Mask
}
