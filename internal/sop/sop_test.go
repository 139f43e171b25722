package sop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/variant-framework/vartree/internal/sop"
)

func TestMinimize(t *testing.T) {
	type tc struct {
		Name     string
		Minterms []int
		Width    int
		Expected []sop.Cube
	}

	for _, tt := range []tc{
		{
			Name:  "empty",
			Width: 3,
		},
		{
			Name:     "constant true",
			Minterms: []int{0},
			Width:    0,
			Expected: []sop.Cube{{}},
		},
		{
			Name:     "single minterm",
			Minterms: []int{2},
			Width:    2,
			Expected: []sop.Cube{{Value: 2, Mask: 3}},
		},
		{
			Name:     "full space merges away",
			Minterms: []int{0, 1},
			Width:    1,
			Expected: []sop.Cube{{}},
		},
		{
			// B & (A | C) over A,B,C: rows 011, 110, 111 reduce to
			// B&C and A&B.
			Name:     "b and (a or c)",
			Minterms: []int{3, 6, 7},
			Width:    3,
			Expected: []sop.Cube{{Value: 3, Mask: 3}, {Value: 6, Mask: 6}},
		},
		{
			Name:     "projection leftover",
			Minterms: []int{1},
			Width:    1,
			Expected: []sop.Cube{{Value: 1, Mask: 1}},
		},
		{
			Name:     "duplicates ignored",
			Minterms: []int{5, 5, 7, 7},
			Width:    3,
			Expected: []sop.Cube{{Value: 5, Mask: 5}},
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			assert.Equal(t, tt.Expected, sop.Minimize(tt.Minterms, tt.Width))
		})
	}
}

func TestMinimizeCovers(t *testing.T) {
	// Every input minterm must be covered and no outside minterm may be.
	minterms := []int{1, 3, 5, 7, 6}
	cubes := sop.Minimize(minterms, 3)
	in := make(map[int]bool)
	for _, m := range minterms {
		in[m] = true
	}
	for m := 0; m < 8; m++ {
		covered := false
		for _, c := range cubes {
			if c.Covers(m) {
				covered = true
				break
			}
		}
		assert.Equal(t, in[m], covered, "minterm %d", m)
	}
}
