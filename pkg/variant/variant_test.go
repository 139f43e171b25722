package variant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/variant-framework/vartree/pkg/boolalg"
	"github.com/variant-framework/vartree/pkg/variant"
)

func attr(s boolalg.Symbol, v variant.Value) variant.Attribute {
	return variant.Attribute{Symbol: s, Value: v}
}

func mk(t *testing.T, attrs ...variant.Attribute) variant.Variant {
	t.Helper()
	v, err := variant.New(attrs)
	require.NoError(t, err)
	return v
}

func TestNewRejectsDuplicateSymbols(t *testing.T) {
	_, err := variant.New([]variant.Attribute{attr("A", variant.True), attr("A", variant.Unset)})
	assert.ErrorContains(t, err, "duplicate symbol")
}

func TestIsDerivedFromOrEqual(t *testing.T) {
	original := mk(t, attr("A", variant.True), attr("B", variant.False), attr("C", variant.Unset))
	derived := mk(t, attr("A", variant.True), attr("B", variant.False), attr("C", variant.True))

	assert.True(t, derived.IsDerivedFromOrEqual(original))
	assert.False(t, original.IsDerivedFromOrEqual(derived))
	assert.True(t, derived.IsDerivedFromOrEqual(derived), "reflexive")
}

func TestRefinementAntisymmetry(t *testing.T) {
	v1 := mk(t, attr("A", variant.True), attr("B", variant.Unset))
	v2 := mk(t, attr("B", variant.Unset), attr("A", variant.True))

	require.True(t, v1.IsDerivedFromOrEqual(v2))
	require.True(t, v2.IsDerivedFromOrEqual(v1))
	assert.True(t, v1.Equal(v2))
}

func TestEqualIgnoresUnset(t *testing.T) {
	type tc struct {
		Name     string
		V1, V2   variant.Variant
		Expected bool
	}

	for _, tt := range []tc{
		{
			Name:     "unset attributes are not distinguishing",
			V1:       mk(t, attr("A", variant.True), attr("B", variant.Unset)),
			V2:       mk(t, attr("A", variant.True)),
			Expected: true,
		},
		{
			Name: "differing value",
			V1:   mk(t, attr("A", variant.True)),
			V2:   mk(t, attr("A", variant.False)),
		},
		{
			Name: "extra assignment",
			V1:   mk(t, attr("A", variant.True), attr("B", variant.True)),
			V2:   mk(t, attr("A", variant.True)),
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			assert.Equal(t, tt.Expected, tt.V1.Equal(tt.V2))
			assert.Equal(t, tt.Expected, tt.V2.Equal(tt.V1))
		})
	}
}

func TestDeriveVariants(t *testing.T) {
	original := mk(t, attr("A", variant.True), attr("B", variant.Unset), attr("C", variant.Unset))

	derived := original.DeriveVariants(
		[]boolalg.Symbol{"B", "C"},
		[][]bool{{true, false}, {false, true}},
	)

	require.Len(t, derived, 2)
	assert.True(t, derived[0].Equal(mk(t, attr("A", variant.True), attr("B", variant.True), attr("C", variant.False))))
	assert.True(t, derived[1].Equal(mk(t, attr("A", variant.True), attr("B", variant.False), attr("C", variant.True))))
	assert.Equal(t, map[boolalg.Symbol]bool{"A": true}, original.Assignments(), "original untouched")
}

func TestIsPossible(t *testing.T) {
	possible := []variant.Variant{
		mk(t, attr("A", variant.True), attr("B", variant.True), attr("C", variant.False)),
		mk(t, attr("A", variant.True), attr("B", variant.False), attr("C", variant.True)),
	}

	partial := mk(t, attr("A", variant.True), attr("B", variant.Unset), attr("C", variant.Unset))
	assert.True(t, partial.IsPossible(possible))

	impossible := mk(t, attr("A", variant.False), attr("B", variant.Unset), attr("C", variant.Unset))
	assert.False(t, impossible.IsPossible(possible))

	assert.False(t, partial.IsPossible(nil), "nothing is possible without possible variants")
}

func TestAdmissibilityMonotonicity(t *testing.T) {
	possible := []variant.Variant{
		mk(t, attr("A", variant.True), attr("B", variant.False), attr("C", variant.True)),
	}
	refined := mk(t, attr("A", variant.True), attr("B", variant.False), attr("C", variant.True))
	ancestor := mk(t, attr("A", variant.True), attr("B", variant.Unset), attr("C", variant.Unset))

	require.True(t, refined.IsDerivedFromOrEqual(ancestor))
	require.True(t, refined.IsPossible(possible))
	assert.True(t, ancestor.IsPossible(possible))
}

func TestIsFinal(t *testing.T) {
	v := mk(t, attr("A", variant.True), attr("B", variant.Unset))

	assert.True(t, v.IsFinal([]boolalg.Symbol{"A"}))
	assert.False(t, v.IsFinal([]boolalg.Symbol{"A", "B"}))
	assert.True(t, v.IsFinal(nil), "vacuously final")
	assert.True(t, v.IsFinal([]boolalg.Symbol{"D"}), "symbols outside the variant are ignored")
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, variant.NewRoot([]boolalg.Symbol{"A", "B"}).IsEmpty())
	assert.False(t, mk(t, attr("A", variant.False)).IsEmpty())
}

func TestAssignments(t *testing.T) {
	v := mk(t, attr("A", variant.True), attr("B", variant.Unset), attr("C", variant.False))

	assert.Equal(t, map[boolalg.Symbol]bool{"A": true, "C": false}, v.Assignments())
	assert.Equal(t, []boolalg.Symbol{"A", "C"}, v.AssignedSymbols())
}

func TestCombinations(t *testing.T) {
	assert.Equal(t, [][]bool{{}}, variant.Combinations(0))
	assert.Equal(t, [][]bool{
		{false, false},
		{false, true},
		{true, false},
		{true, true},
	}, variant.Combinations(2))
}

func TestVariantString(t *testing.T) {
	v := mk(t, attr("A", variant.True), attr("B", variant.Unset), attr("C", variant.False))
	assert.Equal(t, "{A: true, B: unset, C: false}", v.String())
}
