package variant

import (
	"strings"

	"github.com/variant-framework/vartree/pkg/boolalg"
)

// Condition wraps one boolean expression and decides satisfaction for
// partially assigned variants.
type Condition struct {
	alg  *boolalg.Algebra
	expr boolalg.Expr
	free []boolalg.Symbol

	// Restricted expressions keyed by ordered relevant-symbol set.
	restricted map[string]boolalg.Expr
}

// NewCondition wraps the given expression.
func NewCondition(alg *boolalg.Algebra, expr boolalg.Expr) *Condition {
	return &Condition{
		alg:        alg,
		expr:       expr,
		free:       alg.FreeSymbols(expr),
		restricted: make(map[string]boolalg.Expr),
	}
}

// Expr returns the wrapped expression.
func (c *Condition) Expr() boolalg.Expr {
	return c.expr
}

// Satisfiable reports whether the wrapped expression has any satisfying
// assignment at all.
func (c *Condition) Satisfiable() bool {
	return c.alg.Satisfiable(c.expr)
}

// Check reports whether the variant satisfies the condition. Only the
// variant's assigned symbols take part in the decision: the expression is
// projected onto them (any assignment of the remaining symbols counts), then
// the variant's values are substituted.
//
// An empty variant satisfies every condition: nothing is known yet that could
// violate it.
func (c *Condition) Check(v Variant) (bool, error) {
	if v.IsEmpty() {
		return true, nil
	}
	relevant := v.AssignedSymbols()
	expr, err := c.restrictedFor(relevant)
	if err != nil {
		return false, err
	}
	return c.alg.Eval(expr, v.Assignments())
}

// PossibleVariants decomposes the condition, restricted to the given
// symbols, into the partial variants that satisfy it: one variant per product
// term, with symbols absent from the term left unset.
func (c *Condition) PossibleVariants(relevant []boolalg.Symbol) ([]Variant, error) {
	minterms, err := c.projectedMinterms(relevant)
	if err != nil {
		return nil, err
	}
	n := len(relevant)
	cubes := boolalg.Cubes(relevant, minterms)
	variants := make([]Variant, 0, len(cubes))
	for _, cube := range cubes {
		attrs := make([]Attribute, n)
		for j, s := range relevant {
			attrs[j] = Attribute{Symbol: s}
			bit := uint(1) << uint(n-1-j)
			if cube.Mask&bit != 0 {
				attrs[j].Value = ValueOf(cube.Value&bit != 0)
			}
		}
		variants = append(variants, Variant{attrs: attrs})
	}
	return variants, nil
}

// Solves reports whether the variant satisfies the condition by checking it
// against the condition's own satisfying partial assignments. It agrees with
// Condition.Check on every variant.
func (v Variant) Solves(c *Condition) (bool, error) {
	if v.IsEmpty() {
		return true, nil
	}
	possible, err := c.PossibleVariants(v.AssignedSymbols())
	if err != nil {
		return false, err
	}
	for _, p := range possible {
		if v.IsDerivedFromOrEqual(p) {
			return true, nil
		}
	}
	return false, nil
}

// restrictedFor returns the condition's expression projected onto exactly the
// relevant symbols. Results are cached per relevant-symbol set.
func (c *Condition) restrictedFor(relevant []boolalg.Symbol) (boolalg.Expr, error) {
	key := cacheKey(relevant)
	if e, ok := c.restricted[key]; ok {
		return e, nil
	}
	var expr boolalg.Expr
	switch {
	case len(relevant) == 0:
		expr = c.alg.True()
	case symbolSetsEqual(relevant, c.free):
		// Nothing to project away.
		expr = c.expr
	default:
		minterms, err := c.projectedMinterms(relevant)
		if err != nil {
			return boolalg.Expr{}, err
		}
		expr = c.alg.SOP(relevant, minterms)
	}
	c.restricted[key] = expr
	return expr, nil
}

// projectedMinterms enumerates the condition's truth table over the relevant
// symbols followed by its remaining free symbols, then projects the irrelevant
// trailing symbols away by right-shifting every minterm index. A minterm
// survives the projection if any assignment of the irrelevant symbols
// satisfied the condition.
func (c *Condition) projectedMinterms(relevant []boolalg.Symbol) ([]int, error) {
	ordered := append([]boolalg.Symbol(nil), relevant...)
	in := make(map[boolalg.Symbol]bool, len(relevant))
	for _, s := range relevant {
		in[s] = true
	}
	for _, s := range c.free {
		if !in[s] {
			ordered = append(ordered, s)
		}
	}
	minterms, err := c.alg.Minterms(c.expr, ordered)
	if err != nil {
		return nil, err
	}
	shift := uint(len(ordered) - len(relevant))
	seen := make(map[int]bool, len(minterms))
	var projected []int
	for _, m := range minterms {
		p := m >> shift
		if !seen[p] {
			seen[p] = true
			projected = append(projected, p)
		}
	}
	return projected, nil
}

func cacheKey(symbols []boolalg.Symbol) string {
	parts := make([]string, len(symbols))
	for i, s := range symbols {
		parts[i] = string(s)
	}
	return strings.Join(parts, "\x00")
}

func symbolSetsEqual(a, b []boolalg.Symbol) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[boolalg.Symbol]bool, len(a))
	for _, s := range a {
		set[s] = true
	}
	for _, s := range b {
		if !set[s] {
			return false
		}
	}
	return true
}
