package vartree

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/variant-framework/vartree/pkg/boolalg"
	"github.com/variant-framework/vartree/pkg/variant"
)

// SymbolOrderError reports an interior node whose symbol group has no
// successor in the symbol order. It indicates that the symbol order does not
// cover all symbols tested for finality.
type SymbolOrderError struct {
	Symbols []boolalg.Symbol
}

func (e *SymbolOrderError) Error() string {
	return fmt.Sprintf("symbol order has no group following %v", e.Symbols)
}

// Builder constructs variant trees.
type Builder struct {
	order        [][]boolalg.Symbol
	possible     []variant.Variant
	conditionals []variant.Conditional
	log          logr.Logger
}

// Option configures a Builder.
type Option func(b *Builder) error

// WithSymbolOrder sets the symbol groups assigned per tree level, outermost
// first. A group with several symbols produces one level assigning all of
// them at once.
func WithSymbolOrder(groups ...[]boolalg.Symbol) Option {
	return func(b *Builder) error {
		b.order = groups
		return nil
	}
}

// WithPossibleVariants sets the variants known to be realizable; branches
// inconsistent with all of them are pruned.
func WithPossibleVariants(possible ...variant.Variant) Option {
	return func(b *Builder) error {
		b.possible = possible
		return nil
	}
}

// WithConditionals sets the conditionals attached to satisfying leaves, in
// attachment order.
func WithConditionals(conditionals ...variant.Conditional) Option {
	return func(b *Builder) error {
		b.conditionals = conditionals
		return nil
	}
}

// WithLogger sets the logger used for construction diagnostics.
func WithLogger(log logr.Logger) Option {
	return func(b *Builder) error {
		b.log = log
		return nil
	}
}

var defaults = []Option{
	func(b *Builder) error {
		if b.log.GetSink() == nil {
			b.log = logr.Discard()
		}
		return nil
	},
}

// NewBuilder returns a Builder configured by the given options.
func NewBuilder(options ...Option) (*Builder, error) {
	b := &Builder{}
	for _, option := range append(options, defaults...) {
		if err := option(b); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// RootVariant returns the all-unset variant over the builder's symbol order.
func (b *Builder) RootVariant() variant.Variant {
	return variant.NewRoot(b.flatSymbols())
}

// Build constructs the tree and returns its root. Conditionals whose
// condition has no satisfying assignment at all are dropped before
// construction; they could never attach anywhere. An empty possible-variant
// list yields a childless root; an empty conditional list yields leaves with
// no attachments. Both are valid outcomes, not errors.
func (b *Builder) Build(ctx context.Context) (*Node, error) {
	conditionals := make([]variant.Conditional, 0, len(b.conditionals))
	for _, conditional := range b.conditionals {
		if !conditional.Condition().Satisfiable() {
			b.log.V(1).Info("dropped unsatisfiable conditional", "conditional", fmt.Sprint(conditional))
			continue
		}
		conditionals = append(conditionals, conditional)
	}

	flat := b.flatSymbols()
	root := &Node{
		variant: variant.NewRoot(flat),
		Props:   make(map[string]any),
	}
	if err := b.grow(ctx, root, flat, conditionals); err != nil {
		return nil, err
	}
	return root, nil
}

// grow evaluates one node: final nodes collect their satisfied conditionals,
// interior nodes derive and recurse into every possible child.
func (b *Builder) grow(ctx context.Context, node *Node, flat []boolalg.Symbol, conditionals []variant.Conditional) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if node.variant.IsFinal(flat) {
		for _, conditional := range conditionals {
			ok, err := conditional.Condition().Check(node.variant)
			if err != nil {
				return err
			}
			if ok {
				node.conditionals = append(node.conditionals, conditional)
			}
		}
		b.log.V(1).Info("final node", "variant", node.variant.String(), "conditionals", len(node.conditionals))
		return nil
	}

	next, err := b.nextSymbols(node.symbols)
	if err != nil {
		return err
	}
	combos := variant.Combinations(len(next))
	for _, derived := range node.variant.DeriveVariants(next, combos) {
		if !derived.IsPossible(b.possible) {
			b.log.V(1).Info("pruned impossible branch", "variant", derived.String())
			continue
		}
		child := &Node{
			symbols: next,
			variant: derived,
			Props:   make(map[string]any),
		}
		node.addChild(child)
		if err := b.grow(ctx, child, flat, conditionals); err != nil {
			return err
		}
	}
	return nil
}

// nextSymbols returns the group following the node's current group in the
// symbol order, or the first group for the root. Build cannot hit the error
// itself: node symbols and the finality test both derive from the same
// order, so the last group is always final. The error guards callers that
// grow nodes labeled outside the order.
func (b *Builder) nextSymbols(current []boolalg.Symbol) ([]boolalg.Symbol, error) {
	if len(current) == 0 {
		if len(b.order) == 0 {
			return nil, &SymbolOrderError{}
		}
		return b.order[0], nil
	}
	for i, group := range b.order {
		if symbolsEqual(group, current) {
			if i+1 == len(b.order) {
				break
			}
			return b.order[i+1], nil
		}
	}
	return nil, &SymbolOrderError{Symbols: current}
}

func (b *Builder) flatSymbols() []boolalg.Symbol {
	var flat []boolalg.Symbol
	for _, group := range b.order {
		flat = append(flat, group...)
	}
	return flat
}

func symbolsEqual(a, b []boolalg.Symbol) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
