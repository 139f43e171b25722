// Package vartree builds trees enumerating every reachable partial assignment
// of a set of boolean symbols, in a caller-specified level order, pruned to
// the assignments consistent with a list of known-possible variants. Fully
// assigned leaves carry the conditionals their variant satisfies. Built trees
// can afterwards be collapsed: interior paths between two symbol levels are
// compacted into single edges without changing the leaves.
package vartree

import (
	"fmt"
	"strings"

	"github.com/variant-framework/vartree/pkg/boolalg"
	"github.com/variant-framework/vartree/pkg/variant"
)

// Node is one node of a variant tree. A node owns its children exclusively;
// the parent reference is only used for upward walks during collapse.
type Node struct {
	symbols      []boolalg.Symbol
	variant      variant.Variant
	conditionals []variant.Conditional
	children     []*Node
	parent       *Node

	// Props holds annotations computed after construction, such as
	// aggregated conditional counts. It plays no part in correctness.
	Props map[string]any
}

// Symbols returns the symbols set at this node relative to its parent. It is
// empty for the root and may span several symbols when the symbol order
// groups levels or after collapsing.
func (n *Node) Symbols() []boolalg.Symbol {
	return n.symbols
}

// Variant returns the full accumulated variant at this node.
func (n *Node) Variant() variant.Variant {
	return n.variant
}

// Conditionals returns the conditionals satisfied at this node; it is only
// populated on final nodes.
func (n *Node) Conditionals() []variant.Conditional {
	return n.conditionals
}

// Children returns the node's children in construction order.
func (n *Node) Children() []*Node {
	return n.children
}

// Parent returns the node's parent, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Leaves returns the tree's leaf nodes in stable left-to-right order.
func (n *Node) Leaves() []*Node {
	if len(n.children) == 0 {
		return []*Node{n}
	}
	var leaves []*Node
	for _, child := range n.children {
		leaves = append(leaves, child.Leaves()...)
	}
	return leaves
}

func (n *Node) addChild(child *Node) {
	n.children = append(n.children, child)
	child.parent = n
}

// String renders the node as "[symbols] -> variant -> [conditionals]" with
// symbols assigned false marked by a leading ~.
func (n *Node) String() string {
	values := n.variant.Assignments()
	syms := make([]string, len(n.symbols))
	for i, s := range n.symbols {
		if v, ok := values[s]; ok && !v {
			syms[i] = "~" + s.String()
		} else {
			syms[i] = s.String()
		}
	}
	conds := make([]string, len(n.conditionals))
	for i, c := range n.conditionals {
		conds[i] = fmt.Sprintf("%v", c)
	}
	return fmt.Sprintf("[%s] -> %s -> [%s]",
		strings.Join(syms, ", "), n.variant, strings.Join(conds, ", "))
}
