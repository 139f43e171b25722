package vartree

import (
	"github.com/variant-framework/vartree/pkg/variant"
)

// PropConditionalCount is the Props key set by CollectConditionals.
const PropConditionalCount = "conditionalCount"

// CollectConditionals replaces every node's conditional list with the union
// of the conditionals in its subtree and records the count under
// PropConditionalCount. Unlike leaf attachment, which keeps the builder's
// input order, the union keeps first-seen depth-first order so that repeated
// runs produce identical trees.
func CollectConditionals(node *Node) []variant.Conditional {
	seen := make(map[variant.Conditional]bool)
	var union []variant.Conditional
	add := func(cs []variant.Conditional) {
		for _, c := range cs {
			if !seen[c] {
				seen[c] = true
				union = append(union, c)
			}
		}
	}
	for _, child := range node.children {
		add(CollectConditionals(child))
	}
	add(node.conditionals)
	node.conditionals = union
	if node.Props == nil {
		node.Props = make(map[string]any)
	}
	node.Props[PropConditionalCount] = len(union)
	return union
}
