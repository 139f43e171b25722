package vartree

import (
	"github.com/variant-framework/vartree/pkg/boolalg"
)

// Collapse compacts every path from a node labeled with exactly headSymbols
// down to a node labeled with exactly tailSymbols into a single edge carrying
// the concatenated symbol groups. Head nodes sit closer to the root, tail
// nodes closer to the leaves. The set and order of leaves is unchanged; only
// interior structure and symbol labels change.
//
// Symbol groups that do not occur in the tree yield empty node sets and the
// call is a no-op, as is collapsing a group onto itself.
func (n *Node) Collapse(headSymbols, tailSymbols []boolalg.Symbol) {
	headNodes := n.findBySymbols(headSymbols)
	tailNodes := n.findBySymbols(tailSymbols)
	for _, tail := range tailNodes {
		compactPath(tail.pathToHead(headNodes))
	}
}

// findBySymbols returns every node in the subtree whose symbol group equals
// search exactly. A matching node's descendants are not searched; they carry
// later groups by construction.
func (n *Node) findBySymbols(search []boolalg.Symbol) []*Node {
	if symbolsEqual(n.symbols, search) {
		return []*Node{n}
	}
	var found []*Node
	for _, child := range n.children {
		found = append(found, child.findBySymbols(search)...)
	}
	return found
}

// pathToHead walks upward from the node, accumulating the path tail first,
// until a head node is reached (inclusive) or the root has no parent.
func (n *Node) pathToHead(headNodes []*Node) []*Node {
	path := []*Node{n}
	node := n
	for !nodeIn(node, headNodes) && node.parent != nil {
		node = node.parent
		path = append(path, node)
	}
	return path
}

// compactPath splices the path's intermediate nodes out of the tree: the tail
// node takes over the path's concatenated symbol groups (in head-to-tail
// order, matching tree depth) and replaces the head node under the head's
// former parent. The head may already have been detached by an earlier path
// converging on it; that is not an error.
func compactPath(path []*Node) {
	if len(path) < 2 {
		return
	}
	var symbols []boolalg.Symbol
	for i := len(path) - 1; i >= 0; i-- {
		symbols = append(symbols, path[i].symbols...)
	}
	head := path[len(path)-1]
	parent := head.parent
	if parent == nil {
		return
	}
	removeChild(parent, head)
	tail := path[0]
	parent.children = append(parent.children, tail)
	tail.parent = parent
	tail.symbols = symbols
}

func removeChild(parent, child *Node) {
	for i, c := range parent.children {
		if c == child {
			parent.children = append(parent.children[:i], parent.children[i+1:]...)
			return
		}
	}
}

func nodeIn(node *Node, nodes []*Node) bool {
	for _, n := range nodes {
		if n == node {
			return true
		}
	}
	return false
}
