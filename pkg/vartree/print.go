package vartree

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes the tree rooted at node to w, one node per line, with
// markers indicating parent-child relationships:
//
//	[] -> {A: unset, B: unset} -> []
//	+- [A] -> {A: true, B: unset} -> []
//	|  +- [B] -> {A: true, B: true} -> [Part 1]
//	+- [~A] -> {A: false, B: unset} -> []
func Fprint(w io.Writer, node *Node) error {
	return FprintFunc(w, node, (*Node).String)
}

// FprintFunc is Fprint with a caller-supplied node renderer. It is driven
// purely by Children and the renderer.
func FprintFunc(w io.Writer, node *Node, render func(*Node) string) error {
	return fprint(w, node, render, nil)
}

func fprint(w io.Writer, node *Node, render func(*Node) string, markers []bool) error {
	var prefix strings.Builder
	for _, draw := range markers[:max(0, len(markers)-1)] {
		if draw {
			prefix.WriteString("|  ")
		} else {
			prefix.WriteString("   ")
		}
	}
	if len(markers) > 0 {
		prefix.WriteString("+- ")
	}
	if _, err := fmt.Fprintf(w, "%s%s\n", prefix.String(), render(node)); err != nil {
		return err
	}
	for i, child := range node.children {
		next := make([]bool, len(markers)+1)
		copy(next, markers)
		next[len(markers)] = i != len(node.children)-1
		if err := fprint(w, child, render, next); err != nil {
			return err
		}
	}
	return nil
}
