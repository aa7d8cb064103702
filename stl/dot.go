package stl

import (
	"fmt"
	"strings"
)

// RenderDOT generates a Graphviz DOT representation of a formula tree.
// Connectives render as circles, leaves as boxes labeled by their own
// Stringer when they have one.
func RenderDOT(f Formula) string {
	var sb strings.Builder

	sb.WriteString("digraph Formula {\n")
	sb.WriteString("  rankdir=TB;\n")
	sb.WriteString("  node [shape=box];\n")
	sb.WriteString("\n")

	next := 0
	var walk func(f Formula) int
	walk = func(f Formula) int {
		id := next
		next++
		var sub1, sub2 Formula
		switch {
		case isAnd(f):
			sub1, sub2, _ = matchAnd(f)
			sb.WriteString(fmt.Sprintf("  n%d [shape=circle, label=\"∧\"];\n", id))
		case isOr(f):
			sub1, sub2, _ = matchOr(f)
			sb.WriteString(fmt.Sprintf("  n%d [shape=circle, label=\"∨\"];\n", id))
		default:
			sb.WriteString(fmt.Sprintf("  n%d [label=%q];\n", id, label(f)))
			return id
		}
		c1 := walk(sub1)
		c2 := walk(sub2)
		sb.WriteString(fmt.Sprintf("  n%d -> n%d;\n", id, c1))
		sb.WriteString(fmt.Sprintf("  n%d -> n%d;\n", id, c2))
		return id
	}
	walk(f)

	sb.WriteString("}\n")
	return sb.String()
}

func isAnd(f Formula) bool { _, _, ok := matchAnd(f); return ok }
func isOr(f Formula) bool  { _, _, ok := matchOr(f); return ok }
