package ir

import (
	"strconv"
	"strings"
)

// Path renders the location of n within its tree for diagnostics, e.g.
// "$.items[2].name". Names that are not plain identifiers are single
// quoted.
func (n *Node) Path() string {
	if n.parent == nil {
		return "$"
	}
	switch n.parent.typ {
	case ObjectType:
		f := n.parentField
		prefix := n.parent.Path()
		if f != "" && strings.IndexAny(f, "'.*$[] ") == -1 {
			return prefix + "." + f
		}
		return prefix + "['" + strings.ReplaceAll(f, "'", "\\'") + "']"
	case ArrayType:
		return n.parent.Path() + "[" + strconv.Itoa(n.parentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}
