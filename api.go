package jsontree

import (
	"github.com/signadot/jsontree/encode"
	"github.com/signadot/jsontree/ir"
	"github.com/signadot/jsontree/parse"
)

// New creates an empty root container of type t.
func New(t ir.Type) (*ir.Node, error) {
	return ir.New(t)
}

// Parse parses the first size bytes of text, or up to the first NUL byte
// when size is 0.
func Parse(text []byte, size int, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.ParseN(text, size, opts...)
}

// ToString returns the compact JSON text of n.
func ToString(n *ir.Node) (string, error) {
	return encode.ToString(n)
}

// Duplicate returns a deep copy of n as a new root.
func Duplicate(n *ir.Node) (*ir.Node, error) {
	return n.Duplicate()
}

// Destroy tears down the tree at *root and clears the handle.
func Destroy(root **ir.Node) {
	ir.Destroy(root)
}
