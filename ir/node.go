package ir

import (
	"iter"
	"math"
	"unicode/utf8"
)

// Node is one JSON value. The payload fields are private: read them with
// the checked accessors (NumberValue, StringValue, ...) which fail with
// ErrTypeMismatch on the wrong kind.
type Node struct {
	typ         Type
	parent      *Node
	parentIndex int
	parentField string

	// names[i] is the name of values[i] for ObjectType.
	names  []string
	values []*Node

	str string
	b   bool
	i   int32
	f   float64
}

// New creates an empty root of type ArrayType or ObjectType.
func New(t Type) (*Node, error) {
	if !t.IsContainer() {
		return nil, opErr("New", nil, ErrInvalidParameter)
	}
	n, err := allocNode(t)
	if err != nil {
		return nil, opErr("New", nil, err)
	}
	return n, nil
}

// NewNull creates a detached null node, suitable for AddObject and
// AddItemToArray.
func NewNull() (*Node, error) {
	n, err := allocNode(NullType)
	if err != nil {
		return nil, opErr("NewNull", nil, err)
	}
	return n, nil
}

func NewBool(v bool) (*Node, error) {
	n, err := allocNode(BoolType)
	if err != nil {
		return nil, opErr("NewBool", nil, err)
	}
	n.b = v
	return n, nil
}

func NewInt(v int32) (*Node, error) {
	n, err := allocNode(IntegerType)
	if err != nil {
		return nil, opErr("NewInt", nil, err)
	}
	n.i = v
	return n, nil
}

// NewDouble fails with ErrInvalidParameter for NaN and infinities, which
// have no JSON form.
func NewDouble(v float64) (*Node, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, opErr("NewDouble", nil, ErrInvalidParameter)
	}
	n, err := allocNode(DoubleType)
	if err != nil {
		return nil, opErr("NewDouble", nil, err)
	}
	n.f = v
	return n, nil
}

func NewString(v string) (*Node, error) {
	if !utf8.ValidString(v) {
		return nil, opErr("NewString", nil, ErrInvalidParameter)
	}
	if err := Reserve(len(v)); err != nil {
		return nil, opErr("NewString", nil, err)
	}
	n, err := allocNode(StringType)
	if err != nil {
		return nil, opErr("NewString", nil, err)
	}
	n.str = v
	return n, nil
}

func (n *Node) Type() Type {
	return n.typ
}

// Len is the number of direct children, 0 for scalars.
func (n *Node) Len() int {
	return len(n.values)
}

// Child returns the i'th direct child. It panics if i is out of range.
func (n *Node) Child(i int) *Node {
	return n.values[i]
}

// Name returns the name of the i'th member of an object, "" for arrays.
func (n *Node) Name(i int) string {
	if n.typ != ObjectType {
		return ""
	}
	return n.names[i]
}

// All iterates over direct children in insertion order. Array children
// are yielded with an empty name.
func (n *Node) All() iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		for i, v := range n.values {
			if !yield(n.Name(i), v) {
				return
			}
		}
	}
}

func (n *Node) Parent() *Node {
	return n.parent
}

func (n *Node) ParentIndex() int {
	return n.parentIndex
}

// ParentName is the name under which n is held by an object parent.
func (n *Node) ParentName() string {
	return n.parentField
}

func (n *Node) Root() *Node {
	res := n
	for res.parent != nil {
		res = res.parent
	}
	return res
}

// Visit walks the subtree rooted at n, calling f before (isPost false) and
// after (isPost true) each node's children. Children are skipped when the
// pre-order call returns false.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.values {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

func (n *Node) isAncestorOf(c *Node) bool {
	for p := c; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}
