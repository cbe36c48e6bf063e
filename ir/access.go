package ir

import "math"

// ArrayItem returns the i'th element of an array. The element stays owned
// by the array.
func (n *Node) ArrayItem(i int) (*Node, error) {
	if n == nil {
		return nil, opErr("ArrayItem", nil, ErrNullArgument)
	}
	if n.typ != ArrayType {
		return nil, opErr("ArrayItem", n, ErrTypeMismatch)
	}
	if i < 0 || i >= len(n.values) {
		return nil, opErr("ArrayItem", n, ErrInvalidParameter)
	}
	return n.values[i], nil
}

func (n *Node) ArraySize() (int, error) {
	if n == nil {
		return 0, opErr("ArraySize", nil, ErrNullArgument)
	}
	if n.typ != ArrayType {
		return 0, opErr("ArraySize", n, ErrTypeMismatch)
	}
	return len(n.values), nil
}

// ObjectItem finds the direct child called name. Non-objects have no named
// children, so they report ErrNonExistingChild as well.
func (n *Node) ObjectItem(name string) (*Node, error) {
	if n == nil {
		return nil, opErr("ObjectItem", nil, ErrNullArgument)
	}
	if n.typ == ObjectType {
		for i, f := range n.names {
			if f == name {
				return n.values[i], nil
			}
		}
	}
	return nil, nameErr("ObjectItem", n, name, ErrNonExistingChild)
}

func (n *Node) HasChild() (bool, error) {
	if n == nil {
		return false, opErr("HasChild", nil, ErrNullArgument)
	}
	return len(n.values) != 0, nil
}

// NumberValue returns the integer value of an Integer or Double node.
// Doubles are truncated toward zero and saturate at the int32 bounds.
func (n *Node) NumberValue() (int32, error) {
	if n == nil {
		return 0, opErr("NumberValue", nil, ErrNullArgument)
	}
	switch n.typ {
	case IntegerType:
		return n.i, nil
	case DoubleType:
		return truncInt32(n.f), nil
	default:
		return 0, opErr("NumberValue", n, ErrTypeMismatch)
	}
}

func truncInt32(f float64) int32 {
	t := math.Trunc(f)
	switch {
	case math.IsNaN(t):
		return 0
	case t >= math.MaxInt32:
		return math.MaxInt32
	case t <= math.MinInt32:
		return math.MinInt32
	default:
		return int32(t)
	}
}

func (n *Node) DoubleValue() (float64, error) {
	if n == nil {
		return 0, opErr("DoubleValue", nil, ErrNullArgument)
	}
	if n.typ != DoubleType {
		return 0, opErr("DoubleValue", n, ErrTypeMismatch)
	}
	return n.f, nil
}

func (n *Node) BoolValue() (bool, error) {
	if n == nil {
		return false, opErr("BoolValue", nil, ErrNullArgument)
	}
	if n.typ != BoolType {
		return false, opErr("BoolValue", n, ErrTypeMismatch)
	}
	return n.b, nil
}

// StringValue returns the value of a String node. The result does not
// alias the tree.
func (n *Node) StringValue() (string, error) {
	if n == nil {
		return "", opErr("StringValue", nil, ErrNullArgument)
	}
	if n.typ != StringType {
		return "", opErr("StringValue", n, ErrTypeMismatch)
	}
	if err := Reserve(len(n.str)); err != nil {
		return "", opErr("StringValue", n, err)
	}
	return n.str, nil
}

// IntegerValue is the strict counterpart of NumberValue.
func (n *Node) IntegerValue() (int32, error) {
	if n == nil {
		return 0, opErr("IntegerValue", nil, ErrNullArgument)
	}
	if n.typ != IntegerType {
		return 0, opErr("IntegerValue", n, ErrTypeMismatch)
	}
	return n.i, nil
}
