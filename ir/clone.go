package ir

// Duplicate returns a deep copy of the subtree rooted at n as a new root.
// The copy shares nothing with n.
func (n *Node) Duplicate() (*Node, error) {
	if n == nil {
		return nil, opErr("Duplicate", nil, ErrNullArgument)
	}
	res, err := n.cloneTo()
	if err != nil {
		return nil, opErr("Duplicate", n, err)
	}
	return res, nil
}

func (n *Node) cloneTo() (*Node, error) {
	if n.typ == StringType {
		if err := Reserve(len(n.str)); err != nil {
			return nil, err
		}
	}
	dst, err := allocNode(n.typ)
	if err != nil {
		return nil, err
	}
	dst.str = n.str
	dst.b = n.b
	dst.i = n.i
	dst.f = n.f
	if len(n.values) == 0 {
		return dst, nil
	}
	dst.values = make([]*Node, len(n.values))
	if n.typ == ObjectType {
		dst.names = make([]string, len(n.names))
	}
	for i, v := range n.values {
		dstI, err := v.cloneTo()
		if err != nil {
			return nil, err
		}
		dstI.parent = dst
		dstI.parentIndex = i
		if n.typ == ObjectType {
			if err := Reserve(len(n.names[i])); err != nil {
				return nil, err
			}
			dst.names[i] = n.names[i]
			dstI.parentField = n.names[i]
		}
		dst.values[i] = dstI
	}
	return dst, nil
}

// Destroy tears down the tree held by *root and sets *root to nil. Calling
// it with a nil pointer or a nil handle does nothing. A handle to a node that
// is owned by a container is only cleared: the owning tree is left intact.
func Destroy(root **Node) {
	if root == nil || *root == nil {
		return
	}
	n := *root
	*root = nil
	if n.parent != nil {
		return
	}
	_ = n.Visit(func(y *Node, isPost bool) (bool, error) {
		if !isPost {
			return true, nil
		}
		y.parent = nil
		y.names = nil
		y.values = nil
		y.str = ""
		return true, nil
	})
}
