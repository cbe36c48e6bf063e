package ir

import (
	"math"
	"unicode/utf8"
)

// checkInsert validates an insertion of a child under k into n without
// touching n. valid reports whether the payload itself is acceptable. The
// checks run in a fixed order so that the reported error does not depend
// on which of several problems is looked at first.
func (n *Node) checkInsert(op string, k Key, valid bool) error {
	if n == nil {
		return opErr(op, nil, ErrNullArgument)
	}
	switch n.typ {
	case ArrayType:
		if k.named {
			return nameErr(op, n, k.name, ErrInvalidParameter)
		}
	case ObjectType:
		if !k.named {
			return opErr(op, n, ErrInvalidParameter)
		}
		if !utf8.ValidString(k.name) {
			return nameErr(op, n, k.name, ErrInvalidParameter)
		}
	default:
		return opErr(op, n, ErrTypeMismatch)
	}
	if !valid {
		return nameErr(op, n, k.name, ErrInvalidParameter)
	}
	if n.typ == ObjectType {
		for _, name := range n.names {
			if name == k.name {
				return nameErr(op, n, k.name, ErrNameDuplication)
			}
		}
	}
	return nil
}

// reserveName accounts for the storage of an object member name.
func (n *Node) reserveName(k Key) error {
	if n.typ != ObjectType {
		return nil
	}
	return Reserve(len(k.name))
}

// attach appends c to n under k. All checks must have passed.
func (n *Node) attach(k Key, c *Node) {
	c.parent = n
	c.parentIndex = len(n.values)
	c.parentField = ""
	if n.typ == ObjectType {
		c.parentField = k.name
		n.names = append(n.names, k.name)
	}
	n.values = append(n.values, c)
}

// insert runs the shared insertion contract for a freshly allocated child
// of type t, letting fill set its payload before it becomes visible.
func (n *Node) insert(op string, k Key, t Type, valid bool, extra int, fill func(c *Node)) (*Node, error) {
	if err := n.checkInsert(op, k, valid); err != nil {
		return nil, err
	}
	if err := n.reserveName(k); err != nil {
		return nil, nameErr(op, n, k.name, err)
	}
	if extra > 0 {
		if err := Reserve(extra); err != nil {
			return nil, nameErr(op, n, k.name, err)
		}
	}
	c, err := allocNode(t)
	if err != nil {
		return nil, nameErr(op, n, k.name, err)
	}
	if fill != nil {
		fill(c)
	}
	n.attach(k, c)
	return c, nil
}

// StartArray creates an empty array under k and returns it.
func (n *Node) StartArray(k Key) (*Node, error) {
	return n.insert("StartArray", k, ArrayType, true, 0, nil)
}

// StartObject creates an empty object under k and returns it.
func (n *Node) StartObject(k Key) (*Node, error) {
	return n.insert("StartObject", k, ObjectType, true, 0, nil)
}

func (n *Node) AddString(k Key, v string) error {
	_, err := n.insert("AddString", k, StringType, utf8.ValidString(v), len(v), func(c *Node) { c.str = v })
	return err
}

// AddUint adds an unsigned number. Values above math.MaxInt32 do not fit
// an Integer node and are stored as a Double.
func (n *Node) AddUint(k Key, v uint) error {
	if uint64(v) <= math.MaxInt32 {
		_, err := n.insert("AddUint", k, IntegerType, true, 0, func(c *Node) { c.i = int32(v) })
		return err
	}
	_, err := n.insert("AddUint", k, DoubleType, true, 0, func(c *Node) { c.f = float64(v) })
	return err
}

func (n *Node) AddInt(k Key, v int32) error {
	_, err := n.insert("AddInt", k, IntegerType, true, 0, func(c *Node) { c.i = v })
	return err
}

// AddDouble fails with ErrInvalidParameter for NaN and infinities.
func (n *Node) AddDouble(k Key, v float64) error {
	finite := !math.IsNaN(v) && !math.IsInf(v, 0)
	_, err := n.insert("AddDouble", k, DoubleType, finite, 0, func(c *Node) { c.f = v })
	return err
}

func (n *Node) AddBool(k Key, v bool) error {
	_, err := n.insert("AddBool", k, BoolType, true, 0, func(c *Node) { c.b = v })
	return err
}

func (n *Node) AddNull(k Key) error {
	_, err := n.insert("AddNull", k, NullType, true, 0, nil)
	return err
}

// AddObject moves the detached root c into the object n under name. After
// success n owns c.
func (n *Node) AddObject(name string, c *Node) error {
	return n.adopt("AddObject", Name(name), c)
}

// AddItemToArray moves the detached root c to the end of the array n. After
// success n owns c.
func (n *Node) AddItemToArray(c *Node) error {
	return n.adopt("AddItemToArray", NoName, c)
}

func (n *Node) adopt(op string, k Key, c *Node) error {
	if n == nil || c == nil {
		return opErr(op, n, ErrNullArgument)
	}
	// c must be a root, and must not be n or hold n.
	owned := c.parent != nil || c.isAncestorOf(n)
	if err := n.checkInsert(op, k, !owned); err != nil {
		return err
	}
	if err := n.reserveName(k); err != nil {
		return nameErr(op, n, k.name, err)
	}
	n.attach(k, c)
	return nil
}
