package ir

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the subtree rooted at n. Nodes that are
// Equal hash the same within a process.
// It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}

	var h maphash.Hash
	h.SetSeed(hashSeed)
	h.WriteByte(byte(n.typ))

	var b [8]byte
	switch n.typ {
	case NullType:
	case BoolType:
		if n.b {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case IntegerType:
		binary.LittleEndian.PutUint32(b[:4], uint32(n.i))
		h.Write(b[:4])
	case DoubleType:
		f := n.f
		if f == 0 {
			// -0 and +0 are Equal
			f = 0
		}
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(f))
		h.Write(b[:])
	case StringType:
		h.WriteString(n.str)
	case ArrayType:
		for _, v := range n.values {
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			h.Write(b[:])
		}
	case ObjectType:
		for i, name := range n.names {
			binary.LittleEndian.PutUint64(b[:], uint64(len(name)))
			h.Write(b[:])
			h.WriteString(name)
			binary.LittleEndian.PutUint64(b[:], n.values[i].Hash())
			h.Write(b[:])
		}
	}
	return h.Sum64()
}
