package ir

import "unsafe"

// Allocator is consulted before the package (and the parser and encoder)
// allocates size bytes of tree storage. Returning false refuses the
// allocation, which surfaces as ErrOutOfMemory.
type Allocator func(size int) bool

var allocator Allocator

// SetAllocator installs a as the process-wide allocation hook. A nil a
// grants every allocation. It must not be called concurrently with any tree
// operation.
func SetAllocator(a Allocator) {
	allocator = a
}

// Reserve asks the allocation hook for size bytes.
func Reserve(size int) error {
	if allocator == nil || allocator(size) {
		return nil
	}
	return ErrOutOfMemory
}

var nodeSize = int(unsafe.Sizeof(Node{}))

func allocNode(t Type) (*Node, error) {
	if err := Reserve(nodeSize); err != nil {
		return nil, err
	}
	return &Node{typ: t}, nil
}
