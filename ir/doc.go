// Package ir provides the in-memory representation of JSON documents.
//
// # Overview
//
// A document is a tree of *Node values. Every node has a Type:
//
//   - NullType: null
//   - BoolType: true / false
//   - IntegerType: signed 32-bit integer
//   - DoubleType: finite IEEE-754 double
//   - StringType: UTF-8 string
//   - ArrayType: ordered children
//   - ObjectType: ordered named children, names unique
//
// The payload of a node is private. Read it with the checked accessors,
// which fail with ErrTypeMismatch when the node is of another kind:
//
//	n, err := root.ObjectItem("count")
//	v, err := n.NumberValue()
//
// # Building
//
// Roots are created with New and grown with the builder methods. Object
// members take a name, array elements take NoName:
//
//	root, err := ir.New(ir.ObjectType)
//	err = root.AddString(ir.Name("kind"), "point")
//	coords, err := root.StartArray(ir.Name("coords"))
//	err = coords.AddDouble(ir.NoName, 1.5)
//
// Every insertion is all or nothing. A name already used in the target
// object fails with ErrNameDuplication, a name given to an array or missing
// for an object fails with ErrInvalidParameter, and in both cases the target
// is left untouched.
//
// # Ownership
//
// A node belongs to exactly one container. AddObject and AddItemToArray
// move a detached root into a container; attaching a node that already has
// a parent, or a node into its own subtree, fails with ErrInvalidParameter.
// Duplicate returns an independent deep copy and Destroy tears a root down,
// clearing the caller's handle.
//
// # Errors
//
// Operations return sentinel errors (ErrNullArgument, ErrOutOfMemory,
// ErrInvalidParameter, ErrTypeMismatch, ErrNameDuplication,
// ErrNonExistingChild, ErrFail), usually wrapped in an *Error that records
// the operation and the location of the target node. CodeOf maps any error
// back to a Code.
//
// # Allocation
//
// SetAllocator installs a process-wide hook consulted before node, name and
// string storage is allocated. A refused allocation fails the operation
// with ErrOutOfMemory and leaves the tree as it was.
//
// # Thread Safety
//
// Node structures are not thread-safe. If you need to access nodes from
// multiple goroutines, you must synchronize access yourself or duplicate
// nodes for each goroutine.
//
// # Related Packages
//
//   - github.com/signadot/jsontree/parse - Parses text into IR nodes
//   - github.com/signadot/jsontree/encode - Encodes IR nodes to text
package ir
