// Package jsontree builds, inspects, parses and serializes in-memory JSON
// documents.
//
// The tree itself lives in package ir, text is read by package parse and
// written by package encode. This package ties them together with
// process-wide setup and conversion from and to Go values:
//
//	jsontree.Initialize(jsontree.WithMaxDepth(64))
//
//	root, err := jsontree.Parse([]byte(`{"a":[1,2.5,"x"]}`), 0)
//	s, err := jsontree.ToString(root) // {"a":[1,2.5,"x"]}
//
//	var v struct{ A []any }
//	err = jsontree.Decode(root, &v)
//
//	jsontree.Destroy(&root)
package jsontree
