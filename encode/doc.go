// Package encode encodes IR nodes to compact JSON text.
//
// # Usage
//
//	root, _ := ir.New(ir.ObjectType)
//	_ = root.AddString(ir.Name("name"), "alice")
//	_ = root.AddInt(ir.Name("age"), 30)
//	s, err := encode.ToString(root) // {"name":"alice","age":30}
//
//	// Encode to a writer, in color
//	err = encode.Encode(root, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// Members and elements are written in insertion order without whitespace.
// Doubles always carry a fraction or exponent so that they parse back as
// doubles.
//
// # Related Packages
//
//   - github.com/signadot/jsontree/ir - IR representation
//   - github.com/signadot/jsontree/parse - Parse text to IR
package encode
