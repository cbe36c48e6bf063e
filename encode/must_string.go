package encode

import (
	"github.com/signadot/jsontree/ir"
)

// MustString is ToString for tests and diagnostics. It panics on error.
func MustString(node *ir.Node) string {
	s, err := ToString(node)
	if err != nil {
		panic(err)
	}
	return s
}
