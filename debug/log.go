package debug

import (
	"fmt"
	"os"

	"github.com/signadot/jsontree/encode"
	"github.com/signadot/jsontree/ir"
)

// Logf writes a message to stderr. *ir.Node arguments are rendered as
// JSON text.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			if x == nil {
				args[i] = "<nil>"
				continue
			}
			s, err := encode.ToString(x)
			if err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Node %s] %v", x.Path(), err)
				continue
			}
			args[i] = s
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
