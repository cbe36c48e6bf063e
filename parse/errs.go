package parse

import (
	"fmt"

	"github.com/signadot/jsontree/ir"
)

var (
	// ErrParse is wrapped by every grammar violation.
	ErrParse = fmt.Errorf("%w: parse error", ir.ErrFail)
	// ErrDepth reports nesting beyond the configured maximum depth.
	ErrDepth = fmt.Errorf("%w: maximum nesting depth exceeded", ErrParse)
	// ErrTrailing reports non-whitespace input after the root value.
	ErrTrailing = fmt.Errorf("%w: trailing data", ErrParse)
	// ErrIncomplete is wrapped when the input ends before the root value
	// is complete.
	ErrIncomplete = fmt.Errorf("%w: no complete value in buffer", ir.ErrInvalidParameter)
)
