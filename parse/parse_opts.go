package parse

// DefaultMaxDepth bounds the nesting of arrays and objects accepted by the
// parser. The root container is at depth 1.
const DefaultMaxDepth = 1000

var defaultMaxDepth = DefaultMaxDepth

// SetDefaultMaxDepth changes the limit used when no MaxDepth option is
// given. n <= 0 restores DefaultMaxDepth. It must not be called
// concurrently with Parse.
func SetDefaultMaxDepth(n int) {
	if n <= 0 {
		n = DefaultMaxDepth
	}
	defaultMaxDepth = n
}

type parseOpts struct {
	maxDepth int
}

type ParseOption func(*parseOpts)

// MaxDepth sets the nesting limit for one call. n <= 0 keeps the default.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) {
		if n > 0 {
			o.maxDepth = n
		}
	}
}
