package jsontree

import (
	"github.com/signadot/jsontree/debug"
	"github.com/signadot/jsontree/ir"
	"github.com/signadot/jsontree/parse"
)

type config struct {
	alloc    ir.Allocator
	maxDepth int
}

type Option func(*config)

// WithAllocator installs a as the allocation hook. A hook returning false
// makes the operation asking for storage fail with ir.ErrOutOfMemory.
func WithAllocator(a ir.Allocator) Option {
	return func(c *config) { c.alloc = a }
}

// WithMaxDepth sets the nesting limit used by parsing when no per-call
// limit is given.
func WithMaxDepth(n int) Option {
	return func(c *config) { c.maxDepth = n }
}

// Initialize applies process-wide settings. Options not given take their
// defaults, so Initialize() resets everything. It may be called any number
// of times but not concurrently with itself or with tree operations.
func Initialize(opts ...Option) {
	cfg := &config{maxDepth: parse.DefaultMaxDepth}
	for _, opt := range opts {
		opt(cfg)
	}
	ir.SetAllocator(cfg.alloc)
	parse.SetDefaultMaxDepth(cfg.maxDepth)
	if debug.Init() {
		debug.Logf("jsontree: initialized allocator=%t maxDepth=%d\n", cfg.alloc != nil, cfg.maxDepth)
	}
}
