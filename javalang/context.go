package javalang

import (
	"github.com/viant/adgraph/adg"
)

// ctx is the mutable lowering context threaded explicitly through every
// statement constructor, per §9's design note: one ADG handle, the source
// bytes backing identifier extraction, the configured recursion bound, and
// the current depth.
type ctx struct {
	graph  *adg.ADG
	source []byte
	cfg    Config
	depth  int
}

func newCtx(g *adg.ADG, source []byte, cfg Config) *ctx {
	return &ctx{graph: g, source: source, cfg: cfg}
}

// enter increments the recursion depth and reports whether the configured
// bound was exceeded; callers must call leave on every return path when
// enter succeeds.
func (c *ctx) enter() error {
	c.depth++
	if c.cfg.MaxRecursionDepth > 0 && c.depth > c.cfg.MaxRecursionDepth {
		return adg.ErrRecursionLimit
	}
	return nil
}

func (c *ctx) leave() {
	c.depth--
}
