package render

import "github.com/whisker-format/go-whisker/ir"

type renderOpts struct {
	partials        *ir.Node
	maxPartialDepth int
}

type Option func(*renderOpts)

// WithPartials supplies the partials mapping consulted by `{{>name}}`
// tags. Names absent from the mapping, and names bound to non-scalar
// values, expand to nothing.
func WithPartials(p *ir.Node) Option {
	return func(o *renderOpts) { o.partials = p }
}

// WithMaxPartialDepth bounds partial expansion depth. The default 0 means
// unlimited, preserving the language's unbounded recursive-partial
// behavior; a positive limit silently stops expanding past it.
func WithMaxPartialDepth(n int) Option {
	return func(o *renderOpts) { o.maxPartialDepth = n }
}
