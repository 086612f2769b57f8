// Package whisker renders templates in a minimalist logic-less template
// language of the Mustache family.
//
// # Usage
//
//	ctx := ir.FromMap(map[string]*ir.Node{
//	    "name": ir.FromString("world"),
//	})
//	out, err := whisker.Render("Hello {{name}}!", ctx)
//
//	// with partials
//	partials := ir.FromMap(map[string]*ir.Node{
//	    "greeting": ir.FromString("Hello {{name}}!"),
//	})
//	out, err := whisker.Render("{{> greeting}}", ctx, render.WithPartials(partials))
//
// Templates that render many times parse once with Parse and render with
// render.Render directly.
//
// # Related Packages
//
//   - github.com/whisker-format/go-whisker/ir - value model and ingestion
//   - github.com/whisker-format/go-whisker/token - tokenization
//   - github.com/whisker-format/go-whisker/parse - tree building
//   - github.com/whisker-format/go-whisker/render - evaluation
package whisker

import (
	"github.com/whisker-format/go-whisker/ir"
	"github.com/whisker-format/go-whisker/parse"
	"github.com/whisker-format/go-whisker/render"
)

// Render parses template and renders it against ctx. Parse failures are
// fatal and yield no partial output; data-side conditions degrade to
// empty text.
func Render(template string, ctx *ir.Node, opts ...render.Option) (string, error) {
	nodes, err := parse.Parse([]byte(template))
	if err != nil {
		return "", err
	}
	return render.Render(nodes, ctx, opts...)
}

// Parse builds the template tree once for repeated rendering.
func Parse(template string, opts ...parse.Option) ([]*parse.Node, error) {
	return parse.Parse([]byte(template), opts...)
}
