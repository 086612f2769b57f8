// Package render evaluates built template trees against a value context.
//
// # Usage
//
//	nodes, err := parse.Parse([]byte("Hello {{name}}!"))
//	if err != nil {
//	    return err
//	}
//	out, err := render.Render(nodes, ir.FromMap(map[string]*ir.Node{
//	    "name": ir.FromString("world"),
//	}))
//
// Rendering walks the tree with a context stack: each entered section
// pushes its resolved value, and field paths resolve innermost-first with
// the root context as fallback. Data-side conditions never fail — missing
// fields, wrong-shaped section values, and absent partials all degrade to
// empty output. The only error source is re-parsing a malformed partial
// at expansion time.
//
// Partials are re-tokenized and rebuilt on every reference with no
// caching and no cycle detection; a self-referential partial recurses
// until the call stack runs out unless WithMaxPartialDepth is set.
package render
