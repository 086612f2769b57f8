package render

import (
	"strings"

	"github.com/whisker-format/go-whisker/ir"
	"github.com/whisker-format/go-whisker/parse"
)

// Render evaluates nodes against ctx and returns the output text. ctx is
// the fixed root context; sections push resolved values onto a context
// stack consulted innermost-first. The returned error can only arise from
// a partial whose text fails to parse at expansion time.
func Render(nodes []*parse.Node, ctx *ir.Node, opts ...Option) (string, error) {
	o := &renderOpts{}
	for _, f := range opts {
		f(o)
	}
	rs := &state{
		root:     ctx,
		partials: o.partials,
		maxDepth: o.maxPartialDepth,
	}
	var sb strings.Builder
	if err := rs.render(&sb, nodes, nil); err != nil {
		return "", err
	}
	return sb.String(), nil
}

type state struct {
	root     *ir.Node
	partials *ir.Node
	maxDepth int
	depth    int
}

func (rs *state) render(sb *strings.Builder, nodes []*parse.Node, stack []*ir.Node) error {
	for _, n := range nodes {
		switch n.Type {
		case parse.TextNode:
			sb.WriteString(n.Text)
		case parse.VariableNode:
			sb.WriteString(escapeHTML(rs.variable(n.Name, stack)))
		case parse.UnescapedNode:
			sb.WriteString(rs.variable(n.Name, stack))
		case parse.CommentNode:
			// retained in the tree, never rendered
		case parse.SectionNode:
			if err := rs.section(sb, n, stack, false); err != nil {
				return err
			}
		case parse.InvertedNode:
			if err := rs.section(sb, n, stack, true); err != nil {
				return err
			}
		case parse.PartialNode:
			if err := rs.partial(sb, n, stack); err != nil {
				return err
			}
		}
	}
	return nil
}

// resolveVar resolves a field path for interpolation. An enclosing
// section that can resolve the path's first segment shadows the root for
// that path, even when its own full-path lookup fails.
func (rs *state) resolveVar(path string, stack []*ir.Node) *ir.Node {
	if path == "." {
		if len(stack) > 0 {
			return stack[0]
		}
		return rs.root
	}
	head := ir.PathHead(path)
	canUseRoot := true
	for _, c := range stack {
		if _, ok := ir.Lookup(c, head); ok {
			canUseRoot = false
			break
		}
	}
	for _, c := range stack {
		if v, ok := ir.Lookup(c, path); ok {
			return v
		}
	}
	if canUseRoot {
		if v, ok := ir.Lookup(rs.root, path); ok {
			return v
		}
	}
	return nil
}

func (rs *state) variable(path string, stack []*ir.Node) string {
	v := rs.resolveVar(path, stack)
	if v == nil || v.Type != ir.ScalarType {
		return ""
	}
	return v.String
}

// resolveSection resolves a section name against the full current
// context: stack innermost-first, then root, with no shadowing.
func (rs *state) resolveSection(path string, stack []*ir.Node) *ir.Node {
	if path == "." {
		if len(stack) > 0 {
			return stack[0]
		}
		return rs.root
	}
	for _, c := range stack {
		if v, ok := ir.Lookup(c, path); ok {
			return v
		}
	}
	if v, ok := ir.Lookup(rs.root, path); ok {
		return v
	}
	return nil
}

func (rs *state) section(sb *strings.Builder, n *parse.Node, stack []*ir.Node, inverted bool) error {
	push := func(v *ir.Node) []*ir.Node {
		next := make([]*ir.Node, 0, len(stack)+1)
		next = append(next, v)
		return append(next, stack...)
	}
	v := rs.resolveSection(n.Name, stack)
	if v == nil {
		if inverted {
			return rs.render(sb, n.Children, stack)
		}
		// a name the lookup cannot split, held literally as a key by
		// the immediately enclosing context, still selects the section
		if len(stack) > 0 {
			if f := ir.Get(stack[0], n.Name); f != nil {
				return rs.render(sb, n.Children, push(f))
			}
		}
		return nil
	}
	switch v.Type {
	case ir.NullType:
		if inverted {
			return rs.render(sb, n.Children, stack)
		}
		return nil
	case ir.ScalarType:
		falsy := v.String == "false"
		if inverted != falsy {
			return nil
		}
		return rs.render(sb, n.Children, push(v))
	case ir.SequenceType:
		if len(v.Values) == 0 {
			if !inverted {
				return nil
			}
			cur := rs.root
			if len(stack) > 0 {
				cur = stack[0]
			}
			return rs.render(sb, n.Children, push(cur))
		}
		if inverted {
			return nil
		}
		for _, elt := range v.Values {
			if err := rs.render(sb, n.Children, push(elt)); err != nil {
				return err
			}
		}
		return nil
	case ir.MappingType:
		if inverted {
			return nil
		}
		return rs.render(sb, n.Children, push(v))
	}
	return nil
}

func (rs *state) partial(sb *strings.Builder, n *parse.Node, stack []*ir.Node) error {
	p := ir.Get(rs.partials, n.Name)
	if p == nil || p.Type != ir.ScalarType {
		return nil
	}
	if rs.maxDepth > 0 && rs.depth >= rs.maxDepth {
		return nil
	}
	text := p.String
	if n.Indent != "" {
		text = indentLines(text, n.Indent)
	}
	// re-tokenized and rebuilt on every reference, always under the
	// default delimiter pair
	nodes, err := parse.Parse([]byte(text))
	if err != nil {
		return err
	}
	rs.depth++
	err = rs.render(sb, nodes, stack)
	rs.depth--
	return err
}

// indentLines prefixes every non-empty line of text with indent. Blank
// lines stay un-indented.
func indentLines(text, indent string) string {
	var sb strings.Builder
	for len(text) > 0 {
		var line string
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			line, text = text[:i+1], text[i+1:]
		} else {
			line, text = text, ""
		}
		switch line {
		case "", "\n", "\r\n":
		default:
			sb.WriteString(indent)
		}
		sb.WriteString(line)
	}
	return sb.String()
}
