package parse

import (
	"fmt"
	"strings"

	"github.com/whisker-format/go-whisker/debug"
	"github.com/whisker-format/go-whisker/token"
)

// Parse tokenizes and builds template text into a node sequence.
func Parse(d []byte, opts ...Option) ([]*Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(nil, d, pOpts.tokOpts...)
	if err != nil {
		return nil, err
	}
	res, err := Build(toks)
	if err != nil {
		return nil, err
	}
	if debug.AST() {
		debug.Dump("ast", res)
	}
	return res, nil
}

// Build assembles a token sequence into a node tree. Sections extract the
// balanced token run up to their matching close and recurse into it.
func Build(toks []token.Token) ([]*Node, error) {
	var res []*Node
	i := 0
	for i < len(toks) {
		t := &toks[i]
		switch t.Type {
		case token.TText:
			res = append(res, &Node{Type: TextNode, Text: t.Text})
			i++
		case token.TVariable:
			typ := UnescapedNode
			if t.Escape {
				typ = VariableNode
			}
			res = append(res, &Node{Type: typ, Name: t.Name})
			i++
		case token.TComment:
			// standalone comments vanish with their line; others are
			// kept in the tree but never rendered
			if !t.Line.Standalone() {
				res = append(res, &Node{Type: CommentNode, Text: t.Text})
			}
			i++
		case token.TPartial:
			indent := ""
			if t.Line.Standalone() {
				indent = t.Line.LeadingWS
			}
			res = append(res, &Node{Type: PartialNode, Name: t.Name, Indent: indent})
			i++
		case token.TSectionOpen:
			j, err := matchClose(toks, i)
			if err != nil {
				return nil, err
			}
			run := toks[i+1 : j]
			if toks[j].Line.Standalone() {
				// whitespace preceding a standalone close shares its
				// line, so it goes the way of the close's newline
				run = stripCloseWS(run)
			}
			children, err := Build(run)
			if err != nil {
				return nil, err
			}
			typ := SectionNode
			if t.Inverted {
				typ = InvertedNode
			}
			res = append(res, &Node{Type: typ, Name: t.Name, Children: children})
			i = j + 1
		case token.TSectionClose:
			return nil, &BuildErr{Err: ErrUnopenedSection, Name: t.Name, Pos: t.Pos}
		default:
			return nil, fmt.Errorf("unexpected token %s", t.Info())
		}
	}
	return res, nil
}

// matchClose locates the close tag balancing the open at index open. The
// depth counter moves only on tags carrying the same name, so same-named
// nested sections stay balanced.
func matchClose(toks []token.Token, open int) (int, error) {
	name := toks[open].Name
	depth := 0
	for j := open + 1; j < len(toks); j++ {
		t := &toks[j]
		switch t.Type {
		case token.TSectionOpen:
			if t.Name == name {
				depth++
			}
		case token.TSectionClose:
			if t.Name == name {
				if depth == 0 {
					return j, nil
				}
				depth--
			}
		}
	}
	return 0, &BuildErr{Err: ErrUnclosedSection, Name: name, Pos: toks[open].Pos}
}

// stripCloseWS drops the trailing same-line whitespace from the last text
// token of a section run closed by a standalone tag.
func stripCloseWS(run []token.Token) []token.Token {
	if len(run) == 0 {
		return run
	}
	last := &run[len(run)-1]
	if last.Type != token.TText {
		return run
	}
	trimmed := strings.TrimRight(last.Text, " \t")
	if trimmed == last.Text {
		return run
	}
	out := make([]token.Token, len(run))
	copy(out, run)
	if trimmed == "" {
		return out[:len(out)-1]
	}
	out[len(out)-1].Text = trimmed
	return out
}
