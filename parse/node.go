package parse

type NodeType int

const (
	TextNode NodeType = iota
	VariableNode
	UnescapedNode
	SectionNode
	InvertedNode
	CommentNode
	PartialNode
)

func (t NodeType) String() string {
	s, ok := map[NodeType]string{
		TextNode:      "Text",
		VariableNode:  "Variable",
		UnescapedNode: "Unescaped",
		SectionNode:   "Section",
		InvertedNode:  "Inverted",
		CommentNode:   "Comment",
		PartialNode:   "Partial",
	}[t]
	if ok {
		return s
	}
	return "<unknown node type>"
}

func (t NodeType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Node is one element of a built template tree. Section and inverted
// section nodes own their Children; the tree holds no back-references and
// is immutable once built.
type Node struct {
	Type NodeType
	// Text is the literal content of a text node, or the raw body of a
	// comment node. Comment nodes are retained but never rendered.
	Text string
	// Name is the dotted field path of a variable node, or the tag name
	// of a section or partial node.
	Name string
	// Children is the body of a section or inverted section node.
	Children []*Node
	// Indent is the indentation captured by a standalone partial tag,
	// reapplied to the partial's lines at render time.
	Indent string
}
