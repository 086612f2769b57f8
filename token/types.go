package token

import "fmt"

type TokenType int

const (
	TText TokenType = iota
	TVariable
	TSectionOpen
	TSectionClose
	TComment
	TPartial
)

func (t TokenType) String() string {
	s, ok := map[TokenType]string{
		TText:         "TText",
		TVariable:     "TVariable",
		TSectionOpen:  "TSectionOpen",
		TSectionClose: "TSectionClose",
		TComment:      "TComment",
		TPartial:      "TPartial",
	}[t]
	if ok {
		return s
	}
	return "<unknown token type>"
}

func (t TokenType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Delims is the current tag marker pair. It is scoped to one tokenize
// call and replaced, never mutated, on a delimiter-change directive.
type Delims struct {
	Open  string
	Close string
}

var DefaultDelims = Delims{Open: "{{", Close: "}}"}

// LineInfo records where a tag sits on its source line.
type LineInfo struct {
	// LeadingWS is the whitespace between the start of the line and the
	// tag, when nothing but whitespace precedes it.
	LeadingWS string
	// TrailingWS is the same-line whitespace immediately after the tag.
	TrailingWS string
	// NewlineAfter reports whether a line terminator follows TrailingWS.
	NewlineAfter bool
	// FirstOnLine reports whether the tag is the first non-whitespace
	// token on its line. The start of input counts as a line start.
	FirstOnLine bool
	// LastOnLine reports whether the tag is the last non-whitespace
	// token on its line.
	LastOnLine bool
	// AtEOF reports whether the tag reaches the end of input after
	// TrailingWS.
	AtEOF bool
}

// Standalone reports whether the tag is alone on its line. Standalone
// non-variable tags have their entire source line elided from output.
func (li LineInfo) Standalone() bool {
	return li.FirstOnLine && li.LastOnLine && (li.NewlineAfter || li.AtEOF)
}

type Token struct {
	Type TokenType
	// Text is the literal content of a TText token, or the raw body of a
	// TComment token.
	Text string
	// Name is the trimmed tag name for variable, section, and partial
	// tokens.
	Name string
	// Escape reports whether a TVariable interpolation is HTML-escaped.
	Escape bool
	// Inverted distinguishes `{{^name}}` from `{{#name}}`.
	Inverted bool

	Line LineInfo
	Pos  *Pos
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}
