package token

import (
	"bytes"
	"strings"

	"github.com/whisker-format/go-whisker/debug"
)

// Tokenize scans a template into tokens, appending to dst. The delimiter
// pair starts at the configured pair (default `{{`/`}}`) and is replaced
// in place by `{{=OPEN CLOSE=}}` directives, which consume their source
// text without emitting a token. Delimiter state lives entirely in this
// call, so concurrent tokenize calls are independent.
//
// Standalone non-variable tags trim the final partial line of the
// preceding Text token and swallow their trailing whitespace plus exactly
// one line terminator, removing the whole source line from output.
func Tokenize(dst []Token, src []byte, opts ...TokenOpt) ([]Token, error) {
	opt := &tokenOpts{delims: DefaultDelims}
	for _, o := range opts {
		o(opt)
	}
	tz := &tokenizer{
		src:       src,
		posDoc:    NewPosDoc(src),
		delims:    opt.delims,
		lineClean: true,
	}
	res, err := tz.run(dst)
	if err != nil {
		return nil, err
	}
	if debug.Tokens() {
		debug.Dump("tokens", res)
	}
	return res, nil
}

type tokenizer struct {
	src    []byte
	pos    int
	delims Delims
	posDoc *PosDoc

	// lineClean reports whether everything consumed so far on the
	// current line is whitespace. Input start counts as a line start.
	lineClean bool
}

func (tz *tokenizer) run(dst []Token) ([]Token, error) {
	for tz.pos < len(tz.src) {
		rest := tz.src[tz.pos:]
		openIdx := bytes.Index(rest, []byte(tz.delims.Open))
		if openIdx < 0 {
			dst = append(dst, tz.textToken(string(rest), tz.pos))
			tz.pos = len(tz.src)
			break
		}
		var err error
		dst, err = tz.tag(dst, string(rest[:openIdx]), tz.pos+openIdx)
		if err != nil {
			return nil, err
		}
	}
	return dst, nil
}

// tag scans one tag starting at the open delimiter at offset openPos,
// preceded by the literal text pre.
func (tz *tokenizer) tag(dst []Token, pre string, openPos int) ([]Token, error) {
	contentStart := openPos + len(tz.delims.Open)

	// a '{' immediately after a default open denotes a triple-mustache
	// unescaped variable, closed by one extra '}' after the close
	triple := tz.delims == DefaultDelims &&
		contentStart < len(tz.src) && tz.src[contentStart] == '{'

	closeIdx := bytes.Index(tz.src[contentStart:], []byte(tz.delims.Close))
	if closeIdx < 0 {
		return nil, NewTokenizeErr(ErrUnclosedTag, tz.posDoc.Pos(openPos))
	}
	contentEnd := contentStart + closeIdx
	afterClose := contentEnd + len(tz.delims.Close)
	content := string(tz.src[contentStart:contentEnd])
	if triple {
		if afterClose >= len(tz.src) || tz.src[afterClose] != '}' {
			return nil, NewTokenizeErr(ErrUnclosedTag, tz.posDoc.Pos(openPos))
		}
		afterClose++
	}

	tok := Token{Pos: tz.posDoc.Pos(openPos)}
	emit := true
	eligible := true // variable tags are never standalone-eligible
	newDelims := tz.delims
	switch {
	case triple:
		tok.Type = TVariable
		tok.Name = strings.TrimSpace(content[1:])
	case content == "":
		tok.Type = TVariable
		tok.Name = ""
		tok.Escape = true
	default:
		switch content[0] {
		case '!':
			tok.Type = TComment
			tok.Text = content[1:]
		case '=':
			fields := strings.Fields(strings.TrimSuffix(content[1:], "="))
			if len(fields) != 2 {
				return nil, NewTokenizeErr(ErrBadDelimChange, tz.posDoc.Pos(openPos))
			}
			newDelims = Delims{Open: fields[0], Close: fields[1]}
			emit = false
		case '#':
			tok.Type = TSectionOpen
			tok.Name = strings.TrimSpace(content[1:])
		case '^':
			tok.Type = TSectionOpen
			tok.Name = strings.TrimSpace(content[1:])
			tok.Inverted = true
		case '/':
			tok.Type = TSectionClose
			tok.Name = strings.TrimSpace(content[1:])
		case '>':
			tok.Type = TPartial
			tok.Name = strings.TrimSpace(content[1:])
		case '&':
			tok.Type = TVariable
			tok.Name = strings.TrimSpace(content[1:])
		default:
			tok.Type = TVariable
			tok.Name = strings.TrimSpace(content)
			tok.Escape = true
		}
	}
	if tok.Type == TVariable {
		eligible = false
	}

	// line metadata: whitespace before the tag on its line,
	// whitespace and terminator after it
	lastNL := strings.LastIndexByte(pre, '\n')
	lineHead := pre
	if lastNL >= 0 {
		lineHead = pre[lastNL+1:]
	}
	firstOnLine := allWS(lineHead)
	if lastNL < 0 {
		firstOnLine = firstOnLine && tz.lineClean
	}

	wsEnd := afterClose
	for wsEnd < len(tz.src) && (tz.src[wsEnd] == ' ' || tz.src[wsEnd] == '\t') {
		wsEnd++
	}
	atEOF := wsEnd == len(tz.src)
	nlLen := 0
	if !atEOF {
		switch {
		case tz.src[wsEnd] == '\n':
			nlLen = 1
		case tz.src[wsEnd] == '\r' && wsEnd+1 < len(tz.src) && tz.src[wsEnd+1] == '\n':
			nlLen = 2
		}
	}
	newlineAfter := nlLen > 0

	li := LineInfo{
		TrailingWS:   string(tz.src[afterClose:wsEnd]),
		NewlineAfter: newlineAfter,
		FirstOnLine:  firstOnLine,
		LastOnLine:   newlineAfter || atEOF,
		AtEOF:        atEOF,
	}
	if firstOnLine {
		li.LeadingWS = lineHead
	}
	tok.Line = li
	standalone := eligible && li.Standalone()

	// the preceding text loses its final partial line when the tag is
	// standalone; earlier lines are kept intact
	emitPre := pre
	if standalone {
		if lastNL >= 0 {
			emitPre = pre[:lastNL+1]
		} else {
			emitPre = ""
		}
	}
	if emitPre != "" {
		dst = append(dst, tz.textToken(emitPre, tz.pos))
	}
	if emit {
		dst = append(dst, tok)
	}

	if standalone {
		tz.pos = wsEnd + nlLen
		tz.lineClean = true
	} else {
		tz.pos = afterClose
		tz.lineClean = false
	}
	tz.delims = newDelims
	return dst, nil
}

func (tz *tokenizer) textToken(text string, at int) Token {
	return Token{
		Type: TText,
		Text: text,
		Pos:  tz.posDoc.Pos(at),
	}
}

func allWS(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' && s[i] != '\t' {
			return false
		}
	}
	return true
}
