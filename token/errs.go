package token

import (
	"errors"
	"fmt"
)

var (
	// ErrUnclosedTag is returned when an open delimiter has no matching
	// close delimiter before the end of input.
	ErrUnclosedTag = errors.New("unclosed tag")
	// ErrBadDelimChange is returned when a delimiter-change body does not
	// split into exactly two whitespace-separated tokens.
	ErrBadDelimChange = errors.New("malformed delimiter change")
)

type TokenizeErr struct {
	Err error
	Pos Pos
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Unwrap() error {
	return e.Err
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}
