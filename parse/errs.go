package parse

import (
	"errors"
	"fmt"

	"github.com/whisker-format/go-whisker/token"
)

var (
	// ErrUnclosedSection is returned when a section is opened but never
	// closed before the end of input.
	ErrUnclosedSection = errors.New("unclosed section")
	// ErrUnopenedSection is returned when a close tag has no matching
	// open.
	ErrUnopenedSection = errors.New("unopened section")
)

type BuildErr struct {
	Err  error
	Name string
	Pos  *token.Pos
}

func (e *BuildErr) Unwrap() error {
	return e.Err
}

func (e *BuildErr) Error() string {
	if e.Pos == nil {
		return fmt.Sprintf("%s %q", e.Err.Error(), e.Name)
	}
	return fmt.Sprintf("%s %q at %s", e.Err.Error(), e.Name, e.Pos.String())
}
