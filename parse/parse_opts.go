package parse

import "github.com/whisker-format/go-whisker/token"

type parseOpts struct {
	tokOpts []token.TokenOpt
}

type Option func(*parseOpts)

// WithDelims sets the initial delimiter pair used while tokenizing.
func WithDelims(open, close string) Option {
	return func(o *parseOpts) {
		o.tokOpts = append(o.tokOpts, token.WithDelims(open, close))
	}
}
