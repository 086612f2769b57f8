package token

type tokenOpts struct {
	delims Delims
}

type TokenOpt func(*tokenOpts)

// WithDelims sets the initial delimiter pair for one tokenize call.
func WithDelims(open, close string) TokenOpt {
	return func(o *tokenOpts) { o.delims = Delims{Open: open, Close: close} }
}
