// Package token scans whisker template text into a flat token sequence.
//
// Tokenize walks the source under the current delimiter pair, emitting
// Text tokens for literal runs and typed tag tokens for directives. Each
// tag token carries LineInfo describing its position on its source line;
// the derived Standalone property drives the whitespace elision rules for
// non-variable tags. Delimiter-change directives never emit a token: they
// replace the delimiter pair used for all following scanning within the
// same call.
package token
