// Package debug provides env-var gated debug dumps for the template
// pipeline. Flags are read once at process start:
//
//	WHISKER_DEBUG_TOKENS  dump the token stream after tokenization
//	WHISKER_DEBUG_AST     dump the node tree after building
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Tokens bool
	AST    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("WHISKER_DEBUG_TOKENS")
	d.AST = boolEnv("WHISKER_DEBUG_AST")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}

func AST() bool {
	return d.AST
}
