package debug

import (
	"encoding/json"
	"fmt"
	"os"
)

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}

// Dump writes v to stderr as indented JSON, prefixed with what.
func Dump(what string, v any) {
	d, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		Logf("%s: %v\n", what, err)
		return
	}
	Logf("%s:\n%s\n", what, d)
}
