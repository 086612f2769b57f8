// Package parse builds whisker template node trees from token sequences.
//
// # Usage
//
//	// Parse template text
//	nodes, err := parse.Parse([]byte("Hello {{name}}!"))
//	if err != nil {
//	    return err
//	}
//
//	// Parse under a custom initial delimiter pair
//	nodes, err := parse.Parse(data, parse.WithDelims("<%", "%>"))
//
// Build consumes an already tokenized sequence. Section open and close
// tags are matched by name with depth tracking; an open tag with no
// matching close before the end of input is a fatal error, as is a close
// tag with no preceding open.
//
// # Related Packages
//
//   - github.com/whisker-format/go-whisker/token - Tokenization
//   - github.com/whisker-format/go-whisker/render - Render node trees
package parse
