package ir

import "strings"

// Lookup resolves a dotted path against node. The whole path "." is the
// node itself; it is only valid as the entire path, never as a segment of
// a longer one. Every other segment requires the current value to be a
// mapping containing that key; otherwise the lookup fails with no
// partial-path fallback.
func Lookup(node *Node, path string) (*Node, bool) {
	if node == nil {
		return nil, false
	}
	if path == "." {
		return node, true
	}
	cur := node
	for _, seg := range strings.Split(path, ".") {
		next := Get(cur, seg)
		if next == nil {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// PathHead returns the first segment of a dotted path. The identity path
// "." has no head and is returned unchanged.
func PathHead(path string) string {
	if path == "." {
		return path
	}
	if i := strings.IndexByte(path, '.'); i >= 0 {
		return path[:i]
	}
	return path
}
