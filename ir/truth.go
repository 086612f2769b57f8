package ir

// Truth reports whether node selects a section body: null, the scalar
// "false", and empty sequences are falsy; mappings and every other scalar
// (including the empty string) are truthy.
func Truth(node *Node) bool {
	if node == nil {
		return false
	}
	switch node.Type {
	case MappingType:
		return true
	case SequenceType:
		return len(node.Values) != 0
	case ScalarType:
		return node.String != "false"
	case NullType:
		return false
	default:
		panic("type")
	}
}
