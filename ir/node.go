package ir

import (
	"maps"
	"slices"
	"strconv"
)

// Node is a value in the render context tree. For MappingType, Fields[i] is
// the key node (always ScalarType) for the value at Values[i], so both
// slices have the same length and key order is preserved. For SequenceType
// only Values is populated. For ScalarType the canonical text is in String.
type Node struct {
	Type   Type
	String string
	Fields []*Node
	Values []*Node
}

func FromString(v string) *Node {
	return &Node{Type: ScalarType, String: v}
}

func FromBool(v bool) *Node {
	return &Node{Type: ScalarType, String: strconv.FormatBool(v)}
}

func FromInt(v int64) *Node {
	return &Node{Type: ScalarType, String: strconv.FormatInt(v, 10)}
}

// FromFloat canonicalizes a mathematically integral float to its integer
// text form; 1.0 yields "1", 1.21 yields "1.21".
func FromFloat(f float64) *Node {
	return &Node{Type: ScalarType, String: strconv.FormatFloat(f, 'f', -1, 64)}
}

func Null() *Node {
	return &Node{Type: NullType}
}

// FromMap builds a mapping with keys in sorted order. Callers needing a
// specific key order use FromKeyVals.
func FromMap(m map[string]*Node) *Node {
	keys := slices.Sorted(maps.Keys(m))
	kvs := make([]KeyVal, len(keys))
	for i, key := range keys {
		kvs[i] = KeyVal{Key: key, Val: m[key]}
	}
	return FromKeyVals(kvs)
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: MappingType}
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		val := kv.Val
		if val == nil {
			val = Null()
		}
		res.Fields[i] = FromString(kv.Key)
		res.Values[i] = val
	}
	return res
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: SequenceType}
	res.Values = make([]*Node, len(vs))
	for i, v := range vs {
		if v == nil {
			v = Null()
		}
		res.Values[i] = v
	}
	return res
}

// Get returns the value for field in a mapping, or nil if node is not a
// mapping or has no such field. The field name is matched literally, with
// no dotted-path interpretation.
func Get(y *Node, field string) *Node {
	if y == nil || y.Type != MappingType {
		return nil
	}
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{Type: y.Type, String: y.String}
	if y.Fields != nil {
		res.Fields = make([]*Node, len(y.Fields))
		for i, f := range y.Fields {
			res.Fields[i] = f.Clone()
		}
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
