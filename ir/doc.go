// Package ir provides the value model rendered against by whisker templates.
//
// # Overview
//
// A template is rendered against a tree of ir.Node values. The model is a
// small closed tagged union: null, scalar, ordered sequence, and
// string-keyed mapping. Mappings preserve the order of their keys, so data
// ingested from an interchange format round-trips in source order.
//
// Scalars hold canonical text: booleans are "true"/"false", integral
// numbers carry integer text (1.0 ingests as "1"), and other numbers use
// shortest decimal text. Rendering a scalar emits its canonical text
// directly.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	flag := ir.FromBool(true)
//	obj := ir.FromMap(map[string]*ir.Node{
//	    "key": ir.FromString("value"),
//	})
//	seq := ir.FromSlice([]*ir.Node{
//	    ir.FromInt(1),
//	    ir.FromInt(2),
//	})
//
// Data held in a generic interchange tree is ingested with FromAny,
// FromJSON, or FromYAML. Ingestion is total: every input shape maps to
// some node, and unknown shapes degrade to their string form rather than
// failing.
//
// # Lookup
//
// Lookup resolves dotted paths ("a.b.c") by walking mapping children per
// segment. The whole-path "." resolves to the value itself and is valid
// only as the entire path.
//
// Nodes are immutable after construction and safe to share between
// concurrent render calls.
package ir
