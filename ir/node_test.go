package ir

import (
	"testing"
)

func TestScalarCanonicalText(t *testing.T) {
	for _, tc := range []struct {
		node *Node
		want string
	}{
		{node: FromBool(true), want: "true"},
		{node: FromBool(false), want: "false"},
		{node: FromInt(85), want: "85"},
		{node: FromInt(-3), want: "-3"},
		{node: FromFloat(1.0), want: "1"},
		{node: FromFloat(1.21), want: "1.21"},
		{node: FromFloat(-0.5), want: "-0.5"},
		{node: FromString("hello"), want: "hello"},
	} {
		if tc.node.Type != ScalarType {
			t.Errorf("got type %s, want Scalar", tc.node.Type)
		}
		if tc.node.String != tc.want {
			t.Errorf("got %q, want %q", tc.node.String, tc.want)
		}
	}
}

func TestFromKeyValsOrder(t *testing.T) {
	m := FromKeyVals([]KeyVal{
		{Key: "z", Val: FromInt(1)},
		{Key: "a", Val: FromInt(2)},
		{Key: "m", Val: FromInt(3)},
	})
	wantKeys := []string{"z", "a", "m"}
	for i, k := range wantKeys {
		if m.Fields[i].String != k {
			t.Errorf("field %d: got %q, want %q", i, m.Fields[i].String, k)
		}
	}
}

func TestFromMapSortsKeys(t *testing.T) {
	m := FromMap(map[string]*Node{
		"z": FromInt(1),
		"a": FromInt(2),
	})
	if m.Fields[0].String != "a" || m.Fields[1].String != "z" {
		t.Errorf("got keys %q, %q; want a, z", m.Fields[0].String, m.Fields[1].String)
	}
}

func TestGet(t *testing.T) {
	m := FromMap(map[string]*Node{
		"a":   FromString("x"),
		"a.b": FromString("literal"),
	})
	if got := Get(m, "a"); got == nil || got.String != "x" {
		t.Errorf("Get a: got %v", got)
	}
	// Get matches keys literally, including embedded dots
	if got := Get(m, "a.b"); got == nil || got.String != "literal" {
		t.Errorf("Get a.b: got %v", got)
	}
	if got := Get(m, "missing"); got != nil {
		t.Errorf("Get missing: got %v", got)
	}
	if got := Get(FromString("s"), "a"); got != nil {
		t.Errorf("Get on scalar: got %v", got)
	}
}

func TestTruth(t *testing.T) {
	for _, tc := range []struct {
		node *Node
		want bool
	}{
		{node: Null(), want: false},
		{node: FromBool(false), want: false},
		{node: FromBool(true), want: true},
		{node: FromString(""), want: true},
		{node: FromString("x"), want: true},
		{node: FromSlice(nil), want: false},
		{node: FromSlice([]*Node{FromInt(1)}), want: true},
		{node: FromMap(nil), want: true},
	} {
		if got := Truth(tc.node); got != tc.want {
			t.Errorf("Truth(%s %q): got %v, want %v", tc.node.Type, tc.node.String, got, tc.want)
		}
	}
}

func TestClone(t *testing.T) {
	orig := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromSlice([]*Node{FromInt(1), Null()})},
	})
	dup := orig.Clone()
	dup.Values[0].Values[0].String = "changed"
	if orig.Values[0].Values[0].String != "1" {
		t.Errorf("clone shares structure with original")
	}
}
