package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromJSONPreservesOrder(t *testing.T) {
	node, err := FromJSON([]byte(`{"z": 1, "a": {"b": 2}, "m": [true, null]}`))
	if err != nil {
		t.Fatal(err)
	}
	want := FromKeyVals([]KeyVal{
		{Key: "z", Val: FromInt(1)},
		{Key: "a", Val: FromKeyVals([]KeyVal{
			{Key: "b", Val: FromInt(2)},
		})},
		{Key: "m", Val: FromSlice([]*Node{FromBool(true), Null()})},
	})
	if diff := cmp.Diff(want, node); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestFromJSONNumberCanonicalization(t *testing.T) {
	node, err := FromJSON([]byte(`[85, 1.0, 1.21, -0.5]`))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"85", "1", "1.21", "-0.5"}
	for i, w := range want {
		if got := node.Values[i].String; got != w {
			t.Errorf("element %d: got %q, want %q", i, got, w)
		}
	}
}

func TestFromJSONScalarRoots(t *testing.T) {
	for _, tc := range []struct {
		in   string
		typ  Type
		want string
	}{
		{in: `"hi"`, typ: ScalarType, want: "hi"},
		{in: `true`, typ: ScalarType, want: "true"},
		{in: `null`, typ: NullType},
		{in: ``, typ: NullType},
	} {
		node, err := FromJSON([]byte(tc.in))
		if err != nil {
			t.Fatalf("%q: %v", tc.in, err)
		}
		if node.Type != tc.typ || node.String != tc.want {
			t.Errorf("%q: got %s %q, want %s %q", tc.in, node.Type, node.String, tc.typ, tc.want)
		}
	}
}

func TestIngestControlUnescaping(t *testing.T) {
	// a literal backslash-n sequence in ingested data becomes a real
	// newline; template text is never touched this way
	node := FromAny(`a\nb\tc\r`)
	if node.String != "a\nb\tc\r" {
		t.Errorf("got %q", node.String)
	}
	viaJSON, err := FromJSON([]byte(`"a\\nb"`))
	if err != nil {
		t.Fatal(err)
	}
	if viaJSON.String != "a\nb" {
		t.Errorf("got %q, want %q", viaJSON.String, "a\nb")
	}
}

func TestFromAny(t *testing.T) {
	node := FromAny(map[string]any{
		"b": []any{1, "x", nil},
		"a": 2.5,
	})
	want := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromFloat(2.5)},
		{Key: "b", Val: FromSlice([]*Node{FromInt(1), FromString("x"), Null()})},
	})
	if diff := cmp.Diff(want, node); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestFromYAML(t *testing.T) {
	node, err := FromYAML([]byte("z: 1\na:\n  - two\n  - 3.0\nflag: true\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := FromKeyVals([]KeyVal{
		{Key: "z", Val: FromInt(1)},
		{Key: "a", Val: FromSlice([]*Node{FromString("two"), FromFloat(3.0)})},
		{Key: "flag", Val: FromBool(true)},
	})
	if diff := cmp.Diff(want, node); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}
