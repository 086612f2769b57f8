package ir

import "testing"

func TestLookup(t *testing.T) {
	ctx := FromMap(map[string]*Node{
		"a": FromMap(map[string]*Node{
			"b": FromMap(map[string]*Node{
				"c": FromString("ok"),
			}),
		}),
		"s": FromString("scalar"),
	})
	for _, tc := range []struct {
		path string
		want string
		ok   bool
	}{
		{path: "a.b.c", want: "ok", ok: true},
		{path: "s", want: "scalar", ok: true},
		{path: "a.b.missing", ok: false},
		{path: "a.missing.c", ok: false},
		{path: "missing", ok: false},
		{path: "s.x", ok: false},
	} {
		got, ok := Lookup(ctx, tc.path)
		if ok != tc.ok {
			t.Errorf("%q: got ok=%v, want %v", tc.path, ok, tc.ok)
			continue
		}
		if ok && got.String != tc.want {
			t.Errorf("%q: got %q, want %q", tc.path, got.String, tc.want)
		}
	}
}

func TestLookupIdentity(t *testing.T) {
	s := FromString("self")
	got, ok := Lookup(s, ".")
	if !ok || got != s {
		t.Errorf("identity lookup: got %v, %v", got, ok)
	}
	// "." is only the whole path, never a segment of a longer one
	if _, ok := Lookup(FromMap(map[string]*Node{"a": s}), "a.."); ok {
		t.Errorf("a.. should not resolve")
	}
}

func TestPathHead(t *testing.T) {
	for _, tc := range []struct{ path, want string }{
		{path: "a.b.c", want: "a"},
		{path: "a", want: "a"},
		{path: ".", want: "."},
	} {
		if got := PathHead(tc.path); got != tc.want {
			t.Errorf("%q: got %q, want %q", tc.path, got, tc.want)
		}
	}
}
