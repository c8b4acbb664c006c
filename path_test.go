package jsongrid_test

import (
	"testing"

	jsongrid "github.com/reoring/jsongrid"
)

func TestPath_String(t *testing.T) {
	cases := []struct {
		path jsongrid.Path
		want string
	}{
		{jsongrid.Path{}, "$"},
		{jsongrid.Path{}.Field("data").Index(0), "$.data[0]"},
		{jsongrid.Path{}.Index(2), "$[2]"},
		{jsongrid.Path{}.Field("a.b"), `$["a.b"]`},
		{jsongrid.Path{}.Field("0key"), `$["0key"]`},
		{jsongrid.Path{}.Field("_ok$").Field("v2"), "$._ok$.v2"},
	}
	for _, c := range cases {
		if got := c.path.String(); got != c.want {
			t.Fatalf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestPath_ExtendDoesNotMutateReceiver(t *testing.T) {
	base := jsongrid.Path{}.Field("data")
	a := base.Index(0)
	b := base.Index(1)
	if a.String() != "$.data[0]" || b.String() != "$.data[1]" {
		t.Fatalf("shared-buffer aliasing: a=%s b=%s", a, b)
	}
	if base.String() != "$.data" {
		t.Fatalf("base changed to %s", base)
	}
}

func TestParsePath_RoundTrip(t *testing.T) {
	for _, s := range []string{"$", "$.data[0]", "$[2]", `$["a.b"]`, "$.a.b[10].c"} {
		p, err := jsongrid.ParsePath(s)
		if err != nil {
			t.Fatalf("ParsePath(%q): %v", s, err)
		}
		if got := p.String(); got != s {
			t.Fatalf("round trip %q -> %q", s, got)
		}
	}
}

func TestParsePath_Rejects(t *testing.T) {
	for _, s := range []string{"", "data", "$.", "$[x]", "$[-1]", "$[1"} {
		if _, err := jsongrid.ParsePath(s); err == nil {
			t.Fatalf("ParsePath(%q) should fail", s)
		}
	}
}

func TestPath_ResolveAndSet(t *testing.T) {
	root, err := jsongrid.ParseTolerant(`{"friends":[{"name":"a"},{"name":"b"}]}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, err := jsongrid.ParsePath("$.friends[1].name")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := p.Resolve(root)
	if !ok || got.Str != "b" {
		t.Fatalf("Resolve = %v, %v", got, ok)
	}
	if !p.Set(root, jsongrid.String("edited")) {
		t.Fatalf("Set failed")
	}
	out, err := jsongrid.EncodeJSON(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"friends":[{"name":"a"},{"name":"edited"}]}`
	if string(out) != want {
		t.Fatalf("edited doc = %s, want %s", out, want)
	}
}

func TestPath_SetRefusesMissingTargets(t *testing.T) {
	root, _ := jsongrid.ParseTolerant(`{"a":[1]}`)
	if (jsongrid.Path{}).Set(root, jsongrid.Null()) {
		t.Fatalf("empty path must not replace the root")
	}
	p, _ := jsongrid.ParsePath("$.a[5]")
	if p.Set(root, jsongrid.Null()) {
		t.Fatalf("out-of-range index must not grow the array")
	}
	p, _ = jsongrid.ParsePath("$.missing.x")
	if p.Set(root, jsongrid.Null()) {
		t.Fatalf("Set must not create intermediate nodes")
	}
}

func TestPath_DeriveResultResolvesBack(t *testing.T) {
	text := `{"wrap":{"items":[{"v":1},{"v":2}]}}`
	root, err := jsongrid.ParseTolerant(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res := jsongrid.DeriveValue(root)
	if res == nil {
		t.Fatalf("expected a result")
	}
	arr, ok := res.Path.Resolve(root)
	if !ok || arr.Kind != jsongrid.KindArray || arr.Len() != 2 {
		t.Fatalf("result path %s does not resolve to the chosen array", res.Path)
	}
	cell, ok := res.Path.Index(0).Field("v").Resolve(root)
	if !ok || cell.Num != "1" {
		t.Fatalf("cell path lookup = %v, %v", cell, ok)
	}
}

func TestPath_UnsafeKeysStayReversible(t *testing.T) {
	root, err := jsongrid.ParseTolerant(`{"weird key":[{"x":1}]}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res := jsongrid.DeriveValue(root)
	if got := res.Path.String(); got != `$["weird key"]` {
		t.Fatalf("path = %q", got)
	}
	p, err := jsongrid.ParsePath(res.Path.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.Resolve(root); !ok {
		t.Fatalf("re-parsed path should resolve")
	}
}
