package jsongrid_test

import (
	"strings"
	"testing"

	jsongrid "github.com/reoring/jsongrid"
)

func TestParseTolerant_LenientSyntax(t *testing.T) {
	text := `{
		// line comment
		unquoted: 'single',
		trailing: [1, 2,], /* block */
		plus: +1.5,
	}`
	v, err := jsongrid.ParseTolerant(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := v.Get("unquoted")
	if !ok || got.Str != "single" {
		t.Fatalf("unquoted = %v", got)
	}
	arr, _ := v.Get("trailing")
	if arr.Len() != 2 {
		t.Fatalf("trailing comma should not add an element, len = %d", arr.Len())
	}
	plus, _ := v.Get("plus")
	if plus.Num != "1.5" {
		t.Fatalf("plus lexeme = %q, want 1.5", plus.Num)
	}
}

func TestParseTolerant_KeyOrderPreserved(t *testing.T) {
	v, err := jsongrid.ParseTolerant(`{"z":1,"a":2,"m":3}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	keys := v.Keys()
	want := []string{"z", "a", "m"}
	for i, k := range want {
		if keys[i] != k {
			t.Fatalf("keys = %v, want %v", keys, want)
		}
	}
}

func TestParseTolerant_DuplicateKeysKeepFirstPosition(t *testing.T) {
	v, err := jsongrid.ParseTolerant(`{"k":1,"other":2,"k":3}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	keys := v.Keys()
	if len(keys) != 2 || keys[0] != "k" || keys[1] != "other" {
		t.Fatalf("keys = %v, want [k other]", keys)
	}
	got, _ := v.Get("k")
	if got.Num != "3" {
		t.Fatalf("later duplicate should win, got %q", got.Num)
	}
}

func TestParseTolerant_LineModeDropsBadLines(t *testing.T) {
	v, err := jsongrid.ParseTolerant("1\n{bad\n3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Kind != jsongrid.KindArray || v.Len() != 2 {
		t.Fatalf("want a 2-element array, got kind=%v len=%d", v.Kind, v.Len())
	}
}

func TestParseTolerant_SingleLineFailureHasNoLineAnnotation(t *testing.T) {
	_, err := jsongrid.ParseTolerant(`{"a":}`)
	if err == nil {
		t.Fatalf("expected a parse error")
	}
	if strings.Contains(err.Error(), "line mode") {
		t.Fatalf("single-line input should not mention line mode: %v", err)
	}
}

func TestParseTolerant_AllLinesBadAnnotatesError(t *testing.T) {
	_, err := jsongrid.ParseTolerant("{bad\n{worse")
	if err == nil {
		t.Fatalf("expected a parse error")
	}
	if !strings.Contains(err.Error(), "line mode") {
		t.Fatalf("multi-line failure should carry the line-mode annotation: %v", err)
	}
	if _, ok := jsongrid.AsParseError(err); !ok {
		t.Fatalf("error should be a *ParseError, got %T", err)
	}
}

func TestParseTolerant_RepairOptIn(t *testing.T) {
	text := `[{"a": True}]`
	if _, err := jsongrid.ParseTolerant(text); err == nil {
		t.Fatalf("bare identifier should fail without repair")
	}
	v, err := jsongrid.ParseTolerant(text, jsongrid.Options{Repair: true})
	if err != nil {
		t.Fatalf("repair should recover the input: %v", err)
	}
	a, ok := v.Arr[0].Get("a")
	if !ok || a.Kind != jsongrid.KindBool || !a.Bool {
		t.Fatalf("a = %v, want true", a)
	}
}

func TestParseTolerant_HexAndBareFractions(t *testing.T) {
	v, err := jsongrid.ParseTolerant(`{a: 0x1f, b: .5, c: 3.}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for key, want := range map[string]string{"a": "31", "b": "0.5", "c": "3"} {
		got, _ := v.Get(key)
		if got.Num != want {
			t.Fatalf("%s lexeme = %q, want %q", key, got.Num, want)
		}
	}
}

func TestParseTolerant_SurrogatePairEscapes(t *testing.T) {
	v, err := jsongrid.ParseTolerant(`{"s":"\ud83d\ude00","mid":"a\uD83D\uDE00b"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, _ := v.Get("s")
	if s.Str != "\U0001F600" {
		t.Fatalf("s = %q, want the combined code point", s.Str)
	}
	mid, _ := v.Get("mid")
	if mid.Str != "a\U0001F600b" {
		t.Fatalf("mid = %q", mid.Str)
	}

	// Re-serializing untouched input must not corrupt the document.
	out, err := jsongrid.EncodeJSON(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	back, err := jsongrid.ParseTolerant(string(out))
	if err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	s2, _ := back.Get("s")
	if s2.Str != s.Str {
		t.Fatalf("round trip changed the string: %q -> %q", s.Str, s2.Str)
	}
}

func TestParseTolerant_UnpairedSurrogatesDegrade(t *testing.T) {
	v, err := jsongrid.ParseTolerant(`{"hi":"\ud83d x","lo":"\ude00","hh":"\ud83d\ud83d"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	hi, _ := v.Get("hi")
	if hi.Str != "� x" {
		t.Fatalf("hi = %q, want replacement char", hi.Str)
	}
	lo, _ := v.Get("lo")
	if lo.Str != "�" {
		t.Fatalf("lo = %q, want replacement char", lo.Str)
	}
	hh, _ := v.Get("hh")
	if hh.Str != "��" {
		t.Fatalf("hh = %q, want two replacement chars", hh.Str)
	}
}

func TestParseTolerant_UnterminatedStringFails(t *testing.T) {
	if _, err := jsongrid.ParseTolerant(`{"a": "open`); err == nil {
		t.Fatalf("unterminated string should fail")
	}
}
