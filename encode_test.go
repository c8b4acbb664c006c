package jsongrid_test

import (
	"strings"
	"testing"

	jsongrid "github.com/reoring/jsongrid"
)

func TestEncodeJSON_RoundTripPreservesOrderAndLexemes(t *testing.T) {
	text := `{"b":1,"a":{"z":true,"y":[1,2.50,null]},"s":"hi"}`
	v, err := jsongrid.ParseTolerant(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := jsongrid.EncodeJSON(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != text {
		t.Fatalf("round trip changed the document:\n in: %s\nout: %s", text, out)
	}
}

func TestEncodeJSON_NormalizedLenientSpellings(t *testing.T) {
	v, err := jsongrid.ParseTolerant(`{a: +1, b: .5, c: 3., s: 'q'}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := jsongrid.EncodeJSON(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"a":1,"b":0.5,"c":3,"s":"q"}`
	if string(out) != want {
		t.Fatalf("encoded = %s, want %s", out, want)
	}
}

func TestEncodeJSON_StringEscaping(t *testing.T) {
	v := jsongrid.Object(jsongrid.Field{Key: `q"k`, Value: jsongrid.String("line\nbreak")})
	out, err := jsongrid.EncodeJSON(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), `\n`) || !strings.Contains(string(out), `\"`) {
		t.Fatalf("escapes missing from %s", out)
	}
}

func TestEncodeJSONIndent(t *testing.T) {
	v, err := jsongrid.ParseTolerant(`{"a":[1,2]}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := jsongrid.EncodeJSONIndent(v, "", "  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), "\n  \"a\"") {
		t.Fatalf("indented output = %s", out)
	}
}

func TestEncodeJSON_NilValue(t *testing.T) {
	out, err := jsongrid.EncodeJSON(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "null" {
		t.Fatalf("encoded = %s, want null", out)
	}
}
