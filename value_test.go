package jsonedit

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func num(s string) json.Number { return json.Number(s) }

func TestParseValuePreservesObjectMemberOrder(t *testing.T) {
	doc := []byte(`{"zebra": 1, "apple": 2, "mango": 3}`)
	v, err := ParseValue(doc)
	if err != nil {
		t.Fatalf("ParseValue: %v", err)
	}
	want := []string{"zebra", "apple", "mango"}
	if diff := cmp.Diff(want, v.Fields); diff != "" {
		t.Fatalf("member order lost (-want +got):\n%s", diff)
	}
}

func TestParseValueKeepsNumberLexemes(t *testing.T) {
	cases := []string{"1", "1.0", "1e3", "-0.5", "9007199254740993"}
	for _, in := range cases {
		v, err := ParseValue([]byte(in))
		if err != nil {
			t.Fatalf("ParseValue(%q): %v", in, err)
		}
		if got := string(v.Encode()); got != in {
			t.Fatalf("lexeme %q came back as %q", in, got)
		}
	}
}

func TestParseValueRejectsInvalidInput(t *testing.T) {
	for _, in := range []string{"", "not json", "{", `{"a":}`, "{} trailing", "1 2"} {
		_, err := ParseValue([]byte(in))
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("ParseValue(%q): expected *ParseError, got %T: %v", in, err, err)
		}
	}
}

func TestEncodeCanonicalForm(t *testing.T) {
	doc := []byte(`{"name":"Ann","tags":["a","b"],"meta":{},"n":null}`)
	v, err := ParseValue(doc)
	if err != nil {
		t.Fatalf("ParseValue: %v", err)
	}
	want := strings.Join([]string{
		"{",
		`  "name": "Ann",`,
		`  "tags": [`,
		`    "a",`,
		`    "b"`,
		"  ],",
		`  "meta": {},`,
		`  "n": null`,
		"}",
	}, "\n")
	if got := string(v.Encode()); got != want {
		t.Fatalf("unexpected canonical form:\n%s", unifiedDiff(want, got))
	}
}

func TestInterfaceLowersToGoValues(t *testing.T) {
	v, err := ParseValue([]byte(`{"b": true, "s": "x", "a": [1, null]}`))
	if err != nil {
		t.Fatalf("ParseValue: %v", err)
	}
	want := map[string]any{
		"b": true,
		"s": "x",
		"a": []any{num("1"), nil},
	}
	if diff := cmp.Diff(want, v.Interface()); diff != "" {
		t.Fatalf("unexpected lowering (-want +got):\n%s", diff)
	}
}

func TestFromGoSortsMapKeys(t *testing.T) {
	v, err := FromGo(map[string]any{"b": int64(2), "a": int64(1), "c": int64(3)})
	if err != nil {
		t.Fatalf("FromGo: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, v.Fields); diff != "" {
		t.Fatalf("map keys not sorted (-want +got):\n%s", diff)
	}
}

func TestFromGoPassesValueThrough(t *testing.T) {
	orig := FromString("x")
	v, err := FromGo(orig)
	if err != nil {
		t.Fatalf("FromGo: %v", err)
	}
	if v != orig {
		t.Fatalf("expected identical *Value back")
	}
}

func TestSetElemPadsWithNulls(t *testing.T) {
	arr := NewArray()
	arr.SetElem(2, FromBool(true))
	if got := string(arr.Encode()); got != "[\n  null,\n  null,\n  true\n]" {
		t.Fatalf("unexpected padding: %q", got)
	}
}

func TestYAMLNodeKeepsMemberOrder(t *testing.T) {
	v, err := ParseValue([]byte(`{"zebra": 1, "apple": [true, 2.5]}`))
	if err != nil {
		t.Fatalf("ParseValue: %v", err)
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v.YAMLNode()); err != nil {
		t.Fatalf("yaml encode: %v", err)
	}
	_ = enc.Close()
	want := "zebra: 1\napple:\n  - true\n  - 2.5\n"
	if buf.String() != want {
		t.Fatalf("unexpected YAML:\n%s", unifiedDiff(want, buf.String()))
	}
}
