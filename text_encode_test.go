package isla

import (
	"strings"
	"testing"
)

func TestEncodeText(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		desc string
		v    TextValue
		want string
	}{{
		desc: "ListWithEscapes",
		v:    NewTextLeafList(";)", ":3", ":"),
		want: "ISLA1\n-;)\n-:3\n-\\:\n",
	}, {
		desc: "MultiLineQuote",
		v: NewTextLeafMap(map[string]string{
			"Quote": "He engraved on it the words:\n\"And this, too, shall pass away.\n\"",
		}),
		want: "ISLA1\nQuote=\"\nHe engraved on it the words:\n\"And this, too, shall pass away.\n\\\"\n\"\n",
	}, {
		desc: "OddKeys",
		v: NewTextLeafMap(map[string]string{
			"-5 - 3": "negative five minus three",
			"=":      "equals",
			":)":     "smiley",
		}),
		want: "ISLA1\n\\-5 - 3=negative five minus three\n\\:)=smiley\n\\==equals\n",
	}, {
		desc: "ListLeafIsLoneQuote",
		v:    NewTextLeafList("\""),
		want: "ISLA1\n-\\\"\n",
	}} {
		t.Run(tc.desc, func(t *testing.T) {
			got, err := EncodeText(tc.v)
			if err != nil {
				t.Fatalf("EncodeText(%v) returned error: %v", tc.v, err)
			}
			if got != tc.want {
				t.Errorf("EncodeText(%v) = %q, want %q", tc.v, got, tc.want)
			}
		})
	}
}

func TestEncodeTextNotEncodable(t *testing.T) {
	t.Parallel()

	for _, v := range []TextValue{NewTextLeaf("x"), TextNone} {
		if _, err := EncodeText(v); err == nil {
			t.Errorf("EncodeText(%v) succeeded, want NotEncodable", v)
		}
	}
}

func TestTextRoundTrip(t *testing.T) {
	t.Parallel()

	v := NewTextMap(map[string]TextValue{
		"name": NewTextLeaf("beatrice"),
		"tags": NewTextLeafList("a", "b", "c", "\""),
		"nested": NewTextMap(map[string]TextValue{
			"-leading-dash-key": NewTextLeaf("v"),
			"multi":             NewTextLeaf("line one\nline two"),
		}),
	})

	encoded, err := EncodeText(v)
	if err != nil {
		t.Fatalf("EncodeText returned error: %v", err)
	}
	decoded, err := DecodeText(strings.NewReader(encoded))
	if err != nil {
		t.Fatalf("DecodeText(%q) returned error: %v", encoded, err)
	}
	if !decoded.Equal(v) {
		t.Errorf("round trip mismatch: got %v, want %v", decoded, v)
	}

	reencoded, err := EncodeText(decoded)
	if err != nil {
		t.Fatalf("second EncodeText returned error: %v", err)
	}
	if reencoded != encoded {
		t.Errorf("encode is not idempotent: first %q, second %q", encoded, reencoded)
	}
}
