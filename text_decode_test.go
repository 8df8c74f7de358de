package isla

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeText(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		desc  string
		input string
		want  TextValue
	}{{
		desc:  "EmptyMap",
		input: "ISLA1",
		want:  TextNone,
	}, {
		desc: "ListWithEscapes",
		input: "ISLA1\n" +
			"-;)\n" +
			"-:3\n" +
			"-\\:",
		want: NewTextLeafList(";)", ":3", ":"),
	}, {
		desc: "ListLeafIsLoneQuote",
		input: "ISLA1\n" +
			"-\\\"",
		want: NewTextLeafList("\""),
	}, {
		desc: "MultiLineQuote",
		input: "ISLA1\n" +
			"Quote=\"\n" +
			"He engraved on it the words:\n" +
			"\"And this, too, shall pass away.\n" +
			"\\\"\n" +
			"\"",
		want: NewTextLeafMap(map[string]string{
			"Quote": "He engraved on it the words:\n\"And this, too, shall pass away.\n\"",
		}),
	}, {
		desc: "NestedScopes",
		input: "ISLA1\n" +
			"a:\n" +
			"\tb=1\n" +
			"\tc:\n" +
			"\t\t-x\n" +
			"\t\t-y\n",
		want: NewTextMap(map[string]TextValue{
			"a": NewTextMap(map[string]TextValue{
				"b": NewTextLeaf("1"),
				"c": NewTextLeafList("x", "y"),
			}),
		}),
	}, {
		desc: "Comments",
		input: "ISLA1\n" +
			"; a top-level comment\n" +
			"key=value ; not a comment, no mid-line recognition\n",
		want: NewTextLeafMap(map[string]string{"key": "value ; not a comment, no mid-line recognition"}),
	}, {
		desc: "EmptyNestedScope",
		input: "ISLA1\n" +
			"a:\n" +
			"b=1\n",
		want: NewTextMap(map[string]TextValue{
			"a": TextNone,
			"b": NewTextLeaf("1"),
		}),
	}} {
		t.Run(tc.desc, func(t *testing.T) {
			got, err := DecodeText(strings.NewReader(tc.input))
			if err != nil {
				t.Fatalf("DecodeText(%q) returned error: %v", tc.input, err)
			}
			if diff := cmp.Diff(tc.want, got, cmp.AllowUnexported(TextValue{})); diff != "" {
				t.Errorf("DecodeText(%q) returned unexpected diff (-want +got):\n%s", tc.input, diff)
			}
		})
	}
}

func TestDecodeTextErrors(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		desc    string
		input   string
		wantErr error
	}{
		{"EmptyInput", "", &ErrBadHeader{}},
		{"BadHeader", "NOT-ISLA", &ErrBadHeader{}},
		{"TooDeep", "ISLA1\n\t\tover-indented\n", &ErrNestingTooDeep{}},
		{"UnexpectedAfterColon", "ISLA1\nkey:trailing\n", &ErrUnexpectedAfterColon{}},
		{"UnterminatedMultiLine", "ISLA1\nkey=\"\nbody\n", &ErrUnterminatedMultiLineValue{}},
		{"ExpectedListItem", "ISLA1\n-a\nnot-a-dash\n", &ErrExpectedListItem{}},
		{"MalformedMapLine", "ISLA1\nno operator here\n", &ErrMalformedMapLine{}},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := DecodeText(strings.NewReader(tc.input))
			if err == nil {
				t.Fatalf("DecodeText(%q) succeeded, want error", tc.input)
			}
			if gotType, wantType := fmt.Sprintf("%T", err), fmt.Sprintf("%T", tc.wantErr); gotType != wantType {
				t.Errorf("DecodeText(%q) returned error of type %s (%v), want %s", tc.input, gotType, err, wantType)
			}
		})
	}
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestDecodeTextReaderFailure(t *testing.T) {
	t.Parallel()

	readErr := errors.New("disk on fire")
	_, err := DecodeText(failingReader{err: readErr})

	var bad *ErrExpectedScopeBeforeEOF
	if !errors.As(err, &bad) {
		t.Fatalf("DecodeText returned error %T %[1]v, want *ErrExpectedScopeBeforeEOF", err)
	}
	if !errors.Is(bad, readErr) {
		t.Errorf("Unwrap() chain does not reach %v", readErr)
	}
}

func TestDecodeTextLineNumbers(t *testing.T) {
	t.Parallel()

	_, err := DecodeText(strings.NewReader("ISLA1\nkey=value\nkey2:trailing\n"))
	var bad *ErrUnexpectedAfterColon
	if !errors.As(err, &bad) {
		t.Fatalf("DecodeText returned error %T %[1]v, want *ErrUnexpectedAfterColon", err)
	}
	if bad.Line != 3 {
		t.Errorf("Line = %d, want 3", bad.Line)
	}
	if got := fmt.Sprint(bad); got == "" {
		t.Errorf("Error() returned empty string")
	}
}
