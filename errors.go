package isla

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// ErrBadHeader is raised by both decoders when the leading magic does
// not match exactly.
type ErrBadHeader struct {
	Got string
}

func (e *ErrBadHeader) Error() string {
	return fmt.Sprintf("isla: bad header: got %q", e.Got)
}

// ErrNestingTooDeep is raised by the text decoder when a line starts
// with more leading tabs than the current scope's nesting level allows.
type ErrNestingTooDeep struct {
	Level int
	Line  int
}

func (e *ErrNestingTooDeep) Error() string {
	return fmt.Sprintf("isla: line %d: nesting too deep for level %d", e.Line, e.Level)
}

// ErrExpectedListItem is raised by the text decoder when a line inside
// an already-classified list scope does not start with "-".
type ErrExpectedListItem struct {
	Line int
}

func (e *ErrExpectedListItem) Error() string {
	return fmt.Sprintf("isla: line %d: expected a list item", e.Line)
}

// ErrUnexpectedAfterColon is raised by the text decoder when a map
// line's ":" operator is followed by trailing, non-empty text.
type ErrUnexpectedAfterColon struct {
	Line     int
	Trailing string
}

func (e *ErrUnexpectedAfterColon) Error() string {
	return fmt.Sprintf("isla: line %d: unexpected text after ':': %q", e.Line, e.Trailing)
}

// ErrUnterminatedMultiLineValue is raised by the text decoder when a
// multi-line value ('"' ... '"') is never closed before EOF.
type ErrUnterminatedMultiLineValue struct {
	Line int
}

func (e *ErrUnterminatedMultiLineValue) Error() string {
	return fmt.Sprintf("isla: line %d: unterminated multi-line value", e.Line)
}

// ErrExpectedScopeBeforeEOF is raised by the text decoder when reading
// the underlying reader fails with a non-EOF error. The whole input is
// read before parsing starts, so this happens before any scope is
// decoded and Line is always 1. It is distinct from the ordinary
// "opened scope hits EOF" case, which decodes to None rather than
// erroring.
type ErrExpectedScopeBeforeEOF struct {
	Line int
	Err  error
}

func (e *ErrExpectedScopeBeforeEOF) Error() string {
	return fmt.Sprintf("isla: line %d: expected scope contents before end of input: %v", e.Line, e.Err)
}

func (e *ErrExpectedScopeBeforeEOF) Unwrap() error {
	return e.Err
}

// ErrMalformedMapLine is raised by the text decoder when a line inside
// a map scope never reaches an unescaped "=" or ":" at all, so the
// "KEY OP TAIL" grammar cannot be satisfied. Not part of the
// language-neutral taxonomy in spec.md §7 (see SPEC_FULL.md §4.2); required so
// the decoder always terminates rather than treating the whole
// remainder of the line as a key with no value.
type ErrMalformedMapLine struct {
	Line int
}

func (e *ErrMalformedMapLine) Error() string {
	return fmt.Sprintf("isla: line %d: map line has no '=' or ':' operator", e.Line)
}

// ErrInvalidType is raised by the binary decoder when a value header's
// top 4 bits name a tag other than leaf, list, or map.
type ErrInvalidType struct {
	Tag byte
}

func (e *ErrInvalidType) Error() string {
	return fmt.Sprintf("isla: invalid binary type tag %#x", e.Tag)
}

// ErrDecodeOutOfBounds is raised by the binary decoder whenever a read
// would run past the end of the input.
type ErrDecodeOutOfBounds struct {
	What      string
	Needed    int
	Remaining int
}

func (e *ErrDecodeOutOfBounds) Error() string {
	return fmt.Sprintf("isla: decoding %s needs %s but only %s remain",
		e.What, humanize.Bytes(uint64(e.Needed)), humanize.Bytes(uint64(max(e.Remaining, 0))))
}

// ErrEncodeTooLong is raised by the binary encoder when a leaf, list,
// map, or map key length would not fit in its wire field.
type ErrEncodeTooLong struct {
	What string
	Len  uint64
	Max  uint64
}

func (e *ErrEncodeTooLong) Error() string {
	return fmt.Sprintf("isla: %s length %s exceeds maximum %s",
		e.What, humanize.Comma(int64(e.Len)), humanize.Comma(int64(e.Max)))
}

// ErrNotEncodable is raised by both encoders when asked to encode a
// value whose shape the wire format cannot represent: a leaf or None at
// the top of a text document, or a None element or field nested inside
// one.
type ErrNotEncodable struct {
	Reason string
}

func (e *ErrNotEncodable) Error() string {
	return fmt.Sprintf("isla: not encodable: %s", e.Reason)
}

// ErrTypeMismatch is raised by Value accessors when the requested
// payload kind does not match the Value's actual kind.
type ErrTypeMismatch struct {
	Requested Kind
	Actual    Kind
}

func (e *ErrTypeMismatch) Error() string {
	return fmt.Sprintf("isla: type mismatch: requested %s, value is %s", e.Requested, e.Actual)
}

// ErrListIndexOutOfRange is raised by Value accessors when a list index
// falls outside [0, length).
type ErrListIndexOutOfRange struct {
	Index  int
	Length int
}

func (e *ErrListIndexOutOfRange) Error() string {
	return fmt.Sprintf("isla: list index %d out of range (length %d)", e.Index, e.Length)
}

// ErrMapKeyNotFound is raised by Value accessors when a map lookup
// misses. Key is a string for TextValue and a []byte for BinValue.
type ErrMapKeyNotFound struct {
	Key any
}

func (e *ErrMapKeyNotFound) Error() string {
	switch k := e.Key.(type) {
	case []byte:
		return fmt.Sprintf("isla: map key not found: % X", k)
	default:
		return fmt.Sprintf("isla: map key not found: %v", k)
	}
}
