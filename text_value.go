package isla

import (
	"iter"
	"sort"
	"strings"
)

// TextValue is the value tree produced and consumed by the text codec.
// Leaves are UTF-8 strings; map keys are strings. The zero TextValue is
// an empty leaf; None is [TextNone].
type TextValue struct {
	kind Kind
	leaf string
	list []TextValue
	m    map[string]TextValue
}

// TextNone is the sentinel value for a text scope that was opened but
// never received a content line.
var TextNone = TextValue{kind: KindNone}

// NewTextLeaf builds a leaf TextValue holding s verbatim.
func NewTextLeaf(s string) TextValue {
	return TextValue{kind: KindLeaf, leaf: s}
}

// NewTextList builds a list TextValue from arbitrary elements.
func NewTextList(items ...TextValue) TextValue {
	return TextValue{kind: KindList, list: items}
}

// NewTextMap builds a map TextValue from arbitrary entries.
func NewTextMap(entries map[string]TextValue) TextValue {
	return TextValue{kind: KindMap, m: entries}
}

// NewTextLeafList is a convenience builder for a list of leaves.
func NewTextLeafList(leaves ...string) TextValue {
	items := make([]TextValue, len(leaves))
	for i, s := range leaves {
		items[i] = NewTextLeaf(s)
	}
	return TextValue{kind: KindList, list: items}
}

// NewTextLeafMap is a convenience builder for a map of leaves.
func NewTextLeafMap(entries map[string]string) TextValue {
	m := make(map[string]TextValue, len(entries))
	for k, v := range entries {
		m[k] = NewTextLeaf(v)
	}
	return TextValue{kind: KindMap, m: m}
}

// Kind reports the tag of v.
func (v TextValue) Kind() Kind { return v.kind }

// AsLeaf returns v's leaf payload, or ErrTypeMismatch if v is not a leaf.
func (v TextValue) AsLeaf() (string, error) {
	if v.kind != KindLeaf {
		return "", &ErrTypeMismatch{Requested: KindLeaf, Actual: v.kind}
	}
	return v.leaf, nil
}

// AsList returns v's elements, or ErrTypeMismatch if v is not a list.
func (v TextValue) AsList() ([]TextValue, error) {
	if v.kind != KindList {
		return nil, &ErrTypeMismatch{Requested: KindList, Actual: v.kind}
	}
	return v.list, nil
}

// AsMap returns v's entries, or ErrTypeMismatch if v is not a map.
func (v TextValue) AsMap() (map[string]TextValue, error) {
	if v.kind != KindMap {
		return nil, &ErrTypeMismatch{Requested: KindMap, Actual: v.kind}
	}
	return v.m, nil
}

// AsLeafOrEmpty returns v's leaf payload, or "" if v is not a leaf.
func (v TextValue) AsLeafOrEmpty() string {
	s, err := v.AsLeaf()
	if err != nil {
		return ""
	}
	return s
}

// AsListOrEmpty returns v's elements, or nil if v is not a list.
func (v TextValue) AsListOrEmpty() []TextValue {
	l, err := v.AsList()
	if err != nil {
		return nil
	}
	return l
}

// AsMapOrEmpty returns v's entries, or nil if v is not a map.
func (v TextValue) AsMapOrEmpty() map[string]TextValue {
	m, err := v.AsMap()
	if err != nil {
		return nil
	}
	return m
}

// Elem returns the i-th element of a list Value.
func (v TextValue) Elem(i int) (TextValue, error) {
	list, err := v.AsList()
	if err != nil {
		return TextValue{}, err
	}
	if i < 0 || i >= len(list) {
		return TextValue{}, &ErrListIndexOutOfRange{Index: i, Length: len(list)}
	}
	return list[i], nil
}

// Field returns the value stored under key in a map Value.
func (v TextValue) Field(key string) (TextValue, error) {
	m, err := v.AsMap()
	if err != nil {
		return TextValue{}, err
	}
	val, ok := m[key]
	if !ok {
		return TextValue{}, &ErrMapKeyNotFound{Key: key}
	}
	return val, nil
}

// HasField reports whether key is present in a map Value.
func (v TextValue) HasField(key string) (bool, error) {
	m, err := v.AsMap()
	if err != nil {
		return false, err
	}
	_, ok := m[key]
	return ok, nil
}

// GetElem returns the i-th element of a list Value, or fallback if v is
// not a list or the index is out of range.
func (v TextValue) GetElem(i int, fallback TextValue) TextValue {
	val, err := v.Elem(i)
	if err != nil {
		return fallback
	}
	return val
}

// GetField returns the value stored under key, or fallback if v is not
// a map or key is absent.
func (v TextValue) GetField(key string, fallback TextValue) TextValue {
	val, err := v.Field(key)
	if err != nil {
		return fallback
	}
	return val
}

// GetLeafElem returns the i-th element's leaf payload, or fallback.
func (v TextValue) GetLeafElem(i int, fallback string) string {
	return ParseLeafElem(v, i, func(s string) (string, error) { return s, nil }, fallback)
}

// GetLeafField returns the leaf payload stored under key, or fallback.
func (v TextValue) GetLeafField(key string, fallback string) string {
	return ParseLeafField(v, key, func(s string) (string, error) { return s, nil }, fallback)
}

// GetListElem returns the i-th element's list payload, or fallback.
func (v TextValue) GetListElem(i int, fallback []TextValue) []TextValue {
	return ParseListElem(v, i, func(l []TextValue) ([]TextValue, error) { return l, nil }, fallback)
}

// GetListField returns the list payload stored under key, or fallback.
func (v TextValue) GetListField(key string, fallback []TextValue) []TextValue {
	return ParseListField(v, key, func(l []TextValue) ([]TextValue, error) { return l, nil }, fallback)
}

// GetMapElem returns the i-th element's map payload, or fallback.
func (v TextValue) GetMapElem(i int, fallback map[string]TextValue) map[string]TextValue {
	return ParseMapElem(v, i, func(m map[string]TextValue) (map[string]TextValue, error) { return m, nil }, fallback)
}

// GetMapField returns the map payload stored under key, or fallback.
func (v TextValue) GetMapField(key string, fallback map[string]TextValue) map[string]TextValue {
	return ParseMapField(v, key, func(m map[string]TextValue) (map[string]TextValue, error) { return m, nil }, fallback)
}

// SetElem replaces the i-th element of a list Value in place.
func (v *TextValue) SetElem(i int, val TextValue) error {
	if v.kind != KindList {
		return &ErrTypeMismatch{Requested: KindList, Actual: v.kind}
	}
	if i < 0 || i >= len(v.list) {
		return &ErrListIndexOutOfRange{Index: i, Length: len(v.list)}
	}
	v.list[i] = val
	return nil
}

// SetField assigns val to key in a map Value in place, creating the
// backing map if necessary.
func (v *TextValue) SetField(key string, val TextValue) error {
	if v.kind != KindMap {
		return &ErrTypeMismatch{Requested: KindMap, Actual: v.kind}
	}
	if v.m == nil {
		v.m = make(map[string]TextValue)
	}
	v.m[key] = val
	return nil
}

// Elems iterates the (index, value) pairs of a list Value. Iterating a
// non-list yields nothing.
func (v TextValue) Elems() iter.Seq2[int, TextValue] {
	return func(yield func(int, TextValue) bool) {
		if v.kind != KindList {
			return
		}
		for i, val := range v.list {
			if !yield(i, val) {
				return
			}
		}
	}
}

// Fields iterates the (key, value) pairs of a map Value. Iterating a
// non-map yields nothing.
func (v TextValue) Fields() iter.Seq2[string, TextValue] {
	return func(yield func(string, TextValue) bool) {
		if v.kind != KindMap {
			return
		}
		for k, val := range v.m {
			if !yield(k, val) {
				return
			}
		}
	}
}

// Equal reports whether v and other are structurally equal.
func (v TextValue) Equal(other TextValue) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindLeaf:
		return v.leaf == other.leaf
	case KindList:
		if len(v.list) != len(other.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(other.list[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.m) != len(other.m) {
			return false
		}
		for k, val := range v.m {
			ov, ok := other.m[k]
			if !ok || !val.Equal(ov) {
				return false
			}
		}
		return true
	default: // KindNone
		return true
	}
}

// String renders v for debugging: leaves as UTF-8 text, lists as
// "[a, b, c]", maps as "[k: v, k: v]" with sorted keys, and None as
// "none".
func (v TextValue) String() string {
	switch v.kind {
	case KindLeaf:
		return v.leaf
	case KindList:
		parts := make([]string, len(v.list))
		for i, item := range v.list {
			parts[i] = item.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindMap:
		keys := make([]string, 0, len(v.m))
		for k := range v.m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + ": " + v.m[k].String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default: // KindNone
		return "none"
	}
}
