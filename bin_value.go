package isla

import (
	"bytes"
	"fmt"
	"iter"
	"sort"
	"strings"
)

// BinValue is the value tree produced and consumed by the binary codec.
// Leaves are arbitrary byte sequences; map keys are byte sequences too.
// There is no None variant — the binary format always self-describes
// its top-level shape via the header word.
type BinValue struct {
	kind Kind
	leaf []byte
	list []BinValue
	m    map[string]BinValue // keyed by string(key bytes)
}

// NewBinLeaf builds a leaf BinValue. The payload is copied.
func NewBinLeaf(b []byte) BinValue {
	cp := make([]byte, len(b))
	copy(cp, b)
	return BinValue{kind: KindLeaf, leaf: cp}
}

// NewBinList builds a list BinValue from arbitrary elements.
func NewBinList(items ...BinValue) BinValue {
	return BinValue{kind: KindList, list: items}
}

// NewBinMap builds a map BinValue from arbitrary entries, keyed by raw
// byte strings.
func NewBinMap(entries map[string]BinValue) BinValue {
	return BinValue{kind: KindMap, m: entries}
}

// NewBinLeafList is a convenience builder for a list of leaves.
func NewBinLeafList(leaves ...[]byte) BinValue {
	items := make([]BinValue, len(leaves))
	for i, b := range leaves {
		items[i] = NewBinLeaf(b)
	}
	return BinValue{kind: KindList, list: items}
}

// NewBinLeafMap is a convenience builder for a map of leaves.
func NewBinLeafMap(entries map[string][]byte) BinValue {
	m := make(map[string]BinValue, len(entries))
	for k, v := range entries {
		m[k] = NewBinLeaf(v)
	}
	return BinValue{kind: KindMap, m: m}
}

// Kind reports the tag of v.
func (v BinValue) Kind() Kind { return v.kind }

// AsLeaf returns v's leaf payload, or ErrTypeMismatch if v is not a leaf.
func (v BinValue) AsLeaf() ([]byte, error) {
	if v.kind != KindLeaf {
		return nil, &ErrTypeMismatch{Requested: KindLeaf, Actual: v.kind}
	}
	return v.leaf, nil
}

// AsList returns v's elements, or ErrTypeMismatch if v is not a list.
func (v BinValue) AsList() ([]BinValue, error) {
	if v.kind != KindList {
		return nil, &ErrTypeMismatch{Requested: KindList, Actual: v.kind}
	}
	return v.list, nil
}

// AsMap returns v's entries keyed by raw byte string, or ErrTypeMismatch
// if v is not a map.
func (v BinValue) AsMap() (map[string]BinValue, error) {
	if v.kind != KindMap {
		return nil, &ErrTypeMismatch{Requested: KindMap, Actual: v.kind}
	}
	return v.m, nil
}

// AsLeafOrEmpty returns v's leaf payload, or nil if v is not a leaf.
func (v BinValue) AsLeafOrEmpty() []byte {
	b, err := v.AsLeaf()
	if err != nil {
		return nil
	}
	return b
}

// AsListOrEmpty returns v's elements, or nil if v is not a list.
func (v BinValue) AsListOrEmpty() []BinValue {
	l, err := v.AsList()
	if err != nil {
		return nil
	}
	return l
}

// AsMapOrEmpty returns v's entries, or nil if v is not a map.
func (v BinValue) AsMapOrEmpty() map[string]BinValue {
	m, err := v.AsMap()
	if err != nil {
		return nil
	}
	return m
}

// Elem returns the i-th element of a list Value.
func (v BinValue) Elem(i int) (BinValue, error) {
	list, err := v.AsList()
	if err != nil {
		return BinValue{}, err
	}
	if i < 0 || i >= len(list) {
		return BinValue{}, &ErrListIndexOutOfRange{Index: i, Length: len(list)}
	}
	return list[i], nil
}

// Field returns the value stored under key in a map Value.
func (v BinValue) Field(key []byte) (BinValue, error) {
	m, err := v.AsMap()
	if err != nil {
		return BinValue{}, err
	}
	val, ok := m[string(key)]
	if !ok {
		return BinValue{}, &ErrMapKeyNotFound{Key: key}
	}
	return val, nil
}

// HasField reports whether key is present in a map Value.
func (v BinValue) HasField(key []byte) (bool, error) {
	m, err := v.AsMap()
	if err != nil {
		return false, err
	}
	_, ok := m[string(key)]
	return ok, nil
}

// GetElem returns the i-th element, or fallback.
func (v BinValue) GetElem(i int, fallback BinValue) BinValue {
	val, err := v.Elem(i)
	if err != nil {
		return fallback
	}
	return val
}

// GetField returns the value stored under key, or fallback.
func (v BinValue) GetField(key []byte, fallback BinValue) BinValue {
	val, err := v.Field(key)
	if err != nil {
		return fallback
	}
	return val
}

// GetLeafElem returns the i-th element's leaf payload, or fallback.
func (v BinValue) GetLeafElem(i int, fallback []byte) []byte {
	return ParseLeafElemBin(v, i, func(b []byte) ([]byte, error) { return b, nil }, fallback)
}

// GetLeafField returns the leaf payload stored under key, or fallback.
func (v BinValue) GetLeafField(key []byte, fallback []byte) []byte {
	return ParseLeafFieldBin(v, key, func(b []byte) ([]byte, error) { return b, nil }, fallback)
}

// GetListElem returns the i-th element's list payload, or fallback.
func (v BinValue) GetListElem(i int, fallback []BinValue) []BinValue {
	return ParseListElemBin(v, i, func(l []BinValue) ([]BinValue, error) { return l, nil }, fallback)
}

// GetListField returns the list payload stored under key, or fallback.
func (v BinValue) GetListField(key []byte, fallback []BinValue) []BinValue {
	return ParseListFieldBin(v, key, func(l []BinValue) ([]BinValue, error) { return l, nil }, fallback)
}

// GetMapElem returns the i-th element's map payload, or fallback.
func (v BinValue) GetMapElem(i int, fallback map[string]BinValue) map[string]BinValue {
	return ParseMapElemBin(v, i, func(m map[string]BinValue) (map[string]BinValue, error) { return m, nil }, fallback)
}

// GetMapField returns the map payload stored under key, or fallback.
func (v BinValue) GetMapField(key []byte, fallback map[string]BinValue) map[string]BinValue {
	return ParseMapFieldBin(v, key, func(m map[string]BinValue) (map[string]BinValue, error) { return m, nil }, fallback)
}

// SetElem replaces the i-th element of a list Value in place.
func (v *BinValue) SetElem(i int, val BinValue) error {
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
func (v *BinValue) SetField(key []byte, val BinValue) error {
	if v.kind != KindMap {
		return &ErrTypeMismatch{Requested: KindMap, Actual: v.kind}
	}
	if v.m == nil {
		v.m = make(map[string]BinValue)
	}
	v.m[string(key)] = val
	return nil
}

// Elems iterates the (index, value) pairs of a list Value. Iterating a
// non-list yields nothing.
func (v BinValue) Elems() iter.Seq2[int, BinValue] {
	return func(yield func(int, BinValue) bool) {
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
func (v BinValue) Fields() iter.Seq2[[]byte, BinValue] {
	return func(yield func([]byte, BinValue) bool) {
		if v.kind != KindMap {
			return
		}
		for k, val := range v.m {
			if !yield([]byte(k), val) {
				return
			}
		}
	}
}

// Equal reports whether v and other are structurally equal.
func (v BinValue) Equal(other BinValue) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindLeaf:
		return bytes.Equal(v.leaf, other.leaf)
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
	default:
		return true
	}
}

// String renders v for debugging: leaves as uppercase hex pairs
// separated by spaces, lists as "[a, b, c]", maps as "[k: v, k: v]"
// with sorted keys.
func (v BinValue) String() string {
	switch v.kind {
	case KindLeaf:
		return hexBytes(v.leaf)
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
			parts[i] = hexBytes([]byte(k)) + ": " + v.m[k].String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return ""
	}
}

// hexBytes renders b as uppercase hex pairs separated by spaces.
func hexBytes(b []byte) string {
	parts := make([]string, len(b))
	for i, c := range b {
		parts[i] = fmt.Sprintf("%02X", c)
	}
	return strings.Join(parts, " ")
}
