package isla

import "encoding/binary"

const binHeaderMagic = "ISLAb"

var binVersion = [3]byte{0x00, 0x00, 0x01}

// DecodeBinary parses the ISLA binary form held in data into a Value.
// Trailing bytes after the top-level value are not an error.
func DecodeBinary(data []byte) (BinValue, error) {
	if len(data) < 8 || string(data[:5]) != binHeaderMagic || data[5] != binVersion[0] || data[6] != binVersion[1] || data[7] != binVersion[2] {
		got := data
		if len(got) > 5 {
			got = got[:5]
		}
		return BinValue{}, &ErrBadHeader{Got: string(got)}
	}
	val, _, err := decodeBinValue(data, 8)
	if err != nil {
		return BinValue{}, err
	}
	return val, nil
}

// decodeBinValue decodes one value starting at byte offset off, and
// returns the offset of the byte following it.
func decodeBinValue(data []byte, off int) (BinValue, int, error) {
	if off+4 > len(data) {
		return BinValue{}, off, &ErrDecodeOutOfBounds{What: "value header", Needed: 4, Remaining: len(data) - off}
	}
	word := binary.LittleEndian.Uint32(data[off : off+4])
	tag := byte(word >> 28)
	count := word & 0x0FFFFFFF
	off += 4

	switch tag {
	case 0: // leaf
		n := int(count)
		if off+n > len(data) {
			return BinValue{}, off, &ErrDecodeOutOfBounds{What: "leaf payload", Needed: n, Remaining: len(data) - off}
		}
		leaf := make([]byte, n)
		copy(leaf, data[off:off+n])
		return BinValue{kind: KindLeaf, leaf: leaf}, off + n, nil

	case 1: // list
		items := make([]BinValue, 0, count)
		for i := uint32(0); i < count; i++ {
			val, newOff, err := decodeBinValue(data, off)
			if err != nil {
				return BinValue{}, off, err
			}
			items = append(items, val)
			off = newOff
		}
		return BinValue{kind: KindList, list: items}, off, nil

	case 2: // map
		m := make(map[string]BinValue, count)
		for i := uint32(0); i < count; i++ {
			if off+4 > len(data) {
				return BinValue{}, off, &ErrDecodeOutOfBounds{What: "map key length", Needed: 4, Remaining: len(data) - off}
			}
			klen := int(binary.LittleEndian.Uint32(data[off : off+4]))
			off += 4
			if off+klen > len(data) {
				return BinValue{}, off, &ErrDecodeOutOfBounds{What: "map key", Needed: klen, Remaining: len(data) - off}
			}
			key := string(data[off : off+klen])
			off += klen
			val, newOff, err := decodeBinValue(data, off)
			if err != nil {
				return BinValue{}, off, err
			}
			m[key] = val // duplicate keys: last write wins
			off = newOff
		}
		return BinValue{kind: KindMap, m: m}, off, nil

	default:
		return BinValue{}, off, &ErrInvalidType{Tag: tag}
	}
}
