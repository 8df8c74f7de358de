package isla

import (
	"encoding/binary"
	"math"
)

const maxLen28 = 1<<28 - 1

// EncodeBinary serializes v into the ISLA binary form.
func EncodeBinary(v BinValue) ([]byte, error) {
	buf := make([]byte, 0, 64)
	buf = append(buf, binHeaderMagic...)
	buf = append(buf, binVersion[:]...)
	buf, err := encodeBinValue(buf, v)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

func encodeBinValue(buf []byte, v BinValue) ([]byte, error) {
	switch v.kind {
	case KindLeaf:
		n := len(v.leaf)
		if n > maxLen28 {
			return nil, &ErrEncodeTooLong{What: "leaf", Len: uint64(n), Max: maxLen28}
		}
		buf = writeWord(buf, uint32(n))
		buf = append(buf, v.leaf...)
		return buf, nil

	case KindList:
		n := len(v.list)
		if n > maxLen28 {
			return nil, &ErrEncodeTooLong{What: "list", Len: uint64(n), Max: maxLen28}
		}
		buf = writeWord(buf, 1<<28|uint32(n))
		var err error
		for _, item := range v.list {
			buf, err = encodeBinValue(buf, item)
			if err != nil {
				return nil, err
			}
		}
		return buf, nil

	case KindMap:
		n := len(v.m)
		if n > maxLen28 {
			return nil, &ErrEncodeTooLong{What: "map", Len: uint64(n), Max: maxLen28}
		}
		buf = writeWord(buf, 2<<28|uint32(n))
		for k, val := range v.m {
			klen := len(k)
			if uint64(klen) > math.MaxUint32 {
				return nil, &ErrEncodeTooLong{What: "map key", Len: uint64(klen), Max: math.MaxUint32}
			}
			buf = writeWord(buf, uint32(klen))
			buf = append(buf, k...)
			var err error
			buf, err = encodeBinValue(buf, val)
			if err != nil {
				return nil, err
			}
		}
		return buf, nil

	default:
		return nil, &ErrNotEncodable{Reason: "none value"}
	}
}

func writeWord(buf []byte, word uint32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], word)
	return append(buf, tmp[:]...)
}
