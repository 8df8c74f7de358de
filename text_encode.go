package isla

import (
	"sort"
	"strings"
)

// EncodeText serializes v into the ISLA text form. v's top tag must be
// list or map.
func EncodeText(v TextValue) (string, error) {
	if v.kind != KindList && v.kind != KindMap {
		reason := "leaf at top"
		if v.kind == KindNone {
			reason = "none at top"
		}
		return "", &ErrNotEncodable{Reason: reason}
	}
	var buf strings.Builder
	buf.WriteString(textHeader)
	buf.WriteByte('\n')
	if err := writeScope(&buf, v, 0); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func writeScope(buf *strings.Builder, v TextValue, level int) error {
	switch v.kind {
	case KindList:
		for _, item := range v.list {
			if err := writeListItem(buf, item, level); err != nil {
				return err
			}
		}
	case KindMap:
		keys := make([]string, 0, len(v.m))
		for k := range v.m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if err := writeMapEntry(buf, k, v.m[k], level); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeListItem(buf *strings.Builder, item TextValue, level int) error {
	indent := strings.Repeat("\t", level)
	switch item.kind {
	case KindLeaf:
		switch {
		case strings.Contains(item.leaf, "\n"):
			buf.WriteString(indent)
			buf.WriteString("-\"\n")
			writeMultilineBody(buf, item.leaf)
		case item.leaf == ":":
			buf.WriteString(indent)
			buf.WriteString("-\\:\n")
		case item.leaf == "\"":
			buf.WriteString(indent)
			buf.WriteString("-\\\"\n")
		default:
			buf.WriteString(indent)
			buf.WriteString("-")
			buf.WriteString(item.leaf)
			buf.WriteByte('\n')
		}
	case KindList, KindMap:
		buf.WriteString(indent)
		buf.WriteString("-:\n")
		return writeScope(buf, item, level+1)
	default:
		return &ErrNotEncodable{Reason: "none element"}
	}
	return nil
}

func writeMapEntry(buf *strings.Builder, key string, val TextValue, level int) error {
	indent := strings.Repeat("\t", level)
	ek := escapeKey(key)
	switch val.kind {
	case KindLeaf:
		switch {
		case strings.Contains(val.leaf, "\n"):
			buf.WriteString(indent)
			buf.WriteString(ek)
			buf.WriteString("=\"\n")
			writeMultilineBody(buf, val.leaf)
		case val.leaf == "\"":
			buf.WriteString(indent)
			buf.WriteString(ek)
			buf.WriteString("=\\\"\n")
		default:
			buf.WriteString(indent)
			buf.WriteString(ek)
			buf.WriteString("=")
			buf.WriteString(val.leaf)
			buf.WriteByte('\n')
		}
	case KindList, KindMap:
		buf.WriteString(indent)
		buf.WriteString(ek)
		buf.WriteString(":\n")
		return writeScope(buf, val, level+1)
	default:
		return &ErrNotEncodable{Reason: "none field"}
	}
	return nil
}

func writeMultilineBody(buf *strings.Builder, leaf string) {
	for _, line := range strings.Split(leaf, "\n") {
		if line == "\"" {
			buf.WriteString("\\\"\n")
		} else {
			buf.WriteString(line)
			buf.WriteByte('\n')
		}
	}
	buf.WriteString("\"\n")
}

// escapeKey rewrites a map key for the KEY position of a "KEY OP TAIL"
// line: a leading '-' becomes "\-", and every '=' and ':' becomes "\="
// / "\:". Other characters are emitted verbatim.
func escapeKey(key string) string {
	var b strings.Builder
	start := 0
	if strings.HasPrefix(key, "-") {
		b.WriteString("\\-")
		start = 1
	}
	for i := start; i < len(key); i++ {
		switch c := key[i]; c {
		case '=':
			b.WriteString("\\=")
		case ':':
			b.WriteString("\\:")
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
