// Package isla implements the ISLA serialization format in both of its
// wire forms: an indentation-structured UTF-8 text form, and a
// length-tagged binary form. Both forms decode into and encode from the
// same in-memory value tree — see [TextValue] and [BinValue].
//
// # Text form
//
// A text document begins with the literal line "ISLA1", followed by a
// sequence of LF-terminated lines. Nesting is signalled by leading tab
// characters, one per level; there is no brace or bracket syntax.
//
//	ISLA1
//	name=Kepler-452b
//	moons:
//		-Io
//		-Europa
//
// Lines consisting only of tabs are blank and skipped. A ";" appearing
// at or before the current nesting level starts a line comment.
//
// A scope (the body following a ":" line) is a list if its first
// content line starts with "-", and a map otherwise. A scope that opens
// and is immediately followed by dedent or end of input decodes to
// [TextNone] — distinct from an empty list or an empty map, neither of
// which the text form can otherwise express.
//
// Map keys escape a leading "-" as "\-" and any "=" or ":" as "\=" or
// "\:"; list items and map values may span multiple lines by opening
// with a lone '"' and closing with a lone '"' on its own line, inside
// which a line consisting of exactly `\"` represents a literal quote.
//
// # Binary form
//
// A binary document begins with the 5-byte magic "ISLAb" and a 3-byte
// big-endian version (currently 0x000001), followed by one encoded
// value. Every value starts with a 4-byte little-endian header: the top
// 4 bits select a type (0 leaf, 1 list, 2 map) and the bottom 28 bits
// give a count (byte length for a leaf, element count for a list or
// map). Map entries are further prefixed with a 4-byte little-endian
// key length with no type tag.
//
// # Scope
//
// This package ships only the codecs and the value tree. Typed decoding
// of numbers, dates, colors, and similar is left to callers; the
// package does no file I/O, offers no command-line tooling, and does no
// logging of its own.
package isla
