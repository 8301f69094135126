package ustr

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Narrow returns the content of t as a one-byte-per-scalar ISO-8859-1
// string. Scalars above U+00FF become 0x1A.
func Narrow[U Unit](t Text[U]) []byte {
	units := t.Raw()
	if len(units) == 0 {
		return []byte{}
	}
	// Encoders keep state, so each call gets its own.
	enc := encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder())
	out, err := enc.Bytes(utf8Bytes(units))
	if err != nil {
		// ReplaceUnsupported never reports unsupported scalars; anything else
		// falls back to a lossy per-scalar narrowing.
		out = out[:0]
		for off := 0; off < len(units); {
			r, w := decodeAt(units, off)
			off += w
			if r > 0xFF {
				r = 0x1A
			}
			out = append(out, byte(r))
		}
	}
	return out
}

// FromNarrow decodes an ISO-8859-1 byte string into a new string of
// encoding U.
func FromNarrow[U Unit](b []byte) *String[U] {
	wide, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		rs := make([]rune, len(b))
		for i, c := range b {
			rs[i] = rune(c)
		}
		return FromRunes[U](rs)
	}
	return Transcode[U, uint8](Literal[uint8](wide))
}

// Narrow returns s as an ISO-8859-1 byte string.
func (s *String[U]) Narrow() []byte { return Narrow[U](s) }

// utf8Bytes returns the UTF-8 form of units, sharing memory when units are
// already UTF-8.
func utf8Bytes[U Unit](units []U) []byte {
	if unitSize[U]() == 1 {
		return recast[byte](units)
	}
	return Transcode[uint8, U](Literal[U](units)).Raw()
}
