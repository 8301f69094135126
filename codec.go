package ustr

// Unit is the storage element of one of the three supported encodings:
// uint8 for UTF-8, uint16 for UTF-16 and uint32 for UTF-32.
type Unit interface {
	~uint8 | ~uint16 | ~uint32
}

// Encoding identifies a unit width. Its value is the unit size in bytes.
type Encoding uint8

const (
	EncodingUTF8  Encoding = 1
	EncodingUTF16 Encoding = 2
	EncodingUTF32 Encoding = 4
)

func (e Encoding) String() string {
	switch e {
	case EncodingUTF8:
		return "utf-8"
	case EncodingUTF16:
		return "utf-16"
	case EncodingUTF32:
		return "utf-32"
	}
	return "unknown"
}

const (
	// RuneError is returned by out-of-range reads.
	RuneError = '\uFFFD'

	// MaxRune is the largest Unicode scalar value.
	MaxRune = 0x10FFFF

	highSurrogateTag = 0x36 // 110110xx xxxxxxxx
	lowSurrogateTag  = 0x37 // 110111xx xxxxxxxx
	surrogateBase    = 0x10000
)

// Lead-byte widths indexed by the top nibble of a UTF-8 unit.
// Continuation nibbles 0x8..0xB count as 1 so malformed input still advances.
var utf8Widths = [16]uint8{
	1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 2, 2, 3, 4,
}

// EncodingOf reports the encoding stored in units of U.
func EncodingOf[U Unit]() Encoding {
	return Encoding(unitSize[U]())
}

// UnitCount returns how many units of U are needed to encode cp.
func UnitCount[U Unit](cp rune) int {
	switch unitSize[U]() {
	case 1:
		switch {
		case cp < 0x80:
			return 1
		case cp < 0x800:
			return 2
		case cp < 0x10000:
			return 3
		}
		return 4
	case 2:
		if cp > 0xFFFF {
			return 2
		}
		return 1
	}
	return 1
}

// forwardWidth reads only the lead unit of a scalar and reports how many
// units the scalar spans.
func forwardWidth[U Unit](lead U) int {
	switch unitSize[U]() {
	case 1:
		return int(utf8Widths[uint8(lead)>>4])
	case 2:
		if uint16(lead)>>10 == highSurrogateTag {
			return 2
		}
	}
	return 1
}

// backwardWidth reports how many units the scalar ending right before
// units[end] spans. It never walks below index 0.
func backwardWidth[U Unit](units []U, end int) int {
	switch unitSize[U]() {
	case 1:
		i := end - 1
		for i > 0 && end-i < 4 && uint8(units[i])&0xC0 == 0x80 {
			i--
		}
		return end - i
	case 2:
		if end >= 2 && uint16(units[end-1])>>10 == lowSurrogateTag {
			return 2
		}
	}
	return 1
}

// widthAt is forwardWidth clamped to what remains after off.
func widthAt[U Unit](units []U, off int) int {
	w := forwardWidth(units[off])
	if rest := len(units) - off; w > rest {
		w = rest
	}
	return w
}

// encode writes cp into dst[:w]. w must equal UnitCount[U](cp).
func encode[U Unit](dst []U, cp rune, w int) {
	switch unitSize[U]() {
	case 1:
		switch w {
		case 1:
			dst[0] = U(cp)
		case 2:
			dst[0] = U(0xC0 | cp>>6)
			dst[1] = U(0x80 | cp&0x3F)
		case 3:
			dst[0] = U(0xE0 | cp>>12)
			dst[1] = U(0x80 | (cp>>6)&0x3F)
			dst[2] = U(0x80 | cp&0x3F)
		default:
			dst[0] = U(0xF0 | cp>>18)
			dst[1] = U(0x80 | (cp>>12)&0x3F)
			dst[2] = U(0x80 | (cp>>6)&0x3F)
			dst[3] = U(0x80 | cp&0x3F)
		}
	case 2:
		if w == 2 {
			v := cp - surrogateBase
			dst[0] = U(0xD800 + v>>10)
			dst[1] = U(0xDC00 + v&0x3FF)
			return
		}
		dst[0] = U(cp)
	default:
		dst[0] = U(cp)
	}
}

// decode reads the scalar held in src[:w].
func decode[U Unit](src []U, w int) rune {
	switch unitSize[U]() {
	case 1:
		b0 := rune(uint8(src[0]))
		switch w {
		case 1:
			return b0
		case 2:
			return (b0&0x1F)<<6 | cont(src[1])
		case 3:
			return (b0&0x0F)<<12 | cont(src[1])<<6 | cont(src[2])
		}
		return (b0&0x07)<<18 | cont(src[1])<<12 | cont(src[2])<<6 | cont(src[3])
	case 2:
		if w == 2 {
			hi := rune(uint16(src[0])) - 0xD800
			lo := rune(uint16(src[1])) - 0xDC00
			return surrogateBase + hi<<10 + lo
		}
		return rune(uint16(src[0]))
	}
	return rune(uint32(src[0]))
}

// cont extracts the six payload bits of a UTF-8 continuation unit.
func cont[U Unit](u U) rune {
	return rune(uint8(u) & 0x3F)
}

// decodeAt decodes the scalar starting at units[off].
func decodeAt[U Unit](units []U, off int) (rune, int) {
	w := widthAt(units, off)
	if w < forwardWidth(units[off]) {
		// Truncated sequence: decode only the lead.
		return decode(units[off:], 1), w
	}
	return decode(units[off:], w), w
}

// stepBack is backwardWidth, falling back to a single unit when the unit
// it lands on does not lead a scalar of that width.
func stepBack[U Unit](units []U, end int) int {
	w := backwardWidth(units, end)
	if w > 1 && forwardWidth(units[end-w]) != w {
		return 1
	}
	return w
}

// decodeBefore decodes the scalar that ends right before units[end].
func decodeBefore[U Unit](units []U, end int) (rune, int) {
	w := stepBack(units, end)
	return decode(units[end-w:], w), w
}

// DecodeFirst decodes the first scalar of units and reports how many units
// it consumed. An empty run yields (RuneError, 0).
func DecodeFirst[U Unit](units []U) (rune, int) {
	if len(units) == 0 {
		return RuneError, 0
	}
	return decodeAt(units, 0)
}

// DecodeLast decodes the last scalar of units and reports how many units
// it consumed walking backward.
func DecodeLast[U Unit](units []U) (rune, int) {
	if len(units) == 0 {
		return RuneError, 0
	}
	return decodeBefore(units, len(units))
}

// Encode writes cp at the start of dst and returns the number of units
// written. dst must hold at least UnitCount[U](cp) units.
func Encode[U Unit](dst []U, cp rune) int {
	w := UnitCount[U](cp)
	encode(dst, cp, w)
	return w
}

// AppendRune appends the encoding of cp to dst.
func AppendRune[U Unit](dst []U, cp rune) []U {
	w := UnitCount[U](cp)
	n := len(dst)
	var zero [4]U
	dst = append(dst, zero[:w]...)
	encode(dst[n:], cp, w)
	return dst
}

// countRunes walks scalar boundaries and counts scalars.
func countRunes[U Unit](units []U) int {
	if unitSize[U]() == 4 {
		return len(units)
	}
	n := 0
	for off := 0; off < len(units); n++ {
		off += widthAt(units, off)
	}
	return n
}

// runeOffset returns the unit offset of the i-th scalar, walking forward.
// When i is past the end it returns len(units) and false.
func runeOffset[U Unit](units []U, i int) (int, bool) {
	if i < 0 {
		return 0, false
	}
	if unitSize[U]() == 4 {
		if i > len(units) {
			return len(units), false
		}
		return i, true
	}
	off := 0
	for ; i > 0 && off < len(units); i-- {
		off += widthAt(units, off)
	}
	return off, i == 0
}

// runeOffsetBack returns the unit offset n scalars before the end,
// clamped to 0.
func runeOffsetBack[U Unit](units []U, n int) int {
	end := len(units)
	for ; n > 0 && end > 0; n-- {
		end -= stepBack(units, end)
	}
	return end
}
