package ustr

// locate finds the i-th scalar of units and returns its offset and width.
func locate[U Unit](units []U, i int) (off, w int, ok bool) {
	off, ok = runeOffset(units, i)
	if !ok || off >= len(units) {
		return 0, 0, false
	}
	return off, widthAt(units, off), true
}

// At returns the i-th scalar of v, or RuneError when i is out of range.
func (v View[U]) At(i int) rune {
	off, w, ok := locate(v.units, i)
	if !ok {
		return RuneError
	}
	return decode(v.units[off:], w)
}

// Set overwrites the i-th scalar of v in the owner's storage. A view cannot
// resize its owner, so Set reports false when cp needs a different number
// of units than the scalar it replaces, or when i is out of range.
func (v View[U]) Set(i int, cp rune) bool {
	off, w, ok := locate(v.units, i)
	if !ok || UnitCount[U](cp) != w {
		return false
	}
	encode(v.units[off:], cp, w)
	return true
}

// At returns the i-th scalar of s, or RuneError when i is out of range.
func (s *String[U]) At(i int) rune { return s.View().At(i) }

// Set replaces the i-th scalar of s with cp, shifting the remainder of the
// string when the encoded widths differ. It reports false when i is out of
// range.
func (s *String[U]) Set(i int, cp rune) bool {
	off, a, ok := locate(s.buf.data(), i)
	if !ok {
		return false
	}
	b := UnitCount[U](cp)
	size := s.buf.size

	switch {
	case a == b:
		encode(s.buf.storage()[off:], cp, b)
		return true
	case a < b:
		grown := size + b - a
		if grown > s.buf.capacity() {
			s.buf.reserve(2 * grown)
		}
		units := s.buf.storage()
		copy(units[off+b:grown], units[off+a:size])
		encode(units[off:], cp, b)
		s.buf.setSize(grown)
	default:
		shrunk := size - (a - b)
		units := s.buf.storage()
		copy(units[off+b:shrunk], units[off+a:size])
		encode(units[off:], cp, b)
		s.buf.setSize(shrunk)
	}
	return true
}
