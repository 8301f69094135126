package ustr

// EncodedLen returns how many units of B are needed to hold the scalars of
// src.
func EncodedLen[B, A Unit](src []A) int {
	if unitSize[A]() == unitSize[B]() {
		return len(src)
	}
	n := 0
	for off := 0; off < len(src); {
		r, w := decodeAt(src, off)
		off += w
		n += UnitCount[B](r)
	}
	return n
}

// Transcode converts src into a new string of encoding B. The first pass
// sizes the destination exactly, the second decodes and re-encodes into a
// single allocation.
func Transcode[B, A Unit](src Text[A]) *String[B] {
	units := src.Raw()
	if unitSize[A]() == unitSize[B]() {
		return FromUnits(recast[B](units))
	}

	n := EncodedLen[B](units)
	s := &String[B]{}
	s.buf.reserve(n)
	dst := s.buf.storage()
	at := 0
	for off := 0; off < len(units); {
		r, w := decodeAt(units, off)
		off += w
		at += Encode(dst[at:], r)
	}
	s.buf.setSize(n)
	return s
}

// Equal reports whether a and b hold the same scalar sequence, whatever
// their encodings. Differing encodings are compared by decoding both sides
// in lock-step, without an intermediate copy.
func Equal[A, B Unit](a Text[A], b Text[B]) bool {
	x, y := a.Raw(), b.Raw()
	if unitSize[A]() == unitSize[B]() {
		return unitsEqual(x, recast[A](y))
	}
	i, j := 0, 0
	for i < len(x) && j < len(y) {
		r1, w1 := decodeAt(x, i)
		r2, w2 := decodeAt(y, j)
		if r1 != r2 {
			return false
		}
		i += w1
		j += w2
	}
	return i == len(x) && j == len(y)
}

// Compare orders a and b lexicographically by scalar value and returns -1,
// 0 or +1.
func Compare[A, B Unit](a Text[A], b Text[B]) int {
	x, y := a.Raw(), b.Raw()
	i, j := 0, 0
	for i < len(x) && j < len(y) {
		r1, w1 := decodeAt(x, i)
		r2, w2 := decodeAt(y, j)
		switch {
		case r1 < r2:
			return -1
		case r1 > r2:
			return 1
		}
		i += w1
		j += w2
	}
	switch {
	case i < len(x):
		return 1
	case j < len(y):
		return -1
	}
	return 0
}

// Concat returns a new string in a's encoding holding a followed by b.
// Same-width operands are joined with two bulk copies into one exactly
// sized buffer; otherwise b is transcoded on the fly.
func Concat[A, B Unit](a Text[A], b Text[B]) *String[A] {
	x, y := a.Raw(), b.Raw()
	n := len(x) + EncodedLen[A](y)

	s := &String[A]{}
	s.buf.reserve(n)
	dst := s.buf.storage()
	copy(dst, x)
	if unitSize[A]() == unitSize[B]() {
		copy(dst[len(x):], recast[A](y))
	} else {
		at := len(x)
		for off := 0; off < len(y); {
			r, w := decodeAt(y, off)
			off += w
			at += Encode(dst[at:], r)
		}
	}
	s.buf.setSize(n)
	return s
}

// ConcatAll joins any number of same-encoding texts into one string.
func ConcatAll[U Unit](parts ...Text[U]) *String[U] {
	n := 0
	for _, p := range parts {
		n += len(p.Raw())
	}
	s := &String[U]{}
	s.buf.reserve(n)
	dst := s.buf.storage()
	at := 0
	for _, p := range parts {
		at += copy(dst[at:], p.Raw())
	}
	s.buf.setSize(n)
	return s
}
