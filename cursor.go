package ustr

import "iter"

// Cursor is a position over a unit run that always sits on a scalar
// boundary. It steps exactly one scalar at a time.
type Cursor[U Unit] struct {
	units []U
	off   int
}

// Begin returns a cursor on the first scalar of v.
func (v View[U]) Begin() Cursor[U] { return Cursor[U]{units: v.units} }

// End returns a cursor one past the last scalar of v.
func (v View[U]) End() Cursor[U] { return Cursor[U]{units: v.units, off: len(v.units)} }

// Begin returns a cursor on the first scalar of s.
func (s *String[U]) Begin() Cursor[U] { return s.View().Begin() }

// End returns a cursor one past the last scalar of s.
func (s *String[U]) End() Cursor[U] { return s.View().End() }

// Offset returns the unit offset of the cursor.
func (c Cursor[U]) Offset() int { return c.off }

// Done reports whether the cursor is past the last scalar.
func (c Cursor[U]) Done() bool { return c.off >= len(c.units) }

// Value decodes the scalar under the cursor, or RuneError at the end.
func (c Cursor[U]) Value() rune {
	if c.Done() {
		return RuneError
	}
	r, _ := decodeAt(c.units, c.off)
	return r
}

// Next advances one scalar. It reports false, without moving, at the end.
func (c *Cursor[U]) Next() bool {
	if c.Done() {
		return false
	}
	c.off += widthAt(c.units, c.off)
	return true
}

// Prev retreats one scalar. It reports false, without moving, at the start.
func (c *Cursor[U]) Prev() bool {
	if c.off <= 0 {
		return false
	}
	c.off -= stepBack(c.units, c.off)
	return true
}

// Equal compares raw positions only.
func (c Cursor[U]) Equal(o Cursor[U]) bool { return c.off == o.off }

// Runes iterates over the scalars of v, yielding each scalar index with its
// value.
func (v View[U]) Runes() iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		units := v.units
		for i, off := 0, 0; off < len(units); i++ {
			r, w := decodeAt(units, off)
			if !yield(i, r) {
				return
			}
			off += w
		}
	}
}

// Backward iterates over the scalars of v from the last to the first. The
// yielded index counts from the end: 0 is the last scalar.
func (v View[U]) Backward() iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		units := v.units
		for i, end := 0, len(units); end > 0; i++ {
			r, w := decodeBefore(units, end)
			if !yield(i, r) {
				return
			}
			end -= w
		}
	}
}

// Runes iterates over the scalars of s.
func (s *String[U]) Runes() iter.Seq2[int, rune] { return s.View().Runes() }

// Backward iterates over the scalars of s from the end.
func (s *String[U]) Backward() iter.Seq2[int, rune] { return s.View().Backward() }

// AppendRunes decodes every scalar of t onto dst.
func AppendRunes[U Unit](dst []rune, t Text[U]) []rune {
	units := t.Raw()
	for off := 0; off < len(units); {
		r, w := decodeAt(units, off)
		off += w
		dst = append(dst, r)
	}
	return dst
}
