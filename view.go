package ustr

import "strings"

// View is a borrowed, read-only window over units owned by a String (or by
// anything else exposing a unit slice). It does not own memory and is only
// meaningful while its source is alive and unmodified: a view taken before
// the owner grows, shrinks or is released may observe stale or shifted data.
// Use Clone to detach an owned copy.
type View[U Unit] struct {
	units []U
}

type (
	View8  = View[uint8]
	View16 = View[uint16]
	View32 = View[uint32]
)

// ViewOf borrows any text as a view.
func ViewOf[U Unit](t Text[U]) View[U] {
	return View[U]{units: t.Raw()}
}

// Raw returns the units under the view.
func (v View[U]) Raw() []U { return v.units }

// Size returns the number of units in the view.
func (v View[U]) Size() int { return len(v.units) }

// Length returns the number of scalars in the view.
func (v View[U]) Length() int { return countRunes(v.units) }

// Empty reports whether the view covers no units.
func (v View[U]) Empty() bool { return len(v.units) == 0 }

// Encoding reports the encoding of the viewed units.
func (v View[U]) Encoding() Encoding { return EncodingOf[U]() }

// Slice returns the scalars between from and to. Both positions are clamped
// to the view; a reversed range yields an empty view at from.
func (v View[U]) Slice(from, to Pos) View[U] {
	a := resolvePos(v.units, from)
	b := resolvePos(v.units, to)
	if b < a {
		b = a
	}
	return View[U]{units: v.units[a:b:b]}
}

// SliceUnits returns units [from, to), clamped to the view. The bounds are
// not realigned to scalar boundaries.
func (v View[U]) SliceUnits(from, to int) View[U] {
	from = clamp(from, 0, len(v.units))
	to = clamp(to, from, len(v.units))
	return View[U]{units: v.units[from:to:to]}
}

// Clone copies the viewed units into a new owning string.
func (v View[U]) Clone() *String[U] {
	return FromUnits(v.units)
}

// Equal reports whether v holds the same units as t.
func (v View[U]) Equal(t Text[U]) bool {
	return unitsEqual(v.units, t.Raw())
}

// Compare orders v and t by scalar value.
func (v View[U]) Compare(t Text[U]) int {
	return Compare[U, U](v, t)
}

// Contains reports whether needle occurs in v.
func (v View[U]) Contains(needle Text[U]) bool {
	return Contains[U, U](v, needle)
}

// StartsWith reports whether v begins with prefix.
func (v View[U]) StartsWith(prefix Text[U]) bool {
	return StartsWith[U, U](v, prefix)
}

// EndsWith reports whether v ends with suffix.
func (v View[U]) EndsWith(suffix Text[U]) bool {
	return EndsWith[U, U](v, suffix)
}

// Match returns every non-overlapping occurrence of needle in v.
func (v View[U]) Match(needle Text[U]) []View[U] {
	return Match[U, U](v, needle)
}

// Split cuts v at every occurrence of divider.
func (v View[U]) Split(divider Text[U]) []View[U] {
	return Split[U, U](v, divider)
}

// String returns the viewed scalars as a Go string.
func (v View[U]) String() string {
	if unitSize[U]() == 1 {
		return string(recast[byte](v.units))
	}
	var sb strings.Builder
	sb.Grow(EncodedLen[uint8](v.units))
	for off := 0; off < len(v.units); {
		r, w := decodeAt(v.units, off)
		off += w
		sb.WriteRune(r)
	}
	return sb.String()
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// Same-encoding query surface of the owning string, forwarded to its view.

// Slice returns the scalars between from and to as a view.
func (s *String[U]) Slice(from, to Pos) View[U] { return s.View().Slice(from, to) }

// SliceUnits returns units [from, to) as a view.
func (s *String[U]) SliceUnits(from, to int) View[U] { return s.View().SliceUnits(from, to) }

// Equal reports whether s holds the same units as t.
func (s *String[U]) Equal(t Text[U]) bool { return s.View().Equal(t) }

// Compare orders s and t by scalar value.
func (s *String[U]) Compare(t Text[U]) int { return s.View().Compare(t) }

// Contains reports whether needle occurs in s.
func (s *String[U]) Contains(needle Text[U]) bool { return s.View().Contains(needle) }

// StartsWith reports whether s begins with prefix.
func (s *String[U]) StartsWith(prefix Text[U]) bool { return s.View().StartsWith(prefix) }

// EndsWith reports whether s ends with suffix.
func (s *String[U]) EndsWith(suffix Text[U]) bool { return s.View().EndsWith(suffix) }

// Match returns every non-overlapping occurrence of needle in s.
func (s *String[U]) Match(needle Text[U]) []View[U] { return s.View().Match(needle) }

// Split cuts s at every occurrence of divider.
func (s *String[U]) Split(divider Text[U]) []View[U] { return s.View().Split(divider) }
