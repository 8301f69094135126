// Package ustr implements Unicode strings stored as UTF-8, UTF-16 or UTF-32
// code units, with inline storage for short strings.
package ustr

// Text is anything that exposes a run of units: an owning String, a View
// or a Literal. The returned slice must not be retained past the
// lifetime of its owner.
type Text[U Unit] interface {
	Raw() []U
}

// Literal is a bare unit array used as an operand.
type Literal[U Unit] []U

// Raw returns the literal's units.
func (l Literal[U]) Raw() []U { return l }

// Lit8 returns s as UTF-8 units.
func Lit8(s string) Literal[uint8] { return Literal[uint8]([]byte(s)) }

// Lit16 encodes s as UTF-16 units.
func Lit16(s string) Literal[uint16] { return litFrom[uint16](s) }

// Lit32 encodes s as UTF-32 units.
func Lit32(s string) Literal[uint32] { return litFrom[uint32](s) }

func litFrom[U Unit](s string) Literal[U] {
	out := make([]U, 0, len(s))
	for _, r := range s {
		out = AppendRune(out, r)
	}
	return out
}

// String is an owning Unicode string stored as units of U. Short strings
// live inline and never touch the heap.
//
// A String must not be copied by value once used: use Clone or Assign for
// a deep copy and Swap to exchange contents. The zero value is an empty
// string ready to use.
type String[U Unit] struct {
	buf buffer[U]
}

type (
	String8  = String[uint8]
	String16 = String[uint16]
	String32 = String[uint32]
)

// New returns an empty string.
func New[U Unit]() *String[U] {
	return &String[U]{}
}

// NewWithAllocator returns an empty string whose heap storage comes from a.
func NewWithAllocator[U Unit](a Allocator) *String[U] {
	s := &String[U]{}
	s.buf.alloc = a
	return s
}

// FromUnits copies units into a new string of the same encoding.
func FromUnits[U Unit](units []U) *String[U] {
	s := &String[U]{}
	s.assignUnits(units)
	return s
}

// FromString transcodes a Go string into a new string of encoding U.
func FromString[U Unit](str string) *String[U] {
	return Transcode[U, uint8](Lit8(str))
}

// FromRunes encodes rs into a new string of encoding U.
func FromRunes[U Unit](rs []rune) *String[U] {
	n := 0
	for _, r := range rs {
		n += UnitCount[U](r)
	}
	s := &String[U]{}
	s.buf.reserve(n)
	dst := s.buf.storage()
	off := 0
	for _, r := range rs {
		off += Encode(dst[off:], r)
	}
	s.buf.setSize(n)
	return s
}

// Raw returns the used units. The slice aliases the string's storage.
func (s *String[U]) Raw() []U { return s.buf.data() }

// Size returns the number of units in use.
func (s *String[U]) Size() int { return s.buf.size }

// Length returns the number of scalar values.
func (s *String[U]) Length() int { return countRunes(s.buf.data()) }

// Capacity returns how many units fit without reallocating.
func (s *String[U]) Capacity() int { return s.buf.capacity() }

// Empty reports whether the string holds no units.
func (s *String[U]) Empty() bool { return s.buf.size == 0 }

// Inline reports whether the content is still stored inside the String.
func (s *String[U]) Inline() bool { return !s.buf.onHeap() }

// Encoding reports the encoding of the string.
func (s *String[U]) Encoding() Encoding { return EncodingOf[U]() }

// Reserve grows capacity to at least n units.
func (s *String[U]) Reserve(n int) { s.buf.reserve(n) }

// Truncate shortens the string to n units. Storage is kept.
func (s *String[U]) Truncate(n int) {
	if n < 0 || n >= s.buf.size {
		return
	}
	s.buf.setSize(n)
}

// Release returns heap storage to the allocator and empties the string.
func (s *String[U]) Release() { s.buf.release() }

// View returns a view over the whole string.
func (s *String[U]) View() View[U] { return View[U]{units: s.buf.data()} }

func (s *String[U]) assignUnits(units []U) {
	s.buf.reserve(len(units))
	copy(s.buf.storage(), units)
	s.buf.setSize(len(units))
}

// Assign replaces the content with a deep copy of t.
func (s *String[U]) Assign(t Text[U]) *String[U] {
	src := t.Raw()
	if s.buf.onHeap() && overlaps(s.buf.heap, src) {
		src = append([]U(nil), src...)
	}
	s.assignUnits(src)
	return s
}

// Clone returns a deep copy sharing the same allocator.
func (s *String[U]) Clone() *String[U] {
	c := &String[U]{}
	c.buf.alloc = s.buf.alloc
	c.assignUnits(s.buf.data())
	return c
}

// Swap exchanges the representations of s and o. It is the move operation
// of this package: afterwards o holds what s held and s holds o's former
// content, not an empty string.
func (s *String[U]) Swap(o *String[U]) {
	s.buf, o.buf = o.buf, s.buf
}

// Append adds t to the end of s in place.
func (s *String[U]) Append(t Text[U]) *String[U] {
	src := t.Raw()
	if s.buf.onHeap() && overlaps(s.buf.heap, src) {
		src = append([]U(nil), src...)
	}
	n := s.buf.size
	s.buf.grow(n + len(src))
	copy(s.buf.storage()[n:], src)
	s.buf.setSize(n + len(src))
	return s
}

// AppendRune adds one scalar to the end of s in place.
func (s *String[U]) AppendRune(cp rune) *String[U] {
	w := UnitCount[U](cp)
	n := s.buf.size
	s.buf.grow(n + w)
	encode(s.buf.storage()[n:], cp, w)
	s.buf.setSize(n + w)
	return s
}

// AppendAny adds a text of any encoding, transcoding on the fly.
func AppendAny[U, T Unit](s *String[U], t Text[T]) *String[U] {
	if unitSize[U]() == unitSize[T]() {
		return s.Append(Literal[U](recast[U](t.Raw())))
	}
	src := t.Raw()
	n := s.buf.size
	s.buf.grow(n + EncodedLen[U, T](src))
	dst := s.buf.storage()
	for off := 0; off < len(src); {
		r, w := decodeAt(src, off)
		off += w
		n += Encode(dst[n:], r)
	}
	s.buf.setSize(n)
	return s
}

// UTF8 returns a UTF-8 copy of s.
func (s *String[U]) UTF8() *String8 { return Transcode[uint8, U](s) }

// UTF16 returns a UTF-16 copy of s.
func (s *String[U]) UTF16() *String16 { return Transcode[uint16, U](s) }

// UTF32 returns a UTF-32 copy of s.
func (s *String[U]) UTF32() *String32 { return Transcode[uint32, U](s) }

// String returns the content as a Go string.
func (s *String[U]) String() string { return s.View().String() }

// overlaps reports whether a and b share backing memory.
func overlaps[U Unit](a, b []U) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	a0, a1 := &a[0], &a[len(a)-1]
	b0, b1 := &b[0], &b[len(b)-1]
	return uintptrOf(b0) <= uintptrOf(a1) && uintptrOf(a0) <= uintptrOf(b1)
}
