package ustr

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/bits"
	"os"
)

// ErrOpen is returned, wrapped, when Load cannot open its file.
var ErrOpen = errors.New("ustr: cannot open file")

// Mark identifies the byte-order mark found at the start of a file.
type Mark uint8

const (
	MarkNone Mark = iota
	MarkUTF8
	MarkUTF16BE
	MarkUTF16LE
	MarkUTF32BE
	MarkUTF32LE
)

// Byte-order marks in strict matching priority: a UTF-32 LE mark starts
// with the UTF-16 LE mark, so longer marks are tried first.
var marks = []struct {
	mark  Mark
	bytes []byte
}{
	{MarkUTF32BE, []byte{0x00, 0x00, 0xFE, 0xFF}},
	{MarkUTF32LE, []byte{0xFF, 0xFE, 0x00, 0x00}},
	{MarkUTF16BE, []byte{0xFE, 0xFF}},
	{MarkUTF16LE, []byte{0xFF, 0xFE}},
	{MarkUTF8, []byte{0xEF, 0xBB, 0xBF}},
}

func (m Mark) String() string {
	switch m {
	case MarkUTF8:
		return "utf-8-bom"
	case MarkUTF16BE:
		return "utf-16be"
	case MarkUTF16LE:
		return "utf-16le"
	case MarkUTF32BE:
		return "utf-32be"
	case MarkUTF32LE:
		return "utf-32le"
	}
	return "none"
}

// Encoding reports the unit width implied by the mark.
func (m Mark) Encoding() Encoding {
	switch m {
	case MarkUTF16BE, MarkUTF16LE:
		return EncodingUTF16
	case MarkUTF32BE, MarkUTF32LE:
		return EncodingUTF32
	}
	return EncodingUTF8
}

// Order reports the byte order implied by the mark. UTF-8 has no order and
// reports the host order.
func (m Mark) Order() ByteOrder {
	switch m {
	case MarkUTF16BE, MarkUTF32BE:
		return BigEndian
	case MarkUTF16LE, MarkUTF32LE:
		return LittleEndian
	}
	return HostOrder
}

// Len returns the number of bytes the mark occupies.
func (m Mark) Len() int {
	for _, e := range marks {
		if e.mark == m {
			return len(e.bytes)
		}
	}
	return 0
}

// Bytes returns the mark's byte sequence.
func (m Mark) Bytes() []byte {
	for _, e := range marks {
		if e.mark == m {
			return e.bytes
		}
	}
	return nil
}

// Sniff matches the leading bytes of a file against the mark table.
func Sniff(head []byte) Mark {
	for _, e := range marks {
		if bytes.HasPrefix(head, e.bytes) {
			return e.mark
		}
	}
	return MarkNone
}

// ByteOrder is the serialization order of multi-byte units.
type ByteOrder uint8

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

// HostOrder is the byte order of the running machine.
var HostOrder = func() ByteOrder {
	if binary.NativeEndian.Uint16([]byte{0x12, 0x34}) == 0x1234 {
		return BigEndian
	}
	return LittleEndian
}()

func (o ByteOrder) String() string {
	if o == BigEndian {
		return "be"
	}
	return "le"
}

// Document is the result of loading a file: exactly one of UTF8, UTF16 and
// UTF32 is set, matching the encoding announced by Mark.
type Document struct {
	Mark  Mark
	UTF8  *String8
	UTF16 *String16
	UTF32 *String32
}

// Encoding reports which of the strings is set.
func (d *Document) Encoding() Encoding {
	return d.Mark.Encoding()
}

// Length returns the number of scalars loaded.
func (d *Document) Length() int {
	switch {
	case d.UTF16 != nil:
		return d.UTF16.Length()
	case d.UTF32 != nil:
		return d.UTF32.Length()
	case d.UTF8 != nil:
		return d.UTF8.Length()
	}
	return 0
}

// Size returns the number of units loaded.
func (d *Document) Size() int {
	switch {
	case d.UTF16 != nil:
		return d.UTF16.Size()
	case d.UTF32 != nil:
		return d.UTF32.Size()
	case d.UTF8 != nil:
		return d.UTF8.Size()
	}
	return 0
}

// String returns the loaded text as a Go string.
func (d *Document) String() string {
	switch {
	case d.UTF16 != nil:
		return d.UTF16.String()
	case d.UTF32 != nil:
		return d.UTF32.String()
	case d.UTF8 != nil:
		return d.UTF8.String()
	}
	return ""
}

// Load reads the file at path. The byte-order mark picks the encoding and
// is stripped, units are brought to host order, and CR and CRLF become LF.
// When the file cannot be opened the result is absent and the error wraps
// ErrOpen.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer f.Close()

	hint := 0
	if info, err := f.Stat(); err == nil {
		hint = int(info.Size())
	}
	return decodeDocument(f, hint)
}

// Decode reads a document from r, as Load does for files.
func Decode(r io.Reader) (*Document, error) {
	return decodeDocument(r, 0)
}

func decodeDocument(r io.Reader, hint int) (*Document, error) {
	br := bufio.NewReader(r)

	// The mark decides the unit width and is not part of the text.
	head, err := br.Peek(4)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("ustr: read mark: %w", err)
	}
	mark := Sniff(head)
	if _, err := br.Discard(mark.Len()); err != nil {
		return nil, fmt.Errorf("ustr: skip mark: %w", err)
	}

	// Units are brought to host order while line endings are normalized.
	doc := &Document{Mark: mark}
	swap := mark.Order() != HostOrder
	switch mark.Encoding() {
	case EncodingUTF16:
		doc.UTF16, err = stream[uint16](br, swap, hint/2)
	case EncodingUTF32:
		doc.UTF32, err = stream[uint32](br, swap, hint/4)
	default:
		doc.UTF8, err = stream[uint8](br, false, hint)
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// unitReader reads native units from a byte stream.
type unitReader[U Unit] struct {
	br   *bufio.Reader
	swap bool
	buf  [4]byte
}

// next returns the next unit, or false at the end of input. A trailing
// partial unit is dropped.
func (ur *unitReader[U]) next() (U, bool, error) {
	n := unitSize[U]()
	if _, err := io.ReadFull(ur.br, ur.buf[:n]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("ustr: read unit: %w", err)
	}
	switch n {
	case 1:
		return U(ur.buf[0]), true, nil
	case 2:
		u := binary.NativeEndian.Uint16(ur.buf[:2])
		if ur.swap {
			u = bits.ReverseBytes16(u)
		}
		return U(u), true, nil
	}
	u := binary.NativeEndian.Uint32(ur.buf[:4])
	if ur.swap {
		u = bits.ReverseBytes32(u)
	}
	return U(u), true, nil
}

// stream fills a new string from br, turning CR and CRLF into LF. When a CR
// is followed by anything but LF, the LF is substituted and the peeked unit
// is still emitted.
func stream[U Unit](br *bufio.Reader, swap bool, hint int) (*String[U], error) {
	ur := &unitReader[U]{br: br, swap: swap}
	s := &String[U]{}
	s.Reserve(hint)

	u, ok, err := ur.next()
	for ok && err == nil {
		if u == '\r' {
			s.appendUnit('\n')
			if u, ok, err = ur.next(); ok && err == nil && u == '\n' {
				u, ok, err = ur.next()
			}
			continue
		}
		s.appendUnit(u)
		u, ok, err = ur.next()
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// appendUnit adds a raw unit, growing geometrically.
func (s *String[U]) appendUnit(u U) {
	n := s.buf.size
	s.buf.grow(n + 1)
	s.buf.storage()[n] = u
	s.buf.setSize(n + 1)
}
