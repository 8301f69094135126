package ustr

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// MarkFor returns the byte-order mark announcing units of U in order o.
func MarkFor[U Unit](o ByteOrder) Mark {
	switch unitSize[U]() {
	case 2:
		if o == BigEndian {
			return MarkUTF16BE
		}
		return MarkUTF16LE
	case 4:
		if o == BigEndian {
			return MarkUTF32BE
		}
		return MarkUTF32LE
	}
	return MarkUTF8
}

// Write serializes t to w in byte order o, preceded by its byte-order mark
// when mark is set. It returns the number of bytes written.
func Write[U Unit](w io.Writer, t Text[U], o ByteOrder, mark bool) (int64, error) {
	bw := bufio.NewWriter(w)
	var total int64

	if mark {
		n, err := bw.Write(MarkFor[U](o).Bytes())
		total += int64(n)
		if err != nil {
			return total, fmt.Errorf("ustr: write mark: %w", err)
		}
	}

	var order binary.ByteOrder = binary.LittleEndian
	if o == BigEndian {
		order = binary.BigEndian
	}

	var buf [4]byte
	size := unitSize[U]()
	for _, u := range t.Raw() {
		switch size {
		case 1:
			buf[0] = byte(u)
		case 2:
			order.PutUint16(buf[:2], uint16(u))
		default:
			order.PutUint32(buf[:4], uint32(u))
		}
		n, err := bw.Write(buf[:size])
		total += int64(n)
		if err != nil {
			return total, fmt.Errorf("ustr: write unit: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return total, fmt.Errorf("ustr: flush: %w", err)
	}
	return total, nil
}

// Save writes t to the file at path, creating or truncating it.
func Save[U Unit](path string, t Text[U], o ByteOrder, mark bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ustr: create %s: %w", path, err)
	}
	if _, err := Write(f, t, o, mark); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
