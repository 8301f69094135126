package ustr

import (
	"encoding/binary"
	"unsafe"
)

// unitSize returns the width in bytes of one code unit of U
func unitSize[U Unit]() int {
	var u U
	return int(unsafe.Sizeof(u))
}

// unitsAsBytes reinterprets a unit slice as its raw bytes without copying
func unitsAsBytes[U Unit](units []U) []byte {
	if len(units) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(units))), len(units)*unitSize[U]())
}

// bytesAsUnits reinterprets raw bytes as units of U without copying.
// b must be aligned for U; every allocator in this package hands out
// word-aligned memory.
func bytesAsUnits[U Unit](b []byte) []U {
	n := len(b) / unitSize[U]()
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*U)(unsafe.Pointer(unsafe.SliceData(b))), n)
}

// recast reinterprets units of A as units of B. Callers only use it once
// they have checked that both widths are equal.
func recast[B, A Unit](units []A) []B {
	if len(units) == 0 {
		return nil
	}
	return unsafe.Slice((*B)(unsafe.Pointer(unsafe.SliceData(units))), len(units))
}

// unitsEqual compares two unit runs of the same width.
func unitsEqual[U Unit](a, b []U) bool {
	if len(a) != len(b) {
		return false
	}
	return memEqual(unitsAsBytes(a), unitsAsBytes(b), len(a)*unitSize[U]())
}

// memEqual memory comparison function that compares two byte slices
// for equality up to a specified length.
// It compares a machine word at a time, then the remaining tail bytes.
func memEqual(a, b []byte, length int) bool {
	if length == 0 {
		return true
	}

	// Views may start at any byte offset, so words are loaded without
	// assuming alignment.
	const wordSize = 8

	wordsToCompare := length / wordSize
	for i := 0; i < wordsToCompare; i++ {
		off := i * wordSize
		if binary.NativeEndian.Uint64(a[off:]) != binary.NativeEndian.Uint64(b[off:]) {
			return false
		}
	}

	// Handle remaining bytes
	remaining := length % wordSize
	offset := wordsToCompare * wordSize
	for i := 0; i < remaining; i++ {
		if a[offset+i] != b[offset+i] {
			return false
		}
	}

	return true
}

// uintptrOf returns the address of a unit, for overlap checks only.
func uintptrOf[U Unit](p *U) uintptr {
	return uintptr(unsafe.Pointer(p))
}
