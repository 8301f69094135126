package ustr

import (
	"math/bits"
	"sync"
	"unsafe"
)

// Allocator supplies heap storage for strings that outgrow their inline
// buffer. Returned memory must be aligned to 8 bytes. Release receives the
// exact slice that Allocate returned.
type Allocator interface {
	Allocate(size int) []byte
	Release(b []byte)
}

// HeapAllocator leaves reclamation to the garbage collector.
type HeapAllocator struct{}

// Allocate returns size zeroed bytes backed by 64-bit words.
func (HeapAllocator) Allocate(size int) []byte {
	return wordBytes(size)
}

// Release is a no-op; the collector reclaims unreferenced buffers.
func (HeapAllocator) Release([]byte) {}

// DefaultAllocator is used by strings created without an explicit allocator.
var DefaultAllocator Allocator = HeapAllocator{}

// wordBytes allocates size bytes on a word-aligned backing array.
func wordBytes(size int) []byte {
	if size <= 0 {
		return nil
	}
	words := make([]uint64, (size+7)/8)
	return unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), size)
}

const (
	minClassShift = 5  // 32 bytes
	maxClassShift = 16 // 64 KiB
	poolClasses   = maxClassShift - minClassShift + 1
)

// PoolAllocator recycles buffers in power-of-two size classes from 32 bytes
// to 64 KiB. Larger requests fall through to the heap and are not pooled.
//
// Strings handed a PoolAllocator return their storage on Release, so any
// View still pointing at that storage must not be read afterwards.
type PoolAllocator struct {
	classes [poolClasses]sync.Pool
}

// NewPoolAllocator creates an empty pool.
func NewPoolAllocator() *PoolAllocator {
	return &PoolAllocator{}
}

// classFor returns the smallest class that can hold size bytes, or -1.
func classFor(size int) int {
	if size <= 1<<minClassShift {
		return 0
	}
	shift := bits.Len(uint(size - 1))
	if shift > maxClassShift {
		return -1
	}
	return shift - minClassShift
}

// Allocate returns a buffer of exactly the class size covering size bytes.
// The extra room becomes usable capacity for the caller.
func (p *PoolAllocator) Allocate(size int) []byte {
	c := classFor(size)
	if c < 0 {
		return wordBytes(size)
	}
	if v := p.classes[c].Get(); v != nil {
		return *(v.(*[]byte))
	}
	return wordBytes(1 << (c + minClassShift))
}

// Release zeroes b and returns it to its class. Buffers whose length is not
// a class size were not produced by this pool and are dropped.
func (p *PoolAllocator) Release(b []byte) {
	n := len(b)
	if n < 1<<minClassShift || n > 1<<maxClassShift || n&(n-1) != 0 {
		return
	}
	clear(b)
	c := bits.Len(uint(n-1)) - minClassShift
	p.classes[c].Put(&b)
}
