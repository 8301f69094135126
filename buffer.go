package ustr

import "unsafe"

// inlineWords sizes the inline footprint: 24 bytes hold 23 UTF-8, 11 UTF-16
// or 5 UTF-32 units plus the zero sentinel.
const inlineWords = 3

type mode uint8

const (
	modeInline mode = iota
	modeHeap
)

// buffer owns a run of units either inline or on the heap. The zero value
// is an empty inline buffer. In both modes the unit at index size is zero.
type buffer[U Unit] struct {
	inline [inlineWords]uint64
	heap   []U    // capacity+1 units in heap mode
	raw    []byte // allocation backing heap, handed back on release
	size   int
	mode   mode
	alloc  Allocator
}

// inlineCapacity is the number of usable units in inline mode.
func inlineCapacity[U Unit]() int {
	return inlineWords*8/unitSize[U]() - 1
}

// storage returns every unit slot, sentinel slot included.
func (b *buffer[U]) storage() []U {
	if b.mode == modeHeap {
		return b.heap
	}
	return unsafe.Slice((*U)(unsafe.Pointer(&b.inline[0])), inlineCapacity[U]()+1)
}

// data returns the used units.
func (b *buffer[U]) data() []U {
	return b.storage()[:b.size]
}

func (b *buffer[U]) onHeap() bool {
	return b.mode == modeHeap
}

func (b *buffer[U]) capacity() int {
	if b.mode == modeHeap {
		return len(b.heap) - 1
	}
	return inlineCapacity[U]()
}

func (b *buffer[U]) allocator() Allocator {
	if b.alloc == nil {
		return DefaultAllocator
	}
	return b.alloc
}

// reserve grows capacity to at least n units. It never shrinks and never
// leaves heap mode.
func (b *buffer[U]) reserve(n int) {
	if n <= b.capacity() {
		return
	}
	raw := b.allocator().Allocate((n + 1) * unitSize[U]())
	heap := bytesAsUnits[U](raw)
	copy(heap, b.data())
	heap[b.size] = 0

	b.releaseHeap()
	b.raw = raw
	b.heap = heap
	b.mode = modeHeap
}

// grow makes room for n units, at least doubling the current capacity so
// repeated appends stay amortized.
func (b *buffer[U]) grow(n int) {
	if n <= b.capacity() {
		return
	}
	b.reserve(max(n, 2*b.capacity()))
}

// setSize records n as the used length and writes the sentinel after it.
func (b *buffer[U]) setSize(n int) {
	b.size = n
	b.storage()[n] = 0
}

func (b *buffer[U]) releaseHeap() {
	if b.mode == modeHeap && b.raw != nil {
		b.allocator().Release(b.raw)
	}
	b.raw = nil
	b.heap = nil
}

// release hands heap storage back and empties the buffer. A released
// buffer stays in heap mode with zero capacity until it grows again.
func (b *buffer[U]) release() {
	if b.mode != modeHeap {
		b.setSize(0)
		return
	}
	b.releaseHeap()
	var sentinel [1]U
	b.heap = sentinel[:]
	b.size = 0
}
