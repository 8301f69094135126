package ustr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassFor(t *testing.T) {
	tests := []struct {
		size     int
		expected int
	}{
		{size: 1, expected: 0},
		{size: 32, expected: 0},
		{size: 33, expected: 1},
		{size: 64, expected: 1},
		{size: 65, expected: 2},
		{size: 1 << 16, expected: poolClasses - 1},
		{size: 1<<16 + 1, expected: -1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, classFor(tt.size), "size %d", tt.size)
	}
}

func TestHeapAllocator(t *testing.T) {
	b := HeapAllocator{}.Allocate(13)
	require.Len(t, b, 13)
	assert.Equal(t, make([]byte, 13), b)
	assert.Zero(t, uintptrOf(&b[0])%8, "allocations must be word aligned")
	assert.Nil(t, HeapAllocator{}.Allocate(0))
}

func TestPoolAllocator(t *testing.T) {
	p := NewPoolAllocator()

	b := p.Allocate(100)
	require.Len(t, b, 128, "requests round up to the class size")
	for i := range b {
		b[i] = 0xAA
	}
	p.Release(b)

	again := p.Allocate(120)
	require.Len(t, again, 128)
	assert.Equal(t, make([]byte, 128), again, "recycled buffers come back zeroed")

	huge := p.Allocate(1<<16 + 1)
	assert.Len(t, huge, 1<<16+1)
	assert.NotPanics(t, func() { p.Release(huge) })
	assert.NotPanics(t, func() { p.Release(make([]byte, 100)) })
}

func TestStringWithPoolAllocator(t *testing.T) {
	p := NewPoolAllocator()
	s := NewWithAllocator[uint16](p)

	s.Append(Lit16("a string long enough to leave the inline buffer"))
	assert.False(t, s.Inline())
	assert.Equal(t, 63, s.Capacity(), "a 128-byte class holds 63 UTF-16 units plus the sentinel")
	assert.Equal(t, "a string long enough to leave the inline buffer", s.String())

	c := s.Clone()
	s.Release()
	assert.True(t, s.Empty())
	assert.Equal(t, "a string long enough to leave the inline buffer", c.String(), "clones own their storage")
}
