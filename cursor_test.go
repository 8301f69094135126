package ustr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorWalk(t *testing.T) {
	expected := []rune{'a', 'ß', '€', '😀'}

	t.Run("utf-8", func(t *testing.T) { walkCursor(t, FromString[uint8]("aß€😀"), expected) })
	t.Run("utf-16", func(t *testing.T) { walkCursor(t, FromString[uint16]("aß€😀"), expected) })
	t.Run("utf-32", func(t *testing.T) { walkCursor(t, FromString[uint32]("aß€😀"), expected) })
}

func walkCursor[U Unit](t *testing.T, s *String[U], expected []rune) {
	c := s.Begin()
	var forward []rune
	for !c.Done() {
		forward = append(forward, c.Value())
		require.True(t, c.Next())
	}
	assert.Equal(t, expected, forward)
	assert.True(t, c.Equal(s.End()))
	assert.False(t, c.Next(), "Next stops at the end")
	assert.Equal(t, RuneError, c.Value())

	var backward []rune
	for c.Prev() {
		backward = append(backward, c.Value())
	}
	assert.Equal(t, []rune{'😀', '€', 'ß', 'a'}, backward)
	assert.True(t, c.Equal(s.Begin()))
	assert.Zero(t, c.Offset())
}

func TestRunesIterator(t *testing.T) {
	s := FromString[uint16]("x😀y")

	var idx []int
	var got []rune
	for i, r := range s.Runes() {
		idx = append(idx, i)
		got = append(got, r)
	}
	assert.Equal(t, []int{0, 1, 2}, idx)
	assert.Equal(t, []rune{'x', '😀', 'y'}, got)

	got = got[:0]
	for _, r := range s.Backward() {
		got = append(got, r)
	}
	assert.Equal(t, []rune{'y', '😀', 'x'}, got)
}

func TestRunesIteratorStopsEarly(t *testing.T) {
	s := FromString[uint8]("abcdef")
	n := 0
	for range s.Runes() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestAppendRunes(t *testing.T) {
	assert.Equal(t, []rune("a😀"), AppendRunes(nil, Lit16("a😀")))
}
