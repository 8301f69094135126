package ustr

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

var samples = []string{
	"",
	"plain ascii",
	"Grüße, Jürgen",
	"石田花子 李测试",
	"emoji 😀 and 🇫🇷 flags",
	"\u0000 nul and \U0010FFFF max",
	"�퟿",
}

func TestTranscodeMatchesOracle(t *testing.T) {
	enc16 := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	enc32 := utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM).NewEncoder()

	for _, sample := range samples {
		t.Run(sample, func(t *testing.T) {
			want16, err := enc16.Bytes([]byte(sample))
			require.NoError(t, err)
			want32, err := enc32.Bytes([]byte(sample))
			require.NoError(t, err)

			var got bytes.Buffer
			_, err = Write(&got, Transcode[uint16, uint8](Lit8(sample)), LittleEndian, false)
			require.NoError(t, err)
			assert.Equal(t, want16, got.Bytes())

			got.Reset()
			_, err = Write(&got, Transcode[uint32, uint16](Lit16(sample)), LittleEndian, false)
			require.NoError(t, err)
			assert.Equal(t, want32, got.Bytes())

			assert.Equal(t, sample, Transcode[uint8, uint32](Lit32(sample)).String())
		})
	}
}

func TestTranscodeRoundTrip(t *testing.T) {
	for _, sample := range samples {
		s8 := FromString[uint8](sample)
		s16 := s8.UTF16()
		s32 := s16.UTF32()
		back := s32.UTF8()

		assert.True(t, back.Equal(s8), "%q", sample)
		assert.Equal(t, s8.Length(), s32.Size())
		assert.Equal(t, EncodedLen[uint16, uint8](s8.Raw()), s16.Size())
	}
}

func TestTranscodeSameWidthCopies(t *testing.T) {
	src := FromString[uint16]("copy me")
	dst := Transcode[uint16, uint16](src)
	dst.Set(0, 'C')

	assert.Equal(t, "copy me", src.String())
	assert.Equal(t, "Copy me", dst.String())
}

func TestEqualAcrossEncodings(t *testing.T) {
	for _, sample := range samples {
		a, b, c := FromString[uint8](sample), FromString[uint16](sample), FromString[uint32](sample)

		assert.True(t, Equal(a, b))
		assert.True(t, Equal(b, c))
		assert.True(t, Equal(c, a))
		assert.True(t, Equal(a, Lit32(sample)), "literal comparison")
	}

	assert.False(t, Equal(Lit8("abc"), Lit16("abd")))
	assert.False(t, Equal(Lit8("abc"), Lit32("ab")))
	assert.False(t, Equal(Lit16("ab"), Lit32("abc")))
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{a: "", b: "", expected: 0},
		{a: "a", b: "", expected: 1},
		{a: "", b: "a", expected: -1},
		{a: "abc", b: "abd", expected: -1},
		{a: "abd", b: "abc", expected: 1},
		{a: "\uFFFF", b: "😀", expected: -1},
		{a: "😀", b: "", expected: 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Compare(Lit8(tt.a), Lit16(tt.b)), "%q vs %q", tt.a, tt.b)
		assert.Equal(t, tt.expected, Compare(Lit16(tt.a), Lit32(tt.b)), "%q vs %q", tt.a, tt.b)
	}
}

func TestConcatAssociative(t *testing.T) {
	a := FromString[uint8]("αβ")
	b := FromString[uint16]("😀")
	c := FromString[uint32]("γ!")

	left := Concat(Concat(a, b), c)
	right := Concat(a, Concat(b, c))

	assert.True(t, left.Equal(right))
	assert.Equal(t, "αβ😀γ!", left.String())
	assert.Equal(t, EncodingUTF8, left.Encoding())
}

func TestConcatWithLiteral(t *testing.T) {
	s := FromString[uint16]("hello")
	joined := Concat(s, Lit8(", world"))

	assert.True(t, Equal(joined, Lit32("hello, world")))
	assert.Equal(t, 12, joined.Size())
	assert.Equal(t, "hello", s.String(), "operands are untouched")

	empty := Concat(New[uint32](), Lit16(""))
	assert.True(t, empty.Empty())
}

func TestNarrow(t *testing.T) {
	assert.Equal(t, []byte("plain"), Narrow(Lit32("plain")))
	assert.Equal(t, []byte{'G', 'r', 0xFC, 0xDF, 'e'}, FromString[uint16]("Grüße").Narrow())
	assert.Equal(t, []byte{'a', 0x1A, 'b'}, Narrow(Lit8("a😀b")))
	assert.Equal(t, []byte{}, Narrow(Lit16("")))

	back := FromNarrow[uint16]([]byte{'G', 'r', 0xFC, 0xDF, 'e'})
	assert.Equal(t, "Grüße", back.String())
	assert.Equal(t, 5, back.Size())
}
