package ustr

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoadEveryMark(t *testing.T) {
	const content = "first line\nsecond ☆ line\n😀"

	tests := []struct {
		name     string
		encoder  encoding.Encoding
		mark     Mark
		encoding Encoding
		size     int
	}{
		{name: "utf-8 with mark", encoder: unicode.UTF8BOM, mark: MarkUTF8, encoding: EncodingUTF8, size: len(content)},
		{name: "utf-16 be", encoder: unicode.UTF16(unicode.BigEndian, unicode.UseBOM), mark: MarkUTF16BE, encoding: EncodingUTF16, size: 27},
		{name: "utf-16 le", encoder: unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), mark: MarkUTF16LE, encoding: EncodingUTF16, size: 27},
		{name: "utf-32 be", encoder: utf32.UTF32(utf32.BigEndian, utf32.UseBOM), mark: MarkUTF32BE, encoding: EncodingUTF32, size: 26},
		{name: "utf-32 le", encoder: utf32.UTF32(utf32.LittleEndian, utf32.UseBOM), mark: MarkUTF32LE, encoding: EncodingUTF32, size: 26},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := tt.encoder.NewEncoder().Bytes([]byte(content))
			require.NoError(t, err)

			doc, err := Load(writeFile(t, "doc.txt", data))
			require.NoError(t, err)

			assert.Equal(t, tt.mark, doc.Mark)
			assert.Equal(t, tt.encoding, doc.Encoding())
			assert.Equal(t, content, doc.String())
			assert.Equal(t, 26, doc.Length())

			switch tt.encoding {
			case EncodingUTF8:
				require.NotNil(t, doc.UTF8)
				assert.Equal(t, tt.size, doc.UTF8.Size())
				assert.Nil(t, doc.UTF16)
			case EncodingUTF16:
				require.NotNil(t, doc.UTF16)
				assert.Equal(t, tt.size, doc.UTF16.Size())
				assert.Nil(t, doc.UTF32)
			case EncodingUTF32:
				require.NotNil(t, doc.UTF32)
				assert.Equal(t, tt.size, doc.UTF32.Size())
				assert.Nil(t, doc.UTF8)
			}
		})
	}
}

func TestLoadWithoutMark(t *testing.T) {
	doc, err := Load(writeFile(t, "plain.txt", []byte("no mark here")))
	require.NoError(t, err)

	assert.Equal(t, MarkNone, doc.Mark)
	require.NotNil(t, doc.UTF8)
	assert.Equal(t, "no mark here", doc.UTF8.String())
}

func TestLoadEmptyFile(t *testing.T) {
	doc, err := Load(writeFile(t, "empty.txt", nil))
	require.NoError(t, err)

	assert.Equal(t, MarkNone, doc.Mark)
	require.NotNil(t, doc.UTF8)
	assert.True(t, doc.UTF8.Empty())
}

func TestLoadMissingFile(t *testing.T) {
	doc, err := Load(filepath.Join(t.TempDir(), "missing.txt"))

	assert.Nil(t, doc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOpen))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLineEndings(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "crlf", input: "a\r\nb\r\n", expected: "a\nb\n"},
		{name: "lone cr", input: "a\rb", expected: "a\nb"},
		{name: "trailing cr", input: "ab\r", expected: "ab\n"},
		{name: "cr before crlf", input: "\r\r\n", expected: "\n\n"},
		{name: "lf untouched", input: "a\n\nb", expected: "a\n\nb"},
		{name: "mixed", input: "1\r2\r\n3\n4", expected: "1\n2\n3\n4"},
	}

	enc16 := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Decode(bytes.NewReader([]byte(tt.input)))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, doc.String())

			data, err := enc16.Bytes([]byte(tt.input))
			require.NoError(t, err)
			doc, err = Decode(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, doc.UTF16.String())
		})
	}
}

func TestSniff(t *testing.T) {
	tests := []struct {
		head     []byte
		expected Mark
	}{
		{head: []byte{0xFF, 0xFE, 0x00, 0x00}, expected: MarkUTF32LE},
		{head: []byte{0xFF, 0xFE, 0x41, 0x00}, expected: MarkUTF16LE},
		{head: []byte{0x00, 0x00, 0xFE, 0xFF}, expected: MarkUTF32BE},
		{head: []byte{0xFE, 0xFF, 0x00, 0x41}, expected: MarkUTF16BE},
		{head: []byte{0xEF, 0xBB, 0xBF, 0x41}, expected: MarkUTF8},
		{head: []byte{0xEF, 0xBB}, expected: MarkNone},
		{head: []byte("text"), expected: MarkNone},
		{head: nil, expected: MarkNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Sniff(tt.head), "% x", tt.head)
	}
}

func TestMarkProperties(t *testing.T) {
	assert.Equal(t, 4, MarkUTF32LE.Len())
	assert.Equal(t, 2, MarkUTF16BE.Len())
	assert.Equal(t, 3, MarkUTF8.Len())
	assert.Zero(t, MarkNone.Len())
	assert.Equal(t, BigEndian, MarkUTF32BE.Order())
	assert.Equal(t, LittleEndian, MarkUTF16LE.Order())
	assert.Equal(t, "utf-16le", MarkUTF16LE.String())
	assert.Equal(t, MarkUTF32BE, MarkFor[uint32](BigEndian))
	assert.Equal(t, MarkUTF8, MarkFor[uint8](LittleEndian))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	const content = "round ☆ trip 😀"
	dir := t.TempDir()

	for _, order := range []ByteOrder{LittleEndian, BigEndian} {
		path := filepath.Join(dir, "u16-"+order.String())
		require.NoError(t, Save(path, Lit16(content), order, true))
		doc, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, MarkFor[uint16](order), doc.Mark)
		assert.Equal(t, content, doc.String())

		path = filepath.Join(dir, "u32-"+order.String())
		require.NoError(t, Save(path, FromString[uint32](content), order, true))
		doc, err = Load(path)
		require.NoError(t, err)
		assert.Equal(t, MarkFor[uint32](order), doc.Mark)
		assert.True(t, Equal(doc.UTF32, Lit8(content)))
	}
}

func TestWriteOracle(t *testing.T) {
	const content = "oracle ☆ 😀"
	want, err := utf32.UTF32(utf32.BigEndian, utf32.UseBOM).NewEncoder().Bytes([]byte(content))
	require.NoError(t, err)

	var got bytes.Buffer
	n, err := Write(&got, Lit32(content), BigEndian, true)
	require.NoError(t, err)
	assert.Equal(t, int64(len(want)), n)
	assert.Equal(t, want, got.Bytes())
}

func TestTrailingPartialUnitDropped(t *testing.T) {
	doc, err := Decode(bytes.NewReader([]byte{0xFF, 0xFE, 'a', 0x00, 'b'}))
	require.NoError(t, err)
	assert.Equal(t, "a", doc.String())
}
