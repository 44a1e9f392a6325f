package atn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeUTF8_ASCII(t *testing.T) {
	s, errs := DecodeUTF8([]byte("abc"), DecodePolicyReplace)
	require.Empty(t, errs)
	assert.Equal(t, 3, s.Size())
	assert.Equal(t, int('a'), s.LA(1))
}

func TestDecodeUTF8_MalformedReportsAndReplaces(t *testing.T) {
	data := []byte{'a', 0xff, 'b'}
	s, errs := DecodeUTF8(data, DecodePolicyReport)
	require.Len(t, errs, 1)
	assert.Equal(t, 1, errs[0].Offset)
	assert.Equal(t, 3, s.Size())
	assert.Equal(t, replacementChar, s.LA(2))
}

func TestDecodeUTF16_SurrogatePairIsOneCodePoint(t *testing.T) {
	// U+1F600 GRINNING FACE -> surrogate pair D83D DE00, little endian bytes.
	data := []byte{0x3d, 0xd8, 0x00, 0xde}
	s, errs := DecodeUTF16(data, false, DecodePolicyReport)
	require.Empty(t, errs)
	require.Equal(t, 1, s.Size(), "a surrogate pair must decode to exactly one code point")
	assert.Equal(t, 0x1F600, s.LA(1))
}

func TestDecodeUTF16_UnpairedSurrogateReportsAndReplaces(t *testing.T) {
	data := []byte{0x3d, 0xd8} // lone high surrogate, little endian
	s, errs := DecodeUTF16(data, false, DecodePolicyReport)
	require.Len(t, errs, 1)
	assert.Equal(t, 1, s.Size())
	assert.Equal(t, int(replacementChar), s.LA(1))
}

func TestCharStream_LAandConsume(t *testing.T) {
	s := NewCharStream([]rune("hi"))
	assert.Equal(t, int('h'), s.LA(1))
	assert.Equal(t, int('i'), s.LA(2))
	s.Consume()
	assert.Equal(t, int('i'), s.LA(1))
	s.Consume()
	assert.Equal(t, EOF, s.LA(1))
}

func TestCharStream_MarkRelease(t *testing.T) {
	s := NewCharStream([]rune("abcd"))
	s.Consume()
	start := s.Index()
	m := s.Mark()
	s.Consume()
	s.Consume()
	s.Seek(start)
	assert.Equal(t, int('b'), s.LA(1))
	s.Release(m)
}

func TestCharStream_GetText(t *testing.T) {
	s := NewCharStream([]rune("hello"))
	assert.Equal(t, "ell", s.GetText(1, 3))
}
