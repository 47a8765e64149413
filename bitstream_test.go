package lzss

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitWriterLSBFirst(t *testing.T) {
	w := &bitWriter{dst: make([]byte, 4)}
	require.NoError(t, w.writeBits(1, 1))
	require.NoError(t, w.writeBits(0x5, 3))  // 101
	require.NoError(t, w.writeBits(0xABC, 12))
	require.NoError(t, w.flush())

	// 1 | 101<<1 | 0xABC<<4 = 0xABCB
	require.Equal(t, 2, w.pos)
	require.Equal(t, []byte{0xCB, 0xAB, 0, 0}, w.dst)
}

func TestBitWriterPadsWithZeros(t *testing.T) {
	w := &bitWriter{dst: make([]byte, 2)}
	require.NoError(t, w.writeBits(0x1FF, 9))
	require.NoError(t, w.flush())
	require.Equal(t, []byte{0xFF, 0x01}, w.dst[:w.pos])
}

func TestBitWriterCapacity(t *testing.T) {
	w := &bitWriter{dst: make([]byte, 1)}
	require.NoError(t, w.writeBits(0xFF, 8))
	require.ErrorIs(t, w.writeBits(0xFF, 8), ErrDstTooSmall)

	counting := &bitWriter{counting: true}
	require.NoError(t, counting.writeBits(0xFFFF, 16))
	require.NoError(t, counting.writeBits(1, 1))
	require.NoError(t, counting.flush())
	require.Equal(t, 3, counting.pos)
}

func TestBitReaderMirrorsWriter(t *testing.T) {
	r := &bitReader{r: &sliceByteReader{data: []byte{0xCB, 0xAB}}}

	v, err := r.readBits(1)
	require.NoError(t, err)
	require.EqualValues(t, 1, v)

	v, err = r.readBits(3)
	require.NoError(t, err)
	require.EqualValues(t, 0x5, v)

	v, err = r.readBits(12)
	require.NoError(t, err)
	require.EqualValues(t, 0xABC, v)
	require.EqualValues(t, 2, r.consumed)

	_, err = r.readBits(1)
	require.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestBitReaderPullsBytesLazily(t *testing.T) {
	src := &sliceByteReader{data: []byte{0xFF, 0xFF, 0xFF}}
	r := &bitReader{r: src}

	_, err := r.readBits(9)
	require.NoError(t, err)
	require.Equal(t, 2, src.pos)

	_, err = r.readBits(7)
	require.NoError(t, err)
	require.Equal(t, 2, src.pos)
}

func TestTokenFramingRoundTrip(t *testing.T) {
	params := &Params{EI: 5, EJ: 3, P: 3, Rless: true, Fill: DefaultFill}
	tokens := []Token{
		{Kind: Literal, Literal: 0x7F},
		{Kind: Match, Offset: 1, Length: 3},
		{Kind: Match, Offset: 32, Length: params.MaxMatch()},
		{Kind: Literal, Literal: 0x00},
	}

	w := &bitWriter{dst: make([]byte, 16)}
	for _, tok := range tokens {
		require.NoError(t, w.writeToken(tok, params))
	}
	require.NoError(t, w.flush())

	r := &bitReader{r: &sliceByteReader{data: w.dst[:w.pos]}}
	for _, want := range tokens {
		got, err := r.readToken(params)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}
