package buffer

import (
	"encoding"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

// BinarySerializer is a testing interface for byte encoding and decoding.
type BinarySerializer interface {
	io.WriterTo
	io.ReaderFrom
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
	BinarySize() int
}

// RequireSerializerCorrect checks that the encoding of src is correct and
// self-consistent: WriteTo must produce exactly src.BinarySize() bytes,
// ReadFrom on dst must consume them all, re-encoding dst must reproduce
// the same bytes, and the MarshalBinary/UnmarshalBinary pair must agree
// with the WriteTo/ReadFrom pair.
//
// dst must be a freshly allocated receiver compatible with src (for
// fixed-arity objects, allocated with the expected arity).
func RequireSerializerCorrect(t *testing.T, src, dst BinarySerializer) {
	t.Helper()

	size := src.BinarySize()

	buf := NewBufferSize(size)

	n, err := src.WriteTo(buf)
	require.NoError(t, err)
	require.Equal(t, int64(size), n)
	require.Equal(t, size, buf.Size())

	n, err = dst.ReadFrom(NewBuffer(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, int64(size), n)

	data, err := dst.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, buf.Bytes(), data)

	require.NoError(t, dst.UnmarshalBinary(data))
}
