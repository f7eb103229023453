package unordered

import (
	"errors"
	"io"
	"math/rand"
	"testing"

	"github.com/Pro7ech/unordered/buffer"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestTuple(t *testing.T) {

	t.Run("Equality", func(t *testing.T) {

		t.Run("PermutationInvariance", func(t *testing.T) {
			require.True(t, New(0, 3, 5).Equal(New(5, 0, 3)))
			require.True(t, New(0, 3, 5).Equal(New(0, 3, 5)))
			require.True(t, New("a", "b").Equal(New("b", "a")))
		})

		t.Run("Singleton", func(t *testing.T) {
			require.True(t, New(7).Equal(New(7)))
			require.False(t, New(7).Equal(New(8)))
		})

		t.Run("Duplicates", func(t *testing.T) {
			// Multiplicities matter: {a, a} != {a, b}.
			require.False(t, New(1, 1).Equal(New(1, 2)))
			require.False(t, New(1, 2).Equal(New(1, 3)))
			require.True(t, New(1, 1, 2).Equal(New(2, 1, 1)))
			require.False(t, New(1, 1, 2).Equal(New(1, 2, 2)))
		})

		t.Run("ArityMismatch", func(t *testing.T) {
			require.False(t, New(1, 2).Equal(New(1, 2, 2)))
			require.False(t, New[int]().Equal(New(1)))
			require.True(t, New[int]().Equal(New[int]()))
		})

		t.Run("Generative", func(t *testing.T) {

			r := rand.New(rand.NewSource(0))

			sortUint64 := cmpopts.SortSlices(func(a, b uint64) bool { return a < b })

			for i := 0; i < 256; i++ {

				arity := 1 + r.Intn(8)

				// Small element domain so that duplicates and
				// cross-tuple collisions actually occur.
				a := make(Tuple[uint64], arity)
				b := make(Tuple[uint64], arity)
				for j := range a {
					a[j] = uint64(r.Int63n(4))
					b[j] = uint64(r.Int63n(4))
				}

				perm := a.Clone()
				r.Shuffle(arity, func(x, y int) {
					perm[x], perm[y] = perm[y], perm[x]
				})

				require.True(t, a.Equal(perm))
				require.True(t, perm.Equal(a))

				// Sorted-slice comparison is an independent oracle
				// for multiset equality.
				want := cmp.Equal([]uint64(a), []uint64(b), sortUint64)
				require.Equal(t, want, a.Equal(b))
				require.Equal(t, want, b.Equal(a))
			}
		})

		t.Run("StructElements", func(t *testing.T) {

			// *Pair complies to Equatable, so pairs can be tuple
			// elements; the inner comparison is itself unordered.
			a := New(NewPair[uint64](1, 2), NewPair[uint64](3, 4))
			b := New(NewPair[uint64](4, 3), NewPair[uint64](2, 1))
			c := New(NewPair[uint64](1, 2), NewPair[uint64](3, 5))

			require.True(t, a.Equal(b))
			require.False(t, a.Equal(c))
		})
	})

	t.Run("Construction", func(t *testing.T) {

		s := []uint64{1, 2, 3}
		tup := FromSlice(s)
		s[0] = 99
		require.True(t, tup.Equal(New[uint64](1, 2, 3)))

		// New wraps verbatim: a spread slice stays aliased.
		s2 := []uint64{1, 2, 3}
		tup2 := New(s2...)
		s2[0] = 99
		require.True(t, tup2.Equal(New[uint64](99, 2, 3)))

		slots := tup.Slots()
		slots[0] = 99
		require.True(t, tup.Equal(New[uint64](1, 2, 3)))
		require.Equal(t, 3, tup.Arity())
	})

	t.Run("CloneCopy", func(t *testing.T) {

		a := New[uint64](1, 2, 3)
		b := a.Clone()
		b[0] = 99
		require.False(t, a.Equal(b))

		c := make(Tuple[uint64], 3)
		c.Copy(a)
		require.True(t, a.Equal(c))
	})

	t.Run("Serialization", func(t *testing.T) {

		t.Run("RoundTrip", func(t *testing.T) {

			src := New[uint64](0, 1)
			dst := make(Tuple[uint64], 2)
			buffer.RequireSerializerCorrect(t, &src, &dst)
			require.True(t, src.Equal(dst))
			require.True(t, dst.Equal(New[uint64](1, 0)))

			srcF := New(3.5, -1.25, 0.0)
			dstF := make(Tuple[float64], 3)
			buffer.RequireSerializerCorrect(t, &srcF, &dstF)
			require.True(t, srcF.Equal(dstF))

			srcB := New[uint8](0xde, 0xad, 0xbe, 0xef)
			dstB := make(Tuple[uint8], 4)
			buffer.RequireSerializerCorrect(t, &srcB, &dstB)
			require.True(t, srcB.Equal(dstB))

			srcP := New(NewPair[uint64](1, 2), NewPair[uint64](3, 4))
			dstP := make(Tuple[Pair[uint64]], 2)
			buffer.RequireSerializerCorrect(t, &srcP, &dstP)
			require.True(t, srcP.Equal(dstP))
		})

		t.Run("WireForm", func(t *testing.T) {

			// A 2-tuple of uint64 is a uint64 length prefix followed
			// by the two elements, little endian.
			p, err := New[uint64](0, 1).MarshalBinary()
			require.NoError(t, err)
			require.Equal(t, []byte{
				2, 0, 0, 0, 0, 0, 0, 0,
				0, 0, 0, 0, 0, 0, 0, 0,
				1, 0, 0, 0, 0, 0, 0, 0,
			}, p)
		})

		t.Run("BoolNormalization", func(t *testing.T) {

			// A stream byte other than 0 or 1 still decodes to a
			// valid bool.
			p := []byte{2, 0, 0, 0, 0, 0, 0, 0, 0x02, 0x00}

			dst := make(Tuple[bool], 2)
			_, err := dst.ReadFrom(buffer.NewBuffer(p))
			require.NoError(t, err)
			require.True(t, dst.Equal(New(true, false)))

			src := New(true, false, true)
			dstB := make(Tuple[bool], 3)
			buffer.RequireSerializerCorrect(t, &src, &dstB)
			require.True(t, src.Equal(dstB))
		})

		t.Run("WrongElementCount", func(t *testing.T) {

			p, err := New[uint64](1, 2, 3).MarshalBinary()
			require.NoError(t, err)

			dst := make(Tuple[uint64], 2)
			n, err := dst.ReadFrom(buffer.NewBuffer(p))
			require.ErrorIs(t, err, ErrWrongElementCount)

			// Only the length prefix may have been consumed.
			require.Equal(t, int64(8), n)
		})

		t.Run("ElementDecodeError", func(t *testing.T) {

			p, err := New[uint64](1, 2).MarshalBinary()
			require.NoError(t, err)

			dst := make(Tuple[failingElem], 2)
			_, err = dst.ReadFrom(buffer.NewBuffer(p))
			require.Equal(t, errElemDecode, err)
		})

		t.Run("TruncatedStream", func(t *testing.T) {

			p, err := New[uint64](1, 2, 3).MarshalBinary()
			require.NoError(t, err)

			dst := make(Tuple[uint64], 3)
			_, err = dst.ReadFrom(buffer.NewBuffer(p[:20]))
			require.ErrorIs(t, err, io.ErrUnexpectedEOF)
		})
	})
}

var errElemDecode = errors.New("element decoder failure")

// failingElem is an element type whose decoder always fails, used to
// check that element decode errors surface unchanged.
type failingElem struct{}

func (failingElem) BinarySize() int                      { return 0 }
func (failingElem) WriteTo(w io.Writer) (int64, error)   { return 0, nil }
func (*failingElem) ReadFrom(r io.Reader) (int64, error) { return 0, errElemDecode }
func (*failingElem) Equal(other *failingElem) bool       { return true }
