package unordered

import (
	"encoding/binary"
	"fmt"
	"hash"
	"hash/fnv"
	"math"
	"slices"

	"golang.org/x/exp/constraints"
)

// Hash returns a 64-bit FNV-1a digest of t such that tuples equal
// under multiset equality hash identically: the elements are copied,
// sorted ascending to canonicalize the storage order, and combined as
// a length-prefixed sequence. Unequal tuples are not guaranteed to
// hash differently.
//
// Hashing demands strictly more of the element type than equality
// does: T must carry a total order, here constraints.Ordered. For
// element types outside constraints.Ordered see [HashFunc].
func Hash[T constraints.Ordered](t Tuple[T]) uint64 {

	sorted := make([]T, len(t))
	copy(sorted, t)
	slices.Sort(sorted)

	h := fnv.New64a()
	hashLen(h, len(sorted))
	for i := range sorted {
		hashOrdered(h, sorted[i])
	}
	return h.Sum64()
}

// PairHash returns [Hash] of p viewed as a 2-tuple.
func PairHash[T constraints.Ordered](p Pair[T]) uint64 {
	return Hash(Tuple[T](p[:]))
}

// HashFunc is the [Hash] analogue for element types outside
// constraints.Ordered. cmp must be a total order over T consistent
// with the element equality used by Equal, and enc must return a byte
// image on which equal elements agree. The elements are cloned before
// sorting, so T must implement Cloner if it is a struct.
func HashFunc[T any](t Tuple[T], cmp func(a, b T) int, enc func(c *T) []byte) uint64 {

	sorted := cloneSlots(t)
	slices.SortFunc(sorted, cmp)

	h := fnv.New64a()
	hashLen(h, len(sorted))
	for i := range sorted {
		img := enc(&sorted[i])
		hashLen(h, len(img))
		h.Write(img)
	}
	return h.Sum64()
}

func hashLen(h hash.Hash64, n int) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(n))
	h.Write(buf[:])
}

// hashOrdered feeds the fixed binary image of a single element into h.
// The image is width-extended to 8 bytes for the integer kinds, the
// IEEE-754 bit pattern for the float kinds and a length-prefixed byte
// string for string.
func hashOrdered[T constraints.Ordered](h hash.Hash64, c T) {

	var buf [8]byte
	switch c := any(c).(type) {
	case uint:
		binary.LittleEndian.PutUint64(buf[:], uint64(c))
	case uint8:
		binary.LittleEndian.PutUint64(buf[:], uint64(c))
	case uint16:
		binary.LittleEndian.PutUint64(buf[:], uint64(c))
	case uint32:
		binary.LittleEndian.PutUint64(buf[:], uint64(c))
	case uint64:
		binary.LittleEndian.PutUint64(buf[:], c)
	case uintptr:
		binary.LittleEndian.PutUint64(buf[:], uint64(c))
	case int:
		binary.LittleEndian.PutUint64(buf[:], uint64(c))
	case int8:
		binary.LittleEndian.PutUint64(buf[:], uint64(c))
	case int16:
		binary.LittleEndian.PutUint64(buf[:], uint64(c))
	case int32:
		binary.LittleEndian.PutUint64(buf[:], uint64(c))
	case int64:
		binary.LittleEndian.PutUint64(buf[:], uint64(c))
	case float32:
		// -0 compares equal to +0 and must share its bit image.
		if c == 0 {
			c = 0
		}
		binary.LittleEndian.PutUint64(buf[:], uint64(math.Float32bits(c)))
	case float64:
		if c == 0 {
			c = 0
		}
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(c))
	case string:
		hashLen(h, len(c))
		h.Write([]byte(c))
		return
	default:
		panic(fmt.Errorf("component of type %T is not a base ordered kind, use HashFunc", c))
	}
	h.Write(buf[:])
}
