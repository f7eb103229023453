package unordered

import (
	"fmt"
	"io"
	"strings"

	"github.com/Pro7ech/unordered/buffer"
)

// Tuple is an unordered fixed-arity tuple of elements of type T, i.e.
// a multiset of known size: two tuples are equal when their elements
// match up one-to-one in any order.
//
//	unordered.New(0, 3, 5).Equal(unordered.New(5, 0, 3)) // true
//
// The arity is fixed at construction and every operation treats it as
// an invariant; no operation resizes a Tuple. The positional layout of
// the elements is an implementation detail: no operation may be relied
// upon to preserve or expose a meaningful order.
//
// T can be:
//   - uint, uint64, uint32, uint16, uint8/byte, int, int64, int32,
//     int16, int8, float64, float32, bool or, for everything but
//     serialization, string.
//   - Or any object that implements Equatable, Cloner, Copyer,
//     BinarySizer, io.WriterTo or io.ReaderFrom depending on the
//     method called.
type Tuple[T any] []T

// New returns the unordered tuple holding the given elements, with an
// arity of len(slots). The variadic slice is wrapped verbatim: when
// expanding an existing slice with New(s...), s is aliased. Use
// FromSlice to copy.
func New[T any](slots ...T) Tuple[T] {
	return Tuple[T](slots)
}

// FromSlice returns the unordered tuple holding the elements of slots,
// with an arity of len(slots). The slice is copied, not aliased.
func FromSlice[T any](slots []T) Tuple[T] {
	t := make(Tuple[T], len(slots))
	copy(t, slots)
	return t
}

// Arity returns the number of elements the receiver holds.
func (t Tuple[T]) Arity() int {
	return len(t)
}

// Slots returns a copy of the elements in current storage order.
// That order is not meaningful and is in particular not guaranteed to
// match the construction order.
func (t Tuple[T]) Slots() []T {
	s := make([]T, len(t))
	copy(s, t)
	return s
}

// Equal reports whether the receiver and other hold the same elements
// with the same multiplicities, irrespective of position. Tuples of
// different arity are never equal.
//
// Equality needs no order on T: matching is greedy over the unclaimed
// slots of other, which is O(arity²) but counts duplicates correctly.
// If T is a struct, this method requires that T implements Equatable.
func (t Tuple[T]) Equal(other Tuple[T]) bool {
	return equalSlots(t, other)
}

// Clone returns a deep copy of the receiver.
// If T is a struct, this method requires that T implements Cloner.
func (t Tuple[T]) Clone() Tuple[T] {
	return Tuple[T](cloneSlots(t))
}

// Copy copies the elements of other on the receiver, up to the
// smaller of the two arities.
// If T is a struct, this method requires that T implements Copyer.
func (t Tuple[T]) Copy(other Tuple[T]) {
	copySlots(t, other)
}

// String formats the receiver as {e0, e1, ...} in current storage
// order.
func (t Tuple[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i := range t {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", t[i])
	}
	sb.WriteByte('}')
	return sb.String()
}

// BinarySize returns the serialized size of the object in bytes.
// If T is a struct, this method requires that T implements BinarySizer.
func (t Tuple[T]) BinarySize() int {
	return binarySizeSlots(t)
}

// WriteTo writes the object on an io.Writer as a uint64 length prefix
// followed by the element payloads in current storage order. It
// implements the io.WriterTo interface, and will write exactly
// object.BinarySize() bytes on w.
//
// If T is a struct, this method requires that T implements io.WriterTo.
//
// Unless w implements the buffer.Writer interface (see buffer/writer.go),
// it will be wrapped into a bufio.Writer. Since this requires allocations,
// it is preferable to pass a buffer.Writer directly:
//
//   - When writing multiple times to a io.Writer, it is preferable to
//     first wrap the io.Writer in a pre-allocated bufio.Writer.
//   - When writing to a pre-allocated var b []byte, it is preferable to
//     pass buffer.NewBuffer(b) as w (see buffer/buffer.go).
func (t Tuple[T]) WriteTo(w io.Writer) (n int64, err error) {
	return writeSlots(w, t)
}

// ReadFrom reads on the object from an io.Reader. It implements the
// io.ReaderFrom interface.
//
// The arity of the receiver fixes the expected element count:
// allocate the receiver with New or make before decoding. A sequence
// declaring any other count fails with ErrWrongElementCount before
// any element payload is consumed. Element decode errors are those of
// T's own decoder, returned unchanged.
//
// If T is a struct, this method requires that T implements io.ReaderFrom.
//
// Unless r implements the buffer.Reader interface (see buffer/reader.go),
// it will be wrapped into a bufio.Reader. Since this requires allocation,
// it is preferable to pass a buffer.Reader directly:
//
//   - When reading multiple values from a io.Reader, it is preferable to
//     first wrap the io.Reader in a pre-allocated bufio.Reader.
//   - When reading from a var b []byte, it is preferable to pass
//     buffer.NewBuffer(b) as r (see buffer/buffer.go).
func (t *Tuple[T]) ReadFrom(r io.Reader) (n int64, err error) {
	return readSlots(r, *t)
}

// MarshalBinary encodes the object into a binary form on a newly
// allocated slice of bytes.
// If T is a struct, this method requires that T implements io.WriterTo.
func (t Tuple[T]) MarshalBinary() (p []byte, err error) {
	buf := buffer.NewBufferSize(t.BinarySize())
	_, err = t.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by MarshalBinary
// or WriteTo on the object. The receiver must already have the
// expected arity, see ReadFrom.
// If T is a struct, this method requires that T implements io.ReaderFrom.
func (t *Tuple[T]) UnmarshalBinary(p []byte) (err error) {
	_, err = t.ReadFrom(buffer.NewBuffer(p))
	return
}
