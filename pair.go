package unordered

import (
	"io"

	"github.com/Pro7ech/unordered/buffer"
)

// Pair is an unordered 2-tuple of elements of type T, provided as a
// named specialization of [Tuple] with compile-time arity and plain
// two-value conversions. Its semantics are exactly those of a
// 2-element Tuple:
//
//	unordered.NewPair("a", "b").Equal(&unordered.Pair[string]{"b", "a"}) // true
//
// A *Pair complies to the Equatable, Cloner, Copyer and BinarySizer
// capability interfaces as well as io.WriterTo and io.ReaderFrom, so
// pairs can themselves be the element type of a Tuple or of another
// Pair.
type Pair[T any] [2]T

// NewPair returns the unordered pair holding a and b.
func NewPair[T any](a, b T) Pair[T] {
	return Pair[T]{a, b}
}

// Split returns the two elements in current storage order. That order
// is not guaranteed to match the construction order: a pair built
// from (a, b) may split as (b, a). Callers needing the original order
// must track it separately.
func (p Pair[T]) Split() (T, T) {
	return p[0], p[1]
}

// Tuple returns the pair viewed as a general 2-arity [Tuple] over a
// copy of the elements.
func (p Pair[T]) Tuple() Tuple[T] {
	return Tuple[T]{p[0], p[1]}
}

// Equal reports whether the receiver and other hold the same two
// elements, irrespective of position.
// If T is a struct, this method requires that T implements Equatable.
func (p *Pair[T]) Equal(other *Pair[T]) bool {
	return equalSlots(p[:], other[:])
}

// Clone returns a deep copy of the receiver.
// If T is a struct, this method requires that T implements Cloner.
func (p *Pair[T]) Clone() *Pair[T] {
	c := cloneSlots(p[:])
	return &Pair[T]{c[0], c[1]}
}

// Copy copies the elements of other on the receiver.
// If T is a struct, this method requires that T implements Copyer.
func (p *Pair[T]) Copy(other *Pair[T]) {
	copySlots(p[:], other[:])
}

// String formats the receiver as {a, b} in current storage order.
func (p Pair[T]) String() string {
	return p.Tuple().String()
}

// BinarySize returns the serialized size of the object in bytes.
// If T is a struct, this method requires that T implements BinarySizer.
func (p Pair[T]) BinarySize() int {
	return binarySizeSlots(p[:])
}

// WriteTo writes the object on an io.Writer as a uint64 length prefix
// (always 2) followed by the two element payloads in current storage
// order. It implements the io.WriterTo interface, and will write
// exactly object.BinarySize() bytes on w. See [Tuple.WriteTo] for the
// buffer.Writer guidance.
//
// If T is a struct, this method requires that T implements io.WriterTo.
func (p Pair[T]) WriteTo(w io.Writer) (n int64, err error) {
	return writeSlots(w, p[:])
}

// ReadFrom reads on the object from an io.Reader. It implements the
// io.ReaderFrom interface. A sequence declaring a length other than 2
// fails with ErrWrongElementCount before any element payload is
// consumed; element decode errors are returned unchanged. See
// [Tuple.ReadFrom] for the buffer.Reader guidance.
//
// If T is a struct, this method requires that T implements io.ReaderFrom.
func (p *Pair[T]) ReadFrom(r io.Reader) (n int64, err error) {
	return readSlots(r, p[:])
}

// MarshalBinary encodes the object into a binary form on a newly
// allocated slice of bytes.
// If T is a struct, this method requires that T implements io.WriterTo.
func (p Pair[T]) MarshalBinary() (b []byte, err error) {
	buf := buffer.NewBufferSize(p.BinarySize())
	_, err = p.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by MarshalBinary
// or WriteTo on the object.
// If T is a struct, this method requires that T implements io.ReaderFrom.
func (p *Pair[T]) UnmarshalBinary(b []byte) (err error) {
	_, err = p.ReadFrom(buffer.NewBuffer(b))
	return
}
