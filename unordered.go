// Package unordered implements fixed-arity tuples of homogeneous
// elements whose equality, hashing and serialization treat any two
// permutations of the same elements as the same value.
//
// The package provides [Tuple], a general n-tuple whose arity is fixed
// at construction, and [Pair], a named 2-tuple with plain two-value
// conversions. Both are multisets of fixed known size: duplicates are
// preserved and counted, and the order in which the elements happen to
// be stored carries no meaning.
//
// Element types are opaque. Scalar element types (the fixed-size
// integers, floats, bool and, for equality only, string) are supported
// directly; struct element types declare their capabilities through
// the interfaces below, following the convention that a capability is
// asserted on *T.
package unordered

import (
	"errors"
)

// ErrWrongElementCount is returned when decoding a sequence whose
// declared length differs from the arity of the receiver.
var ErrWrongElementCount = errors.New("wrong number of elements")

type Equatable[T any] interface {
	Equal(*T) bool
}

type Cloner[V any] interface {
	Clone() *V
}

type Copyer[V any] interface {
	Copy(*V)
}

type BinarySizer interface {
	BinarySize() int
}
