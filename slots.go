package unordered

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Pro7ech/unordered/buffer"
)

// equalSlots reports whether a and b hold the same elements with the
// same multiplicities, irrespective of position. Each element of a
// claims the leftmost unclaimed equal slot of b; a claimed slot cannot
// match twice, so duplicates are counted correctly. O(len(a)²), and
// requires no order on T.
//
// T can be one of the scalar kinds (compared with ==) or any type
// whose pointer implements Equatable.
func equalSlots[T any](a, b []T) bool {

	if len(a) != len(b) {
		return false
	}

	var t T
	var eq func(x, y *T) bool
	switch any(t).(type) {
	case uint, uint64, uint32, uint16, uint8, int, int64, int32, int16, int8, float64, float32, bool, string:
		eq = func(x, y *T) bool { return any(*x) == any(*y) }
	default:
		if _, isEquatable := any(&t).(Equatable[T]); !isEquatable {
			panic(fmt.Errorf("component of type %T does not comply to %T", t, new(Equatable[T])))
		}
		eq = func(x, y *T) bool { return any(x).(Equatable[T]).Equal(y) }
	}

	used := make([]bool, len(b))
	for i := range a {
		found := false
		for j := range b {
			if used[j] {
				continue
			}
			if eq(&a[i], &b[j]) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// cloneSlots returns a deep copy of slots.
// If T is a struct, it requires that T implements Cloner.
func cloneSlots[T any](slots []T) (c []T) {

	var t T
	switch any(t).(type) {
	case uint, uint64, uint32, uint16, uint8, int, int64, int32, int16, int8, float64, float32, bool, string:
		c = make([]T, len(slots))
		copy(c, slots)
	default:
		if _, isClonable := any(&t).(Cloner[T]); !isClonable {
			panic(fmt.Errorf("component of type %T does not comply to %T", t, new(Cloner[T])))
		}

		c = make([]T, len(slots))
		for i := range slots {
			c[i] = *any(&slots[i]).(Cloner[T]).Clone()
		}
	}

	return
}

// copySlots copies src on dst, up to the smaller of the two.
// If T is a struct, it requires that T implements Copyer.
func copySlots[T any](dst, src []T) {

	var t T
	switch any(t).(type) {
	case uint, uint64, uint32, uint16, uint8, int, int64, int32, int16, int8, float64, float32, bool, string:
		copy(dst, src)
	default:
		if _, isCopyable := any(&t).(Copyer[T]); !isCopyable {
			panic(fmt.Errorf("component of type %T does not comply to %T", t, new(Copyer[T])))
		}

		for i := 0; i < min(len(dst), len(src)); i++ {
			any(&dst[i]).(Copyer[T]).Copy(&src[i])
		}
	}
}

// binarySizeSlots returns the encoded size of slots in bytes: a uint64
// length prefix followed by the element payloads.
// If T is a struct, it requires that T implements BinarySizer.
func binarySizeSlots[T any](slots []T) (size int) {

	var t T
	switch any(t).(type) {
	case uint, uint64, int, int64, float64:
		return 8 + len(slots)*8
	case uint32, int32, float32:
		return 8 + len(slots)*4
	case uint16, int16:
		return 8 + len(slots)*2
	case uint8, int8, bool:
		return 8 + len(slots)*1
	default:
		if _, isSizable := any(&t).(BinarySizer); !isSizable {
			panic(fmt.Errorf("component of type %T does not comply to %T", t, new(BinarySizer)))
		}

		size += 8
		for i := range slots {
			size += any(&slots[i]).(BinarySizer).BinarySize()
		}
	}

	return
}

// writeSlots writes the uint64 length prefix followed by the element
// payloads in storage order.
// If T is a struct, it requires that T implements io.WriterTo.
func writeSlots[T any](w io.Writer, slots []T) (n int64, err error) {

	switch w := w.(type) {
	case buffer.Writer:

		var inc int64
		if inc, err = buffer.WriteAsUint64[int](w, len(slots)); err != nil {
			return inc, fmt.Errorf("buffer.WriteAsUint64[int]: %w", err)
		}

		n += inc

		var t T
		switch t := any(t).(type) {
		case uint, uint64, int, int64, float64:

			if inc, err = buffer.WriteAsUint64Slice[T](w, slots); err != nil {
				return n + inc, fmt.Errorf("buffer.WriteAsUint64Slice[%T]: %w", t, err)
			}

			n += inc

		case uint32, int32, float32:

			if inc, err = buffer.WriteAsUint32Slice[T](w, slots); err != nil {
				return n + inc, fmt.Errorf("buffer.WriteAsUint32Slice[%T]: %w", t, err)
			}

			n += inc

		case uint16, int16:

			if inc, err = buffer.WriteAsUint16Slice[T](w, slots); err != nil {
				return n + inc, fmt.Errorf("buffer.WriteAsUint16Slice[%T]: %w", t, err)
			}

			n += inc

		case uint8, int8, bool:

			if inc, err = buffer.WriteAsUint8Slice[T](w, slots); err != nil {
				return n + inc, fmt.Errorf("buffer.WriteAsUint8Slice[%T]: %w", t, err)
			}

			n += inc

		default:

			if _, isWritable := any(new(T)).(io.WriterTo); !isWritable {
				return 0, fmt.Errorf("component of type %T does not comply to %T", t, new(io.WriterTo))
			}

			for i := range slots {
				if inc, err = any(&slots[i]).(io.WriterTo).WriteTo(w); err != nil {
					return n + inc, err
				}
				n += inc
			}
		}

		return n, w.Flush()

	default:
		return writeSlots(bufio.NewWriter(w), slots)
	}
}

// readSlots reads the uint64 length prefix and, if it matches
// len(slots), the element payloads in storage order. A prefix that
// differs from len(slots) fails with ErrWrongElementCount before any
// element payload is consumed. Element decode errors are returned
// unchanged.
// If T is a struct, it requires that T implements io.ReaderFrom.
func readSlots[T any](r io.Reader, slots []T) (n int64, err error) {

	switch r := r.(type) {
	case buffer.Reader:

		var inc int64

		var size int
		if inc, err = buffer.ReadAsUint64[int](r, &size); err != nil {
			return inc, fmt.Errorf("buffer.ReadAsUint64[int]: %w", err)
		}

		n += inc

		if size != len(slots) {
			return n, fmt.Errorf("%w: got %d, expected %d", ErrWrongElementCount, size, len(slots))
		}

		var t T
		switch t := any(t).(type) {
		case uint, uint64, int, int64, float64:

			if inc, err = buffer.ReadAsUint64Slice[T](r, slots); err != nil {
				return n + inc, fmt.Errorf("buffer.ReadAsUint64Slice[%T]: %w", t, err)
			}

			n += inc

		case uint32, int32, float32:

			if inc, err = buffer.ReadAsUint32Slice[T](r, slots); err != nil {
				return n + inc, fmt.Errorf("buffer.ReadAsUint32Slice[%T]: %w", t, err)
			}

			n += inc

		case uint16, int16:

			if inc, err = buffer.ReadAsUint16Slice[T](r, slots); err != nil {
				return n + inc, fmt.Errorf("buffer.ReadAsUint16Slice[%T]: %w", t, err)
			}

			n += inc

		case uint8, int8:

			if inc, err = buffer.ReadAsUint8Slice[T](r, slots); err != nil {
				return n + inc, fmt.Errorf("buffer.ReadAsUint8Slice[%T]: %w", t, err)
			}

			n += inc

		case bool:

			if inc, err = buffer.ReadAsBoolSlice[T](r, slots); err != nil {
				return n + inc, fmt.Errorf("buffer.ReadAsBoolSlice[%T]: %w", t, err)
			}

			n += inc

		default:

			if _, isReadable := any(new(T)).(io.ReaderFrom); !isReadable {
				return 0, fmt.Errorf("component of type %T does not comply to %T", t, new(io.ReaderFrom))
			}

			for i := range slots {
				if inc, err = any(&slots[i]).(io.ReaderFrom).ReadFrom(r); err != nil {
					return n + inc, err
				}
				n += inc
			}
		}

		return n, nil

	default:
		return readSlots(bufio.NewReader(r), slots)
	}
}
