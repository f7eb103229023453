package buffer

import (
	"encoding/binary"
	"io"
	"unsafe"
)

// Writer is the interface a writer must comply to in order to be
// used efficiently by the encoding helpers of this package.
// It is notably implemented by *bufio.Writer and *[Buffer].
type Writer interface {
	io.Writer
	Flush() (err error)
}

// Write writes a slice of bytes on w.
func Write(w Writer, c []byte) (n int64, err error) {
	nint, err := w.Write(c)
	return int64(nint), err
}

// WriteUint8 writes a single byte on w.
func WriteUint8(w Writer, c uint8) (n int64, err error) {
	nint, err := w.Write([]byte{c})
	return int64(nint), err
}

// WriteUint16 writes a uint16 on w.
func WriteUint16(w Writer, c uint16) (n int64, err error) {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], c)
	nint, err := w.Write(buf[:])
	return int64(nint), err
}

// WriteUint32 writes a uint32 on w.
func WriteUint32(w Writer, c uint32) (n int64, err error) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], c)
	nint, err := w.Write(buf[:])
	return int64(nint), err
}

// WriteUint64 writes a uint64 on w.
func WriteUint64(w Writer, c uint64) (n int64, err error) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], c)
	nint, err := w.Write(buf[:])
	return int64(nint), err
}

// WriteUint8Slice writes a slice of uint8 on w.
func WriteUint8Slice(w Writer, c []uint8) (n int64, err error) {
	return Write(w, c)
}

// WriteUint16Slice writes a slice of uint16 on w.
func WriteUint16Slice(w Writer, c []uint16) (n int64, err error) {
	var inc int64
	for i := range c {
		if inc, err = WriteUint16(w, c[i]); err != nil {
			return n + inc, err
		}
		n += inc
	}
	return
}

// WriteUint32Slice writes a slice of uint32 on w.
func WriteUint32Slice(w Writer, c []uint32) (n int64, err error) {
	var inc int64
	for i := range c {
		if inc, err = WriteUint32(w, c[i]); err != nil {
			return n + inc, err
		}
		n += inc
	}
	return
}

// WriteUint64Slice writes a slice of uint64 on w.
func WriteUint64Slice(w Writer, c []uint64) (n int64, err error) {
	var inc int64
	for i := range c {
		if inc, err = WriteUint64(w, c[i]); err != nil {
			return n + inc, err
		}
		n += inc
	}
	return
}

// WriteAsUint8 writes any 1-byte value (e.g. int8, bool) on w as a uint8.
func WriteAsUint8[T any](w Writer, c T) (n int64, err error) {
	/* #nosec G103 -- callers only instantiate T with 1-byte types */
	return WriteUint8(w, *(*uint8)(unsafe.Pointer(&c)))
}

// WriteAsUint16 writes any 2-byte value on w as a uint16.
func WriteAsUint16[T any](w Writer, c T) (n int64, err error) {
	/* #nosec G103 -- callers only instantiate T with 2-byte types */
	return WriteUint16(w, *(*uint16)(unsafe.Pointer(&c)))
}

// WriteAsUint32 writes any 4-byte value (e.g. int32, float32) on w as a uint32.
func WriteAsUint32[T any](w Writer, c T) (n int64, err error) {
	/* #nosec G103 -- callers only instantiate T with 4-byte types */
	return WriteUint32(w, *(*uint32)(unsafe.Pointer(&c)))
}

// WriteAsUint64 writes any 8-byte value (e.g. int, int64, float64) on w as a uint64.
func WriteAsUint64[T any](w Writer, c T) (n int64, err error) {
	/* #nosec G103 -- callers only instantiate T with 8-byte types */
	return WriteUint64(w, *(*uint64)(unsafe.Pointer(&c)))
}

// WriteAsUint8Slice writes a slice of any 1-byte value on w as a slice of uint8.
func WriteAsUint8Slice[T any](w Writer, c []T) (n int64, err error) {
	if len(c) == 0 {
		return
	}
	/* #nosec G103 -- callers only instantiate T with 1-byte types */
	return WriteUint8Slice(w, unsafe.Slice((*uint8)(unsafe.Pointer(&c[0])), len(c)))
}

// WriteAsUint16Slice writes a slice of any 2-byte value on w as a slice of uint16.
func WriteAsUint16Slice[T any](w Writer, c []T) (n int64, err error) {
	if len(c) == 0 {
		return
	}
	/* #nosec G103 -- callers only instantiate T with 2-byte types */
	return WriteUint16Slice(w, unsafe.Slice((*uint16)(unsafe.Pointer(&c[0])), len(c)))
}

// WriteAsUint32Slice writes a slice of any 4-byte value on w as a slice of uint32.
func WriteAsUint32Slice[T any](w Writer, c []T) (n int64, err error) {
	if len(c) == 0 {
		return
	}
	/* #nosec G103 -- callers only instantiate T with 4-byte types */
	return WriteUint32Slice(w, unsafe.Slice((*uint32)(unsafe.Pointer(&c[0])), len(c)))
}

// WriteAsUint64Slice writes a slice of any 8-byte value on w as a slice of uint64.
func WriteAsUint64Slice[T any](w Writer, c []T) (n int64, err error) {
	if len(c) == 0 {
		return
	}
	/* #nosec G103 -- callers only instantiate T with 8-byte types */
	return WriteUint64Slice(w, unsafe.Slice((*uint64)(unsafe.Pointer(&c[0])), len(c)))
}
