package buffer

import (
	"encoding/binary"
	"io"
	"unsafe"
)

// Reader is the interface a reader must comply to in order to be
// used efficiently by the decoding helpers of this package.
// It is notably implemented by *bufio.Reader and *[Buffer].
type Reader interface {
	io.Reader
	io.ByteReader
}

// Read reads a slice of bytes from r.
func Read(r Reader, c []byte) (n int64, err error) {
	nint, err := io.ReadFull(r, c)
	return int64(nint), err
}

// ReadUint8 reads a single byte from r.
func ReadUint8(r Reader, c *uint8) (n int64, err error) {
	if *c, err = r.ReadByte(); err != nil {
		return 0, err
	}
	return 1, nil
}

// ReadUint16 reads a uint16 from r.
func ReadUint16(r Reader, c *uint16) (n int64, err error) {
	var buf [2]byte
	if n, err = Read(r, buf[:]); err != nil {
		return
	}
	*c = binary.LittleEndian.Uint16(buf[:])
	return
}

// ReadUint32 reads a uint32 from r.
func ReadUint32(r Reader, c *uint32) (n int64, err error) {
	var buf [4]byte
	if n, err = Read(r, buf[:]); err != nil {
		return
	}
	*c = binary.LittleEndian.Uint32(buf[:])
	return
}

// ReadUint64 reads a uint64 from r.
func ReadUint64(r Reader, c *uint64) (n int64, err error) {
	var buf [8]byte
	if n, err = Read(r, buf[:]); err != nil {
		return
	}
	*c = binary.LittleEndian.Uint64(buf[:])
	return
}

// ReadUint8Slice reads a slice of uint8 from r.
func ReadUint8Slice(r Reader, c []uint8) (n int64, err error) {
	return Read(r, c)
}

// ReadUint16Slice reads a slice of uint16 from r.
func ReadUint16Slice(r Reader, c []uint16) (n int64, err error) {
	var inc int64
	for i := range c {
		if inc, err = ReadUint16(r, &c[i]); err != nil {
			return n + inc, err
		}
		n += inc
	}
	return
}

// ReadUint32Slice reads a slice of uint32 from r.
func ReadUint32Slice(r Reader, c []uint32) (n int64, err error) {
	var inc int64
	for i := range c {
		if inc, err = ReadUint32(r, &c[i]); err != nil {
			return n + inc, err
		}
		n += inc
	}
	return
}

// ReadUint64Slice reads a slice of uint64 from r.
func ReadUint64Slice(r Reader, c []uint64) (n int64, err error) {
	var inc int64
	for i := range c {
		if inc, err = ReadUint64(r, &c[i]); err != nil {
			return n + inc, err
		}
		n += inc
	}
	return
}

// ReadBoolSlice reads a slice of bool from r, decoding any nonzero
// byte as true so that a malformed stream cannot produce a bool with
// an invalid representation.
func ReadBoolSlice(r Reader, c []bool) (n int64, err error) {
	var inc int64
	for i := range c {
		var b uint8
		if inc, err = ReadUint8(r, &b); err != nil {
			return n + inc, err
		}
		n += inc
		c[i] = b != 0
	}
	return
}

// ReadAsBoolSlice reads a slice of bool from r into a slice of any
// 1-byte value, decoding any nonzero byte as true.
func ReadAsBoolSlice[T any](r Reader, c []T) (n int64, err error) {
	if len(c) == 0 {
		return
	}
	/* #nosec G103 -- callers only instantiate T with bool */
	return ReadBoolSlice(r, unsafe.Slice((*bool)(unsafe.Pointer(&c[0])), len(c)))
}

// ReadAsUint8 reads a uint8 from r into any 1-byte value (e.g. int8, bool).
func ReadAsUint8[T any](r Reader, c *T) (n int64, err error) {
	/* #nosec G103 -- callers only instantiate T with 1-byte types */
	return ReadUint8(r, (*uint8)(unsafe.Pointer(c)))
}

// ReadAsUint16 reads a uint16 from r into any 2-byte value.
func ReadAsUint16[T any](r Reader, c *T) (n int64, err error) {
	/* #nosec G103 -- callers only instantiate T with 2-byte types */
	return ReadUint16(r, (*uint16)(unsafe.Pointer(c)))
}

// ReadAsUint32 reads a uint32 from r into any 4-byte value (e.g. int32, float32).
func ReadAsUint32[T any](r Reader, c *T) (n int64, err error) {
	/* #nosec G103 -- callers only instantiate T with 4-byte types */
	return ReadUint32(r, (*uint32)(unsafe.Pointer(c)))
}

// ReadAsUint64 reads a uint64 from r into any 8-byte value (e.g. int, int64, float64).
func ReadAsUint64[T any](r Reader, c *T) (n int64, err error) {
	/* #nosec G103 -- callers only instantiate T with 8-byte types */
	return ReadUint64(r, (*uint64)(unsafe.Pointer(c)))
}

// ReadAsUint8Slice reads a slice of uint8 from r into a slice of any 1-byte value.
func ReadAsUint8Slice[T any](r Reader, c []T) (n int64, err error) {
	if len(c) == 0 {
		return
	}
	/* #nosec G103 -- callers only instantiate T with 1-byte types */
	return ReadUint8Slice(r, unsafe.Slice((*uint8)(unsafe.Pointer(&c[0])), len(c)))
}

// ReadAsUint16Slice reads a slice of uint16 from r into a slice of any 2-byte value.
func ReadAsUint16Slice[T any](r Reader, c []T) (n int64, err error) {
	if len(c) == 0 {
		return
	}
	/* #nosec G103 -- callers only instantiate T with 2-byte types */
	return ReadUint16Slice(r, unsafe.Slice((*uint16)(unsafe.Pointer(&c[0])), len(c)))
}

// ReadAsUint32Slice reads a slice of uint32 from r into a slice of any 4-byte value.
func ReadAsUint32Slice[T any](r Reader, c []T) (n int64, err error) {
	if len(c) == 0 {
		return
	}
	/* #nosec G103 -- callers only instantiate T with 4-byte types */
	return ReadUint32Slice(r, unsafe.Slice((*uint32)(unsafe.Pointer(&c[0])), len(c)))
}

// ReadAsUint64Slice reads a slice of uint64 from r into a slice of any 8-byte value.
func ReadAsUint64Slice[T any](r Reader, c []T) (n int64, err error) {
	if len(c) == 0 {
		return
	}
	/* #nosec G103 -- callers only instantiate T with 8-byte types */
	return ReadUint64Slice(r, unsafe.Slice((*uint64)(unsafe.Pointer(&c[0])), len(c)))
}
