// Package buffer implements a simple in-memory buffer and generic helper
// functions for the binary encoding and decoding of scalar values and
// slices of scalar values.
package buffer

import (
	"io"
)

// Buffer is a simple []byte based buffer that complies to the
// [Writer] and [Reader] interfaces.
// Writes append at the end of the content, reads consume from
// the front.
type Buffer struct {
	buf []byte
	off int
}

// NewBuffer returns a new [Buffer] whose content is b.
// The buffer takes ownership of b.
func NewBuffer(b []byte) *Buffer {
	return &Buffer{buf: b}
}

// NewBufferSize returns a new empty [Buffer] with an initial
// capacity of size bytes.
func NewBufferSize(size int) *Buffer {
	return &Buffer{buf: make([]byte, 0, size)}
}

// Write appends p to the content of the receiver.
func (b *Buffer) Write(p []byte) (n int, err error) {
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// WriteByte appends c to the content of the receiver.
func (b *Buffer) WriteByte(c byte) (err error) {
	b.buf = append(b.buf, c)
	return
}

// Read reads up to len(p) bytes of the unread content into p.
// Returns io.EOF if the content is exhausted.
func (b *Buffer) Read(p []byte) (n int, err error) {
	if b.off >= len(b.buf) {
		if len(p) == 0 {
			return
		}
		return 0, io.EOF
	}
	n = copy(p, b.buf[b.off:])
	b.off += n
	return
}

// ReadByte reads and returns the next unread byte.
// Returns io.EOF if the content is exhausted.
func (b *Buffer) ReadByte() (c byte, err error) {
	if b.off >= len(b.buf) {
		return 0, io.EOF
	}
	c = b.buf[b.off]
	b.off++
	return
}

// Flush is a no-op, present so that *Buffer complies to the
// [Writer] interface.
func (b *Buffer) Flush() (err error) {
	return
}

// Bytes returns the full content of the receiver, including
// already-read bytes.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// Size returns the size in bytes of the content of the receiver.
func (b *Buffer) Size() int {
	return len(b.buf)
}

// Reset empties the receiver, retaining the underlying storage.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
	b.off = 0
}
