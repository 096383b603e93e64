// Package binaryserializer provides free-listed, big-endian primitive
// integer (de)serialization helpers. The wire format of this core is
// big-endian throughout; every call here uses binary.BigEndian.
package binaryserializer

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// maxItems is the number of buffers to keep in the free list to use
// for binary serialization and deserialization.
const maxItems = 1024

// binaryFreeList provides a free list of buffers to use for
// serializing and deserializing primitive integer values to and from
// io.Readers and io.Writers, to reduce allocations on hot validation
// paths.
var binaryFreeList = make(chan []byte, maxItems)

// Borrow returns a byte slice from the free list with a length of 8. A
// new buffer is allocated if there are not any available on the free
// list.
func Borrow() []byte {
	var buf []byte
	select {
	case buf = <-binaryFreeList:
	default:
		buf = make([]byte, 8)
	}
	return buf[:8]
}

// Return puts the provided byte slice back on the free list. The
// buffer MUST have been obtained via Borrow and therefore have a cap
// of 8.
func Return(buf []byte) {
	select {
	case binaryFreeList <- buf:
	default:
		// Let it go to the garbage collector.
	}
}

// Uint8 reads a single byte from r.
func Uint8(r io.Reader) (uint8, error) {
	buf := Borrow()[:1]
	if _, err := io.ReadFull(r, buf); err != nil {
		Return(buf)
		return 0, errors.WithStack(err)
	}
	rv := buf[0]
	Return(buf)
	return rv, nil
}

// Uint16 reads two big-endian bytes from r.
func Uint16(r io.Reader) (uint16, error) {
	buf := Borrow()[:2]
	if _, err := io.ReadFull(r, buf); err != nil {
		Return(buf)
		return 0, errors.WithStack(err)
	}
	rv := binary.BigEndian.Uint16(buf)
	Return(buf)
	return rv, nil
}

// Uint32 reads four big-endian bytes from r.
func Uint32(r io.Reader) (uint32, error) {
	buf := Borrow()[:4]
	if _, err := io.ReadFull(r, buf); err != nil {
		Return(buf)
		return 0, errors.WithStack(err)
	}
	rv := binary.BigEndian.Uint32(buf)
	Return(buf)
	return rv, nil
}

// Uint64 reads eight big-endian bytes from r.
func Uint64(r io.Reader) (uint64, error) {
	buf := Borrow()[:8]
	if _, err := io.ReadFull(r, buf); err != nil {
		Return(buf)
		return 0, errors.WithStack(err)
	}
	rv := binary.BigEndian.Uint64(buf)
	Return(buf)
	return rv, nil
}

// PutUint8 writes val to w.
func PutUint8(w io.Writer, val uint8) error {
	buf := Borrow()[:1]
	buf[0] = val
	_, err := w.Write(buf)
	Return(buf)
	return errors.WithStack(err)
}

// PutUint16 writes val to w as two big-endian bytes.
func PutUint16(w io.Writer, val uint16) error {
	buf := Borrow()[:2]
	binary.BigEndian.PutUint16(buf, val)
	_, err := w.Write(buf)
	Return(buf)
	return errors.WithStack(err)
}

// PutUint32 writes val to w as four big-endian bytes.
func PutUint32(w io.Writer, val uint32) error {
	buf := Borrow()[:4]
	binary.BigEndian.PutUint32(buf, val)
	_, err := w.Write(buf)
	Return(buf)
	return errors.WithStack(err)
}

// PutUint64 writes val to w as eight big-endian bytes.
func PutUint64(w io.Writer, val uint64) error {
	buf := Borrow()[:8]
	binary.BigEndian.PutUint64(buf, val)
	_, err := w.Write(buf)
	Return(buf)
	return errors.WithStack(err)
}
