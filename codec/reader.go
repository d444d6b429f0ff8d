// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package codec parses flat precompile input buffers into typed fields.
//
// All multi-byte integers are big-endian. Fixed-size fields are validated by
// exact length match; variable-size fields carry an explicit 1, 2, or 4 byte
// length prefix and the reader re-checks the buffer actually contains that
// many remaining bytes before slicing. Length failures are reported through
// dedicated sentinel errors so callers can keep them distinct from a negative
// verification result.
package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	ErrShortBuffer   = errors.New("input buffer shorter than declared length")
	ErrTrailingBytes = errors.New("unexpected trailing bytes in input")
)

// Reader consumes a flat byte buffer field by field. It never copies: returned
// slices alias the input, which only lives for the duration of one call.
type Reader struct {
	buf []byte
	off int
}

func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Remaining returns the number of unconsumed bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.off
}

// Fixed consumes exactly n bytes. A zero-length field is legal and returns an
// empty slice, not an error.
func (r *Reader) Fixed(n int) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrShortBuffer, n, r.off, r.Remaining())
	}
	field := r.buf[r.off : r.off+n]
	r.off += n
	return field, nil
}

// Byte consumes a single byte, typically a mode tag.
func (r *Reader) Byte() (byte, error) {
	b, err := r.Fixed(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Uint32 consumes a big-endian uint32.
func (r *Reader) Uint32() (uint32, error) {
	b, err := r.Fixed(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// Bytes8 consumes a field preceded by a 1-byte length prefix (max 255 bytes).
func (r *Reader) Bytes8() ([]byte, error) {
	n, err := r.Byte()
	if err != nil {
		return nil, err
	}
	return r.Fixed(int(n))
}

// Bytes16 consumes a field preceded by a 2-byte length prefix (max 65,535
// bytes). The prefix bounds the declared size; the buffer is still re-checked
// before slicing.
func (r *Reader) Bytes16() ([]byte, error) {
	b, err := r.Fixed(2)
	if err != nil {
		return nil, err
	}
	return r.Fixed(int(binary.BigEndian.Uint16(b)))
}

// Bytes32 consumes a field preceded by a 4-byte length prefix.
func (r *Reader) Bytes32() ([]byte, error) {
	n, err := r.Uint32()
	if err != nil {
		return nil, err
	}
	return r.Fixed(int(n))
}

// Rest consumes and returns everything left in the buffer.
func (r *Reader) Rest() []byte {
	field := r.buf[r.off:]
	r.off = len(r.buf)
	return field
}

// Done returns an error unless the buffer was fully consumed. The total buffer
// length must equal the sum of all declared and fixed-size fields.
func (r *Reader) Done() error {
	if n := r.Remaining(); n != 0 {
		return fmt.Errorf("%w: %d bytes", ErrTrailingBytes, n)
	}
	return nil
}

// PeekUint16 reads a big-endian uint16 at the given absolute offset without
// consuming anything. It reports ok=false when the buffer is too short, which
// lets gas metering degrade to a base cost instead of failing.
func PeekUint16(buf []byte, off int) (uint16, bool) {
	if off < 0 || len(buf) < off+2 {
		return 0, false
	}
	return binary.BigEndian.Uint16(buf[off : off+2]), true
}

// PeekUint32 reads a big-endian uint32 at the given absolute offset without
// consuming anything.
func PeekUint32(buf []byte, off int) (uint32, bool) {
	if off < 0 || len(buf) < off+4 {
		return 0, false
	}
	return binary.BigEndian.Uint32(buf[off : off+4]), true
}
