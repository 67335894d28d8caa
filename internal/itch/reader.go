package itch

import "encoding/binary"

// BinaryReader is a cursor-based big-endian reader over a message payload.
// It never panics: every read is bounds-checked, and a short buffer yields
// an error rather than a slice-index panic. Grounded on original_source's
// util::extract/extract_be copy-then-swap idiom.
type BinaryReader struct {
	buf []byte
	pos int
}

// NewBinaryReader wraps buf for sequential reads starting at offset 0.
func NewBinaryReader(buf []byte) *BinaryReader {
	return &BinaryReader{buf: buf}
}

// Len returns the number of unread bytes remaining.
func (r *BinaryReader) Len() int { return len(r.buf) - r.pos }

func (r *BinaryReader) need(n int) error {
	if r.Len() < n {
		return &ShortReadError{Needed: n, Remaining: r.Len()}
	}
	return nil
}

// Uint8 reads a single byte.
func (r *BinaryReader) Uint8() (byte, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.buf[r.pos]
	r.pos++
	return v, nil
}

// Uint16 reads a big-endian uint16.
func (r *BinaryReader) Uint16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(r.buf[r.pos:])
	r.pos += 2
	return v, nil
}

// Uint32 reads a big-endian uint32.
func (r *BinaryReader) Uint32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v, nil
}

// Uint64 reads a big-endian uint64.
func (r *BinaryReader) Uint64() (uint64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint64(r.buf[r.pos:])
	r.pos += 8
	return v, nil
}

// Timestamp48 reads a 6-byte big-endian value packed into a uint64,
// matching original_source's shift-accumulate loop over the 48-bit
// ITCH timestamp field.
func (r *BinaryReader) Timestamp48() (uint64, error) {
	if err := r.need(6); err != nil {
		return 0, err
	}
	var ts uint64
	for i := 0; i < 6; i++ {
		ts = ts<<8 | uint64(r.buf[r.pos])
		r.pos++
	}
	return ts, nil
}

// Symbol reads a fixed 8-byte right-space-padded ticker.
func (r *BinaryReader) Symbol() (Symbol, error) {
	var s Symbol
	if err := r.need(len(s)); err != nil {
		return s, err
	}
	copy(s[:], r.buf[r.pos:])
	r.pos += len(s)
	return s, nil
}

// MPID reads a fixed 4-byte right-space-padded participant ID.
func (r *BinaryReader) MPID() (MPID, error) {
	var m MPID
	if err := r.need(len(m)); err != nil {
		return m, err
	}
	copy(m[:], r.buf[r.pos:])
	r.pos += len(m)
	return m, nil
}

// Header reads the common 11-byte message header.
func (r *BinaryReader) Header() (MessageHeader, error) {
	var h MessageHeader
	locate, err := r.Uint16()
	if err != nil {
		return h, err
	}
	tracking, err := r.Uint16()
	if err != nil {
		return h, err
	}
	ts, err := r.Timestamp48()
	if err != nil {
		return h, err
	}
	h.StockLocate, h.TrackingNumber, h.Timestamp = locate, tracking, ts
	return h, nil
}
