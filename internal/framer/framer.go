// Package framer strips MoldUDP64-style session framing off a multicast
// datagram and yields the individual message blocks it carries. Grounded on
// original_source/src/main.cpp's process_packet loop: a 20-byte envelope
// (10-byte session, 8-byte big-endian sequence number, 2-byte big-endian
// message count) followed by msg_count blocks of (2-byte big-endian length
// including the type tag, 1-byte type tag, length-1 payload bytes).
package framer

import (
	"encoding/binary"

	"github.com/feedhandler/mdfeed/internal/itch"
)

// Session is the 10-byte ASCII session identifier every datagram in a
// stream shares.
type Session [10]byte

// Header is the fixed 20-byte prefix of a MoldUDP64 datagram.
type Header struct {
	Session        Session
	SequenceNumber uint64
	MessageCount   uint16
}

const headerSize = 10 + 8 + 2

// Block is one decoded message block from inside a datagram: its wire type
// tag and the payload bytes that follow it (excluding the tag and the
// 2-byte length prefix).
type Block struct {
	Type    itch.MsgType
	Payload []byte
}

// ParseHeader reads the 20-byte MoldUDP64 envelope from the front of buf.
func ParseHeader(buf []byte) (Header, []byte, error) {
	var h Header
	if len(buf) < headerSize {
		return h, nil, &itch.ShortReadError{Needed: headerSize, Remaining: len(buf)}
	}
	copy(h.Session[:], buf[:10])
	h.SequenceNumber = binary.BigEndian.Uint64(buf[10:18])
	h.MessageCount = binary.BigEndian.Uint16(buf[18:20])
	return h, buf[headerSize:], nil
}

// Blocks walks the message blocks following a parsed Header, yielding one
// Block per message. It stops early — without error — if the datagram runs
// out of bytes before msg_count blocks have been read, matching
// process_packet's "missing len but should have more messages" break. A
// block whose declared length overruns the remaining buffer is reported as
// *TruncatedPacketError and processing of the datagram stops there.
func Blocks(header Header, rest []byte) ([]Block, error) {
	blocks := make([]Block, 0, header.MessageCount)
	pos := 0
	for i := 0; i < int(header.MessageCount); i++ {
		if pos+2 > len(rest) {
			break
		}
		msgLen := int(binary.BigEndian.Uint16(rest[pos : pos+2]))
		pos += 2
		if msgLen < 1 {
			return blocks, &itch.TruncatedPacketError{Expected: int(header.MessageCount), Got: len(blocks)}
		}
		if pos+msgLen > len(rest) {
			return blocks, &itch.TruncatedPacketError{Expected: int(header.MessageCount), Got: len(blocks)}
		}
		msgType := itch.MsgType(rest[pos])
		payload := rest[pos+1 : pos+msgLen]
		blocks = append(blocks, Block{Type: msgType, Payload: payload})
		pos += msgLen
	}
	return blocks, nil
}

// Split is a convenience wrapper over ParseHeader+Blocks for a full
// datagram, returning the session header and its decoded message blocks.
func Split(datagram []byte) (Header, []Block, error) {
	header, rest, err := ParseHeader(datagram)
	if err != nil {
		return header, nil, err
	}
	blocks, err := Blocks(header, rest)
	return header, blocks, err
}
