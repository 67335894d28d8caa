package framer

import (
	"encoding/binary"
	"testing"

	"github.com/feedhandler/mdfeed/internal/itch"
)

func buildDatagram(t *testing.T, seq uint64, blocks [][]byte) []byte {
	t.Helper()
	buf := make([]byte, 0, headerSize)
	buf = append(buf, []byte("TESTSESS01")...)
	var seqBuf [8]byte
	binary.BigEndian.PutUint64(seqBuf[:], seq)
	buf = append(buf, seqBuf[:]...)
	var countBuf [2]byte
	binary.BigEndian.PutUint16(countBuf[:], uint16(len(blocks)))
	buf = append(buf, countBuf[:]...)
	for _, b := range blocks {
		var lenBuf [2]byte
		binary.BigEndian.PutUint16(lenBuf[:], uint16(len(b)))
		buf = append(buf, lenBuf[:]...)
		buf = append(buf, b...)
	}
	return buf
}

func TestSplitSingleMessage(t *testing.T) {
	deleteMsg := itch.EncodeOrderDelete(itch.OrderDeleteMessage{
		Header:               itch.MessageHeader{StockLocate: 3},
		OrderReferenceNumber: 99,
	})
	full := append([]byte{byte(itch.MsgOrderDelete)}, deleteMsg...)
	datagram := buildDatagram(t, 1, [][]byte{full})

	header, blocks, err := Split(datagram)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if header.SequenceNumber != 1 {
		t.Fatalf("SequenceNumber = %d, want 1", header.SequenceNumber)
	}
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	if blocks[0].Type != itch.MsgOrderDelete {
		t.Fatalf("Type = %v, want MsgOrderDelete", blocks[0].Type)
	}
	msg, err := itch.DecodeOrderDelete(blocks[0].Payload)
	if err != nil {
		t.Fatalf("DecodeOrderDelete: %v", err)
	}
	if msg.OrderReferenceNumber != 99 {
		t.Fatalf("OrderReferenceNumber = %d, want 99", msg.OrderReferenceNumber)
	}
}

func TestSplitMultipleMessages(t *testing.T) {
	a := append([]byte{byte(itch.MsgOrderDelete)}, itch.EncodeOrderDelete(itch.OrderDeleteMessage{
		Header: itch.MessageHeader{StockLocate: 1}, OrderReferenceNumber: 1,
	})...)
	b := append([]byte{byte(itch.MsgOrderDelete)}, itch.EncodeOrderDelete(itch.OrderDeleteMessage{
		Header: itch.MessageHeader{StockLocate: 2}, OrderReferenceNumber: 2,
	})...)
	datagram := buildDatagram(t, 5, [][]byte{a, b})

	_, blocks, err := Split(datagram)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
}

func TestParseHeaderShortBuffer(t *testing.T) {
	_, _, err := ParseHeader(make([]byte, 5))
	if _, ok := err.(*itch.ShortReadError); !ok {
		t.Fatalf("expected *itch.ShortReadError, got %v", err)
	}
}

func TestBlocksStopsOnMissingLength(t *testing.T) {
	header := Header{MessageCount: 3}
	rest := []byte{0x00} // declares 3 messages but supplies less than one length prefix
	blocks, err := Blocks(header, rest)
	if err != nil {
		t.Fatalf("expected no error on a short trailing fragment, got %v", err)
	}
	if len(blocks) != 0 {
		t.Fatalf("got %d blocks, want 0", len(blocks))
	}
}

func TestBlocksTruncatedPayload(t *testing.T) {
	header := Header{MessageCount: 1}
	rest := []byte{0x00, 0x05, 'A'} // declares a 5-byte message but only 1 byte follows the length
	_, err := Blocks(header, rest)
	if _, ok := err.(*itch.TruncatedPacketError); !ok {
		t.Fatalf("expected *itch.TruncatedPacketError, got %v", err)
	}
}
