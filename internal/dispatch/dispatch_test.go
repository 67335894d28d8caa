package dispatch

import (
	"encoding/binary"
	"testing"

	"github.com/feedhandler/mdfeed/internal/framer"
	"github.com/feedhandler/mdfeed/internal/itch"
	"github.com/feedhandler/mdfeed/internal/orderbook"
)

func buildDatagram(t *testing.T, encoded ...[]byte) []byte {
	t.Helper()
	return buildDatagramSeq(t, 0, encoded...)
}

func buildDatagramSeq(t *testing.T, seq uint64, encoded ...[]byte) []byte {
	t.Helper()
	buf := make([]byte, 0, 128)
	buf = append(buf, []byte("TESTSESS01")...)
	var seqBuf [8]byte
	binary.BigEndian.PutUint64(seqBuf[:], seq)
	buf = append(buf, seqBuf[:]...)
	var countBuf [2]byte
	binary.BigEndian.PutUint16(countBuf[:], uint16(len(encoded)))
	buf = append(buf, countBuf[:]...)
	for _, e := range encoded {
		var lenBuf [2]byte
		binary.BigEndian.PutUint16(lenBuf[:], uint16(len(e)))
		buf = append(buf, lenBuf[:]...)
		buf = append(buf, e...)
	}
	return buf
}

func TestDispatchAddOrderUpdatesBook(t *testing.T) {
	var errs orderbook.ErrorCounters
	market := orderbook.NewMarket(&errs)

	var received []any
	d := New(market, &errs, func(locate uint16, msg any) {
		received = append(received, msg)
	})

	encoded, err := itch.Encode(itch.AddOrderMessage{
		Header:               itch.MessageHeader{StockLocate: 9},
		OrderReferenceNumber: 1,
		Side:                 itch.SideBuy,
		Shares:               100,
		Symbol:               itch.Symbol{'A', 'A', 'P', 'L', ' ', ' ', ' ', ' '},
		Price:                itch.Price4(190),
	})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	if err := d.Dispatch(buildDatagram(t, encoded)); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}

	if market.Book(9).OrderCount() != 1 {
		t.Fatalf("expected book 9 to have one resting order, got %d", market.Book(9).OrderCount())
	}
	if len(received) != 1 {
		t.Fatalf("expected consumer to see 1 message, got %d", len(received))
	}
	if _, ok := received[0].(itch.AddOrderMessage); !ok {
		t.Fatalf("expected AddOrderMessage, got %T", received[0])
	}
}

func TestDispatchOrderLifecycle(t *testing.T) {
	var errs orderbook.ErrorCounters
	market := orderbook.NewMarket(&errs)
	d := New(market, &errs, nil)

	add, _ := itch.Encode(itch.AddOrderMessage{
		Header: itch.MessageHeader{StockLocate: 4}, OrderReferenceNumber: 1,
		Side: itch.SideBuy, Shares: 300, Price: itch.Price4(10),
	})
	del, _ := itch.Encode(itch.OrderDeleteMessage{
		Header: itch.MessageHeader{StockLocate: 4}, OrderReferenceNumber: 1,
	})

	if err := d.Dispatch(buildDatagram(t, add, del)); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if market.Book(4).OrderCount() != 0 {
		t.Fatal("expected the order to be removed by the delete message")
	}
}

func TestDispatchCountsUnknownMessageType(t *testing.T) {
	var errs orderbook.ErrorCounters
	market := orderbook.NewMarket(&errs)
	d := New(market, &errs, nil)

	bogus := []byte{'?', 0, 0, 0}
	if err := d.Dispatch(buildDatagram(t, bogus)); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if errs.Snapshot().UnknownMessages != 1 {
		t.Fatalf("UnknownMessages = %d, want 1", errs.Snapshot().UnknownMessages)
	}
}

func TestDispatchCountsLengthMismatch(t *testing.T) {
	var errs orderbook.ErrorCounters
	market := orderbook.NewMarket(&errs)

	var received []any
	d := New(market, &errs, func(locate uint16, msg any) {
		received = append(received, msg)
	})

	// OrderDelete's fixed size is 19 bytes (including the tag); declare
	// it with 4 extra trailing bytes so the block's length disagrees
	// with the type.
	oversized := append([]byte{byte(itch.MsgOrderDelete)}, make([]byte, 18+4)...)

	if err := d.Dispatch(buildDatagram(t, oversized)); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if errs.Snapshot().LengthMismatches != 1 {
		t.Fatalf("LengthMismatches = %d, want 1", errs.Snapshot().LengthMismatches)
	}
	if len(received) != 0 {
		t.Fatalf("expected the malformed message not to reach the consumer, got %d", len(received))
	}
}

func TestGapReporterTracksLastSequenceAcrossGap(t *testing.T) {
	var errs orderbook.ErrorCounters
	market := orderbook.NewMarket(&errs)
	d := New(market, &errs, nil)

	if err := d.Dispatch(buildDatagramSeq(t, 1)); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if err := d.Dispatch(buildDatagramSeq(t, 2)); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	// A jump from 2 to 5 is a gap, which GapReporter only logs; Dispatch
	// itself still succeeds and the last sequence seen moves to 5.
	if err := d.Dispatch(buildDatagramSeq(t, 5)); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}

	d.gaps.mu.Lock()
	last := d.gaps.lastSeq[framer.Session{'T', 'E', 'S', 'T', 'S', 'E', 'S', 'S', '0', '1'}]
	d.gaps.mu.Unlock()
	if last != 5 {
		t.Fatalf("lastSeq = %d, want 5", last)
	}
}
