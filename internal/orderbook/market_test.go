package orderbook

import (
	"testing"

	"github.com/feedhandler/mdfeed/internal/itch"
)

func TestMarketBookIsStableAcrossLookups(t *testing.T) {
	var errs ErrorCounters
	m := NewMarket(&errs)
	b1 := m.Book(42)
	b1.Add(1, 100, itch.Price4(10), itch.SideBuy)

	b2 := m.Book(42)
	if b2.OrderCount() != 1 {
		t.Fatal("expected the same book instance to be returned for the same locate")
	}
}

func TestMarketCoversFullLocateRange(t *testing.T) {
	var errs ErrorCounters
	m := NewMarket(&errs)
	if m.Book(0) == nil {
		t.Fatal("locate 0 should still resolve to an inert book")
	}
	if m.Book(65535) == nil {
		t.Fatal("locate 65535 should be in range")
	}
}

func TestMarketSnapshotsOnlyNonEmptyBooks(t *testing.T) {
	var errs ErrorCounters
	m := NewMarket(&errs)
	m.Book(7).Add(1, 100, itch.Price4(10), itch.SideBuy)

	snaps := m.Snapshots()
	if len(snaps) != 1 {
		t.Fatalf("Snapshots() returned %d books, want 1", len(snaps))
	}
	if snaps[0].Locate != 7 {
		t.Fatalf("Locate = %d, want 7", snaps[0].Locate)
	}
}
