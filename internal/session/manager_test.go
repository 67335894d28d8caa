package session

import (
	"testing"

	"github.com/feedhandler/mdfeed/internal/itch"
	"github.com/feedhandler/mdfeed/internal/symbol"
)

func newTestManager() *Manager {
	table := symbol.NewTable()
	table.Learn(itch.StockDirectoryMessage{
		Header: itch.MessageHeader{StockLocate: 1},
		Symbol: itch.SymbolFromString("NEXO"),
	})
	table.Learn(itch.StockDirectoryMessage{
		Header: itch.MessageHeader{StockLocate: 2},
		Symbol: itch.SymbolFromString("QBIT"),
	})
	table.Learn(itch.StockDirectoryMessage{
		Header: itch.MessageHeader{StockLocate: 3},
		Symbol: itch.SymbolFromString("BLITZ"),
	})
	return NewManager(table, 100)
}

func TestResolveTickersSpecific(t *testing.T) {
	m := newTestManager()
	locs, all := m.ResolveTickers([]string{"NEXO", "QBIT"})
	if all {
		t.Fatal("should not be all")
	}
	if len(locs) != 2 {
		t.Fatalf("expected 2 locates, got %d", len(locs))
	}
	locSet := make(map[uint16]bool)
	for _, l := range locs {
		locSet[l] = true
	}
	if !locSet[1] || !locSet[2] {
		t.Fatalf("expected locates 1 and 2, got %v", locs)
	}
}

func TestResolveTickersWildcard(t *testing.T) {
	m := newTestManager()
	locs, all := m.ResolveTickers([]string{"*"})
	if !all {
		t.Fatal("wildcard should set all=true")
	}
	if locs != nil {
		t.Fatalf("wildcard should return nil locates, got %v", locs)
	}
}

func TestResolveTickersUnknown(t *testing.T) {
	m := newTestManager()
	locs, all := m.ResolveTickers([]string{"ZZZZ"})
	if all {
		t.Fatal("should not be all")
	}
	if len(locs) != 0 {
		t.Fatalf("expected 0 locates for unknown ticker, got %d", len(locs))
	}
}

func TestResolveTickersMixed(t *testing.T) {
	m := newTestManager()
	locs, all := m.ResolveTickers([]string{"NEXO", "ZZZZ", "BLITZ"})
	if all {
		t.Fatal("should not be all")
	}
	if len(locs) != 2 {
		t.Fatalf("expected 2 locates (NEXO + BLITZ), got %d", len(locs))
	}
}

func TestClientStatsTracksRegisteredClients(t *testing.T) {
	m := newTestManager()
	if len(m.ClientStats()) != 0 {
		t.Fatal("expected no clients before registration")
	}

	c := NewClient(nil, 10)
	c.Subscribe([]uint16{1})
	m.mu.Lock()
	m.clients[c.ID] = c
	m.mu.Unlock()

	stats := m.ClientStats()
	if len(stats) != 1 {
		t.Fatalf("expected 1 client, got %d", len(stats))
	}
	if stats[0].ID != c.ID {
		t.Fatalf("ClientStats()[0].ID = %d, want %d", stats[0].ID, c.ID)
	}
	if stats[0].Subscribed != 1 {
		t.Fatalf("ClientStats()[0].Subscribed = %d, want 1", stats[0].Subscribed)
	}

	m.mu.Lock()
	delete(m.clients, c.ID)
	m.mu.Unlock()
	if len(m.ClientStats()) != 0 {
		t.Fatal("expected no clients after removal")
	}
}

func TestResolveTickersWildcardShortCircuits(t *testing.T) {
	m := newTestManager()
	// Wildcard should return immediately even with other tickers
	locs, all := m.ResolveTickers([]string{"NEXO", "*", "BLITZ"})
	if !all {
		t.Fatal("wildcard should short-circuit to all=true")
	}
	if locs != nil {
		t.Fatalf("wildcard should return nil locates, got %v", locs)
	}
}
