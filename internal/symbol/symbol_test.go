package symbol

import (
	"testing"

	"github.com/feedhandler/mdfeed/internal/itch"
)

func nexoDirectory() itch.StockDirectoryMessage {
	return itch.StockDirectoryMessage{
		Header:          itch.MessageHeader{StockLocate: 1},
		Symbol:          itch.Symbol{'N', 'E', 'X', 'O', ' ', ' ', ' ', ' '},
		MarketCategory:  itch.MarketNasdaqGlobalSelect,
		FinancialStatus: itch.FinancialNormal,
		RoundLotSize:    100,
		RoundLotsOnly:   itch.RoundLotsOnlyNo,
	}
}

func TestLearnThenByLocate(t *testing.T) {
	table := NewTable()
	table.Learn(nexoDirectory())

	d, ok := table.ByLocate(1)
	if !ok {
		t.Fatal("expected locate 1 to be known after Learn")
	}
	if d.Ticker != "NEXO" {
		t.Fatalf("Ticker = %q, want NEXO", d.Ticker)
	}
}

func TestLearnThenByTicker(t *testing.T) {
	table := NewTable()
	table.Learn(nexoDirectory())

	d, ok := table.ByTicker("NEXO")
	if !ok {
		t.Fatal("expected NEXO to be known after Learn")
	}
	if d.Locate != 1 {
		t.Fatalf("Locate = %d, want 1", d.Locate)
	}
}

func TestUnknownLocateAndTicker(t *testing.T) {
	table := NewTable()
	if _, ok := table.ByLocate(999); ok {
		t.Fatal("expected locate 999 to be unknown in an empty table")
	}
	if _, ok := table.ByTicker("ZZZZ"); ok {
		t.Fatal("expected ZZZZ to be unknown in an empty table")
	}
}

func TestLearnOverwritesPriorEntry(t *testing.T) {
	table := NewTable()
	table.Learn(nexoDirectory())

	updated := nexoDirectory()
	updated.RoundLotSize = 1
	table.Learn(updated)

	d, _ := table.ByLocate(1)
	if d.RoundLotSize != 1 {
		t.Fatalf("RoundLotSize = %d, want 1 after re-learning", d.RoundLotSize)
	}
	if table.Count() != 1 {
		t.Fatalf("Count() = %d, want 1 (re-learn should not duplicate)", table.Count())
	}
}

func TestAllReturnsEverySecurity(t *testing.T) {
	table := NewTable()
	table.Learn(nexoDirectory())
	second := nexoDirectory()
	second.Header.StockLocate = 2
	second.Symbol = itch.Symbol{'Q', 'B', 'I', 'T', ' ', ' ', ' ', ' '}
	table.Learn(second)

	all := table.All()
	if len(all) != 2 {
		t.Fatalf("All() returned %d entries, want 2", len(all))
	}
}
