// Package symbol maintains the directory of securities the feed has
// announced, learned at runtime from decoded StockDirectory messages
// rather than configured ahead of time.
package symbol

import (
	"sync"

	"github.com/feedhandler/mdfeed/internal/itch"
)

// Directory is everything the feed has told us about one security.
type Directory struct {
	Locate              uint16
	Ticker              string
	MarketCategory      itch.MarketCategory
	FinancialStatus     itch.FinancialStatus
	RoundLotSize        uint32
	RoundLotsOnly       bool
	IssueClassification itch.IssueClassification
	IssueSubType        itch.IssueSubType
}

// Table is a runtime-built, concurrency-safe directory of securities,
// populated as StockDirectory messages arrive on the feed.
type Table struct {
	mu       sync.RWMutex
	byLocate map[uint16]Directory
	byTicker map[string]uint16
}

// NewTable returns an empty Table; entries accumulate as Learn is called.
func NewTable() *Table {
	return &Table{
		byLocate: make(map[uint16]Directory),
		byTicker: make(map[string]uint16),
	}
}

// Learn records or updates a security's directory entry from a decoded
// StockDirectory message. A later StockDirectory for the same locate
// overwrites the earlier entry, since the exchange may reissue it intraday.
func (t *Table) Learn(m itch.StockDirectoryMessage) {
	ticker := m.Symbol.Trimmed()
	entry := Directory{
		Locate:              m.Header.StockLocate,
		Ticker:              ticker,
		MarketCategory:      m.MarketCategory,
		FinancialStatus:     m.FinancialStatus,
		RoundLotSize:        m.RoundLotSize,
		RoundLotsOnly:       m.RoundLotsOnly == itch.RoundLotsOnlyYes,
		IssueClassification: m.IssueClassification,
		IssueSubType:        m.IssueSubType,
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.byLocate[entry.Locate] = entry
	t.byTicker[ticker] = entry.Locate
}

// ByLocate looks up a security by its stock_locate.
func (t *Table) ByLocate(locate uint16) (Directory, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	d, ok := t.byLocate[locate]
	return d, ok
}

// ByTicker looks up a security by its ticker symbol.
func (t *Table) ByTicker(ticker string) (Directory, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	locate, ok := t.byTicker[ticker]
	if !ok {
		return Directory{}, false
	}
	d, ok := t.byLocate[locate]
	return d, ok
}

// All returns every known security, in no particular order.
func (t *Table) All() []Directory {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Directory, 0, len(t.byLocate))
	for _, d := range t.byLocate {
		out = append(out, d)
	}
	return out
}

// Count returns the number of securities currently known.
func (t *Table) Count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.byLocate)
}
