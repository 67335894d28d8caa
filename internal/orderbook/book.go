package orderbook

import (
	"sync"
	"sync/atomic"

	"github.com/feedhandler/mdfeed/internal/itch"
)

// ErrorCounters tallies decode and book-mutation anomalies process-wide, for
// the /api/errors introspection endpoint. All fields are updated with
// sync/atomic so the dispatcher can run single-threaded against the book
// while a concurrent HTTP handler reads them.
type ErrorCounters struct {
	ShortReads          uint64
	LengthMismatches    uint64
	UnknownMessages     uint64
	UnknownEnumValues   uint64
	TruncatedPackets    uint64
	DuplicateAdds       uint64
	ReplaceMissingOrig  uint64
	ReduceMissingOrder  uint64
	RemoveMissingOrder  uint64
}

func (c *ErrorCounters) incDuplicateAdd()  { atomic.AddUint64(&c.DuplicateAdds, 1) }
func (c *ErrorCounters) incReplaceMissing() { atomic.AddUint64(&c.ReplaceMissingOrig, 1) }
func (c *ErrorCounters) incReduceMissing()  { atomic.AddUint64(&c.ReduceMissingOrder, 1) }
func (c *ErrorCounters) incRemoveMissing()  { atomic.AddUint64(&c.RemoveMissingOrder, 1) }

// IncShortRead, IncLengthMismatch, IncUnknownMessage, IncUnknownEnumValue,
// and IncTruncatedPacket are called by the dispatcher as it classifies a
// decode error via errors.Is.
func (c *ErrorCounters) IncShortRead()        { atomic.AddUint64(&c.ShortReads, 1) }
func (c *ErrorCounters) IncLengthMismatch()   { atomic.AddUint64(&c.LengthMismatches, 1) }
func (c *ErrorCounters) IncUnknownMessage()   { atomic.AddUint64(&c.UnknownMessages, 1) }
func (c *ErrorCounters) IncUnknownEnumValue() { atomic.AddUint64(&c.UnknownEnumValues, 1) }
func (c *ErrorCounters) IncTruncatedPacket()  { atomic.AddUint64(&c.TruncatedPackets, 1) }

// Snapshot returns a point-in-time copy safe to marshal.
func (c *ErrorCounters) Snapshot() ErrorCounters {
	return ErrorCounters{
		ShortReads:         atomic.LoadUint64(&c.ShortReads),
		LengthMismatches:   atomic.LoadUint64(&c.LengthMismatches),
		UnknownMessages:    atomic.LoadUint64(&c.UnknownMessages),
		UnknownEnumValues:  atomic.LoadUint64(&c.UnknownEnumValues),
		TruncatedPackets:   atomic.LoadUint64(&c.TruncatedPackets),
		DuplicateAdds:      atomic.LoadUint64(&c.DuplicateAdds),
		ReplaceMissingOrig: atomic.LoadUint64(&c.ReplaceMissingOrig),
		ReduceMissingOrder: atomic.LoadUint64(&c.ReduceMissingOrder),
		RemoveMissingOrder: atomic.LoadUint64(&c.RemoveMissingOrder),
	}
}

// Book is the live order book for a single security, keyed by Locate.
// Deliberately flat: no price-level aggregation, no time priority, no
// matching. It exists to answer "what does the book look like right now"
// for every resting order, mirroring book::Book's unordered_map<RefNum,
// Order> exactly rather than the richer price-level structure a matching
// engine would need.
type Book struct {
	mu     sync.RWMutex
	Locate uint16
	orders map[RefNum]Order
	errs   *ErrorCounters
}

// NewBook creates an empty book for a security, reporting anomalies into errs.
func NewBook(locate uint16, errs *ErrorCounters) *Book {
	return &Book{
		Locate: locate,
		orders: make(map[RefNum]Order),
		errs:   errs,
	}
}

// Add inserts a new resting order. A zero-share add is ignored outright: it
// can never be a real resting order, and admitting one would leave a
// zero-size entry for Reduce/Remove to trip over later. A duplicate ref_num
// silently overwrites the prior order (Go map-assignment semantics), unlike
// the original unordered_map::insert which leaves the first order in place
// on a duplicate key; the overwrite is counted so the discrepancy is visible.
func (b *Book) Add(refNum RefNum, shares uint32, price uint32, side itch.Side) {
	if shares == 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.orders[refNum]; exists {
		b.errs.incDuplicateAdd()
	}
	b.orders[refNum] = Order{Shares: shares, Price: price, Side: side}
}

// Reduce lowers an order's resting size by shares, erasing it once its size
// reaches zero. A ref_num not on the book is a no-op, counted as an anomaly.
func (b *Book) Reduce(refNum RefNum, shares uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	o, ok := b.orders[refNum]
	if !ok {
		b.errs.incReduceMissing()
		return
	}
	if o.Shares <= shares {
		delete(b.orders, refNum)
		return
	}
	o.Shares -= shares
	b.orders[refNum] = o
}

// Remove erases an order outright. A missing ref_num is a no-op, counted.
func (b *Book) Remove(refNum RefNum) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.orders[refNum]; !ok {
		b.errs.incRemoveMissing()
		return
	}
	delete(b.orders, refNum)
}

// Replace atomically swaps an order for a new ref_num/shares/price, carrying
// forward the original's side. If the original ref_num is absent, this is a
// no-op: the side cannot be inferred from the replace message alone, so
// guessing it would be worse than dropping the replace, matching
// book::Book::replace's behavior.
func (b *Book) Replace(originalRefNum, newRefNum RefNum, shares, price uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	o, ok := b.orders[originalRefNum]
	if !ok {
		b.errs.incReplaceMissing()
		return
	}
	delete(b.orders, originalRefNum)
	b.orders[newRefNum] = Order{Shares: shares, Price: price, Side: o.Side}
}

// Get returns the resting order for ref_num and whether it exists.
func (b *Book) Get(refNum RefNum) (Order, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	o, ok := b.orders[refNum]
	return o, ok
}

// OrderCount returns the number of resting orders.
func (b *Book) OrderCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.orders)
}

// Snapshot is a point-in-time summary of a book's resting interest.
type Snapshot struct {
	Locate     uint16
	BidOrders  int
	AskOrders  int
	BidShares  uint64
	AskShares  uint64
}

// Snapshot aggregates every resting order into buy/sell counts and total
// shares. There is no price-level breakdown: the feed handler does not
// build a depth-of-book view, only tracks what each order looks like.
func (b *Book) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	snap := Snapshot{Locate: b.Locate}
	for _, o := range b.orders {
		switch o.Side {
		case itch.SideBuy:
			snap.BidOrders++
			snap.BidShares += uint64(o.Shares)
		case itch.SideSell:
			snap.AskOrders++
			snap.AskShares += uint64(o.Shares)
		}
	}
	return snap
}

// AllOrders returns a copy of every resting order keyed by reference number,
// for debugging.
func (b *Book) AllOrders() map[RefNum]Order {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make(map[RefNum]Order, len(b.orders))
	for k, v := range b.orders {
		out[k] = v
	}
	return out
}
