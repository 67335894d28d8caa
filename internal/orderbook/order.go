package orderbook

import "github.com/feedhandler/mdfeed/internal/itch"

// RefNum is an exchange-assigned order reference number, unique within a
// security for the life of the order.
type RefNum = uint64

// Order is a single resting order as carried by the book: just enough state
// to answer reduce/remove/replace against its reference number. Execution
// details (match number, counterparty) are not tracked here — the feed
// handler only maintains book state, it does not reconstruct the tape.
type Order struct {
	Shares uint32
	Price  uint32
	Side   itch.Side
}
