// Package dispatch turns a stream of framer.Blocks into Market mutations
// and consumer notifications. Grounded on original_source/src/main.cpp's
// process_packet switch: only the 7 order-lifecycle message types touch the
// book, but every decoded message (including those 7) is handed to the
// consumer callback so a downstream fan-out can forward the full feed.
package dispatch

import (
	"errors"
	"log"
	"sync"

	"github.com/feedhandler/mdfeed/internal/framer"
	"github.com/feedhandler/mdfeed/internal/itch"
	"github.com/feedhandler/mdfeed/internal/orderbook"
)

// Consumer receives every successfully decoded message, tagged with the
// locate it belongs to (0 for messages, like SystemEvent, that precede any
// per-security context).
type Consumer func(locate uint16, msg any)

// Dispatcher wires decoded messages into a Market and a Consumer. It holds
// no goroutines of its own: Dispatch is called synchronously once per
// datagram from the feed handler's single receive loop, so book mutation
// never races decode.
type Dispatcher struct {
	market   *orderbook.Market
	errs     *orderbook.ErrorCounters
	consumer Consumer
	gaps     *GapReporter
}

// New builds a Dispatcher over market, counting anomalies into errs and
// forwarding every decoded message to consumer.
func New(market *orderbook.Market, errs *orderbook.ErrorCounters, consumer Consumer) *Dispatcher {
	return &Dispatcher{market: market, errs: errs, consumer: consumer, gaps: NewGapReporter()}
}

// GapReporter tracks the last MoldUDP64 sequence number seen per session and
// reports a gap (or a restart with a lower sequence number) when the next
// datagram doesn't immediately follow it. The framer doesn't track sequence
// numbers itself — it only exposes them on the Header, per
// original_source/src/main.cpp leaving gap handling to the caller — so this
// is bolted on at the Dispatcher instead of inside framer.Split.
type GapReporter struct {
	mu      sync.Mutex
	lastSeq map[framer.Session]uint64
}

// NewGapReporter creates an empty GapReporter.
func NewGapReporter() *GapReporter {
	return &GapReporter{lastSeq: make(map[framer.Session]uint64)}
}

// Check compares header's sequence number against the last one seen for its
// session. The first datagram of a session is never reported as a gap. A
// sequence number that doesn't immediately follow the last one (including
// going backwards, e.g. a session restart) is logged, not fatal: the feed
// handler keeps processing the datagram it just received.
func (g *GapReporter) Check(header framer.Header) {
	g.mu.Lock()
	defer g.mu.Unlock()
	last, seen := g.lastSeq[header.Session]
	g.lastSeq[header.Session] = header.SequenceNumber
	if !seen {
		return
	}
	if header.SequenceNumber != last+1 {
		log.Printf("sequence gap on session %q: expected %d, got %d", header.Session[:], last+1, header.SequenceNumber)
	}
}

// Dispatch splits one multicast datagram into its message blocks and
// applies each in order. A truncated datagram (declared message count
// exceeding what the buffer actually holds) aborts the remainder of the
// datagram; an individual message's decode error (short read, unknown
// enum value) is counted and that one message is skipped, the rest of the
// datagram still processed, matching the length-prefixed framing that lets
// the reader skip past a bad message without losing sync.
func (d *Dispatcher) Dispatch(datagram []byte) error {
	header, blocks, splitErr := framer.Split(datagram)
	var shortRead *itch.ShortReadError
	if !errors.As(splitErr, &shortRead) {
		// The header parsed successfully even if Blocks later found the
		// datagram truncated, so its sequence number is trustworthy.
		d.gaps.Check(header)
	}
	for _, b := range blocks {
		d.dispatchOne(header, b)
	}
	if splitErr != nil {
		d.countError(splitErr)
		return splitErr
	}
	return nil
}

func (d *Dispatcher) dispatchOne(header framer.Header, b framer.Block) {
	msg, err := itch.Decode(byte(b.Type), b.Payload)
	if err != nil {
		d.countError(err)
		return
	}
	if msg == nil {
		return
	}

	locate := mutateBook(d.market, d.errs, msg)
	if d.consumer != nil {
		d.consumer(locate, msg)
	}
}

// mutateBook applies the 7 order-lifecycle message types to the book for
// their security and returns the locate involved. Every other message type
// is a no-op against the book and returns the locate from its header, if it
// has one, for the consumer's benefit.
func mutateBook(market *orderbook.Market, errs *orderbook.ErrorCounters, msg any) uint16 {
	switch m := msg.(type) {
	case itch.AddOrderMessage:
		market.Book(m.Header.StockLocate).Add(m.OrderReferenceNumber, m.Shares, m.Price, m.Side)
		return m.Header.StockLocate
	case itch.AddOrderMPIDMessage:
		market.Book(m.Header.StockLocate).Add(m.OrderReferenceNumber, m.Shares, m.Price, m.Side)
		return m.Header.StockLocate
	case itch.OrderExecutedMessage:
		market.Book(m.Header.StockLocate).Reduce(m.OrderReferenceNumber, m.ExecutedShares)
		return m.Header.StockLocate
	case itch.OrderExecutedWithPriceMessage:
		market.Book(m.Header.StockLocate).Reduce(m.OrderReferenceNumber, m.ExecutedShares)
		return m.Header.StockLocate
	case itch.OrderCancelMessage:
		market.Book(m.Header.StockLocate).Reduce(m.OrderReferenceNumber, m.CanceledShares)
		return m.Header.StockLocate
	case itch.OrderDeleteMessage:
		market.Book(m.Header.StockLocate).Remove(m.OrderReferenceNumber)
		return m.Header.StockLocate
	case itch.OrderReplaceMessage:
		market.Book(m.Header.StockLocate).Replace(m.OriginalOrderReferenceNumber, m.NewOrderReferenceNumber, m.Shares, m.Price)
		return m.Header.StockLocate

	case itch.SystemEventMessage:
		return m.Header.StockLocate
	case itch.StockDirectoryMessage:
		return m.Header.StockLocate
	case itch.StockTradingActionMessage:
		return m.Header.StockLocate
	case itch.RegSHORestrictionMessage:
		return m.Header.StockLocate
	case itch.MarketParticipantPositionMessage:
		return m.Header.StockLocate
	case itch.MWCBDeclineLevelMessage:
		return m.Header.StockLocate
	case itch.MWCBStatusMessage:
		return m.Header.StockLocate
	case itch.IPOQuotingPeriodUpdateMessage:
		return m.Header.StockLocate
	case itch.LULDAuctionCollarMessage:
		return m.Header.StockLocate
	case itch.OperationalHaltMessage:
		return m.Header.StockLocate
	case itch.TradeMessage:
		return m.Header.StockLocate
	case itch.CrossTradeMessage:
		return m.Header.StockLocate
	case itch.BrokenTradeMessage:
		return m.Header.StockLocate
	case itch.NOIIMessage:
		return m.Header.StockLocate
	case itch.RPIIMessage:
		return m.Header.StockLocate
	case itch.DirectListingPriceDiscoveryMessage:
		return m.Header.StockLocate
	}
	return 0
}

func (d *Dispatcher) countError(err error) {
	if d.errs == nil {
		return
	}
	switch {
	case errors.Is(err, itch.ErrShortRead):
		d.errs.IncShortRead()
	case errors.Is(err, itch.ErrLengthMismatch):
		d.errs.IncLengthMismatch()
	case errors.Is(err, itch.ErrUnknownMessage):
		d.errs.IncUnknownMessage()
	case errors.Is(err, itch.ErrUnknownEnumValue):
		d.errs.IncUnknownEnumValue()
	case errors.Is(err, itch.ErrTruncatedPacket):
		d.errs.IncTruncatedPacket()
	}
}
