package itch

import "encoding/binary"

// BinaryWriter appends big-endian values to a growing byte slice. Sized
// writes pre-allocate via MsgType.WireSize so Encode<Name> never reallocs
// mid-message.
type BinaryWriter struct {
	buf []byte
}

// NewBinaryWriter allocates a writer with room for n bytes.
func NewBinaryWriter(n int) *BinaryWriter {
	return &BinaryWriter{buf: make([]byte, 0, n)}
}

func (w *BinaryWriter) Bytes() []byte { return w.buf }

func (w *BinaryWriter) PutUint8(v byte) { w.buf = append(w.buf, v) }

func (w *BinaryWriter) PutUint16(v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

func (w *BinaryWriter) PutUint32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

func (w *BinaryWriter) PutUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// PutTimestamp48 writes the low 48 bits of v as 6 big-endian bytes.
func (w *BinaryWriter) PutTimestamp48(v uint64) {
	var b [6]byte
	b[0] = byte(v >> 40)
	b[1] = byte(v >> 32)
	b[2] = byte(v >> 24)
	b[3] = byte(v >> 16)
	b[4] = byte(v >> 8)
	b[5] = byte(v)
	w.buf = append(w.buf, b[:]...)
}

func (w *BinaryWriter) PutSymbol(s Symbol) { w.buf = append(w.buf, s[:]...) }
func (w *BinaryWriter) PutMPID(m MPID)     { w.buf = append(w.buf, m[:]...) }

func (w *BinaryWriter) PutHeader(h MessageHeader) {
	w.PutUint16(h.StockLocate)
	w.PutUint16(h.TrackingNumber)
	w.PutTimestamp48(h.Timestamp)
}

func EncodeSystemEvent(m SystemEventMessage) []byte {
	w := NewBinaryWriter(MsgSystemEvent.WireSize())
	w.PutHeader(m.Header)
	w.PutUint8(byte(m.EventCode))
	return w.Bytes()
}

func EncodeStockDirectory(m StockDirectoryMessage) []byte {
	w := NewBinaryWriter(MsgStockDirectory.WireSize())
	w.PutHeader(m.Header)
	w.PutSymbol(m.Symbol)
	w.PutUint8(byte(m.MarketCategory))
	w.PutUint8(byte(m.FinancialStatus))
	w.PutUint32(m.RoundLotSize)
	w.PutUint8(byte(m.RoundLotsOnly))
	w.PutUint8(byte(m.IssueClassification))
	w.PutUint16(uint16(m.IssueSubType))
	w.PutUint8(byte(m.Authenticity))
	w.PutUint8(byte(m.ShortSaleThreshold))
	w.PutUint8(byte(m.IPOFlag))
	w.PutUint8(byte(m.LULDReferencePriceTier))
	w.PutUint8(byte(m.ETPFlag))
	w.PutUint32(m.ETPLeverageFactor)
	w.PutUint8(byte(m.InverseIndicator))
	return w.Bytes()
}

func EncodeStockTradingAction(m StockTradingActionMessage) []byte {
	w := NewBinaryWriter(MsgStockTradingAction.WireSize())
	w.PutHeader(m.Header)
	w.PutSymbol(m.Symbol)
	w.PutUint8(byte(m.TradingState))
	w.PutUint8(m.Reserved)
	w.PutUint32(uint32(m.Reason))
	return w.Bytes()
}

func EncodeRegSHORestriction(m RegSHORestrictionMessage) []byte {
	w := NewBinaryWriter(MsgRegSHORestriction.WireSize())
	w.PutHeader(m.Header)
	w.PutSymbol(m.Symbol)
	w.PutUint8(byte(m.Action))
	return w.Bytes()
}

func EncodeMarketParticipantPosition(m MarketParticipantPositionMessage) []byte {
	w := NewBinaryWriter(MsgMarketParticipantPosition.WireSize())
	w.PutHeader(m.Header)
	w.PutMPID(m.Attribution)
	w.PutSymbol(m.Symbol)
	w.PutUint8(byte(m.PrimaryMarketMaker))
	w.PutUint8(byte(m.MarketMakerMode))
	w.PutUint8(byte(m.ParticipantState))
	return w.Bytes()
}

func EncodeMWCBDeclineLevel(m MWCBDeclineLevelMessage) []byte {
	w := NewBinaryWriter(MsgMWCBDeclineLevel.WireSize())
	w.PutHeader(m.Header)
	w.PutUint64(m.Level1)
	w.PutUint64(m.Level2)
	w.PutUint64(m.Level3)
	return w.Bytes()
}

func EncodeMWCBStatus(m MWCBStatusMessage) []byte {
	w := NewBinaryWriter(MsgMWCBStatus.WireSize())
	w.PutHeader(m.Header)
	w.PutUint8(byte(m.BreachedLevel))
	return w.Bytes()
}

func EncodeIPOQuotingPeriodUpdate(m IPOQuotingPeriodUpdateMessage) []byte {
	w := NewBinaryWriter(MsgIPOQuotingPeriodUpdate.WireSize())
	w.PutHeader(m.Header)
	w.PutSymbol(m.Symbol)
	w.PutUint32(m.QuotationReleaseTime)
	w.PutUint8(byte(m.ReleaseQualifier))
	w.PutUint32(m.IPOPrice)
	return w.Bytes()
}

func EncodeLULDAuctionCollar(m LULDAuctionCollarMessage) []byte {
	w := NewBinaryWriter(MsgLULDAuctionCollar.WireSize())
	w.PutHeader(m.Header)
	w.PutSymbol(m.Symbol)
	w.PutUint32(m.ReferencePrice)
	w.PutUint32(m.UpperPrice)
	w.PutUint32(m.LowerPrice)
	w.PutUint32(m.ExtensionNumber)
	return w.Bytes()
}

func EncodeOperationalHalt(m OperationalHaltMessage) []byte {
	w := NewBinaryWriter(MsgOperationalHalt.WireSize())
	w.PutHeader(m.Header)
	w.PutSymbol(m.Symbol)
	w.PutUint8(byte(m.MarketCode))
	w.PutUint8(byte(m.Action))
	return w.Bytes()
}

func EncodeAddOrder(m AddOrderMessage) []byte {
	w := NewBinaryWriter(MsgAddOrder.WireSize())
	w.PutHeader(m.Header)
	w.PutUint64(m.OrderReferenceNumber)
	w.PutUint8(byte(m.Side))
	w.PutUint32(m.Shares)
	w.PutSymbol(m.Symbol)
	w.PutUint32(m.Price)
	return w.Bytes()
}

func EncodeAddOrderMPID(m AddOrderMPIDMessage) []byte {
	w := NewBinaryWriter(MsgAddOrderMPID.WireSize())
	w.PutHeader(m.Header)
	w.PutUint64(m.OrderReferenceNumber)
	w.PutUint8(byte(m.Side))
	w.PutUint32(m.Shares)
	w.PutSymbol(m.Symbol)
	w.PutUint32(m.Price)
	w.PutMPID(m.Attribution)
	return w.Bytes()
}

func EncodeOrderExecuted(m OrderExecutedMessage) []byte {
	w := NewBinaryWriter(MsgOrderExecuted.WireSize())
	w.PutHeader(m.Header)
	w.PutUint64(m.OrderReferenceNumber)
	w.PutUint32(m.ExecutedShares)
	w.PutUint64(m.MatchNumber)
	return w.Bytes()
}

func EncodeOrderExecutedWithPrice(m OrderExecutedWithPriceMessage) []byte {
	w := NewBinaryWriter(MsgOrderExecutedWithPrice.WireSize())
	w.PutHeader(m.Header)
	w.PutUint64(m.OrderReferenceNumber)
	w.PutUint32(m.ExecutedShares)
	w.PutUint64(m.MatchNumber)
	w.PutUint8(byte(m.Printable))
	w.PutUint32(m.ExecutionPrice)
	return w.Bytes()
}

func EncodeOrderCancel(m OrderCancelMessage) []byte {
	w := NewBinaryWriter(MsgOrderCancel.WireSize())
	w.PutHeader(m.Header)
	w.PutUint64(m.OrderReferenceNumber)
	w.PutUint32(m.CanceledShares)
	return w.Bytes()
}

func EncodeOrderDelete(m OrderDeleteMessage) []byte {
	w := NewBinaryWriter(MsgOrderDelete.WireSize())
	w.PutHeader(m.Header)
	w.PutUint64(m.OrderReferenceNumber)
	return w.Bytes()
}

func EncodeOrderReplace(m OrderReplaceMessage) []byte {
	w := NewBinaryWriter(MsgOrderReplace.WireSize())
	w.PutHeader(m.Header)
	w.PutUint64(m.OriginalOrderReferenceNumber)
	w.PutUint64(m.NewOrderReferenceNumber)
	w.PutUint32(m.Shares)
	w.PutUint32(m.Price)
	return w.Bytes()
}

func EncodeTrade(m TradeMessage) []byte {
	w := NewBinaryWriter(MsgTrade.WireSize())
	w.PutHeader(m.Header)
	w.PutUint64(m.OrderReferenceNumber)
	w.PutUint8(byte(m.Side))
	w.PutUint32(m.Shares)
	w.PutSymbol(m.Symbol)
	w.PutUint32(m.Price)
	w.PutUint64(m.MatchNumber)
	return w.Bytes()
}

func EncodeCrossTrade(m CrossTradeMessage) []byte {
	w := NewBinaryWriter(MsgCrossTrade.WireSize())
	w.PutHeader(m.Header)
	w.PutUint64(m.Shares)
	w.PutSymbol(m.Symbol)
	w.PutUint32(m.CrossPrice)
	w.PutUint64(m.MatchNumber)
	w.PutUint8(byte(m.Type))
	return w.Bytes()
}

func EncodeBrokenTrade(m BrokenTradeMessage) []byte {
	w := NewBinaryWriter(MsgBrokenTrade.WireSize())
	w.PutHeader(m.Header)
	w.PutUint64(m.MatchNumber)
	return w.Bytes()
}

func EncodeNOII(m NOIIMessage) []byte {
	w := NewBinaryWriter(MsgNOII.WireSize())
	w.PutHeader(m.Header)
	w.PutUint64(m.PairedShares)
	w.PutUint64(m.ImbalanceShares)
	w.PutUint8(byte(m.ImbalanceDirection))
	w.PutSymbol(m.Symbol)
	w.PutUint32(m.FarPrice)
	w.PutUint32(m.NearPrice)
	w.PutUint32(m.CurrentReferencePrice)
	w.PutUint8(byte(m.CrossType))
	w.PutUint8(byte(m.PriceVariationIndicator))
	return w.Bytes()
}

func EncodeRPII(m RPIIMessage) []byte {
	w := NewBinaryWriter(MsgRPII.WireSize())
	w.PutHeader(m.Header)
	w.PutSymbol(m.Symbol)
	w.PutUint8(byte(m.InterestFlag))
	return w.Bytes()
}

func EncodeDirectListingPriceDiscovery(m DirectListingPriceDiscoveryMessage) []byte {
	w := NewBinaryWriter(MsgDirectListingPriceDiscovery.WireSize())
	w.PutHeader(m.Header)
	w.PutSymbol(m.Symbol)
	w.PutUint8(byte(m.OpenEligibility))
	w.PutUint32(m.MinAllowedPrice)
	w.PutUint32(m.MaxAllowedPrice)
	w.PutUint32(m.NearExecutionPrice)
	w.PutUint64(m.NearExecutionTime)
	w.PutUint32(m.LowerPriceRangeCollar)
	w.PutUint32(m.UpperPriceRangeCollar)
	return w.Bytes()
}

// Encode dispatches on the concrete type of msg (as produced by Decode) and
// returns its wire encoding including the leading type tag byte, so the
// result can be written directly into a MoldUDP64 message block.
func Encode(msg any) ([]byte, error) {
	var tag MsgType
	var payload []byte
	switch v := msg.(type) {
	case SystemEventMessage:
		tag, payload = MsgSystemEvent, EncodeSystemEvent(v)
	case StockDirectoryMessage:
		tag, payload = MsgStockDirectory, EncodeStockDirectory(v)
	case StockTradingActionMessage:
		tag, payload = MsgStockTradingAction, EncodeStockTradingAction(v)
	case RegSHORestrictionMessage:
		tag, payload = MsgRegSHORestriction, EncodeRegSHORestriction(v)
	case MarketParticipantPositionMessage:
		tag, payload = MsgMarketParticipantPosition, EncodeMarketParticipantPosition(v)
	case MWCBDeclineLevelMessage:
		tag, payload = MsgMWCBDeclineLevel, EncodeMWCBDeclineLevel(v)
	case MWCBStatusMessage:
		tag, payload = MsgMWCBStatus, EncodeMWCBStatus(v)
	case IPOQuotingPeriodUpdateMessage:
		tag, payload = MsgIPOQuotingPeriodUpdate, EncodeIPOQuotingPeriodUpdate(v)
	case LULDAuctionCollarMessage:
		tag, payload = MsgLULDAuctionCollar, EncodeLULDAuctionCollar(v)
	case OperationalHaltMessage:
		tag, payload = MsgOperationalHalt, EncodeOperationalHalt(v)
	case AddOrderMessage:
		tag, payload = MsgAddOrder, EncodeAddOrder(v)
	case AddOrderMPIDMessage:
		tag, payload = MsgAddOrderMPID, EncodeAddOrderMPID(v)
	case OrderExecutedMessage:
		tag, payload = MsgOrderExecuted, EncodeOrderExecuted(v)
	case OrderExecutedWithPriceMessage:
		tag, payload = MsgOrderExecutedWithPrice, EncodeOrderExecutedWithPrice(v)
	case OrderCancelMessage:
		tag, payload = MsgOrderCancel, EncodeOrderCancel(v)
	case OrderDeleteMessage:
		tag, payload = MsgOrderDelete, EncodeOrderDelete(v)
	case OrderReplaceMessage:
		tag, payload = MsgOrderReplace, EncodeOrderReplace(v)
	case TradeMessage:
		tag, payload = MsgTrade, EncodeTrade(v)
	case CrossTradeMessage:
		tag, payload = MsgCrossTrade, EncodeCrossTrade(v)
	case BrokenTradeMessage:
		tag, payload = MsgBrokenTrade, EncodeBrokenTrade(v)
	case NOIIMessage:
		tag, payload = MsgNOII, EncodeNOII(v)
	case RPIIMessage:
		tag, payload = MsgRPII, EncodeRPII(v)
	case DirectListingPriceDiscoveryMessage:
		tag, payload = MsgDirectListingPriceDiscovery, EncodeDirectListingPriceDiscovery(v)
	default:
		return nil, ErrUnknownMessage
	}
	out := make([]byte, 0, len(payload)+1)
	out = append(out, byte(tag))
	out = append(out, payload...)
	return out, nil
}
