package itch

// Each Decode<Name> function consumes exactly one message's payload bytes
// (type tag already stripped by the caller) and returns the decoded struct.
// Field order and sizes are grounded byte-for-byte on
// original_source/src/itch/parser.cpp. A returned *UnknownEnumValueError
// means a coded-enum field held a wire value outside its closed set; the
// struct is still fully populated from the bytes present and decoding of
// the rest of the message proceeds — callers log/count the error and
// continue, per the non-fatal enum-value policy.

func DecodeSystemEvent(b []byte) (SystemEventMessage, error) {
	var m SystemEventMessage
	r := NewBinaryReader(b)
	var err error
	if m.Header, err = r.Header(); err != nil {
		return m, err
	}
	code, err := r.Uint8()
	if err != nil {
		return m, err
	}
	m.EventCode = EventCode(code)
	if !m.EventCode.Valid() {
		return m, &UnknownEnumValueError{Field: "EventCode", Value: code, Type: MsgSystemEvent}
	}
	return m, nil
}

func DecodeStockDirectory(b []byte) (StockDirectoryMessage, error) {
	var m StockDirectoryMessage
	r := NewBinaryReader(b)
	var err error
	if m.Header, err = r.Header(); err != nil {
		return m, err
	}
	if m.Symbol, err = r.Symbol(); err != nil {
		return m, err
	}
	mc, err := r.Uint8()
	if err != nil {
		return m, err
	}
	m.MarketCategory = MarketCategory(mc)
	fs, err := r.Uint8()
	if err != nil {
		return m, err
	}
	m.FinancialStatus = FinancialStatus(fs)
	if m.RoundLotSize, err = r.Uint32(); err != nil {
		return m, err
	}
	rlo, err := r.Uint8()
	if err != nil {
		return m, err
	}
	m.RoundLotsOnly = RoundLotsOnly(rlo)
	ic, err := r.Uint8()
	if err != nil {
		return m, err
	}
	m.IssueClassification = IssueClassification(ic)
	ist, err := r.Uint16()
	if err != nil {
		return m, err
	}
	m.IssueSubType = IssueSubType(ist)
	auth, err := r.Uint8()
	if err != nil {
		return m, err
	}
	m.Authenticity = Authenticity(auth)
	sst, err := r.Uint8()
	if err != nil {
		return m, err
	}
	m.ShortSaleThreshold = ShortSaleThresholdIndicator(sst)
	ipo, err := r.Uint8()
	if err != nil {
		return m, err
	}
	m.IPOFlag = IPOFlag(ipo)
	luld, err := r.Uint8()
	if err != nil {
		return m, err
	}
	m.LULDReferencePriceTier = LULDReferencePriceTier(luld)
	etp, err := r.Uint8()
	if err != nil {
		return m, err
	}
	m.ETPFlag = ETPFlag(etp)
	if m.ETPLeverageFactor, err = r.Uint32(); err != nil {
		return m, err
	}
	inv, err := r.Uint8()
	if err != nil {
		return m, err
	}
	m.InverseIndicator = InverseIndicator(inv)

	switch {
	case !m.MarketCategory.Valid():
		return m, &UnknownEnumValueError{Field: "MarketCategory", Value: mc, Type: MsgStockDirectory}
	case !m.FinancialStatus.Valid():
		return m, &UnknownEnumValueError{Field: "FinancialStatus", Value: fs, Type: MsgStockDirectory}
	case !m.RoundLotsOnly.Valid():
		return m, &UnknownEnumValueError{Field: "RoundLotsOnly", Value: rlo, Type: MsgStockDirectory}
	case !m.IssueClassification.Valid():
		return m, &UnknownEnumValueError{Field: "IssueClassification", Value: ic, Type: MsgStockDirectory}
	case !m.IssueSubType.Valid():
		return m, &UnknownEnumValueError{Field: "IssueSubType", Value: byte(ist), Type: MsgStockDirectory}
	case !m.Authenticity.Valid():
		return m, &UnknownEnumValueError{Field: "Authenticity", Value: auth, Type: MsgStockDirectory}
	case !m.ShortSaleThreshold.Valid():
		return m, &UnknownEnumValueError{Field: "ShortSaleThreshold", Value: sst, Type: MsgStockDirectory}
	case !m.IPOFlag.Valid():
		return m, &UnknownEnumValueError{Field: "IPOFlag", Value: ipo, Type: MsgStockDirectory}
	case !m.LULDReferencePriceTier.Valid():
		return m, &UnknownEnumValueError{Field: "LULDReferencePriceTier", Value: luld, Type: MsgStockDirectory}
	case !m.ETPFlag.Valid():
		return m, &UnknownEnumValueError{Field: "ETPFlag", Value: etp, Type: MsgStockDirectory}
	case !m.InverseIndicator.Valid():
		return m, &UnknownEnumValueError{Field: "InverseIndicator", Value: inv, Type: MsgStockDirectory}
	}
	return m, nil
}

func DecodeStockTradingAction(b []byte) (StockTradingActionMessage, error) {
	var m StockTradingActionMessage
	r := NewBinaryReader(b)
	var err error
	if m.Header, err = r.Header(); err != nil {
		return m, err
	}
	if m.Symbol, err = r.Symbol(); err != nil {
		return m, err
	}
	ts, err := r.Uint8()
	if err != nil {
		return m, err
	}
	m.TradingState = TradingState(ts)
	if m.Reserved, err = r.Uint8(); err != nil {
		return m, err
	}
	reason, err := r.Uint32()
	if err != nil {
		return m, err
	}
	m.Reason = TradingStateReason(reason)
	if !m.TradingState.Valid() {
		return m, &UnknownEnumValueError{Field: "TradingState", Value: ts, Type: MsgStockTradingAction}
	}
	if !m.Reason.Valid() {
		return m, &UnknownEnumValueError{Field: "Reason", Value: byte(reason), Type: MsgStockTradingAction}
	}
	return m, nil
}

func DecodeRegSHORestriction(b []byte) (RegSHORestrictionMessage, error) {
	var m RegSHORestrictionMessage
	r := NewBinaryReader(b)
	var err error
	if m.Header, err = r.Header(); err != nil {
		return m, err
	}
	if m.Symbol, err = r.Symbol(); err != nil {
		return m, err
	}
	a, err := r.Uint8()
	if err != nil {
		return m, err
	}
	m.Action = RegSHOAction(a)
	if !m.Action.Valid() {
		return m, &UnknownEnumValueError{Field: "Action", Value: a, Type: MsgRegSHORestriction}
	}
	return m, nil
}

func DecodeMarketParticipantPosition(b []byte) (MarketParticipantPositionMessage, error) {
	var m MarketParticipantPositionMessage
	r := NewBinaryReader(b)
	var err error
	if m.Header, err = r.Header(); err != nil {
		return m, err
	}
	if m.Attribution, err = r.MPID(); err != nil {
		return m, err
	}
	if m.Symbol, err = r.Symbol(); err != nil {
		return m, err
	}
	pmm, err := r.Uint8()
	if err != nil {
		return m, err
	}
	m.PrimaryMarketMaker = PrimaryMarketMaker(pmm)
	mode, err := r.Uint8()
	if err != nil {
		return m, err
	}
	m.MarketMakerMode = MarketMakerMode(mode)
	state, err := r.Uint8()
	if err != nil {
		return m, err
	}
	m.ParticipantState = MarketParticipantState(state)

	switch {
	case !m.PrimaryMarketMaker.Valid():
		return m, &UnknownEnumValueError{Field: "PrimaryMarketMaker", Value: pmm, Type: MsgMarketParticipantPosition}
	case !m.MarketMakerMode.Valid():
		return m, &UnknownEnumValueError{Field: "MarketMakerMode", Value: mode, Type: MsgMarketParticipantPosition}
	case !m.ParticipantState.Valid():
		return m, &UnknownEnumValueError{Field: "ParticipantState", Value: state, Type: MsgMarketParticipantPosition}
	}
	return m, nil
}

func DecodeMWCBDeclineLevel(b []byte) (MWCBDeclineLevelMessage, error) {
	var m MWCBDeclineLevelMessage
	r := NewBinaryReader(b)
	var err error
	if m.Header, err = r.Header(); err != nil {
		return m, err
	}
	if m.Level1, err = r.Uint64(); err != nil {
		return m, err
	}
	if m.Level2, err = r.Uint64(); err != nil {
		return m, err
	}
	if m.Level3, err = r.Uint64(); err != nil {
		return m, err
	}
	return m, nil
}

func DecodeMWCBStatus(b []byte) (MWCBStatusMessage, error) {
	var m MWCBStatusMessage
	r := NewBinaryReader(b)
	var err error
	if m.Header, err = r.Header(); err != nil {
		return m, err
	}
	lvl, err := r.Uint8()
	if err != nil {
		return m, err
	}
	m.BreachedLevel = MWCBLevel(lvl)
	if !m.BreachedLevel.Valid() {
		return m, &UnknownEnumValueError{Field: "BreachedLevel", Value: lvl, Type: MsgMWCBStatus}
	}
	return m, nil
}

func DecodeIPOQuotingPeriodUpdate(b []byte) (IPOQuotingPeriodUpdateMessage, error) {
	var m IPOQuotingPeriodUpdateMessage
	r := NewBinaryReader(b)
	var err error
	if m.Header, err = r.Header(); err != nil {
		return m, err
	}
	if m.Symbol, err = r.Symbol(); err != nil {
		return m, err
	}
	if m.QuotationReleaseTime, err = r.Uint32(); err != nil {
		return m, err
	}
	q, err := r.Uint8()
	if err != nil {
		return m, err
	}
	m.ReleaseQualifier = IPOQuotationReleaseQualifier(q)
	if m.IPOPrice, err = r.Uint32(); err != nil {
		return m, err
	}
	if !m.ReleaseQualifier.Valid() {
		return m, &UnknownEnumValueError{Field: "ReleaseQualifier", Value: q, Type: MsgIPOQuotingPeriodUpdate}
	}
	return m, nil
}

func DecodeLULDAuctionCollar(b []byte) (LULDAuctionCollarMessage, error) {
	var m LULDAuctionCollarMessage
	r := NewBinaryReader(b)
	var err error
	if m.Header, err = r.Header(); err != nil {
		return m, err
	}
	if m.Symbol, err = r.Symbol(); err != nil {
		return m, err
	}
	if m.ReferencePrice, err = r.Uint32(); err != nil {
		return m, err
	}
	if m.UpperPrice, err = r.Uint32(); err != nil {
		return m, err
	}
	if m.LowerPrice, err = r.Uint32(); err != nil {
		return m, err
	}
	if m.ExtensionNumber, err = r.Uint32(); err != nil {
		return m, err
	}
	return m, nil
}

func DecodeOperationalHalt(b []byte) (OperationalHaltMessage, error) {
	var m OperationalHaltMessage
	r := NewBinaryReader(b)
	var err error
	if m.Header, err = r.Header(); err != nil {
		return m, err
	}
	if m.Symbol, err = r.Symbol(); err != nil {
		return m, err
	}
	mc, err := r.Uint8()
	if err != nil {
		return m, err
	}
	m.MarketCode = MarketCode(mc)
	a, err := r.Uint8()
	if err != nil {
		return m, err
	}
	m.Action = OperationalHaltAction(a)

	switch {
	case !m.MarketCode.Valid():
		return m, &UnknownEnumValueError{Field: "MarketCode", Value: mc, Type: MsgOperationalHalt}
	case !m.Action.Valid():
		return m, &UnknownEnumValueError{Field: "Action", Value: a, Type: MsgOperationalHalt}
	}
	return m, nil
}

func DecodeAddOrder(b []byte) (AddOrderMessage, error) {
	var m AddOrderMessage
	r := NewBinaryReader(b)
	var err error
	if m.Header, err = r.Header(); err != nil {
		return m, err
	}
	if m.OrderReferenceNumber, err = r.Uint64(); err != nil {
		return m, err
	}
	side, err := r.Uint8()
	if err != nil {
		return m, err
	}
	m.Side = Side(side)
	if m.Shares, err = r.Uint32(); err != nil {
		return m, err
	}
	if m.Symbol, err = r.Symbol(); err != nil {
		return m, err
	}
	if m.Price, err = r.Uint32(); err != nil {
		return m, err
	}
	if !m.Side.Valid() {
		return m, &UnknownEnumValueError{Field: "Side", Value: side, Type: MsgAddOrder}
	}
	return m, nil
}

func DecodeAddOrderMPID(b []byte) (AddOrderMPIDMessage, error) {
	var m AddOrderMPIDMessage
	r := NewBinaryReader(b)
	var err error
	if m.Header, err = r.Header(); err != nil {
		return m, err
	}
	if m.OrderReferenceNumber, err = r.Uint64(); err != nil {
		return m, err
	}
	side, err := r.Uint8()
	if err != nil {
		return m, err
	}
	m.Side = Side(side)
	if m.Shares, err = r.Uint32(); err != nil {
		return m, err
	}
	if m.Symbol, err = r.Symbol(); err != nil {
		return m, err
	}
	if m.Price, err = r.Uint32(); err != nil {
		return m, err
	}
	if m.Attribution, err = r.MPID(); err != nil {
		return m, err
	}
	if !m.Side.Valid() {
		return m, &UnknownEnumValueError{Field: "Side", Value: side, Type: MsgAddOrderMPID}
	}
	return m, nil
}

func DecodeOrderExecuted(b []byte) (OrderExecutedMessage, error) {
	var m OrderExecutedMessage
	r := NewBinaryReader(b)
	var err error
	if m.Header, err = r.Header(); err != nil {
		return m, err
	}
	if m.OrderReferenceNumber, err = r.Uint64(); err != nil {
		return m, err
	}
	if m.ExecutedShares, err = r.Uint32(); err != nil {
		return m, err
	}
	if m.MatchNumber, err = r.Uint64(); err != nil {
		return m, err
	}
	return m, nil
}

func DecodeOrderExecutedWithPrice(b []byte) (OrderExecutedWithPriceMessage, error) {
	var m OrderExecutedWithPriceMessage
	r := NewBinaryReader(b)
	var err error
	if m.Header, err = r.Header(); err != nil {
		return m, err
	}
	if m.OrderReferenceNumber, err = r.Uint64(); err != nil {
		return m, err
	}
	if m.ExecutedShares, err = r.Uint32(); err != nil {
		return m, err
	}
	if m.MatchNumber, err = r.Uint64(); err != nil {
		return m, err
	}
	p, err := r.Uint8()
	if err != nil {
		return m, err
	}
	m.Printable = Printable(p)
	if m.ExecutionPrice, err = r.Uint32(); err != nil {
		return m, err
	}
	if !m.Printable.Valid() {
		return m, &UnknownEnumValueError{Field: "Printable", Value: p, Type: MsgOrderExecutedWithPrice}
	}
	return m, nil
}

func DecodeOrderCancel(b []byte) (OrderCancelMessage, error) {
	var m OrderCancelMessage
	r := NewBinaryReader(b)
	var err error
	if m.Header, err = r.Header(); err != nil {
		return m, err
	}
	if m.OrderReferenceNumber, err = r.Uint64(); err != nil {
		return m, err
	}
	if m.CanceledShares, err = r.Uint32(); err != nil {
		return m, err
	}
	return m, nil
}

func DecodeOrderDelete(b []byte) (OrderDeleteMessage, error) {
	var m OrderDeleteMessage
	r := NewBinaryReader(b)
	var err error
	if m.Header, err = r.Header(); err != nil {
		return m, err
	}
	if m.OrderReferenceNumber, err = r.Uint64(); err != nil {
		return m, err
	}
	return m, nil
}

func DecodeOrderReplace(b []byte) (OrderReplaceMessage, error) {
	var m OrderReplaceMessage
	r := NewBinaryReader(b)
	var err error
	if m.Header, err = r.Header(); err != nil {
		return m, err
	}
	if m.OriginalOrderReferenceNumber, err = r.Uint64(); err != nil {
		return m, err
	}
	if m.NewOrderReferenceNumber, err = r.Uint64(); err != nil {
		return m, err
	}
	if m.Shares, err = r.Uint32(); err != nil {
		return m, err
	}
	if m.Price, err = r.Uint32(); err != nil {
		return m, err
	}
	return m, nil
}

func DecodeTrade(b []byte) (TradeMessage, error) {
	var m TradeMessage
	r := NewBinaryReader(b)
	var err error
	if m.Header, err = r.Header(); err != nil {
		return m, err
	}
	if m.OrderReferenceNumber, err = r.Uint64(); err != nil {
		return m, err
	}
	side, err := r.Uint8()
	if err != nil {
		return m, err
	}
	m.Side = Side(side)
	if m.Shares, err = r.Uint32(); err != nil {
		return m, err
	}
	if m.Symbol, err = r.Symbol(); err != nil {
		return m, err
	}
	if m.Price, err = r.Uint32(); err != nil {
		return m, err
	}
	if m.MatchNumber, err = r.Uint64(); err != nil {
		return m, err
	}
	return m, nil
}

func DecodeCrossTrade(b []byte) (CrossTradeMessage, error) {
	var m CrossTradeMessage
	r := NewBinaryReader(b)
	var err error
	if m.Header, err = r.Header(); err != nil {
		return m, err
	}
	if m.Shares, err = r.Uint64(); err != nil {
		return m, err
	}
	if m.Symbol, err = r.Symbol(); err != nil {
		return m, err
	}
	if m.CrossPrice, err = r.Uint32(); err != nil {
		return m, err
	}
	if m.MatchNumber, err = r.Uint64(); err != nil {
		return m, err
	}
	t, err := r.Uint8()
	if err != nil {
		return m, err
	}
	m.Type = CrossType(t)
	if !m.Type.Valid() {
		return m, &UnknownEnumValueError{Field: "Type", Value: t, Type: MsgCrossTrade}
	}
	return m, nil
}

func DecodeBrokenTrade(b []byte) (BrokenTradeMessage, error) {
	var m BrokenTradeMessage
	r := NewBinaryReader(b)
	var err error
	if m.Header, err = r.Header(); err != nil {
		return m, err
	}
	if m.MatchNumber, err = r.Uint64(); err != nil {
		return m, err
	}
	return m, nil
}

func DecodeNOII(b []byte) (NOIIMessage, error) {
	var m NOIIMessage
	r := NewBinaryReader(b)
	var err error
	if m.Header, err = r.Header(); err != nil {
		return m, err
	}
	if m.PairedShares, err = r.Uint64(); err != nil {
		return m, err
	}
	if m.ImbalanceShares, err = r.Uint64(); err != nil {
		return m, err
	}
	dir, err := r.Uint8()
	if err != nil {
		return m, err
	}
	m.ImbalanceDirection = ImbalanceDirection(dir)
	if m.Symbol, err = r.Symbol(); err != nil {
		return m, err
	}
	if m.FarPrice, err = r.Uint32(); err != nil {
		return m, err
	}
	if m.NearPrice, err = r.Uint32(); err != nil {
		return m, err
	}
	if m.CurrentReferencePrice, err = r.Uint32(); err != nil {
		return m, err
	}
	ct, err := r.Uint8()
	if err != nil {
		return m, err
	}
	m.CrossType = CrossType(ct)
	pvi, err := r.Uint8()
	if err != nil {
		return m, err
	}
	m.PriceVariationIndicator = PriceVariationIndicator(pvi)

	switch {
	case !m.ImbalanceDirection.Valid():
		return m, &UnknownEnumValueError{Field: "ImbalanceDirection", Value: dir, Type: MsgNOII}
	case !m.CrossType.Valid():
		return m, &UnknownEnumValueError{Field: "CrossType", Value: ct, Type: MsgNOII}
	case !m.PriceVariationIndicator.Valid():
		return m, &UnknownEnumValueError{Field: "PriceVariationIndicator", Value: pvi, Type: MsgNOII}
	}
	return m, nil
}

func DecodeRPII(b []byte) (RPIIMessage, error) {
	var m RPIIMessage
	r := NewBinaryReader(b)
	var err error
	if m.Header, err = r.Header(); err != nil {
		return m, err
	}
	if m.Symbol, err = r.Symbol(); err != nil {
		return m, err
	}
	f, err := r.Uint8()
	if err != nil {
		return m, err
	}
	m.InterestFlag = InterestFlag(f)
	if !m.InterestFlag.Valid() {
		return m, &UnknownEnumValueError{Field: "InterestFlag", Value: f, Type: MsgRPII}
	}
	return m, nil
}

// Decode dispatches on tag and returns the decoded message as the concrete
// per-type struct boxed in an any, for a consumer that dispatches further by
// type switch. Returns *UnknownMessageError for a tag outside the 23 known
// types. Grounded on original_source/src/main.cpp's process_packet switch.
func Decode(tag byte, payload []byte) (any, error) {
	t := MsgType(tag)
	if size := t.WireSize(); size != 0 && len(payload)+1 != size {
		return nil, &LengthMismatchError{Type: t, Declared: len(payload) + 1, Actual: size}
	}
	switch MsgType(tag) {
	case MsgSystemEvent:
		return DecodeSystemEvent(payload)
	case MsgStockDirectory:
		return DecodeStockDirectory(payload)
	case MsgStockTradingAction:
		return DecodeStockTradingAction(payload)
	case MsgRegSHORestriction:
		return DecodeRegSHORestriction(payload)
	case MsgMarketParticipantPosition:
		return DecodeMarketParticipantPosition(payload)
	case MsgMWCBDeclineLevel:
		return DecodeMWCBDeclineLevel(payload)
	case MsgMWCBStatus:
		return DecodeMWCBStatus(payload)
	case MsgIPOQuotingPeriodUpdate:
		return DecodeIPOQuotingPeriodUpdate(payload)
	case MsgLULDAuctionCollar:
		return DecodeLULDAuctionCollar(payload)
	case MsgOperationalHalt:
		return DecodeOperationalHalt(payload)
	case MsgAddOrder:
		return DecodeAddOrder(payload)
	case MsgAddOrderMPID:
		return DecodeAddOrderMPID(payload)
	case MsgOrderExecuted:
		return DecodeOrderExecuted(payload)
	case MsgOrderExecutedWithPrice:
		return DecodeOrderExecutedWithPrice(payload)
	case MsgOrderCancel:
		return DecodeOrderCancel(payload)
	case MsgOrderDelete:
		return DecodeOrderDelete(payload)
	case MsgOrderReplace:
		return DecodeOrderReplace(payload)
	case MsgTrade:
		return DecodeTrade(payload)
	case MsgCrossTrade:
		return DecodeCrossTrade(payload)
	case MsgBrokenTrade:
		return DecodeBrokenTrade(payload)
	case MsgNOII:
		return DecodeNOII(payload)
	case MsgRPII:
		return DecodeRPII(payload)
	case MsgDirectListingPriceDiscovery:
		return DecodeDirectListingPriceDiscovery(payload)
	default:
		return nil, &UnknownMessageError{Tag: tag}
	}
}

func DecodeDirectListingPriceDiscovery(b []byte) (DirectListingPriceDiscoveryMessage, error) {
	var m DirectListingPriceDiscoveryMessage
	r := NewBinaryReader(b)
	var err error
	if m.Header, err = r.Header(); err != nil {
		return m, err
	}
	if m.Symbol, err = r.Symbol(); err != nil {
		return m, err
	}
	e, err := r.Uint8()
	if err != nil {
		return m, err
	}
	m.OpenEligibility = OpenEligibility(e)
	if m.MinAllowedPrice, err = r.Uint32(); err != nil {
		return m, err
	}
	if m.MaxAllowedPrice, err = r.Uint32(); err != nil {
		return m, err
	}
	if m.NearExecutionPrice, err = r.Uint32(); err != nil {
		return m, err
	}
	if m.NearExecutionTime, err = r.Uint64(); err != nil {
		return m, err
	}
	if m.LowerPriceRangeCollar, err = r.Uint32(); err != nil {
		return m, err
	}
	if m.UpperPriceRangeCollar, err = r.Uint32(); err != nil {
		return m, err
	}
	if !m.OpenEligibility.Valid() {
		return m, &UnknownEnumValueError{Field: "OpenEligibility", Value: e, Type: MsgDirectListingPriceDiscovery}
	}
	return m, nil
}
