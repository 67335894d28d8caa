package itch

import "time"

// MsgType identifies one of the 23 wire message types by its ASCII tag byte.
type MsgType byte

const (
	MsgSystemEvent                MsgType = 'S'
	MsgStockDirectory             MsgType = 'R'
	MsgStockTradingAction         MsgType = 'H'
	MsgRegSHORestriction          MsgType = 'Y'
	MsgMarketParticipantPosition  MsgType = 'L'
	MsgMWCBDeclineLevel           MsgType = 'V'
	MsgMWCBStatus                 MsgType = 'W'
	MsgIPOQuotingPeriodUpdate     MsgType = 'K'
	MsgLULDAuctionCollar          MsgType = 'J'
	MsgOperationalHalt            MsgType = 'h'
	MsgAddOrder                   MsgType = 'A'
	MsgAddOrderMPID               MsgType = 'F'
	MsgOrderExecuted              MsgType = 'E'
	MsgOrderExecutedWithPrice     MsgType = 'C'
	MsgOrderCancel                MsgType = 'X'
	MsgOrderDelete                MsgType = 'D'
	MsgOrderReplace               MsgType = 'U'
	MsgTrade                      MsgType = 'P'
	MsgCrossTrade                 MsgType = 'Q'
	MsgBrokenTrade                MsgType = 'B'
	MsgNOII                       MsgType = 'I'
	MsgRPII                       MsgType = 'N'
	MsgDirectListingPriceDiscovery MsgType = 'O'
)

// String returns the message type's name, for logging.
func (t MsgType) String() string {
	switch t {
	case MsgSystemEvent:
		return "SystemEvent"
	case MsgStockDirectory:
		return "StockDirectory"
	case MsgStockTradingAction:
		return "StockTradingAction"
	case MsgRegSHORestriction:
		return "RegSHORestriction"
	case MsgMarketParticipantPosition:
		return "MarketParticipantPosition"
	case MsgMWCBDeclineLevel:
		return "MWCBDeclineLevel"
	case MsgMWCBStatus:
		return "MWCBStatus"
	case MsgIPOQuotingPeriodUpdate:
		return "IPOQuotingPeriodUpdate"
	case MsgLULDAuctionCollar:
		return "LULDAuctionCollar"
	case MsgOperationalHalt:
		return "OperationalHalt"
	case MsgAddOrder:
		return "AddOrder"
	case MsgAddOrderMPID:
		return "AddOrderMPID"
	case MsgOrderExecuted:
		return "OrderExecuted"
	case MsgOrderExecutedWithPrice:
		return "OrderExecutedWithPrice"
	case MsgOrderCancel:
		return "OrderCancel"
	case MsgOrderDelete:
		return "OrderDelete"
	case MsgOrderReplace:
		return "OrderReplace"
	case MsgTrade:
		return "Trade"
	case MsgCrossTrade:
		return "CrossTrade"
	case MsgBrokenTrade:
		return "BrokenTrade"
	case MsgNOII:
		return "NOII"
	case MsgRPII:
		return "RPII"
	case MsgDirectListingPriceDiscovery:
		return "DirectListingPriceDiscovery"
	default:
		return "Unknown"
	}
}

// WireSize returns the fixed payload size in bytes (including the type tag)
// for a known message type, or 0 if t is not one of the 23 known types.
func (t MsgType) WireSize() int {
	switch t {
	case MsgSystemEvent:
		return 12
	case MsgStockDirectory:
		return 39
	case MsgStockTradingAction:
		return 25
	case MsgRegSHORestriction:
		return 20
	case MsgMarketParticipantPosition:
		return 26
	case MsgMWCBDeclineLevel:
		return 35
	case MsgMWCBStatus:
		return 12
	case MsgIPOQuotingPeriodUpdate:
		return 28
	case MsgLULDAuctionCollar:
		return 35
	case MsgOperationalHalt:
		return 21
	case MsgAddOrder:
		return 36
	case MsgAddOrderMPID:
		return 40
	case MsgOrderExecuted:
		return 31
	case MsgOrderExecutedWithPrice:
		return 36
	case MsgOrderCancel:
		return 23
	case MsgOrderDelete:
		return 19
	case MsgOrderReplace:
		return 35
	case MsgTrade:
		return 44
	case MsgCrossTrade:
		return 40
	case MsgBrokenTrade:
		return 19
	case MsgNOII:
		return 50
	case MsgRPII:
		return 20
	case MsgDirectListingPriceDiscovery:
		return 48
	default:
		return 0
	}
}

// MessageHeader is the common 11-byte prefix of every message payload.
type MessageHeader struct {
	StockLocate    uint16
	TrackingNumber uint16
	Timestamp      uint64 // nanoseconds since midnight, 48 significant bits
}

// Symbol is a right-space-padded 8-byte ticker.
type Symbol [8]byte

// MPID is a right-space-padded 4-byte market participant identifier.
type MPID [4]byte

// SymbolFromString right-pads a ticker to the fixed 8-byte wire width.
func SymbolFromString(s string) Symbol {
	var b Symbol
	for i := range b {
		b[i] = ' '
	}
	copy(b[:], s)
	return b
}

// MPIDFromString right-pads a market participant identifier to the fixed
// 4-byte wire width.
func MPIDFromString(s string) MPID {
	var b MPID
	for i := range b {
		b[i] = ' '
	}
	copy(b[:], s)
	return b
}

// Trimmed returns the symbol with trailing spaces removed.
func (s Symbol) Trimmed() string {
	n := len(s)
	for n > 0 && s[n-1] == ' ' {
		n--
	}
	return string(s[:n])
}

// Trimmed returns the MPID with trailing spaces removed.
func (m MPID) Trimmed() string {
	n := len(m)
	for n > 0 && m[n-1] == ' ' {
		n--
	}
	return string(m[:n])
}

// Side is the bid/ask side of a resting order.
type Side byte

const (
	SideBuy  Side = 'B'
	SideSell Side = 'S'
)

func (s Side) Valid() bool { return s == SideBuy || s == SideSell }

// CrossType identifies the kind of NASDAQ cross that produced a trade.
type CrossType byte

const (
	CrossOpening              CrossType = 'O'
	CrossClosing              CrossType = 'C'
	CrossIPOHalt              CrossType = 'H'
	CrossExtendedTradingClose CrossType = 'A'
)

func (c CrossType) Valid() bool {
	switch c {
	case CrossOpening, CrossClosing, CrossIPOHalt, CrossExtendedTradingClose:
		return true
	}
	return false
}

// EventCode is the system-wide event signalled by a SystemEvent message.
type EventCode byte

const (
	EventStartOfMessages  EventCode = 'O'
	EventStartOfSystem    EventCode = 'S'
	EventStartOfMarket    EventCode = 'Q'
	EventEndOfMarket      EventCode = 'M'
	EventEndOfSystem      EventCode = 'E'
	EventEndOfMessages    EventCode = 'C'
)

func (e EventCode) Valid() bool {
	switch e {
	case EventStartOfMessages, EventStartOfSystem, EventStartOfMarket, EventEndOfMarket, EventEndOfSystem, EventEndOfMessages:
		return true
	}
	return false
}

// MarketCategory classifies the listing market of a security.
type MarketCategory byte

const (
	MarketNasdaqGlobalSelect MarketCategory = 'Q'
	MarketNasdaqGlobalMarket MarketCategory = 'G'
	MarketNasdaqCapitalMarket MarketCategory = 'S'
	MarketNYSE               MarketCategory = 'N'
	MarketNYSEAmerican       MarketCategory = 'A'
	MarketNYSEArca           MarketCategory = 'P'
	MarketBATS               MarketCategory = 'Z'
	MarketIEX                MarketCategory = 'V'
	MarketNotAvailable       MarketCategory = ' '
)

func (m MarketCategory) Valid() bool {
	switch m {
	case MarketNasdaqGlobalSelect, MarketNasdaqGlobalMarket, MarketNasdaqCapitalMarket,
		MarketNYSE, MarketNYSEAmerican, MarketNYSEArca, MarketBATS, MarketIEX, MarketNotAvailable:
		return true
	}
	return false
}

// FinancialStatus reports SEC compliance status for a security.
type FinancialStatus byte

const (
	FinancialDeficient                     FinancialStatus = 'D'
	FinancialDelinquent                    FinancialStatus = 'E'
	FinancialBankrupt                      FinancialStatus = 'Q'
	FinancialSuspended                     FinancialStatus = 'S'
	FinancialDeficientAndBankrupt          FinancialStatus = 'G'
	FinancialDeficientAndDelinquent        FinancialStatus = 'H'
	FinancialDeficientDelinquentAndBankrupt FinancialStatus = 'K'
	FinancialCreationsSuspended            FinancialStatus = 'C'
	FinancialNormal                        FinancialStatus = 'N'
)

func (f FinancialStatus) Valid() bool {
	switch f {
	case FinancialDeficient, FinancialDelinquent, FinancialBankrupt, FinancialSuspended,
		FinancialDeficientAndBankrupt, FinancialDeficientAndDelinquent,
		FinancialDeficientDelinquentAndBankrupt, FinancialCreationsSuspended, FinancialNormal:
		return true
	}
	return false
}

// IssueClassification is the security's asset class.
type IssueClassification byte

const (
	IssueAmericanDepositaryShare IssueClassification = 'A'
	IssueBond                    IssueClassification = 'B'
	IssueCommonStock             IssueClassification = 'C'
	IssueDepositoryReceipt       IssueClassification = 'F'
	IssueRule144A                IssueClassification = 'I'
	IssueLimitedPartnership      IssueClassification = 'L'
	IssueNotes                   IssueClassification = 'N'
	IssueOrdinaryShare           IssueClassification = 'O'
	IssuePreferredStock          IssueClassification = 'P'
	IssueOtherSecurities         IssueClassification = 'Q'
	IssueRight                   IssueClassification = 'R'
	IssueSharesOfBeneficialInterest IssueClassification = 'S'
	IssueConvertibleDebenture    IssueClassification = 'T'
	IssueUnit                    IssueClassification = 'U'
	IssueUnitsBeneficialInterest IssueClassification = 'V'
	IssueWarrant                 IssueClassification = 'W'
)

func (c IssueClassification) Valid() bool {
	switch c {
	case IssueAmericanDepositaryShare, IssueBond, IssueCommonStock, IssueDepositoryReceipt,
		IssueRule144A, IssueLimitedPartnership, IssueNotes, IssueOrdinaryShare, IssuePreferredStock,
		IssueOtherSecurities, IssueRight, IssueSharesOfBeneficialInterest, IssueConvertibleDebenture,
		IssueUnit, IssueUnitsBeneficialInterest, IssueWarrant:
		return true
	}
	return false
}

// pack2 packs up to two ASCII characters into a little-endian uint16 key,
// matching original_source's consteval pack2(c1, c2=' ').
func pack2(c1, c2 byte) uint16 {
	return uint16(c1) | uint16(c2)<<8
}

// pack4 packs up to four ASCII characters into a little-endian uint32 key,
// matching original_source's consteval pack4(c1, c2=' ', c3=' ', c4=' ').
func pack4(c1, c2, c3, c4 byte) uint32 {
	return uint32(c1) | uint32(c2)<<8 | uint32(c3)<<16 | uint32(c4)<<24
}

// IssueSubType is a packed 2-character code further refining IssueClassification.
type IssueSubType uint16

var issueSubTypeValues = map[IssueSubType]string{
	IssueSubType(pack2('A', ' ')): "PreferredTrustSecurities",
	IssueSubType(pack2('B', ' ')): "IndexBasedDerivative",
	IssueSubType(pack2('C', ' ')): "CommonShares",
	IssueSubType(pack2('D', ' ')): "GlobalDepositaryShares",
	IssueSubType(pack2('E', ' ')): "ETFPortfolioDepositaryReceipt",
	IssueSubType(pack2('F', ' ')): "HOLDRS",
	IssueSubType(pack2('G', ' ')): "GlobalShares",
	IssueSubType(pack2('I', ' ')): "ETFIndexFundShares",
	IssueSubType(pack2('J', ' ')): "CorporateBackedTrustSecurity",
	IssueSubType(pack2('L', ' ')): "ContingentLitigationRight",
	IssueSubType(pack2('M', ' ')): "EquityBasedDerivative",
	IssueSubType(pack2('N', ' ')): "NYRegistryShares",
	IssueSubType(pack2('O', ' ')): "OpenEndMutualFund",
	IssueSubType(pack2('P', ' ')): "PrivatelyHeldSecurity",
	IssueSubType(pack2('Q', ' ')): "ClosedEndFund",
	IssueSubType(pack2('R', ' ')): "RegS",
	IssueSubType(pack2('S', ' ')): "SEED",
	IssueSubType(pack2('T', ' ')): "TrackingStock",
	IssueSubType(pack2('U', ' ')): "Portal",
	IssueSubType(pack2('V', ' ')): "ContingentValueRight",
	IssueSubType(pack2('W', ' ')): "TrustIssuedReceipts",
	IssueSubType(pack2('X', ' ')): "Trust",
	IssueSubType(pack2('Y', ' ')): "Other",
	IssueSubType(pack2('Z', ' ')): "NotApplicable",
	IssueSubType(pack2('A', 'I')): "AlphaIndexETN",
	IssueSubType(pack2('C', 'B')): "CommodityBasedTrustShares",
	IssueSubType(pack2('C', 'F')): "CommodityFuturesTrustShares",
	IssueSubType(pack2('C', 'L')): "CommodityLinkedSecurities",
	IssueSubType(pack2('C', 'M')): "CommodityIndexTrustShares",
	IssueSubType(pack2('C', 'O')): "CollateralizedMortgageObligation",
	IssueSubType(pack2('C', 'T')): "CurrencyTrustShares",
	IssueSubType(pack2('C', 'U')): "CommodityCurrencyLinkedSecurities",
	IssueSubType(pack2('C', 'W')): "CurrencyWarrants",
	IssueSubType(pack2('E', 'G')): "EquityGoldShares",
	IssueSubType(pack2('E', 'I')): "ETNEquityIndexLinked",
	IssueSubType(pack2('E', 'M')): "NextShares",
	IssueSubType(pack2('E', 'N')): "ExchangeTradedNotes",
	IssueSubType(pack2('E', 'U')): "EquityUnits",
	IssueSubType(pack2('F', 'I')): "ETNFixedIncomeLinked",
	IssueSubType(pack2('F', 'L')): "ETNFuturesLinked",
	IssueSubType(pack2('I', 'R')): "InterestRate",
	IssueSubType(pack2('I', 'W')): "IndexWarrant",
	IssueSubType(pack2('I', 'X')): "IndexLinkedExchangeableNotes",
	IssueSubType(pack2('L', 'L')): "LimitedLiabilityCompany",
	IssueSubType(pack2('M', 'F')): "ManagedFundShares",
	IssueSubType(pack2('M', 'L')): "ETNMultiFactorIndexLinked",
	IssueSubType(pack2('M', 'T')): "ManagedTrustSecurities",
	IssueSubType(pack2('P', 'P')): "PoisonPill",
	IssueSubType(pack2('P', 'U')): "PartnershipUnits",
	IssueSubType(pack2('R', 'C')): "CommodityRedeemableCommodityLinked",
	IssueSubType(pack2('R', 'F')): "ETNRedeemableFuturesLinked",
	IssueSubType(pack2('R', 'T')): "REIT",
	IssueSubType(pack2('R', 'U')): "CommodityRedeemableCurrencyLinked",
	IssueSubType(pack2('S', 'C')): "SpotRateClosing",
	IssueSubType(pack2('S', 'I')): "SpotRateIntraday",
	IssueSubType(pack2('T', 'C')): "TrustCertificates",
	IssueSubType(pack2('T', 'U')): "TrustUnits",
	IssueSubType(pack2('W', 'C')): "WorldCurrencyOption",
}

func (s IssueSubType) Valid() bool {
	_, ok := issueSubTypeValues[s]
	return ok
}

// String returns the enum name, or "Unknown" for an unrecognized code.
func (s IssueSubType) String() string {
	if name, ok := issueSubTypeValues[s]; ok {
		return name
	}
	return "Unknown"
}

// Authenticity distinguishes production feed data from test data.
type Authenticity byte

const (
	AuthenticityProduction Authenticity = 'P'
	AuthenticityTest       Authenticity = 'T'
)

func (a Authenticity) Valid() bool { return a == AuthenticityProduction || a == AuthenticityTest }

// ShortSaleThresholdIndicator reports Reg SHO threshold security status.
type ShortSaleThresholdIndicator byte

const (
	ShortSaleRestricted    ShortSaleThresholdIndicator = 'Y'
	ShortSaleNotRestricted ShortSaleThresholdIndicator = 'N'
	ShortSaleNotAvailable  ShortSaleThresholdIndicator = ' '
)

func (s ShortSaleThresholdIndicator) Valid() bool {
	switch s {
	case ShortSaleRestricted, ShortSaleNotRestricted, ShortSaleNotAvailable:
		return true
	}
	return false
}

// IPOFlag marks a security as a new IPO listing.
type IPOFlag byte

const (
	IPOFlagYes         IPOFlag = 'Y'
	IPOFlagNo          IPOFlag = 'N'
	IPOFlagNotAvailable IPOFlag = ' '
)

func (f IPOFlag) Valid() bool {
	switch f {
	case IPOFlagYes, IPOFlagNo, IPOFlagNotAvailable:
		return true
	}
	return false
}

// LULDReferencePriceTier selects the Limit Up-Limit Down band tier.
type LULDReferencePriceTier byte

const (
	LULDTier1        LULDReferencePriceTier = '1'
	LULDTier2        LULDReferencePriceTier = '2'
	LULDNotAvailable LULDReferencePriceTier = ' '
)

func (t LULDReferencePriceTier) Valid() bool {
	switch t {
	case LULDTier1, LULDTier2, LULDNotAvailable:
		return true
	}
	return false
}

// ETPFlag marks a security as an exchange-traded product.
type ETPFlag byte

const (
	ETPFlagYes ETPFlag = 'Y'
	ETPFlagNo  ETPFlag = 'N'
)

func (f ETPFlag) Valid() bool { return f == ETPFlagYes || f == ETPFlagNo }

// InverseIndicator marks an ETP as inverse (short-biased).
type InverseIndicator byte

const (
	InverseYes InverseIndicator = 'Y'
	InverseNo  InverseIndicator = 'N'
)

func (i InverseIndicator) Valid() bool { return i == InverseYes || i == InverseNo }

// RoundLotsOnly reports whether a security trades only in round lots.
type RoundLotsOnly byte

const (
	RoundLotsOnlyYes RoundLotsOnly = 'Y'
	RoundLotsOnlyNo  RoundLotsOnly = 'N'
)

func (r RoundLotsOnly) Valid() bool { return r == RoundLotsOnlyYes || r == RoundLotsOnlyNo }

// TradingState is the current trading status of a security.
type TradingState byte

const (
	TradingHalted        TradingState = 'H'
	TradingPaused         TradingState = 'P'
	TradingQuotationOnly  TradingState = 'Q'
	TradingResumed        TradingState = 'T'
)

func (t TradingState) Valid() bool {
	switch t {
	case TradingHalted, TradingPaused, TradingQuotationOnly, TradingResumed:
		return true
	}
	return false
}

// TradingStateReason is a packed code explaining a trading-state change.
type TradingStateReason uint32

var tradingStateReasonValues = map[TradingStateReason]string{
	TradingStateReason(pack4('T', '1', ' ', ' ')):     "HaltNewsPending",
	TradingStateReason(pack4('T', '2', ' ', ' ')):     "HaltNewsDisseminated",
	TradingStateReason(pack4('T', '5', ' ', ' ')):     "PauseSingleSecurity",
	TradingStateReason(pack4('T', '6', ' ', ' ')):     "HaltRegulatory",
	TradingStateReason(pack4('T', '8', ' ', ' ')):     "HaltETF",
	TradingStateReason(pack4('T', '1', '2', ' ')):     "HaltTrading",
	TradingStateReason(pack4('H', '4', ' ', ' ')):     "HaltNonCompliance",
	TradingStateReason(pack4('H', '9', ' ', ' ')):     "HaltFilingsNotCurrent",
	TradingStateReason(pack4('H', '1', '0', ' ')):     "HaltSECSuspension",
	TradingStateReason(pack4('H', '1', '1', ' ')):     "HaltRegulatoryConcern",
	TradingStateReason(pack4('O', '1', ' ', ' ')):     "HaltOperational",
	TradingStateReason(pack4('L', 'U', 'D', 'P')):     "PauseLULD",
	TradingStateReason(pack4('M', 'W', 'C', '1')):     "HaltMWCBLevel1",
	TradingStateReason(pack4('M', 'W', 'C', '2')):     "HaltMWCBLevel2",
	TradingStateReason(pack4('M', 'W', 'C', '3')):     "HaltMWCBLevel3",
	TradingStateReason(pack4('M', 'W', 'C', '0')):     "HaltMWCBCarryover",
	TradingStateReason(pack4('I', 'P', 'O', '1')):     "IPONotYetTrading",
	TradingStateReason(pack4('M', '1', ' ', ' ')):     "QuoteCorporateAction",
	TradingStateReason(pack4('M', '2', ' ', ' ')):     "QuoteNotAvailable",
	TradingStateReason(pack4('T', '3', ' ', ' ')):     "ResumeNewsAndTime",
	TradingStateReason(pack4('T', '7', ' ', ' ')):     "QuoteOnlyPause",
	TradingStateReason(pack4('R', '4', ' ', ' ')):     "ResumeQualificationsReviewed",
	TradingStateReason(pack4('R', '9', ' ', ' ')):     "ResumeFilingsSatisfied",
	TradingStateReason(pack4('C', '3', ' ', ' ')):     "ResumeNewsNotForthcoming",
	TradingStateReason(pack4('C', '4', ' ', ' ')):     "ResumeQualificationsEnded",
	TradingStateReason(pack4('C', '9', ' ', ' ')):     "ResumeQualificationsAndFilings",
	TradingStateReason(pack4('C', '1', '1', ' ')):     "ResumeOtherRegulator",
	TradingStateReason(pack4('M', 'W', 'C', 'Q')):     "ResumeMWCB",
	TradingStateReason(pack4('R', '1', ' ', ' ')):     "ReleaseNewIssue",
	TradingStateReason(pack4('R', '2', ' ', ' ')):     "ReleaseIssue",
	TradingStateReason(pack4('I', 'P', 'O', 'Q')):     "ReleaseIPOQuotation",
	TradingStateReason(pack4('I', 'P', 'O', 'E')):     "ExtendIPOPositioning",
	TradingStateReason(pack4(' ', ' ', ' ', ' ')):     "ReasonNotAvailable",
}

func (r TradingStateReason) Valid() bool {
	_, ok := tradingStateReasonValues[r]
	return ok
}

func (r TradingStateReason) String() string {
	if name, ok := tradingStateReasonValues[r]; ok {
		return name
	}
	return "Unknown"
}

// RegSHOAction reports a Reg SHO short-sale price test restriction change.
type RegSHOAction byte

const (
	RegSHONoRestriction               RegSHOAction = '0'
	RegSHORestrictedIntradayDrop      RegSHOAction = '1'
	RegSHORestrictedRemainsInEffect   RegSHOAction = '2'
)

func (a RegSHOAction) Valid() bool {
	switch a {
	case RegSHONoRestriction, RegSHORestrictedIntradayDrop, RegSHORestrictedRemainsInEffect:
		return true
	}
	return false
}

// PrimaryMarketMaker reports whether a market participant is primary.
type PrimaryMarketMaker byte

const (
	PrimaryMarketMakerYes PrimaryMarketMaker = 'Y'
	PrimaryMarketMakerNo  PrimaryMarketMaker = 'N'
)

func (p PrimaryMarketMaker) Valid() bool { return p == PrimaryMarketMakerYes || p == PrimaryMarketMakerNo }

// MarketMakerMode is a market participant's quoting mode.
type MarketMakerMode byte

const (
	MarketMakerNormal       MarketMakerMode = 'N'
	MarketMakerPassive      MarketMakerMode = 'P'
	MarketMakerSyndicate    MarketMakerMode = 'S'
	MarketMakerPreSyndicate MarketMakerMode = 'R'
	MarketMakerPenalty      MarketMakerMode = 'L'
)

func (m MarketMakerMode) Valid() bool {
	switch m {
	case MarketMakerNormal, MarketMakerPassive, MarketMakerSyndicate, MarketMakerPreSyndicate, MarketMakerPenalty:
		return true
	}
	return false
}

// MarketParticipantState is a market participant's registration state.
type MarketParticipantState byte

const (
	ParticipantActive    MarketParticipantState = 'A'
	ParticipantExcused   MarketParticipantState = 'E'
	ParticipantWithdrawn MarketParticipantState = 'W'
	ParticipantSuspended MarketParticipantState = 'S'
	ParticipantDeleted   MarketParticipantState = 'D'
)

func (s MarketParticipantState) Valid() bool {
	switch s {
	case ParticipantActive, ParticipantExcused, ParticipantWithdrawn, ParticipantSuspended, ParticipantDeleted:
		return true
	}
	return false
}

// MWCBLevel identifies a market-wide circuit breaker level.
type MWCBLevel byte

const (
	MWCBLevel1 MWCBLevel = '1'
	MWCBLevel2 MWCBLevel = '2'
	MWCBLevel3 MWCBLevel = '3'
)

func (l MWCBLevel) Valid() bool { return l == MWCBLevel1 || l == MWCBLevel2 || l == MWCBLevel3 }

// IPOQuotationReleaseQualifier reports IPO quotation release status.
type IPOQuotationReleaseQualifier byte

const (
	IPOReleaseAnticipated         IPOQuotationReleaseQualifier = 'A'
	IPOReleaseCanceledOrPostponed IPOQuotationReleaseQualifier = 'C'
)

func (q IPOQuotationReleaseQualifier) Valid() bool {
	return q == IPOReleaseAnticipated || q == IPOReleaseCanceledOrPostponed
}

// MarketCode identifies a NASDAQ-family execution venue.
type MarketCode byte

const (
	MarketCodeNasdaq MarketCode = 'Q'
	MarketCodeBX     MarketCode = 'B'
	MarketCodePSX    MarketCode = 'X'
)

func (c MarketCode) Valid() bool {
	return c == MarketCodeNasdaq || c == MarketCodeBX || c == MarketCodePSX
}

// OperationalHaltAction reports an operational (non-regulatory) halt change.
type OperationalHaltAction byte

const (
	OperationalHalted OperationalHaltAction = 'H'
	OperationalResumed OperationalHaltAction = 'T'
)

func (a OperationalHaltAction) Valid() bool { return a == OperationalHalted || a == OperationalResumed }

// Printable reports whether an execution should be reflected in time/sales.
type Printable byte

const (
	PrintableYes Printable = 'Y'
	PrintableNo  Printable = 'N'
)

func (p Printable) Valid() bool { return p == PrintableYes || p == PrintableNo }

// ImbalanceDirection is the net imbalance direction at an auction cross.
type ImbalanceDirection byte

const (
	ImbalanceBuy                ImbalanceDirection = 'B'
	ImbalanceSell                ImbalanceDirection = 'S'
	ImbalanceNone                ImbalanceDirection = 'N'
	ImbalanceInsufficientOrders  ImbalanceDirection = 'O'
	ImbalancePaused              ImbalanceDirection = 'P'
)

func (d ImbalanceDirection) Valid() bool {
	switch d {
	case ImbalanceBuy, ImbalanceSell, ImbalanceNone, ImbalanceInsufficientOrders, ImbalancePaused:
		return true
	}
	return false
}

// PriceVariationIndicator buckets the near/far price deviation at a cross.
type PriceVariationIndicator byte

const (
	PriceVarLessThan1Pct    PriceVariationIndicator = 'L'
	PriceVar1To2Pct         PriceVariationIndicator = '1'
	PriceVar2To3Pct         PriceVariationIndicator = '2'
	PriceVar3To4Pct         PriceVariationIndicator = '3'
	PriceVar4To5Pct         PriceVariationIndicator = '4'
	PriceVar5To6Pct         PriceVariationIndicator = '5'
	PriceVar6To7Pct         PriceVariationIndicator = '6'
	PriceVar7To8Pct         PriceVariationIndicator = '7'
	PriceVar8To9Pct         PriceVariationIndicator = '8'
	PriceVar9To10Pct        PriceVariationIndicator = '9'
	PriceVar10To20Pct       PriceVariationIndicator = 'A'
	PriceVar20To30Pct       PriceVariationIndicator = 'B'
	PriceVarGreaterThan30Pct PriceVariationIndicator = 'C'
	PriceVarCannotCalculate PriceVariationIndicator = ' '
)

func (p PriceVariationIndicator) Valid() bool {
	switch p {
	case PriceVarLessThan1Pct, PriceVar1To2Pct, PriceVar2To3Pct, PriceVar3To4Pct, PriceVar4To5Pct,
		PriceVar5To6Pct, PriceVar6To7Pct, PriceVar7To8Pct, PriceVar8To9Pct, PriceVar9To10Pct,
		PriceVar10To20Pct, PriceVar20To30Pct, PriceVarGreaterThan30Pct, PriceVarCannotCalculate:
		return true
	}
	return false
}

// InterestFlag reports retail price improvement order interest.
type InterestFlag byte

const (
	InterestBuySide   InterestFlag = 'B'
	InterestSellSide  InterestFlag = 'S'
	InterestBothSides InterestFlag = 'A'
	InterestNone      InterestFlag = 'N'
)

func (f InterestFlag) Valid() bool {
	switch f {
	case InterestBuySide, InterestSellSide, InterestBothSides, InterestNone:
		return true
	}
	return false
}

// OpenEligibility reports direct-listing opening-auction eligibility.
type OpenEligibility byte

const (
	OpenEligible    OpenEligibility = 'Y'
	OpenNotEligible OpenEligibility = 'N'
)

func (e OpenEligibility) Valid() bool { return e == OpenEligible || e == OpenNotEligible }

// --- per-message structs, one per wire type, fields ordered per the wire layout ---

type SystemEventMessage struct {
	Header    MessageHeader
	EventCode EventCode
}

type StockDirectoryMessage struct {
	Header                  MessageHeader
	Symbol                  Symbol
	MarketCategory          MarketCategory
	FinancialStatus         FinancialStatus
	RoundLotSize            uint32
	RoundLotsOnly           RoundLotsOnly
	IssueClassification     IssueClassification
	IssueSubType            IssueSubType
	Authenticity            Authenticity
	ShortSaleThreshold      ShortSaleThresholdIndicator
	IPOFlag                 IPOFlag
	LULDReferencePriceTier  LULDReferencePriceTier
	ETPFlag                 ETPFlag
	ETPLeverageFactor       uint32
	InverseIndicator        InverseIndicator
}

type StockTradingActionMessage struct {
	Header       MessageHeader
	Symbol       Symbol
	TradingState TradingState
	Reserved     byte
	Reason       TradingStateReason
}

type RegSHORestrictionMessage struct {
	Header MessageHeader
	Symbol Symbol
	Action RegSHOAction
}

type MarketParticipantPositionMessage struct {
	Header              MessageHeader
	Attribution         MPID
	Symbol              Symbol
	PrimaryMarketMaker  PrimaryMarketMaker
	MarketMakerMode     MarketMakerMode
	ParticipantState    MarketParticipantState
}

type MWCBDeclineLevelMessage struct {
	Header MessageHeader
	Level1 uint64
	Level2 uint64
	Level3 uint64
}

type MWCBStatusMessage struct {
	Header        MessageHeader
	BreachedLevel MWCBLevel
}

type IPOQuotingPeriodUpdateMessage struct {
	Header               MessageHeader
	Symbol               Symbol
	QuotationReleaseTime uint32
	ReleaseQualifier     IPOQuotationReleaseQualifier
	IPOPrice             uint32
}

type LULDAuctionCollarMessage struct {
	Header          MessageHeader
	Symbol          Symbol
	ReferencePrice  uint32
	UpperPrice      uint32
	LowerPrice      uint32
	ExtensionNumber uint32
}

type OperationalHaltMessage struct {
	Header     MessageHeader
	Symbol     Symbol
	MarketCode MarketCode
	Action     OperationalHaltAction
}

type AddOrderMessage struct {
	Header                MessageHeader
	OrderReferenceNumber   uint64
	Side                   Side
	Shares                 uint32
	Symbol                 Symbol
	Price                  uint32
}

type AddOrderMPIDMessage struct {
	Header                MessageHeader
	OrderReferenceNumber   uint64
	Side                   Side
	Shares                 uint32
	Symbol                 Symbol
	Price                  uint32
	Attribution            MPID
}

type OrderExecutedMessage struct {
	Header                MessageHeader
	OrderReferenceNumber   uint64
	ExecutedShares         uint32
	MatchNumber            uint64
}

type OrderExecutedWithPriceMessage struct {
	Header                MessageHeader
	OrderReferenceNumber   uint64
	ExecutedShares         uint32
	MatchNumber            uint64
	Printable              Printable
	ExecutionPrice         uint32
}

type OrderCancelMessage struct {
	Header                MessageHeader
	OrderReferenceNumber   uint64
	CanceledShares         uint32
}

type OrderDeleteMessage struct {
	Header                MessageHeader
	OrderReferenceNumber   uint64
}

type OrderReplaceMessage struct {
	Header                        MessageHeader
	OriginalOrderReferenceNumber  uint64
	NewOrderReferenceNumber       uint64
	Shares                        uint32
	Price                         uint32
}

type TradeMessage struct {
	Header                MessageHeader
	OrderReferenceNumber   uint64
	Side                   Side
	Shares                 uint32
	Symbol                 Symbol
	Price                  uint32
	MatchNumber            uint64
}

type CrossTradeMessage struct {
	Header      MessageHeader
	Shares      uint64
	Symbol      Symbol
	CrossPrice  uint32
	MatchNumber uint64
	Type        CrossType
}

type BrokenTradeMessage struct {
	Header      MessageHeader
	MatchNumber uint64
}

type NOIIMessage struct {
	Header                  MessageHeader
	PairedShares            uint64
	ImbalanceShares         uint64
	ImbalanceDirection      ImbalanceDirection
	Symbol                  Symbol
	FarPrice                uint32
	NearPrice               uint32
	CurrentReferencePrice   uint32
	CrossType               CrossType
	PriceVariationIndicator PriceVariationIndicator
}

type RPIIMessage struct {
	Header       MessageHeader
	Symbol       Symbol
	InterestFlag InterestFlag
}

type DirectListingPriceDiscoveryMessage struct {
	Header                 MessageHeader
	Symbol                 Symbol
	OpenEligibility        OpenEligibility
	MinAllowedPrice        uint32
	MaxAllowedPrice        uint32
	NearExecutionPrice     uint32
	NearExecutionTime      uint64
	LowerPriceRangeCollar  uint32
	UpperPriceRangeCollar  uint32
}

// NanosFromMidnight returns the current nanoseconds since midnight UTC,
// for stamping locally-constructed messages (e.g. a learned stock directory).
func NanosFromMidnight() uint64 {
	now := time.Now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return uint64(now.Sub(midnight).Nanoseconds())
}

// Price4 converts a float64 price to ITCH 4-decimal fixed-point (uint32).
func Price4(price float64) uint32 {
	return uint32(price * 10000)
}

// Price4ToFloat converts ITCH fixed-point back to float64.
func Price4ToFloat(p uint32) float64 {
	return float64(p) / 10000
}
