package itch

import (
	"encoding/json"
	"fmt"
)

// JSON encoder — human-readable mirror of the binary ITCH messages, used by
// the WebSocket fan-out when a client negotiates the "json" format. Prices
// are left as raw ITCH fixed-point (four implied decimals) integers rather
// than floats, so a client can round-trip them without precision loss.

// EncodeJSON encodes any decoded message (as produced by Decode) to JSON.
func EncodeJSON(msg any) ([]byte, error) {
	obj := msgToMap(msg)
	if obj == nil {
		return nil, fmt.Errorf("itch: unsupported message type %T for json encoding", msg)
	}
	return json.Marshal(obj)
}

func msgToMap(msg any) map[string]any {
	switch m := msg.(type) {
	case SystemEventMessage:
		return map[string]any{
			"type":        "system_event",
			"stockLocate": m.Header.StockLocate,
			"timestamp":   m.Header.Timestamp,
			"eventCode":   string(m.EventCode),
		}

	case StockDirectoryMessage:
		return map[string]any{
			"type":                "stock_directory",
			"stockLocate":         m.Header.StockLocate,
			"timestamp":           m.Header.Timestamp,
			"stock":               m.Symbol.Trimmed(),
			"marketCategory":      string(m.MarketCategory),
			"financialStatus":     string(m.FinancialStatus),
			"roundLotSize":        m.RoundLotSize,
			"roundLotsOnly":       string(m.RoundLotsOnly),
			"issueClassification": string(m.IssueClassification),
			"issueSubType":        m.IssueSubType.String(),
			"authenticity":        string(m.Authenticity),
			"shortSaleThreshold":  string(m.ShortSaleThreshold),
			"ipoFlag":             string(m.IPOFlag),
			"luldTier":            string(m.LULDReferencePriceTier),
			"etpFlag":             string(m.ETPFlag),
			"etpLeverageFactor":   m.ETPLeverageFactor,
			"inverseIndicator":    string(m.InverseIndicator),
		}

	case StockTradingActionMessage:
		return map[string]any{
			"type":         "stock_trading_action",
			"stockLocate":  m.Header.StockLocate,
			"timestamp":    m.Header.Timestamp,
			"stock":        m.Symbol.Trimmed(),
			"tradingState": string(m.TradingState),
			"reason":       m.Reason.String(),
		}

	case RegSHORestrictionMessage:
		return map[string]any{
			"type":        "reg_sho_restriction",
			"stockLocate": m.Header.StockLocate,
			"timestamp":   m.Header.Timestamp,
			"stock":       m.Symbol.Trimmed(),
			"action":      string(m.Action),
		}

	case MarketParticipantPositionMessage:
		return map[string]any{
			"type":               "market_participant_position",
			"stockLocate":        m.Header.StockLocate,
			"timestamp":          m.Header.Timestamp,
			"mpid":               m.Attribution.Trimmed(),
			"stock":              m.Symbol.Trimmed(),
			"primaryMarketMaker": string(m.PrimaryMarketMaker),
			"marketMakerMode":    string(m.MarketMakerMode),
			"participantState":   string(m.ParticipantState),
		}

	case MWCBDeclineLevelMessage:
		return map[string]any{
			"type":        "mwcb_decline_level",
			"stockLocate": m.Header.StockLocate,
			"timestamp":   m.Header.Timestamp,
			"level1":      m.Level1,
			"level2":      m.Level2,
			"level3":      m.Level3,
		}

	case MWCBStatusMessage:
		return map[string]any{
			"type":          "mwcb_status",
			"stockLocate":   m.Header.StockLocate,
			"timestamp":     m.Header.Timestamp,
			"breachedLevel": string(m.BreachedLevel),
		}

	case IPOQuotingPeriodUpdateMessage:
		return map[string]any{
			"type":                 "ipo_quoting_period_update",
			"stockLocate":          m.Header.StockLocate,
			"timestamp":            m.Header.Timestamp,
			"stock":                m.Symbol.Trimmed(),
			"quotationReleaseTime": m.QuotationReleaseTime,
			"releaseQualifier":     string(m.ReleaseQualifier),
			"ipoPrice":             m.IPOPrice,
		}

	case LULDAuctionCollarMessage:
		return map[string]any{
			"type":            "luld_auction_collar",
			"stockLocate":     m.Header.StockLocate,
			"timestamp":       m.Header.Timestamp,
			"stock":           m.Symbol.Trimmed(),
			"referencePrice":  m.ReferencePrice,
			"upperPrice":      m.UpperPrice,
			"lowerPrice":      m.LowerPrice,
			"extensionNumber": m.ExtensionNumber,
		}

	case OperationalHaltMessage:
		return map[string]any{
			"type":        "operational_halt",
			"stockLocate": m.Header.StockLocate,
			"timestamp":   m.Header.Timestamp,
			"stock":       m.Symbol.Trimmed(),
			"marketCode":  string(m.MarketCode),
			"action":      string(m.Action),
		}

	case AddOrderMessage:
		return map[string]any{
			"type":        "add_order",
			"stockLocate": m.Header.StockLocate,
			"timestamp":   m.Header.Timestamp,
			"orderRef":    m.OrderReferenceNumber,
			"side":        string(m.Side),
			"shares":      m.Shares,
			"stock":       m.Symbol.Trimmed(),
			"price":       m.Price,
		}

	case AddOrderMPIDMessage:
		return map[string]any{
			"type":        "add_order_mpid",
			"stockLocate": m.Header.StockLocate,
			"timestamp":   m.Header.Timestamp,
			"orderRef":    m.OrderReferenceNumber,
			"side":        string(m.Side),
			"shares":      m.Shares,
			"stock":       m.Symbol.Trimmed(),
			"price":       m.Price,
			"mpid":        m.Attribution.Trimmed(),
		}

	case OrderExecutedMessage:
		return map[string]any{
			"type":           "order_executed",
			"stockLocate":    m.Header.StockLocate,
			"timestamp":      m.Header.Timestamp,
			"orderRef":       m.OrderReferenceNumber,
			"executedShares": m.ExecutedShares,
			"matchNumber":    m.MatchNumber,
		}

	case OrderExecutedWithPriceMessage:
		return map[string]any{
			"type":           "order_executed_with_price",
			"stockLocate":    m.Header.StockLocate,
			"timestamp":      m.Header.Timestamp,
			"orderRef":       m.OrderReferenceNumber,
			"executedShares": m.ExecutedShares,
			"matchNumber":    m.MatchNumber,
			"printable":      string(m.Printable),
			"executionPrice": m.ExecutionPrice,
		}

	case OrderCancelMessage:
		return map[string]any{
			"type":           "order_cancel",
			"stockLocate":    m.Header.StockLocate,
			"timestamp":      m.Header.Timestamp,
			"orderRef":       m.OrderReferenceNumber,
			"canceledShares": m.CanceledShares,
		}

	case OrderDeleteMessage:
		return map[string]any{
			"type":        "order_delete",
			"stockLocate": m.Header.StockLocate,
			"timestamp":   m.Header.Timestamp,
			"orderRef":    m.OrderReferenceNumber,
		}

	case OrderReplaceMessage:
		return map[string]any{
			"type":         "order_replace",
			"stockLocate":  m.Header.StockLocate,
			"timestamp":    m.Header.Timestamp,
			"origOrderRef": m.OriginalOrderReferenceNumber,
			"orderRef":     m.NewOrderReferenceNumber,
			"shares":       m.Shares,
			"price":        m.Price,
		}

	case TradeMessage:
		return map[string]any{
			"type":        "trade",
			"stockLocate": m.Header.StockLocate,
			"timestamp":   m.Header.Timestamp,
			"orderRef":    m.OrderReferenceNumber,
			"side":        string(m.Side),
			"shares":      m.Shares,
			"stock":       m.Symbol.Trimmed(),
			"price":       m.Price,
			"matchNumber": m.MatchNumber,
		}

	case CrossTradeMessage:
		return map[string]any{
			"type":        "cross_trade",
			"stockLocate": m.Header.StockLocate,
			"timestamp":   m.Header.Timestamp,
			"shares":      m.Shares,
			"stock":       m.Symbol.Trimmed(),
			"crossPrice":  m.CrossPrice,
			"matchNumber": m.MatchNumber,
			"crossType":   string(m.Type),
		}

	case BrokenTradeMessage:
		return map[string]any{
			"type":        "broken_trade",
			"stockLocate": m.Header.StockLocate,
			"timestamp":   m.Header.Timestamp,
			"matchNumber": m.MatchNumber,
		}

	case NOIIMessage:
		return map[string]any{
			"type":                    "noii",
			"stockLocate":             m.Header.StockLocate,
			"timestamp":               m.Header.Timestamp,
			"pairedShares":            m.PairedShares,
			"imbalanceShares":         m.ImbalanceShares,
			"imbalanceDirection":      string(m.ImbalanceDirection),
			"stock":                   m.Symbol.Trimmed(),
			"farPrice":                m.FarPrice,
			"nearPrice":               m.NearPrice,
			"currentReferencePrice":   m.CurrentReferencePrice,
			"crossType":               string(m.CrossType),
			"priceVariationIndicator": string(m.PriceVariationIndicator),
		}

	case RPIIMessage:
		return map[string]any{
			"type":         "rpii",
			"stockLocate":  m.Header.StockLocate,
			"timestamp":    m.Header.Timestamp,
			"stock":        m.Symbol.Trimmed(),
			"interestFlag": string(m.InterestFlag),
		}

	case DirectListingPriceDiscoveryMessage:
		return map[string]any{
			"type":                  "direct_listing_price_discovery",
			"stockLocate":           m.Header.StockLocate,
			"timestamp":             m.Header.Timestamp,
			"stock":                 m.Symbol.Trimmed(),
			"openEligibility":       string(m.OpenEligibility),
			"minAllowedPrice":       m.MinAllowedPrice,
			"maxAllowedPrice":       m.MaxAllowedPrice,
			"nearExecutionPrice":    m.NearExecutionPrice,
			"nearExecutionTime":     m.NearExecutionTime,
			"lowerPriceRangeCollar": m.LowerPriceRangeCollar,
			"upperPriceRangeCollar": m.UpperPriceRangeCollar,
		}
	}
	return nil
}
