package itch

import (
	"encoding/json"
	"testing"
)

func decodeJSON(t *testing.T, msg any) map[string]any {
	t.Helper()
	data, err := EncodeJSON(msg)
	if err != nil {
		t.Fatalf("EncodeJSON error: %v", err)
	}
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		t.Fatalf("json.Unmarshal error: %v", err)
	}
	return obj
}

func TestEncodeJSONSystemEvent(t *testing.T) {
	obj := decodeJSON(t, SystemEventMessage{Header: MessageHeader{Timestamp: 1000}, EventCode: EventStartOfMessages})
	if obj["type"] != "system_event" {
		t.Fatalf("type = %v, want system_event", obj["type"])
	}
	if obj["eventCode"] != "O" {
		t.Fatalf("eventCode = %v, want O", obj["eventCode"])
	}
}

func TestEncodeJSONStockDirectory(t *testing.T) {
	obj := decodeJSON(t, StockDirectoryMessage{
		Header:         MessageHeader{StockLocate: 1},
		Symbol:         SymbolFromString("NEXO"),
		RoundLotSize:   100,
		MarketCategory: MarketNasdaqGlobalSelect,
	})
	if obj["type"] != "stock_directory" {
		t.Fatalf("type = %v, want stock_directory", obj["type"])
	}
	if obj["stock"] != "NEXO" {
		t.Fatalf("stock = %v, want NEXO", obj["stock"])
	}
}

func TestEncodeJSONAddOrder(t *testing.T) {
	obj := decodeJSON(t, AddOrderMessage{
		Header:               MessageHeader{StockLocate: 1},
		OrderReferenceNumber: 42,
		Side:                 SideBuy,
		Shares:               500,
		Price:                Price4(125.50),
	})
	if obj["type"] != "add_order" {
		t.Fatalf("type = %v, want add_order", obj["type"])
	}
	price, ok := obj["price"].(float64)
	if !ok {
		t.Fatal("price should decode as a JSON number")
	}
	if uint32(price) != Price4(125.50) {
		t.Fatalf("price = %v, want %d", price, Price4(125.50))
	}
}

func TestEncodeJSONAddOrderMPID(t *testing.T) {
	obj := decodeJSON(t, AddOrderMPIDMessage{
		Header:               MessageHeader{StockLocate: 1},
		OrderReferenceNumber: 42,
		Side:                 SideSell,
		Shares:               300,
		Price:                Price4(99.99),
		Attribution:          MPIDFromString("GSCO"),
	})
	if obj["type"] != "add_order_mpid" {
		t.Fatalf("type = %v, want add_order_mpid", obj["type"])
	}
	if obj["mpid"] != "GSCO" {
		t.Fatalf("mpid = %v, want GSCO", obj["mpid"])
	}
}

func TestEncodeJSONOrderExecuted(t *testing.T) {
	obj := decodeJSON(t, OrderExecutedMessage{
		Header:               MessageHeader{StockLocate: 1},
		OrderReferenceNumber: 42,
		ExecutedShares:       200,
		MatchNumber:          7,
	})
	if obj["type"] != "order_executed" {
		t.Fatalf("type = %v, want order_executed", obj["type"])
	}
	if obj["matchNumber"] == nil {
		t.Fatal("matchNumber should be present")
	}
}

func TestEncodeJSONOrderReplace(t *testing.T) {
	obj := decodeJSON(t, OrderReplaceMessage{
		Header:                       MessageHeader{StockLocate: 1},
		OriginalOrderReferenceNumber: 42,
		NewOrderReferenceNumber:      43,
		Shares:                       300,
		Price:                        Price4(50.25),
	})
	if obj["type"] != "order_replace" {
		t.Fatalf("type = %v, want order_replace", obj["type"])
	}
}

func TestEncodeJSONTrade(t *testing.T) {
	obj := decodeJSON(t, TradeMessage{
		Header:               MessageHeader{StockLocate: 1},
		OrderReferenceNumber: 42,
		Side:                 SideBuy,
		Shares:               500,
		Symbol:               SymbolFromString("NEXO"),
		Price:                Price4(125.50),
		MatchNumber:          7,
	})
	if obj["type"] != "trade" {
		t.Fatalf("type = %v, want trade", obj["type"])
	}
	if obj["matchNumber"] == nil {
		t.Fatal("matchNumber should be present")
	}
}

func TestEncodeJSONUnsupportedType(t *testing.T) {
	_, err := EncodeJSON(struct{ X int }{X: 1})
	if err == nil {
		t.Fatal("expected error for an unsupported message type")
	}
}
