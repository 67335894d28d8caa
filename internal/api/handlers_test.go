package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/feedhandler/mdfeed/internal/itch"
	"github.com/feedhandler/mdfeed/internal/orderbook"
	"github.com/feedhandler/mdfeed/internal/session"
	"github.com/feedhandler/mdfeed/internal/symbol"
)

func newTestServer() (*Server, *http.ServeMux) {
	var errs orderbook.ErrorCounters
	market := orderbook.NewMarket(&errs)
	symbols := symbol.NewTable()
	symbols.Learn(itch.StockDirectoryMessage{
		Header:          itch.MessageHeader{StockLocate: 1},
		Symbol:          itch.SymbolFromString("NEXO"),
		MarketCategory:  itch.MarketNasdaqGlobalSelect,
		FinancialStatus: itch.FinancialNormal,
		RoundLotSize:    100,
		RoundLotsOnly:   itch.RoundLotsOnlyNo,
	})
	market.Book(1).Add(1, 100, itch.Price4(185), itch.SideBuy)
	market.Book(1).Add(2, 200, itch.Price4(186), itch.SideSell)

	mgr := session.NewManager(symbols, 16)
	srv := NewServer(market, &errs, mgr, symbols)

	mux := http.NewServeMux()
	srv.Register(mux)
	return srv, mux
}

func TestHandleSymbolsReturnsLearnedSecurities(t *testing.T) {
	_, mux := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/symbols", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var out []symbolInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out) != 1 || out[0].Ticker != "NEXO" {
		t.Fatalf("unexpected symbols response: %+v", out)
	}
}

func TestHandleSymbolDetailUnknownTickerIs404(t *testing.T) {
	_, mux := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/symbols/ZZZZ", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestHandleBookSummaryReportsRestingOrders(t *testing.T) {
	_, mux := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/book/NEXO", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var out bookSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.BidOrders != 1 || out.AskOrders != 1 {
		t.Fatalf("unexpected book summary: %+v", out)
	}
}

func TestHandleErrorsReturnsCounters(t *testing.T) {
	_, mux := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/errors", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var out orderbook.ErrorCounters
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
}

func TestHandleClientsReturnsEmptyListWithNoConnections(t *testing.T) {
	_, mux := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var out []clientInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected 0 clients, got %d", len(out))
	}
}

func TestHandleStatsReportsSymbolAndClientCounts(t *testing.T) {
	_, mux := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var out statsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Symbols != 1 {
		t.Fatalf("Symbols = %d, want 1", out.Symbols)
	}
	if out.TotalOrders != 2 {
		t.Fatalf("TotalOrders = %d, want 2", out.TotalOrders)
	}
}
