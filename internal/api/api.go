package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/feedhandler/mdfeed/internal/orderbook"
	"github.com/feedhandler/mdfeed/internal/session"
	"github.com/feedhandler/mdfeed/internal/symbol"
)

// Server provides REST API endpoints for introspecting the feed handler's
// live state: learned securities, resting-order summaries per book, decode
// error counters, and WebSocket client counts. There is no trade or candle
// history here: the handler does not persist anything it decodes.
type Server struct {
	market  *orderbook.Market
	errs    *orderbook.ErrorCounters
	mgr     *session.Manager
	symbols *symbol.Table
	startAt time.Time
}

// NewServer creates a new API server.
func NewServer(market *orderbook.Market, errs *orderbook.ErrorCounters, mgr *session.Manager, symbols *symbol.Table) *Server {
	return &Server{
		market:  market,
		errs:    errs,
		mgr:     mgr,
		symbols: symbols,
		startAt: time.Now(),
	}
}

// Register attaches API routes to the given mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/symbols", s.handleSymbols)
	mux.HandleFunc("GET /api/symbols/{ticker}", s.handleSymbolDetail)
	mux.HandleFunc("GET /api/book/{ticker}", s.handleBookSummary)
	mux.HandleFunc("GET /api/errors", s.handleErrors)
	mux.HandleFunc("GET /api/stats", s.handleStats)
	mux.HandleFunc("GET /api/clients", s.handleClients)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// resolveTicker looks up a learned security by ticker, writing a 404 if not
// found. Returns false if the ticker was not found (error already written).
func (s *Server) resolveTicker(w http.ResponseWriter, ticker string) (symbol.Directory, bool) {
	d, ok := s.symbols.ByTicker(ticker)
	if !ok {
		writeError(w, http.StatusNotFound, "symbol not found: "+ticker)
		return symbol.Directory{}, false
	}
	return d, true
}
