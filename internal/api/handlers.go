package api

import (
	"net/http"
	"time"

	"github.com/feedhandler/mdfeed/internal/session"
)

type symbolInfo struct {
	Locate              uint16 `json:"locate"`
	Ticker              string `json:"ticker"`
	MarketCategory      string `json:"marketCategory"`
	FinancialStatus     string `json:"financialStatus"`
	RoundLotSize        uint32 `json:"roundLotSize"`
	RoundLotsOnly       bool   `json:"roundLotsOnly"`
	IssueClassification string `json:"issueClassification"`
	IssueSubType        string `json:"issueSubType"`
}

// handleSymbols returns every security the feed has announced so far.
func (s *Server) handleSymbols(w http.ResponseWriter, r *http.Request) {
	all := s.symbols.All()
	out := make([]symbolInfo, 0, len(all))
	for _, d := range all {
		out = append(out, symbolInfo{
			Locate:              d.Locate,
			Ticker:              d.Ticker,
			MarketCategory:      string(d.MarketCategory),
			FinancialStatus:     string(d.FinancialStatus),
			RoundLotSize:        d.RoundLotSize,
			RoundLotsOnly:       d.RoundLotsOnly,
			IssueClassification: string(d.IssueClassification),
			IssueSubType:        d.IssueSubType.String(),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// handleSymbolDetail returns the learned directory entry for one ticker.
func (s *Server) handleSymbolDetail(w http.ResponseWriter, r *http.Request) {
	ticker := r.PathValue("ticker")
	d, ok := s.resolveTicker(w, ticker)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, symbolInfo{
		Locate:              d.Locate,
		Ticker:              d.Ticker,
		MarketCategory:      string(d.MarketCategory),
		FinancialStatus:     string(d.FinancialStatus),
		RoundLotSize:        d.RoundLotSize,
		RoundLotsOnly:       d.RoundLotsOnly,
		IssueClassification: string(d.IssueClassification),
		IssueSubType:        d.IssueSubType.String(),
	})
}

type bookSummary struct {
	Ticker    string `json:"ticker"`
	Locate    uint16 `json:"locate"`
	BidOrders int    `json:"bidOrders"`
	AskOrders int    `json:"askOrders"`
	BidShares uint64 `json:"bidShares"`
	AskShares uint64 `json:"askShares"`
}

// handleBookSummary returns the resting-order summary for a symbol's book.
// There is no price-level breakdown: the feed handler does not aggregate
// depth, only tracks what each resting order looks like.
func (s *Server) handleBookSummary(w http.ResponseWriter, r *http.Request) {
	ticker := r.PathValue("ticker")
	d, ok := s.resolveTicker(w, ticker)
	if !ok {
		return
	}

	snap := s.market.Book(d.Locate).Snapshot()
	writeJSON(w, http.StatusOK, bookSummary{
		Ticker:    d.Ticker,
		Locate:    snap.Locate,
		BidOrders: snap.BidOrders,
		AskOrders: snap.AskOrders,
		BidShares: snap.BidShares,
		AskShares: snap.AskShares,
	})
}

// handleErrors returns the process-wide decode and book-mutation anomaly
// counters, for operational visibility into feed quality.
func (s *Server) handleErrors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.errs.Snapshot())
}

type statsResponse struct {
	Uptime      string `json:"uptime"`
	Clients     int    `json:"clients"`
	Symbols     int    `json:"symbols"`
	TotalOrders int    `json:"totalOrders"`
}

// handleStats returns runtime and aggregate statistics.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	var totalOrders int
	for _, snap := range s.market.Snapshots() {
		totalOrders += snap.BidOrders + snap.AskOrders
	}

	writeJSON(w, http.StatusOK, statsResponse{
		Uptime:      time.Since(s.startAt).Truncate(time.Second).String(),
		Clients:     s.mgr.ClientCount(),
		Symbols:     s.symbols.Count(),
		TotalOrders: totalOrders,
	})
}

type clientInfo struct {
	ID          uint64    `json:"id"`
	ConnectedAt time.Time `json:"connectedAt"`
	Format      string    `json:"format"`
	AllSymbols  bool      `json:"allSymbols"`
	Subscribed  int       `json:"subscribed"`
	Sent        uint64    `json:"sent"`
	Dropped     uint64    `json:"dropped"`
}

// handleClients returns each connected consumer's subscription and
// delivery counters, for spotting a slow or stuck fan-out client.
func (s *Server) handleClients(w http.ResponseWriter, r *http.Request) {
	stats := s.mgr.ClientStats()
	out := make([]clientInfo, 0, len(stats))
	for _, st := range stats {
		format := "json"
		if st.Format == session.FormatBinary {
			format = "binary"
		}
		out = append(out, clientInfo{
			ID:          st.ID,
			ConnectedAt: st.ConnectedAt,
			Format:      format,
			AllSymbols:  st.AllSymbols,
			Subscribed:  st.Subscribed,
			Sent:        st.Sent,
			Dropped:     st.Dropped,
		})
	}
	writeJSON(w, http.StatusOK, out)
}
