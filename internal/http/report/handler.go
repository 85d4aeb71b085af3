package report

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/communityworks/grantledger/internal/ledger"
	"github.com/communityworks/grantledger/internal/report"
)

// Handler serves the derived report views. Every endpoint recomputes from
// the current record list; nothing is cached.
type Handler struct {
	ledgerSvc *ledger.Service
	topN      int
}

func NewHandler(ledgerSvc *ledger.Service, topN int) *Handler {
	return &Handler{ledgerSvc: ledgerSvc, topN: topN}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/monthly", h.monthly)
	r.Get("/quarterly", h.quarterly)
	r.Get("/categories", h.categories)
	r.Get("/vendors", h.vendors)
	r.Get("/items", h.items)
	r.Get("/top", h.topTransactions)
	r.Get("/deltas", h.deltas)
}

type bucketResponse struct {
	Label string `json:"label"`
	Total int64  `json:"total"`
	Count int    `json:"count"`
}

type groupResponse struct {
	Key   string `json:"key"`
	Total int64  `json:"total"`
	Count int    `json:"count"`
}

type topTransactionResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Amount  int64  `json:"amount"`
	PayDate string `json:"pay_date"`
	Vendor  string `json:"vendor,omitempty"`
	Funder  string `json:"funder,omitempty"`
}

type deltaResponse struct {
	Label         string  `json:"label"`
	Total         int64   `json:"total"`
	HasBaseline   bool    `json:"has_baseline"`
	BaselineLabel string  `json:"baseline_label,omitempty"`
	Baseline      int64   `json:"baseline,omitempty"`
	Change        int64   `json:"change"`
	PctChange     float64 `json:"pct_change"`
	Flagged       bool    `json:"flagged"`
}

func (h *Handler) monthly(w http.ResponseWriter, r *http.Request) {
	records, ok := h.records(w, r)
	if !ok {
		return
	}

	buckets := report.ByMonth(records)

	resp := make([]bucketResponse, 0, len(buckets))
	for _, b := range buckets {
		resp = append(resp, bucketResponse{Label: b.Month.String(), Total: b.Total, Count: b.Count})
	}

	writeJSON(w, resp)
}

func (h *Handler) quarterly(w http.ResponseWriter, r *http.Request) {
	records, ok := h.records(w, r)
	if !ok {
		return
	}

	buckets := report.ByQuarter(records)

	resp := make([]bucketResponse, 0, len(buckets))
	for _, b := range buckets {
		resp = append(resp, bucketResponse{Label: string(b.Quarter), Total: b.Total, Count: b.Count})
	}

	writeJSON(w, resp)
}

func (h *Handler) categories(w http.ResponseWriter, r *http.Request) {
	h.grouped(w, r, report.ByCategory)
}

func (h *Handler) vendors(w http.ResponseWriter, r *http.Request) {
	h.grouped(w, r, report.ByVendor)
}

func (h *Handler) items(w http.ResponseWriter, r *http.Request) {
	h.grouped(w, r, report.ByItem)
}

func (h *Handler) grouped(w http.ResponseWriter, r *http.Request, view func([]*ledger.Record) []report.GroupTotal) {
	records, ok := h.records(w, r)
	if !ok {
		return
	}

	groups := report.Top(view(records), h.limit(r))

	resp := make([]groupResponse, 0, len(groups))
	for _, g := range groups {
		resp = append(resp, groupResponse{Key: g.Key, Total: g.Total, Count: g.Count})
	}

	writeJSON(w, resp)
}

func (h *Handler) topTransactions(w http.ResponseWriter, r *http.Request) {
	records, ok := h.records(w, r)
	if !ok {
		return
	}

	top := report.TopTransactions(records, h.limit(r))

	resp := make([]topTransactionResponse, 0, len(top))
	for _, rec := range top {
		resp = append(resp, topTransactionResponse{
			ID:      rec.ID.String(),
			Name:    rec.Name,
			Amount:  rec.Amount,
			PayDate: rec.PayDate,
			Vendor:  rec.Vendor,
			Funder:  rec.Funder,
		})
	}

	writeJSON(w, resp)
}

func (h *Handler) deltas(w http.ResponseWriter, r *http.Request) {
	records, ok := h.records(w, r)
	if !ok {
		return
	}

	var ds []report.Delta

	switch period := r.URL.Query().Get("period"); period {
	case "", "month":
		ds = report.MonthDeltas(records)
	case "quarter":
		ds = report.QuarterDeltas(records)
	default:
		http.Error(w, "period must be month or quarter", http.StatusBadRequest)
		return
	}

	resp := make([]deltaResponse, 0, len(ds))
	for _, d := range ds {
		resp = append(resp, deltaResponse{
			Label:         d.Label,
			Total:         d.Total,
			HasBaseline:   d.HasBaseline,
			BaselineLabel: d.BaselineLabel,
			Baseline:      d.Baseline,
			Change:        d.Change,
			PctChange:     d.PctChange,
			Flagged:       d.Flagged,
		})
	}

	writeJSON(w, resp)
}

func (h *Handler) records(w http.ResponseWriter, r *http.Request) ([]*ledger.Record, bool) {
	filter := ledger.ListFilter{}

	if s := r.URL.Query().Get("year"); s != "" {
		if y, err := strconv.Atoi(s); err == nil {
			filter.Year = &y
		}
	}

	if s := r.URL.Query().Get("funder"); s != "" {
		filter.Funder = &s
	}

	records, err := h.ledgerSvc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil, false
	}

	return records, true
}

func (h *Handler) limit(r *http.Request) int {
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}

	return h.topN
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
